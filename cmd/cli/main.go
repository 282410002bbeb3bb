package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for interacting with the ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(consistencyCmd())
	rootCmd.AddCommand(ledgerCmd)

	// Archive commands
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Archival operations",
	}
	archiveCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(archiveCmd)

	rootCmd.AddCommand(balancesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}
}

func sweepCmd() *cobra.Command {
	var cutoff string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run an archival sweep",
		Run: func(cmd *cobra.Command, args []string) {
			runSweep(cutoff)
		},
	}

	cmd.Flags().StringVar(&cutoff, "cutoff", "", "Archive records created before this RFC3339 timestamp (default: configured retention)")

	return cmd
}

func balancesCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "List party balances",
		Run: func(cmd *cobra.Command, args []string) {
			listBalances(role)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Filter by role (CLIENT or PROVIDER)")

	return cmd
}

func checkConsistency() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Consistency check PASSED\n")
	if consistent, ok := result["consistent"].(bool); ok {
		fmt.Printf("Consistent: %v\n", consistent)
	}
	fmt.Printf("Status: %s\n", result["status"])
}

func runSweep(cutoff string) {
	payload := map[string]any{}
	if cutoff != "" {
		if _, err := time.Parse(time.RFC3339, cutoff); err != nil {
			fmt.Printf("Invalid cutoff (use RFC3339): %v\n", err)
			os.Exit(1)
		}
		payload["cutoff"] = cutoff
	}

	body, _ := json.Marshal(payload)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/archive", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Sweep FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sweep completed\n")
	printJSON(result)
}

func listBalances(role string) {
	url := baseURL + "/api/v1/saldos"
	if role != "" {
		url += "?role=" + role
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var balances []struct {
		PartyID string `json:"party_id"`
		Role    string `json:"role"`
		Name    string `json:"name"`
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(body, &balances); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-28s %-10s %-30s %15s\n", "PARTY", "ROLE", "NAME", "BALANCE")
	for _, b := range balances {
		fmt.Printf("%-28s %-10s %-30s %15s\n", b.PartyID, b.Role, truncate(b.Name, 30), b.Balance)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
