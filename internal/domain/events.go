package domain

import "time"

// Event types
const (
	EventTypeEntryApplied   = "ledger.entry_applied"
	EventTypePartyCreated   = "party.created"
	EventTypeSweepCompleted = "archive.sweep_completed"
)

// Aggregate types
const (
	AggregateTypeParty   = "party"
	AggregateTypeArchive = "archive"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// EntryAppliedEvent payload
type EntryAppliedEvent struct {
	EntryID      string `json:"entry_id"`
	PartyID      string `json:"party_id"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
	SourceType   string `json:"source_type"`
	SourceID     string `json:"source_id"`
}

// PartyCreatedEvent payload
type PartyCreatedEvent struct {
	PartyID string `json:"party_id"`
	Role    string `json:"role"`
	Name    string `json:"name"`
}

// SweepCompletedEvent payload
type SweepCompletedEvent struct {
	Cutoff            string `json:"cutoff"`
	SalesArchived     int64  `json:"sales_archived"`
	PurchasesArchived int64  `json:"purchases_archived"`
}
