package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPartyName = errors.New("invalid party name")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
	ErrReferenceTooLong = errors.New("reference exceeds maximum length")
)

// Validation constants
const (
	MaxPartyNameLength = 255
	MaxReferenceLength = 512
	MaxEntryAmount     = "1000000000000" // 1 trillion
)

// ValidatePartyName validates a party's legal name.
func ValidatePartyName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidPartyName)
	}

	if len(name) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidPartyName, MaxPartyNameLength)
	}

	return nil
}

// ValidateAmount validates a ledger amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxEntryAmount)
	}

	return nil
}

// ValidateReference validates an entry's origin description.
func ValidateReference(reference string) error {
	if len(reference) > MaxReferenceLength {
		return fmt.Errorf("%w: limit is %d characters", ErrReferenceTooLong, MaxReferenceLength)
	}

	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 1000
	const defaultPageSize = 50

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
