package domain

import "errors"

var (
	// Resolver errors, reported before any write begins.
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrPartyNotFound      = errors.New("party not found")
	ErrRoleMismatch       = errors.New("party role does not match the operation")
	ErrInvalidInstruction = errors.New("invalid ledger instruction")

	// Engine errors.
	ErrConcurrentModification = errors.New("concurrent modification, retry the operation")
	ErrStorageUnavailable     = errors.New("storage unavailable")

	// Source record lookups.
	ErrSaleNotFound     = errors.New("sale not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
)
