package usecase

import "time"

const (
	// DefaultRetentionPeriod is how long sale and purchase rows stay active
	// before the sweeper may archive them.
	DefaultRetentionPeriod = 365 * 24 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// BalanceCacheTTL is how long cached party balances stay valid. Applies
	// invalidate the cache, the TTL only bounds staleness after cache
	// failures.
	BalanceCacheTTL = 5 * time.Minute
)
