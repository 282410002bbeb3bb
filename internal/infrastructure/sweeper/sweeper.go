package sweeper

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestion/ledger/internal/infrastructure/metrics"
	"github.com/gestion/ledger/internal/usecase"
)

// Sweeper runs the archival sweep on a fixed interval. The sweep itself is
// idempotent, so an overlapping or repeated run is harmless.
type Sweeper struct {
	archive  *usecase.ArchiveUseCase
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	interval time.Duration
}

// Config for Sweeper.
type Config struct {
	Archive  *usecase.ArchiveUseCase
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
	Interval time.Duration
}

// New creates a new Sweeper.
func New(cfg Config) *Sweeper {
	if cfg.Interval == 0 {
		cfg.Interval = 24 * time.Hour
	}

	return &Sweeper{
		archive:  cfg.Archive,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		interval: cfg.Interval,
	}
}

// Start begins the sweep worker. It runs until the context is cancelled.
func (s *Sweeper) Start(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("archival sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("archival sweeper shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Sweeper) runSweep(ctx context.Context) {
	start := time.Now()

	result, err := s.archive.SweepExpired(ctx)

	if s.metrics != nil {
		s.metrics.SweepRuns.Inc()
		s.metrics.SweepDuration.Observe(time.Since(start).Seconds())
		s.metrics.SweepArchived.WithLabelValues("sales").Add(float64(result.SalesArchived))
		s.metrics.SweepArchived.WithLabelValues("purchases").Add(float64(result.PurchasesArchived))
	}

	if err != nil {
		if s.metrics != nil {
			s.metrics.SweepErrors.Inc()
		}
		s.logger.Error().Err(err).Msg("archival sweep failed")
		return
	}

	s.logger.Info().
		Time("cutoff", result.Cutoff).
		Int64("sales_archived", result.SalesArchived).
		Int64("purchases_archived", result.PurchasesArchived).
		Msg("archival sweep completed")
}
