package usecase

import (
	"context"
	"fmt"
	"strings"

	"pin-packs/pkg/logger"
	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/repo/persistent"
)

// Counter modes accepted by DOWNLOAD_COUNTER_MODE.
const (
	CounterModeAuto     = "auto"
	CounterModeAtomic   = "atomic"
	CounterModeFallback = "fallback"
)

// DownloadCounter adds one to a pack's download count.
type DownloadCounter interface {
	Increment(ctx context.Context, packID string) error
	Strategy() entity.CounterStrategy
}

type atomicCounter struct {
	repo persistent.PackCounterRepository
}

func NewAtomicCounter(repo persistent.PackCounterRepository) DownloadCounter {
	return &atomicCounter{repo: repo}
}

func (c *atomicCounter) Increment(ctx context.Context, packID string) error {
	return c.repo.IncrementDownloadCount(ctx, packID)
}

func (c *atomicCounter) Strategy() entity.CounterStrategy {
	return entity.CounterStrategyAtomic
}

// readModifyWriteCounter reads the count and writes it back plus one.
// Two concurrent increments of the same pack can lose one of them.
type readModifyWriteCounter struct {
	repo persistent.PackCounterRepository
}

func NewReadModifyWriteCounter(repo persistent.PackCounterRepository) DownloadCounter {
	return &readModifyWriteCounter{repo: repo}
}

func (c *readModifyWriteCounter) Increment(ctx context.Context, packID string) error {
	current, err := c.repo.GetDownloadCount(ctx, packID)
	if err != nil {
		return fmt.Errorf("failed to read download count: %w", err)
	}
	if err := c.repo.SetDownloadCount(ctx, packID, current+1); err != nil {
		return fmt.Errorf("failed to write download count: %w", err)
	}
	return nil
}

func (c *readModifyWriteCounter) Strategy() entity.CounterStrategy {
	return entity.CounterStrategyFallback
}

// CounterReconciler tries the atomic counter first and falls back to
// read-modify-write on any error. A fallback increment is followed by a
// best-effort download event, which the atomic path records on its own.
type CounterReconciler struct {
	atomic   DownloadCounter
	fallback DownloadCounter
	events   persistent.PackCounterRepository
	logger   *logger.Logger
}

// NewCounterReconciler accepts a nil atomic counter, in which case every
// increment goes through the fallback.
func NewCounterReconciler(atomic, fallback DownloadCounter, events persistent.PackCounterRepository, logger *logger.Logger) *CounterReconciler {
	return &CounterReconciler{
		atomic:   atomic,
		fallback: fallback,
		events:   events,
		logger:   logger,
	}
}

// NewCounterReconcilerForMode installs the atomic counter according to mode.
// In auto mode the database is asked whether the increment function exists;
// if that lookup fails the atomic counter is installed anyway since the
// fallback still covers it.
func NewCounterReconcilerForMode(ctx context.Context, repo persistent.PackCounterRepository, mode string, logger *logger.Logger) *CounterReconciler {
	fallback := NewReadModifyWriteCounter(repo)

	var atomic DownloadCounter
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case CounterModeFallback:
		logger.Info("Download counter: fallback only")
	case CounterModeAtomic:
		atomic = NewAtomicCounter(repo)
		logger.Info("Download counter: atomic")
	default:
		supported, err := repo.SupportsAtomicIncrement(ctx)
		switch {
		case err != nil:
			logger.Warn("Download counter function lookup failed, installing atomic counter: %v", err)
			atomic = NewAtomicCounter(repo)
		case supported:
			atomic = NewAtomicCounter(repo)
			logger.Info("Download counter: atomic (increment function found)")
		default:
			logger.Warn("Download counter: increment function missing, using fallback")
		}
	}

	return NewCounterReconciler(atomic, fallback, repo, logger)
}

func (r *CounterReconciler) AtomicInstalled() bool {
	return r.atomic != nil
}

// Reconcile never returns an error; the outcome says what happened.
func (r *CounterReconciler) Reconcile(ctx context.Context, packID string) entity.ItemOutcome {
	outcome := entity.ItemOutcome{PackID: packID}

	if r.atomic != nil {
		err := r.atomic.Increment(ctx, packID)
		if err == nil {
			outcome.Strategy = r.atomic.Strategy()
			outcome.Incremented = true
			outcome.EventRecorded = true
			return outcome
		}
		outcome.AtomicError = err.Error()
		r.logger.Warn("Atomic increment failed for pack %s, falling back: %v", packID, err)
	}

	outcome.Strategy = r.fallback.Strategy()
	if err := r.fallback.Increment(ctx, packID); err != nil {
		outcome.Error = err.Error()
		r.logger.Error("Download count not updated for pack %s: %v", packID, err)
		return outcome
	}
	outcome.Incremented = true

	if err := r.events.CreateDownloadEvent(ctx, packID, entity.DownloadTypePurchase); err != nil {
		outcome.EventError = err.Error()
		r.logger.Warn("Download event not recorded for pack %s: %v", packID, err)
		return outcome
	}
	outcome.EventRecorded = true

	return outcome
}
