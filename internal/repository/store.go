// Package store persists runs and cached law texts.
package store

import (
	"context"

	"github.com/lexandes/agent/internal/domain"
)

// Store is the interface for run persistence and the law-text cache.
// GetRun and GetLawText return zero values with a nil error when the key is
// absent; callers treat that as not-found rather than a fault.
type Store interface {
	// SaveRun overwrites the stored state for run.RunID with the run's full
	// serialized state, refreshing run.UpdatedAt first. Last writer wins.
	SaveRun(ctx context.Context, run *domain.Run) error
	// GetRun loads a run by ID, or returns (nil, nil) if unknown.
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	// ListRuns returns up to limit runs, most recently created first.
	ListRuns(ctx context.Context, limit int) ([]*domain.Run, error)

	// GetLawText returns the cached text for a law, or "" if not cached.
	GetLawText(ctx context.Context, lawID string) (string, error)
	// PutLawText caches the text for a law, replacing any previous entry.
	PutLawText(ctx context.Context, lawID, text string) error

	Close() error
}
