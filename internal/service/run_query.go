package service

import (
	"context"
	"fmt"

	"github.com/lexandes/agent/internal/domain"
)

// GetRun returns the full run state, or (nil, nil) when unknown.
func (s *Service) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetAnswer returns the simplified answer view for a run, resolving selected
// law IDs against the catalog. Unknown run IDs yield (nil, nil).
func (s *Service) GetAnswer(ctx context.Context, runID string) (*domain.AnswerView, error) {
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return nil, nil
	}

	laws := make([]domain.Law, 0, len(run.SelectedLawIDs))
	for _, id := range run.SelectedLawIDs {
		if law, ok := s.catalog.Get(id); ok {
			laws = append(laws, law)
		}
	}

	obligations := run.Obligations
	if obligations == nil {
		obligations = []domain.Obligation{}
	}
	tools := run.Tools
	if tools == nil {
		tools = []domain.ToolMetric{}
	}

	return &domain.AnswerView{
		RunID:       run.RunID,
		Status:      run.Status,
		Question:    run.Question,
		Answer:      run.DraftAnswer,
		Obligations: obligations,
		Laws:        laws,
		Metrics: domain.AnswerMetrics{
			TotalMs: run.TotalMs,
			Tools:   tools,
		},
	}, nil
}

// ListRuns returns recent runs, newest first. Debug surface.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	runs, err := s.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	if runs == nil {
		runs = []*domain.Run{}
	}
	return runs, nil
}
