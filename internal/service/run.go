package service

import (
	"context"
	"fmt"
	"log"

	"github.com/lexandes/agent/internal/domain"
)

// ValidationError rejects a question before any run record exists.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SubmitQuestion validates the question, creates a run in CREATED state and
// launches the executor in the background. The caller gets the run back
// immediately and observes progress by polling; executor failures surface
// only through the persisted run state.
func (s *Service) SubmitQuestion(ctx context.Context, question string) (*domain.Run, error) {
	decision, err := s.policy.EvaluateQuestion(ctx, question, s.config.QuestionMinLength, s.config.QuestionMaxLength)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate intake policy: %w", err)
	}
	if !decision.Allowed {
		return nil, &ValidationError{Reason: decision.Reason}
	}

	run := domain.NewRun(question)
	if err := s.store.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	// Fire-and-forget: the accepting request does not wait for the pipeline.
	// The executor error is logged here purely for observability; the run's
	// persisted FAILED state is what API consumers see.
	go func() {
		if err := s.executor.Execute(context.Background(), run.RunID); err != nil {
			log.Printf("ERROR: run %s failed: %v", run.RunID, err)
		}
	}()

	return run, nil
}
