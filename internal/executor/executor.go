// Package executor drives a run through its lifecycle, executing each
// pipeline step in sequence and persisting the run after every transition.
package executor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lexandes/agent/internal/domain"
	"github.com/lexandes/agent/internal/pipeline"
	"github.com/lexandes/agent/internal/repository"
)

// Executor runs the pipeline for one run at a time. A given run has exactly
// one writer, so all its store writes are serialized here.
type Executor struct {
	store    store.Store
	pipeline []pipeline.Step
	deps     *pipeline.Deps
}

// New creates an executor over the given step sequence, normally
// pipeline.Pipeline().
func New(s store.Store, deps *pipeline.Deps, steps []pipeline.Step) *Executor {
	return &Executor{
		store:    s,
		pipeline: steps,
		deps:     deps,
	}
}

// Execute loads the run, moves it CREATED → RUNNING → {COMPLETED|FAILED},
// persisting after every transition and step boundary. An unknown run ID is
// a no-op, not an error. A step failure is converted into a FAILED run and
// then returned so the invoking context can observe it; the persisted state
// is already the source of truth by then.
func (e *Executor) Execute(ctx context.Context, runID string) error {
	run, err := e.store.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	if run == nil {
		log.Printf("WARN: executor found no run for id %s, nothing to execute", runID)
		return nil
	}

	startTime := time.Now()

	run.Status = domain.RunStatusRunning
	startedAt := time.Now()
	run.StartedAt = &startedAt
	run.AppendLog("Agent execution started")
	if err := e.store.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("failed to persist run %s: %w", runID, err)
	}

	if stepErr := e.runSteps(ctx, run); stepErr != nil {
		run.Status = domain.RunStatusFailed
		run.Error = stepErr.Error()
		// CompletedAt stays unset on failure; TotalMs is still recorded.
		run.TotalMs = time.Since(startTime).Milliseconds()
		run.AppendLog(fmt.Sprintf("Agent failed: %s", run.Error))
		if err := e.store.SaveRun(ctx, run); err != nil {
			log.Printf("ERROR: failed to persist failed run %s: %v", runID, err)
		}
		return stepErr
	}

	run.Status = domain.RunStatusCompleted
	completedAt := time.Now()
	run.CompletedAt = &completedAt
	run.TotalMs = time.Since(startTime).Milliseconds()
	run.AppendLog(fmt.Sprintf("Agent completed successfully in %dms", run.TotalMs))
	if err := e.store.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("failed to persist run %s: %w", runID, err)
	}

	return nil
}

// runSteps executes the pipeline strictly sequentially, persisting at every
// step boundary. It is the executor's single failure boundary: the first
// step error stops the pipeline.
func (e *Executor) runSteps(ctx context.Context, run *domain.Run) error {
	for _, step := range e.pipeline {
		run.AppendLog(fmt.Sprintf("[pipeline] Starting step: %s", step.Name()))
		if err := e.store.SaveRun(ctx, run); err != nil {
			return err
		}

		if err := step.Run(ctx, run, e.deps); err != nil {
			return err
		}

		run.AppendLog(fmt.Sprintf("[pipeline] Completed step: %s", step.Name()))
		if err := e.store.SaveRun(ctx, run); err != nil {
			return err
		}
	}
	return nil
}
