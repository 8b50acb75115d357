package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexandes/agent/internal/adapter/llm"
	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/config"
	"github.com/lexandes/agent/internal/domain"
	"github.com/lexandes/agent/internal/executor"
	"github.com/lexandes/agent/internal/lawtext"
	"github.com/lexandes/agent/internal/pipeline"
	"github.com/lexandes/agent/policy"
	"github.com/lexandes/agent/tests/helpers"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	s := helpers.NewTestSQLiteStore(t)
	cfg := config.Load()
	cat := catalog.Default()

	deps := &pipeline.Deps{
		LLM:     llm.NewMockClient(),
		Catalog: cat,
		Loader:  lawtext.NewLoader(s, cat, ""),
		Config:  cfg,
	}
	exec := executor.New(s, deps, pipeline.Pipeline())

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)

	return New(s, cat, exec, engine, cfg)
}

func waitForTerminal(t *testing.T, svc *Service, runID string) *domain.Run {
	t.Helper()
	var run *domain.Run
	require.Eventually(t, func() bool {
		var err error
		run, err = svc.GetRun(context.Background(), runID)
		if err != nil || run == nil {
			return false
		}
		return run.Status.Terminal()
	}, 5*time.Second, 10*time.Millisecond)
	return run
}

func TestSubmitQuestionEndToEnd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.SubmitQuestion(ctx, "¿Qué debo hacer si soy una fintech?")
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusCreated, run.Status)
	assert.NotEmpty(t, run.RunID)

	final := waitForTerminal(t, svc, run.RunID)
	require.Equal(t, domain.RunStatusCompleted, final.Status)

	// Offline selection yields no valid identifiers, so the keyword fallback
	// picks the fintech law.
	assert.Contains(t, final.SelectedLawIDs, catalog.LawFintech)
	assert.Len(t, final.Obligations, len(final.SelectedLawIDs))
	assert.Contains(t, final.DraftAnswer, pipeline.Disclaimer)
	assert.NotNil(t, final.CompletedAt)
	assert.Empty(t, final.Error)
	assert.NotEmpty(t, final.Tools)
}

func TestSubmitQuestionRejectsShortQuestion(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitQuestion(context.Background(), "corta")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "question is too short", verr.Reason)

	// No run record may exist after a rejection.
	runs, err := svc.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGetAnswerResolvesLaws(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.SubmitQuestion(ctx, "¿Qué debo hacer si soy una fintech?")
	require.NoError(t, err)
	waitForTerminal(t, svc, run.RunID)

	answer, err := svc.GetAnswer(ctx, run.RunID)
	require.NoError(t, err)
	require.NotNil(t, answer)

	assert.Equal(t, run.RunID, answer.RunID)
	assert.Equal(t, domain.RunStatusCompleted, answer.Status)
	assert.Contains(t, answer.Answer, pipeline.Disclaimer)
	require.NotEmpty(t, answer.Laws)
	assert.Equal(t, catalog.LawFintech, answer.Laws[0].ID)
	assert.NotEmpty(t, answer.Metrics.Tools)
}

func TestGetAnswerUnknownRun(t *testing.T) {
	svc := newTestService(t)

	answer, err := svc.GetAnswer(context.Background(), "run_missing")
	require.NoError(t, err)
	assert.Nil(t, answer)
}

func TestRunLogsOnlyGrow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	run, err := svc.SubmitQuestion(ctx, "pregunta sobre consumidores y sus derechos")
	require.NoError(t, err)

	prev := 0
	require.Eventually(t, func() bool {
		current, err := svc.GetRun(ctx, run.RunID)
		if err != nil || current == nil {
			return false
		}
		if len(current.Logs) < prev {
			t.Fatalf("logs shrank from %d to %d", prev, len(current.Logs))
		}
		prev = len(current.Logs)
		return current.Status.Terminal()
	}, 5*time.Second, time.Millisecond)
}
