package store

import (
	"context"
	"testing"
	"time"

	"github.com/lexandes/agent/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	run := domain.NewRun("¿Qué debo hacer si soy una fintech?")
	run.AppendLog("created")
	savedAt := run.UpdatedAt

	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if run.UpdatedAt.Before(savedAt) {
		t.Fatalf("SaveRun must refresh UpdatedAt: %v < %v", run.UpdatedAt, savedAt)
	}

	got, err := s.GetRun(ctx, run.RunID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetRun returned nil for saved run")
	}
	if got.RunID != run.RunID || got.Question != run.Question || got.Status != domain.RunStatusCreated {
		t.Fatalf("unexpected run: %+v", got)
	}
	if len(got.Logs) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(got.Logs))
	}
	if got.UpdatedAt.Before(savedAt) {
		t.Fatalf("loaded UpdatedAt %v predates save time %v", got.UpdatedAt, savedAt)
	}
}

func TestSQLiteStoreGetRunNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.GetRun(ctx, "run_unknown")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown run, got %+v", got)
	}
}

func TestSQLiteStoreSaveRunLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	run := domain.NewRun("question about consumers")
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	run.Status = domain.RunStatusRunning
	now := time.Now()
	run.StartedAt = &now
	run.AppendLog("started")
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("second SaveRun failed: %v", err)
	}

	got, err := s.GetRun(ctx, run.RunID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Status != domain.RunStatusRunning {
		t.Fatalf("expected RUNNING, got %s", got.Status)
	}
	if got.StartedAt == nil {
		t.Fatal("StartedAt not persisted")
	}
	if len(got.Logs) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(got.Logs))
	}
}

func TestSQLiteStoreListRuns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := domain.NewRun("first question here")
	first.CreatedAt = time.Now().Add(-time.Minute)
	second := domain.NewRun("second question here")

	if err := s.SaveRun(ctx, first); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := s.SaveRun(ctx, second); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != second.RunID {
		t.Fatalf("expected newest run first, got %s", runs[0].RunID)
	}

	limited, err := s.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 run, got %d", len(limited))
	}
}

func TestSQLiteStoreLawTextCache(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	text, err := s.GetLawText(ctx, "LEY_21521")
	if err != nil {
		t.Fatalf("GetLawText failed: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty cache, got %q", text)
	}

	if err := s.PutLawText(ctx, "LEY_21521", "texto de la ley"); err != nil {
		t.Fatalf("PutLawText failed: %v", err)
	}
	if err := s.PutLawText(ctx, "LEY_21521", "texto actualizado"); err != nil {
		t.Fatalf("PutLawText overwrite failed: %v", err)
	}

	text, err = s.GetLawText(ctx, "LEY_21521")
	if err != nil {
		t.Fatalf("GetLawText failed: %v", err)
	}
	if text != "texto actualizado" {
		t.Fatalf("unexpected cached text: %q", text)
	}
}
