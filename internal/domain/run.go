package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents a single execution of the compliance pipeline for one
// question, including its persisted progress, logs and eventual result.
type Run struct {
	RunID     string    `json:"run_id"`
	Question  string    `json:"question"`
	Status    RunStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// StartedAt is set once, on entering RUNNING. CompletedAt is set once,
	// on reaching COMPLETED; it stays unset on FAILED even though TotalMs is
	// still recorded.
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Error string   `json:"error,omitempty"`
	Logs  []string `json:"logs"`

	SelectedLawIDs []string     `json:"selected_law_ids,omitempty"`
	SelectedLaws   []string     `json:"selected_laws,omitempty"`
	Obligations    []Obligation `json:"obligations,omitempty"`
	DraftAnswer    string       `json:"draft_answer,omitempty"`

	Tools   []ToolMetric `json:"tools,omitempty"`
	TotalMs int64        `json:"total_ms,omitempty"`
}

// Obligation is a structured compliance requirement derived from one law.
type Obligation struct {
	ID      string `json:"id"`
	LawID   string `json:"law_id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// ToolMetric accumulates call count and total duration for one tool.
type ToolMetric struct {
	Name    string `json:"name"`
	Calls   int    `json:"calls"`
	TotalMs int64  `json:"total_ms"`
}

// NewRun creates a run in CREATED state with a fresh identifier.
func NewRun(question string) *Run {
	now := time.Now()
	return &Run{
		RunID:     "run_" + uuid.New().String(),
		Question:  question,
		Status:    RunStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
		Logs:      []string{},
	}
}

// AppendLog pushes a timestamped line onto the run's log. It mutates the run
// in memory only; callers persist via the store.
func (r *Run) AppendLog(message string) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format(time.RFC3339Nano), message)
	r.Logs = append(r.Logs, line)
}
