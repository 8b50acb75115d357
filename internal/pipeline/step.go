// Package pipeline defines the ordered steps that turn a question into a
// drafted compliance answer.
package pipeline

import (
	"context"

	"github.com/lexandes/agent/internal/adapter/llm"
	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/config"
	"github.com/lexandes/agent/internal/domain"
	"github.com/lexandes/agent/internal/lawtext"
	"github.com/lexandes/agent/internal/tools"
)

// Step is one named unit of pipeline work. A step may read and write the run
// and call external services, but must not alter the run's status or
// lifecycle timestamps; its only error channel is the returned error.
type Step interface {
	Name() string
	Run(ctx context.Context, run *domain.Run, deps *Deps) error
}

// Deps bundles the external collaborators steps are allowed to use.
type Deps struct {
	LLM     llm.CompletionClient
	Catalog *catalog.Catalog
	Loader  *lawtext.Loader
	Config  *config.Config
}

// Pipeline returns the fixed ordered step sequence.
func Pipeline() []Step {
	return []Step{
		&selectLawsStep{},
		&extractObligationsStep{},
		&draftAnswerStep{},
	}
}

// completeLLM calls the completion service, measured as the "llm" tool.
func completeLLM(ctx context.Context, run *domain.Run, deps *Deps, prompt string, maxTokens int) (string, error) {
	return tools.Measure(run, "llm", run.AppendLog, func() (string, error) {
		return deps.LLM.Complete(ctx, prompt, maxTokens)
	})
}
