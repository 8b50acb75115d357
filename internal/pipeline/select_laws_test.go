package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/config"
	"github.com/lexandes/agent/internal/domain"
)

// stubLLM records prompts and returns a canned response or error.
type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func newTestDeps(llmClient *stubLLM) *Deps {
	return &Deps{
		LLM:     llmClient,
		Catalog: catalog.Default(),
		Config:  config.Load(),
	}
}

func TestSelectLawsFromLLMResponse(t *testing.T) {
	llmClient := &stubLLM{response: "LEY_21521, LEY_19913"}
	deps := newTestDeps(llmClient)
	run := domain.NewRun("¿Qué debo hacer si soy una fintech?")

	err := (&selectLawsStep{}).Run(context.Background(), run, deps)
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.LawFintech, catalog.LawAntiMoneyLaunder}, run.SelectedLawIDs)
	assert.Equal(t, []string{"Law 21.521 (Fintech)", "Law 19.913 (Financial Intelligence Unit; AML)"}, run.SelectedLaws)
	require.Len(t, llmClient.prompts, 1)
	assert.Contains(t, llmClient.prompts[0], run.Question)
	assert.Contains(t, llmClient.prompts[0], "Available laws:")
}

func TestSelectLawsDeduplicatesResponse(t *testing.T) {
	llmClient := &stubLLM{response: "LEY_21521\nLEY_21521,LEY_21521"}
	run := domain.NewRun("pregunta sobre fintech chilena")

	err := (&selectLawsStep{}).Run(context.Background(), run, newTestDeps(llmClient))
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.LawFintech}, run.SelectedLawIDs)
}

func TestSelectLawsKeywordFallbackFintech(t *testing.T) {
	llmClient := &stubLLM{response: "I cannot determine the applicable statutes."}
	run := domain.NewRun("¿Qué debo hacer si soy una fintech?")

	err := (&selectLawsStep{}).Run(context.Background(), run, newTestDeps(llmClient))
	require.NoError(t, err)

	assert.Contains(t, run.SelectedLawIDs, catalog.LawFintech)
}

func TestSelectLawsKeywordFallbackDefault(t *testing.T) {
	llmClient := &stubLLM{response: "no identifiers here"}
	run := domain.NewRun("¿qué trámites generales debo hacer?")

	err := (&selectLawsStep{}).Run(context.Background(), run, newTestDeps(llmClient))
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.LawConsumerProtection}, run.SelectedLawIDs)
}

func TestSelectLawsKeywordFallbackCombines(t *testing.T) {
	llmClient := &stubLLM{response: ""}
	run := domain.NewRun("soy una fintech con clientes consumidores")

	err := (&selectLawsStep{}).Run(context.Background(), run, newTestDeps(llmClient))
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.LawFintech, catalog.LawConsumerProtection}, run.SelectedLawIDs)
}

func TestSelectLawsSurvivesLLMFailure(t *testing.T) {
	llmClient := &stubLLM{err: errors.New("llm unreachable")}
	run := domain.NewRun("responsabilidad penal de la empresa")

	err := (&selectLawsStep{}).Run(context.Background(), run, newTestDeps(llmClient))
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.LawCorporateLiability}, run.SelectedLawIDs)
	// The failed call must not contribute to metrics.
	assert.Empty(t, run.Tools)
}
