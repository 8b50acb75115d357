package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexandes/agent/internal/domain"
	"github.com/lexandes/agent/internal/lawtext"
)

// extractObligationsStep produces one obligation record per resolved law.
// LLM failures here are recoverable per item: the static obligations template
// substitutes for a failed or unusably short summary.
type extractObligationsStep struct{}

func (s *extractObligationsStep) Name() string { return "extract_obligations" }

func (s *extractObligationsStep) Run(ctx context.Context, run *domain.Run, deps *Deps) error {
	run.AppendLog("[extract_obligations] Extracting obligations using AI...")

	if len(run.SelectedLawIDs) == 0 {
		run.AppendLog("[extract_obligations] No laws selected, nothing to extract")
		run.Obligations = []domain.Obligation{}
		return nil
	}

	obligations := make([]domain.Obligation, 0, len(run.SelectedLawIDs))

	for _, lawID := range run.SelectedLawIDs {
		law, ok := deps.Catalog.Get(lawID)
		if !ok {
			run.AppendLog(fmt.Sprintf("[extract_obligations] Law not found for ID: %s", lawID))
			continue
		}

		text, err := deps.Loader.Load(ctx, run, lawID, run.AppendLog)
		if err != nil {
			return err
		}
		text = lawtext.Truncate(text, deps.Config.MaxLawTextChars, deps.Config.RelevantKeywords)

		run.AppendLog(fmt.Sprintf("[extract_obligations] Summarizing obligations for %s based on user question", law.Name))

		prompt := fmt.Sprintf(`Based on the following law text and the user's specific question, provide a focused summary:

Text of %s:
%s

User's question: %s

Provide a concise summary (3-4 sentences) highlighting the most relevant obligations for this user's situation:`,
			law.Name, text, run.Question)

		summary, err := completeLLM(ctx, run, deps, prompt, deps.Config.SummaryMaxTokens)
		if err != nil {
			run.AppendLog("[extract_obligations] LLM failed, using structured template")
			summary = ""
		}
		summary = strings.TrimSpace(summary)

		// A summary shorter than the usefulness threshold is discarded in
		// favor of the curated per-law template.
		if len(summary) < deps.Config.MinSummaryChars {
			summary = deps.Catalog.ObligationsFor(lawID)
		}

		obligations = append(obligations, domain.Obligation{
			ID:      lawID + "::1",
			LawID:   lawID,
			Title:   fmt.Sprintf("Key obligations according to %s", law.Name),
			Summary: summary,
		})
	}

	run.Obligations = obligations
	run.AppendLog(fmt.Sprintf("[extract_obligations] Generated %d obligations", len(obligations)))
	return nil
}
