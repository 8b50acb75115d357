package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexandes/agent/internal/domain"
)

// Disclaimer closes every drafted answer.
const Disclaimer = "Note: This response does not constitute legal advice and is generated by an AI agent."

const noObligationsFound = "No specific obligations detected (or relevant information could not be extracted)."

// draftAnswerStep composes the final answer from the run state. It is pure
// string assembly; no LLM call.
type draftAnswerStep struct{}

func (s *draftAnswerStep) Name() string { return "draft_answer" }

func (s *draftAnswerStep) Run(ctx context.Context, run *domain.Run, deps *Deps) error {
	run.AppendLog("[draft_answer] Generating final response based on laws and obligations...")

	lawsText := "no laws selected"
	if len(run.SelectedLaws) > 0 {
		lawsText = strings.Join(run.SelectedLaws, "; ")
	}

	obligationsText := noObligationsFound
	if len(run.Obligations) > 0 {
		var blocks []string
		for _, o := range run.Obligations {
			blocks = append(blocks, fmt.Sprintf("- (%s) %s:\n  %s", o.LawID, o.Title, o.Summary))
		}
		obligationsText = strings.Join(blocks, "\n\n")
	}

	run.DraftAnswer = strings.Join([]string{
		"User question:",
		run.Question,
		"",
		"Laws considered by the agent:",
		lawsText,
		"",
		"Relevant obligations identified:",
		obligationsText,
		"",
		Disclaimer,
	}, "\n")

	run.AppendLog("[draft_answer] Final response generated")
	return nil
}
