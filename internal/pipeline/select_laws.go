package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/domain"
)

// selectLawsStep asks the LLM which catalog laws apply to the question,
// falling back to a deterministic keyword match when the model yields no
// valid identifiers or is unreachable.
type selectLawsStep struct{}

func (s *selectLawsStep) Name() string { return "select_laws" }

func (s *selectLawsStep) Run(ctx context.Context, run *domain.Run, deps *Deps) error {
	run.AppendLog("[select_laws] Selecting relevant laws using LLM...")

	var lawsList []string
	for i, law := range deps.Catalog.Laws() {
		lawsList = append(lawsList, fmt.Sprintf("%d. %s: %s", i+1, law.ID, law.Name))
	}

	prompt := strings.Join([]string{
		"You are an expert legal assistant specializing in Chilean laws.",
		"Given the following user question, select the most relevant laws from the list.",
		"Respond ONLY with the law IDs separated by commas (e.g., LEY_19496,LEY_21521).",
		"Do not add explanations, only the IDs.",
		"",
		"Available laws:",
		strings.Join(lawsList, "\n"),
		"",
		"User question:",
		run.Question,
		"",
		"Relevant law IDs (comma-separated):",
	}, "\n")

	response, err := completeLLM(ctx, run, deps, prompt, deps.Config.SelectionMaxTokens)
	if err != nil {
		// Selection survives an unreachable model via the keyword fallback.
		log.Printf("WARN: select_laws LLM call failed for run %s: %v", run.RunID, err)
		run.AppendLog(fmt.Sprintf("[select_laws] LLM call failed (%v), using keyword fallback", err))
		response = ""
	} else {
		run.AppendLog(fmt.Sprintf("[select_laws] LLM response: %s", response))
	}

	selected := parseSelectedLaws(response, deps.Catalog)
	if len(selected) == 0 {
		selected = selectLawsByKeywords(run.Question, deps.Catalog)
	}

	run.SelectedLawIDs = make([]string, 0, len(selected))
	run.SelectedLaws = make([]string, 0, len(selected))
	for _, law := range selected {
		run.SelectedLawIDs = append(run.SelectedLawIDs, law.ID)
		run.SelectedLaws = append(run.SelectedLaws, law.Name)
	}

	run.AppendLog(fmt.Sprintf("[select_laws] Selected laws: %s", strings.Join(run.SelectedLaws, ", ")))
	return nil
}

// parseSelectedLaws extracts known law IDs from a comma/whitespace-delimited
// model response, deduplicated in first-seen order.
func parseSelectedLaws(response string, c *catalog.Catalog) []domain.Law {
	fields := strings.FieldsFunc(response, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == '\t' || r == ' '
	})

	var selected []domain.Law
	seen := make(map[string]bool)
	for _, field := range fields {
		id := strings.TrimSpace(field)
		if seen[id] {
			continue
		}
		if law, ok := c.Get(id); ok {
			selected = append(selected, law)
			seen[id] = true
		}
	}
	return selected
}

// selectLawsByKeywords is the deterministic fallback: fintech, consumer and
// corporate-liability terms map to their statutes, defaulting to consumer
// protection when nothing matches.
func selectLawsByKeywords(question string, c *catalog.Catalog) []domain.Law {
	lower := strings.ToLower(question)

	var ids []string
	if strings.Contains(lower, "fintec") || strings.Contains(lower, "fintech") {
		ids = append(ids, catalog.LawFintech)
	}
	if strings.Contains(lower, "consumidor") || strings.Contains(lower, "consumer") {
		ids = append(ids, catalog.LawConsumerProtection)
	}
	if strings.Contains(lower, "personas jurídicas") ||
		strings.Contains(lower, "legal entities") ||
		strings.Contains(lower, "responsabilidad penal") ||
		strings.Contains(lower, "criminal liability") {
		ids = append(ids, catalog.LawCorporateLiability)
	}
	if len(ids) == 0 {
		ids = append(ids, catalog.LawConsumerProtection)
	}

	var selected []domain.Law
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if law, ok := c.Get(id); ok {
			selected = append(selected, law)
			seen[id] = true
		}
	}
	return selected
}
