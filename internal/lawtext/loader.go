// Package lawtext loads and bounds the full text of statutes.
package lawtext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/domain"
	"github.com/lexandes/agent/internal/repository"
	"github.com/lexandes/agent/internal/tools"
)

// Loader resolves a law identifier to its full text, preferring (in order)
// the store cache, an ingested corpus directory of <LAW_ID>.txt files, and a
// curated sample excerpt. The winning text is written back to the cache.
type Loader struct {
	store    store.Store
	catalog  *catalog.Catalog
	ingested string // directory of ingested law texts, may be empty
}

// NewLoader creates a law-text loader. ingestedDir may be empty when no
// ingested corpus is available.
func NewLoader(s store.Store, c *catalog.Catalog, ingestedDir string) *Loader {
	return &Loader{store: s, catalog: c, ingested: ingestedDir}
}

// Load returns the text for lawID, recording the lookup as the
// "load_law_text" tool on the run. It fails only when the identifier is
// unknown to the catalog or the cache is unreachable.
func (l *Loader) Load(ctx context.Context, run *domain.Run, lawID string, logf func(string)) (string, error) {
	return tools.Measure(run, "load_law_text", logf, func() (string, error) {
		cached, err := l.store.GetLawText(ctx, lawID)
		if err != nil {
			return "", err
		}
		if cached != "" {
			logf(fmt.Sprintf("[load_law_text] Loaded from cache: %s", lawID))
			return cached, nil
		}

		law, ok := l.catalog.Get(lawID)
		if !ok {
			return "", fmt.Errorf("law not found for id: %s", lawID)
		}

		if text := l.readIngested(lawID); text != "" {
			logf(fmt.Sprintf("[load_law_text] Using ingested text for %s (%d chars)", lawID, len(text)))
			if err := l.store.PutLawText(ctx, lawID, text); err != nil {
				return "", err
			}
			return text, nil
		}

		text := strings.TrimSpace(sampleTexts[lawID])
		if text == "" {
			text = fmt.Sprintf("Text not available for %s. URL: %s", law.Name, law.URL)
		}
		logf(fmt.Sprintf("[load_law_text] Using fallback sample for %s", lawID))
		if err := l.store.PutLawText(ctx, lawID, text); err != nil {
			return "", err
		}
		return text, nil
	})
}

func (l *Loader) readIngested(lawID string) string {
	if l.ingested == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(l.ingested, lawID+".txt"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
