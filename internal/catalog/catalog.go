// Package catalog holds the read-only set of supported statutes and their
// obligation templates. The catalog is built once and injected into the
// components that need lookups, so tests can substitute their own tables.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexandes/agent/internal/domain"
)

// Catalog is an immutable lookup table of laws and obligation templates.
type Catalog struct {
	laws        []domain.Law
	byID        map[string]domain.Law
	obligations map[string]string
}

// New builds a catalog from the given laws and per-law obligation templates.
func New(laws []domain.Law, obligations map[string]string) *Catalog {
	byID := make(map[string]domain.Law, len(laws))
	for _, law := range laws {
		byID[law.ID] = law
	}
	return &Catalog{laws: laws, byID: byID, obligations: obligations}
}

// Default returns the built-in catalog of Chilean laws.
func Default() *Catalog {
	return New(defaultLaws, defaultObligations)
}

// file is the YAML shape accepted by LoadFile.
type file struct {
	Laws        []domain.Law      `yaml:"laws"`
	Obligations map[string]string `yaml:"obligations"`
}

// LoadFile reads a catalog from a YAML file. Laws are required; obligation
// templates missing from the file fall back to the built-in ones.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(f.Laws) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no laws", path)
	}

	obligations := make(map[string]string, len(defaultObligations))
	for id, text := range defaultObligations {
		obligations[id] = text
	}
	for id, text := range f.Obligations {
		obligations[id] = text
	}

	return New(f.Laws, obligations), nil
}

// Laws returns all laws in catalog order.
func (c *Catalog) Laws() []domain.Law {
	return c.laws
}

// Get looks up a law by identifier.
func (c *Catalog) Get(id string) (domain.Law, bool) {
	law, ok := c.byID[id]
	return law, ok
}

// ObligationsFor returns the structured obligations template for a law. An
// unknown identifier gets a generic compliance template.
func (c *Catalog) ObligationsFor(lawID string) string {
	if text, ok := c.obligations[lawID]; ok {
		return text
	}
	return genericObligations
}
