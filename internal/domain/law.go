package domain

// Law is one statute supported by the agent. The catalog is read-only; the
// ID doubles as the key for obligation templates and law-text lookups.
type Law struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}
