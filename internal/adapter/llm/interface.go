// Package llm provides an abstraction for text-completion clients.
package llm

import "context"

// CompletionClient is the text-completion service the pipeline consumes:
// prompt in, text out, possible failure.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Ensure both implementations satisfy the interface.
var (
	_ CompletionClient = (*Client)(nil)
	_ CompletionClient = (*MockClient)(nil)
)
