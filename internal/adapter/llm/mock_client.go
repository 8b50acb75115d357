package llm

import (
	"context"
	"fmt"
)

// MockClient is a deterministic offline implementation of CompletionClient.
// Its placeholder echoes only the first hundred characters of the prompt, so
// callers parsing for law identifiers see none and exercise their fallbacks.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete returns a placeholder derived from the prompt prefix.
func (m *MockClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	return fmt.Sprintf("[MOCK] Offline completion for prompt: %q", truncate(prompt, 100)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
