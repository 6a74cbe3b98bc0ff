// Package llm provides clients for external chat-completion providers.
package llm

import "context"

// Client is the interface for completion operations. The recommendation
// service depends on this interface, not a concrete provider, so tests can
// inject a mock and no live network access is needed.
type Client interface {
	// Complete sends a single completion request and returns the raw text
	// of the model's reply. Callers are expected to request JSON output via
	// the system prompt; no retry is attempted on failure.
	Complete(ctx context.Context, system, prompt string, temperature float32) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Compile-time interface checks.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
