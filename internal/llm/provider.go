// Package llm submits a saved prompt to one of the interchangeable
// text-generation backends and stores the returned insights.
package llm

import "context"

// Provider is the capability every backend offers: submit a prompt, receive
// text or failure. Exactly one backend is selected per invocation; there is
// no fallback between them and no retries.
type Provider interface {
	// Name identifies the backend in diagnostics.
	Name() string
	// Generate submits the prompt and returns the backend's text response.
	Generate(ctx context.Context, prompt string) (string, error)
}
