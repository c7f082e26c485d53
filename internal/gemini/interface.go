// Package gemini submits prompts to the Gemini API and returns the generated narrative.
package gemini

import "context"

// Client sends a single prompt to the model and returns its generated text
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
