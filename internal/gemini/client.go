package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Generate sends the prompt to Gemini and returns the text of the first candidate.
// Rotates API keys on 429 / quota errors.
func (c *implClient) Generate(ctx context.Context, prompt string) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API key configured")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := c.key()

		client, err := genai.NewClient(ctx, c.clientConfig(key))
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey(idx)
			continue
		}

		c.logger.Debug(ctx, "Calling %s with key %d (%d prompt bytes)", c.model, idx+1, len(prompt))

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			if isRateLimited(err) {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				c.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", apiEnvelope(fmt.Errorf("generate content: %w", err))
		}

		return extractText(result)
	}

	return "", apiEnvelope(fmt.Errorf("all API keys exhausted: %w", lastErr))
}

func (c *implClient) clientConfig(key string) *genai.ClientConfig {
	cfg := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	return cfg
}

func (c *implClient) key() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentKey, c.apiKeys[c.currentKey]
}

// rotateKey moves past idx unless another caller already rotated away from it
func (c *implClient) rotateKey(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == idx {
		c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	}
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}

// apiEnvelope turns an error carrying a Gemini error body into an EnvelopeError
// whose payload is that body, so it is reported like any other unusable response.
// Errors without a body (transport failures) are returned unchanged.
func apiEnvelope(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	payload, mErr := json.MarshalIndent(map[string]genai.APIError{"error": apiErr}, "", "  ")
	if mErr != nil {
		payload = []byte(apiErr.Error())
	}
	return &EnvelopeError{Cause: err, Payload: payload}
}

// extractText concatenates the text parts of the first candidate
func extractText(result *genai.GenerateContentResponse) (string, error) {
	var cause error
	switch {
	case result == nil:
		cause = errors.New("empty response")
	case len(result.Candidates) == 0:
		cause = errors.New("response has no candidates")
	case result.Candidates[0].Content == nil:
		cause = errors.New("first candidate has no content")
	default:
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			text.WriteString(part.Text)
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
		cause = errors.New("first candidate has no text parts")
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		payload = []byte(fmt.Sprintf("%+v", result))
	}
	return "", &EnvelopeError{Cause: cause, Payload: payload}
}
