package gemini

import "fmt"

// EnvelopeError reports a response that arrived but did not carry generated text,
// either an envelope without candidates or an error body from the API.
// Payload is the indented JSON of what the API sent.
type EnvelopeError struct {
	Cause   error
	Payload []byte
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("unusable Gemini response: %v", e.Cause)
}

func (e *EnvelopeError) Unwrap() error {
	return e.Cause
}
