package llm

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled client for every generation call.
var ErrDisabled = errors.New("llm disabled: no API key configured")

// Disabled is a Client for running without an API key. Generation calls fail
// with ErrDisabled so callers fall back to their non-LLM paths: keyword
// intent detection, canned chat replies and template result formatting.
type Disabled struct{}

// NewDisabled creates a client whose generation calls always fail.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// GenerateContent always fails with ErrDisabled.
func (*Disabled) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	return "", ErrDisabled
}

// GenerateJSON always fails with ErrDisabled.
func (*Disabled) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	return "", ErrDisabled
}

// GenerateChat always fails with ErrDisabled.
func (*Disabled) GenerateChat(_ context.Context, _ string, _ []Message, _ ModelTier) (string, error) {
	return "", ErrDisabled
}

// GetModel reports no model for any tier.
func (*Disabled) GetModel(_ ModelTier) string {
	return ""
}

// Close is a no-op.
func (*Disabled) Close() error {
	return nil
}
