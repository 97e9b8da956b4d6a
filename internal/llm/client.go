package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrTransport       = errors.New("transport failure")
	ErrMalformed       = errors.New("malformed response")
	ErrEmptyCompletion = errors.New("empty completion")
)

// UpstreamError - non-success status from the provider. Keeps the raw body,
// the provider does not guarantee a parseable error payload.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}

type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
