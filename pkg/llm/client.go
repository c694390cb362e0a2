// Package llm defines the model adapter boundary: a prompt plus history in,
// text out. Implementations classify failures as transient or permanent;
// transient failures are retried with capped exponential backoff inside the
// caller's budget.
package llm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Role of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of adapter input.
type Message struct {
	Role    Role
	Content string
}

// Request is the adapter input: a system prompt plus ordered history.
type Request struct {
	System    string
	Messages  []Message
	MaxTokens int
}

// Adapter is the model boundary. Complete blocks until the model responds
// or ctx is done.
type Adapter interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Error wraps an adapter failure with its retry classification.
type Error struct {
	Transient bool
	Err       error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// NewTransientError wraps a retryable failure (timeout, 5xx, rate limit).
func NewTransientError(err error) error { return &Error{Transient: true, Err: err} }

// NewPermanentError wraps a non-retryable failure (authorization, bad request).
func NewPermanentError(err error) error { return &Error{Transient: false, Err: err} }

// IsTransient reports whether err is a retryable adapter failure.
// Unclassified errors (network, context deadline) count as transient.
func IsTransient(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Transient
	}
	return !errors.Is(err, context.Canceled)
}

// CompleteWithRetry calls the adapter, retrying transient failures up to
// maxRetries with capped exponential backoff. Permanent failures and context
// cancellation surface immediately.
func CompleteWithRetry(ctx context.Context, adapter Adapter, req Request, maxRetries int, perCallTimeout time.Duration) (string, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 10 * time.Second

	var result string
	op := func() error {
		callCtx, cancel := context.WithTimeout(ctx, perCallTimeout)
		defer cancel()

		out, err := adapter.Complete(callCtx, req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if !IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = out
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(maxRetries)), ctx))
	if err != nil {
		return "", err
	}
	return result, nil
}
