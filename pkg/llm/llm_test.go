package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
		want Envelope
	}{
		{
			name: "plain json",
			raw:  `{"message": "What database?", "progress": 45, "ready_for_spec": false}`,
			ok:   true,
			want: Envelope{Message: "What database?", Progress: 45},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"message\": \"hi\", \"next_category\": \"tech_stack\"}\n```",
			ok:   true,
			want: Envelope{Message: "hi", NextCategory: "tech_stack"},
		},
		{
			name: "fence without language tag",
			raw:  "```\n{\"message\": \"hi\"}\n```",
			ok:   true,
			want: Envelope{Message: "hi"},
		},
		{
			name: "gathered context survives",
			raw:  `{"message": "ok", "gathered": {"tech_stack": {"backend": "go"}}}`,
			ok:   true,
			want: Envelope{Message: "ok", Gathered: map[string]any{
				"tech_stack": map[string]any{"backend": "go"},
			}},
		},
		{name: "prose", raw: "Sure, what would you like to build?", ok: false},
		{name: "broken json", raw: `{"message": "hi"`, ok: false},
		{name: "empty message", raw: `{"progress": 10}`, ok: false},
		{name: "empty input", raw: "", ok: false},
		{name: "whitespace only", raw: "  \n\t", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, ok := ParseEnvelope(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, env)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(NewTransientError(errors.New("rate limited"))))
	assert.False(t, IsTransient(NewPermanentError(errors.New("bad key"))))

	// Unclassified errors count as transient, cancellation does not.
	assert.True(t, IsTransient(errors.New("connection reset")))
	assert.False(t, IsTransient(context.Canceled))
}

// flakyAdapter fails a fixed number of times before succeeding.
type flakyAdapter struct {
	failures int32
	failWith error
	calls    atomic.Int32
}

func (f *flakyAdapter) Complete(_ context.Context, _ Request) (string, error) {
	n := f.calls.Add(1)
	if n <= f.failures {
		return "", f.failWith
	}
	return "recovered", nil
}

func TestCompleteWithRetry_TransientRecovers(t *testing.T) {
	adapter := &flakyAdapter{failures: 2, failWith: NewTransientError(errors.New("overloaded"))}

	out, err := CompleteWithRetry(context.Background(), adapter, Request{}, 3, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, int32(3), adapter.calls.Load())
}

func TestCompleteWithRetry_PermanentFailsFast(t *testing.T) {
	adapter := &flakyAdapter{failures: 10, failWith: NewPermanentError(errors.New("invalid api key"))}

	_, err := CompleteWithRetry(context.Background(), adapter, Request{}, 3, time.Second)
	require.Error(t, err)
	assert.False(t, IsTransient(err))
	assert.Equal(t, int32(1), adapter.calls.Load())
}

func TestCompleteWithRetry_RetriesExhausted(t *testing.T) {
	adapter := &flakyAdapter{failures: 10, failWith: NewTransientError(errors.New("overloaded"))}

	_, err := CompleteWithRetry(context.Background(), adapter, Request{}, 1, time.Second)
	require.Error(t, err)
	assert.Equal(t, int32(2), adapter.calls.Load())
}

func TestCompleteWithRetry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	adapter := &flakyAdapter{failures: 10, failWith: NewTransientError(errors.New("overloaded"))}
	_, err := CompleteWithRetry(ctx, adapter, Request{}, 3, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, adapter.calls.Load(), int32(1))
}

func TestStubAdapter(t *testing.T) {
	stub := NewStubAdapter("first", "second")

	out, err := stub.Complete(context.Background(), Request{System: "sys"})
	require.NoError(t, err)
	assert.Equal(t, "first", out)

	out, err = stub.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", out)

	// The last response repeats once the script runs out.
	out, err = stub.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", out)

	calls := stub.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "sys", calls[0].System)
}

func TestStubAdapter_Empty(t *testing.T) {
	stub := NewStubAdapter()
	_, err := stub.Complete(context.Background(), Request{})
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}
