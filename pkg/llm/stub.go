package llm

import (
	"context"
	"sync"
)

// StubAdapter is a scripted Adapter for tests. Responses are consumed in
// order; when the script runs out the last response repeats.
type StubAdapter struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     []Request
}

// NewStubAdapter creates a stub that replays the given responses.
func NewStubAdapter(responses ...string) *StubAdapter {
	return &StubAdapter{responses: responses}
}

// Fail makes every subsequent Complete call return err.
func (s *StubAdapter) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Complete implements Adapter.
func (s *StubAdapter) Complete(_ context.Context, req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", NewPermanentError(errNoScript)
	}
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

// Calls returns a copy of every request the stub received.
func (s *StubAdapter) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.calls))
	copy(out, s.calls)
	return out
}

var errNoScript = &scriptError{}

type scriptError struct{}

func (*scriptError) Error() string { return "stub adapter has no scripted response" }
