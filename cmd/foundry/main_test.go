package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"clean shutdown", nil, 0},
		{"startup failure", errors.New("failed to load configuration"), 1},
		{"runtime failure", &runtimeError{err: errors.New("listener died")}, 2},
		{"wrapped runtime failure", fmt.Errorf("shutdown: %w", &runtimeError{err: errors.New("accept: connection reset")}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, exitCode(tt.err))
		})
	}
}

func TestRuntimeErrorUnwraps(t *testing.T) {
	inner := errors.New("listener died")
	err := &runtimeError{err: inner}
	assert.Equal(t, "listener died", err.Error())
	assert.ErrorIs(t, err, inner)
}
