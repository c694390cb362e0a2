package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/buildloop/foundry/pkg/models"
)

// Worker failure classifications recorded on the ticket.
const (
	FailureTimeout = "timeout"
	FailureTool    = "tool"
	FailureModel   = "model"
	FailureInfra   = "infra"
)

// WorkerRunner hands a work unit to a worker process and returns its result
// document. Implementations own the IPC; the contract is the JSON envelope.
type WorkerRunner interface {
	Run(ctx context.Context, unit models.WorkUnit) (*models.WorkerResult, error)
}

// WorkerError carries the failure classification for a worker launch.
type WorkerError struct {
	Class string
	Err   error
}

func (e *WorkerError) Error() string { return fmt.Sprintf("worker %s failure: %v", e.Class, e.Err) }
func (e *WorkerError) Unwrap() error { return e.Err }

// ClassifyWorkerError returns the failure class of err, defaulting to infra.
func ClassifyWorkerError(err error) string {
	var we *WorkerError
	if errors.As(err, &we) {
		return we.Class
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	return FailureInfra
}

// ExecWorker launches the configured worker command with the work unit
// written to a JSON input file; the worker writes its result document next
// to it. The command runs under the caller's context so lease expiry or
// shutdown kills it.
type ExecWorker struct {
	Command string
	WorkDir string
}

// NewExecWorker creates an ExecWorker.
func NewExecWorker(command, workDir string) *ExecWorker {
	return &ExecWorker{Command: command, WorkDir: workDir}
}

// Run implements WorkerRunner.
func (w *ExecWorker) Run(ctx context.Context, unit models.WorkUnit) (*models.WorkerResult, error) {
	if w.Command == "" {
		return nil, &WorkerError{Class: FailureInfra, Err: errors.New("no worker command configured")}
	}

	inputPath := filepath.Join(w.WorkDir,
		fmt.Sprintf("work-%s-attempt-%d.json", unit.TicketID, unit.Attempt))
	outputPath := inputPath + ".result.json"

	data, err := json.Marshal(unit)
	if err != nil {
		return nil, &WorkerError{Class: FailureInfra, Err: fmt.Errorf("failed to marshal work unit: %w", err)}
	}
	if err := os.WriteFile(inputPath, data, 0o600); err != nil {
		return nil, &WorkerError{Class: FailureInfra, Err: fmt.Errorf("failed to write work unit: %w", err)}
	}
	defer os.Remove(inputPath)
	defer os.Remove(outputPath)

	parts := strings.Fields(w.Command)
	args := append(parts[1:], inputPath)
	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Dir = w.WorkDir

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &WorkerError{Class: FailureTimeout, Err: err}
		}
		return nil, &WorkerError{Class: FailureTool, Err: err}
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, &WorkerError{Class: FailureTool, Err: fmt.Errorf("worker produced no result document: %w", err)}
	}
	var result models.WorkerResult
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, &WorkerError{Class: FailureTool, Err: fmt.Errorf("worker result is not valid JSON: %w", err)}
	}
	return &result, nil
}
