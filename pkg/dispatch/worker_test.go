package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/pkg/models"
)

func TestClassifyWorkerError(t *testing.T) {
	assert.Equal(t, FailureTool,
		ClassifyWorkerError(&WorkerError{Class: FailureTool, Err: errors.New("exit 1")}))
	assert.Equal(t, FailureTimeout,
		ClassifyWorkerError(context.DeadlineExceeded))
	assert.Equal(t, FailureInfra,
		ClassifyWorkerError(errors.New("something else")))

	wrapped := &WorkerError{Class: FailureModel, Err: errors.New("bad output")}
	assert.Equal(t, FailureModel, ClassifyWorkerError(wrapped))
	assert.ErrorContains(t, wrapped, "model")
}

func TestExecWorker_Run(t *testing.T) {
	dir := t.TempDir()

	// The script plays a worker: it reads the input path argument and writes
	// the result document next to it.
	script := filepath.Join(dir, "worker.sh")
	require.NoError(t, os.WriteFile(script, []byte(
		"#!/bin/sh\n"+
			"echo '{\"ticket_id\": \"tk-1\", \"attempt\": 1, \"success\": true, \"branch_name\": \"foundry/tk-1\"}' > \"$1.result.json\"\n",
	), 0o755))

	worker := NewExecWorker(script, dir)
	result, err := worker.Run(context.Background(), models.WorkUnit{
		TicketID: "tk-1",
		Attempt:  1,
		Title:    "Implement widget",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "foundry/tk-1", result.BranchName)

	// Input and output files are cleaned up.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "worker.sh", entries[0].Name())
}

func TestExecWorker_NoResultDocument(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "worker.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	worker := NewExecWorker(script, dir)
	_, err := worker.Run(context.Background(), models.WorkUnit{TicketID: "tk-1", Attempt: 1})
	require.Error(t, err)
	assert.Equal(t, FailureTool, ClassifyWorkerError(err))
}

func TestExecWorker_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "worker.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755))

	worker := NewExecWorker(script, dir)
	_, err := worker.Run(context.Background(), models.WorkUnit{TicketID: "tk-1", Attempt: 1})
	require.Error(t, err)
	assert.Equal(t, FailureTool, ClassifyWorkerError(err))
}

func TestExecWorker_Timeout(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "worker.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nsleep 30\n"), 0o755))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	worker := NewExecWorker(script, dir)
	_, err := worker.Run(ctx, models.WorkUnit{TicketID: "tk-1", Attempt: 1})
	require.Error(t, err)
	assert.Equal(t, FailureTimeout, ClassifyWorkerError(err))
}

func TestExecWorker_NoCommand(t *testing.T) {
	worker := NewExecWorker("", t.TempDir())
	_, err := worker.Run(context.Background(), models.WorkUnit{TicketID: "tk-1"})
	require.Error(t, err)
	assert.Equal(t, FailureInfra, ClassifyWorkerError(err))
}
