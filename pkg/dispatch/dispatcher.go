// Package dispatch runs the build loop: it claims ready tickets, hands each
// to a worker process, routes the result through the critic, opens the pull
// request, and drives the deploy step.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/buildloop/foundry/pkg/tickets"
)

// Dispatcher polls for ready work and runs each work unit through the
// worker/critic/deploy pipeline. A global semaphore bounds total in-flight
// work; a per-session count bounds how much one session can monopolize.
type Dispatcher struct {
	engine    *tickets.Engine
	worker    WorkerRunner
	critic    *CriticClient
	repoHost  *RepoHost
	retrieval *RetrievalClient
	deploy    *DeployClient
	cfg       config.DispatchConfig
	queue     config.QueueConfig
	logger    *slog.Logger

	sem *semaphore.Weighted

	mu         sync.Mutex
	perSession map[string]int

	wg   sync.WaitGroup
	done chan struct{}
}

// NewDispatcher wires the dispatch loop and its collaborator clients.
func NewDispatcher(engine *tickets.Engine, worker WorkerRunner, dispatchCfg config.DispatchConfig, queueCfg config.QueueConfig) *Dispatcher {
	return &Dispatcher{
		engine:     engine,
		worker:     worker,
		critic:     NewCriticClient(dispatchCfg.CriticURL, dispatchCfg.CriticTimeout, dispatchCfg.CriticRetries),
		repoHost:   NewRepoHost(dispatchCfg.RepoHostToken, ""),
		retrieval:  NewRetrievalClient(dispatchCfg.RetrievalURL),
		deploy:     NewDeployClient(dispatchCfg.DeployURL),
		cfg:        dispatchCfg,
		queue:      queueCfg,
		logger:     slog.With("component", "dispatch"),
		sem:        semaphore.NewWeighted(int64(dispatchCfg.MaxParallel)),
		perSession: make(map[string]int),
		done:       make(chan struct{}),
	}
}

// Start runs the dispatch loop until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		defer close(d.done)
		ticker := time.NewTicker(d.cfg.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.tick(ctx)
			}
		}
	}()
	d.logger.Info("Dispatcher started",
		"max_parallel", d.cfg.MaxParallel, "max_per_session", d.cfg.MaxPerSession)
}

// Drain stops accepting work and waits for in-flight work units, bounded by
// the graceful shutdown timeout.
func (d *Dispatcher) Drain() {
	<-d.done

	finished := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		d.logger.Info("Dispatcher drained")
	case <-time.After(d.queue.GracefulShutdownTimeout):
		d.logger.Warn("Dispatcher drain timed out, abandoning in-flight work")
	}
}

// tick claims as much ready work as the ceilings allow and launches a
// pipeline goroutine per claim.
func (d *Dispatcher) tick(ctx context.Context) {
	for {
		if !d.sem.TryAcquire(1) {
			return
		}

		workerID := "dispatch-" + uuid.NewString()
		t, err := d.engine.ClaimExcluding(ctx, models.ClaimRequest{WorkerID: workerID}, d.saturatedSessions())
		if err != nil {
			d.sem.Release(1)
			if ctx.Err() == nil {
				d.logger.Error("Claim failed", "error", err)
			}
			return
		}
		if t == nil {
			d.sem.Release(1)
			return
		}

		d.trackSession(sessionOf(t), 1)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			defer d.sem.Release(1)
			defer d.trackSession(sessionOf(t), -1)
			d.process(ctx, t, workerID)
		}()
	}
}

// saturatedSessions returns sessions at their per-session in-flight ceiling.
func (d *Dispatcher) saturatedSessions() []string {
	if d.cfg.MaxPerSession <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for sid, n := range d.perSession {
		if n >= d.cfg.MaxPerSession {
			out = append(out, sid)
		}
	}
	return out
}

func (d *Dispatcher) trackSession(sessionID string, delta int) {
	if sessionID == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.perSession[sessionID] += delta
	if d.perSession[sessionID] <= 0 {
		delete(d.perSession, sessionID)
	}
}

// process runs one claimed ticket through worker execution and, on success,
// verification. The worker runs under the lease deadline with a heartbeat
// goroutine renewing the lease; losing the lease cancels the worker.
func (d *Dispatcher) process(ctx context.Context, t *ent.Ticket, workerID string) {
	logger := d.logger.With("ticket_id", t.ID, "attempt", t.Attempt)

	if _, err := d.engine.Start(ctx, t.ID, workerID); err != nil {
		logger.Error("Failed to start ticket", "error", err)
		return
	}

	workCtx := ctx
	cancel := context.CancelFunc(func() {})
	if t.LeaseExpires != nil {
		workCtx, cancel = context.WithDeadline(ctx, *t.LeaseExpires)
	}
	defer cancel()

	stopHeartbeat := d.startHeartbeat(workCtx, cancel, t.ID, workerID)

	unit := d.buildWorkUnit(workCtx, t)
	result, runErr := d.worker.Run(workCtx, unit)
	stopHeartbeat()

	if runErr != nil {
		class := ClassifyWorkerError(runErr)
		logger.Warn("Worker failed", "failure_class", class, "error", runErr)
		d.reportCompletion(ctx, t.ID, models.CompleteRequest{
			WorkerID:     workerID,
			Success:      false,
			FailureClass: class,
			Error:        runErr.Error(),
		}, logger)
		return
	}
	if !result.Success {
		class := result.FailureClass
		if class == "" {
			class = FailureModel
		}
		logger.Warn("Worker reported failure", "failure_class", class, "error", result.Error)
		d.reportCompletion(ctx, t.ID, models.CompleteRequest{
			WorkerID:     workerID,
			Success:      false,
			FailureClass: class,
			Error:        result.Error,
		}, logger)
		return
	}

	updated, err := d.engine.Complete(ctx, t.ID, models.CompleteRequest{
		WorkerID:       workerID,
		Success:        true,
		BranchName:     result.BranchName,
		Files:          result.Files,
		Summary:        result.Summary,
		CriteriaStatus: result.CriteriaStatus,
	})
	if err != nil {
		// Lease lost between worker finish and report; the reaper owns
		// the ticket now.
		logger.Warn("Completion rejected", "error", err)
		return
	}

	d.verify(ctx, updated, result, logger)
}

// reportCompletion submits a failure result; a stale-lease rejection is
// expected when the reaper got there first.
func (d *Dispatcher) reportCompletion(ctx context.Context, ticketID string, req models.CompleteRequest, logger *slog.Logger) {
	if _, err := d.engine.Complete(ctx, ticketID, req); err != nil {
		if errors.Is(err, services.ErrConflict) {
			logger.Info("Completion superseded by lease expiry")
			return
		}
		logger.Error("Failed to report completion", "error", err)
	}
}

// startHeartbeat renews the lease on the configured cadence until the
// returned stop function is called. A heartbeat conflict means the lease was
// reaped or re-claimed; the work is cancelled.
func (d *Dispatcher) startHeartbeat(ctx context.Context, cancel context.CancelFunc, ticketID, workerID string) func() {
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(d.queue.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := d.engine.Heartbeat(ctx, ticketID, workerID); err != nil {
					if errors.Is(err, services.ErrConflict) {
						d.logger.Warn("Lease lost, cancelling work", "ticket_id", ticketID)
						cancel()
						return
					}
					d.logger.Error("Heartbeat failed", "ticket_id", ticketID, "error", err)
				}
			}
		}
	}()
	return func() { once.Do(func() { close(stop) }) }
}

// buildWorkUnit assembles the worker's input from the ticket plus retrieved
// code context and feedback from prior attempts.
func (d *Dispatcher) buildWorkUnit(ctx context.Context, t *ent.Ticket) models.WorkUnit {
	unit := models.WorkUnit{
		TicketID:           t.ID,
		Attempt:            t.Attempt,
		TraceID:            t.TraceID,
		Title:              t.Title,
		Description:        t.Description,
		AcceptanceCriteria: t.AcceptanceCriteria,
		RepoURL:            t.RepoURL,
		FileHints:          t.FileHints,
		Feedback:           feedbackItems(t.CriticFeedback),
	}
	if t.BranchName != nil {
		unit.BranchName = *t.BranchName
	}
	if unit.BranchName == "" {
		unit.BranchName = fmt.Sprintf("foundry/%s", t.ID)
	}
	unit.RetrievedContext = d.retrieval.Fetch(ctx, t.RepoURL, t.Title+"\n"+t.Description, t.FileHints)
	return unit
}

// verify routes the successful attempt through the critic and, on approval,
// opens the pull request and starts the deploy step.
func (d *Dispatcher) verify(ctx context.Context, t *ent.Ticket, result *models.WorkerResult, logger *slog.Logger) {
	branch := result.BranchName
	if branch == "" && t.BranchName != nil {
		branch = *t.BranchName
	}

	verdict, err := d.critic.Review(ctx, CriticRequest{
		TicketID:           t.ID,
		Attempt:            t.Attempt,
		TraceID:            t.TraceID,
		RepoURL:            t.RepoURL,
		BranchName:         branch,
		Files:              result.Files,
		Summary:            result.Summary,
		AcceptanceCriteria: t.AcceptanceCriteria,
	})
	if err != nil {
		// The ticket stays in verifying; lease expiry returns it to the
		// queue through the reaper.
		logger.Error("Critic unavailable, leaving ticket in verifying", "error", err)
		return
	}

	if !verdict.Approve {
		logger.Info("Critic requested changes", "items", len(verdict.Feedback))
		if _, err := d.engine.RequestChanges(ctx, t.ID, t.Attempt, verdict.Feedback); err != nil {
			logger.Error("Failed to record critic rejection", "error", err)
		}
		return
	}

	prURL := result.PRURL
	if prURL == "" && d.repoHost.Enabled() && branch != "" && t.RepoURL != "" {
		prURL, err = d.repoHost.OpenPullRequest(ctx, t.RepoURL, branch, t.Title, pullRequestText(t, result))
		if err != nil {
			logger.Warn("Failed to open pull request", "error", err)
			prURL = ""
		}
	}

	updated, err := d.engine.ApproveToReview(ctx, t.ID, t.Attempt, prURL)
	if err != nil {
		logger.Error("Failed to record critic approval", "error", err)
		return
	}

	if d.deploy.Enabled() {
		if err := d.deploy.Trigger(ctx, t.ID, t.Attempt, t.RepoURL, branch, prURL); err != nil {
			// The deploy service owns the outcome; a failed trigger is
			// reported as a deploy failure so retry accounting applies.
			logger.Error("Deploy trigger failed", "error", err)
			if _, err := d.engine.DeployResult(ctx, t.ID, models.DeployResultRequest{
				Success: false,
				Reason:  "deploy trigger failed: " + err.Error(),
				Attempt: updated.Attempt,
			}); err != nil {
				logger.Error("Failed to record deploy failure", "error", err)
			}
		}
		return
	}

	// No deploy collaborator configured: the approved attempt completes
	// directly.
	if _, err := d.engine.DeployResult(ctx, t.ID, models.DeployResultRequest{
		Success: true,
		Attempt: updated.Attempt,
	}); err != nil {
		logger.Error("Failed to complete ticket", "error", err)
	}
}

// pullRequestText renders the PR body from the ticket and result summary.
func pullRequestText(t *ent.Ticket, result *models.WorkerResult) string {
	body := t.Description
	if result.Summary != "" {
		body += "\n\n## Summary\n\n" + result.Summary
	}
	return body
}

// feedbackItems converts the ticket's stored feedback column back to typed
// items for the work unit.
func feedbackItems(stored []map[string]interface{}) []models.CriticFeedbackItem {
	if len(stored) == 0 {
		return nil
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil
	}
	var items []models.CriticFeedbackItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func sessionOf(t *ent.Ticket) string {
	if t.SessionID == nil {
		return ""
	}
	return *t.SessionID
}
