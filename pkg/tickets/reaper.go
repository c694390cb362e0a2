package tickets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/events"
)

// Reaper is the periodic background task that recovers dead leases and
// promotes rejected tickets whose backoff has passed.
type Reaper struct {
	engine   *Engine
	interval time.Duration
	logger   *slog.Logger
	done     chan struct{}
}

// NewReaper creates a reaper ticking at the configured interval.
func NewReaper(engine *Engine, interval time.Duration) *Reaper {
	return &Reaper{
		engine:   engine,
		interval: interval,
		logger:   slog.With("component", "reaper"),
		done:     make(chan struct{}),
	}
}

// Start runs the reap loop until ctx is cancelled.
func (r *Reaper) Start(ctx context.Context) {
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Tick(ctx); err != nil && ctx.Err() == nil {
					r.logger.Error("Reaper tick failed", "error", err)
				}
			}
		}
	}()
	r.logger.Info("Reaper started", "interval", r.interval)
}

// Wait blocks until the reap loop has exited.
func (r *Reaper) Wait() { <-r.done }

// Tick runs one reap pass: expired leases return to ready with retry
// accounting, and changes_requested tickets past their backoff become
// claimable again.
func (r *Reaper) Tick(ctx context.Context) error {
	if err := r.reapExpiredLeases(ctx); err != nil {
		return err
	}
	return r.promoteRetries(ctx)
}

// RecoverOrphans runs once at startup: any lease that expired while no
// process was running is reaped before the dispatcher starts.
func (r *Reaper) RecoverOrphans(ctx context.Context) error {
	n, err := r.reapExpired(ctx)
	if err != nil {
		return fmt.Errorf("startup orphan recovery failed: %w", err)
	}
	if n > 0 {
		r.logger.Info("Recovered orphaned leases at startup", "count", n)
	}
	return nil
}

func (r *Reaper) reapExpiredLeases(ctx context.Context) error {
	n, err := r.reapExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		r.logger.Info("Reaped expired leases", "count", n)
	}
	return nil
}

// reapExpired finds lease-held tickets whose lease has lapsed and returns
// each to ready (or needs_review past the ceiling) in its own transaction.
func (r *Reaper) reapExpired(ctx context.Context) (int, error) {
	now := time.Now()
	expired, err := r.engine.db.Ticket.Query().
		Where(
			ticket.StateIn(ticket.StateAssigned, ticket.StateInProgress, ticket.StateVerifying),
			ticket.LeaseExpiresNotNil(),
			ticket.LeaseExpiresLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	reaped := 0
	for _, t := range expired {
		if err := r.reapOne(ctx, t); err != nil {
			r.logger.Error("Failed to reap ticket", "ticket_id", t.ID, "error", err)
			continue
		}
		reaped++
	}
	return reaped, nil
}

func (r *Reaper) reapOne(ctx context.Context, t *ent.Ticket) error {
	tx, err := r.engine.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	retryCount := t.RetryCount + 1
	to := ticket.StateReady
	if retryCount > r.engine.cfg.RetryCeiling {
		to = ticket.StateNeedsReview
	}

	// Conditional on the observed state so a last-second heartbeat or
	// completion wins over the reaper.
	update := tx.Ticket.Update().
		Where(
			ticket.IDEQ(t.ID),
			ticket.StateEQ(t.State),
			ticket.LeaseExpiresLT(time.Now()),
		).
		SetState(to).
		SetRetryCount(retryCount).
		ClearAssignee().
		ClearLeaseExpires()
	if to == ticket.StateReady {
		update = update.SetRetryAfter(time.Now().Add(r.engine.cfg.Backoff(retryCount)))
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reap lease: %w", err)
	}
	if n == 0 {
		return nil
	}

	detail := map[string]any{"retry_count": retryCount}
	if t.Assignee != nil {
		detail["assignee"] = *t.Assignee
	}
	if to == ticket.StateNeedsReview {
		detail["reason"] = "max attempts"
	}
	evt, err := appendAndSave(ctx, tx, t.ID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    t.ID,
			Activity:    "lease_expired",
			State:       string(to),
			Detail:      detail,
		})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reap: %w", err)
	}
	r.engine.publisher.Notify(ctx, evt)

	r.logger.Info("Lease expired",
		"ticket_id", t.ID, "state", to, "retry_count", retryCount)
	return nil
}

// promoteRetries moves changes_requested tickets past their backoff back to
// ready so the next claim exposes the stored feedback.
func (r *Reaper) promoteRetries(ctx context.Context) error {
	now := time.Now()
	pending, err := r.engine.db.Ticket.Query().
		Where(
			ticket.StateEQ(ticket.StateChangesRequested),
			ticket.RetryAfterNotNil(),
			ticket.RetryAfterLTE(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query retry candidates: %w", err)
	}

	for _, t := range pending {
		if err := r.promoteOne(ctx, t); err != nil {
			r.logger.Error("Failed to promote retry", "ticket_id", t.ID, "error", err)
		}
	}
	return nil
}

func (r *Reaper) promoteOne(ctx context.Context, t *ent.Ticket) error {
	tx, err := r.engine.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.Ticket.Update().
		Where(
			ticket.IDEQ(t.ID),
			ticket.StateEQ(ticket.StateChangesRequested),
		).
		SetState(ticket.StateReady).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to promote ticket: %w", err)
	}
	if n == 0 {
		return nil
	}

	evt, err := appendAndSave(ctx, tx, t.ID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    t.ID,
			Activity:    "retry_ready",
			State:       string(ticket.StateReady),
			Detail:      map[string]any{"retry_count": t.RetryCount},
		})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit promotion: %w", err)
	}
	r.engine.publisher.Notify(ctx, evt)
	return nil
}
