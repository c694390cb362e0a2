package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
)

// Complete ingests a worker's result for its current attempt. Success moves
// the ticket to verifying for the critic; failure applies the retry rules.
// A report against a stale lease (reaped or re-claimed) is rejected.
func (e *Engine) Complete(ctx context.Context, ticketID string, req models.CompleteRequest) (*ent.Ticket, error) {
	if req.WorkerID == "" {
		return nil, services.NewValidationError("worker_id", "required")
	}

	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if !leaseHeld(t.State) {
		return nil, services.NewStateConflict("ticket", ticketID, string(t.State), "complete")
	}
	if t.Assignee == nil || *t.Assignee != req.WorkerID {
		return nil, services.ErrConflict
	}
	if t.LeaseExpires != nil && t.LeaseExpires.Before(time.Now()) {
		return nil, services.ErrConflict
	}

	var evts []*ent.Event
	var updated *ent.Ticket

	if req.Success {
		update := tx.Ticket.UpdateOneID(ticketID).
			SetState(ticket.StateVerifying)
		if req.BranchName != "" {
			update = update.SetBranchName(req.BranchName)
		}
		if len(req.Files) > 0 {
			update = update.SetFilesInvolved(req.Files)
		}
		updated, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update ticket: %w", err)
		}

		detail := map[string]any{"attempt": t.Attempt}
		if req.Summary != "" {
			detail["summary"] = req.Summary
		}
		if len(req.CriteriaStatus) > 0 {
			detail["criteria_status"] = toJSONValue(req.CriteriaStatus)
		}
		evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
			events.TicketActivityPayload{
				BasePayload: events.NewBase(events.EventTicketActivity),
				TicketID:    ticketID,
				Activity:    "worker_completed",
				State:       string(ticket.StateVerifying),
				Detail:      detail,
			})
		if err != nil {
			return nil, err
		}
		evts = append(evts, evt)
	} else {
		updated, evts, err = e.applyRetry(ctx, tx, t, "worker_failed", map[string]any{
			"failure_class": req.FailureClass,
			"error":         req.Error,
		}, func(u *ent.TicketUpdateOne) {
			if req.FailureClass != "" {
				u.SetFailureClass(req.FailureClass)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}
	e.publisher.Notify(ctx, evts...)

	e.logger.Info("Worker completion processed",
		"ticket_id", ticketID, "success", req.Success, "state", updated.State)
	return updated, nil
}

// ApproveToReview records a critic approval for the attempt: the pull
// request is open and the ticket awaits deploy. A duplicate verdict for an
// already-resolved attempt is a logged no-op.
func (e *Engine) ApproveToReview(ctx context.Context, ticketID string, attempt int, prURL string) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.State != ticket.StateVerifying || t.Attempt != attempt {
		e.logger.Warn("Duplicate or stale critic approval ignored",
			"ticket_id", ticketID, "attempt", attempt, "state", t.State)
		return t, nil
	}

	update := tx.Ticket.UpdateOneID(ticketID).
		SetState(ticket.StateInReview).
		ClearAssignee().
		ClearLeaseExpires()
	if prURL != "" {
		update = update.SetPrURL(prURL)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    ticketID,
			Activity:    "critic_approved",
			State:       string(ticket.StateInReview),
			Detail:      map[string]any{"attempt": attempt, "pr_url": prURL},
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	e.publisher.Notify(ctx, evt)
	return updated, nil
}

// RequestChanges records a critic rejection: feedback is stored on the
// ticket and the retry rules apply. Duplicate verdicts for a resolved
// attempt are logged no-ops.
func (e *Engine) RequestChanges(ctx context.Context, ticketID string, attempt int, feedback []models.CriticFeedbackItem) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.State != ticket.StateVerifying || t.Attempt != attempt {
		e.logger.Warn("Duplicate or stale critic rejection ignored",
			"ticket_id", ticketID, "attempt", attempt, "state", t.State)
		return t, nil
	}

	updated, evts, err := e.applyRejection(ctx, tx, t, feedback)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}
	e.publisher.Notify(ctx, evts...)
	return updated, nil
}

// DeployResult ingests the deploy (or PR-closure) completion signal.
// Idempotent per (ticket, attempt): a duplicate for a resolved attempt is a
// logged no-op.
func (e *Engine) DeployResult(ctx context.Context, ticketID string, req models.DeployResultRequest) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.State != ticket.StateInReview || t.Attempt != req.Attempt {
		e.logger.Warn("Duplicate or stale deploy result ignored",
			"ticket_id", ticketID, "attempt", req.Attempt, "state", t.State)
		return t, nil
	}

	var evts []*ent.Event
	var updated *ent.Ticket

	if req.Success {
		updated, err = tx.Ticket.UpdateOneID(ticketID).
			SetState(ticket.StateDone).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update ticket: %w", err)
		}
		evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
			events.TicketActivityPayload{
				BasePayload: events.NewBase(events.EventTicketActivity),
				TicketID:    ticketID,
				Activity:    "deployed",
				State:       string(ticket.StateDone),
				Detail:      map[string]any{"attempt": req.Attempt},
			})
		if err != nil {
			return nil, err
		}
		evts = append(evts, evt)

		terminalEvts, err := e.finishTerminal(ctx, tx, t, ticket.StateDone)
		if err != nil {
			return nil, err
		}
		evts = append(evts, terminalEvts...)
	} else {
		feedback := []models.CriticFeedbackItem{{
			Severity:    "error",
			Category:    "deploy",
			Description: req.Reason,
		}}
		updated, evts, err = e.applyRejection(ctx, tx, t, feedback)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit deploy result: %w", err)
	}
	e.publisher.Notify(ctx, evts...)

	e.logger.Info("Deploy result processed",
		"ticket_id", ticketID, "success", req.Success, "state", updated.State)
	return updated, nil
}

// applyRejection stores feedback and applies retry accounting: below the
// ceiling the ticket waits out its backoff in changes_requested; at the
// ceiling it terminates in needs_review for a human.
func (e *Engine) applyRejection(ctx context.Context, tx *ent.Tx, t *ent.Ticket, feedback []models.CriticFeedbackItem) (*ent.Ticket, []*ent.Event, error) {
	retryCount := t.RetryCount + 1

	if retryCount > e.cfg.RetryCeiling {
		updated, err := tx.Ticket.UpdateOneID(t.ID).
			SetState(ticket.StateNeedsReview).
			SetRejectionCount(t.RejectionCount + 1).
			SetCriticFeedback(feedbackMaps(feedback)).
			ClearAssignee().
			ClearLeaseExpires().
			Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to update ticket: %w", err)
		}
		evt, err := appendAndSave(ctx, tx, t.ID, sessionIDOf(t),
			events.TicketActivityPayload{
				BasePayload: events.NewBase(events.EventTicketActivity),
				TicketID:    t.ID,
				Activity:    "needs_review",
				State:       string(ticket.StateNeedsReview),
				Detail:      map[string]any{"reason": "max attempts"},
			})
		if err != nil {
			return nil, nil, err
		}
		return updated, []*ent.Event{evt}, nil
	}

	retryAfter := time.Now().Add(e.cfg.Backoff(retryCount))
	updated, err := tx.Ticket.UpdateOneID(t.ID).
		SetState(ticket.StateChangesRequested).
		SetRetryCount(retryCount).
		SetRejectionCount(t.RejectionCount + 1).
		SetRetryAfter(retryAfter).
		SetCriticFeedback(feedbackMaps(feedback)).
		ClearAssignee().
		ClearLeaseExpires().
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	evt, err := appendAndSave(ctx, tx, t.ID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    t.ID,
			Activity:    "changes_requested",
			State:       string(ticket.StateChangesRequested),
			Detail: map[string]any{
				"retry_count": retryCount,
				"retry_after": retryAfter.Format(time.RFC3339),
			},
		})
	if err != nil {
		return nil, nil, err
	}
	return updated, []*ent.Event{evt}, nil
}

// applyRetry is applyRejection for worker failures: same accounting, but the
// ticket returns straight to ready once its backoff passes.
func (e *Engine) applyRetry(ctx context.Context, tx *ent.Tx, t *ent.Ticket, activity string, detail map[string]any, mutate func(*ent.TicketUpdateOne)) (*ent.Ticket, []*ent.Event, error) {
	retryCount := t.RetryCount + 1
	to := ticket.StateReady
	if retryCount > e.cfg.RetryCeiling {
		to = ticket.StateNeedsReview
		detail["reason"] = "max attempts"
	}

	update := tx.Ticket.UpdateOneID(t.ID).
		SetState(to).
		SetRetryCount(retryCount).
		ClearAssignee().
		ClearLeaseExpires()
	if to == ticket.StateReady {
		update = update.SetRetryAfter(time.Now().Add(e.cfg.Backoff(retryCount)))
	}
	if mutate != nil {
		mutate(update)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, t.ID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    t.ID,
			Activity:    activity,
			State:       string(to),
			Detail:      detail,
		})
	if err != nil {
		return nil, nil, err
	}
	return updated, []*ent.Event{evt}, nil
}

// feedbackMaps converts typed feedback items to the JSON column shape.
func feedbackMaps(items []models.CriticFeedbackItem) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m := map[string]interface{}{
			"severity":    item.Severity,
			"category":    item.Category,
			"description": item.Description,
		}
		if item.File != "" {
			m["file"] = item.File
		}
		if item.Line > 0 {
			m["line"] = item.Line
		}
		if item.Suggestion != "" {
			m["suggestion"] = item.Suggestion
		}
		out = append(out, m)
	}
	return out
}

// toJSONValue round-trips a typed value into plain JSON types for event
// detail payloads.
func toJSONValue(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
