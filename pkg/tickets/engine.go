// Package tickets implements the ticket engine: lifecycle state machine,
// lease-based claims, heartbeat and reaper, retry accounting, dependency
// unblock, and session-completion propagation.
package tickets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/ent/ticketdependency"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
)

// Engine owns all ticket lifecycle transitions. Claims resolve contention by
// a conditional update on the prior state; on PostgreSQL candidate selection
// additionally uses SKIP LOCKED so contending claimers do not serialize.
type Engine struct {
	db        *database.Client
	publisher *events.Publisher
	cfg       config.QueueConfig
	logger    *slog.Logger
}

// NewEngine creates a ticket engine.
func NewEngine(db *database.Client, publisher *events.Publisher, cfg config.QueueConfig) *Engine {
	return &Engine{
		db:        db,
		publisher: publisher,
		cfg:       cfg,
		logger:    slog.With("component", "tickets"),
	}
}

// claimCandidates bounds how many ready tickets one claim attempt inspects
// before reporting no work.
const claimCandidates = 5

// Claim assigns the next ready agent ticket to the worker and acquires a
// lease, all in one transaction. Returns (nil, nil) when no work is
// available. Priority orders the selection; retry_after gates re-claims.
func (e *Engine) Claim(ctx context.Context, req models.ClaimRequest) (*ent.Ticket, error) {
	return e.claim(ctx, req, nil)
}

// ClaimExcluding is Claim with sessions excluded from selection; the
// dispatcher uses it to enforce its per-session parallelism ceiling.
func (e *Engine) ClaimExcluding(ctx context.Context, req models.ClaimRequest, excludeSessions []string) (*ent.Ticket, error) {
	return e.claim(ctx, req, excludeSessions)
}

func (e *Engine) claim(ctx context.Context, req models.ClaimRequest, excludeSessions []string) (*ent.Ticket, error) {
	if req.WorkerID == "" {
		return nil, services.NewValidationError("worker_id", "required")
	}

	now := time.Now()
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Ticket.Query().
		Where(
			ticket.StateEQ(ticket.StateReady),
			ticket.AssigneeKindEQ(ticket.AssigneeKindAgent),
			ticket.Or(
				ticket.RetryAfterIsNil(),
				ticket.RetryAfterLTE(now),
			),
		).
		Order(byPriority, ent.Asc(ticket.FieldCreatedAt)).
		Limit(claimCandidates)
	if len(excludeSessions) > 0 {
		query = query.Where(ticket.Or(
			ticket.SessionIDIsNil(),
			ticket.SessionIDNotIn(excludeSessions...),
		))
	}
	if e.db.IsPostgres() {
		query = query.ForUpdate(entsql.WithLockAction(entsql.SkipLocked))
	}

	candidates, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query ready tickets: %w", err)
	}

	for _, cand := range candidates {
		leaseSeconds := cand.LeaseSeconds
		if req.LeaseSeconds > 0 {
			leaseSeconds = req.LeaseSeconds
		}
		if leaseSeconds <= 0 {
			leaseSeconds = int(e.cfg.LeaseDuration.Seconds())
		}
		expires := now.Add(time.Duration(leaseSeconds) * time.Second)

		// The conditional update is the correctness mechanism on both
		// dialects; exactly one claimer flips the row out of ready.
		n, err := tx.Ticket.Update().
			Where(
				ticket.IDEQ(cand.ID),
				ticket.StateEQ(ticket.StateReady),
			).
			SetState(ticket.StateAssigned).
			SetAssignee(req.WorkerID).
			SetLeaseExpires(expires).
			SetLastHeartbeat(now).
			AddAttempt(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim ticket: %w", err)
		}
		if n == 0 {
			continue // lost the race on this row
		}

		evt, err := appendAndSave(ctx, tx, cand.ID, sessionIDOf(cand),
			events.TicketActivityPayload{
				BasePayload: events.NewBase(events.EventTicketActivity),
				TicketID:    cand.ID,
				Activity:    "lease_acquired",
				State:       string(ticket.StateAssigned),
				Detail: map[string]any{
					"assignee":      req.WorkerID,
					"lease_expires": expires.Format(time.RFC3339),
					"attempt":       cand.Attempt + 1,
				},
			})
		if err != nil {
			return nil, err
		}

		claimed, err := tx.Ticket.Get(ctx, cand.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload claimed ticket: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}
		e.publisher.Notify(ctx, evt)

		e.logger.Info("Ticket claimed",
			"ticket_id", claimed.ID, "worker_id", req.WorkerID, "attempt", claimed.Attempt)
		return claimed, nil
	}

	return nil, nil // no work
}

// ProjectSettings returns the per-project execution settings a worker needs
// alongside a claimed ticket: where the code lives and the queue parameters
// governing its lease.
func (e *Engine) ProjectSettings(t *ent.Ticket) map[string]any {
	leaseSeconds := t.LeaseSeconds
	if leaseSeconds <= 0 {
		leaseSeconds = int(e.cfg.LeaseDuration.Seconds())
	}
	return map[string]any{
		"project_id":         t.ProjectID,
		"repo_url":           t.RepoURL,
		"lease_seconds":      leaseSeconds,
		"heartbeat_interval": int(e.cfg.HeartbeatInterval.Seconds()),
		"retry_ceiling":      e.cfg.RetryCeiling,
	}
}

// byPriority orders high before medium before low.
func byPriority(s *entsql.Selector) {
	s.OrderExpr(entsql.Expr(
		"CASE " + ticket.FieldPriority + " WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"))
}

// Heartbeat extends the lease for its holder. A mismatched holder or an
// already-expired lease is a conflict and does not alter lease state.
func (e *Engine) Heartbeat(ctx context.Context, ticketID, workerID string) (*ent.Ticket, error) {
	if workerID == "" {
		return nil, services.NewValidationError("worker_id", "required")
	}

	now := time.Now()
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
		return nil, services.NewStateConflict("ticket", ticketID, string(t.State), "heartbeat")
	}
	if t.Assignee == nil || *t.Assignee != workerID {
		return nil, services.ErrConflict
	}
	if t.LeaseExpires != nil && t.LeaseExpires.Before(now) {
		return nil, services.ErrConflict
	}

	leaseSeconds := t.LeaseSeconds
	if leaseSeconds <= 0 {
		leaseSeconds = int(e.cfg.LeaseDuration.Seconds())
	}
	expires := now.Add(time.Duration(leaseSeconds) * time.Second)

	updated, err := tx.Ticket.UpdateOneID(ticketID).
		SetLeaseExpires(expires).
		SetLastHeartbeat(now).
		AddHeartbeatCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to renew lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit heartbeat: %w", err)
	}
	return updated, nil
}

// Start records that the worker began implementing the ticket.
func (e *Engine) Start(ctx context.Context, ticketID, workerID string) (*ent.Ticket, error) {
	return e.holderTransition(ctx, ticketID, workerID, ticket.StateInProgress, "work_started", nil)
}

// holderTransition performs a lease-holder-gated state change with an
// activity event, in one transaction.
func (e *Engine) holderTransition(ctx context.Context, ticketID, workerID string, to ticket.State, activity string, mutate func(*ent.TicketUpdateOne)) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.Assignee == nil || *t.Assignee != workerID {
		return nil, services.ErrConflict
	}
	if t.LeaseExpires != nil && t.LeaseExpires.Before(time.Now()) {
		return nil, services.ErrConflict
	}
	if !canTransition(t.State, to) {
		return nil, services.NewStateConflict("ticket", ticketID, string(t.State), activity)
	}

	update := tx.Ticket.UpdateOneID(ticketID).SetState(to)
	if mutate != nil {
		mutate(update)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    ticketID,
			Activity:    activity,
			State:       string(to),
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}
	e.publisher.Notify(ctx, evt)
	return updated, nil
}

// getForUpdate loads a ticket inside the transaction, row-locked on
// PostgreSQL.
func getForUpdate(ctx context.Context, tx *ent.Tx, ticketID string, postgres bool) (*ent.Ticket, error) {
	query := tx.Ticket.Query().Where(ticket.IDEQ(ticketID))
	if postgres {
		query = query.ForUpdate()
	}
	t, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	return t, nil
}

// sessionIDOf returns the ticket's session id or empty.
func sessionIDOf(t *ent.Ticket) string {
	if t.SessionID == nil {
		return ""
	}
	return *t.SessionID
}

// appendAndSave stages a ticket activity event on the transaction.
func appendAndSave(ctx context.Context, tx *ent.Tx, ticketID, sessionID string, payload events.TicketActivityPayload) (*ent.Event, error) {
	create, err := events.Append(tx, events.RoomTicket(ticketID), payload.Type, payload, sessionID, ticketID)
	if err != nil {
		return nil, err
	}
	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}
	return evt, nil
}

// finishTerminal runs inside the transaction that moved a ticket to done or
// cancelled: it unblocks successors whose predecessors are now all terminal
// and, on done, completes the session when no non-terminal tickets remain.
// Returns the extra events to notify after commit.
func (e *Engine) finishTerminal(ctx context.Context, tx *ent.Tx, t *ent.Ticket, to ticket.State) ([]*ent.Event, error) {
	var evts []*ent.Event

	successors, err := tx.TicketDependency.Query().
		Where(ticketdependency.DependsOnEQ(t.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan successors: %w", err)
	}

	for _, edge := range successors {
		satisfied, err := predecessorsTerminal(ctx, tx, edge.TicketID)
		if err != nil {
			return nil, err
		}
		if !satisfied {
			continue
		}
		n, err := tx.Ticket.Update().
			Where(
				ticket.IDEQ(edge.TicketID),
				ticket.StateEQ(ticket.StateBlocked),
			).
			SetState(ticket.StateReady).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to unblock successor: %w", err)
		}
		if n == 0 {
			continue
		}
		succ, err := tx.Ticket.Get(ctx, edge.TicketID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload successor: %w", err)
		}
		evt, err := appendAndSave(ctx, tx, succ.ID, sessionIDOf(succ),
			events.TicketActivityPayload{
				BasePayload: events.NewBase(events.EventTicketActivity),
				TicketID:    succ.ID,
				Activity:    "unblocked",
				State:       string(ticket.StateReady),
			})
		if err != nil {
			return nil, err
		}
		evts = append(evts, evt)
	}

	if t.SessionID != nil {
		progressEvt, err := e.appendBuildProgress(ctx, tx, *t.SessionID)
		if err != nil {
			return nil, err
		}
		evts = append(evts, progressEvt)
	}

	if to == ticket.StateDone && t.SessionID != nil {
		sessionEvts, err := e.propagateSessionCompletion(ctx, tx, *t.SessionID)
		if err != nil {
			return nil, err
		}
		evts = append(evts, sessionEvts...)
	}
	return evts, nil
}

// appendBuildProgress stages a progress event for the session's room with
// the terminal/total ticket counts as they stand inside the transaction.
func (e *Engine) appendBuildProgress(ctx context.Context, tx *ent.Tx, sessionID string) (*ent.Event, error) {
	total, err := tx.Ticket.Query().
		Where(ticket.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count session tickets: %w", err)
	}
	done, err := tx.Ticket.Query().
		Where(
			ticket.SessionIDEQ(sessionID),
			ticket.StateIn(ticket.StateDone, ticket.StateCancelled),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count terminal tickets: %w", err)
	}

	create, err := events.Append(tx, events.RoomSession(sessionID), events.EventBuildProgress,
		events.BuildProgressPayload{
			BasePayload: events.NewBase(events.EventBuildProgress),
			SessionID:   sessionID,
			Done:        done,
			Total:       total,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}
	return evt, nil
}

// predecessorsTerminal reports whether every predecessor of the ticket is
// done or cancelled.
func predecessorsTerminal(ctx context.Context, tx *ent.Tx, ticketID string) (bool, error) {
	edges, err := tx.TicketDependency.Query().
		Where(ticketdependency.TicketIDEQ(ticketID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load predecessors: %w", err)
	}
	if len(edges) == 0 {
		return true, nil
	}
	predIDs := make([]string, 0, len(edges))
	for _, e := range edges {
		predIDs = append(predIDs, e.DependsOn)
	}
	pending, err := tx.Ticket.Query().
		Where(
			ticket.IDIn(predIDs...),
			ticket.StateNotIn(ticket.StateDone, ticket.StateCancelled),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count pending predecessors: %w", err)
	}
	return pending == 0, nil
}

// propagateSessionCompletion completes the session when all of its tickets
// are terminal with at least one done.
func (e *Engine) propagateSessionCompletion(ctx context.Context, tx *ent.Tx, sessionID string) ([]*ent.Event, error) {
	remaining, err := tx.Ticket.Query().
		Where(
			ticket.SessionIDEQ(sessionID),
			ticket.StateNotIn(ticket.StateDone, ticket.StateCancelled),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count remaining tickets: %w", err)
	}
	if remaining > 0 {
		return nil, nil
	}

	doneCount, err := tx.Ticket.Query().
		Where(
			ticket.SessionIDEQ(sessionID),
			ticket.StateEQ(ticket.StateDone),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count done tickets: %w", err)
	}
	if doneCount == 0 {
		return nil, nil
	}

	n, err := tx.Session.Update().
		Where(
			session.IDEQ(sessionID),
			session.StateEQ(session.StateBuilding),
		).
		SetState(session.StateCompleted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	create, err := events.Append(tx, events.RoomSession(sessionID), events.EventSessionUpdate,
		events.SessionUpdatePayload{
			BasePayload: events.NewBase(events.EventSessionUpdate),
			SessionID:   sessionID,
			State:       string(session.StateCompleted),
			Progress:    100,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	e.logger.Info("Session completed", "session_id", sessionID)
	return []*ent.Event{evt}, nil
}
