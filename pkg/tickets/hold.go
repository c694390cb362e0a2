package tickets

import (
	"context"
	"fmt"

	"github.com/buildloop/foundry/ent"
	entevent "github.com/buildloop/foundry/ent/event"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/services"
)

// Hold pauses a non-terminal ticket. The prior state travels on the hold
// event so resume can restore it.
func (e *Engine) Hold(ctx context.Context, p auth.Principal, ticketID, reason string) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.TenantID != p.TenantID && !p.IsOperator() {
		return nil, services.ErrForbidden
	}
	if !canTransition(t.State, ticket.StateOnHold) {
		return nil, services.NewStateConflict("ticket", ticketID, string(t.State), "hold")
	}

	updated, err := tx.Ticket.UpdateOneID(ticketID).
		SetState(ticket.StateOnHold).
		SetHoldReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to hold ticket: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    ticketID,
			Activity:    "held",
			State:       string(ticket.StateOnHold),
			Detail: map[string]any{
				"prior_state": string(t.State),
				"reason":      reason,
			},
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit hold: %w", err)
	}
	e.publisher.Notify(ctx, evt)
	return updated, nil
}

// Resume restores a held ticket to the state recorded on its most recent
// hold event.
func (e *Engine) Resume(ctx context.Context, p auth.Principal, ticketID string) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.TenantID != p.TenantID && !p.IsOperator() {
		return nil, services.ErrForbidden
	}
	if t.State != ticket.StateOnHold {
		return nil, services.NewStateConflict("ticket", ticketID, string(t.State), "resume")
	}

	prior, err := latestHoldState(ctx, tx, ticketID)
	if err != nil {
		return nil, err
	}

	updated, err := tx.Ticket.UpdateOneID(ticketID).
		SetState(prior).
		ClearHoldReason().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume ticket: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    ticketID,
			Activity:    "resumed",
			State:       string(prior),
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resume: %w", err)
	}
	e.publisher.Notify(ctx, evt)
	return updated, nil
}

// latestHoldState scans the ticket's recent events for the newest hold and
// returns its recorded prior state.
func latestHoldState(ctx context.Context, tx *ent.Tx, ticketID string) (ticket.State, error) {
	evts, err := tx.Event.Query().
		Where(entevent.TicketIDEQ(ticketID)).
		Order(ent.Desc(entevent.FieldID)).
		Limit(50).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load ticket events: %w", err)
	}
	for _, evt := range evts {
		if activity, _ := evt.Payload["activity"].(string); activity != "held" {
			continue
		}
		detail, _ := evt.Payload["detail"].(map[string]any)
		prior, _ := detail["prior_state"].(string)
		if prior != "" {
			return ticket.State(prior), nil
		}
	}
	// No hold event found; fall back to ready so the ticket is not stuck.
	return ticket.StateReady, nil
}

// Cancel explicitly cancels a ticket from any live state, releasing any
// lease and unblocking successors that no longer wait on it.
func (e *Engine) Cancel(ctx context.Context, p auth.Principal, ticketID string) (*ent.Ticket, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := getForUpdate(ctx, tx, ticketID, e.db.IsPostgres())
	if err != nil {
		return nil, err
	}
	if t.TenantID != p.TenantID && !p.IsOperator() {
		return nil, services.ErrForbidden
	}
	if !canTransition(t.State, ticket.StateCancelled) {
		return nil, services.NewStateConflict("ticket", ticketID, string(t.State), "cancel")
	}

	updated, err := tx.Ticket.UpdateOneID(ticketID).
		SetState(ticket.StateCancelled).
		ClearAssignee().
		ClearLeaseExpires().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel ticket: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, ticketID, sessionIDOf(t),
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    ticketID,
			Activity:    "cancelled",
			State:       string(ticket.StateCancelled),
		})
	if err != nil {
		return nil, err
	}
	evts := []*ent.Event{evt}

	terminalEvts, err := e.finishTerminal(ctx, tx, t, ticket.StateCancelled)
	if err != nil {
		return nil, err
	}
	evts = append(evts, terminalEvts...)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}
	e.publisher.Notify(ctx, evts...)
	return updated, nil
}
