package services

import (
	"context"
	"fmt"

	"github.com/buildloop/foundry/ent"
	entevent "github.com/buildloop/foundry/ent/event"
)

// EventService reads the append-only event log: the ticket activity feed and
// session event replay.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// TicketActivity returns a ticket's activity stream ordered by insertion.
func (s *EventService) TicketActivity(ctx context.Context, ticketID string, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}
	evts, err := s.client.Event.Query().
		Where(entevent.TicketIDEQ(ticketID)).
		Order(ent.Asc(entevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket activity: %w", err)
	}
	return evts, nil
}

// SessionEvents returns a session's event history ordered by insertion.
func (s *EventService) SessionEvents(ctx context.Context, sessionID string, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}
	evts, err := s.client.Event.Query().
		Where(entevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(entevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session events: %w", err)
	}
	return evts, nil
}

// GetEvent fetches one event row by id; clients use it to recover payloads
// that were truncated on the NOTIFY path.
func (s *EventService) GetEvent(ctx context.Context, id int) (*ent.Event, error) {
	evt, err := s.client.Event.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return evt, nil
}
