package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/buildloop/foundry/ent"
)

// Broadcaster delivers a marshaled event to local subscribers of a room.
// Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(room string, event []byte)
}

// Publisher fans out committed event rows. Services append event rows inside
// the same transaction as the state change they describe (Append), commit,
// and then hand the committed rows to Notify. On PostgreSQL the fan-out goes
// through pg_notify so every replica's listener delivers it; on SQLite it is
// dispatched directly to the in-process ConnectionManager.
//
// If the process dies between commit and Notify the event row survives and
// subscribers reconcile by refetching; the bus tolerates drops by contract.
type Publisher struct {
	db       *sql.DB
	postgres bool
	local    Broadcaster
}

// NewPublisher creates a Publisher. local may be nil until SetBroadcaster is
// called during startup wiring.
func NewPublisher(db *sql.DB, postgres bool, local Broadcaster) *Publisher {
	return &Publisher{db: db, postgres: postgres, local: local}
}

// SetBroadcaster wires the local ConnectionManager after construction.
func (p *Publisher) SetBroadcaster(b Broadcaster) { p.local = b }

// Append stages an event row on the given transaction. The row commits or
// rolls back with the caller's state change. sessionID and ticketID may be
// empty when not applicable.
func Append(tx *ent.Tx, room, eventType string, payload any, sessionID, ticketID string) (*ent.EventCreate, error) {
	m, err := toMap(payload)
	if err != nil {
		return nil, err
	}
	create := tx.Event.Create().
		SetChannel(room).
		SetEventType(eventType).
		SetPayload(m)
	if sessionID != "" {
		create = create.SetSessionID(sessionID)
	}
	if ticketID != "" {
		create = create.SetTicketID(ticketID)
	}
	return create, nil
}

// Notify broadcasts committed event rows to their rooms, in order. Errors
// are logged, not returned: the rows are already durable and clients refetch.
func (p *Publisher) Notify(ctx context.Context, evts ...*ent.Event) {
	for _, evt := range evts {
		if evt == nil {
			continue
		}
		payload := make(map[string]any, len(evt.Payload)+1)
		for k, v := range evt.Payload {
			payload[k] = v
		}
		payload["db_event_id"] = evt.ID

		data, err := json.Marshal(payload)
		if err != nil {
			slog.Warn("Failed to marshal event payload", "event_id", evt.ID, "error", err)
			continue
		}

		if p.postgres {
			if err := p.notifyPostgres(ctx, evt.Channel, data); err != nil {
				slog.Warn("pg_notify failed; falling back to local broadcast",
					"channel", evt.Channel, "error", err)
				p.broadcastLocal(evt.Channel, data)
			}
			continue
		}
		p.broadcastLocal(evt.Channel, data)
	}
}

// notifyPostgres fires pg_notify. Payloads beyond PostgreSQL's 8000-byte
// limit are truncated to a routing envelope; clients fetch the full event.
func (p *Publisher) notifyPostgres(ctx context.Context, channel string, data []byte) error {
	payload := string(data)
	if len(payload) > 7900 {
		truncated, err := buildTruncatedPayload(data)
		if err != nil {
			return err
		}
		payload = truncated
	}
	_, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, payload)
	return err
}

func (p *Publisher) broadcastLocal(channel string, data []byte) {
	if p.local == nil {
		return
	}
	p.local.Broadcast(channel, data)
}

// buildTruncatedPayload keeps only the routing fields a client needs to
// fetch the full event over HTTP.
func buildTruncatedPayload(data []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		TicketID  string `json:"ticket_id"`
		DBEventID *int   `json:"db_event_id"`
	}
	if err := json.Unmarshal(data, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}
	truncated := map[string]any{
		"type":      routing.Type,
		"truncated": true,
	}
	if routing.SessionID != "" {
		truncated["session_id"] = routing.SessionID
	}
	if routing.TicketID != "" {
		truncated["ticket_id"] = routing.TicketID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}
	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}

// toMap converts a typed payload struct into the map shape stored on the
// event row.
func toMap(payload any) (map[string]interface{}, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to convert event payload: %w", err)
	}
	return m, nil
}
