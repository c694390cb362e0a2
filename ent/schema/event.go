package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the append-only audit and fan-out
// log. Events are written in the same transaction as the state change they
// describe and are never deleted.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Default int ID, monotonic per channel for catchup ordering.
		field.String("channel").
			Immutable().
			Comment("Room the event fans out to: session:<id> or ticket:<id>"),
		field.String("session_id").
			Optional().
			Immutable(),
		field.String("ticket_id").
			Optional().
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("session_id", "created_at"),
		index.Fields("ticket_id", "created_at"),
	}
}
