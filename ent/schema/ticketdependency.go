package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketDependency is a directed edge dependent → dependency. The full edge
// set forms a DAG; cycles are rejected inside the insertion transaction.
type TicketDependency struct {
	ent.Schema
}

// Fields of the TicketDependency.
func (TicketDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("ticket_id").
			Immutable().
			Comment("The dependent ticket"),
		field.String("depends_on").
			Immutable().
			Comment("The predecessor that must reach done or cancelled"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TicketDependency.
func (TicketDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "depends_on").
			Unique(),
		// Unblock propagation scans by predecessor
		index.Fields("depends_on"),
	}
}
