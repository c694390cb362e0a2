package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for a human gating record on a
// session transition (spec approval, build start).
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("approval_type").
			Comment("spec_approval or build_start"),
		field.String("action"),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("resolved_by").
			Optional().
			Nillable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Approval.
func (Approval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("approvals").
			Unique().
			Required().
			Immutable().
			Field("session_id"),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
	}
}
