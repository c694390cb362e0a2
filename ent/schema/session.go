package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for a HITL design session: one project's
// journey from free-form description to approved spec card and issued tickets.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable().
			Comment("Owning tenant; cross-tenant reads are refused at the service layer"),
		field.String("owner_id").
			Immutable(),
		field.Enum("project_type").
			Values("new_application", "build_feature", "mcp_server").
			Default("new_application"),
		field.String("project_name"),
		field.Text("description"),
		field.Enum("state").
			Values("input", "clarifying", "ready_for_docs", "generating_spec",
				"reviewing", "approved", "building", "completed", "cancelled").
			Default("input"),
		field.JSON("clarification", map[string]interface{}{}).
			Optional().
			Comment("Gathered requirements, deep-merged across dialogue turns"),
		field.Int("progress").
			Default(0).
			Comment("Weighted completion percentage, 0-100"),
		field.Text("spec_card").
			Optional().
			Nillable().
			Comment("Approved specification artifact, opaque markdown/JSON"),
		field.String("project_id").
			Optional().
			Nillable().
			Comment("Linked project once tickets are generated"),
		field.JSON("repo_analysis", map[string]interface{}{}).
			Optional().
			Comment("Repository analysis snapshot for build_feature sessions"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approvals", Approval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("state"),
		index.Fields("tenant_id", "state"),
		index.Fields("project_id"),
		index.Fields("state", "created_at"),
	}
}
