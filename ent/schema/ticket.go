package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for one unit of implementation work,
// the atomic scheduling unit of the build loop.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Originating design session, when generated from one"),
		field.String("title"),
		field.Text("description"),
		field.JSON("acceptance_criteria", []string{}).
			Optional(),
		field.Enum("state").
			Values("draft", "ready", "blocked", "on_hold", "assigned", "in_progress",
				"verifying", "in_review", "changes_requested", "needs_review",
				"done", "cancelled").
			Default("draft"),
		field.String("epic").
			Optional(),
		field.Enum("scope").
			Values("small", "medium", "large").
			Default("medium"),
		field.JSON("file_hints", []string{}).
			Optional(),
		field.String("assignee").
			Optional().
			Nillable().
			Comment("Current lease holder identity"),
		field.Enum("assignee_kind").
			Values("agent", "human").
			Default("agent"),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Int("rejection_count").
			Default(0),
		field.Int("retry_count").
			Default(0),
		field.Time("retry_after").
			Optional().
			Nillable().
			Comment("Earliest time the ticket may be claimed again"),
		field.Int("attempt").
			Default(0).
			Comment("Monotonic attempt number carried on every external call"),
		field.JSON("critic_feedback", []map[string]interface{}{}).
			Optional().
			Comment("Structured critic feedback from the latest rejection"),
		field.JSON("files_involved", []string{}).
			Optional(),
		field.Time("lease_expires").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.Int("heartbeat_count").
			Default(0),
		field.String("failure_class").
			Optional().
			Nillable().
			Comment("Last worker failure classification (timeout, tool, model, infra)"),
		field.String("hold_reason").
			Optional().
			Nillable(),
		field.String("trace_id").
			Optional(),
		field.String("repo_url").
			Optional(),
		field.Enum("priority").
			Values("high", "medium", "low").
			Default("medium"),
		field.Int("lease_seconds").
			Default(1800).
			Comment("Per-ticket lease duration override"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		// Dispatcher poll
		index.Fields("state", "assignee_kind"),
		index.Fields("state", "retry_after"),
		// Reaper scan
		index.Fields("lease_expires").
			Annotations(entsql.IndexWhere("lease_expires IS NOT NULL")),
		index.Fields("tenant_id"),
		index.Fields("project_id"),
		index.Fields("session_id"),
		index.Fields("priority", "created_at"),
	}
}
