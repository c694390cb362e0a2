// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "approval_type", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approvals_sessions_approvals",
				Columns:    []*schema.Column{ApprovalsColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approval_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[8], ApprovalsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[6]},
			},
			{
				Name:    "event_ticket_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[6]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"initial", "question", "answer", "spec", "progress"}, Default: "answer"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "project_type", Type: field.TypeEnum, Enums: []string{"new_application", "build_feature", "mcp_server"}, Default: "new_application"},
		{Name: "project_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"input", "clarifying", "ready_for_docs", "generating_spec", "reviewing", "approved", "building", "completed", "cancelled"}, Default: "input"},
		{Name: "clarification", Type: field.TypeJSON, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "spec_card", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "repo_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
			},
			{
				Name:    "session_tenant_id_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[6]},
			},
			{
				Name:    "session_project_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[10]},
			},
			{
				Name:    "session_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6], SessionsColumns[14]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "acceptance_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "ready", "blocked", "on_hold", "assigned", "in_progress", "verifying", "in_review", "changes_requested", "needs_review", "done", "cancelled"}, Default: "draft"},
		{Name: "epic", Type: field.TypeString, Nullable: true},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"small", "medium", "large"}, Default: "medium"},
		{Name: "file_hints", Type: field.TypeJSON, Nullable: true},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "assignee_kind", Type: field.TypeEnum, Enums: []string{"agent", "human"}, Default: "agent"},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "rejection_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_after", Type: field.TypeTime, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "critic_feedback", Type: field.TypeJSON, Nullable: true},
		{Name: "files_involved", Type: field.TypeJSON, Nullable: true},
		{Name: "lease_expires", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_class", Type: field.TypeString, Nullable: true},
		{Name: "hold_reason", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}, Default: "medium"},
		{Name: "lease_seconds", Type: field.TypeInt, Default: 1800},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_state_assignee_kind",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[7], TicketsColumns[12]},
			},
			{
				Name:    "ticket_state_retry_after",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[7], TicketsColumns[17]},
			},
			{
				Name:    "ticket_lease_expires",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[21]},
				Annotation: &entsql.IndexAnnotation{
					Where: "lease_expires IS NOT NULL",
				},
			},
			{
				Name:    "ticket_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[1]},
			},
			{
				Name:    "ticket_project_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[2]},
			},
			{
				Name:    "ticket_session_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[3]},
			},
			{
				Name:    "ticket_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[28], TicketsColumns[30]},
			},
		},
	}
	// TicketDependenciesColumns holds the columns for the "ticket_dependencies" table.
	TicketDependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ticket_id", Type: field.TypeString},
		{Name: "depends_on", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TicketDependenciesTable holds the schema information for the "ticket_dependencies" table.
	TicketDependenciesTable = &schema.Table{
		Name:       "ticket_dependencies",
		Columns:    TicketDependenciesColumns,
		PrimaryKey: []*schema.Column{TicketDependenciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticketdependency_ticket_id_depends_on",
				Unique:  true,
				Columns: []*schema.Column{TicketDependenciesColumns[1], TicketDependenciesColumns[2]},
			},
			{
				Name:    "ticketdependency_depends_on",
				Unique:  false,
				Columns: []*schema.Column{TicketDependenciesColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "password_salt", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "operator", "agent"}, Default: "user"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalsTable,
		EventsTable,
		MessagesTable,
		SessionsTable,
		TicketsTable,
		TicketDependenciesTable,
		UsersTable,
	}
)

func init() {
	ApprovalsTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
}
