package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for an authenticated principal.
// Agents authenticate with the same token machinery as humans but carry
// the "agent" role.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("name").
			Optional(),
		field.String("password_hash").
			Sensitive(),
		field.String("password_salt").
			Sensitive(),
		field.String("tenant_id"),
		field.Enum("role").
			Values("user", "operator", "agent").
			Default("user"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
	}
}
