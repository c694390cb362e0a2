// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildloop/foundry/ent/ticketdependency"
)

// TicketDependency is the model entity for the TicketDependency schema.
type TicketDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The dependent ticket
	TicketID string `json:"ticket_id,omitempty"`
	// The predecessor that must reach done or cancelled
	DependsOn string `json:"depends_on,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketdependency.FieldID:
			values[i] = new(sql.NullInt64)
		case ticketdependency.FieldTicketID, ticketdependency.FieldDependsOn:
			values[i] = new(sql.NullString)
		case ticketdependency.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketDependency fields.
func (_m *TicketDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketdependency.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ticketdependency.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case ticketdependency.FieldDependsOn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on", values[i])
			} else if value.Valid {
				_m.DependsOn = value.String
			}
		case ticketdependency.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TicketDependency.
// This includes values selected through modifiers, order, etc.
func (_m *TicketDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TicketDependency.
// Note that you need to call TicketDependency.Unwrap() before calling this method if this TicketDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketDependency) Update() *TicketDependencyUpdateOne {
	return NewTicketDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketDependency) Unwrap() *TicketDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketDependency) String() string {
	var builder strings.Builder
	builder.WriteString("TicketDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("depends_on=")
	builder.WriteString(_m.DependsOn)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketDependencies is a parsable slice of TicketDependency.
type TicketDependencies []*TicketDependency
