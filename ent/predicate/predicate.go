// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// TicketDependency is the predicate function for ticketdependency builders.
type TicketDependency func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
