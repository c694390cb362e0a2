// Package events provides real-time event delivery: committed event rows fan
// out to WebSocket subscribers scoped to a room. On PostgreSQL, NOTIFY/LISTEN
// distributes events across replicas; on SQLite, committed events dispatch
// directly to the in-process connection manager.
//
// The bus is not a store. Delivery is at-least-once to currently subscribed
// connections with per-room ordering; there is no replay on reconnect.
// Clients reconcile by refetching over the HTTP API.
package events

import (
	"errors"
	"time"
)

// ErrSubscriptionForbidden marks an authorization failure on a room
// subscription. The manager closes the connection with CloseForbidden when
// an authorizer returns it.
var ErrSubscriptionForbidden = errors.New("subscription forbidden")

// Domain event types carried in the "type" field of every payload.
const (
	EventSessionUpdate     = "session:update"
	EventSessionMessage    = "session:message"
	EventApprovalRequested = "approval:requested"
	EventApprovalResolved  = "approval:resolved"
	EventBuildProgress     = "build:progress"
	EventSpecGenerated     = "spec:generated"
	EventTicketsGenerated  = "tickets:generated"
	EventTicketActivity    = "ticket:activity"
)

// WebSocket close codes. 4001 and 4002 are permanent: clients must not
// auto-reconnect on them. 1000 is a normal close.
const (
	CloseNormal          = 1000
	CloseUnauthenticated = 4001
	CloseForbidden       = 4002
)

// PingInterval is the server ping cadence. Two missed pongs mark the
// connection dead.
const PingInterval = 30 * time.Second

// RoomSession returns the room name for a session's events.
func RoomSession(sessionID string) string { return "session:" + sessionID }

// RoomTicket returns the room name for a ticket's events.
func RoomTicket(ticketID string) string { return "ticket:" + ticketID }

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Type string `json:"type"` // "subscribe", "unsubscribe", "ping", "pong"
	Room string `json:"room,omitempty"`
}
