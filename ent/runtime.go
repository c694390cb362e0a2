// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/ent/event"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/schema"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/ent/ticketdependency"
	"github.com/buildloop/foundry/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[8].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescProgress is the schema descriptor for progress field.
	sessionDescProgress := sessionFields[8].Descriptor()
	// session.DefaultProgress holds the default value on creation for the progress field.
	session.DefaultProgress = sessionDescProgress.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[14].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[15].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescRejectionCount is the schema descriptor for rejection_count field.
	ticketDescRejectionCount := ticketFields[15].Descriptor()
	// ticket.DefaultRejectionCount holds the default value on creation for the rejection_count field.
	ticket.DefaultRejectionCount = ticketDescRejectionCount.Default.(int)
	// ticketDescRetryCount is the schema descriptor for retry_count field.
	ticketDescRetryCount := ticketFields[16].Descriptor()
	// ticket.DefaultRetryCount holds the default value on creation for the retry_count field.
	ticket.DefaultRetryCount = ticketDescRetryCount.Default.(int)
	// ticketDescAttempt is the schema descriptor for attempt field.
	ticketDescAttempt := ticketFields[18].Descriptor()
	// ticket.DefaultAttempt holds the default value on creation for the attempt field.
	ticket.DefaultAttempt = ticketDescAttempt.Default.(int)
	// ticketDescHeartbeatCount is the schema descriptor for heartbeat_count field.
	ticketDescHeartbeatCount := ticketFields[23].Descriptor()
	// ticket.DefaultHeartbeatCount holds the default value on creation for the heartbeat_count field.
	ticket.DefaultHeartbeatCount = ticketDescHeartbeatCount.Default.(int)
	// ticketDescLeaseSeconds is the schema descriptor for lease_seconds field.
	ticketDescLeaseSeconds := ticketFields[29].Descriptor()
	// ticket.DefaultLeaseSeconds holds the default value on creation for the lease_seconds field.
	ticket.DefaultLeaseSeconds = ticketDescLeaseSeconds.Default.(int)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[30].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[31].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketdependencyFields := schema.TicketDependency{}.Fields()
	_ = ticketdependencyFields
	// ticketdependencyDescCreatedAt is the schema descriptor for created_at field.
	ticketdependencyDescCreatedAt := ticketdependencyFields[2].Descriptor()
	// ticketdependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketdependency.DefaultCreatedAt = ticketdependencyDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
