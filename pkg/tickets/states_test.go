package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildloop/foundry/ent/ticket"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from ticket.State
		to   ticket.State
		want bool
	}{
		{ticket.StateDraft, ticket.StateReady, true},
		{ticket.StateDraft, ticket.StateBlocked, true},
		{ticket.StateDraft, ticket.StateAssigned, false},
		{ticket.StateBlocked, ticket.StateReady, true},
		{ticket.StateReady, ticket.StateAssigned, true},
		{ticket.StateReady, ticket.StateInProgress, false},
		{ticket.StateAssigned, ticket.StateInProgress, true},
		{ticket.StateInProgress, ticket.StateVerifying, true},
		{ticket.StateVerifying, ticket.StateInReview, true},
		{ticket.StateVerifying, ticket.StateChangesRequested, true},
		{ticket.StateInReview, ticket.StateDone, true},
		{ticket.StateInReview, ticket.StateChangesRequested, true},
		{ticket.StateChangesRequested, ticket.StateReady, true},
		{ticket.StateNeedsReview, ticket.StateReady, true},
		{ticket.StateDone, ticket.StateReady, false},

		// Cancel is legal from any live state, never out of a terminal one.
		{ticket.StateDraft, ticket.StateCancelled, true},
		{ticket.StateInProgress, ticket.StateCancelled, true},
		{ticket.StateOnHold, ticket.StateCancelled, true},
		{ticket.StateDone, ticket.StateCancelled, false},
		{ticket.StateCancelled, ticket.StateCancelled, false},

		// Hold is legal from any non-terminal, non-held state.
		{ticket.StateReady, ticket.StateOnHold, true},
		{ticket.StateInProgress, ticket.StateOnHold, true},
		{ticket.StateOnHold, ticket.StateOnHold, false},
		{ticket.StateDone, ticket.StateOnHold, false},
		{ticket.StateCancelled, ticket.StateOnHold, false},

		// Resume is handled explicitly, not via the transition table.
		{ticket.StateOnHold, ticket.StateReady, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, isTerminal(ticket.StateDone))
	assert.True(t, isTerminal(ticket.StateCancelled))
	assert.False(t, isTerminal(ticket.StateOnHold))
	assert.False(t, isTerminal(ticket.StateNeedsReview))
}

func TestLeaseHeld(t *testing.T) {
	assert.True(t, leaseHeld(ticket.StateAssigned))
	assert.True(t, leaseHeld(ticket.StateInProgress))
	assert.True(t, leaseHeld(ticket.StateVerifying))
	assert.False(t, leaseHeld(ticket.StateReady))
	assert.False(t, leaseHeld(ticket.StateInReview))
	assert.False(t, leaseHeld(ticket.StateDone))
}
