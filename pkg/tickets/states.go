package tickets

import "github.com/buildloop/foundry/ent/ticket"

// legalTransitions is the ticket state machine. Hold and cancel are handled
// separately: any non-terminal state may move to on_hold, and any state may
// move to cancelled.
var legalTransitions = map[ticket.State][]ticket.State{
	ticket.StateDraft:            {ticket.StateReady, ticket.StateBlocked},
	ticket.StateBlocked:          {ticket.StateReady},
	ticket.StateReady:            {ticket.StateAssigned},
	ticket.StateAssigned:         {ticket.StateInProgress, ticket.StateVerifying, ticket.StateReady},
	ticket.StateInProgress:       {ticket.StateVerifying, ticket.StateReady, ticket.StateNeedsReview},
	ticket.StateVerifying:        {ticket.StateInReview, ticket.StateChangesRequested, ticket.StateNeedsReview, ticket.StateReady},
	ticket.StateInReview:         {ticket.StateDone, ticket.StateChangesRequested},
	ticket.StateChangesRequested: {ticket.StateReady, ticket.StateNeedsReview},
	ticket.StateNeedsReview:      {ticket.StateReady},
	ticket.StateOnHold:           {}, // resume restores the prior state explicitly
	ticket.StateDone:             {},
	ticket.StateCancelled:        {},
}

// canTransition reports whether from → to is a legal edge.
func canTransition(from, to ticket.State) bool {
	if to == ticket.StateCancelled {
		return from != ticket.StateCancelled && from != ticket.StateDone
	}
	if to == ticket.StateOnHold {
		return !isTerminal(from) && from != ticket.StateOnHold
	}
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// isTerminal reports whether a ticket state admits no further transitions.
func isTerminal(state ticket.State) bool {
	return state == ticket.StateDone || state == ticket.StateCancelled
}

// leaseHeld reports whether the state is one in which a live lease is valid.
func leaseHeld(state ticket.State) bool {
	return state == ticket.StateAssigned ||
		state == ticket.StateInProgress ||
		state == ticket.StateVerifying
}
