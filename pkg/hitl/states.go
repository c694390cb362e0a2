package hitl

import (
	"github.com/buildloop/foundry/ent/session"
)

// Actions driven through the engine. Each is legal only from specific
// states; requests against other states fail with a state conflict carrying
// the current state.
const (
	ActionRespond            = "respond"
	ActionStartClarification = "start_clarification"
	ActionGenerateSpec       = "generate_spec"
	ActionApprove            = "approve"
	ActionRequestRevision    = "request_revision"
	ActionStartBuild         = "start_build"
	ActionCancel             = "cancel"
)

// legalStates maps each action to the states it may fire from.
var legalStates = map[string][]session.State{
	ActionRespond:            {session.StateInput, session.StateClarifying},
	ActionStartClarification: {session.StateInput},
	ActionGenerateSpec:       {session.StateClarifying, session.StateReadyForDocs},
	ActionApprove:            {session.StateReviewing},
	ActionRequestRevision:    {session.StateReviewing},
	ActionStartBuild:         {session.StateApproved},
	ActionCancel: {
		session.StateInput, session.StateClarifying, session.StateReadyForDocs,
		session.StateGeneratingSpec, session.StateReviewing, session.StateApproved,
		session.StateBuilding,
	},
}

// actionAllowed reports whether the action is legal from the given state.
func actionAllowed(action string, state session.State) bool {
	for _, s := range legalStates[action] {
		if s == state {
			return true
		}
	}
	return false
}

// isTerminal reports whether a session state admits no further transitions.
func isTerminal(state session.State) bool {
	return state == session.StateCompleted || state == session.StateCancelled
}
