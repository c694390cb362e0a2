package hitl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildloop/foundry/ent/session"
)

func TestActionAllowed(t *testing.T) {
	tests := []struct {
		action string
		state  session.State
		want   bool
	}{
		{ActionRespond, session.StateInput, true},
		{ActionRespond, session.StateClarifying, true},
		{ActionRespond, session.StateReviewing, false},
		{ActionStartClarification, session.StateInput, true},
		{ActionStartClarification, session.StateClarifying, false},
		{ActionGenerateSpec, session.StateClarifying, true},
		{ActionGenerateSpec, session.StateReadyForDocs, true},
		{ActionGenerateSpec, session.StateApproved, false},
		{ActionApprove, session.StateReviewing, true},
		{ActionApprove, session.StateClarifying, false},
		{ActionRequestRevision, session.StateReviewing, true},
		{ActionStartBuild, session.StateApproved, true},
		{ActionStartBuild, session.StateReviewing, false},
		{ActionCancel, session.StateBuilding, true},
		{ActionCancel, session.StateCompleted, false},
		{ActionCancel, session.StateCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.action+"/"+string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, actionAllowed(tt.action, tt.state))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, isTerminal(session.StateCompleted))
	assert.True(t, isTerminal(session.StateCancelled))
	assert.False(t, isTerminal(session.StateBuilding))
	assert.False(t, isTerminal(session.StateInput))
}

func TestSessionLocks(t *testing.T) {
	locks := newSessionLocks()

	release := locks.TryAcquire("s1")
	assert.NotNil(t, release)

	// Second acquire on the same session fails while held.
	assert.Nil(t, locks.TryAcquire("s1"))

	// Other sessions are unaffected.
	other := locks.TryAcquire("s2")
	assert.NotNil(t, other)
	other()

	release()
	release2 := locks.TryAcquire("s1")
	assert.NotNil(t, release2)
	release2()
}
