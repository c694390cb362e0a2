package tickets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
)

var operator = auth.Principal{UserID: "op-1", TenantID: "tenant-1", Role: auth.RoleOperator}

func TestHoldAndResume(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")
	started, err := engine.Start(ctx, claimed.ID, "w1")
	require.NoError(t, err)
	require.Equal(t, ticket.StateInProgress, started.State)

	held, err := engine.Hold(ctx, operator, claimed.ID, "waiting on design review")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateOnHold, held.State)
	require.NotNil(t, held.HoldReason)
	assert.Equal(t, "waiting on design review", *held.HoldReason)

	resumed, err := engine.Resume(ctx, operator, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInProgress, resumed.State)
	assert.Nil(t, resumed.HoldReason)
}

func TestHold_TerminalIsStateConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db, withState(ticket.StateDone))

	_, err := engine.Hold(context.Background(), operator, tk.ID, "too late")
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}

func TestResume_NotHeldIsStateConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db)

	_, err := engine.Resume(context.Background(), operator, tk.ID)
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}

func TestHold_CrossTenantIsForbidden(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db)

	other := auth.Principal{UserID: "u2", TenantID: "tenant-2", Role: auth.RoleUser}
	_, err := engine.Hold(context.Background(), other, tk.ID, "nope")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestCancel_ReleasesLease(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")

	cancelled, err := engine.Cancel(ctx, operator, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateCancelled, cancelled.State)
	assert.Nil(t, cancelled.Assignee)
	assert.Nil(t, cancelled.LeaseExpires)

	// The old holder's completion report bounces off the cancelled state.
	_, err = engine.Complete(ctx, claimed.ID, models.CompleteRequest{WorkerID: "w1", Success: true})
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}

func TestCancel_UnblocksSuccessors(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	pred := newTicket(t, db)
	succ := newTicket(t, db, withState(ticket.StateBlocked))
	_, err := db.TicketDependency.Create().SetTicketID(succ.ID).SetDependsOn(pred.ID).Save(ctx)
	require.NoError(t, err)

	_, err = engine.Cancel(ctx, operator, pred.ID)
	require.NoError(t, err)

	reloaded, err := db.Ticket.Get(ctx, succ.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, reloaded.State)
}

func TestCancel_TwiceIsStateConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db)
	ctx := context.Background()

	_, err := engine.Cancel(ctx, operator, tk.ID)
	require.NoError(t, err)

	_, err = engine.Cancel(ctx, operator, tk.ID)
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}
