package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/google/uuid"
)

func TestCanSubscribe(t *testing.T) {
	db, _ := newServiceDB(t)
	authz := NewRoomAuthz(db.Client)
	ctx := context.Background()

	sess, err := db.Client.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetOwnerID("alice").
		SetProjectName("Webshop").
		SetDescription("shop").
		SetState(session.StateInput).
		Save(ctx)
	require.NoError(t, err)

	tk, err := db.Client.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetProjectID("proj-1").
		SetTitle("Checkout").
		SetDescription("d").
		SetState(ticket.StateReady).
		Save(ctx)
	require.NoError(t, err)

	assert.NoError(t, authz.CanSubscribe(ctx, alice, events.RoomSession(sess.ID)))
	assert.NoError(t, authz.CanSubscribe(ctx, alice, events.RoomTicket(tk.ID)))

	assert.ErrorIs(t, authz.CanSubscribe(ctx, bob, events.RoomSession(sess.ID)), ErrForbidden)
	assert.ErrorIs(t, authz.CanSubscribe(ctx, bob, events.RoomTicket(tk.ID)), ErrForbidden)

	// Operators may subscribe anywhere, including rooms that do not exist yet.
	assert.NoError(t, authz.CanSubscribe(ctx, ops, events.RoomSession(sess.ID)))
	assert.NoError(t, authz.CanSubscribe(ctx, ops, "session:future"))

	assert.ErrorIs(t, authz.CanSubscribe(ctx, alice, events.RoomSession("missing")), ErrNotFound)

	var vErr *ValidationError
	assert.ErrorAs(t, authz.CanSubscribe(ctx, alice, "garbage"), &vErr)
	assert.ErrorAs(t, authz.CanSubscribe(ctx, alice, "session:"), &vErr)
	assert.ErrorAs(t, authz.CanSubscribe(ctx, alice, "queue:q1"), &vErr)
}
