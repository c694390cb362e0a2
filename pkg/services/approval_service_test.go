package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/ent/session"
	"github.com/google/uuid"
)

func newApprovalFixture(t *testing.T) (*ApprovalService, *EventService, string) {
	t.Helper()
	db, pub := newServiceDB(t)

	sess, err := db.Client.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetOwnerID("alice").
		SetProjectName("Webshop").
		SetDescription("shop").
		SetState(session.StateReviewing).
		Save(context.Background())
	require.NoError(t, err)

	return NewApprovalService(db.Client, pub), NewEventService(db.Client), sess.ID
}

func TestRequestAndResolveApproval(t *testing.T) {
	svc, eventsSvc, sessionID := newApprovalFixture(t)
	ctx := context.Background()

	ap, err := svc.RequestApproval(ctx, sessionID, "spec_approval", "approve_spec",
		map[string]interface{}{"spec_version": 1})
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, ap.Status)
	assert.Equal(t, "spec_approval", ap.ApprovalType)

	resolved, err := svc.ResolveApproval(ctx, ap.ID, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, resolved.Status)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, "alice", *resolved.ResolvedBy)
	assert.NotNil(t, resolved.ResolvedAt)

	// Both sides of the gate land in the session event log.
	evts, err := eventsSvc.SessionEvents(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, "approval:requested", evts[0].EventType)
	assert.Equal(t, "approval:resolved", evts[1].EventType)
}

func TestResolveApproval_Rejection(t *testing.T) {
	svc, _, sessionID := newApprovalFixture(t)
	ctx := context.Background()

	ap, err := svc.RequestApproval(ctx, sessionID, "spec_approval", "approve_spec", nil)
	require.NoError(t, err)

	resolved, err := svc.ResolveApproval(ctx, ap.ID, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejected, resolved.Status)
}

func TestResolveApproval_AlreadyResolved(t *testing.T) {
	svc, _, sessionID := newApprovalFixture(t)
	ctx := context.Background()

	ap, err := svc.RequestApproval(ctx, sessionID, "spec_approval", "approve_spec", nil)
	require.NoError(t, err)
	_, err = svc.ResolveApproval(ctx, ap.ID, "alice", true)
	require.NoError(t, err)

	_, err = svc.ResolveApproval(ctx, ap.ID, "bob", false)
	var stateErr *StateConflictError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "approved", stateErr.Current)
}

func TestResolveApproval_NotFound(t *testing.T) {
	svc, _, _ := newApprovalFixture(t)
	_, err := svc.ResolveApproval(context.Background(), "missing", "alice", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
