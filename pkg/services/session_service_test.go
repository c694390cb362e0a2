package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/test/util"
)

var (
	alice = auth.Principal{UserID: "alice", TenantID: "tenant-1", Role: auth.RoleUser}
	bob   = auth.Principal{UserID: "bob", TenantID: "tenant-2", Role: auth.RoleUser}
	ops   = auth.Principal{UserID: "ops", TenantID: "tenant-9", Role: auth.RoleOperator}
)

func newServiceDB(t *testing.T) (*database.Client, *events.Publisher) {
	t.Helper()
	db := util.SetupSQLite(t)
	return db, events.NewPublisher(db.DB(), false, nil)
}

func TestCreateSession(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewSessionService(db.Client)

	sess, err := svc.CreateSession(context.Background(), alice, models.CreateSessionRequest{
		ProjectName: "Webshop",
		Description: "An online shop",
		RepoURL:     "https://github.com/acme/shop",
	})
	require.NoError(t, err)

	assert.Equal(t, session.StateInput, sess.State)
	assert.Equal(t, session.ProjectTypeNewApplication, sess.ProjectType)
	assert.Equal(t, "tenant-1", sess.TenantID)
	assert.Equal(t, "alice", sess.OwnerID)
	assert.Equal(t, "https://github.com/acme/shop", sess.RepoAnalysis["repo_url"])
}

func TestCreateSession_Validation(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewSessionService(db.Client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, alice, models.CreateSessionRequest{Description: "d"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "project_name", vErr.Field)

	_, err = svc.CreateSession(ctx, alice, models.CreateSessionRequest{ProjectName: "p"})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateSession(ctx, alice, models.CreateSessionRequest{
		ProjectName: "p", Description: "d", ProjectType: "mainframe",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "project_type", vErr.Field)
}

func TestGetSession_Tenancy(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewSessionService(db.Client)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, alice, models.CreateSessionRequest{
		ProjectName: "Webshop", Description: "shop",
	})
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, alice, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	_, err = svc.GetSession(ctx, bob, sess.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Operators see every tenant.
	_, err = svc.GetSession(ctx, ops, sess.ID)
	assert.NoError(t, err)

	_, err = svc.GetSession(ctx, alice, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSessions(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewSessionService(db.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSession(ctx, alice, models.CreateSessionRequest{
			ProjectName: "Webshop", Description: "shop",
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateSession(ctx, bob, models.CreateSessionRequest{
		ProjectName: "Other", Description: "other tenant",
	})
	require.NoError(t, err)

	result, err := svc.ListSessions(ctx, alice, models.SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
	assert.Len(t, result.Sessions, 3)

	result, err = svc.ListSessions(ctx, alice, models.SessionFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
	assert.Len(t, result.Sessions, 2)

	result, err = svc.ListSessions(ctx, alice, models.SessionFilters{State: "clarifying"})
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
}

func TestDeleteSession_OwnerOnly(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewSessionService(db.Client)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, alice, models.CreateSessionRequest{
		ProjectName: "Webshop", Description: "shop",
	})
	require.NoError(t, err)

	// A same-tenant non-owner cannot delete.
	carol := auth.Principal{UserID: "carol", TenantID: "tenant-1", Role: auth.RoleUser}
	err = svc.DeleteSession(ctx, carol, sess.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeleteSession(ctx, alice, sess.ID))

	_, err = svc.GetSession(ctx, alice, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
