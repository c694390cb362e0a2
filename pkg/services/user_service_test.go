package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/user"
)

func TestAuthenticate(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewUserService(db.Client)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "dev@acme.test", "password123", "tenant-1", user.RoleUser)
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "dev@acme.test", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Authenticate(ctx, "dev@acme.test", "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Unknown email yields the same error as a bad password.
	_, err = svc.Authenticate(ctx, "nobody@acme.test", "password123")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Authenticate(ctx, "", "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateUser_Validation(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewUserService(db.Client)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "", "password123", "tenant-1", user.RoleUser)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateUser(ctx, "dev@acme.test", "short", "tenant-1", user.RoleUser)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewUserService(db.Client)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "dev@acme.test", "password123", "tenant-1", user.RoleUser)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "dev@acme.test", "password456", "tenant-1", user.RoleUser)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetUser(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewUserService(db.Client)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "agent@acme.test", "password123", "tenant-1", user.RoleAgent)
	require.NoError(t, err)

	u, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAgent, u.Role)

	_, err = svc.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserInfo(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewUserService(db.Client)

	u, err := svc.CreateUser(context.Background(), "dev@acme.test", "password123", "tenant-1", user.RoleOperator)
	require.NoError(t, err)

	info := UserInfo(u)
	assert.Equal(t, u.ID, info.ID)
	assert.Equal(t, "dev@acme.test", info.Email)
	assert.Equal(t, "tenant-1", info.TenantID)
	assert.Equal(t, "operator", info.Role)
}
