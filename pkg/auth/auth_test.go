package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	issuer := NewTokenIssuer("test-signing-key", time.Hour)

	p := Principal{UserID: "u1", TenantID: "t1", Role: RoleOperator}
	token, err := issuer.Issue(p)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestVerify_WrongKey(t *testing.T) {
	token, err := NewTokenIssuer("key-a", time.Hour).Issue(Principal{UserID: "u1", Role: RoleUser})
	require.NoError(t, err)

	_, err = NewTokenIssuer("key-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-signing-key", -time.Minute)
	token, err := issuer.Issue(Principal{UserID: "u1", Role: RoleUser})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-signing-key", time.Hour)
	_, err := issuer.Verify("not-a-token")
	assert.Error(t, err)
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, Principal{Role: RoleOperator}.IsOperator())
	assert.True(t, Principal{Role: RoleAgent}.IsAgent())
	assert.False(t, Principal{Role: RoleUser}.IsOperator())
	assert.False(t, Principal{Role: RoleUser}.IsAgent())
}

func TestPasswordHashing(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.NotEmpty(t, salt)

	hash := HashPassword("s3cret", salt)
	assert.True(t, VerifyPassword("s3cret", salt, hash))
	assert.False(t, VerifyPassword("wrong", salt, hash))

	otherSalt, err := NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, hash, HashPassword("s3cret", otherSalt))
}
