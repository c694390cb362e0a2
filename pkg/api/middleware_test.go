package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/pkg/auth"
)

func newAuthContext(method, target, authz string) (*echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	c, _ := newAuthContext(http.MethodGet, "/", "Bearer abc123")
	assert.Equal(t, "abc123", bearerToken(c))

	c, _ = newAuthContext(http.MethodGet, "/?token=qp456", "")
	assert.Equal(t, "qp456", bearerToken(c))

	// Header wins over the query parameter.
	c, _ = newAuthContext(http.MethodGet, "/?token=qp456", "Bearer abc123")
	assert.Equal(t, "abc123", bearerToken(c))

	c, _ = newAuthContext(http.MethodGet, "/", "Basic dXNlcjpwdw==")
	assert.Equal(t, "", bearerToken(c))
}

func TestRequireAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-signing-key", time.Hour)
	s := &Server{issuer: issuer}

	handler := s.requireAuth()(func(c *echo.Context) error {
		p := principalFrom(c)
		return c.String(http.StatusOK, p.UserID)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := issuer.Issue(auth.Principal{UserID: "u1", TenantID: "t1", Role: auth.RoleUser})
		require.NoError(t, err)

		c, rec := newAuthContext(http.MethodGet, "/", "Bearer "+token)
		require.NoError(t, handler(c))
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		c, _ := newAuthContext(http.MethodGet, "/", "")
		err := handler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		c, _ := newAuthContext(http.MethodGet, "/", "Bearer bogus")
		err := handler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token, err := auth.NewTokenIssuer("other-key", time.Hour).
			Issue(auth.Principal{UserID: "u1", Role: auth.RoleUser})
		require.NoError(t, err)

		c, _ := newAuthContext(http.MethodGet, "/", "Bearer "+token)
		err = handler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestRequireAgent(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleAgent, auth.RoleOperator} {
		c, _ := newAuthContext(http.MethodPost, "/", "")
		c.Set(principalKey, auth.Principal{UserID: "a1", Role: role})
		p, err := requireAgent(c)
		require.NoError(t, err)
		assert.Equal(t, "a1", p.UserID)
	}

	c, _ := newAuthContext(http.MethodPost, "/", "")
	c.Set(principalKey, auth.Principal{UserID: "u1", Role: auth.RoleUser})
	_, err := requireAgent(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestSecurityHeaders(t *testing.T) {
	handler := securityHeaders()(func(c *echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := newAuthContext(http.MethodGet, "/", "")
	require.NoError(t, handler(c))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
