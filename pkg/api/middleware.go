package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/pkg/auth"
)

// principalKey is the echo context key the authenticated principal is stored
// under.
const principalKey = "principal"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requireAuth returns middleware that verifies the bearer token and attaches
// the principal to the request context.
func (s *Server) requireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			p, err := s.issuer.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header, falling back
// to the token query parameter (WebSocket clients cannot set headers).
func bearerToken(c *echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.QueryParam("token")
}

// principalFrom returns the authenticated principal set by requireAuth.
func principalFrom(c *echo.Context) auth.Principal {
	p, _ := c.Get(principalKey).(auth.Principal)
	return p
}

// requireAgent rejects principals that are neither build agents nor
// operators. Queue endpoints are not for end users.
func requireAgent(c *echo.Context) (auth.Principal, error) {
	p := principalFrom(c)
	if !p.IsAgent() && !p.IsOperator() {
		return p, echo.NewHTTPError(http.StatusForbidden, "agent credentials required")
	}
	return p, nil
}
