package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
)

// loginHandler handles POST /api/auth/login.
func (s *Server) loginHandler(c *echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	u, err := s.userService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	token, err := s.issuer.Issue(auth.Principal{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Role:     auth.Role(u.Role),
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		User:  services.UserInfo(u),
		Token: token,
	})
}

// meHandler handles GET /api/auth/me. The response carries a refreshed
// token so long-lived clients can slide their expiry without re-entering
// credentials.
func (s *Server) meHandler(c *echo.Context) error {
	p := principalFrom(c)
	u, err := s.userService.GetUser(c.Request().Context(), p.UserID)
	if err != nil {
		return writeServiceError(c, err)
	}
	token, err := s.issuer.Issue(p)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, models.LoginResponse{
		User:  services.UserInfo(u),
		Token: token,
	})
}
