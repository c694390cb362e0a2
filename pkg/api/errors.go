package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/pkg/services"
)

// writeServiceError renders a service-layer error on the response. State
// conflicts carry the entity's current state in the body so clients can
// refresh their view instead of blind-retrying; everything else goes
// through mapServiceError.
func writeServiceError(c *echo.Context, err error) error {
	var stateErr *services.StateConflictError
	if errors.As(err, &stateErr) {
		return c.JSON(http.StatusConflict, map[string]string{
			"error":         stateErr.Error(),
			"current_state": stateErr.Current,
		})
	}
	return mapServiceError(err)
}

// mapServiceError maps service-layer errors to HTTP error responses. Every
// handler funnels through here so the error taxonomy is translated in
// exactly one place.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrUnauthenticated) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	var stateErr *services.StateConflictError
	if errors.As(err, &stateErr) {
		return echo.NewHTTPError(http.StatusConflict, stateErr.Error())
	}
	if errors.Is(err, services.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, "conflicting concurrent update")
	}
	if errors.Is(err, services.ErrIntegrity) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	var upstreamErr *services.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Transient {
			return echo.NewHTTPError(http.StatusServiceUnavailable,
				"upstream service unavailable, retry later")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "upstream service failed")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
