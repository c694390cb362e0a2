package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", services.NewValidationError("title", "required"), http.StatusBadRequest},
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"state conflict", services.NewStateConflict("ticket", "t1", "done", "hold"), http.StatusConflict},
		{"claim conflict", services.ErrConflict, http.StatusConflict},
		{"integrity", services.ErrIntegrity, http.StatusConflict},
		{"transient upstream", services.NewUpstreamError("model", true, errors.New("x")), http.StatusServiceUnavailable},
		{"permanent upstream", services.NewUpstreamError("critic", false, errors.New("x")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestWriteServiceError_StateConflictBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/hitl/s1/respond", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := writeServiceError(c, services.NewStateConflict("session", "s1", "reviewing", "respond"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "reviewing", body["current_state"])
	assert.NotEmpty(t, body["error"])
}

func TestWriteServiceError_NonConflictFallsThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/hitl/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := writeServiceError(c, services.ErrNotFound)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestMapServiceError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), services.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, mapServiceError(wrapped).Code)
}
