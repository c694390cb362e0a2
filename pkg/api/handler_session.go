package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
)

// createSessionHandler handles POST /api/hitl.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, err := s.sessionService.CreateSession(c.Request().Context(), principalFrom(c), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, sess)
}

// listSessionsHandler handles GET /api/hitl.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	filters := models.SessionFilters{}
	if v := c.QueryParam("state"); v != "" {
		if err := session.StateValidator(session.State(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid state: "+v)
		}
		filters.State = v
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.sessionService.ListSessions(c.Request().Context(), principalFrom(c), filters)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// getSessionHandler handles GET /api/hitl/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	detail, err := s.sessionService.GetSessionWithMessages(c.Request().Context(), principalFrom(c), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// deleteSessionHandler handles DELETE /api/hitl/:id. The session is
// cancelled first so in-flight build tickets stop being claimed; an already
// terminal session deletes directly.
func (s *Server) deleteSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	p := principalFrom(c)

	if _, err := s.hitlEngine.Cancel(c.Request().Context(), p, sessionID); err != nil {
		var stateErr *services.StateConflictError
		if !errors.As(err, &stateErr) {
			return writeServiceError(c, err)
		}
	}
	if err := s.sessionService.DeleteSession(c.Request().Context(), p, sessionID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// listMessagesHandler handles GET /api/hitl/:id/messages.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	p := principalFrom(c)

	// Tenant check rides on the session load.
	if _, err := s.sessionService.GetSession(c.Request().Context(), p, sessionID); err != nil {
		return writeServiceError(c, err)
	}
	msgs, err := s.messageService.ListMessages(c.Request().Context(), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": msgs})
}

// sessionEventsHandler handles GET /api/hitl/:id/events.
func (s *Server) sessionEventsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	p := principalFrom(c)

	if _, err := s.sessionService.GetSession(c.Request().Context(), p, sessionID); err != nil {
		return writeServiceError(c, err)
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	evts, err := s.eventService.SessionEvents(c.Request().Context(), sessionID, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"events": evts})
}

// startClarificationHandler handles POST /api/hitl/:id/start-clarification.
func (s *Server) startClarificationHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.hitlEngine.StartClarification(c.Request().Context(), principalFrom(c), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// respondHandler handles POST /api/hitl/:id/respond: one user turn of
// the clarification dialogue.
func (s *Server) respondHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	var req models.RespondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	resp, err := s.hitlEngine.Respond(c.Request().Context(), principalFrom(c), sessionID, req.Message)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// generateSpecHandler handles POST /api/hitl/:id/generate-spec.
func (s *Server) generateSpecHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.hitlEngine.GenerateSpec(c.Request().Context(), principalFrom(c), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// approveHandler handles POST /api/hitl/:id/approve.
func (s *Server) approveHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.hitlEngine.Approve(c.Request().Context(), principalFrom(c), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// requestRevisionHandler handles POST /api/hitl/:id/request-revision.
func (s *Server) requestRevisionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	var req models.RequestRevisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Feedback == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "feedback is required")
	}

	sess, err := s.hitlEngine.RequestRevision(c.Request().Context(), principalFrom(c), sessionID, req.Feedback)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// startBuildHandler handles POST /api/hitl/:id/start-build: generates
// the ticket batch and moves the session to building.
func (s *Server) startBuildHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	var req models.StartBuildRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := s.hitlEngine.StartBuild(c.Request().Context(), principalFrom(c), sessionID, req.Confirmed)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// cancelSessionHandler handles POST /api/hitl/:id/cancel.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.hitlEngine.Cancel(c.Request().Context(), principalFrom(c), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// resolveApprovalRequest is the body of approval resolution.
type resolveApprovalRequest struct {
	Approved bool `json:"approved"`
}

// resolveApprovalHandler handles POST /api/approvals/:id/resolve.
func (s *Server) resolveApprovalHandler(c *echo.Context) error {
	approvalID := c.Param("id")
	if approvalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval id is required")
	}
	var req resolveApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p := principalFrom(c)
	approval, err := s.approvalService.ResolveApproval(c.Request().Context(), approvalID, p.UserID, req.Approved)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, approval)
}

// getEventHandler handles GET /api/events/:id: full payload recovery for
// events whose NOTIFY delivery was truncated.
func (s *Server) getEventHandler(c *echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event id must be an integer")
	}

	evt, err := s.eventService.GetEvent(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	// Scope the event to the caller through the entity it belongs to.
	p := principalFrom(c)
	switch {
	case evt.TicketID != "":
		if _, err := s.ticketService.GetTicket(c.Request().Context(), p, evt.TicketID); err != nil {
			return writeServiceError(c, err)
		}
	case evt.SessionID != "":
		if _, err := s.sessionService.GetSession(c.Request().Context(), p, evt.SessionID); err != nil {
			return writeServiceError(c, err)
		}
	default:
		if !p.IsOperator() {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
	return c.JSON(http.StatusOK, evt)
}
