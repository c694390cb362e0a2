package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/models"
)

// createTicketHandler handles POST /api/tickets.
func (s *Server) createTicketHandler(c *echo.Context) error {
	var req models.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketService.CreateTicket(c.Request().Context(), principalFrom(c), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// listTicketsHandler handles GET /api/tickets.
func (s *Server) listTicketsHandler(c *echo.Context) error {
	filters := models.TicketFilters{
		ProjectID: c.QueryParam("project_id"),
		SessionID: c.QueryParam("session_id"),
		Epic:      c.QueryParam("epic"),
	}
	if v := c.QueryParam("state"); v != "" {
		if err := ticket.StateValidator(ticket.State(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid state: "+v)
		}
		filters.State = v
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.ticketService.ListTickets(c.Request().Context(), principalFrom(c), filters)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// getTicketHandler handles GET /api/tickets/:id.
func (s *Server) getTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	t, err := s.ticketService.GetTicket(c.Request().Context(), principalFrom(c), ticketID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// updateTicketHandler handles PUT /api/tickets/:id.
func (s *Server) updateTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	var req models.UpdateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketService.UpdateTicket(c.Request().Context(), principalFrom(c), ticketID, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// deleteTicketHandler handles DELETE /api/tickets/:id.
func (s *Server) deleteTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	if err := s.ticketService.DeleteTicket(c.Request().Context(), principalFrom(c), ticketID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ticketActivityHandler handles GET /api/tickets/:id/activity.
func (s *Server) ticketActivityHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	p := principalFrom(c)

	// Tenant check rides on the ticket load.
	if _, err := s.ticketService.GetTicket(c.Request().Context(), p, ticketID); err != nil {
		return writeServiceError(c, err)
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	evts, err := s.eventService.TicketActivity(c.Request().Context(), ticketID, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"events": evts})
}

// holdTicketHandler handles POST /api/tickets/:id/hold.
func (s *Server) holdTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	var req models.HoldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketEngine.Hold(c.Request().Context(), principalFrom(c), ticketID, req.Reason)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// resumeTicketHandler handles POST /api/tickets/:id/resume.
func (s *Server) resumeTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	t, err := s.ticketEngine.Resume(c.Request().Context(), principalFrom(c), ticketID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// cancelTicketHandler handles POST /api/tickets/:id/cancel.
func (s *Server) cancelTicketHandler(c *echo.Context) error {
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}

	t, err := s.ticketEngine.Cancel(c.Request().Context(), principalFrom(c), ticketID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// claimHandler handles POST /api/tickets/claim. Responds 204 when no work
// is available so agents can distinguish "empty queue" from errors.
func (s *Server) claimHandler(c *echo.Context) error {
	if _, err := requireAgent(c); err != nil {
		return err
	}
	var req models.ClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketEngine.Claim(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	if t == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, models.ClaimResponse{
		Ticket:          t,
		ProjectSettings: s.ticketEngine.ProjectSettings(t),
	})
}

// heartbeatHandler handles POST /api/tickets/:id/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	if _, err := requireAgent(c); err != nil {
		return err
	}
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	var req models.HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketEngine.Heartbeat(c.Request().Context(), ticketID, req.WorkerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	expires := time.Time{}
	if t.LeaseExpires != nil {
		expires = *t.LeaseExpires
	}
	return c.JSON(http.StatusOK, models.HeartbeatResponse{LeaseExpires: expires})
}

// startTicketHandler handles POST /api/tickets/:id/start.
func (s *Server) startTicketHandler(c *echo.Context) error {
	if _, err := requireAgent(c); err != nil {
		return err
	}
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	var req models.HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketEngine.Start(c.Request().Context(), ticketID, req.WorkerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// completeHandler handles POST /api/tickets/:id/complete.
func (s *Server) completeHandler(c *echo.Context) error {
	if _, err := requireAgent(c); err != nil {
		return err
	}
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	var req models.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketEngine.Complete(c.Request().Context(), ticketID, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// deployResultHandler handles POST /api/tickets/:id/deploy-result.
func (s *Server) deployResultHandler(c *echo.Context) error {
	if _, err := requireAgent(c); err != nil {
		return err
	}
	ticketID := c.Param("id")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticket id is required")
	}
	var req models.DeployResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := s.ticketEngine.DeployResult(c.Request().Context(), ticketID, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}
