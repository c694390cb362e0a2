// Package api exposes the HTTP and WebSocket surface: authentication,
// design sessions and their human-in-the-loop actions, the ticket store and
// queue protocol, and real-time event subscriptions.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/hitl"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/buildloop/foundry/pkg/tickets"
)

// Server is the HTTP server: it owns the router and delegates to the service
// and engine layers.
type Server struct {
	db     *database.Client
	issuer *auth.TokenIssuer

	userService     *services.UserService
	sessionService  *services.SessionService
	messageService  *services.MessageService
	ticketService   *services.TicketService
	eventService    *services.EventService
	approvalService *services.ApprovalService

	hitlEngine   *hitl.Engine
	ticketEngine *tickets.Engine

	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer wires the router. All dependencies are required except
// connManager, which may be nil when WebSocket support is disabled.
func NewServer(
	db *database.Client,
	issuer *auth.TokenIssuer,
	userService *services.UserService,
	sessionService *services.SessionService,
	messageService *services.MessageService,
	ticketService *services.TicketService,
	eventService *services.EventService,
	approvalService *services.ApprovalService,
	hitlEngine *hitl.Engine,
	ticketEngine *tickets.Engine,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		db:              db,
		issuer:          issuer,
		userService:     userService,
		sessionService:  sessionService,
		messageService:  messageService,
		ticketService:   ticketService,
		eventService:    eventService,
		approvalService: approvalService,
		hitlEngine:      hitlEngine,
		ticketEngine:    ticketEngine,
		connManager:     connManager,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/api/health", s.healthHandler)

	// Auth
	e.GET("/api/auth/me", s.meHandler, s.requireAuth())

	// Design sessions and the human-in-the-loop flow
	hitlGroup := e.Group("/api/hitl", s.requireAuth())
	hitlGroup.POST("", s.createSessionHandler)
	hitlGroup.GET("", s.listSessionsHandler)
	hitlGroup.GET("/:id", s.getSessionHandler)
	hitlGroup.DELETE("/:id", s.deleteSessionHandler)
	hitlGroup.GET("/:id/messages", s.listMessagesHandler)
	hitlGroup.GET("/:id/events", s.sessionEventsHandler)
	hitlGroup.POST("/:id/start-clarification", s.startClarificationHandler)
	hitlGroup.POST("/:id/respond", s.respondHandler)
	hitlGroup.POST("/:id/generate-spec", s.generateSpecHandler)
	hitlGroup.POST("/:id/approve", s.approveHandler)
	hitlGroup.POST("/:id/request-revision", s.requestRevisionHandler)
	hitlGroup.POST("/:id/start-build", s.startBuildHandler)
	hitlGroup.POST("/:id/cancel", s.cancelSessionHandler)

	// Approvals
	e.POST("/api/approvals/:id/resolve", s.resolveApprovalHandler, s.requireAuth())

	// Tickets
	ticketGroup := e.Group("/api/tickets", s.requireAuth())
	ticketGroup.POST("", s.createTicketHandler)
	ticketGroup.GET("", s.listTicketsHandler)
	ticketGroup.GET("/:id", s.getTicketHandler)
	ticketGroup.PUT("/:id", s.updateTicketHandler)
	ticketGroup.DELETE("/:id", s.deleteTicketHandler)
	ticketGroup.GET("/:id/activity", s.ticketActivityHandler)
	ticketGroup.POST("/:id/hold", s.holdTicketHandler)
	ticketGroup.POST("/:id/resume", s.resumeTicketHandler)
	ticketGroup.POST("/:id/cancel", s.cancelTicketHandler)

	// Queue protocol (agents)
	ticketGroup.POST("/claim", s.claimHandler)
	ticketGroup.POST("/:id/heartbeat", s.heartbeatHandler)
	ticketGroup.POST("/:id/start", s.startTicketHandler)
	ticketGroup.POST("/:id/complete", s.completeHandler)
	ticketGroup.POST("/:id/deploy-result", s.deployResultHandler)

	// Event payload recovery for truncated NOTIFY deliveries
	e.GET("/api/events/:id", s.getEventHandler, s.requireAuth())

	// Login is unauthenticated; WebSocket authenticates inside the upgrade
	// so failures surface as close codes rather than HTTP errors.
	e.POST("/api/auth/login", s.loginHandler)
	e.GET("/ws", s.wsHandler)

	return e
}

// Start runs the HTTP server. Blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the echo instance for tests.
func (s *Server) Router() *echo.Echo { return s.echo }

// healthHandler handles GET /api/health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "healthy",
		"database": dbHealth,
	})
}
