package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/buildloop/foundry/pkg/events"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to
// ConnectionManager. Authentication happens after the upgrade: a missing or
// invalid token closes the connection with 4001, a permanent close code
// clients must not auto-reconnect on.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	token := bearerToken(c)
	if token == "" {
		return conn.Close(websocket.StatusCode(events.CloseUnauthenticated), "missing token")
	}
	p, err := s.issuer.Verify(token)
	if err != nil {
		return conn.Close(websocket.StatusCode(events.CloseUnauthenticated), "invalid token")
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, p)
	return nil
}
