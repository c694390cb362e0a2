package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/buildloop/foundry/pkg/auth"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// RoomAuthorizer decides whether a principal may subscribe to a room.
// Implemented by the service layer (tenant ownership check).
type RoomAuthorizer interface {
	CanSubscribe(ctx context.Context, p auth.Principal, room string) error
}

// Listener is the subset of NotifyListener the manager uses for dynamic
// LISTEN/UNLISTEN. Nil on SQLite deployments.
type Listener interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new channel.
const listenTimeout = 10 * time.Second

// ConnectionManager manages WebSocket connections and room subscriptions.
// Each process has one ConnectionManager instance.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// rooms: room → set of connection ids
	rooms  map[string]map[string]bool
	roomMu sync.RWMutex

	authorizer RoomAuthorizer

	listener   Listener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is only touched by the goroutine that owns the connection
// (HandleConnection's read loop and its deferred cleanup), so it carries no
// lock. lastPong is shared with the ping loop and is mutex-protected.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	Principal     auth.Principal
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc

	pongMu   sync.Mutex
	lastPong time.Time
}

func (c *Connection) touchPong() {
	c.pongMu.Lock()
	c.lastPong = time.Now()
	c.pongMu.Unlock()
}

func (c *Connection) sincePong() time.Duration {
	c.pongMu.Lock()
	defer c.pongMu.Unlock()
	return time.Since(c.lastPong)
}

// NewConnectionManager creates a ConnectionManager.
func NewConnectionManager(authorizer RoomAuthorizer, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		rooms:        make(map[string]map[string]bool),
		authorizer:   authorizer,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NOTIFY listener after construction (PostgreSQL only).
func (m *ConnectionManager) SetListener(l Listener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection manages the lifecycle of one authenticated WebSocket
// connection. Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, principal auth.Principal) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.New().String(),
		Conn:          conn,
		Principal:     principal,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
		lastPong:      time.Now(),
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	go m.runPing(c)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, c, &msg)
	}
}

// runPing sends a ping every PingInterval and closes the connection when
// two intervals pass without a pong.
func (m *ConnectionManager) runPing(c *Connection) {
	ticker := time.NewTicker(PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if c.sincePong() > 2*PingInterval {
				slog.Info("Closing dead WebSocket connection", "connection_id", c.ID)
				_ = c.Conn.Close(websocket.StatusCode(CloseNormal), "pong timeout")
				c.cancel()
				return
			}
			m.sendJSON(c, map[string]string{"type": "ping"})
		}
	}
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Type {
	case "subscribe":
		if msg.Room == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room is required for subscribe"})
			return
		}
		if m.authorizer != nil {
			if err := m.authorizer.CanSubscribe(ctx, c.Principal, msg.Room); err != nil {
				m.sendJSON(c, map[string]string{
					"type":    "subscription.error",
					"room":    msg.Room,
					"message": "not authorized for room",
				})
				// A forbidden room is a permanent failure for this
				// principal; drop the connection with the contract code.
				if errors.Is(err, ErrSubscriptionForbidden) {
					slog.Info("Closing WebSocket connection on forbidden subscription",
						"connection_id", c.ID, "room", msg.Room)
					_ = c.Conn.Close(websocket.StatusCode(CloseForbidden), "forbidden")
					c.cancel()
				}
				return
			}
		}
		if err := m.subscribe(c, msg.Room); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"room":    msg.Room,
				"message": "failed to subscribe to room",
			})
			return
		}
		m.sendJSON(c, map[string]string{"type": "subscription.confirmed", "room": msg.Room})

	case "unsubscribe":
		if msg.Room == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Room)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})

	case "pong":
		c.touchPong()
	}
}

// subscribe registers a connection for a room and starts LISTEN when this is
// the first local subscriber. LISTEN is synchronous so a failure surfaces to
// the client instead of a false confirmation.
func (m *ConnectionManager) subscribe(c *Connection, room string) error {
	m.roomMu.Lock()
	needsListen := false
	if _, exists := m.rooms[room]; !exists {
		m.rooms[room] = make(map[string]bool)
		needsListen = true
	}
	m.rooms[room][c.ID] = true
	m.roomMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, room); err != nil {
				slog.Error("Failed to LISTEN on room", "room", room, "error", err)
				m.roomMu.Lock()
				delete(m.rooms[room], c.ID)
				if len(m.rooms[room]) == 0 {
					delete(m.rooms, room)
				}
				m.roomMu.Unlock()
				return err
			}
		}
	}

	c.subscriptions[room] = true
	return nil
}

// unsubscribe removes a connection from a room and stops LISTEN when the
// last local subscriber leaves. The goroutine re-checks membership before
// UNLISTEN to survive rapid unsubscribe/resubscribe cycles.
func (m *ConnectionManager) unsubscribe(c *Connection, room string) {
	m.roomMu.Lock()
	if subs, exists := m.rooms[room]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.rooms, room)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.roomMu.RLock()
					_, resubscribed := m.rooms[room]
					m.roomMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), room); err != nil {
						slog.Error("Failed to UNLISTEN room", "room", room, "error", err)
					}
				}()
			}
		}
	}
	m.roomMu.Unlock()

	delete(c.subscriptions, room)
}

// Broadcast sends an event payload to every connection subscribed to the
// room. Slow consumers time out on the write and are logged; publishers
// never block beyond the write timeout.
func (m *ConnectionManager) Broadcast(room string, event []byte) {
	m.roomMu.RLock()
	connIDs, exists := m.rooms[room]
	if !exists {
		m.roomMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.roomMu.RUnlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			// Detach the slow consumer; it reconciles by refetching.
			slog.Warn("Detaching slow WebSocket consumer",
				"connection_id", conn.ID, "room", room, "error", err)
			conn.cancel()
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount is used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(room string) int {
	m.roomMu.RLock()
	defer m.roomMu.RUnlock()
	return len(m.rooms[room])
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for room := range c.subscriptions {
		m.unsubscribe(c, room)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
