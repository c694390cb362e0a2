package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/pkg/auth"
)

// fakeListener records LISTEN/UNLISTEN calls.
type fakeListener struct {
	mu           sync.Mutex
	subscribed   []string
	unsubscribed []string
	failWith     error
}

func (l *fakeListener) Subscribe(_ context.Context, channel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failWith != nil {
		return l.failWith
	}
	l.subscribed = append(l.subscribed, channel)
	return nil
}

func (l *fakeListener) Unsubscribe(_ context.Context, channel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unsubscribed = append(l.unsubscribed, channel)
	return nil
}

func (l *fakeListener) unsubscribedChannels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.unsubscribed))
	copy(out, l.unsubscribed)
	return out
}

func newTestConnection() *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		ID:            "conn-1",
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func TestSubscribe_ListensOnFirstSubscriber(t *testing.T) {
	listener := &fakeListener{}
	m := NewConnectionManager(nil, time.Second)
	m.SetListener(listener)

	c1 := newTestConnection()
	require.NoError(t, m.subscribe(c1, "session:s1"))
	assert.Equal(t, []string{"session:s1"}, listener.subscribed)
	assert.Equal(t, 1, m.subscriberCount("session:s1"))
	assert.True(t, c1.subscriptions["session:s1"])

	// A second subscriber reuses the existing LISTEN.
	c2 := newTestConnection()
	c2.ID = "conn-2"
	require.NoError(t, m.subscribe(c2, "session:s1"))
	assert.Len(t, listener.subscribed, 1)
	assert.Equal(t, 2, m.subscriberCount("session:s1"))
}

func TestSubscribe_ListenFailureRollsBack(t *testing.T) {
	listener := &fakeListener{failWith: errors.New("connection lost")}
	m := NewConnectionManager(nil, time.Second)
	m.SetListener(listener)

	c := newTestConnection()
	err := m.subscribe(c, "session:s1")
	require.Error(t, err)
	assert.Zero(t, m.subscriberCount("session:s1"))
	assert.False(t, c.subscriptions["session:s1"])
}

func TestUnsubscribe_UnlistensOnLastSubscriber(t *testing.T) {
	listener := &fakeListener{}
	m := NewConnectionManager(nil, time.Second)
	m.SetListener(listener)

	c1 := newTestConnection()
	c2 := newTestConnection()
	c2.ID = "conn-2"
	require.NoError(t, m.subscribe(c1, "ticket:t1"))
	require.NoError(t, m.subscribe(c2, "ticket:t1"))

	m.unsubscribe(c1, "ticket:t1")
	assert.Equal(t, 1, m.subscriberCount("ticket:t1"))
	assert.Empty(t, listener.unsubscribedChannels())

	m.unsubscribe(c2, "ticket:t1")
	assert.Zero(t, m.subscriberCount("ticket:t1"))

	// UNLISTEN is fired asynchronously.
	require.Eventually(t, func() bool {
		channels := listener.unsubscribedChannels()
		return len(channels) == 1 && channels[0] == "ticket:t1"
	}, time.Second, 10*time.Millisecond)
}

func TestUnsubscribe_ResubscribeRace(t *testing.T) {
	listener := &fakeListener{}
	m := NewConnectionManager(nil, time.Second)
	m.SetListener(listener)

	c := newTestConnection()
	require.NoError(t, m.subscribe(c, "ticket:t1"))

	// A rapid unsubscribe/resubscribe must leave the subscription intact no
	// matter when the async UNLISTEN goroutine runs.
	m.unsubscribe(c, "ticket:t1")
	require.NoError(t, m.subscribe(c, "ticket:t1"))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, m.subscriberCount("ticket:t1"))
	assert.True(t, c.subscriptions["ticket:t1"])
}

func TestBroadcast_UnknownRoomIsNoop(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	m.Broadcast("session:nobody", []byte(`{"type":"session:update"}`))
	assert.Zero(t, m.ActiveConnections())
}

// scriptedAuthorizer returns a fixed error for every room.
type scriptedAuthorizer struct {
	err error
}

func (a scriptedAuthorizer) CanSubscribe(context.Context, auth.Principal, string) error {
	return a.err
}

// serveManager runs a test WebSocket server handing every connection to the
// manager, and dials one client connection.
func serveManager(t *testing.T, m *ConnectionManager) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		m.HandleConnection(r.Context(), conn, auth.Principal{
			UserID:   "u1",
			TenantID: "tenant-1",
			Role:     auth.RoleUser,
		})
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readWSJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeWSJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestSubscribe_ForbiddenRoomClosesConnection(t *testing.T) {
	authz := scriptedAuthorizer{err: fmt.Errorf("room owner mismatch: %w", ErrSubscriptionForbidden)}
	m := NewConnectionManager(authz, time.Second)
	conn := serveManager(t, m)

	hello := readWSJSON(t, conn)
	require.Equal(t, "connection.established", hello["type"])

	writeWSJSON(t, conn, ClientMessage{Type: "subscribe", Room: "session:other-tenant"})

	notice := readWSJSON(t, conn)
	assert.Equal(t, "subscription.error", notice["type"])

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusCode(CloseForbidden), websocket.CloseStatus(err))
}

func TestSubscribe_TransientAuthorizerErrorKeepsConnection(t *testing.T) {
	authz := scriptedAuthorizer{err: errors.New("tenancy lookup failed")}
	m := NewConnectionManager(authz, time.Second)
	conn := serveManager(t, m)

	hello := readWSJSON(t, conn)
	require.Equal(t, "connection.established", hello["type"])

	writeWSJSON(t, conn, ClientMessage{Type: "subscribe", Room: "session:s1"})

	notice := readWSJSON(t, conn)
	assert.Equal(t, "subscription.error", notice["type"])

	// The connection stays open for another attempt.
	writeWSJSON(t, conn, ClientMessage{Type: "ping"})
	pong := readWSJSON(t, conn)
	assert.Equal(t, "pong", pong["type"])
}
