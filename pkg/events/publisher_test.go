package events

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/test/util"
)

// captureBroadcaster records every broadcast for assertions.
type captureBroadcaster struct {
	mu     sync.Mutex
	rooms  []string
	events [][]byte
}

func (b *captureBroadcaster) Broadcast(room string, event []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, room)
	b.events = append(b.events, event)
}

func TestAppendAndNotify(t *testing.T) {
	db := util.SetupSQLite(t)
	capture := &captureBroadcaster{}
	publisher := NewPublisher(db.DB(), false, capture)

	ctx := context.Background()
	tx, err := db.Client.Tx(ctx)
	require.NoError(t, err)

	create, err := Append(tx, RoomSession("sess-1"), EventSessionUpdate,
		SessionUpdatePayload{
			BasePayload: NewBase(EventSessionUpdate),
			SessionID:   "sess-1",
			State:       "clarifying",
			Progress:    40,
		}, "sess-1", "")
	require.NoError(t, err)

	evt, err := create.Save(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, "session:sess-1", evt.Channel)
	assert.Equal(t, EventSessionUpdate, evt.EventType)
	assert.Equal(t, "sess-1", evt.SessionID)

	publisher.Notify(ctx, evt)

	require.Len(t, capture.events, 1)
	assert.Equal(t, "session:sess-1", capture.rooms[0])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(capture.events[0], &payload))
	assert.Equal(t, EventSessionUpdate, payload["type"])
	assert.Equal(t, "clarifying", payload["state"])
	assert.Equal(t, float64(40), payload["progress"])
	// The row id rides along so clients can refetch truncated payloads.
	assert.Equal(t, float64(evt.ID), payload["db_event_id"])
}

func TestNotify_RolledBackRowsNeverPublish(t *testing.T) {
	db := util.SetupSQLite(t)
	ctx := context.Background()

	tx, err := db.Client.Tx(ctx)
	require.NoError(t, err)

	create, err := Append(tx, RoomTicket("tk-1"), EventTicketActivity,
		TicketActivityPayload{
			BasePayload: NewBase(EventTicketActivity),
			TicketID:    "tk-1",
			Activity:    "state_changed",
		}, "", "tk-1")
	require.NoError(t, err)
	_, err = create.Save(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	count, err := db.Client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotify_NilBroadcasterAndNilEvents(t *testing.T) {
	db := util.SetupSQLite(t)
	publisher := NewPublisher(db.DB(), false, nil)

	// Neither should panic.
	publisher.Notify(context.Background(), nil)
	publisher.Notify(context.Background())
}

func TestBuildTruncatedPayload(t *testing.T) {
	full := map[string]any{
		"type":        EventTicketActivity,
		"ticket_id":   "tk-1",
		"session_id":  "sess-1",
		"db_event_id": 42,
		"detail":      map[string]any{"log": strings.Repeat("x", 9000)},
	}
	data, err := json.Marshal(full)
	require.NoError(t, err)
	require.Greater(t, len(data), 7900)

	truncated, err := buildTruncatedPayload(data)
	require.NoError(t, err)
	assert.Less(t, len(truncated), 500)

	var routing map[string]any
	require.NoError(t, json.Unmarshal([]byte(truncated), &routing))
	assert.Equal(t, EventTicketActivity, routing["type"])
	assert.Equal(t, true, routing["truncated"])
	assert.Equal(t, "tk-1", routing["ticket_id"])
	assert.Equal(t, "sess-1", routing["session_id"])
	assert.Equal(t, float64(42), routing["db_event_id"])
	assert.NotContains(t, routing, "detail")
}

func TestBuildTruncatedPayload_OmitsEmptyRouting(t *testing.T) {
	data, err := json.Marshal(map[string]any{"type": EventSessionUpdate})
	require.NoError(t, err)

	truncated, err := buildTruncatedPayload(data)
	require.NoError(t, err)

	var routing map[string]any
	require.NoError(t, json.Unmarshal([]byte(truncated), &routing))
	assert.NotContains(t, routing, "session_id")
	assert.NotContains(t, routing, "ticket_id")
	assert.NotContains(t, routing, "db_event_id")
}

func TestToMap(t *testing.T) {
	m, err := toMap(BuildProgressPayload{
		BasePayload: NewBase(EventBuildProgress),
		SessionID:   "sess-1",
		Done:        2,
		Total:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, EventBuildProgress, m["type"])
	assert.Equal(t, float64(2), m["done"])
	assert.Equal(t, float64(5), m["total"])

	_, err = toMap(make(chan int))
	assert.Error(t, err)
}

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "session:s1", RoomSession("s1"))
	assert.Equal(t, "ticket:t1", RoomTicket("t1"))
}
