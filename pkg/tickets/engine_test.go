package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/buildloop/foundry/test/util"
)

func newTicketEngine(t *testing.T) (*Engine, *database.Client) {
	t.Helper()
	db := util.SetupSQLite(t)
	publisher := events.NewPublisher(db.DB(), false, nil)
	engine := NewEngine(db, publisher, config.QueueConfig{
		LeaseDuration:           30 * time.Minute,
		HeartbeatInterval:       time.Minute,
		ReaperInterval:          time.Second,
		RetryCeiling:            2,
		RetryBackoffBase:        time.Second,
		RetryBackoffCap:         time.Minute,
		GracefulShutdownTimeout: time.Minute,
	})
	return engine, db
}

type ticketOpt func(*ent.TicketCreate)

func withState(s ticket.State) ticketOpt {
	return func(c *ent.TicketCreate) { c.SetState(s) }
}

func withPriority(p ticket.Priority) ticketOpt {
	return func(c *ent.TicketCreate) { c.SetPriority(p) }
}

func withSession(id string) ticketOpt {
	return func(c *ent.TicketCreate) { c.SetSessionID(id) }
}

func withRetryAfter(at time.Time) ticketOpt {
	return func(c *ent.TicketCreate) { c.SetRetryAfter(at) }
}

func newTicket(t *testing.T, db *database.Client, opts ...ticketOpt) *ent.Ticket {
	t.Helper()
	create := db.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetProjectID("proj-1").
		SetTitle("Implement widget").
		SetDescription("Build the widget end to end").
		SetState(ticket.StateReady)
	for _, opt := range opts {
		opt(create)
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestProjectSettings(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db, func(c *ent.TicketCreate) {
		c.SetRepoURL("https://github.com/acme/shop")
		c.SetLeaseSeconds(900)
	})

	settings := engine.ProjectSettings(tk)
	assert.Equal(t, "proj-1", settings["project_id"])
	assert.Equal(t, "https://github.com/acme/shop", settings["repo_url"])
	assert.Equal(t, 900, settings["lease_seconds"])
	assert.Equal(t, 60, settings["heartbeat_interval"])
	assert.Equal(t, 2, settings["retry_ceiling"])
}

func TestProjectSettings_LeaseDefaultsFromConfig(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db, func(c *ent.TicketCreate) { c.SetLeaseSeconds(0) })

	settings := engine.ProjectSettings(tk)
	assert.Equal(t, 1800, settings["lease_seconds"])
}

func TestClaim_AssignsLease(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db)
	ctx := context.Background()

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	require.NotNil(t, claimed)

	assert.Equal(t, tk.ID, claimed.ID)
	assert.Equal(t, ticket.StateAssigned, claimed.State)
	require.NotNil(t, claimed.Assignee)
	assert.Equal(t, "w1", *claimed.Assignee)
	assert.Equal(t, 1, claimed.Attempt)
	require.NotNil(t, claimed.LeaseExpires)
	assert.True(t, claimed.LeaseExpires.After(time.Now()))
}

func TestClaim_NoWork(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db, withState(ticket.StateBlocked))

	claimed, err := engine.Claim(context.Background(), models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestClaim_RequiresWorkerID(t *testing.T) {
	engine, _ := newTicketEngine(t)

	_, err := engine.Claim(context.Background(), models.ClaimRequest{})
	var ve *services.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestClaim_PriorityOrder(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db, withPriority(ticket.PriorityLow))
	high := newTicket(t, db, withPriority(ticket.PriorityHigh))
	newTicket(t, db, withPriority(ticket.PriorityMedium))

	claimed, err := engine.Claim(context.Background(), models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, high.ID, claimed.ID)
}

func TestClaim_RetryAfterGate(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db, withRetryAfter(time.Now().Add(time.Hour)))
	ctx := context.Background()

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	assert.Nil(t, claimed)

	// A lapsed backoff gate does not block the claim.
	lapsed := newTicket(t, db, withRetryAfter(time.Now().Add(-time.Minute)))
	claimed, err = engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, lapsed.ID, claimed.ID)
}

func TestClaim_LeaseSecondsOverride(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db)

	claimed, err := engine.Claim(context.Background(), models.ClaimRequest{
		WorkerID:     "w1",
		LeaseSeconds: 60,
	})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.NotNil(t, claimed.LeaseExpires)
	assert.WithinDuration(t, time.Now().Add(time.Minute), *claimed.LeaseExpires, 10*time.Second)
}

func TestClaimExcluding(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db, withSession("sess-a"), withPriority(ticket.PriorityHigh))
	other := newTicket(t, db, withSession("sess-b"))

	claimed, err := engine.ClaimExcluding(context.Background(),
		models.ClaimRequest{WorkerID: "w1"}, []string{"sess-a"})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, other.ID, claimed.ID)
}

func TestClaim_SecondClaimerGetsNextTicket(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db)
	newTicket(t, db)
	ctx := context.Background()

	first, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w2"})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	third, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w3"})
	require.NoError(t, err)
	assert.Nil(t, third)
}

func TestHeartbeat_ExtendsLease(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db)
	ctx := context.Background()

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1", LeaseSeconds: 60})
	require.NoError(t, err)

	renewed, err := engine.Heartbeat(ctx, claimed.ID, "w1")
	require.NoError(t, err)
	assert.Equal(t, 1, renewed.HeartbeatCount)
	require.NotNil(t, renewed.LeaseExpires)
	assert.True(t, !renewed.LeaseExpires.Before(*claimed.LeaseExpires))
}

func TestHeartbeat_WrongHolderIsConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db)
	ctx := context.Background()

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)

	_, err = engine.Heartbeat(ctx, claimed.ID, "w2")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestHeartbeat_ExpiredLeaseIsConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db, withState(ticket.StateAssigned))
	ctx := context.Background()

	_, err := db.Ticket.UpdateOneID(tk.ID).
		SetAssignee("w1").
		SetLeaseExpires(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = engine.Heartbeat(ctx, tk.ID, "w1")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestHeartbeat_NonLeaseStateIsStateConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	tk := newTicket(t, db)

	_, err := engine.Heartbeat(context.Background(), tk.ID, "w1")
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}

func TestHeartbeat_UnknownTicket(t *testing.T) {
	engine, _ := newTicketEngine(t)

	_, err := engine.Heartbeat(context.Background(), uuid.New().String(), "w1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStart(t *testing.T) {
	engine, db := newTicketEngine(t)
	newTicket(t, db)
	ctx := context.Background()

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)

	started, err := engine.Start(ctx, claimed.ID, "w1")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInProgress, started.State)

	_, err = engine.Start(ctx, claimed.ID, "w2")
	assert.ErrorIs(t, err, services.ErrConflict)
}
