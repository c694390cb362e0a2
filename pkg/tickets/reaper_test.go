package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/models"
)

func newTestReaper(t *testing.T) (*Reaper, *Engine, *database.Client) {
	t.Helper()
	engine, db := newTicketEngine(t)
	return NewReaper(engine, time.Second), engine, db
}

func expireLease(t *testing.T, db *database.Client, ticketID string) {
	t.Helper()
	_, err := db.Ticket.UpdateOneID(ticketID).
		SetLeaseExpires(time.Now().Add(-time.Minute)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestReaper_ReapsExpiredLease(t *testing.T) {
	reaper, engine, db := newTestReaper(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")
	expireLease(t, db, claimed.ID)

	require.NoError(t, reaper.Tick(ctx))

	reloaded, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, reloaded.State)
	assert.Equal(t, 1, reloaded.RetryCount)
	assert.Nil(t, reloaded.Assignee)
	assert.Nil(t, reloaded.LeaseExpires)
	assert.NotNil(t, reloaded.RetryAfter)
}

func TestReaper_CeilingTerminatesInNeedsReview(t *testing.T) {
	reaper, engine, db := newTestReaper(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")
	_, err := db.Ticket.UpdateOneID(claimed.ID).SetRetryCount(2).Save(ctx)
	require.NoError(t, err)
	expireLease(t, db, claimed.ID)

	require.NoError(t, reaper.Tick(ctx))

	reloaded, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateNeedsReview, reloaded.State)
}

func TestReaper_LiveLeaseUntouched(t *testing.T) {
	reaper, engine, db := newTestReaper(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")

	require.NoError(t, reaper.Tick(ctx))

	reloaded, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateAssigned, reloaded.State)
	assert.Equal(t, 0, reloaded.RetryCount)
	require.NotNil(t, reloaded.Assignee)
	assert.Equal(t, "w1", *reloaded.Assignee)
}

func TestReaper_PromotesLapsedRetries(t *testing.T) {
	reaper, engine, db := newTestReaper(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")
	verifying, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	require.NoError(t, err)
	_, err = engine.RequestChanges(ctx, claimed.ID, verifying.Attempt,
		[]models.CriticFeedbackItem{{Severity: "error", Category: "general", Description: "redo"}})
	require.NoError(t, err)

	// Backoff still pending: the ticket stays in changes_requested.
	require.NoError(t, reaper.Tick(ctx))
	reloaded, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateChangesRequested, reloaded.State)

	_, err = db.Ticket.UpdateOneID(claimed.ID).
		SetRetryAfter(time.Now().Add(-time.Second)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, reaper.Tick(ctx))
	reloaded, err = db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, reloaded.State)
	// Stored feedback survives for the next attempt.
	assert.Len(t, reloaded.CriticFeedback, 1)
}

func TestReaper_RecoverOrphans(t *testing.T) {
	reaper, engine, db := newTestReaper(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")
	expireLease(t, db, claimed.ID)

	require.NoError(t, reaper.RecoverOrphans(ctx))

	reloaded, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, reloaded.State)
}

func TestReaper_LastSecondCompletionWins(t *testing.T) {
	reaper, engine, db := newTestReaper(t)
	ctx := context.Background()

	claimed := claimFor(t, engine, db, "w1")
	expireLease(t, db, claimed.ID)

	// Simulate the race: the reaper observed the expired assigned row, but
	// the worker's completion lands before the conditional update.
	stale, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	_, err = db.Ticket.UpdateOneID(claimed.ID).
		SetState(ticket.StateVerifying).
		SetLeaseExpires(time.Now().Add(time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, reaper.reapOne(ctx, stale))

	reloaded, err := db.Ticket.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateVerifying, reloaded.State)
	assert.Equal(t, 0, reloaded.RetryCount)
}
