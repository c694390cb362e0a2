package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent"
	entevent "github.com/buildloop/foundry/ent/event"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/google/uuid"
)

// claimFor creates a ready ticket and claims it for the worker.
func claimFor(t *testing.T, engine *Engine, db *database.Client, workerID string, opts ...ticketOpt) *ent.Ticket {
	t.Helper()
	newTicket(t, db, opts...)
	claimed, err := engine.Claim(context.Background(), models.ClaimRequest{WorkerID: workerID})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	return claimed
}

func TestComplete_Success(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	updated, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID:   "w1",
		Success:    true,
		BranchName: "foundry/widget",
		Files:      []string{"api/widget.go"},
		Summary:    "implemented the widget",
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateVerifying, updated.State)
	require.NotNil(t, updated.BranchName)
	assert.Equal(t, "foundry/widget", *updated.BranchName)
	assert.Equal(t, []string{"api/widget.go"}, updated.FilesInvolved)
}

func TestComplete_FailureAppliesBackoff(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	updated, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID:     "w1",
		Success:      false,
		FailureClass: "tool",
		Error:        "compilation failed",
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, updated.State)
	assert.Equal(t, 1, updated.RetryCount)
	assert.Nil(t, updated.Assignee)
	assert.Nil(t, updated.LeaseExpires)
	require.NotNil(t, updated.RetryAfter)
	assert.True(t, updated.RetryAfter.After(time.Now()))
	require.NotNil(t, updated.FailureClass)
	assert.Equal(t, "tool", *updated.FailureClass)
}

func TestComplete_FailurePastCeiling(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	// Exhaust the retry budget (ceiling is 2 in the test config).
	_, err := db.Ticket.UpdateOneID(claimed.ID).SetRetryCount(2).Save(ctx)
	require.NoError(t, err)

	updated, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateNeedsReview, updated.State)
	assert.Nil(t, updated.RetryAfter)
}

func TestComplete_StaleWorkerIsConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")

	_, err := engine.Complete(context.Background(), claimed.ID, models.CompleteRequest{
		WorkerID: "w2",
		Success:  true,
	})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestComplete_ExpiredLeaseIsConflict(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	_, err := db.Ticket.UpdateOneID(claimed.ID).
		SetLeaseExpires(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestApproveToReview(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	verifying, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	require.NoError(t, err)

	updated, err := engine.ApproveToReview(ctx, claimed.ID, verifying.Attempt, "https://github.com/acme/shop/pull/7")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInReview, updated.State)
	assert.Nil(t, updated.Assignee)
	assert.Nil(t, updated.LeaseExpires)
	require.NotNil(t, updated.PrURL)
	assert.Equal(t, "https://github.com/acme/shop/pull/7", *updated.PrURL)
}

func TestApproveToReview_StaleAttemptIsNoOp(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	verifying, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	require.NoError(t, err)

	updated, err := engine.ApproveToReview(ctx, claimed.ID, verifying.Attempt+1, "")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateVerifying, updated.State)
}

func TestRequestChanges(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	verifying, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	require.NoError(t, err)

	feedback := []models.CriticFeedbackItem{{
		Severity:    "error",
		Category:    "correctness",
		File:        "api/widget.go",
		Line:        42,
		Description: "off by one in pagination",
	}}
	updated, err := engine.RequestChanges(ctx, claimed.ID, verifying.Attempt, feedback)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateChangesRequested, updated.State)
	assert.Equal(t, 1, updated.RetryCount)
	assert.Equal(t, 1, updated.RejectionCount)
	assert.Nil(t, updated.Assignee)
	require.NotNil(t, updated.RetryAfter)
	require.Len(t, updated.CriticFeedback, 1)
	assert.Equal(t, "off by one in pagination", updated.CriticFeedback[0]["description"])
}

func TestRequestChanges_CeilingTerminatesInNeedsReview(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	ctx := context.Background()

	_, err := db.Ticket.UpdateOneID(claimed.ID).SetRetryCount(2).Save(ctx)
	require.NoError(t, err)

	verifying, err := engine.Complete(ctx, claimed.ID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	require.NoError(t, err)

	updated, err := engine.RequestChanges(ctx, claimed.ID, verifying.Attempt,
		[]models.CriticFeedbackItem{{Severity: "error", Category: "general", Description: "still wrong"}})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateNeedsReview, updated.State)
	assert.Len(t, updated.CriticFeedback, 1)
}

// moveToInReview drives a claimed ticket through worker completion and critic
// approval.
func moveToInReview(t *testing.T, engine *Engine, ticketID string) *ent.Ticket {
	t.Helper()
	ctx := context.Background()
	verifying, err := engine.Complete(ctx, ticketID, models.CompleteRequest{
		WorkerID: "w1",
		Success:  true,
	})
	require.NoError(t, err)
	updated, err := engine.ApproveToReview(ctx, ticketID, verifying.Attempt, "")
	require.NoError(t, err)
	require.Equal(t, ticket.StateInReview, updated.State)
	return updated
}

func TestDeployResult_SuccessCompletesTicket(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	inReview := moveToInReview(t, engine, claimed.ID)
	ctx := context.Background()

	updated, err := engine.DeployResult(ctx, claimed.ID, models.DeployResultRequest{
		Success: true,
		Attempt: inReview.Attempt,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateDone, updated.State)
}

func TestDeployResult_FailureAppliesRejection(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	inReview := moveToInReview(t, engine, claimed.ID)
	ctx := context.Background()

	updated, err := engine.DeployResult(ctx, claimed.ID, models.DeployResultRequest{
		Success: false,
		Reason:  "smoke test failed",
		Attempt: inReview.Attempt,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateChangesRequested, updated.State)
	require.Len(t, updated.CriticFeedback, 1)
	assert.Equal(t, "deploy", updated.CriticFeedback[0]["category"])
	assert.Equal(t, "smoke test failed", updated.CriticFeedback[0]["description"])
}

func TestDeployResult_StaleAttemptIsNoOp(t *testing.T) {
	engine, db := newTicketEngine(t)
	claimed := claimFor(t, engine, db, "w1")
	inReview := moveToInReview(t, engine, claimed.ID)
	ctx := context.Background()

	updated, err := engine.DeployResult(ctx, claimed.ID, models.DeployResultRequest{
		Success: true,
		Attempt: inReview.Attempt + 3,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInReview, updated.State)
}

func TestDeployResult_UnblocksSuccessors(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	pred := newTicket(t, db)
	succ := newTicket(t, db, withState(ticket.StateBlocked))
	other := newTicket(t, db, withState(ticket.StateBlocked))
	_, err := db.TicketDependency.Create().SetTicketID(succ.ID).SetDependsOn(pred.ID).Save(ctx)
	require.NoError(t, err)
	// other also waits on a second, still-live predecessor.
	live := newTicket(t, db, withState(ticket.StateDraft))
	_, err = db.TicketDependency.Create().SetTicketID(other.ID).SetDependsOn(pred.ID).Save(ctx)
	require.NoError(t, err)
	_, err = db.TicketDependency.Create().SetTicketID(other.ID).SetDependsOn(live.ID).Save(ctx)
	require.NoError(t, err)

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	require.Equal(t, pred.ID, claimed.ID)
	inReview := moveToInReview(t, engine, pred.ID)

	_, err = engine.DeployResult(ctx, pred.ID, models.DeployResultRequest{
		Success: true,
		Attempt: inReview.Attempt,
	})
	require.NoError(t, err)

	reloaded, err := db.Ticket.Get(ctx, succ.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, reloaded.State)

	stillBlocked, err := db.Ticket.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateBlocked, stillBlocked.State)
}

func TestDeployResult_CompletesSession(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	sess, err := db.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetOwnerID("user-1").
		SetProjectName("Webshop").
		SetDescription("shop").
		SetState(session.StateBuilding).
		Save(ctx)
	require.NoError(t, err)

	newTicket(t, db, withSession(sess.ID))
	newTicket(t, db, withSession(sess.ID), withState(ticket.StateCancelled))

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	inReview := moveToInReview(t, engine, claimed.ID)

	_, err = engine.DeployResult(ctx, claimed.ID, models.DeployResultRequest{
		Success: true,
		Attempt: inReview.Attempt,
	})
	require.NoError(t, err)

	reloaded, err := db.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateCompleted, reloaded.State)
}

func TestDeployResult_PublishesBuildProgress(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	sess, err := db.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetOwnerID("user-1").
		SetProjectName("Webshop").
		SetDescription("shop").
		SetState(session.StateBuilding).
		Save(ctx)
	require.NoError(t, err)

	newTicket(t, db, withSession(sess.ID))
	newTicket(t, db, withSession(sess.ID), withState(ticket.StateDraft))

	claimed, err := engine.Claim(ctx, models.ClaimRequest{WorkerID: "w1"})
	require.NoError(t, err)
	inReview := moveToInReview(t, engine, claimed.ID)

	_, err = engine.DeployResult(ctx, claimed.ID, models.DeployResultRequest{
		Success: true,
		Attempt: inReview.Attempt,
	})
	require.NoError(t, err)

	// One of two session tickets is terminal; the session room sees the
	// running count.
	evts, err := db.Event.Query().
		Where(
			entevent.SessionIDEQ(sess.ID),
			entevent.EventTypeEQ(events.EventBuildProgress),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, events.RoomSession(sess.ID), evts[0].Channel)
	assert.Equal(t, float64(1), evts[0].Payload["done"])
	assert.Equal(t, float64(2), evts[0].Payload["total"])
}

func TestCancel_PublishesBuildProgress(t *testing.T) {
	engine, db := newTicketEngine(t)
	ctx := context.Background()

	sess, err := db.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetOwnerID("user-1").
		SetProjectName("Webshop").
		SetDescription("shop").
		SetState(session.StateBuilding).
		Save(ctx)
	require.NoError(t, err)

	tk := newTicket(t, db, withSession(sess.ID))
	newTicket(t, db, withSession(sess.ID), withState(ticket.StateDraft))

	_, err = engine.Cancel(ctx, operator, tk.ID)
	require.NoError(t, err)

	evts, err := db.Event.Query().
		Where(
			entevent.SessionIDEQ(sess.ID),
			entevent.EventTypeEQ(events.EventBuildProgress),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, float64(1), evts[0].Payload["done"])
	assert.Equal(t, float64(2), evts[0].Payload["total"])
}
