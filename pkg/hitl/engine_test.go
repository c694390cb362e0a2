package hitl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/llm"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/buildloop/foundry/test/util"
)

var testPrincipal = auth.Principal{UserID: "user-1", TenantID: "tenant-1", Role: auth.RoleUser}

func newTestEngine(t *testing.T, responses ...string) (*Engine, *llm.StubAdapter, *database.Client) {
	t.Helper()
	db := util.SetupSQLite(t)
	publisher := events.NewPublisher(db.DB(), false, nil)
	approvals := services.NewApprovalService(db.Client, publisher)
	adapter := llm.NewStubAdapter(responses...)
	engine := NewEngine(db.Client, publisher, approvals, adapter, config.LLMConfig{
		Provider:   "stub",
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})
	return engine, adapter, db
}

func newTestSession(t *testing.T, db *database.Client, state session.State) *ent.Session {
	t.Helper()
	sess, err := db.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID(testPrincipal.TenantID).
		SetOwnerID(testPrincipal.UserID).
		SetProjectName("Webshop").
		SetDescription("An online shop with catalog and checkout").
		SetState(state).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func TestRespond_ParsedEnvelope(t *testing.T) {
	envelope := `{"message": "What database do you prefer?",
		"gathered": {"project_type": {"project_type": "web_app"}},
		"ready_for_spec": false}`
	engine, _, db := newTestEngine(t, envelope)
	sess := newTestSession(t, db, session.StateClarifying)
	ctx := context.Background()

	resp, err := engine.Respond(ctx, testPrincipal, sess.ID, "It should be a web shop")
	require.NoError(t, err)

	assert.Equal(t, "What database do you prefer?", resp.Message.Content)
	assert.Equal(t, string(session.StateClarifying), resp.State)
	assert.Equal(t, 20, resp.Progress)
	assert.False(t, resp.ReadyForSpec)

	reloaded, err := db.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, reloaded.Progress)
	assert.Equal(t, "web_app",
		reloaded.Clarification["project_type"].(map[string]any)["project_type"])

	msgs, err := db.Message.Query().
		Where(message.SessionIDEQ(sess.ID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.MessageTypeInitial, msgs[0].MessageType)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
}

func TestRespond_GatheredAccumulatesAcrossTurns(t *testing.T) {
	turn1 := `{"message": "ok1", "gathered": {"project_type": {"project_type": "web_app"}}}`
	turn2 := `{"message": "ok2", "gathered": {"tech_stack": {"frontend": "react", "backend": "go", "database": "postgres"}}}`
	engine, _, db := newTestEngine(t, turn1, turn2)
	sess := newTestSession(t, db, session.StateClarifying)
	ctx := context.Background()

	_, err := engine.Respond(ctx, testPrincipal, sess.ID, "first")
	require.NoError(t, err)
	resp, err := engine.Respond(ctx, testPrincipal, sess.ID, "second")
	require.NoError(t, err)

	// 20 (project_type) + 25 (full tech stack)
	assert.Equal(t, 45, resp.Progress)

	reloaded, err := db.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Contains(t, reloaded.Clarification, "project_type")
	assert.Contains(t, reloaded.Clarification, "tech_stack")
}

func TestRespond_ReadyForSpecRequiresThreshold(t *testing.T) {
	// Model claims readiness but progress is far below the threshold.
	premature := `{"message": "ready!", "gathered": {"project_type": {"project_type": "cli"}}, "ready_for_spec": true}`
	engine, _, db := newTestEngine(t, premature)
	sess := newTestSession(t, db, session.StateClarifying)

	resp, err := engine.Respond(context.Background(), testPrincipal, sess.ID, "go ahead")
	require.NoError(t, err)
	assert.False(t, resp.ReadyForSpec)
	assert.Equal(t, string(session.StateClarifying), resp.State)
}

func TestRespond_ReadyForSpecAdvancesState(t *testing.T) {
	full := `{"message": "We have everything we need.",
		"gathered": {
			"project_type": {"project_type": "web_app"},
			"tech_stack": {"frontend": "react", "backend": "go", "database": "postgres"},
			"scale": {"expected_users": "10k", "performance": "p99 < 500ms"},
			"features": {"core_features": ["catalog", "cart"], "user_roles": ["admin"]},
			"constraints": {"timeline": "3 months", "integrations": ["stripe"]}
		},
		"ready_for_spec": true}`
	engine, _, db := newTestEngine(t, full)
	sess := newTestSession(t, db, session.StateClarifying)

	resp, err := engine.Respond(context.Background(), testPrincipal, sess.ID, "that is all")
	require.NoError(t, err)
	assert.True(t, resp.ReadyForSpec)
	assert.Equal(t, string(session.StateReadyForDocs), resp.State)
	assert.Equal(t, 100, resp.Progress)
}

func TestRespond_UnparseableFallsBackToRawText(t *testing.T) {
	engine, _, db := newTestEngine(t, "Sorry, plain prose answer with no JSON.")
	sess := newTestSession(t, db, session.StateClarifying)

	resp, err := engine.Respond(context.Background(), testPrincipal, sess.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, plain prose answer with no JSON.", resp.Message.Content)
	assert.Equal(t, 0, resp.Progress)
}

func TestRespond_ModelFailureLeavesNoTurns(t *testing.T) {
	engine, adapter, db := newTestEngine(t)
	adapter.Fail(llm.NewPermanentError(errors.New("model exploded")))
	sess := newTestSession(t, db, session.StateClarifying)
	ctx := context.Background()

	_, err := engine.Respond(ctx, testPrincipal, sess.ID, "hello")
	require.Error(t, err)
	var ue *services.UpstreamError
	assert.ErrorAs(t, err, &ue)

	count, err := db.Message.Query().Where(message.SessionIDEQ(sess.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRespond_IllegalStateIsConflict(t *testing.T) {
	engine, _, db := newTestEngine(t, "unused")
	sess := newTestSession(t, db, session.StateReviewing)

	_, err := engine.Respond(context.Background(), testPrincipal, sess.ID, "hello")
	var stateErr *services.StateConflictError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, string(session.StateReviewing), stateErr.Current)
}

func TestRespond_CrossTenantIsForbidden(t *testing.T) {
	engine, _, db := newTestEngine(t, "unused")
	sess := newTestSession(t, db, session.StateClarifying)

	other := auth.Principal{UserID: "intruder", TenantID: "tenant-2", Role: auth.RoleUser}
	_, err := engine.Respond(context.Background(), other, sess.ID, "hello")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestStartClarification(t *testing.T) {
	engine, _, db := newTestEngine(t)
	sess := newTestSession(t, db, session.StateInput)

	updated, err := engine.StartClarification(context.Background(), testPrincipal, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateClarifying, updated.State)
}

func TestGenerateSpec(t *testing.T) {
	engine, _, db := newTestEngine(t, "# Webshop Specification\n\nFull spec text.")
	sess := newTestSession(t, db, session.StateReadyForDocs)
	ctx := context.Background()

	updated, err := engine.GenerateSpec(ctx, testPrincipal, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateReviewing, updated.State)
	require.NotNil(t, updated.SpecCard)
	assert.Contains(t, *updated.SpecCard, "Webshop Specification")

	// A pending spec approval is opened for the reviewer.
	pending, err := db.Approval.Query().
		Where(
			approval.SessionIDEQ(sess.ID),
			approval.StatusEQ(approval.StatusPending),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "spec_approval", pending.ApprovalType)

	specMsgs, err := db.Message.Query().
		Where(
			message.SessionIDEQ(sess.ID),
			message.MessageTypeEQ(message.MessageTypeSpec),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, specMsgs)
}

func TestGenerateSpec_FailureRollsBackToClarifying(t *testing.T) {
	engine, adapter, db := newTestEngine(t)
	adapter.Fail(llm.NewPermanentError(errors.New("model down")))
	sess := newTestSession(t, db, session.StateReadyForDocs)
	ctx := context.Background()

	_, err := engine.GenerateSpec(ctx, testPrincipal, sess.ID)
	require.Error(t, err)

	reloaded, err := db.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateClarifying, reloaded.State)
	assert.Nil(t, reloaded.SpecCard)
}

func TestApprove_ResolvesPendingApproval(t *testing.T) {
	engine, _, db := newTestEngine(t, "# Spec")
	sess := newTestSession(t, db, session.StateReadyForDocs)
	ctx := context.Background()

	_, err := engine.GenerateSpec(ctx, testPrincipal, sess.ID)
	require.NoError(t, err)

	updated, err := engine.Approve(ctx, testPrincipal, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateApproved, updated.State)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, testPrincipal.UserID, *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)

	resolved, err := db.Approval.Query().
		Where(approval.SessionIDEQ(sess.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, resolved.Status)
}

func TestRequestRevision(t *testing.T) {
	engine, _, db := newTestEngine(t, "# Spec")
	sess := newTestSession(t, db, session.StateReadyForDocs)
	ctx := context.Background()

	_, err := engine.GenerateSpec(ctx, testPrincipal, sess.ID)
	require.NoError(t, err)

	updated, err := engine.RequestRevision(ctx, testPrincipal, sess.ID, "add payment details")
	require.NoError(t, err)
	assert.Equal(t, session.StateClarifying, updated.State)

	rejected, err := db.Approval.Query().
		Where(approval.SessionIDEQ(sess.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejected, rejected.Status)

	feedback, err := db.Message.Query().
		Where(message.SessionIDEQ(sess.ID), message.RoleEQ(message.RoleUser)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "add payment details", feedback.Content)
}

func TestCancel(t *testing.T) {
	engine, _, db := newTestEngine(t)
	sess := newTestSession(t, db, session.StateClarifying)
	ctx := context.Background()

	updated, err := engine.Cancel(ctx, testPrincipal, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateCancelled, updated.State)

	// Terminal sessions cannot be cancelled again.
	_, err = engine.Cancel(ctx, testPrincipal, sess.ID)
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}
