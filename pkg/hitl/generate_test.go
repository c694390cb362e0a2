package hitl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/ent/ticketdependency"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
)

func TestParseTicketBatch(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		drafts, err := parseTicketBatch(`{"tickets": [{"title": "Scaffold API", "description": "d"}]}`)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, "Scaffold API", drafts[0].Title)
	})

	t.Run("markdown fence stripped", func(t *testing.T) {
		raw := "```json\n{\"tickets\": [{\"title\": \"A\"}, {\"title\": \"B\", \"depends_on\": [0]}]}\n```"
		drafts, err := parseTicketBatch(raw)
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		assert.Equal(t, []int{0}, drafts[1].DependsOn)
	})

	t.Run("empty batch is an error", func(t *testing.T) {
		_, err := parseTicketBatch(`{"tickets": []}`)
		assert.Error(t, err)
	})

	t.Run("non-json is an error", func(t *testing.T) {
		_, err := parseTicketBatch("Here are your tickets!")
		assert.Error(t, err)
	})
}

func TestValidateDrafts(t *testing.T) {
	t.Run("valid dag", func(t *testing.T) {
		drafts := []models.TicketDraft{
			{Title: "a"},
			{Title: "b", DependsOn: []int{0}},
			{Title: "c", DependsOn: []int{0, 1}},
		}
		assert.NoError(t, validateDrafts(drafts))
	})

	t.Run("missing title", func(t *testing.T) {
		err := validateDrafts([]models.TicketDraft{{Title: ""}})
		var ve *services.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("index out of bounds", func(t *testing.T) {
		err := validateDrafts([]models.TicketDraft{{Title: "a", DependsOn: []int{5}}})
		assert.ErrorIs(t, err, services.ErrIntegrity)
	})

	t.Run("self reference", func(t *testing.T) {
		err := validateDrafts([]models.TicketDraft{{Title: "a", DependsOn: []int{0}}})
		assert.ErrorIs(t, err, services.ErrIntegrity)
	})

	t.Run("cycle", func(t *testing.T) {
		drafts := []models.TicketDraft{
			{Title: "a", DependsOn: []int{1}},
			{Title: "b", DependsOn: []int{0}},
		}
		assert.ErrorIs(t, validateDrafts(drafts), services.ErrIntegrity)
	})
}

func TestStartBuild(t *testing.T) {
	batch := `{"tickets": [
		{"title": "Scaffold project", "description": "Set up the repo", "priority": "high"},
		{"title": "Catalog API", "description": "CRUD endpoints", "depends_on": [0]},
		{"title": "Checkout flow", "description": "Cart and payment", "depends_on": [0, 1]}
	]}`
	engine, _, db := newTestEngine(t, batch)
	sess := newTestSession(t, db, session.StateApproved)
	ctx := context.Background()

	_, err := db.Session.UpdateOneID(sess.ID).
		SetSpecCard("# Webshop Spec").
		Save(ctx)
	require.NoError(t, err)

	resp, err := engine.StartBuild(ctx, testPrincipal, sess.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TicketCount)
	assert.Equal(t, session.StateBuilding, resp.Session.State)
	require.NotNil(t, resp.Session.ProjectID)

	all, err := db.Ticket.Query().
		Where(ticket.SessionIDEQ(sess.ID)).
		Order(ticket.ByCreatedAt()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Leaves start ready, dependents start blocked.
	assert.Equal(t, ticket.StateReady, all[0].State)
	assert.Equal(t, ticket.StateBlocked, all[1].State)
	assert.Equal(t, ticket.StateBlocked, all[2].State)
	assert.Equal(t, ticket.PriorityHigh, all[0].Priority)

	for _, tk := range all {
		assert.Equal(t, sess.TenantID, tk.TenantID)
		assert.Equal(t, *resp.Session.ProjectID, tk.ProjectID)
		assert.NotEmpty(t, tk.TraceID)
	}

	edges, err := db.TicketDependency.Query().
		Where(ticketdependency.TicketIDIn(all[0].ID, all[1].ID, all[2].ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, edges)
}

func TestStartBuild_RequiresConfirmation(t *testing.T) {
	engine, _, db := newTestEngine(t)
	sess := newTestSession(t, db, session.StateApproved)

	_, err := engine.StartBuild(context.Background(), testPrincipal, sess.ID, false)
	var ve *services.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestStartBuild_RequiresSpecCard(t *testing.T) {
	engine, _, db := newTestEngine(t)
	sess := newTestSession(t, db, session.StateApproved)

	_, err := engine.StartBuild(context.Background(), testPrincipal, sess.ID, true)
	var stateErr *services.StateConflictError
	assert.ErrorAs(t, err, &stateErr)
}

func TestStartBuild_CyclicBatchCreatesNothing(t *testing.T) {
	cyclic := `{"tickets": [
		{"title": "a", "depends_on": [1]},
		{"title": "b", "depends_on": [0]}
	]}`
	engine, _, db := newTestEngine(t, cyclic)
	sess := newTestSession(t, db, session.StateApproved)
	ctx := context.Background()

	_, err := db.Session.UpdateOneID(sess.ID).
		SetSpecCard("# Spec").
		Save(ctx)
	require.NoError(t, err)

	_, err = engine.StartBuild(ctx, testPrincipal, sess.ID, true)
	assert.ErrorIs(t, err, services.ErrIntegrity)

	count, err := db.Ticket.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	reloaded, err := db.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateApproved, reloaded.State)
}
