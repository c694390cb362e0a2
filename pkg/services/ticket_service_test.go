package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/models"
)

func TestCreateTicket(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)
	ctx := context.Background()

	tk, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID:          "proj-1",
		Title:              "Implement checkout",
		Description:        "Cart to payment",
		AcceptanceCriteria: []string{"order persists", "payment succeeds"},
		Epic:               "payments",
		Priority:           "high",
		FileHints:          []string{"api/checkout.go"},
	})
	require.NoError(t, err)

	assert.Equal(t, ticket.StateReady, tk.State)
	assert.Equal(t, ticket.PriorityHigh, tk.Priority)
	assert.Equal(t, "tenant-1", tk.TenantID)
	assert.NotEmpty(t, tk.TraceID)
	assert.Equal(t, []string{"order persists", "payment succeeds"}, tk.AcceptanceCriteria)

	// Creation lands in the activity log.
	activity, err := NewEventService(db.Client).TicketActivity(ctx, tk.ID, 0)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, "created", activity[0].Payload["activity"])
}

func TestCreateTicket_DependenciesDecideInitialState(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)
	ctx := context.Background()

	base, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "Schema", Description: "d",
	})
	require.NoError(t, err)

	dependent, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "API", Description: "d",
		DependsOn: []string{base.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateBlocked, dependent.State)

	deps, err := svc.Dependencies(ctx, dependent.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{base.ID}, deps)

	// A predecessor that already finished does not block.
	_, err = db.Client.Ticket.UpdateOneID(base.ID).
		SetState(ticket.StateDone).
		Save(ctx)
	require.NoError(t, err)

	leaf, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "UI", Description: "d",
		DependsOn: []string{base.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, leaf.State)
}

func TestCreateTicket_UnknownDependency(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)

	_, err := svc.CreateTicket(context.Background(), alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "API", Description: "d",
		DependsOn: []string{"missing"},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "depends_on", vErr.Field)
}

func TestCreateTicket_CrossTenantDependency(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)
	ctx := context.Background()

	other, err := svc.CreateTicket(ctx, bob, models.CreateTicketRequest{
		ProjectID: "proj-2", Title: "Theirs", Description: "d",
	})
	require.NoError(t, err)

	_, err = svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "Mine", Description: "d",
		DependsOn: []string{other.ID},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListTickets_Filters(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "A", Description: "d", Epic: "payments",
	})
	require.NoError(t, err)
	_, err = svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-2", Title: "B", Description: "d",
	})
	require.NoError(t, err)
	_, err = svc.CreateTicket(ctx, bob, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "C", Description: "d",
	})
	require.NoError(t, err)

	result, err := svc.ListTickets(ctx, alice, models.TicketFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)

	result, err = svc.ListTickets(ctx, alice, models.TicketFilters{ProjectID: "proj-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)

	result, err = svc.ListTickets(ctx, alice, models.TicketFilters{Epic: "payments"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)

	result, err = svc.ListTickets(ctx, alice, models.TicketFilters{State: "done"})
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
}

func TestUpdateTicket(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)
	ctx := context.Background()

	tk, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "Old title", Description: "d",
	})
	require.NoError(t, err)

	newTitle := "New title"
	newPriority := "low"
	updated, err := svc.UpdateTicket(ctx, alice, tk.ID, models.UpdateTicketRequest{
		Title:    &newTitle,
		Priority: &newPriority,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, ticket.PriorityLow, updated.Priority)
	// Unset fields stay put.
	assert.Equal(t, "d", updated.Description)

	empty := ""
	_, err = svc.UpdateTicket(ctx, alice, tk.ID, models.UpdateTicketRequest{Title: &empty})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.UpdateTicket(ctx, bob, tk.ID, models.UpdateTicketRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteTicket_RemovesDependencyEdges(t *testing.T) {
	db, pub := newServiceDB(t)
	svc := NewTicketService(db.Client, pub)
	ctx := context.Background()

	base, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "Schema", Description: "d",
	})
	require.NoError(t, err)
	dependent, err := svc.CreateTicket(ctx, alice, models.CreateTicketRequest{
		ProjectID: "proj-1", Title: "API", Description: "d",
		DependsOn: []string{base.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTicket(ctx, alice, base.ID))

	_, err = svc.GetTicket(ctx, alice, base.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	deps, err := svc.Dependencies(ctx, dependent.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}
