package services

import (
	"context"
	"fmt"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/ent/ticketdependency"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/google/uuid"
)

// TicketService owns ticket CRUD and the dependency graph. Lifecycle
// transitions (claims, leases, retries) live in the ticket engine.
type TicketService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewTicketService creates a new TicketService
func NewTicketService(client *ent.Client, publisher *events.Publisher) *TicketService {
	return &TicketService{client: client, publisher: publisher}
}

// CreateTicket creates a ticket plus its dependency edges in one transaction.
// Tickets with unsatisfied predecessors start blocked; leaves start ready.
func (s *TicketService) CreateTicket(ctx context.Context, p auth.Principal, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Resolve predecessors first: they decide the initial state and must
	// belong to the same tenant.
	blocked := false
	var predecessors []*ent.Ticket
	if len(req.DependsOn) > 0 {
		predecessors, err = tx.Ticket.Query().
			Where(ticket.IDIn(req.DependsOn...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		if len(predecessors) != len(req.DependsOn) {
			return nil, NewValidationError("depends_on", "references unknown ticket")
		}
		for _, pred := range predecessors {
			if pred.TenantID != p.TenantID {
				return nil, ErrForbidden
			}
			if pred.State != ticket.StateDone && pred.State != ticket.StateCancelled {
				blocked = true
			}
		}
	}

	state := ticket.StateReady
	if blocked {
		state = ticket.StateBlocked
	}

	create := tx.Ticket.Create().
		SetID(uuid.New().String()).
		SetTenantID(p.TenantID).
		SetProjectID(req.ProjectID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetState(state).
		SetTraceID(uuid.New().String())

	if req.SessionID != "" {
		create = create.SetSessionID(req.SessionID)
	}
	if len(req.AcceptanceCriteria) > 0 {
		create = create.SetAcceptanceCriteria(req.AcceptanceCriteria)
	}
	if req.Epic != "" {
		create = create.SetEpic(req.Epic)
	}
	if req.Scope != "" {
		create = create.SetScope(ticket.Scope(req.Scope))
	}
	if len(req.FileHints) > 0 {
		create = create.SetFileHints(req.FileHints)
	}
	if req.Priority != "" {
		create = create.SetPriority(ticket.Priority(req.Priority))
	}
	if req.AssigneeKind != "" {
		create = create.SetAssigneeKind(ticket.AssigneeKind(req.AssigneeKind))
	}
	if req.RepoURL != "" {
		create = create.SetRepoURL(req.RepoURL)
	}
	if req.LeaseSeconds > 0 {
		create = create.SetLeaseSeconds(req.LeaseSeconds)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrIntegrity
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	for _, dep := range req.DependsOn {
		if _, err := tx.TicketDependency.Create().
			SetTicketID(created.ID).
			SetDependsOn(dep).
			Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrIntegrity
			}
			return nil, fmt.Errorf("failed to create dependency edge: %w", err)
		}
	}

	evtCreate, err := events.Append(tx, events.RoomTicket(created.ID), events.EventTicketActivity,
		events.TicketActivityPayload{
			BasePayload: events.NewBase(events.EventTicketActivity),
			TicketID:    created.ID,
			Activity:    "created",
			State:       string(created.State),
		}, "", created.ID)
	if err != nil {
		return nil, err
	}
	evt, err := evtCreate.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publisher.Notify(ctx, evt)
	return created, nil
}

// GetTicket retrieves a ticket by ID, enforcing tenant ownership.
func (s *TicketService) GetTicket(ctx context.Context, p auth.Principal, ticketID string) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Query().
		Where(ticket.IDEQ(ticketID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if err := requireTenant(p, t.TenantID); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTickets lists the tenant's tickets with filtering and pagination.
func (s *TicketService) ListTickets(ctx context.Context, p auth.Principal, filters models.TicketFilters) (*models.TicketListResponse, error) {
	query := s.client.Ticket.Query().
		Where(ticket.TenantIDEQ(p.TenantID))

	if filters.State != "" {
		query = query.Where(ticket.StateEQ(ticket.State(filters.State)))
	}
	if filters.ProjectID != "" {
		query = query.Where(ticket.ProjectIDEQ(filters.ProjectID))
	}
	if filters.SessionID != "" {
		query = query.Where(ticket.SessionIDEQ(filters.SessionID))
	}
	if filters.Epic != "" {
		query = query.Where(ticket.EpicEQ(filters.Epic))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tickets, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(ticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &models.TicketListResponse{
		Tickets:    tickets,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateTicket applies the non-nil fields of req. Descriptive fields only;
// state changes go through the ticket engine.
func (s *TicketService) UpdateTicket(ctx context.Context, p auth.Principal, ticketID string, req models.UpdateTicketRequest) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, p, ticketID)
	if err != nil {
		return nil, err
	}

	update := t.Update()
	if req.Title != nil {
		if *req.Title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		update = update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.AcceptanceCriteria != nil {
		update = update.SetAcceptanceCriteria(*req.AcceptanceCriteria)
	}
	if req.Epic != nil {
		update = update.SetEpic(*req.Epic)
	}
	if req.Scope != nil {
		update = update.SetScope(ticket.Scope(*req.Scope))
	}
	if req.FileHints != nil {
		update = update.SetFileHints(*req.FileHints)
	}
	if req.Priority != nil {
		update = update.SetPriority(ticket.Priority(*req.Priority))
	}
	if req.RepoURL != nil {
		update = update.SetRepoURL(*req.RepoURL)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrIntegrity
		}
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return updated, nil
}

// DeleteTicket removes a ticket and its dependency edges.
func (s *TicketService) DeleteTicket(ctx context.Context, p auth.Principal, ticketID string) error {
	if _, err := s.GetTicket(ctx, p, ticketID); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.TicketDependency.Delete().
		Where(ticketdependency.Or(
			ticketdependency.TicketIDEQ(ticketID),
			ticketdependency.DependsOnEQ(ticketID),
		)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete dependency edges: %w", err)
	}

	if err := tx.Ticket.DeleteOneID(ticketID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Dependencies returns the ids the given ticket depends on.
func (s *TicketService) Dependencies(ctx context.Context, ticketID string) ([]string, error) {
	edges, err := s.client.TicketDependency.Query().
		Where(ticketdependency.TicketIDEQ(ticketID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependencies: %w", err)
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.DependsOn)
	}
	return ids, nil
}
