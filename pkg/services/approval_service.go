package services

import (
	"context"
	"fmt"
	"time"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/google/uuid"
)

// ApprovalService records human gating decisions on session transitions.
// Requests and resolutions both land in the event log for fan-out.
type ApprovalService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(client *ent.Client, publisher *events.Publisher) *ApprovalService {
	return &ApprovalService{client: client, publisher: publisher}
}

// RequestApproval creates a pending approval record for a session action and
// emits approval:requested.
func (s *ApprovalService) RequestApproval(ctx context.Context, sessionID, approvalType, action string, context_ map[string]interface{}) (*ent.Approval, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	create := tx.Approval.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetApprovalType(approvalType).
		SetAction(action).
		SetStatus(approval.StatusPending)
	if context_ != nil {
		create = create.SetContext(context_)
	}
	ap, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrIntegrity
		}
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}

	evtCreate, err := events.Append(tx, events.RoomSession(sessionID), events.EventApprovalRequested,
		events.ApprovalPayload{
			BasePayload:  events.NewBase(events.EventApprovalRequested),
			SessionID:    sessionID,
			ApprovalID:   ap.ID,
			ApprovalType: approvalType,
			Action:       action,
			Status:       string(ap.Status),
		}, sessionID, "")
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
	return ap, nil
}

// ResolveApproval marks a pending approval approved or rejected and emits
// approval:resolved. Resolving a non-pending approval is a state conflict.
func (s *ApprovalService) ResolveApproval(ctx context.Context, approvalID, resolvedBy string, approved bool) (*ent.Approval, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ap, err := tx.Approval.Query().
		Where(approval.IDEQ(approvalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	if ap.Status != approval.StatusPending {
		return nil, NewStateConflict("approval", ap.ID, string(ap.Status), "resolve")
	}

	status := approval.StatusRejected
	if approved {
		status = approval.StatusApproved
	}
	ap, err = ap.Update().
		SetStatus(status).
		SetResolvedBy(resolvedBy).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approval: %w", err)
	}

	evtCreate, err := events.Append(tx, events.RoomSession(ap.SessionID), events.EventApprovalResolved,
		events.ApprovalPayload{
			BasePayload:  events.NewBase(events.EventApprovalResolved),
			SessionID:    ap.SessionID,
			ApprovalID:   ap.ID,
			ApprovalType: ap.ApprovalType,
			Action:       ap.Action,
			Status:       string(ap.Status),
			ResolvedBy:   resolvedBy,
		}, ap.SessionID, "")
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
	return ap, nil
}
