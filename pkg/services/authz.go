package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/events"
)

// RoomAuthz enforces tenant ownership on WebSocket room subscriptions.
// Implements events.RoomAuthorizer.
type RoomAuthz struct {
	client *ent.Client
}

// NewRoomAuthz creates a RoomAuthz
func NewRoomAuthz(client *ent.Client) *RoomAuthz {
	return &RoomAuthz{client: client}
}

// CanSubscribe allows a subscription when the principal's tenant owns the
// room's session or ticket, or the principal is a platform operator.
func (a *RoomAuthz) CanSubscribe(ctx context.Context, p auth.Principal, room string) error {
	if p.IsOperator() {
		return nil
	}

	kind, id, ok := strings.Cut(room, ":")
	if !ok || id == "" {
		return NewValidationError("room", "must be session:<id> or ticket:<id>")
	}

	switch kind {
	case "session":
		tenantID, err := a.client.Session.Query().
			Where(session.IDEQ(id)).
			Select(session.FieldTenantID).
			String(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check session tenancy: %w", err)
		}
		if tenantID != p.TenantID {
			return errors.Join(ErrForbidden, events.ErrSubscriptionForbidden)
		}
		return nil

	case "ticket":
		tenantID, err := a.client.Ticket.Query().
			Where(ticket.IDEQ(id)).
			Select(ticket.FieldTenantID).
			String(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check ticket tenancy: %w", err)
		}
		if tenantID != p.TenantID {
			return errors.Join(ErrForbidden, events.ErrSubscriptionForbidden)
		}
		return nil

	default:
		return NewValidationError("room", "unknown room kind")
	}
}
