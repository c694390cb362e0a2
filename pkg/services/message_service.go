package services

import (
	"context"
	"fmt"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/message"
)

// MessageService provides read access to the dialogue history. Messages are
// written by the session engine inside its transition transactions and are
// never mutated afterwards.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// ListMessages returns the full ordered history for a session. Tenant
// ownership is checked by the caller against the session record.
func (s *MessageService) ListMessages(ctx context.Context, sessionID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}
