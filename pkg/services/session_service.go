package services

import (
	"context"
	"fmt"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/google/uuid"
)

// SessionService manages HITL session records. State transitions live in the
// session engine; this service owns creation, tenant-scoped reads, and delete.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a session in the input state, owned by the principal.
func (s *SessionService) CreateSession(ctx context.Context, p auth.Principal, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.ProjectName == "" {
		return nil, NewValidationError("project_name", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	projectType := session.ProjectTypeNewApplication
	switch req.ProjectType {
	case "", string(session.ProjectTypeNewApplication):
	case string(session.ProjectTypeBuildFeature):
		projectType = session.ProjectTypeBuildFeature
	case string(session.ProjectTypeMcpServer):
		projectType = session.ProjectTypeMcpServer
	default:
		return nil, NewValidationError("project_type", "must be one of new_application, build_feature, mcp_server")
	}

	create := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID(p.TenantID).
		SetOwnerID(p.UserID).
		SetProjectName(req.ProjectName).
		SetDescription(req.Description).
		SetProjectType(projectType).
		SetState(session.StateInput)
	if req.RepoURL != "" {
		// The analyzer collaborator fills the rest of the snapshot later.
		create = create.SetRepoAnalysis(map[string]interface{}{"repo_url": req.RepoURL})
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrIntegrity
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetSession retrieves a session by ID, enforcing tenant ownership.
func (s *SessionService) GetSession(ctx context.Context, p auth.Principal, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if err := requireTenant(p, sess.TenantID); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetSessionWithMessages retrieves a session plus its full ordered history.
func (s *SessionService) GetSessionWithMessages(ctx context.Context, p auth.Principal, sessionID string) (*models.SessionResponse, error) {
	sess, err := s.GetSession(ctx, p, sessionID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return &models.SessionResponse{Session: sess, Messages: msgs}, nil
}

// ListSessions lists the principal's tenant's sessions with filtering and
// pagination.
func (s *SessionService) ListSessions(ctx context.Context, p auth.Principal, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.Session.Query().
		Where(session.TenantIDEQ(p.TenantID))

	if filters.State != "" {
		query = query.Where(session.StateEQ(session.State(filters.State)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// DeleteSession cancels and deletes a session. Only the owner (or an
// operator) may delete; messages and approvals cascade.
func (s *SessionService) DeleteSession(ctx context.Context, p auth.Principal, sessionID string) error {
	sess, err := s.GetSession(ctx, p, sessionID)
	if err != nil {
		return err
	}
	if sess.OwnerID != p.UserID && !p.IsOperator() {
		return ErrForbidden
	}
	if err := s.client.Session.DeleteOneID(sessionID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// requireTenant refuses cross-tenant access unless the principal is a
// platform operator.
func requireTenant(p auth.Principal, tenantID string) error {
	if p.TenantID == tenantID || p.IsOperator() {
		return nil
	}
	return ErrForbidden
}
