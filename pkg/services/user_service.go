package services

import (
	"context"
	"fmt"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/user"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/google/uuid"
)

// UserService authenticates credentials against the users table and exposes
// user lookups for the auth endpoints.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// Authenticate verifies email/password and returns the matching user.
// Unknown email and bad password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*ent.User, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("credentials", "email and password are required")
	}
	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if !auth.VerifyPassword(password, u.PasswordSalt, u.PasswordHash) {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// CreateUser registers a user with a salted password hash. Used by the
// bootstrap path and tests.
func (s *UserService) CreateUser(ctx context.Context, email, password, tenantID string, role user.Role) (*ent.User, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if len(password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}
	salt, err := auth.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetPasswordSalt(salt).
		SetPasswordHash(auth.HashPassword(password, salt)).
		SetTenantID(tenantID).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// UserInfo converts a user record to its public view.
func UserInfo(u *ent.User) models.UserInfo {
	return models.UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		TenantID: u.TenantID,
		Role:     string(u.Role),
	}
}
