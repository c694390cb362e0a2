package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the service layer. Handlers translate these
// to HTTP status codes in exactly one place (pkg/api/errors.go).
var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when an optimistic claim or lease check fails:
	// somebody else won the row.
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrIntegrity is returned for uniqueness, foreign-key, and DAG-cycle
	// violations.
	ErrIntegrity = errors.New("integrity violation")

	// ErrForbidden is returned when the principal is authenticated but not
	// allowed to act on the entity.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated is returned for missing or invalid credentials.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError reports input that failed preconditions.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StateConflictError reports an action that is not legal from the entity's
// current state. The current state is included in the HTTP response body.
type StateConflictError struct {
	Entity  string // "session" or "ticket"
	ID      string
	Current string // current state
	Action  string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %s: action %q not allowed in state %q", e.Entity, e.ID, e.Action, e.Current)
}

// NewStateConflict creates a StateConflictError.
func NewStateConflict(entity, id, current, action string) error {
	return &StateConflictError{Entity: entity, ID: id, Current: current, Action: action}
}

// UpstreamError reports a failure of an external collaborator (model
// adapter, critic, deploy). Transient failures were already retried inside
// the caller's budget before this surfaces.
type UpstreamError struct {
	Service   string
	Transient bool
	Err       error
}

func (e *UpstreamError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	return fmt.Sprintf("%s upstream failure (%s): %v", e.Service, kind, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NewUpstreamError creates an UpstreamError.
func NewUpstreamError(service string, transient bool, err error) error {
	return &UpstreamError{Service: service, Transient: transient, Err: err}
}

// IsTransientUpstream reports whether err is a transient upstream failure.
func IsTransientUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Transient
}
