// Package hitl implements the human-in-the-loop session engine: the state
// machine that drives a project from free-form description through
// clarification dialogue, spec generation, review, and ticket generation.
package hitl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/llm"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/google/uuid"
)

// Engine drives session state transitions. All state-changing operations
// serialize per session: concurrent conflicting actions produce one success
// and one state conflict.
type Engine struct {
	client    *ent.Client
	publisher *events.Publisher
	approvals *services.ApprovalService
	adapter   llm.Adapter
	cfg       config.LLMConfig
	locks     *sessionLocks
	logger    *slog.Logger
}

// NewEngine creates a session engine.
func NewEngine(client *ent.Client, publisher *events.Publisher, approvals *services.ApprovalService, adapter llm.Adapter, cfg config.LLMConfig) *Engine {
	return &Engine{
		client:    client,
		publisher: publisher,
		approvals: approvals,
		adapter:   adapter,
		cfg:       cfg,
		locks:     newSessionLocks(),
		logger:    slog.With("component", "hitl"),
	}
}

// begin acquires the session lock, loads the session, and checks tenancy and
// action legality. The returned release func must be called when nil error.
func (e *Engine) begin(ctx context.Context, p auth.Principal, sessionID, action string) (*ent.Session, func(), error) {
	release := e.locks.TryAcquire(sessionID)
	if release == nil {
		sess, err := e.load(ctx, p, sessionID)
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, services.NewStateConflict("session", sessionID, string(sess.State), action)
	}

	sess, err := e.load(ctx, p, sessionID)
	if err != nil {
		release()
		return nil, nil, err
	}
	if !actionAllowed(action, sess.State) {
		release()
		return nil, nil, services.NewStateConflict("session", sessionID, string(sess.State), action)
	}
	return sess, release, nil
}

func (e *Engine) load(ctx context.Context, p auth.Principal, sessionID string) (*ent.Session, error) {
	sess, err := e.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.TenantID != p.TenantID && !p.IsOperator() {
		return nil, services.ErrForbidden
	}
	return sess, nil
}

// StartClarification explicitly moves a session from input to clarifying
// without a dialogue turn.
func (e *Engine) StartClarification(ctx context.Context, p auth.Principal, sessionID string) (*ent.Session, error) {
	sess, release, err := e.begin(ctx, p, sessionID, ActionStartClarification)
	if err != nil {
		return nil, err
	}
	defer release()

	return e.transition(ctx, sess, session.StateClarifying, nil)
}

// Respond processes one user dialogue turn: invokes the model with the full
// history, merges the gathered context, and persists both turns plus the
// updated session in a single transaction.
func (e *Engine) Respond(ctx context.Context, p auth.Principal, sessionID, userMessage string) (*models.RespondResponse, error) {
	if userMessage == "" {
		return nil, services.NewValidationError("message", "required")
	}

	sess, release, err := e.begin(ctx, p, sessionID, ActionRespond)
	if err != nil {
		return nil, err
	}
	defer release()

	history, err := e.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	system := dialogueSystemPrompt
	if sess.ProjectType == session.ProjectTypeBuildFeature && len(sess.RepoAnalysis) > 0 {
		system += repoContextBlock(sess.RepoAnalysis)
	}

	turns := historyMessages(history)
	if len(turns) == 0 {
		// Seed the dialogue with the project description.
		turns = append(turns, llm.Message{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Project: %s\n\n%s", sess.ProjectName, sess.Description),
		})
	}
	turns = append(turns, llm.Message{Role: llm.RoleUser, Content: userMessage})

	raw, err := llm.CompleteWithRetry(ctx, e.adapter, llm.Request{
		System:   system,
		Messages: turns,
	}, e.cfg.MaxRetries, e.cfg.Timeout)
	if err != nil {
		return nil, services.NewUpstreamError("model", llm.IsTransient(err), err)
	}

	env, parsed := llm.ParseEnvelope(raw)
	assistantContent := raw
	clarification := sess.Clarification
	progress := sess.Progress
	if parsed {
		assistantContent = env.Message
		clarification = mergeGathered(sess.Clarification, env.Gathered)
		progress = computeProgress(clarification)
	}

	ready := parsed && env.ReadyForSpec && progress >= readyThreshold
	newState := session.StateClarifying
	if ready {
		newState = session.StateReadyForDocs
	}

	userType := message.MessageTypeAnswer
	if len(history) == 0 {
		userType = message.MessageTypeInitial
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(message.RoleUser).
		SetMessageType(userType).
		SetContent(userMessage).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist user turn: %w", err)
	}

	asstMsg, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(message.RoleAssistant).
		SetMessageType(message.MessageTypeQuestion).
		SetContent(assistantContent).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist assistant turn: %w", err)
	}

	update := tx.Session.UpdateOneID(sessionID).
		SetState(newState).
		SetProgress(progress)
	if clarification != nil {
		update = update.SetClarification(clarification)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	msgEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSessionMessage,
		events.SessionMessagePayload{
			BasePayload: events.NewBase(events.EventSessionMessage),
			SessionID:   sessionID,
			MessageID:   asstMsg.ID,
			Role:        string(asstMsg.Role),
			MessageType: string(asstMsg.MessageType),
			Content:     asstMsg.Content,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	updEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSessionUpdate,
		events.SessionUpdatePayload{
			BasePayload: events.NewBase(events.EventSessionUpdate),
			SessionID:   sessionID,
			State:       string(newState),
			Progress:    progress,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	e.publisher.Notify(ctx, msgEvt, updEvt)
	e.logger.Info("Dialogue turn processed",
		"session_id", sessionID, "state", newState, "progress", progress)

	return &models.RespondResponse{
		Message:      asstMsg,
		State:        string(newState),
		Progress:     progress,
		ReadyForSpec: ready,
	}, nil
}

// GenerateSpec produces the spec card from the dialogue. The session passes
// through generating_spec; failure returns it to clarifying.
func (e *Engine) GenerateSpec(ctx context.Context, p auth.Principal, sessionID string) (*ent.Session, error) {
	sess, release, err := e.begin(ctx, p, sessionID, ActionGenerateSpec)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := e.transition(ctx, sess, session.StateGeneratingSpec, nil); err != nil {
		return nil, err
	}

	history, err := e.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	turns := historyMessages(history)
	turns = append(turns, llm.Message{
		Role:    llm.RoleUser,
		Content: "Generate the full specification now.",
	})

	specCard, err := llm.CompleteWithRetry(ctx, e.adapter, llm.Request{
		System:    specSystemPrompt,
		Messages:  turns,
		MaxTokens: 8192,
	}, e.cfg.MaxRetries, e.cfg.Timeout)
	if err != nil {
		// The session does not advance on failure.
		if _, terr := e.transition(ctx, sess, session.StateClarifying, nil); terr != nil {
			e.logger.Error("Failed to roll session back to clarifying",
				"session_id", sessionID, "error", terr)
		}
		return nil, services.NewUpstreamError("model", llm.IsTransient(err), err)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	updated, err := tx.Session.UpdateOneID(sessionID).
		SetState(session.StateReviewing).
		SetSpecCard(specCard).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store spec card: %w", err)
	}

	if _, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(message.RoleAssistant).
		SetMessageType(message.MessageTypeSpec).
		SetContent(specCard).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist spec message: %w", err)
	}

	specEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSpecGenerated,
		events.SpecGeneratedPayload{
			BasePayload: events.NewBase(events.EventSpecGenerated),
			SessionID:   sessionID,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	updEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSessionUpdate,
		events.SessionUpdatePayload{
			BasePayload: events.NewBase(events.EventSessionUpdate),
			SessionID:   sessionID,
			State:       string(session.StateReviewing),
			Progress:    updated.Progress,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	e.publisher.Notify(ctx, specEvt, updEvt)

	if _, err := e.approvals.RequestApproval(ctx, sessionID, "spec_approval", ActionApprove, nil); err != nil {
		e.logger.Error("Failed to create spec approval", "session_id", sessionID, "error", err)
	}

	e.logger.Info("Spec generated", "session_id", sessionID)
	return updated, nil
}

// Approve records the approver and advances the session to approved.
func (e *Engine) Approve(ctx context.Context, p auth.Principal, sessionID string) (*ent.Session, error) {
	sess, release, err := e.begin(ctx, p, sessionID, ActionApprove)
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now()
	updated, err := e.transition(ctx, sess, session.StateApproved, func(u *ent.SessionUpdateOne) {
		u.SetApprovedBy(p.UserID).SetApprovedAt(now)
	})
	if err != nil {
		return nil, err
	}

	e.resolvePendingApproval(ctx, sessionID, "spec_approval", p.UserID, true)
	return updated, nil
}

// RequestRevision sends reviewer feedback back into the dialogue.
func (e *Engine) RequestRevision(ctx context.Context, p auth.Principal, sessionID, feedback string) (*ent.Session, error) {
	if feedback == "" {
		return nil, services.NewValidationError("feedback", "required")
	}

	_, release, err := e.begin(ctx, p, sessionID, ActionRequestRevision)
	if err != nil {
		return nil, err
	}
	defer release()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	updated, err := tx.Session.UpdateOneID(sessionID).
		SetState(session.StateClarifying).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	fbMsg, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(message.RoleUser).
		SetMessageType(message.MessageTypeAnswer).
		SetContent(feedback).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist feedback: %w", err)
	}

	msgEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSessionMessage,
		events.SessionMessagePayload{
			BasePayload: events.NewBase(events.EventSessionMessage),
			SessionID:   sessionID,
			MessageID:   fbMsg.ID,
			Role:        string(fbMsg.Role),
			MessageType: string(fbMsg.MessageType),
			Content:     fbMsg.Content,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	updEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSessionUpdate,
		events.SessionUpdatePayload{
			BasePayload: events.NewBase(events.EventSessionUpdate),
			SessionID:   sessionID,
			State:       string(session.StateClarifying),
			Progress:    updated.Progress,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	e.publisher.Notify(ctx, msgEvt, updEvt)

	e.resolvePendingApproval(ctx, sessionID, "spec_approval", p.UserID, false)
	return updated, nil
}

// Cancel moves any non-terminal session to cancelled.
func (e *Engine) Cancel(ctx context.Context, p auth.Principal, sessionID string) (*ent.Session, error) {
	sess, release, err := e.begin(ctx, p, sessionID, ActionCancel)
	if err != nil {
		return nil, err
	}
	defer release()

	return e.transition(ctx, sess, session.StateCancelled, nil)
}

// transition writes a session state change plus its session:update event in
// one transaction. mutate may add further field updates.
func (e *Engine) transition(ctx context.Context, sess *ent.Session, to session.State, mutate func(*ent.SessionUpdateOne)) (*ent.Session, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.Session.UpdateOneID(sess.ID).SetState(to)
	if mutate != nil {
		mutate(update)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session state: %w", err)
	}

	evt, err := appendAndSave(ctx, tx, events.RoomSession(sess.ID), events.EventSessionUpdate,
		events.SessionUpdatePayload{
			BasePayload: events.NewBase(events.EventSessionUpdate),
			SessionID:   sess.ID,
			State:       string(to),
			Progress:    updated.Progress,
		}, sess.ID, "")
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	e.publisher.Notify(ctx, evt)
	e.logger.Info("Session state changed", "session_id", sess.ID, "from", sess.State, "to", to)
	return updated, nil
}

// resolvePendingApproval resolves the most recent pending approval of the
// given type, if any. Failure is logged, not surfaced: the session state
// change already committed.
func (e *Engine) resolvePendingApproval(ctx context.Context, sessionID, approvalType, resolvedBy string, approved bool) {
	ap, err := e.client.Approval.Query().
		Where(
			approval.SessionIDEQ(sessionID),
			approval.ApprovalTypeEQ(approvalType),
			approval.StatusEQ(approval.StatusPending),
		).
		Order(ent.Desc(approval.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			e.logger.Error("Failed to find pending approval", "session_id", sessionID, "error", err)
		}
		return
	}
	if _, err := e.approvals.ResolveApproval(ctx, ap.ID, resolvedBy, approved); err != nil {
		e.logger.Error("Failed to resolve approval", "approval_id", ap.ID, "error", err)
	}
}

// appendAndSave stages an event row on the transaction and saves it.
func appendAndSave(ctx context.Context, tx *ent.Tx, room, eventType string, payload any, sessionID, ticketID string) (*ent.Event, error) {
	create, err := events.Append(tx, room, eventType, payload, sessionID, ticketID)
	if err != nil {
		return nil, err
	}
	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}
	return evt, nil
}
