package hitl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/ent/ticket"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/llm"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/google/uuid"
)

// ticketBatch is the JSON document the generation model returns.
type ticketBatch struct {
	Tickets []models.TicketDraft `json:"tickets"`
}

// StartBuild generates tickets from the approved spec and begins the build.
// The whole batch inserts atomically: a cycle in the proposed dependency
// edges aborts the insertion and the session stays approved.
func (e *Engine) StartBuild(ctx context.Context, p auth.Principal, sessionID string, confirmed bool) (*models.StartBuildResponse, error) {
	if !confirmed {
		return nil, services.NewValidationError("confirmed", "must be true to start the build")
	}

	sess, release, err := e.begin(ctx, p, sessionID, ActionStartBuild)
	if err != nil {
		return nil, err
	}
	defer release()

	if sess.SpecCard == nil || *sess.SpecCard == "" {
		return nil, services.NewStateConflict("session", sessionID, string(sess.State), ActionStartBuild)
	}

	system := ticketSystemPrompt(sess.ProjectType)
	if sess.ProjectType == session.ProjectTypeBuildFeature && len(sess.RepoAnalysis) > 0 {
		system += repoContextBlock(sess.RepoAnalysis)
	}

	raw, err := llm.CompleteWithRetry(ctx, e.adapter, llm.Request{
		System: system,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: "Specification:\n\n" + *sess.SpecCard,
		}},
		MaxTokens: 8192,
	}, e.cfg.MaxRetries, e.cfg.Timeout)
	if err != nil {
		return nil, services.NewUpstreamError("model", llm.IsTransient(err), err)
	}

	drafts, err := parseTicketBatch(raw)
	if err != nil {
		return nil, services.NewUpstreamError("model", false, err)
	}
	if err := validateDrafts(drafts); err != nil {
		return nil, err
	}

	projectID := ""
	if sess.ProjectID != nil {
		projectID = *sess.ProjectID
	}
	if projectID == "" {
		projectID = uuid.New().String()
	}
	repoURL, _ := sess.RepoAnalysis["repo_url"].(string)

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Session.UpdateOneID(sessionID).
		SetState(session.StateBuilding).
		SetProjectID(projectID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	ids := make([]string, len(drafts))
	evts := make([]*ent.Event, 0, len(drafts)+2)
	for i, draft := range drafts {
		ids[i] = uuid.New().String()
		state := ticket.StateReady
		if len(draft.DependsOn) > 0 {
			state = ticket.StateBlocked
		}

		create := tx.Ticket.Create().
			SetID(ids[i]).
			SetTenantID(sess.TenantID).
			SetProjectID(projectID).
			SetSessionID(sessionID).
			SetTitle(draft.Title).
			SetDescription(draft.Description).
			SetState(state).
			SetTraceID(uuid.New().String())
		if len(draft.AcceptanceCriteria) > 0 {
			create = create.SetAcceptanceCriteria(draft.AcceptanceCriteria)
		}
		if draft.Epic != "" {
			create = create.SetEpic(draft.Epic)
		}
		if draft.Scope != "" {
			create = create.SetScope(ticket.Scope(draft.Scope))
		}
		if len(draft.FileHints) > 0 {
			create = create.SetFileHints(draft.FileHints)
		}
		if draft.Priority != "" {
			create = create.SetPriority(ticket.Priority(draft.Priority))
		}
		if repoURL != "" {
			create = create.SetRepoURL(repoURL)
		}

		created, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, services.ErrIntegrity
			}
			return nil, fmt.Errorf("failed to create ticket: %w", err)
		}

		evt, err := appendAndSave(ctx, tx, events.RoomTicket(created.ID), events.EventTicketActivity,
			events.TicketActivityPayload{
				BasePayload: events.NewBase(events.EventTicketActivity),
				TicketID:    created.ID,
				Activity:    "created",
				State:       string(created.State),
			}, sessionID, created.ID)
		if err != nil {
			return nil, err
		}
		evts = append(evts, evt)
	}

	for i, draft := range drafts {
		for _, dep := range draft.DependsOn {
			if _, err := tx.TicketDependency.Create().
				SetTicketID(ids[i]).
				SetDependsOn(ids[dep]).
				Save(ctx); err != nil {
				if ent.IsConstraintError(err) {
					return nil, services.ErrIntegrity
				}
				return nil, fmt.Errorf("failed to create dependency edge: %w", err)
			}
		}
	}

	genEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventTicketsGenerated,
		events.TicketsGeneratedPayload{
			BasePayload: events.NewBase(events.EventTicketsGenerated),
			SessionID:   sessionID,
			ProjectID:   projectID,
			TicketCount: len(drafts),
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	updEvt, err := appendAndSave(ctx, tx, events.RoomSession(sessionID), events.EventSessionUpdate,
		events.SessionUpdatePayload{
			BasePayload: events.NewBase(events.EventSessionUpdate),
			SessionID:   sessionID,
			State:       string(session.StateBuilding),
			Progress:    sess.Progress,
		}, sessionID, "")
	if err != nil {
		return nil, err
	}
	evts = append(evts, genEvt, updEvt)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	e.publisher.Notify(ctx, evts...)

	updated, err := e.client.Session.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload session: %w", err)
	}

	e.logger.Info("Build started",
		"session_id", sessionID, "project_id", projectID, "tickets", len(drafts))
	return &models.StartBuildResponse{Session: updated, TicketCount: len(drafts)}, nil
}

// parseTicketBatch extracts the ticket list from model output, tolerating
// markdown fences the same way the dialogue envelope parser does.
func parseTicketBatch(raw string) ([]models.TicketDraft, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	var batch ticketBatch
	if err := json.Unmarshal([]byte(text), &batch); err != nil {
		return nil, fmt.Errorf("ticket generation returned unparseable output: %w", err)
	}
	if len(batch.Tickets) == 0 {
		return nil, fmt.Errorf("ticket generation returned no tickets")
	}
	return batch.Tickets, nil
}

// validateDrafts checks field validity and DAG-ness of the index edges.
func validateDrafts(drafts []models.TicketDraft) error {
	for i, d := range drafts {
		if d.Title == "" {
			return services.NewValidationError("tickets", fmt.Sprintf("ticket %d has no title", i))
		}
		for _, dep := range d.DependsOn {
			if dep < 0 || dep >= len(drafts) {
				return services.ErrIntegrity
			}
			if dep == i {
				return services.ErrIntegrity
			}
		}
	}
	if hasCycle(drafts) {
		return services.ErrIntegrity
	}
	return nil
}

// hasCycle runs a three-color DFS over the index edges.
func hasCycle(drafts []models.TicketDraft) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, len(drafts))

	var visit func(int) bool
	visit = func(n int) bool {
		color[n] = gray
		for _, dep := range drafts[n].DependsOn {
			switch color[dep] {
			case gray:
				return true
			case white:
				if visit(dep) {
					return true
				}
			}
		}
		color[n] = black
		return false
	}

	for i := range drafts {
		if color[i] == white && visit(i) {
			return true
		}
	}
	return false
}
