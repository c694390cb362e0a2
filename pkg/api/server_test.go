package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent/user"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/hitl"
	"github.com/buildloop/foundry/pkg/llm"
	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/buildloop/foundry/pkg/tickets"
	"github.com/buildloop/foundry/test/util"
)

type testServer struct {
	server *Server
	db     *database.Client
	issuer *auth.TokenIssuer
	stub   *llm.StubAdapter
}

// newTestServer wires a full server over an in-memory database with a
// scripted model adapter.
func newTestServer(t *testing.T, responses ...string) *testServer {
	t.Helper()
	db := util.SetupSQLite(t)
	publisher := events.NewPublisher(db.DB(), false, nil)

	userService := services.NewUserService(db.Client)
	sessionService := services.NewSessionService(db.Client)
	messageService := services.NewMessageService(db.Client)
	eventService := services.NewEventService(db.Client)
	ticketService := services.NewTicketService(db.Client, publisher)
	approvalService := services.NewApprovalService(db.Client, publisher)

	stub := llm.NewStubAdapter(responses...)
	hitlEngine := hitl.NewEngine(db.Client, publisher, approvalService, stub, config.LLMConfig{
		Provider:   "stub",
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})
	ticketEngine := tickets.NewEngine(db, publisher, *config.DefaultQueueConfig())

	issuer := auth.NewTokenIssuer("test-signing-key", time.Hour)
	server := NewServer(db, issuer,
		userService, sessionService, messageService, ticketService, eventService, approvalService,
		hitlEngine, ticketEngine, nil)

	return &testServer{server: server, db: db, issuer: issuer, stub: stub}
}

// newUserToken creates a user row and a bearer token for it.
func (ts *testServer) newUserToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	u, err := services.NewUserService(ts.db.Client).
		CreateUser(context.Background(), email, "password123", "tenant-1", role)
	require.NoError(t, err)

	token, err := ts.issuer.Issue(auth.Principal{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Role:     auth.Role(u.Role),
	})
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email:    "dev@acme.test",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	decodeInto(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "dev@acme.test", resp.User.Email)

	// The returned token works on authenticated routes, and /me returns a
	// refreshed token that is itself valid.
	me := ts.do(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)

	var meResp models.LoginResponse
	decodeInto(t, me, &meResp)
	assert.Equal(t, "dev@acme.test", meResp.User.Email)
	require.NotEmpty(t, meResp.Token)

	again := ts.do(t, http.MethodGet, "/api/auth/me", meResp.Token, nil)
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestLogin_BadPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email:    "dev@acme.test",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown email is indistinguishable from a bad password.
	rec = ts.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatedRoutesRejectAnonymous(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/hitl", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	envelope := `{"message": "What stack do you want?", "gathered": {"project_type": {"project_type": "web_app"}}}`
	ts := newTestServer(t, envelope)
	token := ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/hitl", token, models.CreateSessionRequest{
		ProjectName: "TaskApp",
		Description: "A task management app",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}
	decodeInto(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "input", created.State)

	rec = ts.do(t, http.MethodPost, "/api/hitl/"+created.ID+"/respond", token,
		models.RespondRequest{Message: "a web shop please"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RespondResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "What stack do you want?", resp.Message.Content)
	assert.Equal(t, 20, resp.Progress)

	rec = ts.do(t, http.MethodGet, "/api/hitl/"+created.ID+"/messages", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var msgs struct {
		Messages []json.RawMessage `json:"messages"`
	}
	decodeInto(t, rec, &msgs)
	assert.Len(t, msgs.Messages, 2)

	rec = ts.do(t, http.MethodGet, "/api/hitl", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.SessionListResponse
	decodeInto(t, rec, &list)
	assert.Equal(t, 1, list.TotalCount)

	rec = ts.do(t, http.MethodDelete, "/api/hitl/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted struct {
		Success bool `json:"success"`
	}
	decodeInto(t, rec, &deleted)
	assert.True(t, deleted.Success)
}

func TestStartClarificationRoute(t *testing.T) {
	envelope := `{"message": "Tell me more.", "gathered": {}}`
	ts := newTestServer(t, envelope)
	token := ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/hitl", token, models.CreateSessionRequest{
		ProjectName: "TaskApp",
		Description: "A task management app",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &created)

	rec = ts.do(t, http.MethodPost, "/api/hitl/"+created.ID+"/start-clarification", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sess struct {
		State string `json:"state"`
	}
	decodeInto(t, rec, &sess)
	assert.Equal(t, "clarifying", sess.State)
}

func TestRespond_EmptyMessageIsBadRequest(t *testing.T) {
	ts := newTestServer(t)
	token := ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/hitl", token, models.CreateSessionRequest{
		ProjectName: "Webshop",
		Description: "shop",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &created)

	rec = ts.do(t, http.MethodPost, "/api/hitl/"+created.ID+"/respond", token,
		models.RespondRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStateConflictCarriesCurrentState(t *testing.T) {
	ts := newTestServer(t)
	token := ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/hitl", token, models.CreateSessionRequest{
		ProjectName: "Webshop",
		Description: "shop",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &created)

	// Approving a session that is still clarifying is illegal.
	rec = ts.do(t, http.MethodPost, "/api/hitl/"+created.ID+"/approve", token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "current_state")
}

func TestTicketCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	token := ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/tickets", token, models.CreateTicketRequest{
		ProjectID:   "proj-1",
		Title:       "Implement widget",
		Description: "end to end",
		Priority:    "high",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}
	decodeInto(t, rec, &created)
	require.NotEmpty(t, created.ID)

	rec = ts.do(t, http.MethodGet, "/api/tickets/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	newTitle := "Implement widget v2"
	rec = ts.do(t, http.MethodPut, "/api/tickets/"+created.ID, token, models.UpdateTicketRequest{
		Title: &newTitle,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Title string `json:"title"`
	}
	decodeInto(t, rec, &updated)
	assert.Equal(t, "Implement widget v2", updated.Title)

	rec = ts.do(t, http.MethodGet, "/api/tickets?state=not-a-state", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/tickets?project_id=proj-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.TicketListResponse
	decodeInto(t, rec, &list)
	assert.Equal(t, 1, list.TotalCount)
}

func TestQueueEndpointsRequireAgentRole(t *testing.T) {
	ts := newTestServer(t)
	userToken := ts.newUserToken(t, "dev@acme.test", user.RoleUser)
	agentToken := ts.newUserToken(t, "agent@acme.test", user.RoleAgent)

	rec := ts.do(t, http.MethodPost, "/api/tickets/claim", userToken,
		models.ClaimRequest{WorkerID: "w1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Empty queue responds 204 for agents.
	rec = ts.do(t, http.MethodPost, "/api/tickets/claim", agentToken,
		models.ClaimRequest{WorkerID: "w1"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClaimOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	userToken := ts.newUserToken(t, "dev@acme.test", user.RoleUser)
	agentToken := ts.newUserToken(t, "agent@acme.test", user.RoleAgent)

	rec := ts.do(t, http.MethodPost, "/api/tickets", userToken, models.CreateTicketRequest{
		ProjectID:   "proj-1",
		Title:       "Implement widget",
		Description: "end to end",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/tickets/claim", agentToken,
		models.ClaimRequest{WorkerID: "w1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var claim struct {
		Ticket struct {
			ID    string `json:"id"`
			State string `json:"state"`
		} `json:"ticket"`
		ProjectSettings map[string]any `json:"projectSettings"`
	}
	decodeInto(t, rec, &claim)
	require.NotEmpty(t, claim.Ticket.ID)
	assert.Equal(t, "assigned", claim.Ticket.State)
	require.NotNil(t, claim.ProjectSettings)
	assert.Equal(t, "proj-1", claim.ProjectSettings["project_id"])
	assert.Positive(t, claim.ProjectSettings["lease_seconds"])

	rec = ts.do(t, http.MethodPost, "/api/tickets/"+claim.Ticket.ID+"/heartbeat", agentToken,
		models.HeartbeatRequest{WorkerID: "w1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var hb models.HeartbeatResponse
	decodeInto(t, rec, &hb)
	assert.True(t, hb.LeaseExpires.After(time.Now()))

	// Completion by a different worker is a conflict.
	rec = ts.do(t, http.MethodPost, "/api/tickets/"+claim.Ticket.ID+"/complete", agentToken,
		models.CompleteRequest{WorkerID: "w2", Success: true})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCrossTenantIsolationOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	token := ts.newUserToken(t, "dev@acme.test", user.RoleUser)

	rec := ts.do(t, http.MethodPost, "/api/tickets", token, models.CreateTicketRequest{
		ProjectID:   "proj-1",
		Title:       "Implement widget",
		Description: "end to end",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeInto(t, rec, &created)

	outsider, err := ts.issuer.Issue(auth.Principal{
		UserID:   "intruder",
		TenantID: "tenant-2",
		Role:     auth.RoleUser,
	})
	require.NoError(t, err)

	rec = ts.do(t, http.MethodGet, "/api/tickets/"+created.ID, outsider, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Operators cross tenant boundaries.
	operator, err := ts.issuer.Issue(auth.Principal{
		UserID:   "ops",
		TenantID: "tenant-2",
		Role:     auth.RoleOperator,
	})
	require.NoError(t, err)

	rec = ts.do(t, http.MethodGet, "/api/tickets/"+created.ID, operator, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
