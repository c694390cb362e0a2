package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/models"
)

func TestFeedbackItems(t *testing.T) {
	stored := []map[string]interface{}{
		{"severity": "error", "category": "correctness", "description": "off by one", "line": float64(7)},
		{"severity": "info", "category": "style", "description": "rename this"},
	}
	items := feedbackItems(stored)
	require.Len(t, items, 2)
	assert.Equal(t, "off by one", items[0].Description)
	assert.Equal(t, 7, items[0].Line)
	assert.Equal(t, "style", items[1].Category)

	assert.Nil(t, feedbackItems(nil))
}

func TestSaturatedSessions(t *testing.T) {
	d := &Dispatcher{
		cfg:        config.DispatchConfig{MaxPerSession: 2},
		perSession: make(map[string]int),
	}

	assert.Empty(t, d.saturatedSessions())

	d.trackSession("sess-a", 1)
	assert.Empty(t, d.saturatedSessions())

	d.trackSession("sess-a", 1)
	assert.Equal(t, []string{"sess-a"}, d.saturatedSessions())

	d.trackSession("sess-a", -1)
	assert.Empty(t, d.saturatedSessions())

	// Counts at zero are dropped from the map entirely.
	d.trackSession("sess-a", -1)
	assert.Empty(t, d.perSession)

	// Untracked tickets (no session) are ignored.
	d.trackSession("", 1)
	assert.Empty(t, d.perSession)
}

func TestSaturatedSessions_CeilingDisabled(t *testing.T) {
	d := &Dispatcher{
		cfg:        config.DispatchConfig{MaxPerSession: 0},
		perSession: make(map[string]int),
	}
	d.trackSession("sess-a", 5)
	assert.Nil(t, d.saturatedSessions())
}

func TestRetrievalFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req retrievalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 10, req.Limit)
		assert.Equal(t, []string{"api/widget.go"}, req.FileHints)

		json.NewEncoder(w).Encode(map[string]any{
			"chunks": []map[string]any{
				{"path": "api/widget.go", "content": "func Widget() {}", "score": 0.9},
			},
		})
	}))
	defer srv.Close()

	client := NewRetrievalClient(srv.URL)
	chunks := client.Fetch(context.Background(), "https://github.com/acme/shop",
		"widget", []string{"api/widget.go"})
	require.Len(t, chunks, 1)
	assert.Equal(t, "api/widget.go", chunks[0].Path)
}

func TestRetrievalFetch_BestEffort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewRetrievalClient(srv.URL)
	assert.Nil(t, client.Fetch(context.Background(), "", "q", nil))

	disabled := NewRetrievalClient("")
	assert.Nil(t, disabled.Fetch(context.Background(), "", "q", nil))
}

func TestDeployTrigger(t *testing.T) {
	var got deployTrigger
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewDeployClient(srv.URL)
	require.True(t, client.Enabled())

	err := client.Trigger(context.Background(), "tk-1", 2,
		"https://github.com/acme/shop", "foundry/tk-1", "https://github.com/acme/shop/pull/12")
	require.NoError(t, err)
	assert.Equal(t, "tk-1", got.TicketID)
	assert.Equal(t, 2, got.Attempt)
	assert.Equal(t, "foundry/tk-1", got.BranchName)
}

func TestDeployTrigger_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewDeployClient(srv.URL)
	err := client.Trigger(context.Background(), "tk-1", 1, "", "", "")
	assert.ErrorContains(t, err, "503")
}

func TestPullRequestText(t *testing.T) {
	tk := &ent.Ticket{Description: "Build the widget end to end"}

	body := pullRequestText(tk, &models.WorkerResult{Summary: "done it"})
	assert.Contains(t, body, "Build the widget end to end")
	assert.Contains(t, body, "## Summary")
	assert.Contains(t, body, "done it")

	bare := pullRequestText(tk, &models.WorkerResult{})
	assert.Equal(t, "Build the widget end to end", bare)
}
