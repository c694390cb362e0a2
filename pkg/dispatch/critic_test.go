package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildloop/foundry/pkg/services"
)

func TestCriticReview_Approve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CriticRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tk-1", req.TicketID)
		assert.Equal(t, 2, req.Attempt)

		json.NewEncoder(w).Encode(map[string]any{"approve": true})
	}))
	defer srv.Close()

	client := NewCriticClient(srv.URL, 5*time.Second, 1)
	verdict, err := client.Review(context.Background(), CriticRequest{TicketID: "tk-1", Attempt: 2})
	require.NoError(t, err)
	assert.True(t, verdict.Approve)
	assert.Empty(t, verdict.Feedback)
}

func TestCriticReview_StructuredFeedback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"approve": false,
			"feedback": []map[string]any{
				{"severity": "error", "category": "correctness", "file": "a.go", "line": 10, "description": "nil deref"},
			},
		})
	}))
	defer srv.Close()

	client := NewCriticClient(srv.URL, 5*time.Second, 1)
	verdict, err := client.Review(context.Background(), CriticRequest{TicketID: "tk-1"})
	require.NoError(t, err)
	assert.False(t, verdict.Approve)
	require.Len(t, verdict.Feedback, 1)
	assert.Equal(t, "error", verdict.Feedback[0].Severity)
	assert.Equal(t, "a.go", verdict.Feedback[0].File)
	assert.Equal(t, 10, verdict.Feedback[0].Line)
}

func TestCriticReview_StringListFeedback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"approve":  false,
			"feedback": []string{"missing tests", "inconsistent naming"},
		})
	}))
	defer srv.Close()

	client := NewCriticClient(srv.URL, 5*time.Second, 1)
	verdict, err := client.Review(context.Background(), CriticRequest{TicketID: "tk-1"})
	require.NoError(t, err)
	require.Len(t, verdict.Feedback, 2)
	assert.Equal(t, "info", verdict.Feedback[0].Severity)
	assert.Equal(t, "general", verdict.Feedback[0].Category)
	assert.Equal(t, "missing tests", verdict.Feedback[0].Description)
}

func TestCriticReview_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"approve": true})
	}))
	defer srv.Close()

	client := NewCriticClient(srv.URL, 5*time.Second, 2)
	verdict, err := client.Review(context.Background(), CriticRequest{TicketID: "tk-1"})
	require.NoError(t, err)
	assert.True(t, verdict.Approve)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCriticReview_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewCriticClient(srv.URL, 5*time.Second, 3)
	_, err := client.Review(context.Background(), CriticRequest{TicketID: "tk-1"})
	require.Error(t, err)
	var ue *services.UpstreamError
	assert.ErrorAs(t, err, &ue)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not retry")
}

func TestCriticReview_NoURLAutoApproves(t *testing.T) {
	client := NewCriticClient("", 5*time.Second, 1)
	verdict, err := client.Review(context.Background(), CriticRequest{TicketID: "tk-1"})
	require.NoError(t, err)
	assert.True(t, verdict.Approve)
}

func TestParseFeedback(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, parseFeedback(nil))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, parseFeedback(json.RawMessage(`42`)))
	})

	t.Run("items without descriptions fall through", func(t *testing.T) {
		// A structured decode that produced only empty items is vacuous.
		assert.Nil(t, parseFeedback(json.RawMessage(`[{"severity": "info"}]`)))
	})
}
