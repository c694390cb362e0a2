package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/buildloop/foundry/pkg/models"
)

// RetrievalClient fetches code context relevant to a ticket from the
// retrieval collaborator. It is strictly best-effort: any failure logs and
// returns nothing, and the work unit ships without retrieved context.
type RetrievalClient struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

// NewRetrievalClient creates a retrieval client. Empty URL disables it.
func NewRetrievalClient(url string) *RetrievalClient {
	return &RetrievalClient{
		url:    url,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: slog.With("component", "retrieval"),
	}
}

type retrievalRequest struct {
	RepoURL   string   `json:"repo_url,omitempty"`
	Query     string   `json:"query"`
	FileHints []string `json:"file_hints,omitempty"`
	Limit     int      `json:"limit"`
}

type retrievalResponse struct {
	Chunks []models.RetrievedChunk `json:"chunks"`
}

// Fetch returns code chunks for the query, or nil on any failure.
func (r *RetrievalClient) Fetch(ctx context.Context, repoURL, query string, fileHints []string) []models.RetrievedChunk {
	if r.url == "" {
		return nil
	}

	body, err := json.Marshal(retrievalRequest{
		RepoURL:   repoURL,
		Query:     query,
		FileHints: fileHints,
		Limit:     10,
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		r.logger.Warn("Context retrieval failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("Context retrieval failed", "status", resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil
	}
	var out retrievalResponse
	if err := json.Unmarshal(data, &out); err != nil {
		r.logger.Warn("Context retrieval returned invalid JSON", "error", err)
		return nil
	}
	return out.Chunks
}
