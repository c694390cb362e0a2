package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buildloop/foundry/pkg/models"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/cenkalti/backoff/v4"
)

// CriticRequest is the review request sent to the critic collaborator.
type CriticRequest struct {
	TicketID           string   `json:"ticket_id"`
	Attempt            int      `json:"attempt"`
	TraceID            string   `json:"trace_id"`
	RepoURL            string   `json:"repo_url,omitempty"`
	BranchName         string   `json:"branch_name,omitempty"`
	Files              []string `json:"files,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
}

// criticResponse tolerates both the structured feedback list and the legacy
// raw string list.
type criticResponse struct {
	Approve  bool            `json:"approve"`
	Feedback json.RawMessage `json:"feedback"`
}

// CriticClient calls the external critic over HTTP. Transient failures (5xx,
// timeout) retry up to a small cap; a 4xx is a permanent upstream refusal.
// With no URL configured the critic auto-approves.
type CriticClient struct {
	url     string
	retries int
	http    *http.Client
}

// NewCriticClient creates a critic client.
func NewCriticClient(url string, timeout time.Duration, retries int) *CriticClient {
	return &CriticClient{
		url:     url,
		retries: retries,
		http:    &http.Client{Timeout: timeout},
	}
}

// Review asks the critic for a verdict over the produced diff.
func (c *CriticClient) Review(ctx context.Context, req CriticRequest) (*models.CriticVerdict, error) {
	if c.url == "" {
		return &models.CriticVerdict{Approve: true}, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal critic request: %w", err)
	}

	var verdict *models.CriticVerdict
	op := func() error {
		v, err := c.post(ctx, body)
		if err != nil {
			return err
		}
		verdict = v
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.retries)), ctx))
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

func (c *CriticClient) post(ctx context.Context, body []byte) (*models.CriticVerdict, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err // network errors retry
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("critic returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, backoff.Permanent(services.NewUpstreamError("critic", false,
			fmt.Errorf("critic refused with %d: %s", resp.StatusCode, data)))
	}

	var raw criticResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, backoff.Permanent(services.NewUpstreamError("critic", false,
			fmt.Errorf("critic returned unparseable verdict: %w", err)))
	}

	return &models.CriticVerdict{
		Approve:  raw.Approve,
		Feedback: parseFeedback(raw.Feedback),
	}, nil
}

// parseFeedback accepts the structured item list, falling back to a raw
// string list lifted into info/general items.
func parseFeedback(raw json.RawMessage) []models.CriticFeedbackItem {
	if len(raw) == 0 {
		return nil
	}

	var items []models.CriticFeedbackItem
	if err := json.Unmarshal(raw, &items); err == nil && validItems(items) {
		return items
	}

	var strs []string
	if err := json.Unmarshal(raw, &strs); err == nil {
		items = make([]models.CriticFeedbackItem, 0, len(strs))
		for _, s := range strs {
			items = append(items, models.CriticFeedbackItem{
				Severity:    "info",
				Category:    "general",
				Description: s,
			})
		}
		return items
	}
	return nil
}

// validItems rejects a decode that only succeeded vacuously (e.g. a string
// list decoding into empty structs).
func validItems(items []models.CriticFeedbackItem) bool {
	for _, item := range items {
		if item.Description == "" {
			return false
		}
	}
	return len(items) > 0
}
