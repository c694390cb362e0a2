package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DeployClient triggers the external deploy collaborator once a ticket's
// pull request is approved. The deploy service reports its outcome back
// through the deploy-result endpoint; this client only starts the process.
// With no URL configured the deploy step is skipped and tickets complete
// directly from in_review.
type DeployClient struct {
	url  string
	http *http.Client
}

// NewDeployClient creates a deploy client. Empty URL disables it.
func NewDeployClient(url string) *DeployClient {
	return &DeployClient{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a deploy collaborator is configured.
func (d *DeployClient) Enabled() bool { return d.url != "" }

type deployTrigger struct {
	TicketID   string `json:"ticket_id"`
	Attempt    int    `json:"attempt"`
	RepoURL    string `json:"repo_url,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
	PRURL      string `json:"pr_url,omitempty"`
}

// Trigger asks the deploy collaborator to merge and deploy the attempt.
func (d *DeployClient) Trigger(ctx context.Context, ticketID string, attempt int, repoURL, branch, prURL string) error {
	body, err := json.Marshal(deployTrigger{
		TicketID:   ticketID,
		Attempt:    attempt,
		RepoURL:    repoURL,
		BranchName: branch,
		PRURL:      prURL,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal deploy trigger: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return fmt.Errorf("deploy trigger failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("deploy service returned %d: %s", resp.StatusCode, data)
	}
	return nil
}
