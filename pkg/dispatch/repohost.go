package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RepoHost opens pull requests on the project's repository host. Only GitHub
// is supported; without a token or for a non-GitHub remote PR creation is
// skipped and the ticket carries no pr_url.
type RepoHost struct {
	token   string
	apiBase string
	http    *http.Client
}

// NewRepoHost creates a repo host client. apiBase overrides the GitHub API
// endpoint in tests; empty uses api.github.com.
func NewRepoHost(token, apiBase string) *RepoHost {
	if apiBase == "" {
		apiBase = "https://api.github.com"
	}
	return &RepoHost{
		token:   token,
		apiBase: apiBase,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether the client can open pull requests.
func (r *RepoHost) Enabled() bool { return r.token != "" }

type pullRequestBody struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body,omitempty"`
}

type pullRequestResponse struct {
	HTMLURL string `json:"html_url"`
}

// OpenPullRequest opens a PR for the branch and returns its URL.
func (r *RepoHost) OpenPullRequest(ctx context.Context, repoURL, branch, title, body string) (string, error) {
	if !r.Enabled() {
		return "", fmt.Errorf("no repo host token configured")
	}
	owner, repo, err := parseGitHubRepo(repoURL)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(pullRequestBody{
		Title: title,
		Head:  branch,
		Base:  "main",
		Body:  body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal pull request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/pulls", r.apiBase, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("pull request creation failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("repo host returned %d: %s", resp.StatusCode, data)
	}

	var pr pullRequestResponse
	if err := json.Unmarshal(data, &pr); err != nil {
		return "", fmt.Errorf("failed to parse pull request response: %w", err)
	}
	return pr.HTMLURL, nil
}

// parseGitHubRepo extracts owner and repo from a github.com remote URL.
func parseGitHubRepo(repoURL string) (string, string, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid repo url %q: %w", repoURL, err)
	}
	if u.Host != "github.com" {
		return "", "", fmt.Errorf("unsupported repo host %q", u.Host)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo path %q", u.Path)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
