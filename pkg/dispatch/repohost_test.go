package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubRepo(t *testing.T) {
	tests := []struct {
		url       string
		owner     string
		repo      string
		expectErr bool
	}{
		{url: "https://github.com/acme/shop", owner: "acme", repo: "shop"},
		{url: "https://github.com/acme/shop.git", owner: "acme", repo: "shop"},
		{url: "https://github.com/acme/shop/tree/main", owner: "acme", repo: "shop"},
		{url: "https://gitlab.com/acme/shop", expectErr: true},
		{url: "https://github.com/acme", expectErr: true},
		{url: "://not-a-url", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, err := parseGitHubRepo(tt.url)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestOpenPullRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/shop/pulls", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var body pullRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "foundry/tk-1", body.Head)
		assert.Equal(t, "main", body.Base)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"html_url": "https://github.com/acme/shop/pull/12",
		})
	}))
	defer srv.Close()

	host := NewRepoHost("tok-1", srv.URL)
	url, err := host.OpenPullRequest(context.Background(),
		"https://github.com/acme/shop", "foundry/tk-1", "Implement widget", "body text")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/shop/pull/12", url)
}

func TestOpenPullRequest_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Validation Failed"}`))
	}))
	defer srv.Close()

	host := NewRepoHost("tok-1", srv.URL)
	_, err := host.OpenPullRequest(context.Background(),
		"https://github.com/acme/shop", "b", "t", "")
	assert.ErrorContains(t, err, "422")
}

func TestOpenPullRequest_Disabled(t *testing.T) {
	host := NewRepoHost("", "")
	assert.False(t, host.Enabled())

	_, err := host.OpenPullRequest(context.Background(),
		"https://github.com/acme/shop", "b", "t", "")
	assert.Error(t, err)
}
