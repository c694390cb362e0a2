package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-key")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Queue.LeaseDuration)
	assert.Equal(t, 3, cfg.Queue.RetryCeiling)
	assert.Equal(t, 4, cfg.Dispatch.MaxParallel)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "test-key", cfg.Auth.SigningKey)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-key")

	dir := t.TempDir()
	yaml := `
queue:
  lease_duration: 10m
  retry_ceiling: 5
dispatch:
  max_parallel: 8
  critic_url: http://critic.internal
llm:
  provider: stub
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.Queue.LeaseDuration)
	assert.Equal(t, 5, cfg.Queue.RetryCeiling)
	assert.Equal(t, 8, cfg.Dispatch.MaxParallel)
	assert.Equal(t, "http://critic.internal", cfg.Dispatch.CriticURL)
	assert.Equal(t, "stub", cfg.LLM.Provider)

	// Untouched sections keep their defaults.
	assert.Equal(t, 60*time.Second, cfg.Queue.HeartbeatInterval)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-key")
	t.Setenv("DISPATCH_MAX_PARALLEL", "16")
	t.Setenv("TICKET_RETRY_CEILING", "7")
	t.Setenv("CRITIC_URL", "http://critic.env")

	dir := t.TempDir()
	yaml := `
dispatch:
  max_parallel: 8
  critic_url: http://critic.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Dispatch.MaxParallel)
	assert.Equal(t, 7, cfg.Queue.RetryCeiling)
	assert.Equal(t, "http://critic.env", cfg.Dispatch.CriticURL)
}

func TestLoad_MissingSigningKeyFails(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "")
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SIGNING_KEY")
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-key")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("queue: ["), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidMaxParallelFails(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-key")

	dir := t.TempDir()
	yaml := `
dispatch:
  max_parallel: 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_parallel")
}

func TestBackoff(t *testing.T) {
	q := &QueueConfig{
		RetryBackoffBase: 30 * time.Second,
		RetryBackoffCap:  15 * time.Minute,
	}

	assert.Equal(t, 30*time.Second, q.Backoff(0))
	assert.Equal(t, 30*time.Second, q.Backoff(1))
	assert.Equal(t, time.Minute, q.Backoff(2))
	assert.Equal(t, 2*time.Minute, q.Backoff(3))
	assert.Equal(t, 8*time.Minute, q.Backoff(5))
	assert.Equal(t, 15*time.Minute, q.Backoff(6))
	assert.Equal(t, 15*time.Minute, q.Backoff(50))
}
