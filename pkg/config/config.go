// Package config loads service configuration from a config directory:
// an optional config.yaml plus environment overrides (the .env file is
// loaded by main before this package runs).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the umbrella configuration object returned by Load and passed
// to every component.
type Config struct {
	configDir string

	Queue    *QueueConfig    `yaml:"queue"`
	Dispatch *DispatchConfig `yaml:"dispatch"`
	LLM      *LLMConfig      `yaml:"llm"`
	Auth     *AuthConfig     `yaml:"auth"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string { return c.configDir }

// Load reads config.yaml from dir (if present), applies defaults, then
// applies environment overrides. Validation failures are fatal at startup.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		configDir: dir,
		Queue:     DefaultQueueConfig(),
		Dispatch:  DefaultDispatchConfig(),
		LLM:       DefaultLLMConfig(),
		Auth:      DefaultAuthConfig(),
	}

	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults + env only.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("AUTH_SIGNING_KEY"); key != "" {
		c.Auth.SigningKey = key
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("WORKER_COMMAND"); v != "" {
		c.Dispatch.WorkerCommand = v
	}
	if v := os.Getenv("CRITIC_URL"); v != "" {
		c.Dispatch.CriticURL = v
	}
	if v := os.Getenv("DEPLOY_URL"); v != "" {
		c.Dispatch.DeployURL = v
	}
	if v := os.Getenv("RETRIEVAL_URL"); v != "" {
		c.Dispatch.RetrievalURL = v
	}
	if v := os.Getenv("REPO_HOST_TOKEN"); v != "" {
		c.Dispatch.RepoHostToken = v
	}
	if v, err := strconv.Atoi(os.Getenv("DISPATCH_MAX_PARALLEL")); err == nil && v > 0 {
		c.Dispatch.MaxParallel = v
	}
	if v, err := strconv.Atoi(os.Getenv("TICKET_RETRY_CEILING")); err == nil && v > 0 {
		c.Queue.RetryCeiling = v
	}
}

func (c *Config) validate() error {
	if c.Auth.SigningKey == "" {
		return fmt.Errorf("auth signing key is required (AUTH_SIGNING_KEY)")
	}
	if c.Dispatch.MaxParallel < 1 {
		return fmt.Errorf("dispatch.max_parallel must be at least 1")
	}
	if c.Queue.RetryCeiling < 0 {
		return fmt.Errorf("queue.retry_ceiling must not be negative")
	}
	return nil
}

// QueueConfig controls the ticket lease, heartbeat, and reaper machinery.
type QueueConfig struct {
	// LeaseDuration is the default exclusive claim window for a worker.
	// Overridable per ticket.
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// HeartbeatInterval is the expected lease renewal cadence. Two missed
	// intervals mark a lease dead.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// ReaperInterval is how often the reaper scans for expired leases.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// RetryCeiling is the maximum number of retries before a ticket
	// terminates in needs_review.
	RetryCeiling int `yaml:"retry_ceiling"`

	// RetryBackoffBase and RetryBackoffCap bound the retry_after backoff:
	// base * 2^(retry_count-1), capped.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`
	RetryBackoffCap  time.Duration `yaml:"retry_backoff_cap"`

	// GracefulShutdownTimeout bounds the dispatcher drain at shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		LeaseDuration:           30 * time.Minute,
		HeartbeatInterval:       60 * time.Second,
		ReaperInterval:          30 * time.Second,
		RetryCeiling:            3,
		RetryBackoffBase:        30 * time.Second,
		RetryBackoffCap:         15 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// Backoff returns the retry delay for the given retry count.
func (q *QueueConfig) Backoff(retryCount int) time.Duration {
	if retryCount < 1 {
		retryCount = 1
	}
	d := q.RetryBackoffBase
	for i := 1; i < retryCount; i++ {
		d *= 2
		if d >= q.RetryBackoffCap {
			return q.RetryBackoffCap
		}
	}
	if d > q.RetryBackoffCap {
		return q.RetryBackoffCap
	}
	return d
}

// DispatchConfig controls the dispatch and verification loop.
type DispatchConfig struct {
	// TickInterval is the dispatcher poll cadence.
	TickInterval time.Duration `yaml:"tick_interval"`

	// MaxParallel is the global in-flight work unit ceiling.
	MaxParallel int `yaml:"max_parallel"`

	// MaxPerSession is the per-session in-flight ceiling.
	MaxPerSession int `yaml:"max_per_session"`

	// WorkerCommand is the executable launched for each work unit. It
	// receives the input file path as its single argument and writes its
	// result next to it.
	WorkerCommand string `yaml:"worker_command"`

	// WorkDir is where work unit input/output files are written.
	WorkDir string `yaml:"work_dir"`

	// CriticURL, DeployURL, RetrievalURL locate the external collaborators.
	// Empty disables the collaborator (critic auto-approves, deploy is
	// skipped, no retrieved context).
	CriticURL    string `yaml:"critic_url"`
	DeployURL    string `yaml:"deploy_url"`
	RetrievalURL string `yaml:"retrieval_url"`

	// CriticTimeout bounds a single critic call.
	CriticTimeout time.Duration `yaml:"critic_timeout"`

	// CriticRetries is the small cap for transient critic errors.
	CriticRetries int `yaml:"critic_retries"`

	// RepoHostToken authenticates pull-request creation.
	RepoHostToken string `yaml:"repo_host_token"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		TickInterval:  1 * time.Second,
		MaxParallel:   4,
		MaxPerSession: 2,
		WorkDir:       os.TempDir(),
		CriticTimeout: 5 * time.Minute,
		CriticRetries: 2,
	}
}

// LLMConfig configures the model adapter.
type LLMConfig struct {
	Provider   string        `yaml:"provider"` // "anthropic" or "stub"
	Model      string        `yaml:"model"`
	APIKey     string        `yaml:"-"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// DefaultLLMConfig returns the built-in model adapter defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Provider:   "anthropic",
		Model:      "claude-sonnet-4-5",
		Timeout:    60 * time.Second,
		MaxRetries: 3,
	}
}

// AuthConfig configures bearer token issuing.
type AuthConfig struct {
	SigningKey string        `yaml:"-"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
}

// DefaultAuthConfig returns the built-in auth defaults.
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{TokenTTL: 24 * time.Hour}
}
