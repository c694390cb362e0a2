// Foundry control plane server: provides the HTTP API, runs the human-in-
// the-loop session engine, and drives the dispatch and verification loop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/buildloop/foundry/pkg/api"
	"github.com/buildloop/foundry/pkg/auth"
	"github.com/buildloop/foundry/pkg/config"
	"github.com/buildloop/foundry/pkg/database"
	"github.com/buildloop/foundry/pkg/dispatch"
	"github.com/buildloop/foundry/pkg/events"
	"github.com/buildloop/foundry/pkg/hitl"
	"github.com/buildloop/foundry/pkg/llm"
	"github.com/buildloop/foundry/pkg/services"
	"github.com/buildloop/foundry/pkg/tickets"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runtimeError marks a failure that happened after startup completed, such
// as the HTTP listener dying. Startup failures exit 1; runtime failures
// exit 2 so supervisors can tell the two apart.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var rtErr *runtimeError
	if errors.As(err, &rtErr) {
		return 2
	}
	return 1
}

func main() {
	err := run()
	if err != nil {
		slog.Error("Fatal error", "error", err)
	}
	os.Exit(exitCode(err))
}

func run() error {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting foundry", "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to database", "driver", dbClient.Driver())

	// 3. Event infrastructure. The publisher gets its broadcaster after the
	// connection manager exists; the NOTIFY listener only runs on PostgreSQL.
	publisher := events.NewPublisher(dbClient.DB(), dbClient.IsPostgres(), nil)
	roomAuthz := services.NewRoomAuthz(dbClient.Client)
	connManager := events.NewConnectionManager(roomAuthz, 10*time.Second)
	publisher.SetBroadcaster(connManager)

	var notifyListener *events.NotifyListener
	if dbClient.IsPostgres() {
		notifyListener = events.NewNotifyListener(dbConfig.DSN(), connManager)
		if err := notifyListener.Start(ctx); err != nil {
			return fmt.Errorf("failed to start NOTIFY listener: %w", err)
		}
		defer notifyListener.Stop(ctx)
		connManager.SetListener(notifyListener)
	}
	slog.Info("Event infrastructure initialized", "postgres", dbClient.IsPostgres())

	// 4. Services
	userService := services.NewUserService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	ticketService := services.NewTicketService(dbClient.Client, publisher)
	eventService := services.NewEventService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client, publisher)

	// 5. Model adapter
	var adapter llm.Adapter
	switch cfg.LLM.Provider {
	case "stub":
		adapter = llm.NewStubAdapter()
	default:
		adapter, err = llm.NewAnthropicAdapter(cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			return fmt.Errorf("failed to initialize model adapter: %w", err)
		}
	}
	slog.Info("Model adapter initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	// 6. Engines
	hitlEngine := hitl.NewEngine(dbClient.Client, publisher, approvalService, adapter, *cfg.LLM)
	ticketEngine := tickets.NewEngine(dbClient, publisher, *cfg.Queue)

	// 7. Reaper: recover leases orphaned by a previous process before any
	// new work is claimed, then run periodically.
	reaper := tickets.NewReaper(ticketEngine, cfg.Queue.ReaperInterval)
	if err := reaper.RecoverOrphans(ctx); err != nil {
		return err
	}
	reaperCtx, stopReaper := context.WithCancel(ctx)
	defer stopReaper()
	reaper.Start(reaperCtx)

	// 8. Dispatcher
	worker := dispatch.NewExecWorker(cfg.Dispatch.WorkerCommand, cfg.Dispatch.WorkDir)
	dispatcher := dispatch.NewDispatcher(ticketEngine, worker, *cfg.Dispatch, *cfg.Queue)
	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()
	dispatcher.Start(dispatchCtx)

	// 9. HTTP server
	issuer := auth.NewTokenIssuer(cfg.Auth.SigningKey, cfg.Auth.TokenTTL)
	httpServer := api.NewServer(dbClient, issuer,
		userService, sessionService, messageService, ticketService,
		eventService, approvalService, hitlEngine, ticketEngine, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Foundry started")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	var runErr error
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		runErr = &runtimeError{err: err}
	}

	// 11. Graceful shutdown: stop claiming and drain in-flight work, stop the
	// reaper, then close the HTTP server. In-flight work abandoned by the
	// drain timeout is orphan-recovered on the next start.
	stopDispatch()
	dispatcher.Drain()

	stopReaper()
	reaper.Wait()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return runErr
}
