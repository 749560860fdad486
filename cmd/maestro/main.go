// Maestro control plane server — provides the HTTP API, manages queue
// workers, and orchestrates agent task runs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agentfoundry/maestro/pkg/api"
	"github.com/agentfoundry/maestro/pkg/budget"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/database"
	"github.com/agentfoundry/maestro/pkg/llm"
	"github.com/agentfoundry/maestro/pkg/masking"
	"github.com/agentfoundry/maestro/pkg/memory"
	"github.com/agentfoundry/maestro/pkg/observability"
	"github.com/agentfoundry/maestro/pkg/queue"
	"github.com/agentfoundry/maestro/pkg/router"
	"github.com/agentfoundry/maestro/pkg/runtime"
	"github.com/agentfoundry/maestro/pkg/trajectory"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Maestro",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Observability manager (all subsystems report through it)
	obs, err := observability.Default(cfg.Observability)
	if err != nil {
		slog.Error("Failed to initialize observability", "error", err)
		os.Exit(1)
	}
	obs.Start()
	obs.SetBudgetInfo(map[string]interface{}{
		"default_monthly_limit": cfg.Budget.DefaultMonthlyLimit,
		"audit_secret_env":      cfg.Budget.AuditSecretEnv,
	})

	// 5. Masking service and spend governor
	maskingService := masking.NewService(cfg.Defaults.Masking)

	signer, err := budget.NewSignerFromEnv(cfg.Budget.AuditSecretEnv)
	if err != nil {
		slog.Error("Failed to initialize audit signer", "env", cfg.Budget.AuditSecretEnv, "error", err)
		os.Exit(1)
	}
	// No approval/payment capabilities are wired in this binary: LLM spend
	// tracking works, micro-payment charges are rejected as misconfigured.
	governor := budget.NewGovernor(dbClient.Client, cfg.Budget, cfg.AgentRegistry, signer, nil, nil, nil, maskingService)
	slog.Info("Spend governor initialized", "micro_payments", "disabled")
	governor.SetAlertFunc(func(alert budget.Alert) {
		obs.RecordX402Alert(map[string]interface{}{
			"agent":     alert.Agent,
			"service":   alert.Service,
			"amount":    alert.Amount,
			"window":    alert.Window,
			"timestamp": alert.Timestamp,
		})
	})

	// 6. Create LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	grpcClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := grpcClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	llmClient := llm.NewFallbackClient(grpcClient)
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 7. Memory substrate, trajectory store, router, runtime
	memoryStore := memory.NewSubstrate(dbClient.Client, cfg.Memory)
	trajectoryStore := trajectory.NewStore(dbClient.Client)
	taskRouter := router.New(cfg)

	rt, err := runtime.New(cfg, taskRouter, governor, memoryStore, trajectoryStore, llmClient, obs)
	if err != nil {
		slog.Error("Failed to initialize runtime", "error", err)
		os.Exit(1)
	}

	// 8. Start worker pool (before HTTP server)
	executor := queue.NewAgentExecutor(rt)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Create HTTP server
	server := api.NewServer(cfg, dbClient, trajectoryStore, governor, obs, workerPool)
	engine := gin.Default()
	server.RegisterRoutes(engine)

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: engine,
	}

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	stats := cfg.Stats()
	slog.Info("Maestro started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for active runs to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Flush the dashboard snapshot and close feed files last
	obsShutdownCtx, obsCancel := context.WithTimeout(ctx, 5*time.Second)
	defer obsCancel()
	if err := obs.Shutdown(obsShutdownCtx); err != nil {
		slog.Error("Observability shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
