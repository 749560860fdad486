package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	builtin := GetBuiltinConfig()
	return &Config{
		Defaults:            &Defaults{Agent: "builder", UserID: "default", RoutingPolicy: "budget", ContextStripThreshold: 0.6},
		Queue:               DefaultQueueConfig(),
		Budget:              DefaultBudgetConfig(),
		Memory:              DefaultMemoryConfig(),
		Evolution:           DefaultEvolutionConfig(),
		Observability:       DefaultObservabilityConfig(),
		AgentRegistry:       NewAgentRegistry(builtin.Agents),
		LLMProviderRegistry: NewLLMProviderRegistry(builtin.LLMProviders),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(q *QueueConfig) {},
		},
		{
			name:    "worker count too low",
			mutate:  func(q *QueueConfig) { q.WorkerCount = 0 },
			wantErr: "worker_count must be between 1 and 50",
		},
		{
			name:    "worker count too high",
			mutate:  func(q *QueueConfig) { q.WorkerCount = 51 },
			wantErr: "worker_count must be between 1 and 50",
		},
		{
			name:    "max concurrent runs zero",
			mutate:  func(q *QueueConfig) { q.MaxConcurrentRuns = 0 },
			wantErr: "max_concurrent_runs must be at least 1",
		},
		{
			name:    "poll interval zero",
			mutate:  func(q *QueueConfig) { q.PollInterval = 0 },
			wantErr: "poll_interval must be positive",
		},
		{
			name:    "negative jitter",
			mutate:  func(q *QueueConfig) { q.PollIntervalJitter = -1 * time.Second },
			wantErr: "poll_interval_jitter must be non-negative",
		},
		{
			name:    "run timeout zero",
			mutate:  func(q *QueueConfig) { q.RunTimeout = 0 },
			wantErr: "run_timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg.Queue)
			err := NewValidator(cfg).ValidateAll()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BudgetConfig)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(b *BudgetConfig) {},
		},
		{
			name:    "monthly limit zero",
			mutate:  func(b *BudgetConfig) { b.DefaultMonthlyLimit = 0 },
			wantErr: "default_monthly_limit must be positive",
		},
		{
			name: "manual review below auto approval",
			mutate: func(b *BudgetConfig) {
				b.RequireManualAbove = 10
			},
			wantErr: "require_manual_above",
		},
		{
			name:    "missing audit secret env",
			mutate:  func(b *BudgetConfig) { b.AuditSecretEnv = "" },
			wantErr: "audit_secret_env",
		},
		{
			name: "inverted service cost range",
			mutate: func(b *BudgetConfig) {
				b.ServiceCostRanges = map[string][2]float64{"ocr": {5, 1}}
			},
			wantErr: "range must satisfy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg.Budget)
			err := NewValidator(cfg).ValidateAll()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateEvolutionRubricWeights(t *testing.T) {
	cfg := testConfig()
	cfg.Evolution.CorrectnessWeight = 0.5 // sum now 1.1
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rubric weights must sum to 1.0")
}

func TestDefaultEvolutionConfig(t *testing.T) {
	cfg := DefaultEvolutionConfig()

	assert.Equal(t, 100, cfg.MaxGenerations)
	assert.Equal(t, 5, cfg.PopulationSize)
	assert.InDelta(t, 0.01, cfg.AcceptanceThreshold, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.SandboxTimeout)
	assert.Equal(t, 512, cfg.SandboxMemoryLimitMB)
	assert.InDelta(t, 0.5, cfg.SandboxCPUQuota, 1e-9)
	assert.InDelta(t, 0.7, cfg.PatternSuccessThreshold, 1e-9)
	assert.InDelta(t, 0.10, cfg.MinCapabilityOverlap, 1e-9)
	assert.InDelta(t, 0.9, cfg.ConsensusThreshold, 1e-9)
}

func TestDefaultMemoryConfig(t *testing.T) {
	cfg := DefaultMemoryConfig()

	assert.Equal(t, 10, cfg.ShortTermCap)
	assert.Equal(t, 2000, cfg.MidTermCap)
	assert.Equal(t, 100, cfg.LongTermCap)
	assert.InDelta(t, 5.0, cfg.MidTermHeatThreshold, 1e-9)
}
