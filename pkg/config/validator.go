package config

import (
	"fmt"
	"math"
)

// Validator validates a fully-resolved Config.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation check and returns the first failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateAgents(); err != nil {
		return err
	}
	if err := v.validateProviders(); err != nil {
		return err
	}
	if err := v.validateQueue(); err != nil {
		return err
	}
	if err := v.validateBudget(); err != nil {
		return err
	}
	if err := v.validateMemory(); err != nil {
		return err
	}
	if err := v.validateEvolution(); err != nil {
		return err
	}
	if err := v.validateObservability(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateAgents() error {
	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		if agent.LLMProvider != "" && !v.hasProvider(agent.LLMProvider) {
			return NewValidationError("agent", name, "llm_provider",
				fmt.Errorf("%w: %s", ErrLLMProviderNotFound, agent.LLMProvider))
		}
		if agent.MaxCorrectionAttempts != nil && *agent.MaxCorrectionAttempts < 1 {
			return NewValidationError("agent", name, "max_correction_attempts",
				fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
		if agent.ReflectionThreshold != nil && !inUnitRange(*agent.ReflectionThreshold) {
			return NewValidationError("agent", name, "reflection_threshold",
				fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
		}
		if agent.ConsensusThreshold != nil && !inUnitRange(*agent.ConsensusThreshold) {
			return NewValidationError("agent", name, "consensus_threshold",
				fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
		}
		if agent.MonthlyLimit != nil && *agent.MonthlyLimit <= 0 {
			return NewValidationError("agent", name, "monthly_limit",
				fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateProviders() error {
	registry := v.cfg.LLMProviderRegistry
	for _, tier := range []string{"ULTRA_CHEAP", "CHEAP", "STANDARD", "PREMIUM", "ULTRA_PREMIUM"} {
		if !registry.HasTier(tier) {
			return NewValidationError("llm_provider", tier, "tier",
				fmt.Errorf("%w: no provider serves tier", ErrMissingRequiredField))
		}
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return NewValidationError("queue", "queue", "", fmt.Errorf("queue configuration is nil"))
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return NewValidationError("queue", "queue", "worker_count",
			fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount))
	}
	if q.MaxConcurrentRuns < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_runs",
			fmt.Errorf("max_concurrent_runs must be at least 1, got %d", q.MaxConcurrentRuns))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval",
			fmt.Errorf("poll_interval must be positive"))
	}
	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue", "queue", "poll_interval_jitter",
			fmt.Errorf("poll_interval_jitter must be non-negative"))
	}
	if q.RunTimeout <= 0 {
		return NewValidationError("queue", "queue", "run_timeout",
			fmt.Errorf("run_timeout must be positive"))
	}
	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "queue", "graceful_shutdown_timeout",
			fmt.Errorf("graceful_shutdown_timeout must be positive"))
	}
	if q.OrphanDetectionInterval <= 0 {
		return NewValidationError("queue", "queue", "orphan_detection_interval",
			fmt.Errorf("orphan_detection_interval must be positive"))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "queue", "orphan_threshold",
			fmt.Errorf("orphan_threshold must be positive"))
	}
	return nil
}

func (v *Validator) validateBudget() error {
	b := v.cfg.Budget
	if b == nil {
		return NewValidationError("budget", "budget", "", fmt.Errorf("budget configuration is nil"))
	}
	if b.DefaultMonthlyLimit <= 0 {
		return NewValidationError("budget", "budget", "default_monthly_limit",
			fmt.Errorf("default_monthly_limit must be positive"))
	}
	if b.AutoApprovalLimit < 0 {
		return NewValidationError("budget", "budget", "auto_approval_limit",
			fmt.Errorf("auto_approval_limit must be non-negative"))
	}
	if b.RequireManualAbove <= b.AutoApprovalLimit {
		return NewValidationError("budget", "budget", "require_manual_above",
			fmt.Errorf("require_manual_above (%v) must exceed auto_approval_limit (%v)",
				b.RequireManualAbove, b.AutoApprovalLimit))
	}
	if b.AuditSecretEnv == "" {
		return NewValidationError("budget", "budget", "audit_secret_env",
			fmt.Errorf("%w: audit_secret_env", ErrMissingRequiredField))
	}
	for service, r := range b.ServiceCostRanges {
		if r[0] < 0 || r[1] < r[0] {
			return NewValidationError("budget", service, "service_cost_ranges",
				fmt.Errorf("%w: range must satisfy 0 <= min <= max", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateMemory() error {
	m := v.cfg.Memory
	if m == nil {
		return NewValidationError("memory", "memory", "", fmt.Errorf("memory configuration is nil"))
	}
	if m.ShortTermCap < 1 || m.MidTermCap < 1 || m.LongTermCap < 1 {
		return NewValidationError("memory", "memory", "caps",
			fmt.Errorf("tier caps must be at least 1"))
	}
	if m.MidTermHeatThreshold <= 0 {
		return NewValidationError("memory", "memory", "mid_term_heat_threshold",
			fmt.Errorf("mid_term_heat_threshold must be positive"))
	}
	return nil
}

func (v *Validator) validateEvolution() error {
	e := v.cfg.Evolution
	if e == nil {
		return NewValidationError("evolution", "evolution", "", fmt.Errorf("evolution configuration is nil"))
	}
	if e.MaxGenerations < 1 {
		return NewValidationError("evolution", "evolution", "max_generations",
			fmt.Errorf("max_generations must be at least 1"))
	}
	if e.PopulationSize < 1 {
		return NewValidationError("evolution", "evolution", "population_size",
			fmt.Errorf("population_size must be at least 1"))
	}
	sum := e.CorrectnessWeight + e.QualityWeight + e.RobustnessWeight + e.GeneralizationWeight
	if math.Abs(sum-1.0) > 0.01 {
		return NewValidationError("evolution", "evolution", "rubric_weights",
			fmt.Errorf("rubric weights must sum to 1.0 within 1%%, got %v", sum))
	}
	if e.SandboxTimeout <= 0 {
		return NewValidationError("evolution", "evolution", "sandbox_timeout",
			fmt.Errorf("sandbox_timeout must be positive"))
	}
	if !inUnitRange(e.PatternSuccessThreshold) || !inUnitRange(e.MinCapabilityOverlap) || !inUnitRange(e.ConsensusThreshold) {
		return NewValidationError("evolution", "evolution", "thresholds",
			fmt.Errorf("pattern/overlap/consensus thresholds must be in [0,1]"))
	}
	return nil
}

func (v *Validator) validateObservability() error {
	o := v.cfg.Observability
	if o == nil {
		return NewValidationError("observability", "observability", "", fmt.Errorf("observability configuration is nil"))
	}
	if o.SamplingRatio < 0 || o.SamplingRatio > 1 {
		return NewValidationError("observability", "observability", "sampling_ratio",
			fmt.Errorf("sampling_ratio must be in [0,1], got %v", o.SamplingRatio))
	}
	if o.LogDir == "" {
		return NewValidationError("observability", "observability", "log_dir",
			fmt.Errorf("%w: log_dir", ErrMissingRequiredField))
	}
	return nil
}

func (v *Validator) hasProvider(name string) bool {
	_, err := v.cfg.LLMProviderRegistry.Get(name)
	return err == nil
}

func inUnitRange(f float64) bool {
	return f >= 0 && f <= 1
}
