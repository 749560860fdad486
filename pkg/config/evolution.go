package config

import "time"

// EvolutionConfig contains evolution-engine tunables. Heuristic thresholds
// (capability overlap, pattern success) are deliberately configuration, not
// constants.
type EvolutionConfig struct {
	// MaxGenerations bounds one evolution run.
	MaxGenerations int `yaml:"max_generations"`

	// PopulationSize is the number of variants evaluated per generation.
	PopulationSize int `yaml:"population_size"`

	// AcceptanceThreshold is the minimum effective improvement
	// (raw delta x rubric reward) for accepting a variant.
	AcceptanceThreshold float64 `yaml:"acceptance_threshold"`

	// Rubric weights; must sum to 1.0 within 1%.
	CorrectnessWeight    float64 `yaml:"correctness_weight"`
	QualityWeight        float64 `yaml:"quality_weight"`
	RobustnessWeight     float64 `yaml:"robustness_weight"`
	GeneralizationWeight float64 `yaml:"generalization_weight"`

	// Sandbox resource caps.
	SandboxTimeout       time.Duration `yaml:"sandbox_timeout"`
	SandboxMemoryLimitMB int           `yaml:"sandbox_memory_limit_mb"`
	SandboxCPUQuota      float64       `yaml:"sandbox_cpu_quota"`

	// Memory-aware evolution.
	PatternSuccessThreshold float64 `yaml:"pattern_success_threshold"`
	MaxSeedPatterns         int     `yaml:"max_seed_patterns"`
	MinCapabilityOverlap    float64 `yaml:"min_capability_overlap"`
	ConsensusThreshold      float64 `yaml:"consensus_threshold"`

	// EvolvedDir is the root for accepted evolved artifacts.
	EvolvedDir string `yaml:"evolved_dir"`
}

// DefaultEvolutionConfig returns the built-in evolution defaults.
func DefaultEvolutionConfig() *EvolutionConfig {
	return &EvolutionConfig{
		MaxGenerations:          100,
		PopulationSize:          5,
		AcceptanceThreshold:     0.01,
		CorrectnessWeight:       0.4,
		QualityWeight:           0.3,
		RobustnessWeight:        0.2,
		GeneralizationWeight:    0.1,
		SandboxTimeout:          30 * time.Second,
		SandboxMemoryLimitMB:    512,
		SandboxCPUQuota:         0.5,
		PatternSuccessThreshold: 0.7,
		MaxSeedPatterns:         5,
		MinCapabilityOverlap:    0.10,
		ConsensusThreshold:      0.9,
		EvolvedDir:              "agents/evolved",
	}
}
