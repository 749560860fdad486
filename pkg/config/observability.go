package config

import "time"

// ObservabilityConfig contains span sampling, metric labelling, and dashboard
// feed settings.
type ObservabilityConfig struct {
	// Service and Environment are merged into every metric as default labels.
	Service     string `yaml:"service"`
	Environment string `yaml:"environment"`

	// SamplingRatio in [0,1]; spans outside the sample become no-ops.
	SamplingRatio float64 `yaml:"sampling_ratio"`

	// AllowedSpanTypes filters which span types are recorded; empty = all.
	AllowedSpanTypes []string `yaml:"allowed_span_types,omitempty"`

	// LogDir is the root for the event log, snapshot, and alert files.
	LogDir string `yaml:"log_dir"`

	// SnapshotInterval is how often the dashboard snapshot is rewritten.
	SnapshotInterval time.Duration `yaml:"snapshot_interval"`
}

// DefaultObservabilityConfig returns the built-in observability defaults.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		Service:          "maestro",
		Environment:      "development",
		SamplingRatio:    1.0,
		LogDir:           "logs/business_generation",
		SnapshotInterval: 30 * time.Second,
	}
}
