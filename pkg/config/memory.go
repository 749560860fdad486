package config

import "time"

// MemoryConfig contains memory substrate tunables. Tier TTLs are fixed by
// the substrate (short 24h, mid 7d, long permanent); caps and promotion
// thresholds are configurable.
type MemoryConfig struct {
	// ShortTermCap bounds short-tier entries per (agent, user).
	ShortTermCap int `yaml:"short_term_cap"`

	// MidTermCap bounds mid-tier entries per (agent, user).
	MidTermCap int `yaml:"mid_term_cap"`

	// LongTermCap bounds long-tier knowledge entries per (agent, user).
	LongTermCap int `yaml:"long_term_cap"`

	// MidTermHeatThreshold: mid entries at or above this heat promote to long.
	MidTermHeatThreshold float64 `yaml:"mid_term_heat_threshold"`

	// Strict surfaces store-connection failures instead of falling back to
	// the bounded in-process store.
	Strict bool `yaml:"strict"`
}

// Fixed tier TTLs, enforced by the substrate rather than callers.
const (
	ShortTermTTL = 24 * time.Hour
	MidTermTTL   = 7 * 24 * time.Hour
)

// DefaultMemoryConfig returns the built-in memory defaults.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		ShortTermCap:         10,
		MidTermCap:           2000,
		LongTermCap:          100,
		MidTermHeatThreshold: 5.0,
	}
}
