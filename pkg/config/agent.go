// Package config provides configuration management for the Maestro control
// plane, including agent, LLM provider, budget, memory, and evolution
// configurations.
package config

import (
	"fmt"
	"sync"
)

// AgentConfig defines one specialist agent (metadata only — the runtime
// composes behavior from the shared pipeline, not per-agent subclasses).
type AgentConfig struct {
	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Capabilities advertised by this agent (used for cross-agent pattern reuse)
	Capabilities []string `yaml:"capabilities,omitempty"`

	// Instructions is the agent's system prompt / behavioral contract
	Instructions string `yaml:"instructions,omitempty"`

	// Tools this agent may invoke
	Tools []string `yaml:"tools,omitempty"`

	// LLMProvider overrides tier-based provider selection when set
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// FineTunedAdapter names a registered adapter preferred over shared tiers
	FineTunedAdapter string `yaml:"fine_tuned_adapter,omitempty"`

	// MaxCorrectionAttempts bounds the self-correction loop (default 3)
	MaxCorrectionAttempts *int `yaml:"max_correction_attempts,omitempty"`

	// ReflectionThreshold: successful runs scoring at or above this promote
	// their strategy into agent memory (default 0.7)
	ReflectionThreshold *float64 `yaml:"reflection_threshold,omitempty"`

	// ConsensusThreshold: scores at or above this additionally promote into
	// the shared consensus namespace (default 0.9)
	ConsensusThreshold *float64 `yaml:"consensus_threshold,omitempty"`

	// MonthlyLimit overrides the default monthly budget for this agent
	MonthlyLimit *float64 `yaml:"monthly_limit,omitempty"`
}

// AgentRegistry stores agent configurations in memory with thread-safe access.
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry.
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{agents: copied}
}

// Get retrieves an agent configuration by name (thread-safe).
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy).
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe).
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Len returns the number of agents in the registry (thread-safe).
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// Names returns the registered agent names (thread-safe).
func (r *AgentRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for k := range r.agents {
		names = append(names, k)
	}
	return names
}
