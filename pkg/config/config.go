package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and tunables. It is the primary object returned by
// Initialize() and used throughout the control plane.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Subsystem tunables
	Queue         *QueueConfig
	Budget        *BudgetConfig
	Memory        *MemoryConfig
	Evolution     *EvolutionConfig
	Observability *ObservabilityConfig

	// Component registries
	AgentRegistry       *AgentRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Agents       int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// GetProviderForTier retrieves the provider configured for a model tier.
func (c *Config) GetProviderForTier(tier string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.GetByTier(tier)
}
