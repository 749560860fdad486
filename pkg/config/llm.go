package config

import (
	"fmt"
	"sync"
	"time"
)

// LLMProviderConfig defines one LLM backend reachable through the gRPC LLM
// service. Providers are bound to model tiers; the router picks a tier, the
// registry resolves the provider.
type LLMProviderConfig struct {
	// Tier this provider serves (FREE, ULTRA_CHEAP, CHEAP, STANDARD, PREMIUM, ULTRA_PREMIUM)
	Tier string `yaml:"tier"`

	// Provider type (e.g. "openai", "google", "anthropic", "local")
	Type string `yaml:"type"`

	// Model identifier passed to the provider
	Model string `yaml:"model"`

	// PricePer1MTokens in USD; 0 for local/free tiers
	PricePer1MTokens float64 `yaml:"price_per_1m_tokens"`

	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// BaseURL overrides the provider endpoint
	BaseURL string `yaml:"base_url,omitempty"`

	// Temperature default for this provider
	Temperature *float64 `yaml:"temperature,omitempty"`

	// MaxTokens default completion budget
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Timeout per LLM call
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// MaxRetries per LLM call
	MaxRetries int `yaml:"max_retries,omitempty"`

	// AllowCannedFallback permits a canned response when the provider fails.
	// Disabled by default; enable only for non-critical agents.
	AllowCannedFallback bool `yaml:"allow_canned_fallback,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations with thread-safe
// access and a tier index.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	byTier    map[string]string // tier -> provider name
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry.
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	copied := make(map[string]*LLMProviderConfig, len(providers))
	byTier := make(map[string]string, len(providers))
	for k, v := range providers {
		copied[k] = v
		if v.Tier != "" {
			byTier[v.Tier] = k
		}
	}
	return &LLMProviderRegistry{providers: copied, byTier: byTier}
}

// Get retrieves a provider configuration by name (thread-safe).
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetByTier retrieves the provider serving a model tier (thread-safe).
func (r *LLMProviderRegistry) GetByTier(tier string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, exists := r.byTier[tier]
	if !exists {
		return nil, fmt.Errorf("%w: no provider for tier %s", ErrLLMProviderNotFound, tier)
	}
	return r.providers[name], nil
}

// HasTier checks whether any provider serves the given tier.
func (r *LLMProviderRegistry) HasTier(tier string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byTier[tier]
	return exists
}

// Len returns the number of providers in the registry (thread-safe).
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
