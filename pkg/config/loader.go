package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// MaestroYAMLConfig represents the complete maestro.yaml file structure.
type MaestroYAMLConfig struct {
	Agents        map[string]*AgentConfig `yaml:"agents"`
	Defaults      *Defaults               `yaml:"defaults"`
	Queue         *QueueConfig            `yaml:"queue"`
	Budget        *BudgetConfig           `yaml:"budget"`
	Memory        *MemoryConfig           `yaml:"memory"`
	Evolution     *EvolutionConfig        `yaml:"evolution"`
	Observability *ObservabilityConfig    `yaml:"observability"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure.
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Merge built-in + user-defined configurations
//  4. Build in-memory registries
//  5. Apply default values
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	// 1. Load maestro.yaml (agents, defaults, subsystem tunables)
	maestroConfig, err := loader.loadMaestroYAML()
	if err != nil {
		return nil, NewLoadError("maestro.yaml", err)
	}

	// 2. Load llm-providers.yaml (optional; built-ins cover every tier)
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, maestroConfig.Agents)
	providers := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Build registries
	agentRegistry := NewAgentRegistry(agents)
	llmProviderRegistry := NewLLMProviderRegistry(providers)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := maestroConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Agent == "" {
		defaults.Agent = builtin.DefaultAgent
	}
	if defaults.UserID == "" {
		defaults.UserID = builtin.DefaultUserID
	}
	if defaults.RoutingPolicy == "" {
		defaults.RoutingPolicy = builtin.DefaultRoutingPolicy
	}
	if defaults.ContextStripThreshold == 0 {
		defaults.ContextStripThreshold = 0.6
	}
	if defaults.Masking == nil {
		defaults.Masking = &MaskingDefaults{
			Enabled:      true,
			PatternGroup: "security",
		}
	}

	// 7. Resolve subsystem configs (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve unset defaults.
	queueConfig, err := resolveConfig(DefaultQueueConfig(), maestroConfig.Queue, "queue")
	if err != nil {
		return nil, err
	}
	budgetConfig, err := resolveConfig(DefaultBudgetConfig(), maestroConfig.Budget, "budget")
	if err != nil {
		return nil, err
	}
	memoryConfig, err := resolveConfig(DefaultMemoryConfig(), maestroConfig.Memory, "memory")
	if err != nil {
		return nil, err
	}
	evolutionConfig, err := resolveConfig(DefaultEvolutionConfig(), maestroConfig.Evolution, "evolution")
	if err != nil {
		return nil, err
	}
	observabilityConfig, err := resolveConfig(DefaultObservabilityConfig(), maestroConfig.Observability, "observability")
	if err != nil {
		return nil, err
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Budget:              budgetConfig,
		Memory:              memoryConfig,
		Evolution:           evolutionConfig,
		Observability:       observabilityConfig,
		AgentRegistry:       agentRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// resolveConfig merges a user-provided config into built-in defaults
// (non-zero values override).
func resolveConfig[T any](defaults *T, user *T, name string) (*T, error) {
	if user == nil {
		return defaults, nil
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return defaults, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any, optional bool) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if optional {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadMaestroYAML() (*MaestroYAMLConfig, error) {
	var config MaestroYAMLConfig
	config.Agents = make(map[string]*AgentConfig)

	if err := l.loadYAML("maestro.yaml", &config, false); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]*LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig
	config.LLMProviders = make(map[string]*LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config, true); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// mergeAgents merges user-defined agents over built-in agents.
func mergeAgents(builtin, user map[string]*AgentConfig) map[string]*AgentConfig {
	merged := make(map[string]*AgentConfig, len(builtin)+len(user))
	for k, v := range builtin {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	return merged
}

// mergeLLMProviders merges user-defined providers over built-in providers.
func mergeLLMProviders(builtin, user map[string]*LLMProviderConfig) map[string]*LLMProviderConfig {
	merged := make(map[string]*LLMProviderConfig, len(builtin)+len(user))
	for k, v := range builtin {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	return merged
}
