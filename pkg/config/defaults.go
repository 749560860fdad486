package config

// Defaults groups system-wide default values resolved from YAML with
// built-in fallbacks.
type Defaults struct {
	// Agent used when a task names none.
	Agent string `yaml:"agent,omitempty"`

	// UserID used as the memory namespace when a request carries none.
	UserID string `yaml:"user_id,omitempty"`

	// RoutingPolicy: "budget" (default) or "quality".
	RoutingPolicy string `yaml:"routing_policy,omitempty"`

	// AllowFreeTier permits routing trivial/easy tasks to a FREE local tier.
	AllowFreeTier *bool `yaml:"allow_free_tier,omitempty"`

	// ContextStripThreshold: context is flagged invalid when the quality
	// linter would strip more than this share of tokens.
	ContextStripThreshold float64 `yaml:"context_strip_threshold,omitempty"`

	// Masking controls metadata redaction before audit/receipt logging.
	Masking *MaskingDefaults `yaml:"masking,omitempty"`
}

// MaskingDefaults configures the redaction pattern group applied to spend
// metadata.
type MaskingDefaults struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroup   string           `yaml:"pattern_group"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// BuiltinConfig holds the built-in component definitions merged beneath
// user-defined YAML (user overrides built-in).
type BuiltinConfig struct {
	Agents       map[string]*AgentConfig
	LLMProviders map[string]*LLMProviderConfig

	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
	CodeMaskers     []string

	DefaultAgent         string
	DefaultUserID        string
	DefaultRoutingPolicy string
}

// GetBuiltinConfig returns the built-in agents and providers shipped with the
// control plane. These cover the core specialist population; deployments add
// or override via maestro.yaml / llm-providers.yaml.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		DefaultAgent:         "builder",
		DefaultUserID:        "default",
		DefaultRoutingPolicy: "budget",
		MaskingPatterns:      builtinMaskingPatterns(),
		PatternGroups:        builtinPatternGroups(),
		CodeMaskers:          []string{"json_credentials"},
		Agents: map[string]*AgentConfig{
			"spec": {
				Description:  "Turns product ideas into build specifications",
				Capabilities: []string{"planning", "writing", "analysis"},
				Tools:        []string{"web_search", "doc_store"},
			},
			"builder": {
				Description:  "Implements and ships features",
				Capabilities: []string{"coding", "testing", "deployment"},
				Tools:        []string{"sandbox", "repo", "ci"},
			},
			"marketing": {
				Description:  "Produces campaigns and creative assets",
				Capabilities: []string{"writing", "creative", "analytics"},
				Tools:        []string{"image_gen", "ad_platform"},
			},
			"support": {
				Description:  "Handles user questions and escalations",
				Capabilities: []string{"conversation", "triage"},
				Tools:        []string{"ticketing", "kb_search"},
			},
			"content": {
				Description:  "Writes long-form content",
				Capabilities: []string{"writing", "research"},
				Tools:        []string{"web_search", "doc_store"},
			},
			"research": {
				Description:  "Surveys literature and market data",
				Capabilities: []string{"research", "analysis", "summarization"},
				Tools:        []string{"web_search", "paper_cache"},
			},
		},
		LLMProviders: map[string]*LLMProviderConfig{
			"local-free": {
				Tier:             "FREE",
				Type:             "local",
				Model:            "llama-3.1-8b-instruct",
				PricePer1MTokens: 0,
			},
			"ultra-cheap": {
				Tier:             "ULTRA_CHEAP",
				Type:             "openai",
				Model:            "gpt-4o-mini",
				PricePer1MTokens: 0.15,
				APIKeyEnv:        "OPENAI_API_KEY",
			},
			"cheap": {
				Tier:             "CHEAP",
				Type:             "google",
				Model:            "gemini-2.0-flash",
				PricePer1MTokens: 0.30,
				APIKeyEnv:        "GOOGLE_API_KEY",
			},
			"standard": {
				Tier:             "STANDARD",
				Type:             "anthropic",
				Model:            "claude-sonnet-4-5",
				PricePer1MTokens: 3.0,
				APIKeyEnv:        "ANTHROPIC_API_KEY",
			},
			"premium": {
				Tier:             "PREMIUM",
				Type:             "openai",
				Model:            "gpt-5",
				PricePer1MTokens: 10.0,
				APIKeyEnv:        "OPENAI_API_KEY",
			},
			"ultra-premium": {
				Tier:             "ULTRA_PREMIUM",
				Type:             "anthropic",
				Model:            "claude-opus-4-5",
				PricePer1MTokens: 25.0,
				APIKeyEnv:        "ANTHROPIC_API_KEY",
			},
		},
	}
}

func builtinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|passphrase)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"private_key": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+PRIVATE KEY-----.*?-----END [A-Z ]+PRIVATE KEY-----`,
			Replacement: `__MASKED_PRIVATE_KEY__`,
			Description: "PEM private keys",
		},
		"wallet_key": {
			Pattern:     `(?i)(?:wallet[_-]?key|signer[_-]?key)["']?\s*[:=]\s*["']?(0x[A-Fa-f0-9]{40,64})["']?`,
			Replacement: `"wallet_key": "__MASKED_WALLET_KEY__"`,
			Description: "Chain wallet keys",
		},
		"card_number": {
			Pattern:     `\b(?:\d[ -]?){13,19}\b`,
			Replacement: `__MASKED_CARD_NUMBER__`,
			Description: "Payment card numbers",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
	}
}

// builtinPatternGroups returns predefined groups of masking patterns. Group
// members reference either MaskingPatterns (regex) or CodeMaskers (structural).
func builtinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":    {"api_key", "password"},
		"secrets":  {"json_credentials", "api_key", "password", "token", "private_key", "secret_key"},
		"security": {"json_credentials", "api_key", "password", "token", "private_key", "secret_key", "wallet_key", "email"},
		"payments": {"card_number", "wallet_key", "api_key", "token"},
		"all":      {"json_credentials", "api_key", "password", "token", "email", "private_key", "wallet_key", "card_number", "secret_key"},
	}
}
