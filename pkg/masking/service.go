package masking

import (
	"encoding/json"
	"log/slog"

	"github.com/agentfoundry/maestro/pkg/config"
)

// Service applies data masking to spend metadata, payment receipts and task
// payloads before they reach the audit trail or persisted logs. Created once
// at application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	enabled            bool
	patternGroup       string
	patterns           map[string]*CompiledPattern
	patternGroups      map[string][]string
	codeMaskers        map[string]Masker
	customPatternNames []string
}

// NewService creates a masking service with compiled patterns and registered
// maskers. All patterns are compiled eagerly at creation time. Invalid
// patterns are logged and skipped.
func NewService(cfg *config.MaskingDefaults) *Service {
	s := &Service{
		patterns:      make(map[string]*CompiledPattern),
		patternGroups: config.GetBuiltinConfig().PatternGroups,
		codeMaskers:   make(map[string]Masker),
	}

	if cfg != nil {
		s.enabled = cfg.Enabled
		s.patternGroup = cfg.PatternGroup
		s.compileCustomPatterns(cfg.CustomPatterns)
	}

	s.compileBuiltinPatterns()
	s.registerMasker(&JSONCredentialMasker{})

	slog.Info("Masking service initialized",
		"enabled", s.enabled,
		"pattern_group", s.patternGroup,
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers))

	return s
}

// Enabled reports whether masking is configured on.
func (s *Service) Enabled() bool {
	return s.enabled
}

// MaskMetadata masks a metadata map destined for the audit trail or a payment
// receipt. Returns the masked copy. On masking failure the metadata is
// replaced wholesale with a redaction notice (fail-closed), since audit
// entries outlive the request that produced them.
func (s *Service) MaskMetadata(metadata map[string]interface{}) map[string]interface{} {
	if !s.enabled || len(metadata) == 0 {
		return metadata
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		slog.Error("Metadata masking failed to serialize, redacting (fail-closed)", "error", err)
		return map[string]interface{}{"redacted": "metadata could not be safely processed"}
	}

	masked := s.MaskText(string(raw))

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(masked), &out); err != nil {
		slog.Error("Metadata masking produced invalid JSON, redacting (fail-closed)", "error", err)
		return map[string]interface{}{"redacted": "metadata could not be safely processed"}
	}

	return out
}

// MaskText applies the configured pattern group to free-form text. Returns
// the input unchanged when masking is disabled or no patterns resolve
// (fail-open; callers use this for payloads that must survive masking bugs).
func (s *Service) MaskText(text string) string {
	if !s.enabled || text == "" {
		return text
	}

	resolved := s.resolveGroup(s.patternGroup)
	if len(resolved.codeMaskerNames) == 0 && len(resolved.regexPatterns) == 0 {
		return text
	}

	masked := text

	// Phase 1: code-based maskers (structural awareness)
	for _, maskerName := range resolved.codeMaskerNames {
		masker, ok := s.codeMaskers[maskerName]
		if !ok {
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	// Phase 2: regex patterns (general sweep)
	for _, pattern := range resolved.regexPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked
}

// registerMasker registers a code-based masker by its name.
func (s *Service) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}
