package evolution

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"github.com/agentfoundry/maestro/pkg/config"
)

// RubricScores are the verifier's per-criterion scores, each in [0,1].
type RubricScores struct {
	Correctness    float64 `json:"correctness"`
	Quality        float64 `json:"quality"`
	Robustness     float64 `json:"robustness"`
	Generalization float64 `json:"generalization"`
	Feedback       string  `json:"feedback,omitempty"`
}

// Verifier scores a variant against the rubric criteria.
type Verifier interface {
	ScoreVariant(ctx context.Context, code, diagnosis string) (*RubricScores, error)
}

// RubricVerdict is the gate's structured output.
type RubricVerdict struct {
	Verdict   string        `json:"verdict"` // pass | fail
	Reward    float64       `json:"reward"`
	Scores    *RubricScores `json:"scores"`
	Shortcuts []string      `json:"shortcuts,omitempty"`
	Feedback  string        `json:"feedback,omitempty"`
}

// passFloor is the minimum weighted reward for a pass verdict.
const passFloor = 0.5

// Shortcut patterns a variant must not contain: hardcoded expected outputs,
// test-mode branches, trivial returns, direct test-data access.
var shortcutPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"hardcoded_output", regexp.MustCompile(`(?i)(expected_output|expected_result)\s*=`)},
	{"test_mode_branch", regexp.MustCompile(`(?i)if\s+.*(test_mode|is_test|under_test|unit_test)`)},
	{"trivial_return", regexp.MustCompile(`(?im)^\s*return\s+(0|1|true|false|none|null|nil|""|'')\s*$`)},
	{"test_data_access", regexp.MustCompile(`(?i)(test_data|testdata|fixtures?/|golden/)`)},
}

// RubricGate combines verifier scores with shortcut detection into a
// weighted reward and a pass/fail verdict.
type RubricGate struct {
	cfg      *config.EvolutionConfig
	verifier Verifier
}

// NewRubricGate validates the configured weights (must sum to 1.0 within
// 1%) and builds the gate.
func NewRubricGate(cfg *config.EvolutionConfig, verifier Verifier) (*RubricGate, error) {
	sum := cfg.CorrectnessWeight + cfg.QualityWeight + cfg.RobustnessWeight + cfg.GeneralizationWeight
	if math.Abs(sum-1.0) > 0.01 {
		return nil, fmt.Errorf("rubric weights sum to %f, want 1.0 within 1%%", sum)
	}
	if verifier == nil {
		return nil, fmt.Errorf("verifier is required")
	}
	return &RubricGate{cfg: cfg, verifier: verifier}, nil
}

// Evaluate scores a variant. A detected shortcut zeroes the reward and
// fails the verdict regardless of the rubric scores.
func (g *RubricGate) Evaluate(ctx context.Context, code, diagnosis string) (*RubricVerdict, error) {
	scores, err := g.verifier.ScoreVariant(ctx, code, diagnosis)
	if err != nil {
		return nil, fmt.Errorf("verifier failed: %w", err)
	}

	reward := g.cfg.CorrectnessWeight*scores.Correctness +
		g.cfg.QualityWeight*scores.Quality +
		g.cfg.RobustnessWeight*scores.Robustness +
		g.cfg.GeneralizationWeight*scores.Generalization

	shortcuts := detectShortcuts(code)
	verdict := &RubricVerdict{
		Reward:   reward,
		Scores:   scores,
		Feedback: scores.Feedback,
	}

	switch {
	case len(shortcuts) > 0:
		verdict.Verdict = "fail"
		verdict.Reward = 0
		verdict.Shortcuts = shortcuts
	case reward < passFloor:
		verdict.Verdict = "fail"
	default:
		verdict.Verdict = "pass"
	}
	return verdict, nil
}

func detectShortcuts(code string) []string {
	var found []string
	for _, pattern := range shortcutPatterns {
		if pattern.re.MatchString(code) {
			found = append(found, pattern.name)
		}
	}
	return found
}
