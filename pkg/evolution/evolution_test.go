package evolution

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/config"
)

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "qa_agent-v2", "qa_agent-v2", false},
		{"spaces and dots", "my agent v1.2", "my_agent_v1_2", false},
		{"traversal", "../../etc/passwd", "______etc_passwd", false},
		{"separators", `a/b\c`, "a_b_c", false},
		{"empty", "", "", true},
		{"only specials", "../..", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeComponent(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "..")
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, `\`)
		})
	}
}

func TestClassifyImprovement(t *testing.T) {
	tests := []struct {
		diagnosis string
		want      ImprovementType
	}{
		{"unhandled exception when the API times out", ImprovementErrorHandling},
		{"bug: wrong total computed for empty carts", ImprovementBugFix},
		{"response latency is too high under load", ImprovementOptimization},
		{"heavy code duplication across handlers", ImprovementRefactor},
		{"users want CSV export", ImprovementNewFeature},
		{"", ImprovementNewFeature},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyImprovement(tt.diagnosis), tt.diagnosis)
	}
}

// error_handling outranks bug_fix when a diagnosis matches both.
func TestClassifyErrorHandlingPrecedence(t *testing.T) {
	diagnosis := "bug: crash from unhandled exception in the parser"
	assert.Equal(t, ImprovementErrorHandling, classifyImprovement(diagnosis))
}

func TestSelectParentsFavorsHigherScores(t *testing.T) {
	archive := []Parent{
		{Version: "weak", BenchmarkScore: 0.2},
		{Version: "strong", BenchmarkScore: 0.9},
	}

	// Deterministic uniform sweep over [0,1).
	i := 0
	randFn := func() float64 {
		i++
		return float64(i%100) / 100.0
	}

	selected := selectParents(archive, 100, randFn)
	require.Len(t, selected, 100)

	strong := 0
	for _, parent := range selected {
		if parent.Version == "strong" {
			strong++
		}
	}
	// exp(10*0.4) / (exp(10*0.4) + exp(-10*0.3)) is essentially 1.
	assert.Greater(t, strong, 95)
}

func TestSelectParentsEmptyArchive(t *testing.T) {
	assert.Nil(t, selectParents(nil, 5, func() float64 { return 0 }))
}

type fixedVerifier struct {
	scores RubricScores
	err    error
}

func (v fixedVerifier) ScoreVariant(context.Context, string, string) (*RubricScores, error) {
	if v.err != nil {
		return nil, v.err
	}
	scores := v.scores
	return &scores, nil
}

func TestRubricGateWeightValidation(t *testing.T) {
	cfg := config.DefaultEvolutionConfig()
	cfg.CorrectnessWeight = 0.7

	_, err := NewRubricGate(cfg, fixedVerifier{})
	assert.Error(t, err)

	_, err = NewRubricGate(config.DefaultEvolutionConfig(), nil)
	assert.Error(t, err)
}

func TestRubricGateWeightedReward(t *testing.T) {
	gate, err := NewRubricGate(config.DefaultEvolutionConfig(), fixedVerifier{
		scores: RubricScores{Correctness: 1.0, Quality: 0.5, Robustness: 0.5, Generalization: 0.0},
	})
	require.NoError(t, err)

	verdict, err := gate.Evaluate(context.Background(), "def run(): return compute()", "diag")
	require.NoError(t, err)
	// 0.4*1.0 + 0.3*0.5 + 0.2*0.5 + 0.1*0.0
	assert.InDelta(t, 0.65, verdict.Reward, 1e-9)
	assert.Equal(t, "pass", verdict.Verdict)
}

func TestRubricGateFailsBelowFloor(t *testing.T) {
	gate, err := NewRubricGate(config.DefaultEvolutionConfig(), fixedVerifier{
		scores: RubricScores{Correctness: 0.4, Quality: 0.4, Robustness: 0.4, Generalization: 0.4},
	})
	require.NoError(t, err)

	verdict, err := gate.Evaluate(context.Background(), "code", "diag")
	require.NoError(t, err)
	assert.Equal(t, "fail", verdict.Verdict)
}

func TestRubricGateDetectsShortcuts(t *testing.T) {
	gate, err := NewRubricGate(config.DefaultEvolutionConfig(), fixedVerifier{
		scores: RubricScores{Correctness: 1, Quality: 1, Robustness: 1, Generalization: 1},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		code string
	}{
		{"hardcoded output", "expected_output = \"42\"\nreturn expected_output"},
		{"test mode branch", "if os.environ.get('TEST_MODE'):\n    pass"},
		{"trivial return", "def run():\n    return 0\n"},
		{"test data access", "data = open('testdata/expected.json')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, evalErr := gate.Evaluate(context.Background(), tt.code, "")
			require.NoError(t, evalErr)
			assert.Equal(t, "fail", verdict.Verdict)
			assert.Zero(t, verdict.Reward)
			assert.NotEmpty(t, verdict.Shortcuts)
		})
	}

	clean := "def run(items):\n    total = sum(i.price for i in items)\n    return apply_discounts(total)\n"
	verdict, err := gate.Evaluate(context.Background(), clean, "")
	require.NoError(t, err)
	assert.Equal(t, "pass", verdict.Verdict)
}

func TestCapabilityOverlap(t *testing.T) {
	assert.InDelta(t, 1.0, capabilityOverlap([]string{"web"}, []string{"web"}), 1e-9)
	assert.InDelta(t, 1.0/3.0, capabilityOverlap([]string{"web", "ocr"}, []string{"web", "payments"}), 1e-9)
	assert.Zero(t, capabilityOverlap(nil, []string{"web"}))
	assert.Zero(t, capabilityOverlap([]string{"web"}, []string{"payments"}))
}

func TestStrategyDescription(t *testing.T) {
	attempt := &Attempt{ImprovementType: ImprovementBugFix, ParentVersion: "baseline"}
	assert.True(t, strings.HasPrefix(strategyDescription(attempt), "bug_fix"))

	attempt.Diagnosis = "selector drift on vendor pages"
	assert.Contains(t, strategyDescription(attempt), "selector drift")
}
