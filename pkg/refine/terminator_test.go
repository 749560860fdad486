package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlateauTermination(t *testing.T) {
	s := NewSession(Config{MinRounds: 2, MaxRounds: 5, ImprovementThreshold: 0.05})

	assert.Equal(t, DecisionContinue, s.RecordRound(0.60))
	assert.Equal(t, DecisionContinue, s.RecordRound(0.80))    // delta 0.333
	assert.Equal(t, DecisionStopPlateau, s.RecordRound(0.82)) // delta 0.025

	assert.Equal(t, StateTerminatedPlateau, s.State())
	assert.Equal(t, 3, s.Rounds())

	savings := EstimateCostSavings([]*Session{s}, 0.10)
	assert.Equal(t, 2, savings.RoundsSaved)
	assert.InDelta(t, 0.20, savings.CostSaved, 1e-9)
	assert.InDelta(t, 40.0, savings.PercentSaved, 1e-9)
}

func TestMaxRoundsTermination(t *testing.T) {
	s := NewSession(DefaultConfig())

	assert.Equal(t, DecisionContinue, s.RecordRound(0.10))
	assert.Equal(t, DecisionContinue, s.RecordRound(0.20))
	assert.Equal(t, DecisionContinue, s.RecordRound(0.40))
	assert.Equal(t, DecisionStopMax, s.RecordRound(0.80))
	assert.Equal(t, StateTerminatedMax, s.State())
}

func TestMinRoundsAlwaysContinue(t *testing.T) {
	s := NewSession(Config{MinRounds: 3, MaxRounds: 6, ImprovementThreshold: 0.05})

	// Scores drop, but rounds below the minimum never stop.
	assert.Equal(t, DecisionContinue, s.RecordRound(0.90))
	assert.Equal(t, DecisionContinue, s.RecordRound(0.10))
}

// A session that keeps improving above the threshold must never be stopped by
// the plateau rule before the round budget runs out.
func TestNoPlateauWhileImproving(t *testing.T) {
	s := NewSession(Config{MinRounds: 2, MaxRounds: 10, ImprovementThreshold: 0.05})

	scores := []float64{0.10, 0.20, 0.30, 0.40, 0.50}
	for _, score := range scores {
		assert.Equal(t, DecisionContinue, s.RecordRound(score))
	}
	assert.Equal(t, StateRefining, s.State())
}

func TestSingleMinRoundFirstRoundContinues(t *testing.T) {
	cfg := Config{MinRounds: 1, MaxRounds: 4, ImprovementThreshold: 0.05}
	require.NoError(t, cfg.Validate())

	// The first round clears the minimum but has no previous score; the
	// plateau rule must not apply yet.
	s := NewSession(cfg)
	assert.Equal(t, DecisionContinue, s.RecordRound(0.5))
	assert.Equal(t, StateRefining, s.State())

	assert.Equal(t, DecisionStopPlateau, s.RecordRound(0.5))
}

func TestZeroPreviousScore(t *testing.T) {
	s := NewSession(Config{MinRounds: 2, MaxRounds: 5, ImprovementThreshold: 0.05})

	s.RecordRound(0)
	// Division guards against a zero previous score; any improvement counts.
	assert.Equal(t, DecisionContinue, s.RecordRound(0.1))
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(DefaultConfig())
	assert.Equal(t, StateInitial, s.State())

	s.RecordRound(0.5)
	assert.Equal(t, StateRefining, s.State())

	s.Complete()
	assert.Equal(t, StateTerminatedOK, s.State())

	failed := NewSession(DefaultConfig())
	failed.RecordRound(0.5)
	failed.Fail()
	assert.Equal(t, StateFailed, failed.State())

	// Complete must not overwrite a terminal state.
	failed.Complete()
	assert.Equal(t, StateFailed, failed.State())
}

func TestBestScore(t *testing.T) {
	s := NewSession(Config{MinRounds: 2, MaxRounds: 10, ImprovementThreshold: 0.01})
	s.RecordRound(0.3)
	s.RecordRound(0.7)
	assert.InDelta(t, 0.7, s.BestScore(), 1e-9)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	assert.Error(t, Config{MinRounds: 0, MaxRounds: 4, ImprovementThreshold: 0.05}.Validate())
	assert.Error(t, Config{MinRounds: 3, MaxRounds: 2, ImprovementThreshold: 0.05}.Validate())
	assert.Error(t, Config{MinRounds: 2, MaxRounds: 4, ImprovementThreshold: 0}.Validate())
}

func TestEstimateCostSavingsEmpty(t *testing.T) {
	savings := EstimateCostSavings(nil, 1.0)
	assert.Equal(t, 0, savings.RoundsSaved)
	assert.Zero(t, savings.PercentSaved)
}
