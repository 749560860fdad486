// Package refine implements early termination for iterative refinement
// loops. A session records per-round quality scores; the terminator stops the
// loop when quality plateaus or the round budget is exhausted.
package refine

import "fmt"

const epsilon = 1e-9

// Config bounds a refinement session.
type Config struct {
	MinRounds            int     `yaml:"min_rounds"`
	MaxRounds            int     `yaml:"max_rounds"`
	ImprovementThreshold float64 `yaml:"improvement_threshold"`
}

// DefaultConfig returns the default termination bounds.
func DefaultConfig() Config {
	return Config{
		MinRounds:            2,
		MaxRounds:            4,
		ImprovementThreshold: 0.05,
	}
}

// Validate checks the config ranges.
func (c Config) Validate() error {
	if c.MinRounds < 1 {
		return fmt.Errorf("min_rounds must be >= 1, got %d", c.MinRounds)
	}
	if c.MaxRounds < c.MinRounds {
		return fmt.Errorf("max_rounds (%d) must be >= min_rounds (%d)", c.MaxRounds, c.MinRounds)
	}
	if c.ImprovementThreshold <= 0 {
		return fmt.Errorf("improvement_threshold must be positive, got %v", c.ImprovementThreshold)
	}
	return nil
}

// Decision is the terminator's verdict after a recorded round.
type Decision string

const (
	DecisionContinue    Decision = "continue"
	DecisionStopPlateau Decision = "stop_plateau"
	DecisionStopMax     Decision = "stop_max_rounds"
)

// State tracks a refinement session's lifecycle.
type State string

const (
	StateInitial           State = "initial"
	StateRefining          State = "refining"
	StateTerminatedOK      State = "terminated_ok"
	StateTerminatedPlateau State = "terminated_plateau"
	StateTerminatedMax     State = "terminated_max"
	StateFailed            State = "failed"
)

// Session tracks one refinement loop. Not safe for concurrent use; a session
// belongs to a single in-flight request.
type Session struct {
	cfg    Config
	scores []float64
	state  State
}

// NewSession starts a session with the given bounds.
func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg, state: StateInitial}
}

// RecordRound appends a round's quality score and returns the termination
// decision. After round r >= MinRounds the relative improvement over the
// previous round is compared against the threshold; a shortfall stops the
// loop as a plateau.
func (s *Session) RecordRound(score float64) Decision {
	s.scores = append(s.scores, score)
	s.state = StateRefining

	round := len(s.scores)

	if round >= s.cfg.MaxRounds {
		s.state = StateTerminatedMax
		return DecisionStopMax
	}
	if round < s.cfg.MinRounds {
		return DecisionContinue
	}
	// With min_rounds 1 the first round clears the minimum but has no
	// baseline to compare against.
	if round < 2 {
		return DecisionContinue
	}

	prev := s.scores[round-2]
	delta := (score - prev) / max(prev, epsilon)
	if delta < s.cfg.ImprovementThreshold {
		s.state = StateTerminatedPlateau
		return DecisionStopPlateau
	}

	return DecisionContinue
}

// Complete marks a session that produced an accepted result.
func (s *Session) Complete() {
	if s.state == StateRefining || s.state == StateInitial {
		s.state = StateTerminatedOK
	}
}

// Fail marks a session whose executor errored.
func (s *Session) Fail() {
	s.state = StateFailed
}

// State returns the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// Rounds returns the number of recorded rounds.
func (s *Session) Rounds() int { return len(s.scores) }

// Scores returns the recorded per-round scores.
func (s *Session) Scores() []float64 { return s.scores }

// BestScore returns the highest recorded score, or 0 for an empty session.
func (s *Session) BestScore() float64 {
	best := 0.0
	for _, sc := range s.scores {
		if sc > best {
			best = sc
		}
	}
	return best
}
