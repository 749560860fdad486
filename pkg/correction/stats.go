package correction

import (
	"sync"
	"time"
)

// Stats aggregates correction loop outcomes across sessions. Safe for
// concurrent use.
type Stats struct {
	mu sync.Mutex

	totalSessions     int
	firstAttemptValid int
	correctedValid    int
	failed            int
	totalAttempts     int
	totalDuration     time.Duration
}

// Snapshot is a point-in-time copy of the aggregated stats with derived
// rates.
type Snapshot struct {
	TotalSessions           int     `json:"total_sessions"`
	FirstAttemptValid       int     `json:"first_attempt_valid"`
	CorrectedValid          int     `json:"corrected_valid"`
	Failed                  int     `json:"failed"`
	FirstAttemptSuccessRate float64 `json:"first_attempt_success_rate"`
	CorrectionSuccessRate   float64 `json:"correction_success_rate"`
	FailureRate             float64 `json:"failure_rate"`
	AvgAttempts             float64 `json:"avg_attempts"`
	AvgDurationMs           float64 `json:"avg_duration_ms"`
}

func (s *Stats) recordFirstAttempt(attempts int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalSessions++
	s.firstAttemptValid++
	s.totalAttempts += attempts
	s.totalDuration += d
}

func (s *Stats) recordCorrected(attempts int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalSessions++
	s.correctedValid++
	s.totalAttempts += attempts
	s.totalDuration += d
}

func (s *Stats) recordFailed(attempts int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalSessions++
	s.failed++
	s.totalAttempts += attempts
	s.totalDuration += d
}

// Snapshot returns a copy of the current stats with derived rates.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		TotalSessions:     s.totalSessions,
		FirstAttemptValid: s.firstAttemptValid,
		CorrectedValid:    s.correctedValid,
		Failed:            s.failed,
	}

	if s.totalSessions > 0 {
		n := float64(s.totalSessions)
		snap.FirstAttemptSuccessRate = float64(s.firstAttemptValid) / n
		snap.CorrectionSuccessRate = float64(s.correctedValid) / n
		snap.FailureRate = float64(s.failed) / n
		snap.AvgAttempts = float64(s.totalAttempts) / n
		snap.AvgDurationMs = float64(s.totalDuration.Milliseconds()) / n
	}

	return snap
}
