package refine

// CostSavings summarizes rounds saved by early termination across sessions,
// against a baseline that runs every session to MaxRounds.
type CostSavings struct {
	Sessions       int     `json:"sessions"`
	ActualRounds   int     `json:"actual_rounds"`
	BaselineRounds int     `json:"baseline_rounds"`
	RoundsSaved    int     `json:"rounds_saved"`
	ActualCost     float64 `json:"actual_cost"`
	BaselineCost   float64 `json:"baseline_cost"`
	CostSaved      float64 `json:"cost_saved"`
	PercentSaved   float64 `json:"percent_saved"`
}

// EstimateCostSavings computes actual versus baseline rounds and cost for a
// set of completed sessions.
func EstimateCostSavings(sessions []*Session, costPerRound float64) CostSavings {
	savings := CostSavings{Sessions: len(sessions)}

	for _, s := range sessions {
		savings.ActualRounds += s.Rounds()
		savings.BaselineRounds += s.cfg.MaxRounds
	}

	savings.RoundsSaved = savings.BaselineRounds - savings.ActualRounds
	savings.ActualCost = float64(savings.ActualRounds) * costPerRound
	savings.BaselineCost = float64(savings.BaselineRounds) * costPerRound
	savings.CostSaved = savings.BaselineCost - savings.ActualCost

	if savings.BaselineRounds > 0 {
		savings.PercentSaved = float64(savings.RoundsSaved) / float64(savings.BaselineRounds) * 100
	}

	return savings
}
