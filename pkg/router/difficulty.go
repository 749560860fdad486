package router

import (
	"math"
	"strings"

	"github.com/agentfoundry/maestro/pkg/models"
)

// Signal weights for the difficulty score. Must sum to 1.0.
const (
	weightLength     = 0.15
	weightSteps      = 0.20
	weightTools      = 0.20
	weightComplexity = 0.20
	weightTechnical  = 0.15
	weightPriority   = 0.10
)

// Normalization caps per signal. Values at or above the cap clip to 1.0.
const (
	capLengthChars = 1000
	capSteps       = 10
	capTools       = 5
	capComplexity  = 5
	capTechnical   = 5
)

// Category thresholds over the difficulty score.
const (
	thresholdEasy   = 0.2
	thresholdMedium = 0.4
	thresholdHard   = 0.6
	thresholdExpert = 0.8
)

// Within the hard band, scores at or above this cutoff route to the premium
// tier instead of standard.
const hardPremiumCutoff = 0.65

// Token estimation constants: base prompt overhead plus per-word, per-step
// and per-tool contributions.
const (
	tokenBase     = 500
	tokensPerWord = 1.3
	tokensPerStep = 200
	tokensPerTool = 300
)

var complexityKeywords = []string{
	"architecture",
	"design",
	"implement",
	"scalable",
	"scalability",
	"distributed",
	"integration",
	"pipeline",
	"optimize",
	"optimization",
	"refactor",
	"migration",
	"concurrency",
	"orchestration",
}

var technicalKeywords = []string{
	"microservices",
	"authentication",
	"auth",
	"database",
	"deployment",
	"docker",
	"kubernetes",
	"ci/cd",
	"api",
	"grpc",
	"sql",
	"cache",
	"queue",
	"encryption",
	"oauth",
	"infrastructure",
}

// difficultySignals holds the six normalized inputs to the weighted score.
// Each value is in [0,1].
type difficultySignals struct {
	Length     float64
	Steps      float64
	Tools      float64
	Complexity float64
	Technical  float64
	Priority   float64
}

// estimateDifficulty computes the weighted difficulty score for a task.
// Pure function: the same task always produces the same score.
func estimateDifficulty(task *models.Task) (float64, difficultySignals) {
	lowered := strings.ToLower(task.Description)

	// Technical keywords are scanned over the description and the required
	// tool names; a kubernetes deployment task is technical whether the word
	// appears in prose or in the tool list.
	technicalScope := lowered
	if len(task.RequiredTools) > 0 {
		technicalScope += " " + strings.ToLower(strings.Join(task.RequiredTools, " "))
	}

	signals := difficultySignals{
		Length:     clip(float64(len(task.Description)) / capLengthChars),
		Steps:      clip(float64(task.NumSteps) / capSteps),
		Tools:      clip(float64(len(task.RequiredTools)) / capTools),
		Complexity: clip(float64(countKeywords(lowered, complexityKeywords)) / capComplexity),
		Technical:  clip(float64(countKeywords(technicalScope, technicalKeywords)) / capTechnical),
		Priority:   clip(task.Priority),
	}

	score := weightLength*signals.Length +
		weightSteps*signals.Steps +
		weightTools*signals.Tools +
		weightComplexity*signals.Complexity +
		weightTechnical*signals.Technical +
		weightPriority*signals.Priority

	return score, signals
}

// categorize maps a difficulty score to its category band.
func categorize(score float64) models.DifficultyCategory {
	switch {
	case score < thresholdEasy:
		return models.DifficultyTrivial
	case score < thresholdMedium:
		return models.DifficultyEasy
	case score < thresholdHard:
		return models.DifficultyMedium
	case score < thresholdExpert:
		return models.DifficultyHard
	default:
		return models.DifficultyExpert
	}
}

// confidence reports how far the score sits from the nearest category
// boundary, scaled so that 0.2 away from every threshold saturates at 1.0.
// Scores near a boundary get low confidence.
func confidence(score float64) float64 {
	thresholds := []float64{thresholdEasy, thresholdMedium, thresholdHard, thresholdExpert}

	minDist := math.Inf(1)
	for _, t := range thresholds {
		if d := math.Abs(score - t); d < minDist {
			minDist = d
		}
	}

	return math.Min(5*minDist, 1.0)
}

// EstimateTokens projects the total token usage of one task execution.
func EstimateTokens(task *models.Task) int {
	words := len(strings.Fields(task.Description))
	estimate := tokenBase +
		tokensPerWord*float64(words) +
		tokensPerStep*float64(task.NumSteps) +
		tokensPerTool*float64(len(task.RequiredTools))
	return int(estimate)
}

func countKeywords(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}

func clip(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
