package models

// ModelTier identifies a cost tier of language model.
type ModelTier string

const (
	TierFree         ModelTier = "FREE"
	TierUltraCheap   ModelTier = "ULTRA_CHEAP"
	TierCheap        ModelTier = "CHEAP"
	TierStandard     ModelTier = "STANDARD"
	TierPremium      ModelTier = "PREMIUM"
	TierUltraPremium ModelTier = "ULTRA_PREMIUM"
)

// DifficultyCategory buckets the estimated difficulty score.
type DifficultyCategory string

const (
	DifficultyTrivial DifficultyCategory = "trivial"
	DifficultyEasy    DifficultyCategory = "easy"
	DifficultyMedium  DifficultyCategory = "medium"
	DifficultyHard    DifficultyCategory = "hard"
	DifficultyExpert  DifficultyCategory = "expert"
)

// RoutingDecision is the pure-function output of the difficulty-aware router
// for one task. Replaying the router on the same task yields the same
// category and tier.
type RoutingDecision struct {
	ModelTier          ModelTier          `json:"model_tier"`
	Model              string             `json:"model,omitempty"`
	DifficultyCategory DifficultyCategory `json:"difficulty_category"`
	DifficultyScore    float64            `json:"difficulty_score"`
	EstimatedTokens    int                `json:"estimated_tokens"`
	EstimatedCost      float64            `json:"estimated_cost"`
	Confidence         float64            `json:"confidence"`
	Reasoning          string             `json:"reasoning"`

	// Safety gate outcome. When Blocked is true the task must not be executed.
	Blocked       bool   `json:"blocked,omitempty"`
	BlockedReason string `json:"blocked_reason,omitempty"`

	// ContextInvalid is set when the optional context-quality gate would strip
	// more than the configured share of tokens; callers may re-query.
	ContextInvalid bool `json:"context_invalid,omitempty"`
}
