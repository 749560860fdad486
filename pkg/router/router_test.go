package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/models"
)

func testRouterConfig(policy string, allowFree bool) *config.Config {
	builtin := config.GetBuiltinConfig()
	return &config.Config{
		Defaults: &config.Defaults{
			RoutingPolicy:         policy,
			AllowFreeTier:         &allowFree,
			ContextStripThreshold: 0.6,
		},
		LLMProviderRegistry: config.NewLLMProviderRegistry(builtin.LLMProviders),
	}
}

func TestRouteTrivialTask(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true))

	task := &models.Task{
		ID:          "t1",
		Description: "Fix typo in README.md",
		Priority:    0.1,
		BatchSize:   1,
	}

	decision, err := r.Route(context.Background(), task, "", nil)
	require.NoError(t, err)

	assert.Equal(t, models.DifficultyTrivial, decision.DifficultyCategory)
	assert.Contains(t, []models.ModelTier{models.TierFree, models.TierUltraCheap}, decision.ModelTier)
	assert.GreaterOrEqual(t, decision.Confidence, 0.8)
	assert.Less(t, decision.EstimatedCost, 1e-4)
	assert.False(t, decision.Blocked)
}

func TestRouteExpertTask(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true))

	task := &models.Task{
		ID:            "t2",
		Description:   "Design and implement a scalable microservices architecture with authentication, database integration, and deployment pipeline",
		Priority:      0.9,
		RequiredTools: []string{"docker", "kubernetes", "database", "auth", "ci/cd"},
		BatchSize:     1,
	}

	decision, err := r.Route(context.Background(), task, "", nil)
	require.NoError(t, err)

	assert.Contains(t, []models.DifficultyCategory{models.DifficultyHard, models.DifficultyExpert}, decision.DifficultyCategory)
	assert.Contains(t, []models.ModelTier{models.TierPremium, models.TierUltraPremium}, decision.ModelTier)
	assert.Positive(t, decision.EstimatedCost)
}

func TestRouteDeterministic(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true))

	task := &models.Task{
		ID:            "t3",
		Description:   "Implement database migration pipeline for the billing service",
		Priority:      0.5,
		RequiredTools: []string{"sql", "ci"},
		NumSteps:      4,
		BatchSize:     1,
	}

	first, err := r.Route(context.Background(), task, "", nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := r.Route(context.Background(), task, "", nil)
		require.NoError(t, err)
		assert.Equal(t, first.DifficultyCategory, again.DifficultyCategory)
		assert.Equal(t, first.ModelTier, again.ModelTier)
		assert.Equal(t, first.DifficultyScore, again.DifficultyScore)
	}
}

func TestRouteFreeTierDisabled(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, false))

	task := &models.Task{ID: "t4", Description: "Fix typo in README.md", Priority: 0.1, BatchSize: 1}

	decision, err := r.Route(context.Background(), task, "", nil)
	require.NoError(t, err)
	assert.Equal(t, models.TierUltraCheap, decision.ModelTier)
}

func TestRouteQualityPolicyShiftsUp(t *testing.T) {
	budget := New(testRouterConfig(PolicyBudget, false))
	quality := New(testRouterConfig(PolicyQuality, false))

	task := &models.Task{
		ID:          "t5",
		Description: "Summarize the weekly report and extract open action items for the team",
		Priority:    0.5,
		NumSteps:    3,
		BatchSize:   1,
	}

	b, err := budget.Route(context.Background(), task, "", nil)
	require.NoError(t, err)
	q, err := quality.Route(context.Background(), task, "", nil)
	require.NoError(t, err)

	assert.Equal(t, b.DifficultyCategory, q.DifficultyCategory)
	assert.Equal(t, tierUp(b.ModelTier), q.ModelTier)
}

func TestRouteInvalidTask(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true))

	_, err := r.Route(context.Background(), &models.Task{Description: "x", Priority: 2, BatchSize: 1}, "", nil)
	assert.Error(t, err)
}

type stubSafetyFilter struct {
	safe    bool
	message string
	err     error
}

func (s *stubSafetyFilter) FilterTask(_ context.Context, _ string) (bool, string, error) {
	return s.safe, s.message, s.err
}

func TestRouteSafetyBlocked(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true),
		WithSafetyFilter(&stubSafetyFilter{safe: false, message: "disallowed content"}))

	task := &models.Task{ID: "t6", Description: "do something disallowed", Priority: 0.5, BatchSize: 1}

	decision, err := r.Route(context.Background(), task, "", nil)
	require.NoError(t, err)
	assert.True(t, decision.Blocked)
	assert.Equal(t, "disallowed content", decision.BlockedReason)
}

func TestRouteSafetyFilterError(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true),
		WithSafetyFilter(&stubSafetyFilter{err: errors.New("moderation timeout")}))

	task := &models.Task{ID: "t7", Description: "harmless task", Priority: 0.5, BatchSize: 1}

	_, err := r.Route(context.Background(), task, "", nil)
	assert.Error(t, err)
}

func TestRouteAdapterPreference(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true))
	r.RegisterAdapter("support", "support-ft-v2")

	task := &models.Task{ID: "t8", Description: "Answer a customer question about refunds", Priority: 0.3, BatchSize: 1}

	decision, err := r.Route(context.Background(), task, "support", nil)
	require.NoError(t, err)
	assert.Equal(t, "support-ft-v2", decision.Model)

	plain, err := r.Route(context.Background(), task, "builder", nil)
	require.NoError(t, err)
	assert.NotEqual(t, "support-ft-v2", plain.Model)
}

func TestRouteContextGate(t *testing.T) {
	r := New(testRouterConfig(PolicyBudget, true))

	task := &models.Task{ID: "t9", Description: "Answer based on the conversation", Priority: 0.2, BatchSize: 1}

	// Three of four messages are duplicates: 75% of tokens stripped.
	messages := []string{
		"the deploy failed on staging",
		"the deploy failed on staging",
		"the deploy failed on staging",
		"the deploy failed on staging",
	}
	decision, err := r.Route(context.Background(), task, "", messages)
	require.NoError(t, err)
	assert.True(t, decision.ContextInvalid)

	clean, err := r.Route(context.Background(), task, "", []string{
		"the deploy failed on staging",
		"rollback completed at noon",
	})
	require.NoError(t, err)
	assert.False(t, clean.ContextInvalid)
}

func TestEstimateTokens(t *testing.T) {
	task := &models.Task{
		Description:   "one two three four",
		NumSteps:      2,
		RequiredTools: []string{"a", "b"},
		BatchSize:     1,
	}

	// 500 + 1.3*4 + 200*2 + 300*2 = 1505
	assert.Equal(t, 1505, EstimateTokens(task))
}

func TestCategorizeBands(t *testing.T) {
	tests := []struct {
		score float64
		want  models.DifficultyCategory
	}{
		{0.0, models.DifficultyTrivial},
		{0.19, models.DifficultyTrivial},
		{0.2, models.DifficultyEasy},
		{0.39, models.DifficultyEasy},
		{0.4, models.DifficultyMedium},
		{0.6, models.DifficultyHard},
		{0.79, models.DifficultyHard},
		{0.8, models.DifficultyExpert},
		{1.0, models.DifficultyExpert},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categorize(tt.score), "score %v", tt.score)
	}
}

func TestConfidenceNearBoundary(t *testing.T) {
	// Far from every threshold: saturated.
	assert.InDelta(t, 1.0, confidence(0.0), 1e-9)
	// Exactly on a threshold: zero.
	assert.InDelta(t, 0.0, confidence(0.4), 1e-9)
	// 0.02 from a threshold: 5 * 0.02 = 0.1.
	assert.InDelta(t, 0.1, confidence(0.42), 1e-9)
}
