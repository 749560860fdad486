// Package router selects a model cost tier per task from a weighted
// difficulty estimate, guarded by optional safety and context-quality gates.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/models"
)

// Routing policies.
const (
	PolicyBudget  = "budget"
	PolicyQuality = "quality"
)

// SafetyFilter gates tasks before model selection. Implementations wrap an
// external moderation capability.
type SafetyFilter interface {
	// FilterTask returns whether the task text is safe to execute, and a
	// human-readable block message when it is not.
	FilterTask(ctx context.Context, text string) (safe bool, blockedMessage string, err error)
}

// Router maps tasks to model tiers. Stateless aside from the adapter
// registry; Route is safe for concurrent use.
type Router struct {
	providers      *config.LLMProviderRegistry
	policy         string
	allowFreeTier  bool
	stripThreshold float64
	safety         SafetyFilter

	mu       sync.RWMutex
	adapters map[string]string // agent name -> fine-tuned model identifier
}

// Option configures optional router behavior.
type Option func(*Router)

// WithSafetyFilter attaches a safety gate evaluated before model selection.
func WithSafetyFilter(f SafetyFilter) Option {
	return func(r *Router) { r.safety = f }
}

// New creates a router bound to the provider registry.
func New(cfg *config.Config, opts ...Option) *Router {
	allowFree := true
	if cfg.Defaults.AllowFreeTier != nil {
		allowFree = *cfg.Defaults.AllowFreeTier
	}

	r := &Router{
		providers:      cfg.LLMProviderRegistry,
		policy:         cfg.Defaults.RoutingPolicy,
		allowFreeTier:  allowFree,
		stripThreshold: cfg.Defaults.ContextStripThreshold,
		adapters:       make(map[string]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterAdapter registers a fine-tuned adapter for an agent. Routing
// decisions for that agent return the adapter model in place of the shared
// tier model.
func (r *Router) RegisterAdapter(agentName, model string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[agentName] = model
}

// Route computes the routing decision for a task. agentName selects a
// fine-tuned adapter when one is registered; messages, when non-nil, are run
// through the context-quality gate. Route has no side effects.
func (r *Router) Route(ctx context.Context, task *models.Task, agentName string, messages []string) (*models.RoutingDecision, error) {
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if r.safety != nil {
		safe, blockedMsg, err := r.safety.FilterTask(ctx, task.Description)
		if err != nil {
			return nil, fmt.Errorf("safety filter failed: %w", err)
		}
		if !safe {
			return &models.RoutingDecision{
				Blocked:       true,
				BlockedReason: blockedMsg,
				Reasoning:     "task rejected by safety gate before model selection",
			}, nil
		}
	}

	score, signals := estimateDifficulty(task)
	category := categorize(score)
	tier := r.selectTier(category, score)

	tokens := EstimateTokens(task)
	cost, model := r.tierCost(tier, tokens)

	decision := &models.RoutingDecision{
		ModelTier:          tier,
		Model:              model,
		DifficultyCategory: category,
		DifficultyScore:    score,
		EstimatedTokens:    tokens,
		EstimatedCost:      cost,
		Confidence:         confidence(score),
		Reasoning: fmt.Sprintf(
			"difficulty %.3f (%s) from signals len=%.2f steps=%.2f tools=%.2f complexity=%.2f technical=%.2f priority=%.2f; policy %s selected tier %s",
			score, category,
			signals.Length, signals.Steps, signals.Tools,
			signals.Complexity, signals.Technical, signals.Priority,
			r.policy, tier),
	}

	if adapter := r.adapterFor(agentName); adapter != "" {
		decision.Model = adapter
		decision.Reasoning += fmt.Sprintf("; using fine-tuned adapter %s", adapter)
	}

	if messages != nil {
		stripped := stripFraction(messages)
		if stripped > r.stripThreshold {
			decision.ContextInvalid = true
			decision.Reasoning += fmt.Sprintf("; context invalid (%.0f%% of tokens would be stripped)", stripped*100)
		}
	}

	return decision, nil
}

// selectTier maps a difficulty band to a model tier under the active policy.
// The hard band splits: its upper half routes to premium even under the
// budget policy.
func (r *Router) selectTier(category models.DifficultyCategory, score float64) models.ModelTier {
	var tier models.ModelTier

	switch category {
	case models.DifficultyTrivial, models.DifficultyEasy:
		if r.allowFreeTier && r.providers.HasTier(string(models.TierFree)) {
			tier = models.TierFree
		} else {
			tier = models.TierUltraCheap
		}
	case models.DifficultyMedium:
		tier = models.TierCheap
	case models.DifficultyHard:
		if score >= hardPremiumCutoff {
			tier = models.TierPremium
		} else {
			tier = models.TierStandard
		}
	default:
		tier = models.TierUltraPremium
	}

	if r.policy == PolicyQuality {
		tier = tierUp(tier)
	}

	return tier
}

// tierUp shifts a tier one step toward ultra-premium.
func tierUp(tier models.ModelTier) models.ModelTier {
	order := []models.ModelTier{
		models.TierFree,
		models.TierUltraCheap,
		models.TierCheap,
		models.TierStandard,
		models.TierPremium,
		models.TierUltraPremium,
	}
	for i, t := range order {
		if t == tier && i < len(order)-1 {
			return order[i+1]
		}
	}
	return tier
}

// tierCost prices the token estimate against the provider serving the tier.
func (r *Router) tierCost(tier models.ModelTier, tokens int) (float64, string) {
	provider, err := r.providers.GetByTier(string(tier))
	if err != nil {
		slog.Warn("No provider registered for routed tier", "tier", tier, "error", err)
		return 0, ""
	}
	return provider.PricePer1MTokens * float64(tokens) / 1e6, provider.Model
}

func (r *Router) adapterFor(agentName string) string {
	if agentName == "" {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.adapters[agentName]
}
