package evolution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/evolutionpattern"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/memory"
)

// safeBaselineScore is returned when consensus persistence fails and the
// outcome degrades to a non-converged result.
const safeBaselineScore = 0.5

// Pattern is a proven strategy extracted from an accepted attempt, used to
// seed future evolution rounds.
type Pattern struct {
	PatternID           string   `json:"pattern_id"`
	AgentType           string   `json:"agent_type"`
	TaskType            string   `json:"task_type"`
	CodeDiff            string   `json:"code_diff,omitempty"`
	StrategyDescription string   `json:"strategy_description"`
	BenchmarkScore      float64  `json:"benchmark_score"`
	SuccessRate         float64  `json:"success_rate"`
	Capabilities        []string `json:"capabilities,omitempty"`
	SourceAgent         string   `json:"source_agent,omitempty"`
	BusinessID          string   `json:"business_id,omitempty"`
}

// ConsensusOutcome reports whether a pattern converged into the shared
// namespaces.
type ConsensusOutcome struct {
	Converged bool    `json:"converged"`
	Score     float64 `json:"score"`
}

// PatternStore persists evolution patterns and serves memory-aware seeding.
type PatternStore struct {
	client *ent.Client
	cfg    *config.EvolutionConfig
	memory memory.Store
}

// NewPatternStore creates the store. mem may be nil when memory-aware
// evolution is disabled.
func NewPatternStore(client *ent.Client, cfg *config.EvolutionConfig, mem memory.Store) *PatternStore {
	return &PatternStore{client: client, cfg: cfg, memory: mem}
}

// Save validates and persists a pattern.
func (p *PatternStore) Save(ctx context.Context, pattern *Pattern) (string, error) {
	if pattern.AgentType == "" || pattern.TaskType == "" {
		return "", fmt.Errorf("agent_type and task_type are required")
	}
	if pattern.BenchmarkScore < 0 || pattern.BenchmarkScore > 1 {
		return "", fmt.Errorf("benchmark_score %f outside [0,1]", pattern.BenchmarkScore)
	}
	if pattern.SuccessRate < 0 || pattern.SuccessRate > 1 {
		return "", fmt.Errorf("success_rate %f outside [0,1]", pattern.SuccessRate)
	}

	id := pattern.PatternID
	if id == "" {
		id = uuid.New().String()
		pattern.PatternID = id
	}

	create := p.client.EvolutionPattern.Create().
		SetID(id).
		SetAgentType(pattern.AgentType).
		SetTaskType(pattern.TaskType).
		SetStrategyDescription(pattern.StrategyDescription).
		SetBenchmarkScore(pattern.BenchmarkScore).
		SetSuccessRate(pattern.SuccessRate)
	if pattern.CodeDiff != "" {
		create.SetCodeDiff(pattern.CodeDiff)
	}
	if len(pattern.Capabilities) > 0 {
		create.SetCapabilities(pattern.Capabilities)
	}
	if pattern.SourceAgent != "" {
		create.SetSourceAgent(pattern.SourceAgent)
	}
	if pattern.BusinessID != "" {
		create.SetBusinessID(pattern.BusinessID)
	}

	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to save pattern: %w", err)
	}
	return id, nil
}

// Seed returns up to MaxSeedPatterns proven patterns for a task type.
// Cross-agent patterns are admitted only when their capability sets overlap
// the requester's by at least MinCapabilityOverlap.
func (p *PatternStore) Seed(ctx context.Context, agentType, taskType string, capabilities []string) ([]*Pattern, error) {
	rows, err := p.client.EvolutionPattern.Query().
		Where(
			evolutionpattern.TaskType(taskType),
			evolutionpattern.SuccessRateGTE(p.cfg.PatternSuccessThreshold),
		).
		Order(ent.Desc(evolutionpattern.FieldSuccessRate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}

	var seeds []*Pattern
	for _, row := range rows {
		if len(seeds) >= p.cfg.MaxSeedPatterns {
			break
		}
		if row.AgentType != agentType &&
			capabilityOverlap(capabilities, row.Capabilities) < p.cfg.MinCapabilityOverlap {
			continue
		}
		seeds = append(seeds, patternFromEnt(row))
	}
	return seeds, nil
}

// PersistOutcome shares a converged pattern through the business and
// consensus memory namespaces. Patterns below the consensus threshold, and
// runs without a memory store, stay local. Memory failures degrade to a
// non-converged outcome with a safe baseline score instead of erroring.
func (p *PatternStore) PersistOutcome(ctx context.Context, pattern *Pattern) *ConsensusOutcome {
	if p.memory == nil || pattern.BenchmarkScore < p.cfg.ConsensusThreshold {
		return &ConsensusOutcome{Converged: false, Score: pattern.BenchmarkScore}
	}

	metadata := map[string]interface{}{
		"pattern_id":      pattern.PatternID,
		"task_type":       pattern.TaskType,
		"benchmark_score": pattern.BenchmarkScore,
		"success_rate":    pattern.SuccessRate,
	}

	namespaces := []struct {
		userID string
		tier   memory.Tier
	}{
		{userID: businessNamespace(pattern), tier: memory.TierLong},
		{userID: "consensus", tier: memory.TierConsensus},
	}
	for _, ns := range namespaces {
		_, err := p.memory.Store(ctx, memory.StoreRequest{
			AgentID:  pattern.AgentType,
			UserID:   ns.userID,
			Content:  pattern.StrategyDescription,
			Type:     memory.TypeConsensus,
			Tier:     ns.tier,
			Metadata: metadata,
		})
		if err != nil {
			slog.Warn("Failed to persist evolution outcome to memory",
				"pattern_id", pattern.PatternID,
				"namespace", ns.userID,
				"error", err)
			return &ConsensusOutcome{Converged: false, Score: safeBaselineScore}
		}
	}

	return &ConsensusOutcome{Converged: true, Score: pattern.BenchmarkScore}
}

func businessNamespace(pattern *Pattern) string {
	if pattern.BusinessID != "" {
		return "business:" + pattern.BusinessID
	}
	return "business:default"
}

// capabilityOverlap is the Jaccard similarity of two capability sets.
func capabilityOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, capability := range a {
		setA[capability] = true
	}

	union := make(map[string]bool, len(a)+len(b))
	for capability := range setA {
		union[capability] = true
	}
	intersection := 0
	for _, capability := range b {
		if setA[capability] {
			intersection++
		}
		union[capability] = true
	}
	return float64(intersection) / float64(len(union))
}

func patternFromEnt(row *ent.EvolutionPattern) *Pattern {
	return &Pattern{
		PatternID:           row.ID,
		AgentType:           row.AgentType,
		TaskType:            row.TaskType,
		CodeDiff:            row.CodeDiff,
		StrategyDescription: row.StrategyDescription,
		BenchmarkScore:      row.BenchmarkScore,
		SuccessRate:         row.SuccessRate,
		Capabilities:        row.Capabilities,
		SourceAgent:         row.SourceAgent,
		BusinessID:          row.BusinessID,
	}
}
