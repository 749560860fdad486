// Package memory implements the tiered memory substrate: short/mid/long
// tiers with heat-based promotion, plus the shared consensus, persona and
// whiteboard namespaces.
package memory

import (
	"strings"
	"time"
)

// Tier identifies the storage tier of a memory entry. An entry lives in
// exactly one tier at a time.
type Tier string

const (
	TierShort      Tier = "short"
	TierMid        Tier = "mid"
	TierLong       Tier = "long"
	TierConsensus  Tier = "consensus"
	TierPersona    Tier = "persona"
	TierWhiteboard Tier = "whiteboard"
)

// Memory entry types.
const (
	TypeConversation = "conversation"
	TypeKnowledge    = "knowledge"
	TypeStrategy     = "strategy"
	TypePersona      = "persona"
	TypeConsensus    = "consensus"
	TypeWhiteboard   = "whiteboard"
)

// Retrieval scoring weights and increments.
const (
	midTierBonus   = 0.1
	deepTierBonus  = 0.2
	visitHeatDelta = 0.1
)

// Entry is the substrate's view of one stored memory, independent of the
// backing store.
type Entry struct {
	ID         string                 `json:"memory_id"`
	AgentID    string                 `json:"agent_id"`
	UserID     string                 `json:"user_id"`
	Tier       Tier                   `json:"tier"`
	Type       string                 `json:"memory_type"`
	Content    string                 `json:"content"`
	HeatScore  float64                `json:"heat_score"`
	VisitCount int                    `json:"visit_count"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
	ExpiresAt  *time.Time             `json:"expires_at,omitempty"`

	// Score is populated on retrieval results only.
	Score float64 `json:"score,omitempty"`
}

// StoreRequest describes one entry to store. Tier is optional: conversation
// entries land in the short tier, other types in their natural tier.
type StoreRequest struct {
	AgentID  string
	UserID   string
	Content  string
	Type     string
	Tier     Tier
	Metadata map[string]interface{}
}

// ConsolidationReport summarizes one consolidation pass.
type ConsolidationReport struct {
	PromotedToMid  int `json:"promoted_to_mid"`
	PromotedToLong int `json:"promoted_to_long"`
	Evicted        int `json:"evicted"`
	Expired        int `json:"expired"`
}

// tierFor resolves the target tier for a store request.
func tierFor(req StoreRequest) Tier {
	if req.Tier != "" {
		return req.Tier
	}
	switch req.Type {
	case TypePersona:
		return TierPersona
	case TypeConsensus:
		return TierConsensus
	case TypeWhiteboard:
		return TierWhiteboard
	case "", TypeConversation:
		return TierShort
	default:
		// Knowledge, strategies and other durable types go straight to long.
		return TierLong
	}
}

// expiryFor returns the tier TTL deadline, or nil for permanent tiers.
func expiryFor(tier Tier, createdAt time.Time, shortTTL, midTTL time.Duration) *time.Time {
	switch tier {
	case TierShort:
		t := createdAt.Add(shortTTL)
		return &t
	case TierMid:
		t := createdAt.Add(midTTL)
		return &t
	default:
		return nil
	}
}

// tierBonus is the retrieval score bonus per tier.
func tierBonus(tier Tier) float64 {
	switch tier {
	case TierMid:
		return midTierBonus
	case TierLong, TierConsensus, TierPersona:
		return deepTierBonus
	default:
		return 0
	}
}

// overlapScore computes token overlap between a query and content: the share
// of distinct query tokens present in the content.
func overlapScore(query, content string) float64 {
	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 {
		return 0
	}
	contentTokens := tokenSet(content)

	matched := 0
	for token := range queryTokens {
		if contentTokens[token] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?\"'()[]{}")
		if token != "" {
			set[token] = true
		}
	}
	return set
}
