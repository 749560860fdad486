package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/pkg/config"
)

// FallbackStore is the bounded in-process store used when the database is
// unreachable. It applies the same tier, cap and promotion semantics as the
// persistent store but holds nothing across restarts.
type FallbackStore struct {
	cfg *config.MemoryConfig
	now func() time.Time

	mu      sync.Mutex
	entries map[string][]*Entry // keyed by agent+user pair
}

// NewFallbackStore creates the in-process store.
func NewFallbackStore(cfg *config.MemoryConfig) *FallbackStore {
	return &FallbackStore{
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string][]*Entry),
	}
}

func (s *FallbackStore) Store(_ context.Context, req StoreRequest) (string, error) {
	if req.AgentID == "" || req.UserID == "" || req.Content == "" {
		return "", fmt.Errorf("agent_id, user_id and content are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(req.AgentID, req.UserID)
	now := s.now().UTC()
	s.purgeExpiredLocked(key, now)

	tier := tierFor(req)
	s.evictForCapacityLocked(key, tier)

	memType := req.Type
	if memType == "" {
		memType = TypeConversation
	}

	entry := &Entry{
		ID:        uuid.New().String(),
		AgentID:   req.AgentID,
		UserID:    req.UserID,
		Tier:      tier,
		Type:      memType,
		Content:   req.Content,
		Metadata:  req.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: expiryFor(tier, now, config.ShortTermTTL, config.MidTermTTL),
	}
	s.entries[key] = append(s.entries[key], entry)
	return entry.ID, nil
}

func (s *FallbackStore) Retrieve(_ context.Context, agentID, userID, query, memType string, topK int) ([]*Entry, error) {
	if topK <= 0 {
		topK = 5
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(agentID, userID)
	s.purgeExpiredLocked(key, s.now().UTC())

	var candidates []*Entry
	for _, entry := range s.entries[key] {
		if memType != "" && deepTier(entry.Tier) && entry.Type != memType {
			continue
		}
		entry.Score = overlapScore(query, entry.Content) + tierBonus(entry.Tier)
		candidates = append(candidates, entry)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	results := make([]*Entry, 0, len(candidates))
	for _, entry := range candidates {
		entry.VisitCount++
		entry.HeatScore += visitHeatDelta
		entry.UpdatedAt = s.now().UTC()
		clone := *entry
		results = append(results, &clone)
	}
	return results, nil
}

func (s *FallbackStore) Get(_ context.Context, agentID, userID, id string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries[pairKey(agentID, userID)] {
		if entry.ID == id {
			clone := *entry
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("memory entry %s not found", id)
}

func (s *FallbackStore) Consolidate(_ context.Context, agentID, userID string) (*ConsolidationReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(agentID, userID)
	now := s.now().UTC()
	report := &ConsolidationReport{}
	report.Expired = s.purgeExpiredLocked(key, now)

	for _, entry := range s.sortedByAge(key) {
		if entry.Tier == TierShort {
			entry.Tier = TierMid
			deadline := entry.CreatedAt.Add(config.MidTermTTL)
			entry.ExpiresAt = &deadline
			entry.UpdatedAt = now
			report.PromotedToMid++
		}
	}
	for _, entry := range s.entries[key] {
		if entry.Tier == TierMid && entry.HeatScore >= s.cfg.MidTermHeatThreshold {
			entry.Tier = TierLong
			entry.ExpiresAt = nil
			entry.UpdatedAt = now
			report.PromotedToLong++
		}
	}

	report.Evicted += s.evictOverCapLocked(key, TierMid, s.cfg.MidTermCap)
	report.Evicted += s.evictOverCapLocked(key, TierLong, s.cfg.LongTermCap)
	return report, nil
}

func (s *FallbackStore) GetUserProfile(_ context.Context, agentID, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for _, entry := range s.sortedByAge(pairKey(agentID, userID)) {
		if entry.Tier == TierLong || entry.Tier == TierPersona {
			fmt.Fprintf(&b, "[%s] %s\n", entry.Type, entry.Content)
		}
	}
	return b.String(), nil
}

func (s *FallbackStore) Clear(_ context.Context, agentID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, pairKey(agentID, userID))
	return nil
}

func (s *FallbackStore) purgeExpiredLocked(key string, now time.Time) int {
	kept := s.entries[key][:0]
	expired := 0
	for _, entry := range s.entries[key] {
		if entry.ExpiresAt != nil && entry.ExpiresAt.Before(now) {
			expired++
			continue
		}
		kept = append(kept, entry)
	}
	s.entries[key] = kept
	return expired
}

func (s *FallbackStore) evictForCapacityLocked(key string, tier Tier) {
	cap := capForTier(s.cfg, tier)
	if cap <= 0 {
		return
	}
	for s.countTierLocked(key, tier) >= cap {
		s.evictOneLocked(key, tier)
	}
}

func (s *FallbackStore) evictOverCapLocked(key string, tier Tier, cap int) int {
	if cap <= 0 {
		return 0
	}
	evicted := 0
	for s.countTierLocked(key, tier) > cap {
		s.evictOneLocked(key, tier)
		evicted++
	}
	return evicted
}

func (s *FallbackStore) evictOneLocked(key string, tier Tier) {
	victim := -1
	for i, entry := range s.entries[key] {
		if entry.Tier != tier {
			continue
		}
		if victim == -1 {
			victim = i
			continue
		}
		current := s.entries[key][victim]
		if tier == TierShort {
			if entry.CreatedAt.Before(current.CreatedAt) {
				victim = i
			}
		} else if entry.HeatScore < current.HeatScore {
			victim = i
		}
	}
	if victim >= 0 {
		s.entries[key] = append(s.entries[key][:victim], s.entries[key][victim+1:]...)
	}
}

func (s *FallbackStore) countTierLocked(key string, tier Tier) int {
	count := 0
	for _, entry := range s.entries[key] {
		if entry.Tier == tier {
			count++
		}
	}
	return count
}

func (s *FallbackStore) sortedByAge(key string) []*Entry {
	sorted := make([]*Entry, len(s.entries[key]))
	copy(sorted, s.entries[key])
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

func capForTier(cfg *config.MemoryConfig, tier Tier) int {
	switch tier {
	case TierShort:
		return cfg.ShortTermCap
	case TierMid:
		return cfg.MidTermCap
	case TierLong:
		return cfg.LongTermCap
	default:
		return 0
	}
}

func deepTier(tier Tier) bool {
	switch tier {
	case TierLong, TierConsensus, TierPersona, TierWhiteboard:
		return true
	default:
		return false
	}
}

func pairKey(agentID, userID string) string {
	return agentID + "\x00" + userID
}
