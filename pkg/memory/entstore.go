package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/memoryentry"
	"github.com/agentfoundry/maestro/pkg/config"
)

// Candidate pull limits per tier for one retrieval.
const (
	shortCandidateLimit = 50
	midCandidateLimit   = 200
	deepCandidateLimit  = 200
)

// EntStore is the PostgreSQL-backed memory store.
type EntStore struct {
	client *ent.Client
	cfg    *config.MemoryConfig
	now    func() time.Time

	// Consolidation is serialized per (agent, user).
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEntStore creates the persistent memory store.
func NewEntStore(client *ent.Client, cfg *config.MemoryConfig) *EntStore {
	return &EntStore{
		client: client,
		cfg:    cfg,
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Store inserts an entry, evicting from the target tier first when it is at
// capacity.
func (s *EntStore) Store(ctx context.Context, req StoreRequest) (string, error) {
	if req.AgentID == "" || req.UserID == "" || req.Content == "" {
		return "", fmt.Errorf("agent_id, user_id and content are required")
	}

	if err := s.purgeExpired(ctx, req.AgentID, req.UserID); err != nil {
		return "", err
	}

	tier := tierFor(req)
	now := s.now().UTC()

	if err := s.evictForCapacity(ctx, req.AgentID, req.UserID, tier); err != nil {
		return "", err
	}

	memType := req.Type
	if memType == "" {
		memType = TypeConversation
	}

	create := s.client.MemoryEntry.Create().
		SetID(uuid.New().String()).
		SetAgentID(req.AgentID).
		SetUserID(req.UserID).
		SetTier(memoryentry.Tier(tier)).
		SetMemoryType(memType).
		SetContent(req.Content).
		SetCreatedAt(now)
	if req.Metadata != nil {
		create.SetMetadata(req.Metadata)
	}
	if expiry := expiryFor(tier, now, config.ShortTermTTL, config.MidTermTTL); expiry != nil {
		create.SetExpiresAt(*expiry)
	}

	entry, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to store memory entry: %w", err)
	}
	return entry.ID, nil
}

// Retrieve scores candidates from all tiers and returns the topK. Returned
// entries have their visit count and heat bumped.
func (s *EntStore) Retrieve(ctx context.Context, agentID, userID, query, memType string, topK int) ([]*Entry, error) {
	if topK <= 0 {
		topK = 5
	}

	if err := s.purgeExpired(ctx, agentID, userID); err != nil {
		return nil, err
	}

	scope := func() *ent.MemoryEntryQuery {
		return s.client.MemoryEntry.Query().
			Where(memoryentry.AgentID(agentID), memoryentry.UserID(userID))
	}

	short, err := scope().
		Where(memoryentry.TierEQ(memoryentry.TierShort)).
		Order(ent.Desc(memoryentry.FieldCreatedAt)).
		Limit(shortCandidateLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query short tier: %w", err)
	}

	mid, err := scope().
		Where(memoryentry.TierEQ(memoryentry.TierMid)).
		Order(ent.Desc(memoryentry.FieldHeatScore)).
		Limit(midCandidateLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query mid tier: %w", err)
	}

	deepQuery := scope().
		Where(memoryentry.TierIn(
			memoryentry.TierLong,
			memoryentry.TierConsensus,
			memoryentry.TierPersona,
			memoryentry.TierWhiteboard,
		))
	if memType != "" {
		deepQuery = deepQuery.Where(memoryentry.MemoryType(memType))
	}
	deep, err := deepQuery.
		Order(ent.Desc(memoryentry.FieldHeatScore)).
		Limit(deepCandidateLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query long tiers: %w", err)
	}

	candidates := make([]*Entry, 0, len(short)+len(mid)+len(deep))
	for _, rows := range [][]*ent.MemoryEntry{short, mid, deep} {
		for _, row := range rows {
			entry := fromEnt(row)
			entry.Score = overlapScore(query, entry.Content) + tierBonus(entry.Tier)
			candidates = append(candidates, entry)
		}
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

	for _, entry := range candidates {
		if err := s.client.MemoryEntry.UpdateOneID(entry.ID).
			AddVisitCount(1).
			AddHeatScore(visitHeatDelta).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to bump heat for %s: %w", entry.ID, err)
		}
		entry.VisitCount++
		entry.HeatScore += visitHeatDelta
	}

	return candidates, nil
}

// Get loads a single entry by id within the (agent, user) scope.
func (s *EntStore) Get(ctx context.Context, agentID, userID, id string) (*Entry, error) {
	row, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.ID(id),
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load memory entry %s: %w", id, err)
	}
	return fromEnt(row), nil
}

// Consolidate promotes short entries to mid (FIFO), hot mid entries to long,
// and enforces caps by least-heat eviction. Serialized per (agent, user).
func (s *EntStore) Consolidate(ctx context.Context, agentID, userID string) (*ConsolidationReport, error) {
	unlock := s.lockPair(agentID, userID)
	defer unlock()

	report := &ConsolidationReport{}
	now := s.now().UTC()

	expired, err := s.client.MemoryEntry.Delete().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.ExpiresAtNotNil(),
			memoryentry.ExpiresAtLT(now),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to purge expired entries: %w", err)
	}
	report.Expired = expired

	// Short -> mid, oldest first.
	short, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierEQ(memoryentry.TierShort),
		).
		Order(ent.Asc(memoryentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query short tier: %w", err)
	}
	for _, row := range short {
		if err := s.client.MemoryEntry.UpdateOneID(row.ID).
			SetTier(memoryentry.TierMid).
			SetExpiresAt(row.CreatedAt.Add(config.MidTermTTL)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to promote %s to mid: %w", row.ID, err)
		}
		report.PromotedToMid++
	}

	// Mid -> long when heat crosses the threshold. Heat carries forward.
	hot, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierEQ(memoryentry.TierMid),
			memoryentry.HeatScoreGTE(s.cfg.MidTermHeatThreshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query hot mid entries: %w", err)
	}
	for _, row := range hot {
		if err := s.client.MemoryEntry.UpdateOneID(row.ID).
			SetTier(memoryentry.TierLong).
			ClearExpiresAt().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to promote %s to long: %w", row.ID, err)
		}
		report.PromotedToLong++
	}

	for tier, cap := range map[memoryentry.Tier]int{
		memoryentry.TierMid:  s.cfg.MidTermCap,
		memoryentry.TierLong: s.cfg.LongTermCap,
	} {
		evicted, err := s.evictOverCap(ctx, agentID, userID, tier, cap)
		if err != nil {
			return nil, err
		}
		report.Evicted += evicted
	}

	return report, nil
}

// GetUserProfile aggregates long and persona entries into one profile text.
func (s *EntStore) GetUserProfile(ctx context.Context, agentID, userID string) (string, error) {
	rows, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierIn(memoryentry.TierLong, memoryentry.TierPersona),
		).
		Order(ent.Asc(memoryentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query profile entries: %w", err)
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "[%s] %s\n", row.MemoryType, row.Content)
	}
	return b.String(), nil
}

// Clear deletes the agent's entries for a user across all tiers.
func (s *EntStore) Clear(ctx context.Context, agentID, userID string) error {
	_, err := s.client.MemoryEntry.Delete().
		Where(memoryentry.AgentID(agentID), memoryentry.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear memory for %s/%s: %w", agentID, userID, err)
	}
	return nil
}

// evictForCapacity makes room in a tier before an insert.
func (s *EntStore) evictForCapacity(ctx context.Context, agentID, userID string, tier Tier) error {
	cap := s.capFor(tier)
	if cap <= 0 {
		return nil
	}

	count, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierEQ(memoryentry.Tier(tier)),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count %s tier: %w", tier, err)
	}
	if count < cap {
		return nil
	}

	// Short evicts oldest first; other tiers evict the coldest entry.
	order := ent.Asc(memoryentry.FieldHeatScore)
	if tier == TierShort {
		order = ent.Asc(memoryentry.FieldCreatedAt)
	}

	victims, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierEQ(memoryentry.Tier(tier)),
		).
		Order(order).
		Limit(count - cap + 1).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to select eviction victims: %w", err)
	}

	_, err = s.client.MemoryEntry.Delete().
		Where(memoryentry.IDIn(victims...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to evict from %s tier: %w", tier, err)
	}
	return nil
}

// evictOverCap trims a tier down to its cap, coldest entries first.
func (s *EntStore) evictOverCap(ctx context.Context, agentID, userID string, tier memoryentry.Tier, cap int) (int, error) {
	if cap <= 0 {
		return 0, nil
	}

	count, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierEQ(tier),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s tier: %w", tier, err)
	}
	if count <= cap {
		return 0, nil
	}

	victims, err := s.client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.TierEQ(tier),
		).
		Order(ent.Asc(memoryentry.FieldHeatScore)).
		Limit(count - cap).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to select eviction victims: %w", err)
	}

	return s.client.MemoryEntry.Delete().
		Where(memoryentry.IDIn(victims...)).
		Exec(ctx)
}

func (s *EntStore) purgeExpired(ctx context.Context, agentID, userID string) error {
	_, err := s.client.MemoryEntry.Delete().
		Where(
			memoryentry.AgentID(agentID),
			memoryentry.UserID(userID),
			memoryentry.ExpiresAtNotNil(),
			memoryentry.ExpiresAtLT(s.now().UTC()),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired entries: %w", err)
	}
	return nil
}

func (s *EntStore) capFor(tier Tier) int {
	switch tier {
	case TierShort:
		return s.cfg.ShortTermCap
	case TierMid:
		return s.cfg.MidTermCap
	case TierLong:
		return s.cfg.LongTermCap
	default:
		return 0
	}
}

func (s *EntStore) lockPair(agentID, userID string) func() {
	key := agentID + "\x00" + userID
	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func fromEnt(row *ent.MemoryEntry) *Entry {
	return &Entry{
		ID:         row.ID,
		AgentID:    row.AgentID,
		UserID:     row.UserID,
		Tier:       Tier(row.Tier),
		Type:       row.MemoryType,
		Content:    row.Content,
		HeatScore:  row.HeatScore,
		VisitCount: row.VisitCount,
		Metadata:   row.Metadata,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		ExpiresAt:  row.ExpiresAt,
	}
}
