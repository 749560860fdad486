package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/pkg/config"
)

// MetadataRelatedTo is the StoreRequest metadata key listing memory ids the
// new entry builds on. Listed entries are linked in the relationship graph
// and surface as depth-decayed neighbours on later retrievals.
const MetadataRelatedTo = "related_to"

// relatedDepth bounds the BFS when hydrating graph neighbours.
const relatedDepth = 2

// Substrate is the memory entry point handed to the runtime. It serves from
// the persistent store and, unless strict mode is on, degrades to the bounded
// in-process store after the first persistence failure. The degraded flag is
// one-way for the process lifetime.
type Substrate struct {
	cfg      *config.MemoryConfig
	primary  Store
	fallback Store
	graph    *Graph
	degraded atomic.Bool
}

// NewSubstrate builds the substrate over an ent client.
func NewSubstrate(client *ent.Client, cfg *config.MemoryConfig) *Substrate {
	return &Substrate{
		cfg:      cfg,
		primary:  NewEntStore(client, cfg),
		fallback: NewFallbackStore(cfg),
		graph:    NewGraph(),
	}
}

// Degraded reports whether the substrate has fallen back to in-process
// storage.
func (s *Substrate) Degraded() bool {
	return s.degraded.Load()
}

func (s *Substrate) Store(ctx context.Context, req StoreRequest) (string, error) {
	id, err := s.storeEntry(ctx, req)
	if err == nil {
		s.linkRelated(req.AgentID, id, req.Metadata)
	}
	return id, err
}

func (s *Substrate) storeEntry(ctx context.Context, req StoreRequest) (string, error) {
	if s.degraded.Load() {
		return s.fallback.Store(ctx, req)
	}
	id, err := s.primary.Store(ctx, req)
	if err != nil && !s.cfg.Strict {
		s.degrade("store", err)
		return s.fallback.Store(ctx, req)
	}
	return id, err
}

func (s *Substrate) Retrieve(ctx context.Context, agentID, userID, query, memType string, topK int) ([]*Entry, error) {
	entries, err := s.retrieve(ctx, agentID, userID, query, memType, topK)
	if err != nil {
		return nil, err
	}
	return s.withRelated(ctx, agentID, userID, topK, entries), nil
}

func (s *Substrate) retrieve(ctx context.Context, agentID, userID, query, memType string, topK int) ([]*Entry, error) {
	if s.degraded.Load() {
		return s.fallback.Retrieve(ctx, agentID, userID, query, memType, topK)
	}
	entries, err := s.primary.Retrieve(ctx, agentID, userID, query, memType, topK)
	if err != nil && !s.cfg.Strict {
		s.degrade("retrieve", err)
		return s.fallback.Retrieve(ctx, agentID, userID, query, memType, topK)
	}
	return entries, err
}

// Get loads one entry by id. Lookup misses are expected here (stale graph
// edges after expiry or eviction) and never trigger degradation.
func (s *Substrate) Get(ctx context.Context, agentID, userID, id string) (*Entry, error) {
	if s.degraded.Load() {
		return s.fallback.Get(ctx, agentID, userID, id)
	}
	return s.primary.Get(ctx, agentID, userID, id)
}

// linkRelated records graph edges for a stored entry whose metadata names
// the entries it builds on.
func (s *Substrate) linkRelated(agentID, id string, metadata map[string]interface{}) {
	refs, ok := metadata[MetadataRelatedTo]
	if !ok {
		return
	}
	node := NodeKey{Namespace: agentID, Key: id}
	for _, ref := range stringRefs(refs) {
		target := NodeKey{Namespace: agentID, Key: ref}
		s.graph.Link(node, target, RelationDependsOn)
		s.graph.Link(target, node, RelationUsedBy)
	}
}

// withRelated augments retrieval hits with graph neighbours. A neighbour
// inherits the hit's score decayed by graph distance; the merged set is
// re-sorted and trimmed back to topK.
func (s *Substrate) withRelated(ctx context.Context, agentID, userID string, topK int, base []*Entry) []*Entry {
	if len(base) == 0 {
		return base
	}
	if topK <= 0 {
		topK = 5
	}

	seen := make(map[string]bool, len(base))
	for _, entry := range base {
		seen[entry.ID] = true
	}

	merged := base
	for _, entry := range base {
		for _, related := range s.graph.Related(NodeKey{Namespace: agentID, Key: entry.ID}, relatedDepth) {
			if related.Node.Namespace != agentID || seen[related.Node.Key] {
				continue
			}
			seen[related.Node.Key] = true
			neighbour, err := s.Get(ctx, agentID, userID, related.Node.Key)
			if err != nil {
				continue
			}
			neighbour.Score = entry.Score * related.Score
			merged = append(merged, neighbour)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > topK {
		merged = merged[:topK]
	}
	return merged
}

func stringRefs(raw interface{}) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		refs := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				refs = append(refs, str)
			}
		}
		return refs
	default:
		return nil
	}
}

func (s *Substrate) Consolidate(ctx context.Context, agentID, userID string) (*ConsolidationReport, error) {
	if s.degraded.Load() {
		return s.fallback.Consolidate(ctx, agentID, userID)
	}
	report, err := s.primary.Consolidate(ctx, agentID, userID)
	if err != nil && !s.cfg.Strict {
		s.degrade("consolidate", err)
		return s.fallback.Consolidate(ctx, agentID, userID)
	}
	return report, err
}

func (s *Substrate) GetUserProfile(ctx context.Context, agentID, userID string) (string, error) {
	if s.degraded.Load() {
		return s.fallback.GetUserProfile(ctx, agentID, userID)
	}
	profile, err := s.primary.GetUserProfile(ctx, agentID, userID)
	if err != nil && !s.cfg.Strict {
		s.degrade("get_user_profile", err)
		return s.fallback.GetUserProfile(ctx, agentID, userID)
	}
	return profile, err
}

func (s *Substrate) Clear(ctx context.Context, agentID, userID string) error {
	if s.degraded.Load() {
		return s.fallback.Clear(ctx, agentID, userID)
	}
	err := s.primary.Clear(ctx, agentID, userID)
	if err != nil && !s.cfg.Strict {
		s.degrade("clear", err)
		return s.fallback.Clear(ctx, agentID, userID)
	}
	return err
}

func (s *Substrate) degrade(op string, err error) {
	if s.degraded.CompareAndSwap(false, true) {
		slog.Warn("Memory store unavailable, degrading to in-process storage",
			"operation", op,
			"error", err)
	}
}

var _ Store = (*Substrate)(nil)
