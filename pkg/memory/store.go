package memory

import "context"

// Store is the contract shared by the persistent and in-process backends.
type Store interface {
	// Store inserts an entry and returns its memory id. Tiers over their cap
	// evict first: the oldest entry (short) or the lowest-heat entry (mid,
	// long).
	Store(ctx context.Context, req StoreRequest) (string, error)

	// Retrieve scores candidates from every tier by token overlap plus tier
	// bonus and returns the topK. Retrieved entries get their visit count and
	// heat score bumped.
	Retrieve(ctx context.Context, agentID, userID, query, memType string, topK int) ([]*Entry, error)

	// Get loads one entry by id within the (agent, user) scope. Used to
	// hydrate relationship-graph neighbours on retrieval.
	Get(ctx context.Context, agentID, userID, id string) (*Entry, error)

	// Consolidate promotes short entries to mid (FIFO) and hot mid entries to
	// long, then enforces the mid-tier cap by least-heat eviction. Idempotent
	// when no stores happen in between.
	Consolidate(ctx context.Context, agentID, userID string) (*ConsolidationReport, error)

	// GetUserProfile aggregates long and persona entries into a profile text.
	GetUserProfile(ctx context.Context, agentID, userID string) (string, error)

	// Clear removes the agent's entries for a user across all tiers.
	Clear(ctx context.Context, agentID, userID string) error
}
