package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/config"
)

func newTestFallback() *FallbackStore {
	store := NewFallbackStore(config.DefaultMemoryConfig())
	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	return store
}

func TestFallbackShortTierFIFO(t *testing.T) {
	store := newTestFallback()
	ctx := context.Background()

	tick := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return tick }

	for i := 0; i <= store.cfg.ShortTermCap; i++ {
		tick = tick.Add(time.Second)
		_, err := store.Store(ctx, StoreRequest{
			AgentID: "qa",
			UserID:  "user-1",
			Content: fmt.Sprintf("turn %d", i),
		})
		require.NoError(t, err)
	}

	key := pairKey("qa", "user-1")
	assert.Equal(t, store.cfg.ShortTermCap, store.countTierLocked(key, TierShort))
	for _, entry := range store.entries[key] {
		assert.NotEqual(t, "turn 0", entry.Content)
	}
}

func TestFallbackConsolidateAndPromotion(t *testing.T) {
	store := newTestFallback()
	ctx := context.Background()

	tick := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return tick }

	_, err := store.Store(ctx, StoreRequest{AgentID: "qa", UserID: "user-1", Content: "a short note"})
	require.NoError(t, err)

	// A late consolidation keeps the mid-tier expiry anchored to creation.
	createdAt := tick
	tick = tick.Add(10 * time.Hour)

	report, err := store.Consolidate(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.PromotedToMid)

	key := pairKey("qa", "user-1")
	require.NotNil(t, store.entries[key][0].ExpiresAt)
	assert.Equal(t, createdAt.Add(7*24*time.Hour), store.entries[key][0].ExpiresAt.UTC())

	// Heat the entry past the promotion threshold, then consolidate again.
	store.entries[key][0].HeatScore = 6.0

	report, err = store.Consolidate(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.PromotedToLong)
	assert.Equal(t, TierLong, store.entries[key][0].Tier)
	assert.Nil(t, store.entries[key][0].ExpiresAt)
}

func TestFallbackExpiry(t *testing.T) {
	store := newTestFallback()
	ctx := context.Background()

	tick := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return tick }

	_, err := store.Store(ctx, StoreRequest{AgentID: "qa", UserID: "user-1", Content: "ephemeral"})
	require.NoError(t, err)

	tick = tick.Add(25 * time.Hour)
	results, err := store.Retrieve(ctx, "qa", "user-1", "ephemeral", "", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFallbackRetrieveBumpsHeat(t *testing.T) {
	store := newTestFallback()
	ctx := context.Background()

	id, err := store.Store(ctx, StoreRequest{AgentID: "qa", UserID: "user-1", Content: "kubernetes deployment"})
	require.NoError(t, err)

	results, err := store.Retrieve(ctx, "qa", "user-1", "kubernetes", "", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)
	assert.Equal(t, 1, results[0].VisitCount)
	assert.InDelta(t, 0.1, results[0].HeatScore, 1e-9)
}

func TestFallbackClearIsScopedToPair(t *testing.T) {
	store := newTestFallback()
	ctx := context.Background()

	_, err := store.Store(ctx, StoreRequest{AgentID: "qa", UserID: "user-1", Content: "drop me"})
	require.NoError(t, err)
	_, err = store.Store(ctx, StoreRequest{AgentID: "qa", UserID: "user-2", Content: "keep me"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "qa", "user-1"))
	assert.Empty(t, store.entries[pairKey("qa", "user-1")])
	assert.Len(t, store.entries[pairKey("qa", "user-2")], 1)
}
