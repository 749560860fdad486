package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/memoryentry"
	"github.com/agentfoundry/maestro/pkg/config"
	testdb "github.com/agentfoundry/maestro/test/database"
)

func setupEntStore(t *testing.T) (*EntStore, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultMemoryConfig()
	return NewEntStore(client.Client, cfg), client.Client
}

func storeConversation(t *testing.T, store *EntStore, agentID, userID, content string) string {
	t.Helper()
	id, err := store.Store(context.Background(), StoreRequest{
		AgentID: agentID,
		UserID:  userID,
		Content: content,
		Type:    TypeConversation,
	})
	require.NoError(t, err)
	return id
}

func TestStoreShortTierEvictsOldestAtCapacity(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	var first string
	for i := 0; i < store.cfg.ShortTermCap; i++ {
		now = now.Add(time.Second)
		id := storeConversation(t, store, "qa", "user-1", fmt.Sprintf("turn %d", i))
		if i == 0 {
			first = id
		}
	}

	now = now.Add(time.Second)
	storeConversation(t, store, "qa", "user-1", "turn 10")

	count, err := client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID("qa"),
			memoryentry.UserID("user-1"),
			memoryentry.TierEQ(memoryentry.TierShort),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.cfg.ShortTermCap, count)

	// The FIFO-oldest entry is the one that was evicted.
	_, err = client.MemoryEntry.Get(ctx, first)
	assert.True(t, ent.IsNotFound(err))
}

func TestStoreTierTTLs(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	shortID := storeConversation(t, store, "qa", "user-1", "short-lived")
	knowledgeID, err := store.Store(ctx, StoreRequest{
		AgentID: "qa",
		UserID:  "user-1",
		Content: "postgres quoting rules",
		Type:    TypeKnowledge,
	})
	require.NoError(t, err)

	short, err := client.MemoryEntry.Get(ctx, shortID)
	require.NoError(t, err)
	require.NotNil(t, short.ExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), short.ExpiresAt.UTC())

	knowledge, err := client.MemoryEntry.Get(ctx, knowledgeID)
	require.NoError(t, err)
	assert.Equal(t, memoryentry.TierLong, knowledge.Tier)
	assert.Nil(t, knowledge.ExpiresAt)
}

func TestConsolidatePromotesShortToMid(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		storeConversation(t, store, "qa", "user-1", fmt.Sprintf("turn %d", i))
	}

	// Consolidating late in the short-term window must not extend the
	// mid-tier lifetime: expiry stays anchored to creation time.
	createdAt := now
	now = now.Add(10 * time.Hour)

	report, err := store.Consolidate(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, report.PromotedToMid)
	assert.Equal(t, 0, report.PromotedToLong)

	mid, err := client.MemoryEntry.Query().
		Where(
			memoryentry.AgentID("qa"),
			memoryentry.UserID("user-1"),
			memoryentry.TierEQ(memoryentry.TierMid),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, mid, 3)
	for _, row := range mid {
		require.NotNil(t, row.ExpiresAt)
		assert.Equal(t, createdAt.Add(7*24*time.Hour), row.ExpiresAt.UTC())
	}

	// Nothing left behind in short, so a second pass is a no-op.
	again, err := store.Consolidate(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.PromotedToMid)
}

func TestConsolidatePromotesHotMidToLong(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	expiry := now.Add(7 * 24 * time.Hour)
	hot, err := client.MemoryEntry.Create().
		SetID("mem-hot").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierMid).
		SetMemoryType(TypeKnowledge).
		SetContent("frequently revisited fact").
		SetHeatScore(6.0).
		SetExpiresAt(expiry).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.MemoryEntry.Create().
		SetID("mem-cold").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierMid).
		SetMemoryType(TypeKnowledge).
		SetContent("rarely touched fact").
		SetHeatScore(1.0).
		SetExpiresAt(expiry).
		Save(ctx)
	require.NoError(t, err)

	report, err := store.Consolidate(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.PromotedToLong)

	promoted, err := client.MemoryEntry.Get(ctx, hot.ID)
	require.NoError(t, err)
	assert.Equal(t, memoryentry.TierLong, promoted.Tier)
	assert.Nil(t, promoted.ExpiresAt)

	cold, err := client.MemoryEntry.Get(ctx, "mem-cold")
	require.NoError(t, err)
	assert.Equal(t, memoryentry.TierMid, cold.Tier)
}

func TestRetrieveScoresAndBumpsHeat(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	_, err := client.MemoryEntry.Create().
		SetID("mem-long").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierLong).
		SetMemoryType(TypeKnowledge).
		SetContent("deployment checklist for kubernetes").
		Save(ctx)
	require.NoError(t, err)

	shortID := storeConversation(t, store, "qa", "user-1", "deployment checklist draft")
	storeConversation(t, store, "qa", "user-1", "unrelated small talk")

	results, err := store.Retrieve(ctx, "qa", "user-1", "deployment checklist", "", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Full overlap in both, long tier wins on its bonus.
	assert.Equal(t, "mem-long", results[0].ID)
	assert.InDelta(t, 1.2, results[0].Score, 1e-9)
	assert.Equal(t, shortID, results[1].ID)
	assert.InDelta(t, 1.0, results[1].Score, 1e-9)

	row, err := client.MemoryEntry.Get(ctx, "mem-long")
	require.NoError(t, err)
	assert.Equal(t, 1, row.VisitCount)
	assert.InDelta(t, 0.1, row.HeatScore, 1e-9)
}

func TestRetrieveFiltersDeepTiersByType(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	_, err := client.MemoryEntry.Create().
		SetID("mem-strategy").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierLong).
		SetMemoryType(TypeStrategy).
		SetContent("retry with exponential backoff").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.MemoryEntry.Create().
		SetID("mem-knowledge").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierLong).
		SetMemoryType(TypeKnowledge).
		SetContent("retry budget exhausted yesterday").
		Save(ctx)
	require.NoError(t, err)

	results, err := store.Retrieve(ctx, "qa", "user-1", "retry", TypeStrategy, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "mem-strategy", results[0].ID)
}

func TestRetrievePurgesExpiredEntries(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	id := storeConversation(t, store, "qa", "user-1", "ephemeral note")

	now = now.Add(25 * time.Hour)
	results, err := store.Retrieve(ctx, "qa", "user-1", "ephemeral", "", 5)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = client.MemoryEntry.Get(ctx, id)
	assert.True(t, ent.IsNotFound(err))
}

func TestGetUserProfileAggregatesLongAndPersona(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	_, err := client.MemoryEntry.Create().
		SetID("mem-persona").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierPersona).
		SetMemoryType(TypePersona).
		SetContent("prefers terse answers").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.MemoryEntry.Create().
		SetID("mem-fact").
		SetAgentID("qa").
		SetUserID("user-1").
		SetTier(memoryentry.TierLong).
		SetMemoryType(TypeKnowledge).
		SetContent("works in the payments team").
		Save(ctx)
	require.NoError(t, err)
	storeConversation(t, store, "qa", "user-1", "short-tier noise")

	profile, err := store.GetUserProfile(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.Contains(t, profile, "prefers terse answers")
	assert.Contains(t, profile, "works in the payments team")
	assert.NotContains(t, profile, "short-tier noise")
}

func TestClearRemovesAllTiersForPair(t *testing.T) {
	store, client := setupEntStore(t)
	ctx := context.Background()

	storeConversation(t, store, "qa", "user-1", "to be cleared")
	storeConversation(t, store, "qa", "user-2", "kept for other user")

	require.NoError(t, store.Clear(ctx, "qa", "user-1"))

	count, err := client.MemoryEntry.Query().
		Where(memoryentry.AgentID("qa"), memoryentry.UserID("user-1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	kept, err := client.MemoryEntry.Query().
		Where(memoryentry.AgentID("qa"), memoryentry.UserID("user-2")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
}

func TestStoreValidation(t *testing.T) {
	store, _ := setupEntStore(t)

	_, err := store.Store(context.Background(), StoreRequest{UserID: "user-1", Content: "x"})
	assert.Error(t, err)
	_, err = store.Store(context.Background(), StoreRequest{AgentID: "qa", UserID: "user-1"})
	assert.Error(t, err)
}
