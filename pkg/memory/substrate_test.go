package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfoundry/maestro/pkg/config"
)

var errStoreDown = errors.New("connection refused")

// failingStore errors on every operation.
type failingStore struct{}

func (failingStore) Store(context.Context, StoreRequest) (string, error) { return "", errStoreDown }
func (failingStore) Retrieve(context.Context, string, string, string, string, int) ([]*Entry, error) {
	return nil, errStoreDown
}
func (failingStore) Get(context.Context, string, string, string) (*Entry, error) {
	return nil, errStoreDown
}
func (failingStore) Consolidate(context.Context, string, string) (*ConsolidationReport, error) {
	return nil, errStoreDown
}
func (failingStore) GetUserProfile(context.Context, string, string) (string, error) {
	return "", errStoreDown
}
func (failingStore) Clear(context.Context, string, string) error { return errStoreDown }

func newTestSubstrate(strict bool) *Substrate {
	cfg := config.DefaultMemoryConfig()
	cfg.Strict = strict
	return &Substrate{
		cfg:      cfg,
		primary:  failingStore{},
		fallback: NewFallbackStore(cfg),
		graph:    NewGraph(),
	}
}

func TestSubstrateDegradesOnPrimaryFailure(t *testing.T) {
	sub := newTestSubstrate(false)
	ctx := context.Background()

	id, err := sub.Store(ctx, StoreRequest{AgentID: "qa", UserID: "user-1", Content: "note"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.True(t, sub.Degraded())

	// Later operations serve from the fallback without touching the primary.
	results, err := sub.Retrieve(ctx, "qa", "user-1", "note", "", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)
}

func TestSubstrateStrictSurfacesError(t *testing.T) {
	sub := newTestSubstrate(true)

	_, err := sub.Store(context.Background(), StoreRequest{AgentID: "qa", UserID: "user-1", Content: "note"})
	assert.ErrorIs(t, err, errStoreDown)
	assert.False(t, sub.Degraded())
}

func TestSubstrateRetrieveIncludesGraphNeighbours(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	sub := &Substrate{
		cfg:      cfg,
		primary:  NewFallbackStore(cfg),
		fallback: NewFallbackStore(cfg),
		graph:    NewGraph(),
	}
	ctx := context.Background()

	backoff, err := sub.Store(ctx, StoreRequest{
		AgentID: "qa",
		UserID:  "user-1",
		Content: "use exponential backoff on lock contention",
		Type:    TypeKnowledge,
	})
	require.NoError(t, err)

	strategy, err := sub.Store(ctx, StoreRequest{
		AgentID:  "qa",
		UserID:   "user-1",
		Content:  "database deadlock strategy with retries",
		Type:     TypeStrategy,
		Metadata: map[string]interface{}{MetadataRelatedTo: []string{backoff}},
	})
	require.NoError(t, err)

	_, err = sub.Store(ctx, StoreRequest{
		AgentID: "qa",
		UserID:  "user-1",
		Content: "database connection note",
	})
	require.NoError(t, err)

	// The backoff entry matches no query token, but rides along as a graph
	// neighbour of the strategy hit with a depth-decayed score, displacing
	// the weaker direct match.
	results, err := sub.Retrieve(ctx, "qa", "user-1", "database deadlock strategy", "", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, strategy, results[0].ID)
	assert.Equal(t, backoff, results[1].ID)
	assert.InDelta(t, results[0].Score/2, results[1].Score, 1e-9)
}

func TestSubstrateDegradedFlagIsSticky(t *testing.T) {
	sub := newTestSubstrate(false)
	ctx := context.Background()

	_, err := sub.Retrieve(ctx, "qa", "user-1", "anything", "", 5)
	require.NoError(t, err)
	require.True(t, sub.Degraded())

	report, err := sub.Consolidate(ctx, "qa", "user-1")
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.True(t, sub.Degraded())
}
