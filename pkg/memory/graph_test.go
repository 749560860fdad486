package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(ns, key string) NodeKey {
	return NodeKey{Namespace: ns, Key: key}
}

func TestGraphRelatedDepthDecay(t *testing.T) {
	g := NewGraph()
	g.Link(node("qa", "a"), node("qa", "b"), RelationDependsOn)
	g.Link(node("qa", "b"), node("qa", "c"), RelationDependsOn)
	g.Link(node("qa", "c"), node("qa", "d"), RelationUsedBy)

	related := g.Related(node("qa", "a"), 2)
	require.Len(t, related, 2)

	assert.Equal(t, node("qa", "b"), related[0].Node)
	assert.Equal(t, 1, related[0].Depth)
	assert.InDelta(t, 0.5, related[0].Score, 1e-9)

	assert.Equal(t, node("qa", "c"), related[1].Node)
	assert.Equal(t, 2, related[1].Depth)
	assert.InDelta(t, 1.0/3.0, related[1].Score, 1e-9)
}

func TestGraphRelatedHandlesCycles(t *testing.T) {
	g := NewGraph()
	g.Link(node("qa", "a"), node("qa", "b"), RelationDependsOn)
	g.Link(node("qa", "b"), node("qa", "a"), RelationUsedBy)

	related := g.Related(node("qa", "a"), 10)
	require.Len(t, related, 1)
	assert.Equal(t, node("qa", "b"), related[0].Node)
}

func TestGraphCrossNamespaceEdges(t *testing.T) {
	g := NewGraph()
	g.Link(node("qa", "finding"), node("builder", "fix"), RelationCrossAgent)

	related := g.Related(node("qa", "finding"), 1)
	require.Len(t, related, 1)
	assert.Equal(t, node("builder", "fix"), related[0].Node)
	assert.Equal(t, RelationCrossAgent, related[0].Relation)
}

func TestGraphDuplicateLinkIgnored(t *testing.T) {
	g := NewGraph()
	g.Link(node("qa", "a"), node("qa", "b"), RelationDependsOn)
	g.Link(node("qa", "a"), node("qa", "b"), RelationDependsOn)

	assert.Len(t, g.Related(node("qa", "a"), 1), 1)
}

func TestGraphUnlinkAndRemove(t *testing.T) {
	g := NewGraph()
	g.Link(node("qa", "a"), node("qa", "b"), RelationDependsOn)
	g.Link(node("qa", "c"), node("qa", "b"), RelationUsedBy)

	g.Unlink(node("qa", "a"), node("qa", "b"))
	assert.Empty(t, g.Related(node("qa", "a"), 1))

	g.Remove(node("qa", "b"))
	assert.Empty(t, g.Related(node("qa", "c"), 1))
}

func TestGraphDepthCap(t *testing.T) {
	g := NewGraph()
	g.Link(node("qa", "a"), node("qa", "b"), RelationDependsOn)
	g.Link(node("qa", "b"), node("qa", "c"), RelationDependsOn)

	related := g.Related(node("qa", "a"), 1)
	require.Len(t, related, 1)
	assert.Equal(t, node("qa", "b"), related[0].Node)

	assert.Empty(t, g.Related(node("qa", "a"), 0))
}
