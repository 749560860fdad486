package memory

import (
	"sort"
	"sync"
)

// Relation is the kind of edge between two memory nodes.
type Relation string

const (
	RelationDependsOn  Relation = "depends_on"
	RelationUsedBy     Relation = "used_by"
	RelationCrossAgent Relation = "cross_agent"
)

// NodeKey identifies a node in the relationship graph. Namespace is the
// owning scope (an agent id or a shared space name), Key is the memory id or
// whiteboard key inside it.
type NodeKey struct {
	Namespace string
	Key       string
}

// RelatedNode is one BFS hit: a node, how it was reached and its
// depth-decayed score.
type RelatedNode struct {
	Node     NodeKey
	Relation Relation
	Depth    int
	Score    float64
}

type edge struct {
	to       NodeKey
	relation Relation
}

// Graph tracks relationships between memory entries as a directed adjacency
// map. Edges are non-owning references; the entries themselves live in the
// store.
type Graph struct {
	mu    sync.RWMutex
	edges map[NodeKey][]edge
}

// NewGraph creates an empty relationship graph.
func NewGraph() *Graph {
	return &Graph{edges: make(map[NodeKey][]edge)}
}

// Link adds a directed edge. Duplicate edges are ignored.
func (g *Graph) Link(from, to NodeKey, relation Relation) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges[from] {
		if e.to == to && e.relation == relation {
			return
		}
	}
	g.edges[from] = append(g.edges[from], edge{to: to, relation: relation})
}

// Unlink removes every edge between two nodes.
func (g *Graph) Unlink(from, to NodeKey) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.edges[from][:0]
	for _, e := range g.edges[from] {
		if e.to != to {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(g.edges, from)
		return
	}
	g.edges[from] = kept
}

// Remove drops a node and all edges pointing at it.
func (g *Graph) Remove(node NodeKey) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.edges, node)
	for from, edges := range g.edges {
		kept := edges[:0]
		for _, e := range edges {
			if e.to != node {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(g.edges, from)
			continue
		}
		g.edges[from] = kept
	}
}

// Related walks the graph breadth-first from a node up to maxDepth and
// returns reachable nodes with scores decayed by depth (1/(depth+1)). Cycles
// are safe: each node is visited once.
func (g *Graph) Related(start NodeKey, maxDepth int) []RelatedNode {
	if maxDepth <= 0 {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := map[NodeKey]bool{start: true}
	var results []RelatedNode

	type frame struct {
		node     NodeKey
		relation Relation
		depth    int
	}
	queue := []frame{{node: start, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth >= maxDepth {
			continue
		}
		for _, e := range g.edges[current.node] {
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			depth := current.depth + 1
			results = append(results, RelatedNode{
				Node:     e.to,
				Relation: e.relation,
				Depth:    depth,
				Score:    1.0 / float64(depth+1),
			})
			queue = append(queue, frame{node: e.to, relation: e.relation, depth: depth})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
