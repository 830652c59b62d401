// Vertex and edge management for Graph.
//
// Adjacency is a nested map adjacency[from][to][edgeID], allowing constant
// time insertion and existence checks. Multi-edge detection only needs to
// look at the innermost bucket.

package core

import (
	"sort"
	"sync/atomic"
)

// AddVertex inserts vertex id. Re-adding an existing vertex is a no-op.
// Returns ErrNegativeVertex if id < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertex
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts a directed edge from → to carrying label and returns its ID.
// Missing endpoints are added.
//
// Returns ErrNegativeVertex, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to, label int) (int, error) {
	// 1) Input validation
	if from < 0 || to < 0 {
		return 0, ErrNegativeVertex
	}
	// 2) Loop constraint
	if from == to && !g.Looped() {
		return 0, ErrLoopNotAllowed
	}
	// 3) Ensure both endpoints exist (idempotent)
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 4) Multi-edge existence check
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 5) Allocate ID and store
	eid := int(atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Label: label}

	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[int]map[int]struct{})
		g.adjacency[from] = inner
	}
	bucket, ok := inner[to]
	if !ok {
		bucket = make(map[int]struct{})
		inner[to] = bucket
	}
	bucket[eid] = struct{}{}

	return eid, nil
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Neighbors returns the outgoing edges of id sorted by Edge.ID, i.e. in
// insertion order. Parallel edges appear once each.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the distinct successors of id in increasing order.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]int, 0, len(g.adjacency[id]))
	for to, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Ints(ids)

	return ids, nil
}

// Vertices returns all vertices in increasing order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Edges returns all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|, counting parallel edges separately.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// OrderedAdjacencies returns, for every vertex in increasing order, the
// targets of its outgoing edges sorted by (Label, ID). For a Cayley graph
// this is the table row[v][k] = v·generator k.
// Complexity: O(V log V + E log E).
func (g *Graph) OrderedAdjacencies() [][]int {
	verts := g.Vertices()
	out := make([][]int, len(verts))
	for i, v := range verts {
		edges, _ := g.Neighbors(v) // v is known to exist
		sort.SliceStable(edges, func(a, b int) bool { return edges[a].Label < edges[b].Label })
		row := make([]int, len(edges))
		for j, e := range edges {
			row[j] = e.To
		}
		out[i] = row
	}

	return out
}
