package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates a vertex ID below zero.
	ErrNegativeVertex = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, labelled connection From → To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph. IDs start at 1 and
	// increase in insertion order.
	ID int

	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Label is caller data, typically the index of the generator that
	// induced the edge.
	Label int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed multigraph with integer vertices.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// When both are needed, muVert is always taken first.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	vertices   map[int]struct{} // vertex set
	edges      map[int]*Edge    // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[int]map[int]map[int]struct{}
}

// NewGraph creates an empty Graph. By default it rejects loops and
// parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewFunctionalGraph creates a graph with loops and multi-edges enabled and
// vertices 0..n-1 already present. This is the shape every graph induced by
// a set of transformations takes.
func NewFunctionalGraph(n int) *Graph {
	g := NewGraph(WithLoops(), WithMultiEdges())
	for v := 0; v < n; v++ {
		g.vertices[v] = struct{}{}
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
