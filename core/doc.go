// Package core provides a thread-safe in-memory directed multigraph over
// integer vertices, with labelled edges.
//
// The graphs in this module are induced by transformations: a vertex is a
// domain point (or a semigroup element index) and an edge i → a(i) carries
// the index of the generator a as its Label. Several generators may map i to
// the same point, so parallel edges and self-loops are common; both must be
// enabled explicitly with WithMultiEdges and WithLoops.
//
// Storage:
//
//	adjacency[from][to][edgeID] = struct{}{}
//
// gives O(1) edge insertion and existence checks. Separate sync.RWMutex locks
// guard vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism: Vertices, Edges, Neighbors and NeighborIDs return sorted results.
//
// Errors:
//
//	ErrNegativeVertex      - vertex IDs must be >= 0.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
