// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links with the label of the
// edge used, and visit order.
//
// Neighbors are expanded in edge-ID order (core.Graph.Neighbors), so the
// traversal is deterministic. On a Cayley graph whose edges are labelled
// by generator index, WordTo returns a shortest word of generators leading
// from the start vertex to any reached vertex.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, hook error, ctx error
//	}
//	word, _ := res.WordTo(7)
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
