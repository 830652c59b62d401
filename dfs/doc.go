// Package dfs implements depth-first traversal and strongly connected
// component analysis on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports a pre-order hook, cancellation via
//     context.Context and neighbor filtering.
//   - StronglyConnectedComponents: Tarjan's algorithm, iterative so that long
//     chains (large transformation degrees) do not grow the goroutine stack.
//     Components are returned sorted, and the list of components is sorted
//     lexicographically, so results are reproducible.
//   - Condense: the condensation DAG of a graph, one vertex per component,
//     with Sources() and Sinks() reporting components no other component
//     reaches and components that reach no other.
//
// Complexity:
//
//   - DFS:                         Time O(V+E), Memory O(V)
//   - StronglyConnectedComponents: Time O(V+E + V log V), Memory O(V)
//   - Condense:                    Time O(V+E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit
package dfs
