// Package centraliser decides membership in transformation semigroups for
// transformations that centralise the generating set.
//
// Given generators A of degree n and a transformation f with f·a = a·f for
// every a in A, the question "is f a product of elements of A?" is reduced
// to the orbit quotient of A: the strongly connected components of the
// functional graph with edges i → a(i).
//
// Layout:
//
//	transformation/ — the Transformation value type, parsing, standard generating sets
//	core/           — thread-safe labelled directed multigraph
//	dfs/            — depth-first search, Tarjan components, condensation
//	bfs/            — breadth-first search with edge-label words
//	quotient/       — orbit quotient (Bar), lifts, Hat, stabilisers
//	semigroup/      — breadth-first enumeration, Cayley graphs, the Oracle interface
//	membership/     — the decision procedure, logging and metrics
//	instance/       — YAML/JSON problem files
//	server/         — HTTP API
//	cmd/centraliser — command-line tool
//
// Quick start:
//
//	a := transformation.MustNew(1, 2, 3, 2)
//	res, _ := membership.Decide(a.Mul(a), []transformation.Transformation{a})
//	// res.Member == true, res.Factorisation == [0 0]
package centraliser
