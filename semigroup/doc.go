// Package semigroup enumerates the semigroup generated by a set of
// transformations and answers membership and factorisation queries.
//
// The Enumerator visits elements breadth-first by word length, in the
// manner of Froidure and Pin: every element is stored once, together with
// its parent (the element it was reached from) and the generator that was
// multiplied on the right. Following parents recovers a shortest word.
//
// Products are read left to right: the word [i, j, k] denotes
// gens[i].Mul(gens[j]).Mul(gens[k]), which applies gens[i] first.
//
// Oracle abstracts the membership query used by the membership package.
// EnumeratingOracle is the default implementation; FuncOracle adapts a
// plain function.
package semigroup
