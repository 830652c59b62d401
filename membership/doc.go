// Package membership decides whether a transformation f belongs to the
// semigroup generated by A, for f that commutes with every generator.
//
// The procedure reduces the question to the orbit quotient of A (the
// strongly connected components of its functional graph), asks an oracle
// about the lifted problem, and then corrects the quotient witness inside
// the stabiliser of the image blocks of f. Every positive answer carries a
// factorisation over A that is checked by multiplication, and when the
// reduction cannot settle the question the oracle is asked about (A, f)
// directly, so the answer is always exact.
//
//	res, err := membership.Decide(f, gens, membership.WithLogger(log))
//	if err != nil {
//	    // usage error: empty generators or mixed degrees
//	}
//	if res.Member {
//	    // semigroup.Evaluate(gens, res.Factorisation) equals f
//	}
package membership
