package quotient

import (
	"fmt"

	"github.com/katalvlaran/centraliser/transformation"
)

// IdentityIndex marks the identity in the generator indices returned by
// IntersectStabilisers; it is not an index into the generating set.
const IdentityIndex = -1

// Stabiliser returns {a in gens : lift of a fixes block} together with the
// identity of the partition's degree. The identity comes first; generators
// follow in order, each distinct transformation once.
// Returns ErrLiftCount or ErrBlockOutOfRange.
func Stabiliser(block int, gens []transformation.Transformation, lifts []Lift) ([]transformation.Transformation, error) {
	elems, _, err := IntersectStabilisers(NewBlockSet(block), gens, lifts)

	return elems, err
}

// StabiliserIndices is Stabiliser reporting generator indices instead of
// elements, with IdentityIndex for the identity.
func StabiliserIndices(block int, gens []transformation.Transformation, lifts []Lift) ([]int, error) {
	_, idx, err := IntersectStabilisers(NewBlockSet(block), gens, lifts)

	return idx, err
}

// IntersectStabilisers returns the transformations that stabilise every
// block of z: the identity, plus each distinct generator whose lift fixes
// all of z. The second result gives, per returned element, its index in
// gens, or IdentityIndex for the identity. With z empty every generator
// qualifies.
//
// The identity's degree is taken from the generators; with no generators it
// is the lifts' block count, which is 0.
//
// Errors:
//
//   - ErrLiftCount        len(gens) != len(lifts).
//   - ErrBlockOutOfRange  a block of z is not a block of every lift.
//
// Complexity: O(|gens|·(|z| + n)) time for the fixing tests and the keys
// used to drop repeated generators, O(|gens|·n) memory.
func IntersectStabilisers(z BlockSet, gens []transformation.Transformation, lifts []Lift) ([]transformation.Transformation, []int, error) {
	if len(gens) != len(lifts) {
		return nil, nil, fmt.Errorf("%w: %d generators, %d lifts", ErrLiftCount, len(gens), len(lifts))
	}
	degree := 0
	if len(gens) > 0 {
		degree = gens[0].Degree()
	}
	for _, b := range z {
		for _, l := range lifts {
			if b < 0 || b >= l.Len() {
				return nil, nil, fmt.Errorf("%w: %d", ErrBlockOutOfRange, b)
			}
		}
	}

	id := transformation.Identity(degree)
	elems := []transformation.Transformation{id}
	indices := []int{IdentityIndex}
	seen := map[string]bool{id.Key(): true}

	for k, a := range gens {
		fixesAll := true
		for _, b := range z {
			if !lifts[k].Fixes(b) {
				fixesAll = false
				break
			}
		}
		if !fixesAll || seen[a.Key()] {
			continue
		}
		seen[a.Key()] = true
		elems = append(elems, a)
		indices = append(indices, k)
	}

	return elems, indices, nil
}
