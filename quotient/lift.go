package quotient

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/centraliser/transformation"
)

// Lift is the action of a transformation on the blocks of a Partition.
type Lift struct {
	images      []int // block index → block index
	wellDefined bool
}

// LiftOf computes the quotient lift of f on p: block B maps to the block
// containing f(min B). WellDefined reports whether f maps every point of
// every block into that same block, which holds whenever f commutes with
// the generators p was built from.
// Returns ErrDegreeMismatch if f.Degree() != p.Degree().
// Complexity: O(n).
func LiftOf(f transformation.Transformation, p *Partition) (Lift, error) {
	if f.Degree() != p.degree {
		return Lift{}, fmt.Errorf("%w: transformation has degree %d, partition %d",
			ErrDegreeMismatch, f.Degree(), p.degree)
	}

	l := Lift{images: make([]int, len(p.blocks)), wellDefined: true}
	for i, b := range p.blocks {
		target := p.blockOf[f.At(b.Representative())]
		l.images[i] = target
		for _, x := range b[1:] {
			if p.blockOf[f.At(x)] != target {
				l.wellDefined = false
				break
			}
		}
	}

	return l, nil
}

// LiftAll lifts every generator. The result is index-aligned with gens.
func LiftAll(gens []transformation.Transformation, p *Partition) ([]Lift, error) {
	out := make([]Lift, len(gens))
	for k, a := range gens {
		l, err := LiftOf(a, p)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", k, err)
		}
		out[k] = l
	}

	return out, nil
}

// Len returns the number of blocks the lift acts on.
func (l Lift) Len() int { return len(l.images) }

// At returns the image block of block i.
func (l Lift) At(i int) int { return l.images[i] }

// WellDefined reports whether every point of each block maps into the
// image block of that block's representative.
func (l Lift) WellDefined() bool { return l.wellDefined }

// Fixes reports whether block i is mapped to itself.
func (l Lift) Fixes(i int) bool { return l.images[i] == i }

// Image returns the set of blocks in the image of the lift.
func (l Lift) Image() BlockSet { return NewBlockSet(l.images...) }

// Transformation returns the lift as a transformation of degree Len() on
// block indices.
func (l Lift) Transformation() transformation.Transformation {
	// images are block indices, always in range
	t, _ := transformation.New(l.images)

	return t
}

// AllWellDefined reports whether every lift in ls is well-defined. When it
// holds, lifting is a homomorphism from the semigroup generated by the
// lifted transformations to the transformations of the blocks.
func AllWellDefined(ls []Lift) bool {
	for _, l := range ls {
		if !l.wellDefined {
			return false
		}
	}

	return true
}

// BlockSet is a sorted set of block indices.
type BlockSet []int

// NewBlockSet returns the sorted, deduplicated set of idx.
func NewBlockSet(idx ...int) BlockSet {
	out := slices.Clone(idx)
	slices.Sort(out)

	return slices.Compact(out)
}

// Contains reports whether block i is in s.
func (s BlockSet) Contains(i int) bool {
	_, ok := slices.BinarySearch(s, i)

	return ok
}
