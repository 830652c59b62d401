package quotient

import (
	"fmt"

	"github.com/katalvlaran/centraliser/transformation"
)

// Hat reconstructs a domain-level transformation from f and a set of active
// blocks z: h(x) = f(x) when the block of x is in z, and h(x) = x otherwise.
// The result is total and has the partition's degree.
// Returns ErrDegreeMismatch or ErrBlockOutOfRange.
// Complexity: O(n log |z|).
func Hat(f transformation.Transformation, p *Partition, z BlockSet) (transformation.Transformation, error) {
	if f.Degree() != p.degree {
		return transformation.Transformation{}, fmt.Errorf("%w: transformation has degree %d, partition %d",
			ErrDegreeMismatch, f.Degree(), p.degree)
	}
	for _, i := range z {
		if i < 0 || i >= len(p.blocks) {
			return transformation.Transformation{}, fmt.Errorf("%w: %d", ErrBlockOutOfRange, i)
		}
	}

	images := make([]int, p.degree)
	for x := range images {
		if z.Contains(p.blockOf[x]) {
			images[x] = f.At(x)
		} else {
			images[x] = x
		}
	}

	return transformation.New(images)
}
