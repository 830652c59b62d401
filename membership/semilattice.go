package membership

import "github.com/katalvlaran/centraliser/transformation"

// SemilatticeMember decides membership of f when the generators are
// idempotents that commute with each other, so that they generate a
// semilattice. Then f is a member exactly when it equals the product of
// the generators a with a·f = f. The answer is meaningless for other
// generating sets; use Decide there.
func SemilatticeMember(f transformation.Transformation, gens []transformation.Transformation) (bool, error) {
	n, err := transformation.ValidateInstance(f, gens)
	if err != nil {
		return false, err
	}

	var below []transformation.Transformation
	for _, a := range gens {
		if a.Mul(f).Equal(f) {
			below = append(below, a)
		}
	}
	if len(below) == 0 {
		return false, nil
	}

	return transformation.Product(n, below...).Equal(f), nil
}
