package transformation

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidateGenerators checks that gens is non-empty and of uniform degree and
// returns that degree. Every mismatching generator is reported; the returned
// error is a *multierror.Error whose entries wrap ErrDegreeMismatch.
func ValidateGenerators(gens []Transformation) (int, error) {
	if len(gens) == 0 {
		return 0, ErrEmptyGenerators
	}
	n := gens[0].Degree()
	var result *multierror.Error
	for i, g := range gens[1:] {
		if g.Degree() != n {
			result = multierror.Append(result,
				fmt.Errorf("%w: generator %d has degree %d, generator 0 has degree %d",
					ErrDegreeMismatch, i+1, g.Degree(), n))
		}
	}

	return n, result.ErrorOrNil()
}

// ValidateInstance checks gens with ValidateGenerators and additionally
// requires f to have the degree of the first generator.
func ValidateInstance(f Transformation, gens []Transformation) (int, error) {
	n, err := ValidateGenerators(gens)
	if errors.Is(err, ErrEmptyGenerators) {
		return 0, err
	}

	var result *multierror.Error
	if err != nil {
		result = multierror.Append(result, err)
	}
	if f.Degree() != n {
		result = multierror.Append(result,
			fmt.Errorf("%w: candidate has degree %d, generators have degree %d",
				ErrDegreeMismatch, f.Degree(), n))
	}

	return n, result.ErrorOrNil()
}
