package semigroup

import (
	"context"
	"fmt"

	"github.com/katalvlaran/centraliser/transformation"
)

// Oracle decides membership of target in the semigroup generated by gens.
// When target is a member, the word holds generator indices whose
// left-to-right product equals target. Usage errors (empty or mixed-degree
// generators, a target of another degree) are returned as errors.
type Oracle interface {
	Factorise(ctx context.Context, gens []transformation.Transformation, target transformation.Transformation) (word []int, member bool, err error)
}

// FuncOracle adapts an ordinary function to the Oracle interface.
type FuncOracle func(ctx context.Context, gens []transformation.Transformation, target transformation.Transformation) ([]int, bool, error)

// Factorise calls f.
func (f FuncOracle) Factorise(ctx context.Context, gens []transformation.Transformation, target transformation.Transformation) ([]int, bool, error) {
	return f(ctx, gens, target)
}

// EnumeratingOracle answers queries by breadth-first enumeration of the
// generated semigroup, stopping as soon as the target appears. Words are
// therefore of minimum length. The zero value enumerates without bound.
type EnumeratingOracle struct {
	// MaxElements bounds each enumeration; <= 0 means no bound.
	MaxElements int
}

var _ Oracle = EnumeratingOracle{}

// Factorise implements Oracle.
func (o EnumeratingOracle) Factorise(ctx context.Context, gens []transformation.Transformation, target transformation.Transformation) ([]int, bool, error) {
	e, err := newEnumerator(gens, WithContext(ctx), WithMaxElements(o.MaxElements))
	if err != nil {
		return nil, false, err
	}
	if target.Degree() != e.degree {
		return nil, false, fmt.Errorf("%w: target has degree %d, generators %d",
			transformation.ErrDegreeMismatch, target.Degree(), e.degree)
	}

	key := target.Key()
	if _, err = e.run(key); err != nil {
		return nil, false, err
	}
	pos, ok := e.index[key]
	if !ok {
		return nil, false, nil
	}

	return e.word(pos), true, nil
}
