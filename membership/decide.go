package membership

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/centraliser/quotient"
	"github.com/katalvlaran/centraliser/semigroup"
	"github.com/katalvlaran/centraliser/transformation"
)

// Decide reports whether f lies in the semigroup generated by gens.
//
// Usage errors are returned as errors and never turned into a negative
// answer: an empty generating set (transformation.ErrEmptyGenerators) or
// degrees that differ (transformation.ErrDegreeMismatch). Oracle failures
// wrap ErrOracle; a cancelled context returns its error.
//
// A transformation that does not commute with every generator is reported
// as a non-member at StageNotCentralising without further work; the
// procedure only answers membership for centralising f.
//
// Options:
//
//   - WithOracle(o)        membership oracle for the reduced problems.
//   - WithMaxElements(n)   bounds the default oracle's enumeration.
//   - WithContext(ctx)     cancellation, checked between stages.
//   - WithLogger(l)        debug log of every decision.
//   - WithMetrics(m)       decision counter and duration histogram.
//
// Complexity: O(n·|gens|) for the quotient and the lifts, plus at most
// three oracle calls. With the default oracle each call costs the size of
// the semigroup enumerated, which is bounded by WithMaxElements.
func Decide(f transformation.Transformation, gens []transformation.Transformation, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	start := time.Now()

	d := &decider{ctx: cfg.ctx, oracle: cfg.oracle, f: f, gens: gens}
	res, err := d.run()
	if err != nil {
		cfg.logger.WithError(err).Debug("membership: aborted")

		return nil, err
	}

	cfg.metrics.observe(res, time.Since(start))
	cfg.logger.WithFields(logrus.Fields{
		"degree": res.Degree,
		"blocks": res.Blocks,
		"stage":  res.Stage,
		"member": res.Member,
	}).Debug("membership: decided")

	return res, nil
}

// Member is Decide reduced to its answer.
func Member(f transformation.Transformation, gens []transformation.Transformation, opts ...Option) (bool, error) {
	res, err := Decide(f, gens, opts...)
	if err != nil {
		return false, err
	}

	return res.Member, nil
}

// decider carries the state of one decision.
type decider struct {
	ctx    context.Context
	oracle semigroup.Oracle
	f      transformation.Transformation
	gens   []transformation.Transformation
	res    Result
}

func (d *decider) run() (*Result, error) {
	n, err := transformation.ValidateInstance(d.f, d.gens)
	if err != nil {
		return nil, err
	}
	d.res.Degree = n

	for _, a := range d.gens {
		if !d.f.Commutes(a) {
			return d.done(false, StageNotCentralising, nil)
		}
	}
	if err = d.ctx.Err(); err != nil {
		return nil, err
	}

	part, err := quotient.BarContext(d.ctx, n, d.gens)
	if err != nil {
		return nil, err
	}
	d.res.Blocks = part.Len()

	lifts, err := quotient.LiftAll(d.gens, part)
	if err != nil {
		return nil, err
	}
	barf, err := quotient.LiftOf(d.f, part)
	if err != nil {
		return nil, err
	}

	// Z is the image of bar f; IZ stabilises it blockwise.
	z := barf.Image()
	iz, izIndex, err := quotient.IntersectStabilisers(z, d.gens, lifts)
	if err != nil {
		return nil, err
	}
	hatA := make([]transformation.Transformation, len(iz))
	for j, g := range iz {
		if hatA[j], err = quotient.Hat(g, part, z); err != nil {
			return nil, err
		}
	}

	word, ok, err := d.factorise(liftTransformations(lifts), barf.Transformation())
	if err != nil {
		return nil, err
	}
	if !ok {
		if quotient.AllWellDefined(lifts) {
			return d.done(false, StageQuotient, nil)
		}

		return d.fallback()
	}

	ga, err := semigroup.Evaluate(d.gens, word)
	if err != nil {
		return nil, fmt.Errorf("%w: quotient word %v: %v", ErrBadFactorisation, word, err)
	}
	if ga.Equal(d.f) {
		return d.done(true, StageQuotientWitness, word)
	}

	if err = d.ctx.Err(); err != nil {
		return nil, err
	}
	target, ok := correctiveTarget(ga, d.f)
	if !ok {
		return d.fallback()
	}
	corr, ok, err := d.factorise(hatA, target)
	if err != nil {
		return nil, err
	}
	if ok {
		full := slices.Clone(word)
		acc := ga
		for _, j := range corr {
			if j < 0 || j >= len(iz) {
				return nil, fmt.Errorf("%w: corrective letter %d, %d stabiliser elements",
					ErrBadFactorisation, j, len(iz))
			}
			acc = acc.Mul(iz[j])
			if izIndex[j] != quotient.IdentityIndex {
				full = append(full, izIndex[j])
			}
		}
		if acc.Equal(d.f) {
			return d.done(true, StageCorrective, full)
		}
	}

	return d.fallback()
}

// fallback asks the oracle about f and the generators directly.
func (d *decider) fallback() (*Result, error) {
	if err := d.ctx.Err(); err != nil {
		return nil, err
	}
	word, ok, err := d.factorise(d.gens, d.f)
	if err != nil {
		return nil, err
	}
	if !ok {
		return d.done(false, StageFallback, nil)
	}
	got, err := semigroup.Evaluate(d.gens, word)
	if err != nil || !got.Equal(d.f) {
		return nil, fmt.Errorf("%w: word %v for %v", ErrBadFactorisation, word, d.f)
	}

	return d.done(true, StageFallback, word)
}

func (d *decider) factorise(gens []transformation.Transformation, target transformation.Transformation) ([]int, bool, error) {
	word, ok, err := d.oracle.Factorise(d.ctx, gens, target)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrOracle, err)
	}

	return word, ok, nil
}

func (d *decider) done(member bool, stage Stage, word []int) (*Result, error) {
	d.res.Member = member
	d.res.Stage = stage
	if member {
		d.res.Factorisation = slices.Clone(word)
	}
	res := d.res

	return &res, nil
}

// correctiveTarget returns the transformation sending ga(i) to f(i) for
// every i and fixing points outside the image of ga. ok is false when two
// points with the same ga-image have different f-images, in which case no
// h with ga·h = f exists.
func correctiveTarget(ga, f transformation.Transformation) (transformation.Transformation, bool) {
	n := f.Degree()
	images := make([]int, n)
	assigned := make([]bool, n)
	for i := range images {
		images[i] = i
	}
	for i := 0; i < n; i++ {
		y := ga.At(i)
		if assigned[y] && images[y] != f.At(i) {
			return transformation.Transformation{}, false
		}
		images[y] = f.At(i)
		assigned[y] = true
	}
	h, err := transformation.New(images)

	return h, err == nil
}

func liftTransformations(lifts []quotient.Lift) []transformation.Transformation {
	out := make([]transformation.Transformation, len(lifts))
	for k, l := range lifts {
		out[k] = l.Transformation()
	}

	return out
}
