package semigroup

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/centraliser/bfs"
	"github.com/katalvlaran/centraliser/core"
	"github.com/katalvlaran/centraliser/transformation"
)

// noParent marks elements that are generators.
const noParent = -1

// Enumerator holds the fully enumerated semigroup generated by gens.
// It is immutable after New returns and safe for concurrent reads.
type Enumerator struct {
	gens   []transformation.Transformation
	degree int
	opts   options

	elements []transformation.Transformation
	index    map[string]int // Key → position
	parent   []int          // position of the prefix, noParent for generators
	last     []int          // generator multiplied last
	length   []int          // word length
	genPos   []int          // generator index → position

	right [][]int // right[i][k] = position of elements[i].Mul(gens[k])
}

// New validates gens, enumerates the semigroup they generate and returns
// the result. Returns transformation.ErrEmptyGenerators or a degree
// mismatch from transformation.ValidateGenerators, ErrLimitExceeded, or
// the context error.
// Complexity: O(|S|·|gens|·n) time, O(|S|·(n+|gens|)) memory.
func New(gens []transformation.Transformation, opts ...Option) (*Enumerator, error) {
	e, err := newEnumerator(gens, opts...)
	if err != nil {
		return nil, err
	}
	if _, err = e.run(""); err != nil {
		return nil, err
	}

	return e, nil
}

func newEnumerator(gens []transformation.Transformation, opts ...Option) (*Enumerator, error) {
	degree, err := transformation.ValidateGenerators(gens)
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Enumerator{
		gens:   slices.Clone(gens),
		degree: degree,
		opts:   o,
		index:  make(map[string]int),
		genPos: make([]int, len(gens)),
	}
	for k, g := range gens {
		pos, ok := e.index[g.Key()]
		if !ok {
			if pos, err = e.add(g, noParent, k); err != nil {
				return nil, err
			}
		}
		e.genPos[k] = pos
	}

	return e, nil
}

// add appends a new element and returns its position.
func (e *Enumerator) add(t transformation.Transformation, parent, gen int) (int, error) {
	if e.opts.maxElements > 0 && len(e.elements) >= e.opts.maxElements {
		return 0, fmt.Errorf("%w: more than %d elements", ErrLimitExceeded, e.opts.maxElements)
	}
	pos := len(e.elements)
	e.elements = append(e.elements, t)
	e.index[t.Key()] = pos
	e.parent = append(e.parent, parent)
	e.last = append(e.last, gen)
	if parent == noParent {
		e.length = append(e.length, 1)
	} else {
		e.length = append(e.length, e.length[parent]+1)
	}

	return pos, nil
}

// run multiplies every element on the right by every generator, in
// insertion order, until no new element appears. If stop is a non-empty
// key, run returns true as soon as that element is known; the enumeration
// is then incomplete and must not be queried further.
func (e *Enumerator) run(stop string) (bool, error) {
	if stop != "" {
		if _, ok := e.index[stop]; ok {
			return true, nil
		}
	}
	for i := len(e.right); i < len(e.elements); i++ {
		select {
		case <-e.opts.ctx.Done():
			return false, e.opts.ctx.Err()
		default:
		}

		row := make([]int, len(e.gens))
		x := e.elements[i]
		for k, g := range e.gens {
			y := x.Mul(g)
			key := y.Key()
			pos, ok := e.index[key]
			if !ok {
				var err error
				if pos, err = e.add(y, i, k); err != nil {
					return false, err
				}
				if key == stop {
					return true, nil
				}
			}
			row[k] = pos
		}
		e.right = append(e.right, row)
	}

	return false, nil
}

// Degree returns the degree of the generators.
func (e *Enumerator) Degree() int { return e.degree }

// Generators returns a copy of the generating set.
func (e *Enumerator) Generators() []transformation.Transformation { return slices.Clone(e.gens) }

// Size returns the number of elements of the semigroup. The enumeration is
// complete once New returns, so Size is O(1) and never fails.
func (e *Enumerator) Size() int { return len(e.elements) }

// Elements returns the elements in enumeration order: shorter words first,
// ties broken by the order in which they were discovered. Position i of the
// result is position i for At, Factorisation and the Cayley graphs.
// Complexity: O(|S|) time and memory; the transformations are shared, the
// slice is a copy.
func (e *Enumerator) Elements() []transformation.Transformation { return slices.Clone(e.elements) }

// At returns the element at position pos.
func (e *Enumerator) At(pos int) (transformation.Transformation, error) {
	if pos < 0 || pos >= len(e.elements) {
		return transformation.Transformation{}, fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos)
	}

	return e.elements[pos], nil
}

// Position returns the position of t, if t is an element.
func (e *Enumerator) Position(t transformation.Transformation) (int, bool) {
	if t.Degree() != e.degree {
		return 0, false
	}
	pos, ok := e.index[t.Key()]

	return pos, ok
}

// Contains reports whether t belongs to the semigroup.
func (e *Enumerator) Contains(t transformation.Transformation) bool {
	_, ok := e.Position(t)

	return ok
}

// Factorisation returns a shortest word over the generator indices whose
// left-to-right product is the element at pos. The word is read off the
// parent and last-generator tables built during enumeration.
// Returns ErrPositionOutOfRange for pos outside [0, Size()).
// Complexity: O(|word|) time and memory.
func (e *Enumerator) Factorisation(pos int) ([]int, error) {
	if pos < 0 || pos >= len(e.elements) {
		return nil, fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos)
	}

	return e.word(pos), nil
}

func (e *Enumerator) word(pos int) []int {
	w := make([]int, 0, e.length[pos])
	for p := pos; p != noParent; p = e.parent[p] {
		w = append(w, e.last[p])
	}
	slices.Reverse(w)

	return w
}

// WordLength returns the length of a shortest word for the element at pos.
func (e *Enumerator) WordLength(pos int) (int, error) {
	if pos < 0 || pos >= len(e.elements) {
		return 0, fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos)
	}

	return e.length[pos], nil
}

// Idempotents returns the positions of the elements x with x·x = x, in
// increasing order.
// Complexity: O(|S|·n) time, one test per element, O(1) extra memory.
func (e *Enumerator) Idempotents() []int {
	var out []int
	for i, x := range e.elements {
		if x.IsIdempotent() {
			out = append(out, i)
		}
	}

	return out
}

// RightCayleyGraph returns the graph on positions with an edge
// i → pos(elements[i]·gens[k]) labelled k, for every element and generator.
// Edges leaving a vertex are inserted in generator order.
func (e *Enumerator) RightCayleyGraph() *core.Graph {
	g := core.NewFunctionalGraph(len(e.elements))
	for i, row := range e.right {
		for k, j := range row {
			_, _ = g.AddEdge(i, j, k) // loops and parallel edges are enabled
		}
	}

	return g
}

// LeftCayleyGraph returns the graph on positions with an edge
// i → pos(gens[k]·elements[i]) labelled k.
func (e *Enumerator) LeftCayleyGraph() *core.Graph {
	g := core.NewFunctionalGraph(len(e.elements))
	for i, x := range e.elements {
		for k, a := range e.gens {
			// the semigroup is closed under left multiplication too
			j := e.index[a.Mul(x).Key()]
			_, _ = g.AddEdge(i, j, k)
		}
	}

	return g
}

// RightDivide returns a shortest word w over the generators with
// elements[from]·w = elements[to], found by breadth-first search of the
// right Cayley graph. ok is false when to is not reachable from from. An
// empty word means from == to.
func (e *Enumerator) RightDivide(from, to int) (w []int, ok bool, err error) {
	for _, p := range []int{from, to} {
		if p < 0 || p >= len(e.elements) {
			return nil, false, fmt.Errorf("%w: %d", ErrPositionOutOfRange, p)
		}
	}
	stopAtTarget := func(id, _ int) error {
		if id == to {
			return bfs.ErrStop
		}

		return nil
	}
	res, err := bfs.BFS(e.RightCayleyGraph(), from, bfs.WithContext(e.opts.ctx), bfs.WithOnVisit(stopAtTarget))
	if err != nil {
		return nil, false, err
	}
	w, err = res.WordTo(to)
	if err != nil {
		return nil, false, nil
	}

	return w, true, nil
}

// Evaluate multiplies gens[word[0]]·gens[word[1]]·… and returns the product.
// Returns ErrEmptyWord, ErrGeneratorOutOfRange, or a degree mismatch from
// transformation.Compose.
func Evaluate(gens []transformation.Transformation, word []int) (transformation.Transformation, error) {
	if len(word) == 0 {
		return transformation.Transformation{}, ErrEmptyWord
	}
	var acc transformation.Transformation
	for i, k := range word {
		if k < 0 || k >= len(gens) {
			return transformation.Transformation{}, fmt.Errorf("%w: letter %d is %d, %d generators",
				ErrGeneratorOutOfRange, i, k, len(gens))
		}
		if i == 0 {
			acc = gens[k]
			continue
		}
		var err error
		if acc, err = acc.Compose(gens[k]); err != nil {
			return transformation.Transformation{}, err
		}
	}

	return acc, nil
}
