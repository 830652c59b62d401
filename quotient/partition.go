package quotient

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/centraliser/core"
	"github.com/katalvlaran/centraliser/dfs"
	"github.com/katalvlaran/centraliser/transformation"
)

// Block is a sorted, non-empty set of domain points.
type Block []int

// Contains reports whether x is in b.
func (b Block) Contains(x int) bool {
	_, ok := slices.BinarySearch(b, x)

	return ok
}

// Representative returns the least element of b.
func (b Block) Representative() int { return b[0] }

// Partition is a set of disjoint blocks covering {0..n-1}.
// Blocks are stored in lexicographic order; block i is addressed by index i.
type Partition struct {
	degree  int
	blocks  []Block
	blockOf []int // point → block index
	sources []int // block indices not reached from other blocks; nil if unknown
	sinks   []int // block indices reaching no other block; nil if unknown
}

// FunctionalGraph returns the graph on {0..n-1} with one edge i → a(i),
// labelled k, for the k-th generator a and every point i.
// Returns ErrDegreeMismatch if a generator does not have degree n.
func FunctionalGraph(degree int, gens []transformation.Transformation) (*core.Graph, error) {
	for k, a := range gens {
		if a.Degree() != degree {
			return nil, fmt.Errorf("%w: generator %d has degree %d, want %d",
				ErrDegreeMismatch, k, a.Degree(), degree)
		}
	}

	g := core.NewFunctionalGraph(degree)
	for k, a := range gens {
		for i := 0; i < degree; i++ {
			// loops and parallel edges are enabled; vertices are in range
			if _, err := g.AddEdge(i, a.At(i), k); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Bar computes the orbit quotient of {0..n-1} under gens: the strongly
// connected components of FunctionalGraph(degree, gens).
// Returns ErrDegreeMismatch if a generator does not have degree n.
// Complexity: O(n·|gens| + n log n) time, O(n·|gens|) memory.
func Bar(degree int, gens []transformation.Transformation) (*Partition, error) {
	return BarContext(context.Background(), degree, gens)
}

// BarContext is Bar with cancellation of the component search.
func BarContext(ctx context.Context, degree int, gens []transformation.Transformation) (*Partition, error) {
	g, err := FunctionalGraph(degree, gens)
	if err != nil {
		return nil, err
	}
	cond, err := dfs.Condense(g, dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("quotient: strongly connected components: %w", err)
	}

	p := newPartition(degree, cond.Components)
	p.sources = cond.Sources()
	p.sinks = cond.Sinks()

	return p, nil
}

// NewPartition validates blocks and returns them as a Partition of
// {0..degree-1}. Blocks are sorted internally; the input is not modified.
// Returns ErrNotPartition if a block is empty, a point is out of range,
// a point appears twice, or a point is missing.
func NewPartition(degree int, blocks [][]int) (*Partition, error) {
	seen := make([]bool, degree)
	count := 0
	sorted := make([][]int, len(blocks))
	for i, b := range blocks {
		if len(b) == 0 {
			return nil, fmt.Errorf("%w: block %d is empty", ErrNotPartition, i)
		}
		for _, x := range b {
			if x < 0 || x >= degree {
				return nil, fmt.Errorf("%w: point %d outside degree %d", ErrNotPartition, x, degree)
			}
			if seen[x] {
				return nil, fmt.Errorf("%w: point %d appears twice", ErrNotPartition, x)
			}
			seen[x] = true
			count++
		}
		sorted[i] = slices.Clone(b)
		sort.Ints(sorted[i])
	}
	if count != degree {
		return nil, fmt.Errorf("%w: %d of %d points covered", ErrNotPartition, count, degree)
	}
	sort.Slice(sorted, func(i, j int) bool { return slices.Compare(sorted[i], sorted[j]) < 0 })

	return newPartition(degree, sorted), nil
}

// newPartition indexes already sorted, valid blocks.
func newPartition(degree int, comps [][]int) *Partition {
	p := &Partition{
		degree:  degree,
		blocks:  make([]Block, len(comps)),
		blockOf: make([]int, degree),
	}
	for i, c := range comps {
		p.blocks[i] = Block(c)
		for _, x := range c {
			p.blockOf[x] = i
		}
	}

	return p
}

// Degree returns the size of the partitioned domain.
func (p *Partition) Degree() int { return p.degree }

// Len returns the number of blocks.
func (p *Partition) Len() int { return len(p.blocks) }

// Block returns block i. The returned slice must not be modified.
func (p *Partition) Block(i int) Block { return p.blocks[i] }

// Blocks returns a copy of all blocks in order.
func (p *Partition) Blocks() []Block {
	out := make([]Block, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = slices.Clone(b)
	}

	return out
}

// BlockOf returns the index of the block containing x.
// It panics if x is outside the domain.
func (p *Partition) BlockOf(x int) int { return p.blockOf[x] }

// IndexOf returns the index of block b, if b is one of p's blocks.
func (p *Partition) IndexOf(b Block) (int, bool) {
	if len(b) == 0 || b[0] < 0 || b[0] >= p.degree {
		return 0, false
	}
	i := p.blockOf[b[0]]
	if !slices.Equal(p.blocks[i], b) {
		return 0, false
	}

	return i, true
}

// Sources returns the blocks that no other block reaches in the functional
// graph, in increasing order. Only partitions built by Bar know their
// sources; for others Sources returns nil.
func (p *Partition) Sources() []int { return slices.Clone(p.sources) }

// Sinks returns the blocks from which no other block is reachable, in
// increasing order. Every generator maps a sink block into itself. Like
// Sources, it is nil for partitions not built by Bar.
func (p *Partition) Sinks() []int { return slices.Clone(p.sinks) }

// Orbit returns the points reachable from x by applying one or more
// generators, sorted. x itself is included only if it lies on a cycle
// (or is fixed by some generator).
func Orbit(degree int, gens []transformation.Transformation, x int) ([]int, error) {
	g, err := FunctionalGraph(degree, gens)
	if err != nil {
		return nil, err
	}
	if x < 0 || x >= degree {
		return nil, fmt.Errorf("quotient: point %d outside degree %d", x, degree)
	}

	reached := make([]bool, degree)
	mark := dfs.WithOnVisit(func(v int) error {
		reached[v] = true

		return nil
	})
	// everything below a reached point has been explored already
	fresh := dfs.WithFilterNeighbor(func(v int) bool { return !reached[v] })
	for _, a := range gens {
		start := a.At(x)
		if reached[start] {
			continue
		}
		if _, err = dfs.DFS(g, start, mark, fresh); err != nil {
			return nil, err
		}
	}

	var out []int
	for v, ok := range reached {
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}
