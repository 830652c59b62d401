package dfs

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/centraliser/core"
)

// sccFrame is one level of the explicit Tarjan call stack.
type sccFrame struct {
	v    int   // vertex being expanded
	succ []int // distinct successors of v
	next int   // index of the next successor to examine
}

// tarjan holds the bookkeeping of Tarjan's algorithm.
type tarjan struct {
	graph   *core.Graph
	counter int
	index   map[int]int
	low     map[int]int
	onStack map[int]bool
	stack   []int
	comps   [][]int
}

// StronglyConnectedComponents returns the strongly connected components of g.
// Each component is sorted ascending; the components are sorted
// lexicographically. Every vertex belongs to exactly one component, so a
// vertex on no cycle forms a singleton.
//
// Only the Ctx field of the options is honored; cancellation is checked once
// per vertex.
func StronglyConnectedComponents(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	verts := g.Vertices()
	t := &tarjan{
		graph:   g,
		index:   make(map[int]int, len(verts)),
		low:     make(map[int]int, len(verts)),
		onStack: make(map[int]bool, len(verts)),
	}

	for _, root := range verts {
		if _, seen := t.index[root]; seen {
			continue
		}
		if err := t.run(dopts, root); err != nil {
			return nil, err
		}
	}

	sort.Slice(t.comps, func(i, j int) bool { return slices.Compare(t.comps[i], t.comps[j]) < 0 })

	return t.comps, nil
}

// run expands the DFS tree rooted at root with an explicit stack.
func (t *tarjan) run(opts DFSOptions, root int) error {
	if err := opts.Ctx.Err(); err != nil {
		return err
	}
	first, err := t.open(root)
	if err != nil {
		return err
	}
	call := []sccFrame{first}

	for len(call) > 0 {
		top := &call[len(call)-1]

		if top.next < len(top.succ) {
			w := top.succ[top.next]
			top.next++
			if _, seen := t.index[w]; !seen {
				select {
				case <-opts.Ctx.Done():
					return opts.Ctx.Err()
				default:
				}
				frame, err := t.open(w)
				if err != nil {
					return err
				}
				call = append(call, frame)
			} else if t.onStack[w] {
				t.low[top.v] = min(t.low[top.v], t.index[w])
			}
			continue
		}

		// all successors of v explored
		v := top.v
		call = call[:len(call)-1]
		if len(call) > 0 {
			parent := call[len(call)-1].v
			t.low[parent] = min(t.low[parent], t.low[v])
		}
		if t.low[v] == t.index[v] {
			t.emit(v)
		}
	}

	return nil
}

// open assigns v its discovery index and pushes it on the component stack.
func (t *tarjan) open(v int) (sccFrame, error) {
	succ, err := t.graph.NeighborIDs(v)
	if err != nil {
		return sccFrame{}, fmt.Errorf("dfs: NeighborIDs(%d): %w", v, err)
	}
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	return sccFrame{v: v, succ: succ}, nil
}

// emit pops the component rooted at v.
func (t *tarjan) emit(v int) {
	var comp []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	sort.Ints(comp)
	t.comps = append(t.comps, comp)
}
