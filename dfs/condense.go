package dfs

import (
	"github.com/katalvlaran/centraliser/core"
)

// Condensation is the DAG obtained by contracting every strongly connected
// component of a graph to a single vertex.
type Condensation struct {
	// Components are the SCCs, in the order of StronglyConnectedComponents.
	// Vertex i of DAG is Components[i].
	Components [][]int

	// ComponentOf maps an original vertex to its component index.
	ComponentOf map[int]int

	// DAG has one vertex per component and one edge per pair of distinct
	// components joined by at least one original edge. Labels are the label
	// of the first such original edge.
	DAG *core.Graph
}

// Condense computes the condensation of g.
func Condense(g *core.Graph, opts ...Option) (*Condensation, error) {
	comps, err := StronglyConnectedComponents(g, opts...)
	if err != nil {
		return nil, err
	}

	c := &Condensation{
		Components:  comps,
		ComponentOf: make(map[int]int, g.VertexCount()),
		DAG:         core.NewGraph(),
	}
	for i, comp := range comps {
		_ = c.DAG.AddVertex(i)
		for _, v := range comp {
			c.ComponentOf[v] = i
		}
	}

	for _, e := range g.Edges() {
		from, to := c.ComponentOf[e.From], c.ComponentOf[e.To]
		if from == to || c.DAG.HasEdge(from, to) {
			continue
		}
		if _, err = c.DAG.AddEdge(from, to, e.Label); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Sources returns the indices of components with no incoming edge from
// another component, in increasing order.
func (c *Condensation) Sources() []int {
	reached := make([]bool, len(c.Components))
	for _, e := range c.DAG.Edges() {
		reached[e.To] = true
	}
	var out []int
	for i, r := range reached {
		if !r {
			out = append(out, i)
		}
	}

	return out
}

// Sinks returns the indices of components with no outgoing edge to another
// component, in increasing order.
func (c *Condensation) Sinks() []int {
	var out []int
	for i := range c.Components {
		succ, _ := c.DAG.NeighborIDs(i) // every component index is a vertex
		if len(succ) == 0 {
			out = append(out, i)
		}
	}

	return out
}
