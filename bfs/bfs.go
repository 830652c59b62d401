// Package bfs runs breadth-first search over a labelled *core.Graph and
// records, for every reached vertex, the tree edge that reached it.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per dequeued vertex.
//   - WithOnVisit(fn)    hook on dequeue; ErrStop ends the search cleanly.
//
// Errors:
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if startID is missing.
//   - ErrNeighbors             if the graph cannot list a vertex's edges.
//   - ctx.Err()                if the context is done.
//   - any OnVisit error other than ErrStop, wrapped.
//
// Complexity:
//
//   - Time:   O(V + E log d), d = maximum out-degree (edges are visited in ID order).
//   - Memory: O(V) for the queue and the result maps.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/centraliser/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID. Outgoing edges
// are followed in edge-ID order, so for a Cayley graph built generator by
// generator the tree words are shortlex-least among shortest words.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, the context error on cancellation, or
// any hook error other than ErrStop. On ErrStop the partial result is
// returned with a nil error.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
			Label:  make(map[int]int, n),
		},
	}

	w.res.Depth[startID] = 0
	w.queue = append(w.queue, queueItem{id: startID})
	err := w.loop()
	if errors.Is(err, ErrStop) {
		err = nil
	}

	return w.res, err
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}

			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors follows outgoing edges in ID order and enqueues each
// unseen endpoint, recording the edge label that reached it.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range edges {
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Depth[e.To] = next
		w.res.Parent[e.To] = item.id
		w.res.Label[e.To] = e.Label
		w.queue = append(w.queue, queueItem{id: e.To, depth: next})
	}

	return nil
}
