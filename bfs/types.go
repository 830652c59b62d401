package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by WordTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error. Returning ErrStop ends the
	// search early without error.
	OnVisit func(id int, depth int) error
}

// ErrStop may be returned from an OnVisit hook to end the search early.
// BFS then returns the partial result and a nil error.
var ErrStop = errors.New("bfs: stop")

// DefaultOptions returns a background context and a no-op visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a traversal.
type BFSResult struct {
	// Start is the vertex the search began from.
	Start int
	// Order lists vertices in visit sequence.
	Order []int
	// Depth maps a reached vertex to its distance in edges from Start.
	Depth map[int]int
	// Parent maps a reached vertex other than Start to its BFS-tree predecessor.
	Parent map[int]int
	// Label maps a reached vertex other than Start to the label of the tree
	// edge entering it.
	Label map[int]int
}

// WordTo returns the edge labels along the tree path from Start to dest.
// The word for Start itself is empty.
func (r *BFSResult) WordTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	word := make([]int, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; cur = r.Parent[cur] {
		word = append(word, r.Label[cur])
	}
	slices.Reverse(word)

	return word, nil
}
