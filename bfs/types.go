// Package bfs provides tunable options, error definitions and the result
// type for breadth-first search over puzzle configurations.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBudgetExceeded is returned when the search would record more distinct
	// configurations than allowed by WithMaxStates.
	ErrBudgetExceeded = errors.New("bfs: state budget exceeded")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a configuration is enqueued, with its depth.
	OnEnqueue func(c puzzle.Config, depth int)

	// OnVisit is called when a configuration is dequeued for expansion.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(c puzzle.Config, depth int) error

	// MaxDepth, if > 0, stops generating successors beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, caps the number of distinct configurations the
	// search may record. 0 means unlimited.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit, no state budget
//   - no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(puzzle.Config, int) {},
		OnVisit:   func(puzzle.Config, int) error { return nil },
		MaxDepth:  0,
		MaxStates: 0,
		err:       nil,
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c puzzle.Config, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c puzzle.Config, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (in crossings).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates caps the distinct configurations recorded by the search.
//
//	n > 0: budget of n configurations
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of a BFS solve:
//   - Path: initial → goal configurations, or nil when no goal is reachable
//     (or the initial configuration is invalid).
//   - Visited: distinct configurations recorded.
//   - Expanded: configurations whose successors were generated.
type Result struct {
	Path     []puzzle.Config
	Visited  int
	Expanded int
}

// Found reports whether a solution path was found.
func (r *Result) Found() bool { return r != nil && r.Path != nil }

// Moves returns the boat loads along Path.
func (r *Result) Moves() []puzzle.Move {
	if r == nil {
		return []puzzle.Move{}
	}

	return puzzle.FormatPath(r.Path)
}
