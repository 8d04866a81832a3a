// Package dfs defines types and options for depth-first search over puzzle
// configurations, including cancellation, a pre-order hook, depth limiting
// and a state budget.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
)

var (
	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrBudgetExceeded indicates that the search would record more distinct
	// configurations than allowed by WithMaxStates.
	ErrBudgetExceeded = errors.New("dfs: state budget exceeded")
)

// Option configures optional behavior of DFS.
// Use with Solve(initial, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS.
// Complexity remains O(S·B) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a configuration is popped for
	// expansion (pre-order). Returning an error aborts the search.
	OnVisit func(c puzzle.Config, depth int) error

	// MaxDepth, if positive, prunes successors deeper than the given number
	// of crossings. 0 means no limit.
	MaxDepth int

	// MaxStates, if positive, caps the distinct configurations recorded.
	// 0 means no budget.
	MaxStates int

	// PrunedByDepth counts successors dropped because of MaxDepth.
	// Useful for diagnostics.
	PrunedByDepth int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit, no state budget
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		OnVisit:       nil,
		MaxDepth:      0,
		MaxStates:     0,
		PrunedByDepth: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(c puzzle.Config, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits the search to paths of at most
// limit crossings. 0 disables the limit; a negative limit is a violation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithMaxStates returns an Option that caps the distinct configurations the
// search may record. 0 disables the budget; a negative value is a violation.
func WithMaxStates(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result captures the outcome of a depth-first solve.
type Result struct {
	// Path lists start → goal configurations; nil when no goal was reached.
	Path []puzzle.Config

	// Visited is the number of distinct configurations recorded.
	Visited int

	// Expanded is the number of configurations whose successors were generated.
	Expanded int

	// PrunedByDepth mirrors DFSOptions.PrunedByDepth after the search.
	PrunedByDepth int
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
