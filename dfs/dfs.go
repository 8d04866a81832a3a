// Package dfs implements depth-first search over puzzle configurations.
// It returns some solution path, not necessarily a shortest one.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
)

// frame is one recorded configuration and the frame it was generated from.
type frame struct {
	cfg    puzzle.Config
	depth  int
	parent *frame
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts    DFSOptions          // search options
	stack   []*frame            // explicit stack
	visited map[string]struct{} // keys of recorded configurations
	res     *Result             // result collector
}

// Solve performs depth-first search from initial and returns any path to a
// goal. It follows the same contract as bfs.Solve: an invalid start yields a
// nil Path, a goal start yields [initial], and an exhausted search yields a
// nil Path with a nil error.
func Solve(initial puzzle.Config, opts ...Option) (*Result, error) {
	// 1. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Trivial starts
	res := &Result{}
	if !initial.IsValid() {
		return res, nil
	}
	if initial.IsGoal() {
		res.Path = []puzzle.Config{initial}
		res.Visited = 1

		return res, nil
	}

	// 3. Search
	w := &dfsWalker{
		opts:    dopts,
		stack:   make([]*frame, 0, 64),
		visited: make(map[string]struct{}, 64),
		res:     res,
	}
	w.record(&frame{cfg: initial})
	err := w.run()

	// 4. Expose diagnostics
	res.PrunedByDepth = w.opts.PrunedByDepth

	return res, err
}

// record marks f visited and pushes it.
func (w *dfsWalker) record(f *frame) {
	w.visited[f.cfg.Key()] = struct{}{}
	w.res.Visited = len(w.visited)
	w.stack = append(w.stack, f)
}

// run pops frames until a goal is generated or the stack empties.
func (w *dfsWalker) run() error {
	var cur *frame
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		cur = w.stack[len(w.stack)-1]
		w.stack[len(w.stack)-1] = nil
		w.stack = w.stack[:len(w.stack)-1]

		// 3. Pre-order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur.cfg, cur.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", cur.cfg.Key(), err)
			}
		}
		w.res.Expanded++

		// 4. Successors; revisits are skipped entirely
		var key string
		for _, next := range puzzle.NextStates(cur.cfg) {
			key = next.Key()
			if _, seen := w.visited[key]; seen {
				continue
			}
			if w.opts.MaxDepth > 0 && cur.depth+1 > w.opts.MaxDepth {
				w.opts.PrunedByDepth++
				continue
			}
			child := &frame{cfg: next, depth: cur.depth + 1, parent: cur}
			if next.IsGoal() {
				w.visited[key] = struct{}{}
				w.res.Visited = len(w.visited)
				w.res.Path = unwind(child)

				return nil
			}
			if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
				return fmt.Errorf("%w: %d configurations recorded", ErrBudgetExceeded, len(w.visited))
			}
			w.record(child)
		}
	}

	return nil
}

// unwind rebuilds the start → f path from parent links.
func unwind(f *frame) []puzzle.Config {
	path := make([]puzzle.Config, f.depth+1)
	for cur := f; cur != nil; cur = cur.parent {
		path[cur.depth] = cur.cfg
	}

	return path
}
