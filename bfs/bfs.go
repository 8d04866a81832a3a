// Package bfs provides breadth-first search over puzzle configurations,
// returning a shortest sequence of crossings from a start to a goal.
//
// BFS explores configurations in increasing number of crossings from the
// start, with optional hooks, depth limiting and a state budget.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
)

// node links a recorded configuration to the one it was generated from.
type node struct {
	cfg    puzzle.Config
	depth  int
	parent *node // nil for root
}

// walker encapsulates mutable BFS state. It lives for one Solve call only.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	queue   []*node
	visited map[string]struct{}
	res     *Result
}

// Solve runs breadth-first search from initial, applying any number of
// functional Options.
//
// Contract:
//   - invalid initial → Result with nil Path, nil error;
//   - initial already a goal → Path == [initial];
//   - otherwise the first goal generated is returned; since every crossing
//     costs one, it is reached by a shortest path;
//   - exhausted search → nil Path, nil error (the instance is unsolvable).
//
// Errors: ErrOptionViolation for bad options, ErrBudgetExceeded when
// WithMaxStates is exhausted, ctx.Err() on cancellation, or a wrapped
// OnVisit error. The partially filled Result is returned alongside.
func Solve(initial puzzle.Config, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{}
	if !initial.IsValid() {
		return res, nil
	}
	if initial.IsGoal() {
		res.Path = []puzzle.Config{initial}
		res.Visited = 1

		return res, nil
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]*node, 0, 64),
		visited: make(map[string]struct{}, 64),
		res:     res,
	}
	// Seed queue with the start configuration (no parent)
	if err := w.enqueue(&node{cfg: initial}); err != nil {
		return res, err
	}

	return res, w.loop()
}

// enqueue marks n visited, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(n *node) error {
	if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
		return fmt.Errorf("%w: %d configurations recorded", ErrBudgetExceeded, len(w.visited))
	}
	w.visited[n.cfg.Key()] = struct{}{}
	w.res.Visited = len(w.visited)
	w.opts.OnEnqueue(n.cfg, n.depth)
	w.queue = append(w.queue, n)

	return nil
}

// loop processes the queue until a goal is generated, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.dequeue()
		if err := w.opts.OnVisit(cur.cfg, cur.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.cfg.Key(), err)
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue
		}
		w.res.Expanded++

		done, err := w.expand(cur)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// dequeue pops the first node.
func (w *walker) dequeue() *node {
	n := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]

	return n
}

// expand records every unseen successor of cur. It reports done as soon as
// a goal is generated, before the goal is ever queued.
func (w *walker) expand(cur *node) (bool, error) {
	var key string
	for _, next := range puzzle.NextStates(cur.cfg) {
		key = next.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		child := &node{cfg: next, depth: cur.depth + 1, parent: cur}
		if next.IsGoal() {
			w.visited[key] = struct{}{}
			w.res.Visited = len(w.visited)
			w.res.Path = pathTo(child)

			return true, nil
		}
		if err := w.enqueue(child); err != nil {
			return false, err
		}
	}

	return false, nil
}

// pathTo rebuilds the start → n path from parent links.
func pathTo(n *node) []puzzle.Config {
	path := make([]puzzle.Config, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.cfg)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
