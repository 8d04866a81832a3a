// Package bfs provides breadth-first search over puzzle.Config, returning a
// shortest solution path of a river-crossing puzzle.
//
// What
//
//   - Explore configurations in non-decreasing number of crossings from the start.
//   - Successors come from puzzle.NextStates; duplicates are recognized by
//     puzzle.Config.Key and recorded the moment they are generated.
//   - The goal is detected when it is generated, not when it is dequeued.
//   - Returns a Result containing:
//   - Path: start → goal configurations (nil when none is reachable)
//   - Visited / Expanded: search effort counters
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a configuration is recorded)
//   - OnVisit   (when expanding; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0), and a
//     MaxStates budget for callers that must bound runtime.
//
// Why
//
//   - Uniform crossing cost makes BFS layer order equal to path length order,
//     so the first goal found is optimal.
//   - "No path" is a normal outcome: Solve returns a nil Path and a nil error
//     after exhausting the reachable space.
//
// Determinism
//
//	puzzle.NextStates enumerates loads in canonical order, so for a given
//	start the returned path is reproducible.
//
// Concurrency
//
//	Each Solve owns its queue and visited set. Independent solves may run in
//	parallel; Configs are immutable and safe to share.
//
// Complexity (S = reachable configurations, B = successors per configuration)
//
//   - Time:   O(S · B)
//   - Memory: O(S)       (visited set, queue, parent links)
//
// Usage
//
//	res, err := bfs.Solve(puzzle.New(3, 2))
//	if err != nil {
//	    // ErrOptionViolation, ErrBudgetExceeded, ctx errors or hook errors
//	}
//	if !res.Found() {
//	    // unsolvable instance
//	}
//	moves := res.Moves()
//
//	// With functional options:
//	res, err = bfs.Solve(start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxStates(100000),
//	    bfs.WithOnVisit(func(c puzzle.Config, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrBudgetExceeded   if the MaxStates budget runs out.
//   - context errors      if the context is cancelled or times out.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
