// Package dfs provides an iterative depth-first search over puzzle.Config.
//
// DFS finds some solution of a river-crossing puzzle using less bookkeeping
// than BFS, at the price of optimality: the returned path may be longer than
// the shortest one.
//
// Algorithm
//
//	push(start); mark(start)
//	while stack not empty:
//	    c = pop()
//	    OnVisit(c)
//	    for s in NextStates(c):
//	        if s seen: skip
//	        if s is goal: return path(s)
//	        mark(s); push(s)
//
// Successors are pushed in canonical order, so the last generated successor
// is expanded first. Results are deterministic for a given start.
//
// Options
//
//   - WithContext:   cancellation or deadline.
//   - WithOnVisit:   pre-order hook; an error aborts the search.
//   - WithMaxDepth:  prune successors beyond a number of crossings (0 = none).
//   - WithMaxStates: bound the number of recorded configurations (0 = none).
//
// Note that with visited-on-generation marking a depth limit may hide
// solutions that a different visiting order would find within the limit.
//
// Errors
//
//   - ErrOptionViolation  for negative limits.
//   - ErrBudgetExceeded   when MaxStates runs out.
//   - context errors      on cancellation.
//   - wrapped OnVisit errors.
package dfs
