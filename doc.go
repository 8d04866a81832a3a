// Package rivercross solves generalized river-crossing puzzles.
//
// N pairs of individuals, each an actor a<i> and its agent A<i>, must cross
// a river in a boat that carries at most K of them. A group is unsafe when an
// actor is with some agent while its own agent is absent; the boat, and both
// banks after every crossing, must stay safe. The classic missionaries and
// cannibals rule (agents may not outnumber actors) is available as an
// alternative rule.
//
// Packages:
//
//	puzzle/         individuals, groups, safety rules, immutable configurations,
//	                successor generation and move formatting
//	bfs/            breadth-first search, shortest plans
//	dfs/            iterative depth-first search, some plan
//	heuristic/      closed-form 2N-3 plan for a boat of four
//	validate/       replays a move list and names the first illegal move
//	report/         concurrent solution tables, CSV output, Prometheus metrics
//	plan/           YAML plan files for report runs
//	logging/        slog construction for the command
//	cmd/rivercross  the command-line tool
//
// Quick start:
//
//	res, err := bfs.Solve(puzzle.New(3, 2))
//	if err == nil && res.Found() {
//	    fmt.Println(res.Moves()) // 11 crossings
//	}
package rivercross
