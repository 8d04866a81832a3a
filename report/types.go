package report

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/rivercross/puzzle"
)

var (
	// ErrInvalidOptions is returned by Run for an unusable Options value.
	ErrInvalidOptions = errors.New("report: invalid options")

	// ErrUnknownSolver is returned by ParseSolver.
	ErrUnknownSolver = errors.New("report: unknown solver")
)

// Solver names a way of producing a move sequence.
type Solver string

const (
	SolverBFS       Solver = "bfs"
	SolverDFS       Solver = "dfs"
	SolverHeuristic Solver = "heuristic"
)

// rank orders solvers within one (N, K) group of rows.
func (s Solver) rank() int {
	switch s {
	case SolverBFS:
		return 0
	case SolverDFS:
		return 1
	case SolverHeuristic:
		return 2
	default:
		return 3
	}
}

// ParseSolver accepts "bfs", "dfs" or "heuristic" in any case.
func ParseSolver(s string) (Solver, error) {
	switch v := Solver(strings.ToLower(strings.TrimSpace(s))); v {
	case SolverBFS, SolverDFS, SolverHeuristic:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSolver, s)
	}
}

// Row is one line of the solution table.
type Row struct {
	N, K     int
	Solver   Solver
	Solvable bool

	// MoveCount is len(Moves); 0 when not solvable.
	MoveCount int
	Moves     []puzzle.Move

	// Visited is the number of configurations the search recorded; 0 for
	// the heuristic.
	Visited int
	Elapsed time.Duration

	// Err is set when the solve was cut short (timeout, state budget) or
	// the produced sequence failed validation. Such rows are not solvable.
	Err error
}

// Outcome classifies the row for metrics: "solved", "unsolvable" or "error".
func (r Row) Outcome() string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Solvable:
		return "solved"
	default:
		return "unsolvable"
	}
}

// Options describes a report run: every N in [PairsMin, PairsMax] is solved
// for every capacity and solver.
type Options struct {
	PairsMin, PairsMax int
	Capacities         []int
	Solvers            []Solver

	// Rule defaults to puzzle.Paired.
	Rule puzzle.Rule

	// Workers bounds concurrent solves. Default 1.
	Workers int

	// Timeout bounds each individual solve. 0 means none.
	Timeout time.Duration

	// MaxStates bounds each search. 0 means none.
	MaxStates int

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// Metrics, if non-nil, observes every row.
	Metrics *Metrics
}

func (o Options) check() error {
	switch {
	case o.PairsMin < 1:
		return fmt.Errorf("%w: PairsMin %d < 1", ErrInvalidOptions, o.PairsMin)
	case o.PairsMax < o.PairsMin:
		return fmt.Errorf("%w: PairsMax %d < PairsMin %d", ErrInvalidOptions, o.PairsMax, o.PairsMin)
	case len(o.Capacities) == 0:
		return fmt.Errorf("%w: no capacities", ErrInvalidOptions)
	case len(o.Solvers) == 0:
		return fmt.Errorf("%w: no solvers", ErrInvalidOptions)
	case o.Workers < 0 || o.MaxStates < 0 || o.Timeout < 0:
		return fmt.Errorf("%w: negative limit", ErrInvalidOptions)
	}
	for _, k := range o.Capacities {
		if k < 1 {
			return fmt.Errorf("%w: capacity %d < 1", ErrInvalidOptions, k)
		}
	}
	for _, s := range o.Solvers {
		if _, err := ParseSolver(string(s)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}

	return nil
}
