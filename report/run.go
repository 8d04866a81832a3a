// Package report solves a grid of puzzle instances concurrently and renders
// the results as a solution table.
//
// Every instance N in [PairsMin, PairsMax], capacity K and solver becomes one
// Row. Searches run on a bounded errgroup; each gets its own timeout and
// state budget, and every sequence a solver returns is replayed by the
// validator before the row is marked solvable. A solve that times out or
// exhausts its budget is a row with Err set, not a failed run; only
// cancellation of the caller's context aborts Run.
package report

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/dfs"
	"github.com/katalvlaran/rivercross/heuristic"
	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/validate"
)

type job struct {
	n, k   int
	solver Solver
}

// Run solves every instance described by opts and returns the rows sorted
// by (N, K, solver). Heuristic rows exist only for K = heuristic.Capacity
// and N >= 2, the family the construction covers.
func Run(ctx context.Context, opts Options) ([]Row, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	if opts.Rule == nil {
		opts.Rule = puzzle.Paired
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	jobs := expand(opts)
	logger.Info("report started",
		slog.Int("jobs", len(jobs)),
		slog.Int("workers", opts.Workers),
		slog.String("rule", opts.Rule.Name()))

	start := time.Now()
	rows := make([]Row, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, j := range jobs {
		g.Go(func() error {
			row, err := solveOne(gctx, j, opts)
			if err != nil {
				return err
			}
			rows[i] = row
			opts.Metrics.observe(row)
			logger.Debug("instance solved",
				slog.Int("n", row.N),
				slog.Int("k", row.K),
				slog.String("solver", string(row.Solver)),
				slog.String("outcome", row.Outcome()),
				slog.Int("moves", row.MoveCount),
				slog.Duration("elapsed", row.Elapsed))
			if row.Err != nil {
				logger.Warn("instance not settled",
					slog.Int("n", row.N),
					slog.Int("k", row.K),
					slog.String("solver", string(row.Solver)),
					slog.Any("error", row.Err))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("report aborted", slog.Any("error", err))
		return nil, err
	}

	slices.SortFunc(rows, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(a.N, b.N),
			cmp.Compare(a.K, b.K),
			cmp.Compare(a.Solver.rank(), b.Solver.rank()),
		)
	})
	logger.Info("report finished", slog.Int("rows", len(rows)), slog.Duration("elapsed", time.Since(start)))

	return rows, nil
}

// expand builds the job list, dropping heuristic jobs outside its family.
func expand(o Options) []job {
	var jobs []job
	for n := o.PairsMin; n <= o.PairsMax; n++ {
		for _, k := range o.Capacities {
			for _, s := range o.Solvers {
				if s == SolverHeuristic && (k != heuristic.Capacity || n < 2) {
					continue
				}
				jobs = append(jobs, job{n: n, k: k, solver: s})
			}
		}
	}

	return jobs
}

// solveOne runs one job. The returned error is non-nil only when ctx itself
// is done; every other failure is recorded on the row.
func solveOne(ctx context.Context, j job, o Options) (Row, error) {
	if err := ctx.Err(); err != nil {
		return Row{}, err
	}
	row := Row{N: j.n, K: j.k, Solver: j.solver}

	sctx, cancel := ctx, context.CancelFunc(func() {})
	if o.Timeout > 0 {
		sctx, cancel = context.WithTimeout(ctx, o.Timeout)
	}
	defer cancel()

	var (
		moves []puzzle.Move
		found bool
		err   error
	)
	start := time.Now()
	initial := puzzle.New(j.n, j.k, puzzle.WithRule(o.Rule))
	switch j.solver {
	case SolverBFS:
		var res *bfs.Result
		res, err = bfs.Solve(initial, bfs.WithContext(sctx), bfs.WithMaxStates(o.MaxStates))
		if res != nil {
			row.Visited, found, moves = res.Visited, res.Found(), res.Moves()
		}
	case SolverDFS:
		var res *dfs.Result
		res, err = dfs.Solve(initial, dfs.WithContext(sctx), dfs.WithMaxStates(o.MaxStates))
		if res != nil {
			row.Visited, found, moves = res.Visited, res.Found(), res.Moves()
		}
	case SolverHeuristic:
		moves, err = heuristic.Solve(j.n, j.k)
		found = err == nil
	}
	row.Elapsed = time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return Row{}, ctx.Err()
		}
		row.Err = err

		return row, nil
	}
	if !found {
		return row, nil
	}
	if err = validate.Moves(j.n, j.k, moves, validate.WithRule(o.Rule)); err != nil {
		row.Err = err

		return row, nil
	}
	row.Solvable, row.Moves, row.MoveCount = true, moves, len(moves)

	return row, nil
}
