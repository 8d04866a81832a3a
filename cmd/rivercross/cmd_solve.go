package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/dfs"
	"github.com/katalvlaran/rivercross/puzzle"
)

type solveFlags struct {
	pairs      int
	capacity   int
	algo       string
	rule       string
	timeout    time.Duration
	maxStates  int
	showStates bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a crossing plan with BFS (shortest) or DFS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), a, f)
		},
	}
	cmd.Flags().IntVarP(&f.pairs, "pairs", "n", 3, "number of actor/agent pairs")
	cmd.Flags().IntVarP(&f.capacity, "capacity", "k", 2, "boat capacity")
	cmd.Flags().StringVar(&f.algo, "algo", "bfs", "search algorithm: bfs or dfs")
	cmd.Flags().StringVar(&f.rule, "rule", "paired", "safety rule: paired or outnumbered")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the search after this long (0 = never)")
	cmd.Flags().IntVar(&f.maxStates, "max-states", 0, "abort after recording this many configurations (0 = unbounded)")
	cmd.Flags().BoolVar(&f.showStates, "states", false, "print every configuration along the plan")

	return cmd
}

func runSolve(ctx context.Context, a *app, f *solveFlags) error {
	if f.pairs < 0 || f.capacity < 1 {
		return fmt.Errorf("solve: need --pairs >= 0 and --capacity >= 1, got %d and %d", f.pairs, f.capacity)
	}
	rule, ok := puzzle.RuleByName(f.rule)
	if !ok {
		return fmt.Errorf("solve: unknown rule %q", f.rule)
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	start := puzzle.New(f.pairs, f.capacity, puzzle.WithRule(rule))

	var (
		path    []puzzle.Config
		visited int
		err     error
	)
	began := time.Now()
	switch f.algo {
	case "bfs":
		var res *bfs.Result
		if res, err = bfs.Solve(start, bfs.WithContext(ctx), bfs.WithMaxStates(f.maxStates)); res != nil {
			path, visited = res.Path, res.Visited
		}
	case "dfs":
		var res *dfs.Result
		if res, err = dfs.Solve(start, dfs.WithContext(ctx), dfs.WithMaxStates(f.maxStates)); res != nil {
			path, visited = res.Path, res.Visited
		}
	default:
		return fmt.Errorf("solve: unknown algorithm %q", f.algo)
	}
	a.logger.Info("search finished",
		"algo", f.algo,
		"pairs", f.pairs,
		"capacity", f.capacity,
		"rule", rule.Name(),
		"visited", visited,
		"elapsed", time.Since(began))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	if path == nil {
		fmt.Fprintf(a.out, "no solution for N=%d K=%d (%s)\n", f.pairs, f.capacity, rule.Name())
		return nil
	}
	printMoves(a, puzzle.FormatPath(path))
	if f.showStates {
		for i, c := range path {
			fmt.Fprintf(a.out, "%3d  %s\n", i, c)
		}
	}

	return nil
}

func printMoves(a *app, moves []puzzle.Move) {
	fmt.Fprintf(a.out, "%d moves\n", len(moves))
	for i, m := range moves {
		arrow := "->"
		if i%2 == 1 {
			arrow = "<-"
		}
		fmt.Fprintf(a.out, "%3d  %s %s\n", i+1, arrow, m)
	}
}
