package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/heuristic"
)

func newHeuristicCmd(a *app) *cobra.Command {
	var pairs int
	cmd := &cobra.Command{
		Use:   "heuristic",
		Short: "Print the validated 2N-3 plan for a boat of four",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := heuristic.Solve(pairs, heuristic.Capacity)
			if err != nil {
				return err
			}
			a.logger.Info("construction validated", "pairs", pairs, "moves", len(moves))
			printMoves(a, moves)

			return nil
		},
	}
	cmd.Flags().IntVarP(&pairs, "pairs", "n", 6, "number of actor/agent pairs (>= 2)")

	return cmd
}
