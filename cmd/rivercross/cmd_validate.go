package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/validate"
)

type validateFlags struct {
	pairs    int
	capacity int
	moves    string
	rule     string
}

func newValidateCmd(a *app) *cobra.Command {
	f := &validateFlags{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Replay a move list and report the first illegal move",
		Long: `Replay a move list against a fresh puzzle.

Moves are separated by ';' and individuals within a move by ',':
  --moves 'a1,A1;A1;A1,A2;a1;a1,a2'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(a, f)
		},
	}
	cmd.Flags().IntVarP(&f.pairs, "pairs", "n", 3, "number of actor/agent pairs")
	cmd.Flags().IntVarP(&f.capacity, "capacity", "k", 2, "boat capacity")
	cmd.Flags().StringVar(&f.moves, "moves", "", "move list, e.g. 'a1,A1;a1'")
	cmd.Flags().StringVar(&f.rule, "rule", "paired", "safety rule: paired or outnumbered")

	return cmd
}

func runValidate(a *app, f *validateFlags) error {
	rule, ok := puzzle.RuleByName(f.rule)
	if !ok {
		return fmt.Errorf("validate: unknown rule %q", f.rule)
	}
	moves, err := parseMoveList(f.moves)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	err = validate.Moves(f.pairs, f.capacity, moves, validate.WithRule(rule), validate.WithLogger(a.logger))
	var v *validate.Violation
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "OK: %d moves solve N=%d K=%d\n", len(moves), f.pairs, f.capacity)
		return nil
	case errors.As(err, &v):
		fmt.Fprintf(a.out, "INVALID at move %d (%s): %s\n", v.Index, v.Reason, v.Detail)
	}

	return err
}

// parseMoveList splits "a1,A1;a1" into moves. Blank moves are skipped.
func parseMoveList(s string) ([]puzzle.Move, error) {
	var loads [][]string
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var ids []string
		for _, id := range strings.Split(part, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		loads = append(loads, ids)
	}

	return puzzle.ParseMoves(loads)
}
