// Package heuristic builds river-crossing solutions for the paired family
// with a boat of four directly, without search.
package heuristic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/validate"
)

// Capacity is the only boat capacity the construction is defined for.
const Capacity = 4

var (
	// ErrUnsupportedCapacity is returned by Solve for any capacity other than Capacity.
	ErrUnsupportedCapacity = errors.New("heuristic: construction requires a boat capacity of 4")

	// ErrConstructionRejected wraps the validator's verdict when a built
	// sequence does not solve the requested instance.
	ErrConstructionRejected = errors.New("heuristic: construction rejected by validator")
)

// Construct returns the 2N-3 load sequence for N pairs and a boat of four.
//
// Pair 1 ferries every pair i = 3..N across (a1 A1 ai Ai over, a1 A1 back),
// then pairs 1 and 2 cross together. For N < 2 the result is empty.
// Nothing is checked; see Solve.
func Construct(pairs int) []puzzle.Move {
	if pairs < 2 {
		return []puzzle.Move{}
	}
	ferryActor, ferryAgent := puzzle.ActorOf(1), puzzle.AgentOf(1)

	out := make([]puzzle.Move, 0, MoveCount(pairs))
	for i := 3; i <= pairs; i++ {
		out = append(out,
			puzzle.NewMove(ferryActor, ferryAgent, puzzle.ActorOf(i), puzzle.AgentOf(i)),
			puzzle.NewMove(ferryActor, ferryAgent),
		)
	}

	return append(out, puzzle.NewMove(ferryActor, ferryAgent, puzzle.ActorOf(2), puzzle.AgentOf(2)))
}

// MoveCount returns the length of Construct(pairs): 2N-3 for N >= 2, else 0.
func MoveCount(pairs int) int {
	if pairs < 2 {
		return 0
	}

	return 2*pairs - 3
}

// Solve is the checked entry point: it refuses capacities other than
// Capacity and re-validates the construction before returning it.
func Solve(pairs, capacity int) ([]puzzle.Move, error) {
	if capacity != Capacity {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedCapacity, capacity)
	}
	moves := Construct(pairs)
	if err := validate.Moves(pairs, capacity, moves); err != nil {
		return nil, fmt.Errorf("%w: N=%d: %w", ErrConstructionRejected, pairs, err)
	}

	return moves, nil
}
