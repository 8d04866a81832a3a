package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
)

// ExampleNextStates lists the legal first crossings of the two-couple puzzle
// with a boat of two. Lone agents and mixed loads are pruned.
func ExampleNextStates() {
	start := puzzle.New(2, 2)
	for _, next := range puzzle.NextStates(start) {
		fmt.Println(next)
	}
	// Output:
	// L:[A1 a2 A2] -B-> R:[a1]
	// L:[a1 A1 A2] -B-> R:[a2]
	// L:[a2 A2] -B-> R:[a1 A1]
	// L:[A1 A2] -B-> R:[a1 a2]
	// L:[a1 a2] -B-> R:[A1 A2]
	// L:[a1 A1] -B-> R:[a2 A2]
}

// ExampleIsGroupSafe shows the paired rule on a few boat loads.
func ExampleIsGroupSafe() {
	pop := puzzle.Population(3)
	actors, agents := pop.Actors(), pop.Agents()

	loads := []puzzle.Group{
		puzzle.NewGroup(puzzle.ActorOf(1), puzzle.AgentOf(1), puzzle.AgentOf(2)),
		puzzle.NewGroup(puzzle.ActorOf(1), puzzle.AgentOf(2)),
		puzzle.NewGroup(puzzle.AgentOf(2), puzzle.AgentOf(3)),
	}
	for _, load := range loads {
		fmt.Println(load, puzzle.IsGroupSafe(load, actors, agents))
	}
	// Output:
	// [a1 A1 A2] true
	// [a1 A2] false
	// [A2 A3] true
}

// ExampleFormatPath turns a hand-built path into boat loads.
func ExampleFormatPath() {
	start := puzzle.New(2, 4)
	done := start.Cross(start.Source())
	fmt.Println(done.IsGoal(), puzzle.FormatPath([]puzzle.Config{start, done}))
	// Output:
	// true [[a1 A1 a2 A2]]
}
