package heuristic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/heuristic"
	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/validate"
)

func TestConstruct_ValidForAllSizes(t *testing.T) {
	for n := 2; n <= 60; n++ {
		moves := heuristic.Construct(n)
		require.Len(t, moves, 2*n-3, "N=%d", n)
		assert.Equal(t, heuristic.MoveCount(n), len(moves))
		require.NoError(t, validate.Moves(n, heuristic.Capacity, moves), "N=%d", n)
	}
}

func TestConstruct_Boundaries(t *testing.T) {
	assert.Empty(t, heuristic.Construct(0))
	assert.Empty(t, heuristic.Construct(1))
	assert.Empty(t, heuristic.Construct(-3))
	assert.Zero(t, heuristic.MoveCount(1))

	assert.Equal(t, "[[a1 A1 a2 A2]]", fmt.Sprint(heuristic.Construct(2)))
	assert.Equal(t, "[[a1 A1 a3 A3] [a1 A1] [a1 A1 a2 A2]]", fmt.Sprint(heuristic.Construct(3)))
}

func TestConstruct_NeverBeatsBFS(t *testing.T) {
	// Breadth-first search is optimal, so it bounds the construction from below.
	for n := 2; n <= 4; n++ {
		res, err := bfs.Solve(puzzle.New(n, heuristic.Capacity))
		require.NoError(t, err)
		require.True(t, res.Found())
		assert.LessOrEqual(t, len(res.Moves()), heuristic.MoveCount(n), "N=%d", n)
	}
}

func TestSolve(t *testing.T) {
	moves, err := heuristic.Solve(6, 4)
	require.NoError(t, err)
	assert.Len(t, moves, 9)

	_, err = heuristic.Solve(6, 3)
	assert.ErrorIs(t, err, heuristic.ErrUnsupportedCapacity)
	_, err = heuristic.Solve(6, 5)
	assert.ErrorIs(t, err, heuristic.ErrUnsupportedCapacity)

	// One pair is outside the family: the empty construction is refused.
	_, err = heuristic.Solve(1, 4)
	assert.ErrorIs(t, err, heuristic.ErrConstructionRejected)
	assert.ErrorIs(t, err, validate.ErrNotGoal)

	moves, err = heuristic.Solve(0, 4)
	require.NoError(t, err)
	assert.Empty(t, moves)
}
