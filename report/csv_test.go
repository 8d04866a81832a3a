package report_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/report"
)

func TestWriteCSV(t *testing.T) {
	moves, err := puzzle.ParseMoves([][]string{{"a1", "A1"}})
	require.NoError(t, err)
	rows := []report.Row{
		{N: 1, K: 2, Solver: report.SolverBFS, Solvable: true, MoveCount: 1, Moves: moves, Elapsed: 1500 * time.Microsecond},
		{N: 4, K: 2, Solver: report.SolverBFS, Elapsed: 2 * time.Second},
		{N: 9, K: 3, Solver: report.SolverDFS, Err: errors.New("budget")},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, report.Header, records[0])
	assert.Equal(t, []string{"1", "2", "bfs", "true", "1", "[[a1 A1]]", "0.001500"}, records[1])
	assert.Equal(t, []string{"4", "2", "bfs", "false", "0", report.NoSolution, "2.000000"}, records[2])
	assert.Equal(t, report.NoSolution, records[3][5])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, nil))
	assert.Equal(t, "n,k,solver,solvable,num_moves,solution_path,time_seconds\n", buf.String())
}
