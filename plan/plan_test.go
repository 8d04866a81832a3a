package plan_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/plan"
	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/report"
)

const full = `
pairs: {min: 2, max: 5}
capacities: [2, 4]
solvers: [bfs, dfs, heuristic]
rule: outnumbered
workers: 8
timeout: 1m30s
max_states: 5000
output: out.csv
`

func TestParse_Full(t *testing.T) {
	p, err := plan.Parse([]byte(full))
	require.NoError(t, err)
	assert.Equal(t, plan.Range{Min: 2, Max: 5}, p.Pairs)
	assert.Equal(t, []int{2, 4}, p.Capacities)
	assert.Equal(t, []string{"bfs", "dfs", "heuristic"}, p.Solvers)
	assert.Equal(t, "outnumbered", p.Rule)
	assert.Equal(t, 8, p.Workers)
	assert.Equal(t, 90*time.Second, p.Timeout)
	assert.Equal(t, 5000, p.MaxStates)
	assert.Equal(t, "out.csv", p.Output)
}

func TestParse_Defaults(t *testing.T) {
	p, err := plan.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, plan.Default(), p)

	p, err = plan.Parse([]byte("pairs: {max: 3}\nworkers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, plan.Range{Min: 1, Max: 3}, p.Pairs)
	assert.Equal(t, 2, p.Workers)
	assert.Equal(t, plan.Default().Capacities, p.Capacities)

	require.NoError(t, plan.Default().Validate())
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "colour: blue\n",
		"malformed":        "pairs: [1, 2\n",
		"inverted range":   "pairs: {min: 4, max: 2}\n",
		"zero pairs":       "pairs: {min: 0, max: 2}\n",
		"zero capacity":    "capacities: [0]\n",
		"empty capacities": "capacities: []\n",
		"unknown solver":   "solvers: [astar]\n",
		"unknown rule":     "rule: lenient\n",
		"no workers":       "workers: 0\n",
		"negative timeout": "timeout: -1s\n",
		"negative budget":  "max_states: -1\n",
		"duration is text": "timeout: soon\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := plan.Parse([]byte(doc))
			assert.ErrorIs(t, err, plan.ErrInvalidPlan)
		})
	}
}

func TestValidate_NamesField(t *testing.T) {
	p := plan.Default()
	p.Pairs = plan.Range{Min: 3, Max: 1}
	p.Solvers = []string{"bfs", "ida"}

	err := p.Validate()
	require.ErrorIs(t, err, plan.ErrInvalidPlan)
	assert.Contains(t, err.Error(), "Plan.Pairs.Max fails gtefield")
	assert.Contains(t, err.Error(), "Plan.Solvers[1] fails oneof")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))

	p, err := plan.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Workers)

	_, err = plan.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReportOptions(t *testing.T) {
	p, err := plan.Parse([]byte(full))
	require.NoError(t, err)

	o, err := p.ReportOptions()
	require.NoError(t, err)
	assert.Equal(t, 2, o.PairsMin)
	assert.Equal(t, 5, o.PairsMax)
	assert.Equal(t, []int{2, 4}, o.Capacities)
	assert.Equal(t, []report.Solver{report.SolverBFS, report.SolverDFS, report.SolverHeuristic}, o.Solvers)
	assert.Equal(t, puzzle.Outnumbered.Name(), o.Rule.Name())
	assert.Equal(t, 8, o.Workers)
	assert.Equal(t, 90*time.Second, o.Timeout)
	assert.Equal(t, 5000, o.MaxStates)

	p.Rule = "lenient"
	_, err = p.ReportOptions()
	assert.ErrorIs(t, err, plan.ErrInvalidPlan)
}
