package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/report"
	"github.com/katalvlaran/rivercross/validate"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestSolve(t *testing.T) {
	out, _, err := run(t, "solve", "--pairs", "2", "--capacity", "2")
	require.NoError(t, err)
	assert.Equal(t, "5 moves\n"+
		"  1  -> [a1 A1]\n"+
		"  2  <- [A1]\n"+
		"  3  -> [A1 A2]\n"+
		"  4  <- [a1]\n"+
		"  5  -> [a1 a2]\n", out)

	out, _, err = run(t, "solve", "-n", "3", "-k", "2", "--rule", "outnumbered")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "11 moves\n"))

	out, _, err = run(t, "solve", "-n", "2", "-k", "2", "--algo", "dfs", "--states")
	require.NoError(t, err)
	assert.Contains(t, out, "  0  L:[a1 A1 a2 A2] <-B- R:[]")
}

func TestSolve_NoSolution(t *testing.T) {
	out, _, err := run(t, "solve", "-n", "4", "-k", "2")
	require.NoError(t, err)
	assert.Equal(t, "no solution for N=4 K=2 (paired)\n", out)
}

func TestSolve_BadInput(t *testing.T) {
	_, _, err := run(t, "solve", "--algo", "astar")
	assert.ErrorContains(t, err, "unknown algorithm")

	_, _, err = run(t, "solve", "--rule", "lenient")
	assert.ErrorContains(t, err, "unknown rule")

	_, _, err = run(t, "solve", "--capacity", "0")
	assert.Error(t, err)

	_, _, err = run(t, "solve", "-n", "5", "-k", "3", "--max-states", "2")
	assert.ErrorContains(t, err, "state budget exceeded")

	_, _, err = run(t, "--log-level", "loud", "solve")
	assert.ErrorContains(t, err, "unknown level")

	_, _, err = run(t, "--log-format", "xml", "solve")
	assert.ErrorContains(t, err, "unknown log format")
}

func TestHeuristic(t *testing.T) {
	out, _, err := run(t, "heuristic", "--pairs", "3")
	require.NoError(t, err)
	assert.Equal(t, "3 moves\n"+
		"  1  -> [a1 A1 a3 A3]\n"+
		"  2  <- [a1 A1]\n"+
		"  3  -> [a1 A1 a2 A2]\n", out)

	_, _, err = run(t, "heuristic", "--pairs", "1")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "-n", "2", "-k", "2", "--moves", "a1,A1; A1; A1,A2; a1; a1,a2")
	require.NoError(t, err)
	assert.Equal(t, "OK: 5 moves solve N=2 K=2\n", out)

	out, _, err = run(t, "validate", "-n", "2", "-k", "2", "--moves", "a1,A1;a2")
	assert.ErrorIs(t, err, validate.ErrAbsent)
	assert.True(t, strings.HasPrefix(out, "INVALID at move 1 (absent):"), out)

	_, _, err = run(t, "validate", "--moves", "a1,B2")
	assert.Error(t, err)
}

func TestValidate_DebugLog(t *testing.T) {
	_, logs, err := run(t, "--log-level", "debug", "--log-format", "json",
		"validate", "-n", "2", "-k", "2", "--moves", "A1")
	require.Error(t, err)
	assert.Contains(t, logs, `"msg":"move sequence rejected"`)
	assert.Contains(t, logs, `"service":"rivercross"`)
}

func TestWantJSON(t *testing.T) {
	var buf bytes.Buffer
	got, err := wantJSON("auto", &buf)
	require.NoError(t, err)
	assert.True(t, got, "buffers are not terminals")

	got, err = wantJSON("text", &buf)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestParseMoveList(t *testing.T) {
	moves, err := parseMoveList(" a1, A1 ;; a1 ;")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "[a1 A1]", moves[0].String())
	assert.Equal(t, "[a1]", moves[1].String())

	moves, err = parseMoveList("")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	outPath := filepath.Join(dir, "solutions.csv")
	doc := "pairs: {min: 1, max: 3}\ncapacities: [2, 4]\nsolvers: [bfs, heuristic]\nworkers: 2\noutput: " + outPath + "\n"
	require.NoError(t, os.WriteFile(planPath, []byte(doc), 0o600))

	_, _, err := run(t, "report", "--plan", planPath)
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// 3 sizes x 2 capacities of bfs, heuristic for K=4 at N=2,3
	require.Len(t, records, 1+6+2)
	assert.Equal(t, report.Header, records[0])
	assert.Equal(t, []string{"1", "2", "bfs", "true", "1", "[[a1 A1]]"}, records[1][:6])
}

func TestReport_Stdout(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	doc := "pairs: {min: 4, max: 4}\ncapacities: [2]\nsolvers: [dfs]\n"
	require.NoError(t, os.WriteFile(planPath, []byte(doc), 0o600))

	out, _, err := run(t, "report", "--plan", planPath, "-o", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "4,2,dfs,false,0,NO_SOLUTION,"), lines[1])

	_, _, err = run(t, "report", "--plan", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMetricsMux(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := report.NewMetrics(reg)
	_, err := report.Run(context.Background(), report.Options{
		PairsMin: 2, PairsMax: 2, Capacities: []int{2}, Solvers: []report.Solver{report.SolverBFS}, Metrics: m,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	metricsMux(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rivercross_solve_total{outcome="solved",solver="bfs"} 1`)
}
