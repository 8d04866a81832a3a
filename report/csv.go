package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// NoSolution is written in the solution_path column of unsolvable rows.
const NoSolution = "NO_SOLUTION"

// Header is the first record written by WriteCSV.
var Header = []string{"n", "k", "solver", "solvable", "num_moves", "solution_path", "time_seconds"}

// WriteCSV writes rows as a CSV table with Header. Solution paths render as
// "[[a1 A1] [a1]]".
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, r := range rows {
		path := NoSolution
		if r.Solvable {
			path = fmt.Sprint(r.Moves)
		}
		rec := []string{
			strconv.Itoa(r.N),
			strconv.Itoa(r.K),
			string(r.Solver),
			strconv.FormatBool(r.Solvable),
			strconv.Itoa(r.MoveCount),
			path,
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write row N=%d K=%d: %w", r.N, r.K, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
