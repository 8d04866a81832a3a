package puzzle

import "fmt"

// Move is one boat load in canonical order (by pair index, actor first).
type Move []Individual

// NewMove builds a Move from ids, dropping duplicates and sorting.
func NewMove(ids ...Individual) Move {
	return Move(NewGroup(ids...).Sorted())
}

// Group returns the load as a set.
func (m Move) Group() Group { return NewGroup(m...) }

// Strings returns the identifiers of the load, e.g. ["a1" "A1"].
func (m Move) Strings() []string {
	out := make([]string, len(m))
	for i, id := range m {
		out[i] = id.String()
	}

	return out
}

// String renders e.g. "[a1 A1]".
func (m Move) String() string { return joinIndividuals(m) }

// ParseMove parses identifier strings into a Move. Duplicate identifiers
// collapse; an empty list is ErrEmptyMove.
func ParseMove(ids []string) (Move, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyMove
	}
	people := make([]Individual, 0, len(ids))
	for _, s := range ids {
		p, err := ParseIndividual(s)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return NewMove(people...), nil
}

// ParseMoves parses a whole move sequence. The error names the failing move.
func ParseMoves(moves [][]string) ([]Move, error) {
	out := make([]Move, 0, len(moves))
	for i, ids := range moves {
		m, err := ParseMove(ids)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// FormatPath converts a path of L configurations into its L-1 boat loads.
// Each load is the set of individuals that left the departure bank between
// two consecutive configurations. Paths shorter than two yield an empty slice.
func FormatPath(path []Config) []Move {
	if len(path) < 2 {
		return []Move{}
	}
	out := make([]Move, 0, len(path)-1)
	var cur, next Config
	for i := 0; i+1 < len(path); i++ {
		cur, next = path[i], path[i+1]
		if cur.boatLeft {
			out = append(out, Move(cur.left.Difference(next.left).Sorted()))
		} else {
			out = append(out, Move(cur.right.Difference(next.right).Sorted()))
		}
	}

	return out
}
