package validate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/rivercross/puzzle"
)

// Moves replays moves against the initial configuration of an N-pair puzzle
// with boat capacity K and returns nil if the sequence is legal and solves
// it. Otherwise it returns a *Violation for the first failing move, or for
// the final configuration when no move fails but the goal is not reached.
//
// Each move is checked in order for: load size in [1, K]; every member on the
// departure bank; a safe load; a valid resulting configuration.
//
// An empty sequence is accepted only when the initial configuration is
// already a goal, and for the degenerate zero-pair instance.
func Moves(pairs, capacity int, moves []puzzle.Move, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if pairs < 0 || capacity < 1 {
		return fmt.Errorf("%w: pairs=%d capacity=%d", ErrInvalidInstance, pairs, capacity)
	}
	if pairs == 0 && len(moves) == 0 {
		return nil
	}

	r := &replay{
		cur:    puzzle.New(pairs, capacity, puzzle.WithRule(o.rule)),
		logger: o.logger.With(slog.Int("pairs", pairs), slog.Int("capacity", capacity)),
	}
	for i, m := range moves {
		if v := r.step(i, m); v != nil {
			return r.reject(v)
		}
	}
	if !r.cur.IsGoal() {
		return r.reject(&Violation{
			Index:  len(moves),
			Reason: ReasonNotGoal,
			Detail: "final configuration " + r.cur.String(),
		})
	}

	return nil
}

// Check is the boolean form of Moves.
func Check(pairs, capacity int, moves []puzzle.Move, opts ...Option) bool {
	return Moves(pairs, capacity, moves, opts...) == nil
}

// replay holds the configuration reached so far.
type replay struct {
	cur    puzzle.Config
	logger *slog.Logger
}

// step applies move i or describes why it cannot be applied.
func (r *replay) step(i int, m puzzle.Move) *Violation {
	load := m.Group()
	canon := puzzle.NewMove(m...)

	// 1. Size
	if load.Len() < 1 || load.Len() > r.cur.Capacity() {
		return &Violation{Index: i, Reason: ReasonCapacity, Move: canon,
			Detail: fmt.Sprintf("load of %d for capacity %d", load.Len(), r.cur.Capacity())}
	}

	// 2. Presence on the departure bank
	source := r.cur.Source()
	if missing := load.Difference(source); missing.Len() > 0 {
		return &Violation{Index: i, Reason: ReasonAbsent, Move: canon,
			Detail: fmt.Sprintf("%s not on departure bank %s", missing, source)}
	}

	// 3. The load itself
	if !r.cur.Safe(load) {
		return &Violation{Index: i, Reason: ReasonUnsafeLoad, Move: canon,
			Detail: fmt.Sprintf("load %s violates rule %q", load, r.cur.Rule().Name())}
	}

	// 4. The resulting configuration
	next := r.cur.Cross(load)
	if !next.IsValid() {
		return &Violation{Index: i, Reason: ReasonUnsafeState, Move: canon, Detail: diagnose(next)}
	}
	r.cur = next

	return nil
}

func (r *replay) reject(v *Violation) error {
	r.logger.Debug("move sequence rejected",
		slog.Int("move", v.Index),
		slog.String("reason", v.Reason.String()),
		slog.String("detail", v.Detail))

	return v
}

// diagnose lists every way c fails validity.
func diagnose(c puzzle.Config) string {
	var reasons []string
	left, right := c.Left(), c.Right()
	if !c.Safe(left) {
		reasons = append(reasons, "left bank "+left.String()+" unsafe")
	}
	if !c.Safe(right) {
		reasons = append(reasons, "right bank "+right.String()+" unsafe")
	}
	if both := left.Intersect(right); both.Len() > 0 {
		reasons = append(reasons, "on both banks "+both.String())
	}
	if all := c.Individuals(); !left.Union(right).Equal(all) {
		reasons = append(reasons, fmt.Sprintf("banks hold %s, expected %s", left.Union(right), all))
	}
	if len(reasons) == 0 {
		return "invalid configuration " + c.String()
	}

	return strings.Join(reasons, "; ")
}
