// Package validate replays a sequence of boat loads against a fresh puzzle
// and reports whether it is a legal solution.
//
// It is the single source of truth for "this move list solves the puzzle":
// solver output and closed-form constructions are both checked here before
// being reported. A rejection is a *Violation carrying the zero-based index
// of the failing move, a Reason, and a human-readable Detail; it unwraps to
// one of the package's reason sentinels.
//
//	err := validate.Moves(3, 2, moves)
//	var v *validate.Violation
//	if errors.As(err, &v) {
//	    fmt.Println(v.Index, v.Reason)
//	}
package validate
