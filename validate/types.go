package validate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rivercross/puzzle"
)

// Sentinel errors. A *Violation unwraps to exactly one of the reason
// sentinels, so callers may branch with errors.Is.
var (
	// ErrInvalidInstance is returned when pairs or capacity cannot describe a puzzle.
	ErrInvalidInstance = errors.New("validate: invalid puzzle instance")

	// ErrCapacity: a load is empty or exceeds the boat capacity.
	ErrCapacity = errors.New("validate: load size out of range")

	// ErrAbsent: a load member is not on the bank the boat departs from.
	ErrAbsent = errors.New("validate: individual not on the departure bank")

	// ErrUnsafeLoad: the load itself violates the safety rule.
	ErrUnsafeLoad = errors.New("validate: unsafe boat load")

	// ErrUnsafeState: the configuration after the crossing is invalid.
	ErrUnsafeState = errors.New("validate: resulting configuration invalid")

	// ErrNotGoal: every move is legal but the final configuration is not solved.
	ErrNotGoal = errors.New("validate: final configuration is not the goal")
)

// Reason classifies why a move sequence was rejected.
type Reason uint8

const (
	ReasonCapacity Reason = iota + 1
	ReasonAbsent
	ReasonUnsafeLoad
	ReasonUnsafeState
	ReasonNotGoal
)

// String returns a short name, e.g. "capacity".
func (r Reason) String() string {
	switch r {
	case ReasonCapacity:
		return "capacity"
	case ReasonAbsent:
		return "absent"
	case ReasonUnsafeLoad:
		return "unsafe_load"
	case ReasonUnsafeState:
		return "unsafe_state"
	case ReasonNotGoal:
		return "not_goal"
	default:
		return "unknown"
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonCapacity:
		return ErrCapacity
	case ReasonAbsent:
		return ErrAbsent
	case ReasonUnsafeLoad:
		return ErrUnsafeLoad
	case ReasonUnsafeState:
		return ErrUnsafeState
	default:
		return ErrNotGoal
	}
}

// Violation reports the first rejected move of a sequence.
//
// Index is zero-based. For ReasonNotGoal it equals the number of moves and
// Move is nil.
type Violation struct {
	Index  int
	Reason Reason
	Move   puzzle.Move
	Detail string
}

// Error implements error.
func (v *Violation) Error() string {
	if v.Reason == ReasonNotGoal {
		return fmt.Sprintf("%v after %d moves: %s", v.Reason.sentinel(), v.Index, v.Detail)
	}

	return fmt.Sprintf("%v: move %d %s: %s", v.Reason.sentinel(), v.Index, v.Move, v.Detail)
}

// Unwrap returns the reason sentinel.
func (v *Violation) Unwrap() error { return v.Reason.sentinel() }

// Option configures Moves and Check.
type Option func(*options)

type options struct {
	rule   puzzle.Rule
	logger *slog.Logger
}

func defaultOptions() options {
	return options{rule: puzzle.Paired, logger: slog.New(slog.DiscardHandler)}
}

// WithRule selects the safety rule to replay under. Default puzzle.Paired.
// A nil rule is ignored.
func WithRule(r puzzle.Rule) Option {
	return func(o *options) {
		if r != nil {
			o.rule = r
		}
	}
}

// WithLogger makes the validator log each rejection at Debug level.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
