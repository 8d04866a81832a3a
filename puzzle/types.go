// Package puzzle defines the individuals, options and sentinel errors
// shared by the configuration model.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for parsing externally supplied identifiers.
var (
	// ErrBadIndividual is returned when an identifier is not of the form a<i> or A<i>.
	ErrBadIndividual = errors.New("puzzle: malformed individual identifier")

	// ErrEmptyMove is returned when a parsed move carries no individuals.
	ErrEmptyMove = errors.New("puzzle: empty move")
)

// Role distinguishes the two disjoint kinds of individuals.
type Role uint8

const (
	Actor Role = iota // Actor: paired member that must be protected (a<i>).
	Agent             // Agent: paired member that can threaten foreign actors (A<i>).
)

// String returns "actor" or "agent".
func (r Role) String() string {
	if r == Agent {
		return "agent"
	}

	return "actor"
}

// Individual identifies one member of the population. Actor i and agent i
// form pair i. Indices are 1-based.
type Individual struct {
	Role  Role
	Index int
}

// ActorOf returns actor i.
func ActorOf(i int) Individual { return Individual{Role: Actor, Index: i} }

// AgentOf returns agent i.
func AgentOf(i int) Individual { return Individual{Role: Agent, Index: i} }

// Partner returns the other member of the same pair.
func (p Individual) Partner() Individual {
	if p.Role == Actor {
		return AgentOf(p.Index)
	}

	return ActorOf(p.Index)
}

// String renders actors as "a<i>" and agents as "A<i>".
func (p Individual) String() string {
	if p.Role == Agent {
		return "A" + strconv.Itoa(p.Index)
	}

	return "a" + strconv.Itoa(p.Index)
}

// less orders by pair index, then actor before agent.
func (p Individual) less(q Individual) bool {
	if p.Index != q.Index {
		return p.Index < q.Index
	}

	return p.Role < q.Role
}

// ParseIndividual parses "a<i>" or "A<i>" with i ≥ 1. The forms "a_<i>" and
// "A_<i>" are accepted as well.
func ParseIndividual(s string) (Individual, error) {
	if len(s) < 2 {
		return Individual{}, fmt.Errorf("%w: %q", ErrBadIndividual, s)
	}
	var role Role
	switch s[0] {
	case 'a':
		role = Actor
	case 'A':
		role = Agent
	default:
		return Individual{}, fmt.Errorf("%w: %q", ErrBadIndividual, s)
	}
	digits := s[1:]
	if digits[0] == '_' {
		digits = digits[1:]
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 1 || digits[0] == '+' {
		return Individual{}, fmt.Errorf("%w: %q", ErrBadIndividual, s)
	}

	return Individual{Role: role, Index: idx}, nil
}

// Option configures a Config at construction time.
type Option func(*options)

type options struct {
	rule       Rule
	startRight bool
}

func defaultOptions() options {
	return options{rule: Paired, startRight: false}
}

// WithRule selects the safety rule. A nil rule keeps the default (Paired).
func WithRule(r Rule) Option {
	return func(o *options) {
		if r != nil {
			o.rule = r
		}
	}
}

// WithStartRight makes New place the whole population and the boat on the
// right bank, i.e. an already-solved configuration. Ignored by NewWithBanks.
func WithStartRight() Option {
	return func(o *options) {
		o.startRight = true
	}
}
