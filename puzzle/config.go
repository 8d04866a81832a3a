package puzzle

import (
	"strconv"
	"strings"
)

// instance holds the parameters shared by every Config of one puzzle:
// sizes, rule and the precomputed role sets. It is never mutated after
// construction and never handed out, so Configs derived from each other
// share it freely.
type instance struct {
	pairs    int
	capacity int
	rule     Rule
	actors   Group
	agents   Group
	all      Group
}

func newInstance(pairs, capacity int, rule Rule) *instance {
	all := Population(pairs)

	return &instance{
		pairs:    pairs,
		capacity: capacity,
		rule:     rule,
		actors:   all.Actors(),
		agents:   all.Agents(),
		all:      all,
	}
}

// Config is an immutable snapshot of a river-crossing puzzle: who stands on
// which bank, where the boat is, and the puzzle parameters.
//
// Two Configs are equal iff pairs, capacity, both banks and the boat side
// match; Key returns the canonical encoding of exactly that tuple and is the
// intended map key. The zero Config has no population and is never valid.
type Config struct {
	inst     *instance
	left     Group
	right    Group
	boatLeft bool
	key      string
}

// New returns the initial configuration of an N-pair puzzle with boat
// capacity K: everyone and the boat on the left bank (or on the right with
// WithStartRight). The default rule is Paired.
func New(pairs, capacity int, opts ...Option) Config {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	inst := newInstance(pairs, capacity, o.rule)
	if o.startRight {
		return build(inst, Group{}, inst.all.Clone(), false)
	}

	return build(inst, inst.all.Clone(), Group{}, true)
}

// NewWithBanks returns a configuration with the given banks and boat side.
// Both groups are copied. The partition is not checked here: overlapping,
// incomplete or foreign banks produce a Config whose IsValid reports false.
func NewWithBanks(pairs, capacity int, left, right Group, boatOnLeft bool, opts ...Option) Config {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return build(newInstance(pairs, capacity, o.rule), left.Clone(), right.Clone(), boatOnLeft)
}

// build takes ownership of left and right.
func build(inst *instance, left, right Group, boatLeft bool) Config {
	c := Config{inst: inst, left: left, right: right, boatLeft: boatLeft}
	c.key = c.encode()

	return c
}

// encode produces "N|K|L|a1,A1|a2,A2" style canonical text.
func (c Config) encode() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.Pairs()))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(c.Capacity()))
	if c.boatLeft {
		sb.WriteString("|L|")
	} else {
		sb.WriteString("|R|")
	}
	writeBank(&sb, c.left)
	sb.WriteByte('|')
	writeBank(&sb, c.right)

	return sb.String()
}

func writeBank(sb *strings.Builder, g Group) {
	for i, id := range g.Sorted() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(id.String())
	}
}

// Pairs returns N, the number of actor/agent pairs.
func (c Config) Pairs() int {
	if c.inst == nil {
		return 0
	}

	return c.inst.pairs
}

// Capacity returns K, the boat capacity.
func (c Config) Capacity() int {
	if c.inst == nil {
		return 0
	}

	return c.inst.capacity
}

// Rule returns the safety rule of the puzzle.
func (c Config) Rule() Rule {
	if c.inst == nil {
		return Paired
	}

	return c.inst.rule
}

// BoatOnLeft reports the boat side.
func (c Config) BoatOnLeft() bool { return c.boatLeft }

// Left returns a copy of the left bank.
func (c Config) Left() Group { return c.left.Clone() }

// Right returns a copy of the right bank.
func (c Config) Right() Group { return c.right.Clone() }

// Source returns a copy of the bank the boat is currently on.
func (c Config) Source() Group {
	if c.boatLeft {
		return c.left.Clone()
	}

	return c.right.Clone()
}

// Individuals returns a copy of the full population.
func (c Config) Individuals() Group {
	if c.inst == nil {
		return Group{}
	}

	return c.inst.all.Clone()
}

// Actors returns a copy of the actor role set.
func (c Config) Actors() Group {
	if c.inst == nil {
		return Group{}
	}

	return c.inst.actors.Clone()
}

// Agents returns a copy of the agent role set.
func (c Config) Agents() Group {
	if c.inst == nil {
		return Group{}
	}

	return c.inst.agents.Clone()
}

// Key returns the canonical encoding of (N, K, boat side, left, right).
func (c Config) Key() string { return c.key }

// Equal reports structural equality.
func (c Config) Equal(d Config) bool { return c.key == d.key }

// IsValid reports whether the banks strictly partition the population and
// both banks satisfy the safety rule.
func (c Config) IsValid() bool {
	if c.inst == nil {
		return false
	}
	// disjoint
	for id := range c.left {
		if c.right.Has(id) {
			return false
		}
	}
	// complete, nothing foreign: disjointness lets sizes stand in for the union
	if len(c.left)+len(c.right) != len(c.inst.all) {
		return false
	}
	if !c.left.SubsetOf(c.inst.all) || !c.right.SubsetOf(c.inst.all) {
		return false
	}

	return c.Safe(c.left) && c.Safe(c.right)
}

// IsGoal reports whether c is valid with everyone and the boat on the right.
func (c Config) IsGoal() bool {
	return c.IsValid() && len(c.left) == 0 && !c.boatLeft && c.right.Equal(c.inst.all)
}

// Safe applies the puzzle's rule to group.
func (c Config) Safe(group Group) bool {
	if c.inst == nil {
		return true
	}

	return c.inst.rule.Safe(group, c.inst.actors, c.inst.agents)
}

// Cross moves load from the boat's bank to the other bank and flips the boat.
// Nothing is checked; callers decide what a legal load is.
func (c Config) Cross(load Group) Config {
	if c.boatLeft {
		return build(c.inst, c.left.Difference(load), c.right.Union(load), false)
	}

	return build(c.inst, c.left.Union(load), c.right.Difference(load), true)
}

// String renders e.g. "L:[a2 A2] <-B- R:[a1 A1]".
func (c Config) String() string {
	boat := "-B->"
	if c.boatLeft {
		boat = "<-B-"
	}

	return "L:" + c.left.String() + " " + boat + " R:" + c.right.String()
}
