package puzzle

// Rule is a pluggable safety predicate. Safe must be pure: its answer may
// depend only on its arguments. It is applied to each bank and to every
// candidate boat load.
type Rule interface {
	// Name identifies the rule in logs and reports.
	Name() string

	// Safe reports whether group may stand together, given the role sets
	// of the whole population.
	Safe(group, actors, agents Group) bool
}

// RuleFunc adapts an ordinary function into a Rule named "custom".
type RuleFunc func(group, actors, agents Group) bool

// Name returns "custom".
func (f RuleFunc) Name() string { return "custom" }

// Safe calls f.
func (f RuleFunc) Safe(group, actors, agents Group) bool { return f(group, actors, agents) }

type pairedRule struct{}

func (pairedRule) Name() string { return "paired" }

func (pairedRule) Safe(group, actors, agents Group) bool {
	return IsGroupSafe(group, actors, agents)
}

type outnumberedRule struct{}

func (outnumberedRule) Name() string { return "outnumbered" }

func (outnumberedRule) Safe(group, actors, agents Group) bool {
	return IsGroupUnoutnumbered(group, actors, agents)
}

var (
	// Paired forbids an actor from standing with a foreign agent unless its
	// own agent is present too.
	Paired Rule = pairedRule{}

	// Outnumbered forbids actors from being outnumbered by agents wherever at
	// least one actor is present (missionaries and cannibals).
	Outnumbered Rule = outnumberedRule{}
)

// RuleByName returns the built-in rule called name ("paired" or
// "outnumbered"), and false for anything else.
func RuleByName(name string) (Rule, bool) {
	switch name {
	case Paired.Name():
		return Paired, true
	case Outnumbered.Name():
		return Outnumbered, true
	default:
		return nil, false
	}
}

// IsGroupSafe implements the paired rule. A group is unsafe iff it contains an
// actor whose own agent is absent while at least one other agent is present.
// Empty groups and groups without actors are safe.
//
// Complexity: O(|group|).
func IsGroupSafe(group, actors, agents Group) bool {
	var present int
	for id := range group {
		if agents.Has(id) {
			present++
		}
	}
	if present == 0 {
		return true
	}
	var own Individual
	for id := range group {
		if !actors.Has(id) {
			continue
		}
		own = AgentOf(id.Index)
		// With the own agent missing, any agent present is a foreign one.
		if !group.Has(own) || !agents.Has(own) {
			return false
		}
	}

	return true
}

// IsGroupUnoutnumbered implements the outnumbering rule: a group holding at
// least one actor is unsafe when agents strictly outnumber actors in it.
//
// Complexity: O(|group|).
func IsGroupUnoutnumbered(group, actors, agents Group) bool {
	var nActors, nAgents int
	for id := range group {
		switch {
		case actors.Has(id):
			nActors++
		case agents.Has(id):
			nAgents++
		}
	}

	return nActors == 0 || nActors >= nAgents
}
