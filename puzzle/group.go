package puzzle

import (
	"sort"
	"strings"
)

// Group is an unordered set of individuals: a bank, a boat load, or a role set.
// The zero value (nil) is a valid empty group for reads.
type Group map[Individual]struct{}

// NewGroup returns a group holding ids. Duplicates collapse.
func NewGroup(ids ...Individual) Group {
	g := make(Group, len(ids))
	for _, id := range ids {
		g[id] = struct{}{}
	}

	return g
}

// Population returns all 2N individuals of an N-pair instance.
func Population(pairs int) Group {
	if pairs < 0 {
		pairs = 0
	}
	g := make(Group, 2*pairs)
	for i := 1; i <= pairs; i++ {
		g[ActorOf(i)] = struct{}{}
		g[AgentOf(i)] = struct{}{}
	}

	return g
}

// Has reports whether id is a member.
func (g Group) Has(id Individual) bool {
	_, ok := g[id]

	return ok
}

// Len returns the number of members.
func (g Group) Len() int { return len(g) }

// Clone returns an independent copy.
func (g Group) Clone() Group {
	out := make(Group, len(g))
	for id := range g {
		out[id] = struct{}{}
	}

	return out
}

// Sorted returns the members in canonical order (by pair index, actor first).
func (g Group) Sorted() []Individual {
	out := make([]Individual, 0, len(g))
	for id := range g {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Union returns g ∪ h as a new group.
func (g Group) Union(h Group) Group {
	out := make(Group, len(g)+len(h))
	for id := range g {
		out[id] = struct{}{}
	}
	for id := range h {
		out[id] = struct{}{}
	}

	return out
}

// Difference returns g \ h as a new group.
func (g Group) Difference(h Group) Group {
	out := make(Group, len(g))
	for id := range g {
		if !h.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Intersect returns g ∩ h as a new group.
func (g Group) Intersect(h Group) Group {
	out := make(Group)
	for id := range g {
		if h.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// SubsetOf reports whether every member of g is in h.
func (g Group) SubsetOf(h Group) bool {
	for id := range g {
		if !h.Has(id) {
			return false
		}
	}

	return true
}

// Equal reports set equality.
func (g Group) Equal(h Group) bool {
	return len(g) == len(h) && g.SubsetOf(h)
}

// Actors returns the members whose role is Actor.
func (g Group) Actors() Group { return g.withRole(Actor) }

// Agents returns the members whose role is Agent.
func (g Group) Agents() Group { return g.withRole(Agent) }

func (g Group) withRole(r Role) Group {
	out := make(Group)
	for id := range g {
		if id.Role == r {
			out[id] = struct{}{}
		}
	}

	return out
}

// String renders the group in canonical order, e.g. "[a1 A1 a2]".
func (g Group) String() string {
	return joinIndividuals(g.Sorted())
}

func joinIndividuals(ids []Individual) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(id.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
