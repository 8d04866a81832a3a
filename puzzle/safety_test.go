package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rivercross/puzzle"
)

// g parses identifiers into a group; test inputs are always well-formed.
func g(ids ...string) puzzle.Group {
	out := puzzle.Group{}
	for _, s := range ids {
		p, err := puzzle.ParseIndividual(s)
		if err != nil {
			panic(err)
		}
		out[p] = struct{}{}
	}

	return out
}

func TestIsGroupSafe(t *testing.T) {
	pop2 := puzzle.Population(2)
	pop3 := puzzle.Population(3)

	cases := []struct {
		name  string
		group puzzle.Group
		pop   puzzle.Group
		want  bool
	}{
		{"pair together", g("a1", "A1"), pop2, true},
		{"actor with own agent and a foreign one", g("a1", "A1", "A2"), pop2, true},
		{"agents only", g("A1", "A2"), pop2, true},
		{"lone actor", g("a1"), pop2, true},
		{"lone agent", g("A1"), pop2, true},
		{"empty", g(), pop2, true},
		{"everyone", g("a1", "a2", "A1", "A2"), pop2, true},
		{"actors only", g("a1", "a2", "a3"), pop3, true},
		{"actor with foreign agent", g("a1", "A2"), pop2, false},
		{"second actor unprotected", g("a1", "a2", "A1"), pop3, false},
		{"actor with two foreign agents", g("a1", "A2", "A3"), pop3, false},
		{"two complete pairs plus agent", g("a1", "A1", "a2", "A2", "A3"), pop3, true},
		{"one complete pair, one exposed actor", g("a1", "A2", "a3", "A3"), pop3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := puzzle.IsGroupSafe(tc.group, tc.pop.Actors(), tc.pop.Agents())
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, puzzle.Paired.Safe(tc.group, tc.pop.Actors(), tc.pop.Agents()))
		})
	}
}

// TestSafety_NoActorsAlwaysSafe checks that both built-in rules accept the
// empty group and every actor-free group.
func TestSafety_NoActorsAlwaysSafe(t *testing.T) {
	pop := puzzle.Population(5)
	actors, agents := pop.Actors(), pop.Agents()
	for _, rule := range []puzzle.Rule{puzzle.Paired, puzzle.Outnumbered} {
		assert.True(t, rule.Safe(puzzle.Group{}, actors, agents), rule.Name())
		assert.True(t, rule.Safe(nil, actors, agents), rule.Name())
		assert.True(t, rule.Safe(agents, actors, agents), rule.Name())
		assert.True(t, rule.Safe(g("A2", "A4"), actors, agents), rule.Name())
	}
}

func TestIsGroupUnoutnumbered(t *testing.T) {
	pop := puzzle.Population(3)
	actors, agents := pop.Actors(), pop.Agents()

	assert.True(t, puzzle.IsGroupUnoutnumbered(g("a1", "A1"), actors, agents))
	assert.True(t, puzzle.IsGroupUnoutnumbered(g("a1", "a2", "A3"), actors, agents))
	assert.True(t, puzzle.IsGroupUnoutnumbered(g("a1", "A2"), actors, agents), "pairing is irrelevant")
	assert.False(t, puzzle.IsGroupUnoutnumbered(g("a1", "A1", "A2"), actors, agents))
	assert.False(t, puzzle.IsGroupUnoutnumbered(g("a3", "A1", "A2", "A3"), actors, agents))
}

func TestRuleByName(t *testing.T) {
	r, ok := puzzle.RuleByName("paired")
	assert.True(t, ok)
	assert.Equal(t, puzzle.Paired, r)

	r, ok = puzzle.RuleByName("outnumbered")
	assert.True(t, ok)
	assert.Equal(t, puzzle.Outnumbered, r)

	_, ok = puzzle.RuleByName("cabbage")
	assert.False(t, ok)
}

func TestRuleFunc(t *testing.T) {
	never := puzzle.RuleFunc(func(group, _, _ puzzle.Group) bool { return group.Len() < 2 })
	assert.Equal(t, "custom", never.Name())
	assert.True(t, never.Safe(g("a1"), nil, nil))
	assert.False(t, never.Safe(g("a1", "A1"), nil, nil))
}
