// Package puzzle models generalized river-crossing transport puzzles:
// a population of paired individuals split across two banks, a boat of
// bounded capacity, and a pluggable safety rule that forbids certain
// co-located groups.
//
// What
//
//   - Individual: an actor (a1, a2, …) or an agent (A1, A2, …); actor i is
//     paired with agent i.
//   - Group: an order-independent set of individuals.
//   - Rule: a pure safety predicate over a group, given the role sets.
//     Paired (actor needs its own agent whenever other agents are around)
//     and Outnumbered (classic missionaries/cannibals) ship with the package.
//   - Config: an immutable snapshot of both banks, the boat side and the
//     puzzle parameters (pairs N, boat capacity K).
//   - NextStates: every legal one-crossing successor of a Config.
//   - Move / FormatPath: boat loads, and the conversion from a path of
//     Configs into the loads carried between them.
//
// Immutability
//
//	Config never exposes its bank sets; every accessor returns a copy and every
//	crossing builds a new Config. Constructors copy caller-supplied groups, so
//	callers may keep mutating their own sets afterwards. A Config may be shared
//	read-only across goroutines without synchronization.
//
// Validity is reported, never repaired
//
//	NewWithBanks accepts overlapping, incomplete or foreign partitions on
//	purpose: IsValid is the single place that reports them, which keeps
//	deliberately broken fixtures constructible for tests and solvers.
//
// Complexity (N pairs, K capacity, s = |source bank|)
//
//   - IsValid / IsGoal:  O(N)
//   - NextStates:        O(Σ_{k≤K} C(s,k) · N)
//   - FormatPath:        O(L · N) for a path of L configs
//
// Usage
//
//	start := puzzle.New(3, 2)                              // jealous-couples, boat of two
//	mc := puzzle.New(3, 2, puzzle.WithRule(puzzle.Outnumbered)) // missionaries/cannibals
//	for _, next := range puzzle.NextStates(start) {
//	    fmt.Println(next)
//	}
package puzzle
