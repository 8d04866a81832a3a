package puzzle

// NextStates returns every legal configuration reachable from c by one
// boat crossing.
//
// For each load size k in 1..K it enumerates the k-subsets of the boat's bank,
// drops loads that are unsafe on their own (before any Config is built), then
// drops crossings that leave an invalid configuration. Distinct subsets give
// distinct successors, so the result has no duplicates. The order follows the
// canonical order of the source bank and is not part of the contract.
//
// Complexity: O(Σ_{k≤K} C(s,k) · N) where s is the size of the source bank.
func NextStates(c Config) []Config {
	if c.inst == nil {
		return nil
	}
	source := c.left
	if !c.boatLeft {
		source = c.right
	}
	members := source.Sorted()
	limit := c.inst.capacity
	if limit > len(members) {
		limit = len(members)
	}

	var out []Config
	for k := 1; k <= limit; k++ {
		forEachCombination(len(members), k, func(idx []int) {
			load := make(Group, k)
			for _, i := range idx {
				load[members[i]] = struct{}{}
			}
			if !c.Safe(load) {
				return
			}
			next := c.Cross(load)
			if next.IsValid() {
				out = append(out, next)
			}
		})
	}

	return out
}

// forEachCombination calls fn with every k-combination of {0..n-1} in
// lexicographic order. The idx slice is reused between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// rightmost position that can still advance
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
