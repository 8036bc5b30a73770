package stsp

// crossover pairs the population randomly and splices each couple at a
// gene they share (spec §4.5). A child replaces its parent only if its
// cost stays under MaxCost; acceptance of each child is independent. If
// the population size is odd, the unpaired individual is left untouched.
func (s *Solver) crossover() {
	pop := s.population
	order := s.cfg.Rand.Perm(len(pop))

	for i := 0; i+1 < len(order); i += 2 {
		a := &pop[order[i]]
		b := &pop[order[i+1]]

		common := commonGenes(a.Path, b.Path, s.cfg.Start, s.cfg.End)
		if len(common) == 0 {
			continue
		}
		gene := common[s.cfg.Rand.Intn(len(common))]

		iA := indexOf(a.Path, gene) + 1
		iB := indexOf(b.Path, gene) + 1

		childA := spliceAt(a.Path, iA, b.Path, iB)
		childB := spliceAt(b.Path, iB, a.Path, iA)

		if costA := s.cfg.cost(childA); costA < s.cfg.MaxCost {
			a.Path = childA
			a.Cost = costA
		}
		if costB := s.cfg.cost(childB); costB < s.cfg.MaxCost {
			b.Path = childB
			b.Cost = costB
		}
	}
}

// commonGenes returns the locations present in both paths, excluding start
// and end, in no particular order.
func commonGenes(a, b []int, start, end int) []int {
	inB := make(map[int]bool, len(b))
	for _, x := range b {
		if x != start && x != end {
			inB[x] = true
		}
	}
	seen := make(map[int]bool, len(a))
	var common []int
	for _, x := range a {
		if x == start || x == end || seen[x] {
			continue
		}
		seen[x] = true
		if inB[x] {
			common = append(common, x)
		}
	}
	return common
}

func indexOf(path []int, v int) int {
	for i, x := range path {
		if x == v {
			return i
		}
	}
	return -1
}

// spliceAt builds head[:headCut] + tail[tailCut:].
func spliceAt(head []int, headCut int, tail []int, tailCut int) []int {
	out := make([]int, 0, headCut+len(tail)-tailCut)
	out = append(out, head[:headCut]...)
	out = append(out, tail[tailCut:]...)
	return out
}
