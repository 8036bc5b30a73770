package stsp

// initPopulation dispatches to the loop or tour variant depending on
// whether Start == End (spec §4.2).
func (s *Solver) initPopulation() {
	if s.cfg.Start == s.cfg.End {
		s.population = s.initLoop()
	} else {
		s.population = s.initTour()
	}
}

// initLoop builds the closed-tour initial population: an outbound random
// walk until half the budget is spent, then back along the same path.
func (s *Solver) initLoop() []Individual {
	cfg := &s.cfg
	pop := make([]Individual, cfg.PopulationSize)
	maxInitCost := 0.5 * cfg.MaxCost

	for i := range pop {
		outbound := []int{cfg.Start}
		current := cfg.Start
		accumulated := 0.0

		for {
			row := cfg.D.Row(current)
			threshold := maxInitCost - accumulated
			var candidates []int
			for j, d := range row {
				if j == current {
					continue
				}
				if d < threshold {
					candidates = append(candidates, j)
				}
			}
			if len(candidates) == 0 {
				break
			}
			next := candidates[cfg.Rand.Intn(len(candidates))]
			accumulated += row[next]
			outbound = append(outbound, next)
			current = next
		}

		pop[i] = Individual{
			Path: loopPath(outbound),
			Cost: 2 * accumulated,
		}
	}
	return pop
}

// loopPath turns the outbound leg into the full closed tour: outbound
// followed by its reverse, excluding the duplicated turnaround point. A
// degenerate outbound of just [start] yields [start, start].
func loopPath(outbound []int) []int {
	if len(outbound) < 2 {
		return []int{outbound[0], outbound[0]}
	}
	path := make([]int, 0, 2*len(outbound)-1)
	path = append(path, outbound...)
	for k := len(outbound) - 2; k >= 0; k-- {
		path = append(path, outbound[k])
	}
	return path
}

// initTour builds the open-tour initial population: half grown forward
// from Start towards End, half grown forward from End towards Start (then
// reversed).
func (s *Solver) initTour() []Individual {
	cfg := &s.cfg
	pop := make([]Individual, cfg.PopulationSize)
	mid := cfg.PopulationSize / 2

	s.growHalf(pop[:mid], cfg.Start, cfg.End, false)
	s.growHalf(pop[mid:], cfg.End, cfg.Start, true)
	return pop
}

// growHalf fills slot with individuals grown greedily from "from" towards
// "to". When reverse is true the finished path is reversed before storing,
// so the stored path still runs Start -> End.
func (s *Solver) growHalf(slot []Individual, from, to int, reverse bool) {
	cfg := &s.cfg
	n := cfg.D.N()

	for i := range slot {
		path := []int{from}
		current := from
		accumulated := 0.0

		for {
			row := cfg.D.Row(current)
			toRow := cfg.D.Row(to)
			remaining := cfg.MaxCost - accumulated

			var candidates []int
			for j := 0; j < n; j++ {
				if j == to || j == current {
					continue
				}
				if row[j]+toRow[j] <= remaining {
					candidates = append(candidates, j)
				}
			}

			if len(candidates) == 0 {
				accumulated += row[to]
				path = append(path, to)
				break
			}

			next := candidates[cfg.Rand.Intn(len(candidates))]
			accumulated += row[next]
			path = append(path, next)
			current = next
		}

		if reverse {
			reverseInPlace(path)
		}

		slot[i] = Individual{Path: path, Cost: accumulated}
	}
}

func reverseInPlace(path []int) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
