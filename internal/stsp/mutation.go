package stsp

import "sort"

// mutation normalises duplicates out of each path, deletes one interior
// element, then greedily re-inserts as many nearby candidates as the
// budget allows (spec §4.6).
func (s *Solver) mutation() {
	cfg := &s.cfg
	for i := range s.population {
		ind := &s.population[i]
		path := ind.Path

		if len(path) > 2 {
			path = uniquePath(path, cfg.Start, cfg.End)
			ind.Path = path
			ind.Cost = cfg.cost(path)
		}

		if len(path) > 2 {
			removeAt := 1 + cfg.Rand.Intn(len(path)-2)
			path = deleteAt(path, removeAt)
			ind.Path = path
			ind.Cost = cfg.cost(path)
		}

		insertPos := 1 + cfg.Rand.Intn(len(path)-1)
		from := path[insertPos-1]

		for _, candidate := range cfg.insertionOrder(from) {
			if containsInt(path, candidate) {
				continue
			}
			trial := insertAt(path, insertPos, candidate)
			trialCost := cfg.cost(trial)
			if trialCost >= cfg.MaxCost {
				break
			}
			path = trial
			ind.Path = path
			ind.Cost = trialCost
		}
	}
}

// uniquePath removes interior duplicates, preserving first-occurrence
// order; Start and End are treated as already seen. Exported behavior
// tested directly as UniquePath for the package's behavioural-law tests.
func uniquePath(path []int, start, end int) []int {
	seen := map[int]bool{start: true, end: true}
	out := make([]int, 0, len(path))
	out = append(out, start)
	for _, x := range path[1 : len(path)-1] {
		if seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	out = append(out, end)
	return out
}

// UniquePath exposes uniquePath for tests and callers that want to
// normalise a path without running a generation (spec §8, law 6).
func UniquePath(path []int, start, end int) []int {
	return uniquePath(path, start, end)
}

// insertionOrder returns the candidate insertion order from "from": closest
// first. When W is set, ties are broken by descending weight; otherwise
// ties keep ascending index order.
func (c *Config) insertionOrder(from int) []int {
	n := c.D.N()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	row := c.D.Row(from)

	if c.W != nil {
		sort.SliceStable(order, func(i, j int) bool {
			di, dj := row[order[i]], row[order[j]]
			if di != dj {
				return di < dj
			}
			return c.W[order[i]] > c.W[order[j]]
		})
	} else {
		sort.SliceStable(order, func(i, j int) bool {
			return row[order[i]] < row[order[j]]
		})
	}
	return order
}

func containsInt(path []int, v int) bool {
	for _, x := range path {
		if x == v {
			return true
		}
	}
	return false
}

func deleteAt(path []int, i int) []int {
	out := make([]int, 0, len(path)-1)
	out = append(out, path[:i]...)
	out = append(out, path[i+1:]...)
	return out
}

func insertAt(path []int, pos, v int) []int {
	out := make([]int, 0, len(path)+1)
	out = append(out, path[:pos]...)
	out = append(out, v)
	out = append(out, path[pos:]...)
	return out
}
