package stsp

// Individual is one candidate tour in the population: an ordered sequence
// of location indices beginning at Start and ending at End, its cached
// traversal Cost, and a Fitness recomputed by Selection before each
// tournament.
type Individual struct {
	Path    []int
	Cost    float64
	Fitness float64
}

func cloneIndividual(ind Individual) Individual {
	path := make([]int, len(ind.Path))
	copy(path, ind.Path)
	return Individual{Path: path, Cost: ind.Cost, Fitness: ind.Fitness}
}
