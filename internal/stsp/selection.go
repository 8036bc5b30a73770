package stsp

// selection recomputes fitness across the whole population, records the
// generation's fittest individual, then replaces the population with the
// result of tournamentSamples-wide tournaments (spec §4.4).
func (s *Solver) selection() {
	pop := s.population
	for i := range pop {
		pop[i].Fitness = s.cfg.fitness(&pop[i])
	}

	best := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Fitness > pop[best].Fitness {
			best = i
		}
	}
	s.bestLog = append(s.bestLog, cloneIndividual(pop[best]))

	offspring := make([]Individual, len(pop))
	for i := range offspring {
		fittest := s.cfg.Rand.Intn(len(pop))
		for k := 1; k < tournamentSamples; k++ {
			candidate := s.cfg.Rand.Intn(len(pop))
			if pop[candidate].Fitness > pop[fittest].Fitness {
				fittest = candidate
			}
		}
		offspring[i] = cloneIndividual(pop[fittest])
	}
	s.population = offspring
}
