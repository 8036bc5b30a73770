package stsp

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Solver holds the mutable state of one solve call: the current
// population and the per-generation best-individual log. A Solver is not
// safe for concurrent use and is meant to be used for exactly one Solve
// (or CalcTour) call.
type Solver struct {
	cfg        Config
	population []Individual
	bestLog    []Individual
	log        zerolog.Logger
}

// New validates cfg, applies its defaults, and returns a ready Solver.
// Returns a *ConfigError for precondition violations (spec §7); this is
// never a retryable runtime failure.
func New(cfg Config, logger zerolog.Logger) (*Solver, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg, log: logger}, nil
}

// Solve runs the genetic algorithm to termination and returns the best
// path/cost found over the default result window (everything but
// generation 0, see Result). Returns an empty path and zero cost iff
// start/end are unreachable within MaxCost (spec §4.1) — this is the only
// case where path is empty and is not an error.
func (s *Solver) Solve(ctx context.Context) ([]int, float64) {
	if s.cfg.MaxCost < s.cfg.D.At(s.cfg.Start, s.cfg.End) {
		return nil, 0
	}

	s.bestLog = make([]Individual, 0, s.cfg.MaxGenerations)
	s.initPopulation()
	s.selection() // generation 0: the pre-crossover snapshot (spec §4.8 note).

	window := convergenceWindow
	if s.cfg.MinGenerations < window {
		window = s.cfg.MinGenerations
	}
	deadline := time.Now().Add(s.cfg.MaxRuntime)

generations:
	for generation := 1; generation < s.cfg.MaxGenerations; generation++ {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("stsp: stopping, context cancelled")
			break generations
		default:
		}
		if time.Now().After(deadline) {
			s.log.Info().Int("generation", generation).Msg("stsp: stopping, wall-clock budget exhausted")
			break generations
		}
		if generation > s.cfg.MinGenerations && s.converged(window) {
			s.log.Info().Int("generation", generation).Msg("stsp: stopping, converged")
			break generations
		}

		s.crossover()
		s.mutation()
		s.selection()
		s.log.Debug().Int("generation", generation).Msg("stsp: generation complete")
	}
	if len(s.bestLog) >= s.cfg.MaxGenerations {
		s.log.Info().Int("generation", len(s.bestLog)).Msg("stsp: stopping, max generations reached")
	}

	return s.Result(0)
}

// converged implements the termination-by-convergence check of spec §4.7,
// guarding against the short best-log slices that occur near the start of
// a run (spec §9 note).
func (s *Solver) converged(window int) bool {
	n := len(s.bestLog)
	if n < window {
		return false
	}
	recent := s.bestLog[n-window:]
	prior := s.bestLog[:n-window]
	if len(prior) == 0 {
		return false
	}

	deltaFit := maxFitness(recent) - maxFitness(prior)
	loCost, hiCost := minMaxCost(recent)
	deltaCost := hiCost - loCost

	return deltaFit < s.cfg.MaxCost && (deltaCost/s.cfg.MaxCost) < s.cfg.TerminationThreshold
}

// Result returns the fittest individual's path and cost over the last lastN
// generations of the best log. lastN <= 0 defaults to every generation
// actually executed, excluding generation 0 — the pre-crossover snapshot is
// symmetrically biased and should not be compared against real generations
// (spec §4.8).
func (s *Solver) Result(lastN int) ([]int, float64) {
	if len(s.bestLog) == 0 {
		return nil, 0
	}

	lo := 1
	if lastN > 0 {
		lo = len(s.bestLog) - lastN
	}
	if lo < 1 {
		lo = 1
	}
	if lo >= len(s.bestLog) {
		// Only generation 0 ever ran; fall back to it rather than return nothing.
		lo = 0
	}

	window := s.bestLog[lo:]
	best := window[0]
	for _, ind := range window[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best.Path, best.Cost
}

// Generations reports how many real generations ran past the initial
// generation-0 snapshot; 0 if Solve returned early as unreachable or only
// ran generation 0.
func (s *Solver) Generations() int {
	if len(s.bestLog) == 0 {
		return 0
	}
	return len(s.bestLog) - 1
}

func maxFitness(log []Individual) float64 {
	best := log[0].Fitness
	for _, ind := range log[1:] {
		if ind.Fitness > best {
			best = ind.Fitness
		}
	}
	return best
}

func minMaxCost(log []Individual) (lo, hi float64) {
	lo, hi = log[0].Cost, log[0].Cost
	for _, ind := range log[1:] {
		if ind.Cost < lo {
			lo = ind.Cost
		}
		if ind.Cost > hi {
			hi = ind.Cost
		}
	}
	return lo, hi
}

// Solve is the package-level convenience form of the "solve" operation
// (spec §6): build a Solver from cfg, run it to termination, and report how
// many generations actually ran.
func Solve(ctx context.Context, cfg Config, logger zerolog.Logger) ([]int, float64, int, error) {
	s, err := New(cfg, logger)
	if err != nil {
		return nil, 0, 0, err
	}
	path, cost := s.Solve(ctx)
	return path, cost, s.Generations(), nil
}

// CalcTour mirrors the original GaSolver.calc_tour: Solve, then extract the
// fittest individual over the last lastN generations instead of the
// default window.
func CalcTour(ctx context.Context, cfg Config, logger zerolog.Logger, lastN int) ([]int, float64, int, error) {
	s, err := New(cfg, logger)
	if err != nil {
		return nil, 0, 0, err
	}
	s.Solve(ctx)
	path, cost := s.Result(lastN)
	return path, cost, s.Generations(), nil
}
