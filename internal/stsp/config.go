// Package stsp implements the Selective Travelling Salesman Problem solver:
// a genetic algorithm that, given a start point, an end point, a travel-time
// budget and a pool of weighted points of interest, searches for the
// highest-value ordered visit sequence that fits the budget.
//
// The package does no I/O. It consumes a precomputed distance matrix
// (internal/matrix.Matrix) and an optional profit vector; everything about
// where those numbers came from is the caller's concern.
package stsp

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
)

// Defaults mirror the original GaSolver's constructor defaults.
const (
	DefaultPopulationSize       = 1000
	DefaultTournamentSize       = 5
	DefaultMinGenerations       = 5
	DefaultMaxGenerations       = 200
	DefaultTerminationThreshold = 0.01
	DefaultMaxRuntime           = 10 * time.Second
)

// tournamentSamples is the sample size Selection actually draws. It is
// hard-coded to 10 regardless of Config.TournamentSize; see DESIGN.md.
const tournamentSamples = 10

// convergenceWindow is the number of trailing generations compared for the
// termination-by-convergence check.
const convergenceWindow = 5

// Config bundles every input to one Solve call.
type Config struct {
	Start, End int

	// D is the point-to-point travel-cost matrix. Required.
	D *matrix.Matrix

	// W is the optional per-location profit vector. nil means every
	// location carries equal weight.
	W []float64

	// MaxCost is the strict upper bound on any admissible path's cost.
	MaxCost float64

	PopulationSize        int
	TournamentSize        int
	MinGenerations        int
	MaxGenerations        int
	TerminationThreshold  float64
	MaxRuntime            time.Duration

	// Rand is the solver's only source of randomness. It must be supplied
	// by the caller (e.g. rand.New(rand.NewSource(seed))) so runs are
	// reproducible in tests; Solve never touches the global rand state.
	Rand *rand.Rand
}

// ConfigError reports a precondition violation: a nil matrix, an
// out-of-range start or end index, a profit vector length, a negative
// budget, a population or tournament size that is too small, or a nil Rand.
// These are programmer errors, not runtime failures, and are never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "stsp: invalid config: " + e.Reason }

func (c Config) withDefaults() Config {
	if c.PopulationSize == 0 {
		c.PopulationSize = DefaultPopulationSize
	}
	if c.TournamentSize == 0 {
		c.TournamentSize = DefaultTournamentSize
	}
	if c.MinGenerations == 0 {
		c.MinGenerations = DefaultMinGenerations
	}
	if c.MaxGenerations == 0 {
		c.MaxGenerations = DefaultMaxGenerations
	}
	if c.TerminationThreshold == 0 {
		c.TerminationThreshold = DefaultTerminationThreshold
	}
	if c.MaxRuntime == 0 {
		c.MaxRuntime = DefaultMaxRuntime
	}
	return c
}

func (c Config) validate() error {
	if c.D == nil {
		return &ConfigError{"distance matrix is nil"}
	}
	n := c.D.N()
	if c.Start < 0 || c.Start >= n {
		return &ConfigError{fmt.Sprintf("start index %d out of range [0,%d)", c.Start, n)}
	}
	if c.End < 0 || c.End >= n {
		return &ConfigError{fmt.Sprintf("end index %d out of range [0,%d)", c.End, n)}
	}
	if c.W != nil && len(c.W) != n {
		return &ConfigError{fmt.Sprintf("profit vector length %d != matrix size %d", len(c.W), n)}
	}
	if c.MaxCost < 0 {
		return &ConfigError{"max_cost must be non-negative"}
	}
	if c.PopulationSize < 2 {
		return &ConfigError{"population_size must be >= 2"}
	}
	if c.TournamentSize < 1 {
		return &ConfigError{"tournament_size must be >= 1"}
	}
	if c.Rand == nil {
		return &ConfigError{"Rand must be a non-nil, caller-seeded source"}
	}
	return nil
}

// cost sums D along consecutive pairs of path. O(len(path)).
func (c *Config) cost(path []int) float64 {
	total := 0.0
	for k := 0; k < len(path)-1; k++ {
		total += c.D.At(path[k], path[k+1])
	}
	return total
}

// fitness is engineered so that sorting descending by fitness sorts by
// (path length descending, cost ascending), with an optional additive
// profit term. See spec §4.3.
func (c *Config) fitness(ind *Individual) float64 {
	length := float64(len(ind.Path))
	base := length
	if c.W != nil {
		profit := 0.0
		for _, idx := range ind.Path {
			profit += c.W[idx]
		}
		base = profit + length
	}
	return base*c.MaxCost - ind.Cost
}
