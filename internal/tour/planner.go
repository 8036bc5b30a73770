// Package tour assembles a planned tour: resolving candidate points,
// requesting a travel-cost matrix from internal/routing, running
// internal/stsp's solver over it, and rendering the chosen path back into a
// geometry via internal/routing.
//
// Grounded on app/structures/tour.py's Tour.calculate: the same
// resolve-points -> build-matrix -> apply-penalties -> solve ->
// fetch-route sequence, expressed as Go methods instead of one long
// function.
package tour

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/fabio-scala/poitour-backend/internal/models"
	"github.com/fabio-scala/poitour-backend/internal/routing"
	"github.com/fabio-scala/poitour-backend/internal/stsp"
)

// PlanRequest describes a tour to be planned.
type PlanRequest struct {
	Start, End      models.Location
	Candidates      []models.POI
	MaxCostSeconds  float64
	StayTimeSeconds float64

	PopulationSize       int
	TournamentSize       int
	MinGenerations       int
	MaxGenerations       int
	TerminationThreshold float64
	MaxRuntime           time.Duration

	CorrectionFactor float64
	// Rand seeds the GA's randomness; if nil a time-seeded source is used.
	Rand *rand.Rand
}

// Planner assembles tours from a routing collaborator.
type Planner struct {
	routing routing.Client
	log     zerolog.Logger
}

// NewPlanner builds a Planner against the given routing collaborator.
func NewPlanner(client routing.Client, log zerolog.Logger) *Planner {
	return &Planner{routing: client, log: log}
}

// Plan resolves req into a models.TourResult.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*models.TourResult, error) {
	if len(req.Candidates) == 0 {
		geometry, seconds, err := p.routing.Route(ctx, []models.Location{req.Start, req.End})
		if err != nil {
			return nil, fmt.Errorf("tour: plan direct route: %w", err)
		}
		return &models.TourResult{
			Path:        []models.POI{{Location: req.Start}, {Location: req.End}},
			Geometry:    geometry,
			CostSeconds: seconds,
		}, nil
	}

	// end_ix mirrors Tour.calculate: 0 when start == end (a loop tour needs
	// no separate end slot), 1 otherwise.
	loop := req.Start == req.End
	endIx := 0
	points := []models.Location{req.Start}
	pois := []models.POI{{Location: req.Start}}
	if !loop {
		endIx = 1
		points = append(points, req.End)
		pois = append(pois, models.POI{Location: req.End})
	}
	for _, c := range req.Candidates {
		points = append(points, c.Location)
		pois = append(pois, c)
	}

	weights := make([]float64, endIx+1, len(points))
	for _, c := range req.Candidates {
		weights = append(weights, c.Weight)
	}

	d, err := p.routing.Matrix(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("tour: plan matrix: %w", err)
	}

	if req.CorrectionFactor != 0 && req.CorrectionFactor != 1 {
		d.CorrectionFactor(req.CorrectionFactor)
	}
	// Penalise every destination except directly from start, mirroring
	// Tour.calculate's `distances[1:] += self.stay_time`.
	d.AddStayPenalty(req.StayTimeSeconds)

	rnd := req.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cfg := stsp.Config{
		Start:                0,
		End:                  endIx,
		D:                    d,
		W:                    weights,
		MaxCost:              req.MaxCostSeconds,
		PopulationSize:       req.PopulationSize,
		TournamentSize:       req.TournamentSize,
		MinGenerations:       req.MinGenerations,
		MaxGenerations:       req.MaxGenerations,
		TerminationThreshold: req.TerminationThreshold,
		MaxRuntime:           req.MaxRuntime,
		Rand:                 rnd,
	}

	path, cost, generations, err := stsp.Solve(ctx, cfg, p.log)
	if err != nil {
		return nil, fmt.Errorf("tour: solve: %w", err)
	}

	visited := make([]models.POI, 0, len(path))
	viaPoints := make([]models.Location, 0, len(path))
	if len(path) == 0 {
		// No tour found within the constraints: route directly start->end,
		// mirroring Tour.calculate's fallback to all_points[0], all_points[end_ix].
		viaPoints = []models.Location{pois[0].Location, pois[endIx].Location}
		visited = []models.POI{pois[0], pois[endIx]}
	} else {
		for _, idx := range path {
			visited = append(visited, pois[idx])
			viaPoints = append(viaPoints, pois[idx].Location)
		}
	}

	geometry, _, err := p.routing.Route(ctx, viaPoints)
	if err != nil {
		return nil, fmt.Errorf("tour: plan route: %w", err)
	}

	return &models.TourResult{
		Path:        visited,
		Geometry:    geometry,
		CostSeconds: cost,
		Generations: generations,
	}, nil
}
