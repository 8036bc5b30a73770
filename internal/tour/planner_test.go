package tour_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/models"
	"github.com/fabio-scala/poitour-backend/internal/tour"
)

type stubRouting struct {
	rows [][]float64
}

func (s *stubRouting) Matrix(ctx context.Context, points []models.Location) (*matrix.Matrix, error) {
	return matrix.NewFromRows(s.rows)
}

func (s *stubRouting) Route(ctx context.Context, points []models.Location) ([]models.Location, float64, error) {
	return points, float64(len(points)) * 10, nil
}

func TestPlanWithNoCandidatesRoutesDirectly(t *testing.T) {
	p := tour.NewPlanner(&stubRouting{}, zerolog.Nop())
	result, err := p.Plan(context.Background(), tour.PlanRequest{
		Start: models.Location{Lat: 0, Lng: 0},
		End:   models.Location{Lat: 1, Lng: 1},
	})
	require.NoError(t, err)
	assert.Len(t, result.Path, 2)
	assert.Len(t, result.Geometry, 2)
}

func TestPlanWithCandidatesSolvesAndRoutes(t *testing.T) {
	rows := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	p := tour.NewPlanner(&stubRouting{rows: rows}, zerolog.Nop())

	result, err := p.Plan(context.Background(), tour.PlanRequest{
		Start: models.Location{Lat: 0, Lng: 0},
		End:   models.Location{Lat: 1, Lng: 0},
		Candidates: []models.POI{
			{ID: "a", Location: models.Location{Lat: 2, Lng: 0}, Weight: 5},
			{ID: "b", Location: models.Location{Lat: 3, Lng: 0}, Weight: 5},
		},
		MaxCostSeconds: 10,
		PopulationSize: 50,
		MaxGenerations: 50,
		Rand:           rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)
	assert.Equal(t, result.Path[0].Location, models.Location{Lat: 0, Lng: 0})
}
