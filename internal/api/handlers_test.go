package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabio-scala/poitour-backend/internal/api"
	"github.com/fabio-scala/poitour-backend/internal/config"
	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/models"
	"github.com/fabio-scala/poitour-backend/internal/tour"
)

type stubRouting struct{}

func (stubRouting) Matrix(ctx context.Context, points []models.Location) (*matrix.Matrix, error) {
	return matrix.New(len(points)), nil
}

func (stubRouting) Route(ctx context.Context, points []models.Location) ([]models.Location, float64, error) {
	return points, 10, nil
}

func newTestServer() *http.ServeMux {
	planner := tour.NewPlanner(stubRouting{}, zerolog.Nop())
	srv := api.NewServer(planner, config.Default().GA, zerolog.Nop())
	mux := http.NewServeMux()
	srv.Routes(mux)
	return mux
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestPOIsEndpointListsProviders(t *testing.T) {
	mux := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pois", nil)
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["providers"], "kort")
}

func TestToursEndpointRejectsInvalidBudget(t *testing.T) {
	mux := newTestServer()
	payload, _ := json.Marshal(map[string]any{
		"start":            models.Location{Lat: 0, Lng: 0},
		"end":              models.Location{Lat: 1, Lng: 1},
		"max_cost_seconds": 0,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tours", bytes.NewReader(payload))
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToursEndpointPlansDirectRoute(t *testing.T) {
	mux := newTestServer()
	payload, _ := json.Marshal(map[string]any{
		"start":            models.Location{Lat: 0, Lng: 0},
		"end":              models.Location{Lat: 1, Lng: 1},
		"max_cost_seconds": 100,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tours", bytes.NewReader(payload))
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.TourResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Path, 2)
}

func TestToursEndpointRejectsWrongMethod(t *testing.T) {
	mux := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tours", nil)
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
