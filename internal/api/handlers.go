// Package api exposes the tour planner and POI registry over HTTP/JSON,
// grounded on the teacher's internal/api/handlers.go (net/http.ServeMux,
// encoding/json, explicit method checks) generalized to the new
// request/response shapes.
package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fabio-scala/poitour-backend/internal/config"
	"github.com/fabio-scala/poitour-backend/internal/models"
	"github.com/fabio-scala/poitour-backend/internal/poi"
	"github.com/fabio-scala/poitour-backend/internal/tour"
)

// Server wires the tour planner and POI registry into HTTP handlers.
type Server struct {
	planner *tour.Planner
	ga      config.GAConfig
	log     zerolog.Logger
}

// NewServer builds a Server.
func NewServer(planner *tour.Planner, ga config.GAConfig, log zerolog.Logger) *Server {
	return &Server{planner: planner, ga: ga, log: log}
}

// Routes registers the server's handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/tours", s.handleTours)
	mux.HandleFunc("/pois", s.handlePOIs)
	mux.HandleFunc("/health", s.handleHealth)
}

// tourRequest is the POST /tours body.
type tourRequest struct {
	Start           models.Location `json:"start"`
	End             models.Location `json:"end"`
	Candidates      []models.POI    `json:"candidates"`
	MaxCostSeconds  float64         `json:"max_cost_seconds"`
	StayTimeSeconds float64         `json:"stay_time_seconds"`
	Seed            int64           `json:"seed"`
}

func (s *Server) handleTours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req tourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.MaxCostSeconds <= 0 {
		http.Error(w, "max_cost_seconds must be positive", http.StatusBadRequest)
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	result, err := s.planner.Plan(r.Context(), tour.PlanRequest{
		Start:                req.Start,
		End:                  req.End,
		Candidates:           req.Candidates,
		MaxCostSeconds:       req.MaxCostSeconds,
		StayTimeSeconds:      req.StayTimeSeconds,
		PopulationSize:       s.ga.PopulationSize,
		TournamentSize:       s.ga.TournamentSize,
		MinGenerations:       s.ga.MinGenerations,
		MaxGenerations:       s.ga.MaxGenerations,
		TerminationThreshold: s.ga.TerminationThreshold,
		MaxRuntime:           s.ga.MaxRuntime(),
		Rand:                 rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("plan tour failed")
		http.Error(w, "failed to plan tour", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handlePOIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"providers": poi.Registered()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
