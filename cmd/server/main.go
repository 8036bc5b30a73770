package main

import (
	"flag"
	"net/http"

	"github.com/fabio-scala/poitour-backend/internal/api"
	"github.com/fabio-scala/poitour-backend/internal/config"
	"github.com/fabio-scala/poitour-backend/internal/logging"
	"github.com/fabio-scala/poitour-backend/internal/routing"
	"github.com/fabio-scala/poitour-backend/internal/tour"
)

// corsMiddleware allows cross-origin requests, carried over from the
// teacher's cmd/server/main.go unchanged.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.Server.LogLevel)

	osrm := routing.NewOSRMClient(cfg.Routing.OSRMBaseURL)
	cached, err := routing.NewCachedClient(osrm, cfg.Cache.RedisAddr, cfg.Cache.LocalSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build routing cache")
	}

	planner := tour.NewPlanner(cached, log)
	srv := api.NewServer(planner, cfg.GA, log)

	mux := http.NewServeMux()
	srv.Routes(mux)

	log.Info().Str("addr", cfg.Server.Addr).Msg("starting poitour-backend")
	if err := http.ListenAndServe(cfg.Server.Addr, corsMiddleware(mux)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
