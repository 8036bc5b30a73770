// Command tourctl runs the selective-TSP solver against fixture data
// without a routing-service round trip, supplementing the dev/test tooling
// the original repo's build.py/manager.py scripts provided outside the web
// app. Distances are computed directly from haversine, adapted from the
// teacher's internal/solver/tsp.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/fabio-scala/poitour-backend/internal/data"
	"github.com/fabio-scala/poitour-backend/internal/logging"
	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/models"
	"github.com/fabio-scala/poitour-backend/internal/stsp"
)

func main() {
	startIdx := flag.Int("start", 0, "index into the fixture's city list to start from")
	endIdx := flag.Int("end", 0, "index into the fixture's city list to end at (defaults to start, a loop tour)")
	maxCost := flag.Float64("max-cost", 50000, "maximum tour cost in the fixture's distance units (km)")
	populationSize := flag.Int("population", stsp.DefaultPopulationSize, "GA population size")
	maxGenerations := flag.Int("max-generations", stsp.DefaultMaxGenerations, "GA generation cap")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	end := *startIdx
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "end" {
			end = *endIdx
		}
	})

	log := logging.New("info")

	cities := data.IndianCities
	d := haversineMatrix(cities)

	cfg := stsp.Config{
		Start:          *startIdx,
		End:            end,
		D:              d,
		MaxCost:        *maxCost,
		PopulationSize: *populationSize,
		MaxGenerations: *maxGenerations,
		MaxRuntime:     stsp.DefaultMaxRuntime,
		Rand:           rand.New(rand.NewSource(*seed)),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	path, cost, generations, err := stsp.Solve(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tourctl:", err)
		os.Exit(1)
	}

	if len(path) == 0 {
		fmt.Println("no tour found within the cost budget")
		return
	}

	fmt.Printf("cost: %.1f km, %d stops, %d generations\n", cost, len(path), generations)
	for _, idx := range path {
		fmt.Printf("  %s (%.4f, %.4f)\n", cities[idx].Name, cities[idx].Lat, cities[idx].Lng)
	}
}

func haversineMatrix(cities []models.NamedLocation) *matrix.Matrix {
	n := len(cities)
	m := matrix.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			m.Set(i, j, haversineKm(cities[i].Location, cities[j].Location))
		}
	}
	return m
}

// haversineKm is adapted from the teacher's solver.haversine.
func haversineKm(p1, p2 models.Location) float64 {
	const earthRadiusKm = 6371.0
	dLat := (p2.Lat - p1.Lat) * (math.Pi / 180.0)
	dLng := (p2.Lng - p1.Lng) * (math.Pi / 180.0)
	lat1 := p1.Lat * (math.Pi / 180.0)
	lat2 := p2.Lat * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
