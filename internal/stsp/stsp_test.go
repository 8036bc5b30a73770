package stsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/stsp"
)

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func euclideanMatrix(points [][2]float64) *matrix.Matrix {
	n := len(points)
	m := matrix.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			m.Set(i, j, math.Sqrt(dx*dx+dy*dy))
		}
	}
	return m
}

func randomPoints(n int, seed int64) [][2]float64 {
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64() * 400, r.Float64() * 400}
	}
	return pts
}

// S1: invariants hold across a random Euclidean instance.
func TestSolveInvariants(t *testing.T) {
	points := randomPoints(200, 1)
	d := euclideanMatrix(points)

	cfg := stsp.Config{
		Start: 0, End: 1,
		D:              d,
		MaxCost:        1000,
		PopulationSize: 500,
		Rand:           rand.New(rand.NewSource(42)),
	}
	path, cost, _, err := stsp.Solve(context.Background(), cfg, nopLogger())
	require.NoError(t, err)
	require.NotEmpty(t, path)

	assert.Equal(t, 0, path[0])
	assert.Equal(t, 1, path[len(path)-1])
	assert.Less(t, cost, cfg.MaxCost)
	assert.InDelta(t, pathCost(d, path), cost, 1e-6)
}

// S2: the loop initialiser is used when start == end.
func TestSolveLoopVariant(t *testing.T) {
	points := randomPoints(200, 2)
	d := euclideanMatrix(points)

	cfg := stsp.Config{
		Start: 0, End: 0,
		D:              d,
		MaxCost:        1000,
		PopulationSize: 200,
		Rand:           rand.New(rand.NewSource(7)),
	}
	path, cost, _, err := stsp.Solve(context.Background(), cfg, nopLogger())
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 0, path[len(path)-1])
	assert.Less(t, cost, cfg.MaxCost)
}

// S3: an unreachable start/end pair returns the empty result without
// running any generations. This only fires when start != end: for a loop
// (start == end) D.At(start,end) is 0, so the early exit never triggers
// and the degenerate-outbound case below applies instead.
func TestSolveUnreachablePair(t *testing.T) {
	d, err := matrix.NewFromRows([][]float64{
		{0, 10, 10},
		{10, 0, 10},
		{10, 10, 0},
	})
	require.NoError(t, err)

	cfg := stsp.Config{
		Start: 0, End: 1,
		D:       d,
		MaxCost: 5,
		Rand:    rand.New(rand.NewSource(1)),
	}
	path, cost, _, err := stsp.Solve(context.Background(), cfg, nopLogger())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Zero(t, cost)
}

// S3b: a loop (start == end) with no reachable outbound hop within half
// the budget degenerates to the trivial [start, start] tour of cost 0,
// per the degenerate-outbound case in initLoop/loopPath - not the empty
// result, since D.At(start, start) is 0 and never exceeds MaxCost.
func TestSolveLoopWithNoReachableOutboundDegeneratesToStartStart(t *testing.T) {
	d, err := matrix.NewFromRows([][]float64{
		{0, 10, 10},
		{10, 0, 10},
		{10, 10, 0},
	})
	require.NoError(t, err)

	cfg := stsp.Config{
		Start: 0, End: 0,
		D:       d,
		MaxCost: 5,
		Rand:    rand.New(rand.NewSource(1)),
	}
	path, cost, _, err := stsp.Solve(context.Background(), cfg, nopLogger())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, path)
	assert.Zero(t, cost)
}

// S4: with profits favouring locations 2 and 3, the returned path visits
// both of them.
func TestSolveProfitMaximising(t *testing.T) {
	d, err := matrix.NewFromRows([][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
	require.NoError(t, err)

	cfg := stsp.Config{
		Start: 0, End: 1,
		D:              d,
		W:              []float64{0, 0, 5, 5},
		MaxCost:        10,
		PopulationSize: 300,
		MaxGenerations: 200,
		Rand:           rand.New(rand.NewSource(3)),
	}
	path, _, _, err := stsp.Solve(context.Background(), cfg, nopLogger())
	require.NoError(t, err)
	assert.Contains(t, path, 2)
	assert.Contains(t, path, 3)
}

// S5: the solver returns within 2x its max_runtime even given an
// effectively unbounded generation cap.
func TestSolveRespectsRuntimeBudget(t *testing.T) {
	points := randomPoints(10, 5)
	d := euclideanMatrix(points)

	cfg := stsp.Config{
		Start: 0, End: 1,
		D:              d,
		MaxCost:        1000,
		PopulationSize: 50,
		MaxGenerations: 10_000_000,
		MaxRuntime:     1000 * time.Millisecond,
		Rand:           rand.New(rand.NewSource(9)),
	}

	done := make(chan struct{})
	go func() {
		stsp.Solve(context.Background(), cfg, nopLogger())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2000 * time.Millisecond):
		t.Fatal("solve exceeded 2x max_runtime")
	}
}

// S6: UniquePath preserves first-occurrence order, treating start/end as
// already seen.
func TestUniquePath(t *testing.T) {
	got := stsp.UniquePath([]int{0, 1, 0, 3, 1, 4, 9, 5, 3, 0}, 0, 0)
	assert.Equal(t, []int{0, 1, 3, 4, 9, 5, 0}, got)

	got2 := stsp.UniquePath([]int{0, 1, 0, 2, 1, 3, 4}, 0, 4)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got2)
}

func TestConfigValidation(t *testing.T) {
	d := matrix.New(3)
	_, err := stsp.New(stsp.Config{Start: 0, End: 1, D: d, MaxCost: -1, Rand: rand.New(rand.NewSource(1))}, nopLogger())
	assert.Error(t, err)

	_, err = stsp.New(stsp.Config{Start: 0, End: 1, D: d, MaxCost: 10, W: []float64{1, 2}, Rand: rand.New(rand.NewSource(1))}, nopLogger())
	assert.Error(t, err)

	_, err = stsp.New(stsp.Config{Start: 0, End: 1, D: d, MaxCost: 10}, nopLogger())
	assert.Error(t, err, "nil Rand must be rejected")
}

func pathCost(d *matrix.Matrix, path []int) float64 {
	total := 0.0
	for k := 0; k < len(path)-1; k++ {
		total += d.At(path[k], path[k+1])
	}
	return total
}
