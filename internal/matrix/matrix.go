// Package matrix provides a dense, row-major travel-cost matrix used as the
// distance-matrix input to the selective-TSP solver in internal/stsp.
package matrix

import "fmt"

// Matrix is a square N x N matrix of non-negative travel costs, stored as a
// flat row-major slice so that a row can be sliced without copying.
type Matrix struct {
	n    int
	data []float64
}

// New allocates a zeroed N x N matrix.
func New(n int) *Matrix {
	if n < 0 {
		panic("matrix: negative size")
	}
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// NewFromRows builds a Matrix from a slice of equal-length rows.
func NewFromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	m := New(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix: row %d has length %d, want %d", i, len(row), n)
		}
		copy(m.Row(i), row)
	}
	return m, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// At returns D[i,j].
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set assigns D[i,j] = v.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// Row returns row i as a slice sharing the matrix's backing array. Mutating
// the returned slice mutates the matrix.
func (m *Matrix) Row(i int) []float64 { return m.data[i*m.n : (i+1)*m.n] }

// Scale multiplies every entry by factor, e.g. to convert units.
func (m *Matrix) Scale(factor float64) {
	for i := range m.data {
		m.data[i] *= factor
	}
}

// CorrectionFactor multiplies every entry by factor. Distinct name from
// Scale for call-site clarity: this is the routing-provider under/over
// estimation correction (APP_OSRM_CORRECTION_FACTOR in the original
// config.py), not a unit conversion.
func (m *Matrix) CorrectionFactor(factor float64) {
	m.Scale(factor)
}

// AddStayPenalty adds a constant stay-time penalty to every row except row
// 0, discouraging zero-stop tours. Row 0 is assumed to be the tour's start
// point; this also adds the penalty to edges landing on the end point,
// which may or may not match caller intent (see DESIGN.md).
func (m *Matrix) AddStayPenalty(penalty float64) {
	for i := 1; i < m.n; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] += penalty
		}
	}
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := New(m.n)
	copy(out.data, m.data)
	return out
}
