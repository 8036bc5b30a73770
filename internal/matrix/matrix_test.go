package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
)

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.N())
	assert.Equal(t, 2.0, m.At(0, 2))
	assert.Equal(t, []float64{1, 0, 3}, m.Row(1))
}

func TestNewFromRowsRejectsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{0, 1}, {1}})
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{0, 2}, {2, 0}})
	m.Scale(1.5)
	assert.Equal(t, 3.0, m.At(0, 1))
}

func TestAddStayPenaltySkipsRowZero(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	m.AddStayPenalty(10)
	assert.Equal(t, 1.0, m.At(0, 1), "row 0 must not receive the penalty")
	assert.Equal(t, 11.0, m.At(1, 0))
	assert.Equal(t, 11.0, m.At(2, 1))
}

func TestCloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
	clone := m.Clone()
	clone.Set(0, 1, 99)
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 99.0, clone.At(0, 1))
}
