package engine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naprofile/domain/core"
)

func TestNACorrelation_ValueDependentMissingness(t *testing.T) {
	// a goes missing exactly where b is large: the point-biserial entry
	// (row a, column b) must pick up a strong positive signal.
	rows := 20
	a := make([]float64, rows)
	b := make([]float64, rows)
	for i := 0; i < rows; i++ {
		a[i] = float64(i % 5)
		b[i] = float64(i)
		if i >= 15 {
			a[i] = math.NaN()
		}
	}
	f := newTestFrame([]string{"a", "b"}, [][]float64{a, b})

	m, err := New().naCorrelationMatrix(context.Background(), f)
	require.NoError(t, err)

	assert.Greater(t, m.At(0, 1), 0.5)
	assert.LessOrEqual(t, m.At(0, 1), 1.0)
}

func TestNACorrelation_ZeroMissingnessRowUndefined(t *testing.T) {
	a := []float64{1, math.NaN(), 3, 4}
	b := []float64{5, 6, 7, 8} // no missingness
	f := newTestFrame([]string{"a", "b"}, [][]float64{a, b})

	m, err := New().naCorrelationMatrix(context.Background(), f)
	require.NoError(t, err)

	// b never goes missing: its entire indicator row is undefined.
	for j := 0; j < 2; j++ {
		assert.True(t, core.IsUndefined(m.At(1, j)), "cell (1,%d)", j)
	}
}

func TestNACorrelation_DiagonalUndefined(t *testing.T) {
	f := sharedMaskFrame()

	m, err := New().naCorrelationMatrix(context.Background(), f)
	require.NoError(t, err)

	for i := 0; i < f.ColumnCount(); i++ {
		assert.True(t, core.IsUndefined(m.At(i, i)), "diagonal cell %d", i)
	}
}

func TestNACorrelation_BoundsOrUndefined(t *testing.T) {
	f := sharedMaskFrame()

	m, err := New().naCorrelationMatrix(context.Background(), f)
	require.NoError(t, err)

	for i := range m.Cells {
		for j := range m.Cells[i] {
			v := m.At(i, j)
			if core.IsUndefined(v) {
				continue
			}
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNACorrCell_ZeroVarianceValues(t *testing.T) {
	a := []float64{1, math.NaN(), 3, math.NaN()}
	constant := []float64{7, 7, 7, 7}
	f := newTestFrame([]string{"a", "const"}, [][]float64{a, constant})

	assert.True(t, core.IsUndefined(naCorrCell(f, 0, 1)))
}
