package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatrixView_SortsByMissingnessDescending(t *testing.T) {
	a := []float64{1, math.NaN(), 3, math.NaN()}
	b := []float64{5, math.NaN(), 7, 8}
	f := newTestFrame([]string{"a", "b"}, [][]float64{a, b})

	view := buildMatrixView(f, Options{MatrixplotSort: true})

	// Row 1 has two missing cells, row 3 one, rows 0 and 2 none (stable).
	assert.Equal(t, []int{1, 3, 0, 2}, view.RowOrder)
	assert.True(t, view.Sorted)
	assert.False(t, view.Scaled)
}

func TestBuildMatrixView_StandardizesObservedCells(t *testing.T) {
	a := []float64{1, 2, 3, math.NaN()}
	f := newTestFrame([]string{"a"}, [][]float64{a})

	view := buildMatrixView(f, Options{PlotTransform: true})

	// Observed cells have zero mean and unit sample variance; the missing
	// cell stays the missing marker.
	var observed []float64
	for _, row := range view.Data {
		if !math.IsNaN(row[0]) {
			observed = append(observed, row[0])
		}
	}
	require.Len(t, observed, 3)

	sum := 0.0
	for _, v := range observed {
		sum += v
	}
	assert.InDelta(t, 0, sum, 1e-12)
	assert.InDelta(t, -1, observed[0], 1e-12)
	assert.InDelta(t, 1, observed[2], 1e-12)
	assert.True(t, math.IsNaN(view.Data[3][0]))
}

func TestBuildMatrixView_ConstantColumnCenteredOnly(t *testing.T) {
	f := newTestFrame([]string{"const"}, [][]float64{{5, 5, 5}})

	view := buildMatrixView(f, Options{PlotTransform: true})
	for _, row := range view.Data {
		assert.Equal(t, 0.0, row[0])
	}
}

func TestBuildMatrixView_NoOptionsPreservesInput(t *testing.T) {
	a := []float64{1, math.NaN(), 3}
	f := newTestFrame([]string{"a"}, [][]float64{a})

	view := buildMatrixView(f, Options{})

	assert.Equal(t, []int{0, 1, 2}, view.RowOrder)
	assert.Equal(t, 1.0, view.Data[0][0])
	assert.True(t, math.IsNaN(view.Data[1][0]))
	assert.Equal(t, 3.0, view.Data[2][0])
}
