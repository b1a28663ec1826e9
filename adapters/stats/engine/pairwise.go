package engine

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"naprofile/domain/core"
	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// pearsonMatrix computes the C×C Pearson correlation matrix over
// pairwise-complete observations: each pair uses exactly the rows where
// both variables are observed, not a global complete-case subset.
// Symmetric by construction; a pair with fewer than two shared
// observations or zero variance degrades to an undefined cell only.
func (e *Engine) pearsonMatrix(ctx context.Context, f *dataset.Frame) (*missingness.Matrix, error) {
	c := f.ColumnCount()
	cells := newCells(c)

	err := e.forEachPair(ctx, c, true, func(i, j int) {
		if i == j {
			if f.ObservedCount(i) >= 2 {
				cells[i][i] = 1
			}
			return
		}
		x, y := f.ObservedPair(i, j)
		r := pearson(x, y)
		cells[i][j] = r
		cells[j][i] = r
	})
	if err != nil {
		return nil, err
	}

	return &missingness.Matrix{Variables: f.VariableNames(), Cells: cells}, nil
}

// pearson computes the correlation of two aligned samples, undefined for
// fewer than two observations or zero variance in either sample.
func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return core.Undefined()
	}
	return stat.Correlation(x, y, nil)
}

// newCells allocates a C×C matrix initialized to the undefined marker, so
// any cell never written stays explicitly undefined rather than zero.
func newCells(c int) [][]float64 {
	cells := make([][]float64, c)
	for i := range cells {
		cells[i] = make([]float64, c)
		for j := range cells[i] {
			cells[i][j] = core.Undefined()
		}
	}
	return cells
}
