package engine

import (
	"context"
	"math"

	"naprofile/domain/core"
	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// naCorrelationMatrix computes the C×C missingness-correlation matrix:
// cell (i,j) is the point-biserial correlation between variable j's
// observed values and variable i's missingness indicator, restricted to
// rows where j is observed. Asymmetric by construction (row = indicator,
// column = value). A large-magnitude cell suggests the missingness of i
// depends on the value of j, consistent with MAR-on-observed structure.
func (e *Engine) naCorrelationMatrix(ctx context.Context, f *dataset.Frame) (*missingness.Matrix, error) {
	c := f.ColumnCount()
	cells := newCells(c)

	err := e.forEachPair(ctx, c, false, func(i, j int) {
		cells[i][j] = naCorrCell(f, i, j)
	})
	if err != nil {
		return nil, err
	}

	return &missingness.Matrix{Variables: f.VariableNames(), Cells: cells}, nil
}

// naCorrCell computes one point-biserial entry. Undefined when i==j
// (the indicator is identically zero on j's observed rows), when variable i
// has constant missingness over those rows, or when j's observed values
// have zero variance. Undefined cells never abort the computation.
func naCorrCell(f *dataset.Frame, i, j int) float64 {
	if i == j {
		return core.Undefined()
	}

	vi, vj := f.Columns[i].Values, f.Columns[j].Values
	var values, indicator []float64
	ones := 0
	for r := range vj {
		if math.IsNaN(vj[r]) {
			continue
		}
		values = append(values, vj[r])
		if math.IsNaN(vi[r]) {
			indicator = append(indicator, 1)
			ones++
		} else {
			indicator = append(indicator, 0)
		}
	}

	if len(values) < 2 || ones == 0 || ones == len(indicator) {
		return core.Undefined()
	}
	return pearson(values, indicator)
}
