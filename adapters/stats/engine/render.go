package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// buildMatrixView prepares the matrix handed to the matrix-plot sink:
// optionally standardized per variable and row-ordered by missingness
// descending. Missing cells stay NaN so the sink can render them as gaps.
// The view feeds rendering only; no numeric artifact reads it.
func buildMatrixView(f *dataset.Frame, opts Options) *missingness.MatrixView {
	data := f.Matrix()
	rows, cols := f.RowCount(), f.ColumnCount()

	if opts.PlotTransform {
		for j := 0; j < cols; j++ {
			standardizeColumn(data, j, rows)
		}
	}

	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}
	if opts.MatrixplotSort {
		counts := f.RowMissingCounts()
		sort.SliceStable(order, func(a, b int) bool {
			return counts[order[a]] > counts[order[b]]
		})
	}

	ordered := make([][]float64, rows)
	for i, src := range order {
		ordered[i] = data[src]
	}

	return &missingness.MatrixView{
		Variables: f.VariableNames(),
		RowOrder:  order,
		Sorted:    opts.MatrixplotSort,
		Scaled:    opts.PlotTransform,
		Data:      ordered,
	}
}

// standardizeColumn centers and scales column j over its observed cells.
// A constant column is centered only; its spread carries no plot signal.
func standardizeColumn(data [][]float64, j, rows int) {
	var observed []float64
	for i := 0; i < rows; i++ {
		if !math.IsNaN(data[i][j]) {
			observed = append(observed, data[i][j])
		}
	}
	if len(observed) == 0 {
		return
	}

	mean, std := stat.MeanStdDev(observed, nil)
	for i := 0; i < rows; i++ {
		if math.IsNaN(data[i][j]) {
			continue
		}
		data[i][j] -= mean
		if std > 0 && !math.IsNaN(std) {
			data[i][j] /= std
		}
	}
}
