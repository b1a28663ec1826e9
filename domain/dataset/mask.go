package dataset

import "math"

// Mask returns the R×C missingness mask, mask[i][j] = true iff cell (i,j)
// is missing. The mask is derived on demand and never stored alongside the
// frame, so it cannot drift from the data.
func (f *Frame) Mask() [][]bool {
	rows, cols := f.RowCount(), f.ColumnCount()
	mask := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		mask[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			mask[i][j] = math.IsNaN(f.Columns[j].Values[i])
		}
	}
	return mask
}

// MissingByVariable returns the per-column missing cell count.
func (f *Frame) MissingByVariable() []int {
	counts := make([]int, f.ColumnCount())
	for j, col := range f.Columns {
		for _, v := range col.Values {
			if math.IsNaN(v) {
				counts[j]++
			}
		}
	}
	return counts
}

// RowMissingCounts returns the per-row missing cell count.
func (f *Frame) RowMissingCounts() []int {
	counts := make([]int, f.RowCount())
	for _, col := range f.Columns {
		for i, v := range col.Values {
			if math.IsNaN(v) {
				counts[i]++
			}
		}
	}
	return counts
}

// CompleteCases returns the number of rows with zero missing cells.
func (f *Frame) CompleteCases() int {
	complete := 0
	for _, n := range f.RowMissingCounts() {
		if n == 0 {
			complete++
		}
	}
	return complete
}

// ObservedCount returns the number of observed cells in column j.
func (f *Frame) ObservedCount(j int) int {
	n := 0
	for _, v := range f.Columns[j].Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}
