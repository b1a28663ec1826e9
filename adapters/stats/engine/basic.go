package engine

import (
	"math"

	"github.com/montanaflynn/stats"

	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// basicStats seeds a report with the descriptive arithmetic: counts,
// fractions and the >50% missingness advisory. Pure arithmetic over the
// shared frame, no failure modes beyond the validator's.
func (e *Engine) basicStats(f *dataset.Frame) *missingness.Report {
	rows, cols := f.RowCount(), f.ColumnCount()

	missingByVar := f.MissingByVariable()
	totalMissing := 0
	for _, n := range missingByVar {
		totalMissing += n
	}

	fractionByVar := make([]float64, cols)
	var aboveHalf []string
	for j, col := range f.Columns {
		indicator := make([]float64, rows)
		for i, v := range col.Values {
			if math.IsNaN(v) {
				indicator[i] = 1
			}
		}
		// Validate guarantees rows > 0, so Mean cannot fail here.
		frac, _ := stats.Mean(indicator)
		fractionByVar[j] = frac
		if frac > 0.5 {
			aboveHalf = append(aboveHalf, col.Name)
		}
	}

	return &missingness.Report{
		Rows:              rows,
		Columns:           cols,
		CompleteCases:     f.CompleteCases(),
		TotalMissing:      totalMissing,
		Variables:         f.VariableNames(),
		MissingByVariable: missingByVar,
		FractionMissing:   float64(totalMissing) / float64(rows*cols),
		FractionByVar:     fractionByVar,
		VarsAboveHalf:     aboveHalf,
	}
}
