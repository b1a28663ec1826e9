package engine

import (
	"math"
	"sort"

	"naprofile/domain/core"
	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// thresholdCutoffs is the fixed candidate set of minimum-occurrence cutoffs
// evaluated by the threshold table generator.
var thresholdCutoffs = []int{5, 10, 20, 50, 100, 200, 500, 1000}

// minePatterns groups rows by exact missingness pattern and builds the
// pattern table: patterns sorted ascending by total-missing count (ties by
// ascending occurrence count) plus the per-variable margin row. A fully
// complete dataset yields a single complete pattern with count R and an
// all-zero margin.
func minePatterns(f *dataset.Frame) *missingness.PatternTable {
	mask := f.Mask()
	cols := f.ColumnCount()

	byKey := make(map[string]*missingness.Pattern)
	key := make([]byte, cols)
	for _, row := range mask {
		total := 0
		for j, m := range row {
			if m {
				key[j] = '1'
				total++
			} else {
				key[j] = '0'
			}
		}
		k := string(key)
		p, ok := byKey[k]
		if !ok {
			p = &missingness.Pattern{
				Missing:      append([]bool(nil), row...),
				TotalMissing: total,
			}
			byKey[k] = p
		}
		p.Occurrences++
	}

	patterns := make([]missingness.Pattern, 0, len(byKey))
	for _, p := range byKey {
		patterns = append(patterns, *p)
	}
	sort.Slice(patterns, func(a, b int) bool {
		if patterns[a].TotalMissing != patterns[b].TotalMissing {
			return patterns[a].TotalMissing < patterns[b].TotalMissing
		}
		if patterns[a].Occurrences != patterns[b].Occurrences {
			return patterns[a].Occurrences < patterns[b].Occurrences
		}
		// Patterns come out of a map: a lexicographic tertiary key keeps
		// ties in the same order on every recomputation.
		return lessMissing(patterns[a].Missing, patterns[b].Missing)
	})

	return &missingness.PatternTable{
		Variables: f.VariableNames(),
		Patterns:  patterns,
		Margin:    f.MissingByVariable(),
	}
}

// lessMissing orders equal-length missingness vectors lexicographically,
// observed before missing.
func lessMissing(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return !a[i]
		}
	}
	return false
}

// thresholdTable answers, for each candidate cutoff t: if only patterns
// occurring more than t times are simulated, what share of incomplete rows
// is still represented. Only incomplete patterns participate; with zero
// incomplete rows every entry is undefined rather than a division crash.
func thresholdTable(pt *missingness.PatternTable) missingness.ThresholdTable {
	denom := pt.IncompleteRows()

	table := make(missingness.ThresholdTable, 0, len(thresholdCutoffs))
	for _, cutoff := range thresholdCutoffs {
		if denom == 0 {
			table = append(table, missingness.ThresholdRow{Cutoff: cutoff, RetainedPct: core.Undefined()})
			continue
		}
		retained := 0
		for _, p := range pt.Patterns {
			if !p.IsComplete() && p.Occurrences > cutoff {
				retained += p.Occurrences
			}
		}
		pct := math.Round(100 * float64(retained) / float64(denom))
		table = append(table, missingness.ThresholdRow{Cutoff: cutoff, RetainedPct: pct})
	}
	return table
}
