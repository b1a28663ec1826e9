package missingness

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestMatrixMarshal_UndefinedCellsAreNull(t *testing.T) {
	m := &Matrix{
		Variables: []string{"a", "b"},
		Cells:     [][]float64{{1, math.NaN()}, {math.NaN(), 1}},
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "null") {
		t.Errorf("expected undefined cells as null, got %s", out)
	}
	if strings.Contains(string(out), "NaN") {
		t.Errorf("NaN must never leak into JSON: %s", out)
	}
}

func TestThresholdRowMarshal(t *testing.T) {
	defined, err := json.Marshal(ThresholdRow{Cutoff: 5, RetainedPct: 100})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(defined) != `{"cutoff":5,"retained_pct":100}` {
		t.Errorf("unexpected encoding: %s", defined)
	}

	undefined, err := json.Marshal(ThresholdRow{Cutoff: 5, RetainedPct: math.NaN()})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(undefined) != `{"cutoff":5,"retained_pct":null}` {
		t.Errorf("unexpected encoding: %s", undefined)
	}
}

func TestPatternTable_IncompleteRows(t *testing.T) {
	table := &PatternTable{
		Variables: []string{"a", "b"},
		Patterns: []Pattern{
			{Missing: []bool{false, false}, Occurrences: 80},
			{Missing: []bool{true, true}, Occurrences: 20, TotalMissing: 2},
		},
		Margin: []int{20, 20},
	}

	if got := table.IncompleteRows(); got != 20 {
		t.Errorf("IncompleteRows = %d, want 20", got)
	}
}
