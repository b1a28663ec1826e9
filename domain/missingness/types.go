package missingness

import (
	"encoding/json"
	"math"

	"naprofile/domain/core"
)

// Pattern describes which variables are missing together within a row.
// Patterns are deduplicated across rows; the occurrence count is the number
// of rows exactly matching the pattern and is semantically load-bearing
// (the threshold generator consumes it).
type Pattern struct {
	Missing      []bool `json:"missing"`
	Occurrences  int    `json:"occurrences"`
	TotalMissing int    `json:"total_missing"`
}

// IsComplete reports whether the pattern is the all-observed pattern.
func (p Pattern) IsComplete() bool {
	return p.TotalMissing == 0
}

// PatternTable is the deduplicated pattern set, sorted ascending by
// total-missing count with ties broken by ascending occurrence count,
// plus a per-variable margin of total missing counts.
type PatternTable struct {
	Variables []string  `json:"variables"`
	Patterns  []Pattern `json:"patterns"`
	Margin    []int     `json:"margin"`
}

// IncompleteRows returns the number of rows covered by patterns with at
// least one missing variable.
func (t *PatternTable) IncompleteRows() int {
	total := 0
	for _, p := range t.Patterns {
		if !p.IsComplete() {
			total += p.Occurrences
		}
	}
	return total
}

// ThresholdRow pairs a candidate occurrence cutoff with the percentage of
// incomplete rows still represented when only patterns occurring more than
// the cutoff are kept. RetainedPct is the undefined marker when the dataset
// has no incomplete rows.
type ThresholdRow struct {
	Cutoff      int
	RetainedPct float64
}

func (r ThresholdRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cutoff      int         `json:"cutoff"`
		RetainedPct interface{} `json:"retained_pct"`
	}{r.Cutoff, jsonNumber(r.RetainedPct)})
}

// ThresholdTable holds one row per candidate cutoff, in cutoff-set order.
type ThresholdTable []ThresholdRow

// Matrix is a dense named square matrix of statistics. Undefined cells
// carry NaN; they marshal as null.
type Matrix struct {
	Variables []string
	Cells     [][]float64
}

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Cells[i][j]
}

func (m *Matrix) MarshalJSON() ([]byte, error) {
	cells := make([][]interface{}, len(m.Cells))
	for i, row := range m.Cells {
		cells[i] = make([]interface{}, len(row))
		for j, v := range row {
			cells[i][j] = jsonNumber(v)
		}
	}
	return json.Marshal(struct {
		Variables []string        `json:"variables"`
		Cells     [][]interface{} `json:"cells"`
	}{m.Variables, cells})
}

// DendrogramNode is one node of the co-missingness merge tree. Leaves name
// a variable; internal nodes record the merge height and subtree size.
type DendrogramNode struct {
	Variable string          `json:"variable,omitempty"`
	Left     *DendrogramNode `json:"left,omitempty"`
	Right    *DendrogramNode `json:"right,omitempty"`
	Height   float64         `json:"height"`
	Size     int             `json:"size"`
}

// IsLeaf reports whether the node is a leaf.
func (n *DendrogramNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Merge records one agglomeration step in hclust convention: negative
// values reference leaves as -(index+1), positive values reference the
// 1-based result of an earlier merge.
type Merge struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Height float64 `json:"height"`
}

// Dendrogram is the merge tree over the variables that carry missingness.
type Dendrogram struct {
	Labels []string        `json:"labels"`
	Root   *DendrogramNode `json:"root"`
	Merges []Merge         `json:"merges"`
}

// MatrixView is the row-ordered, optionally standardized copy of the input
// matrix handed to the matrix-plot sink. It never feeds back into any
// numeric artifact.
type MatrixView struct {
	Variables []string `json:"variables"`
	RowOrder  []int    `json:"row_order"`
	Sorted    bool     `json:"sorted"`
	Scaled    bool     `json:"scaled"`
	Data      [][]float64
}

func (v *MatrixView) MarshalJSON() ([]byte, error) {
	data := make([][]interface{}, len(v.Data))
	for i, row := range v.Data {
		data[i] = make([]interface{}, len(row))
		for j, val := range row {
			data[i][j] = jsonNumber(val)
		}
	}
	return json.Marshal(struct {
		Variables []string        `json:"variables"`
		RowOrder  []int           `json:"row_order"`
		Sorted    bool            `json:"sorted"`
		Scaled    bool            `json:"scaled"`
		Data      [][]interface{} `json:"data"`
	}{v.Variables, v.RowOrder, v.Sorted, v.Scaled, data})
}

// Report bundles every artifact of one profiling run. It is immutable once
// assembled; recomputing over the same frame yields an identical
// Fingerprint (ID and CreatedAt are excluded from it).
type Report struct {
	ID        core.ReportID  `json:"id"`
	CreatedAt core.Timestamp `json:"created_at"`

	Rows          int `json:"rows"`
	Columns       int `json:"columns"`
	CompleteCases int `json:"complete_cases"`
	TotalMissing  int `json:"total_missing"`

	Variables         []string  `json:"variables"`
	MissingByVariable []int     `json:"missing_by_variable"`
	FractionMissing   float64   `json:"fraction_missing"`
	FractionByVar     []float64 `json:"fraction_missing_by_variable"`
	VarsAboveHalf     []string  `json:"vars_above_half"`

	Correlation   *Matrix        `json:"correlation"`
	Patterns      *PatternTable  `json:"patterns"`
	Thresholds    ThresholdTable `json:"thresholds"`
	NACorrelation *Matrix        `json:"na_correlation"`

	// Dendrogram is nil when clustering is undefined; ClusteringError then
	// carries the reason.
	Dendrogram      *Dendrogram `json:"dendrogram,omitempty"`
	ClusteringError string      `json:"clustering_error,omitempty"`

	View *MatrixView `json:"view"`

	Fingerprint core.Hash `json:"fingerprint"`
}

// jsonNumber maps the NaN undefined marker to null for serialization;
// the in-process contract stays plain float64.
func jsonNumber(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
