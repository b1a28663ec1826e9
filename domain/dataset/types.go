package dataset

import (
	"math"

	"naprofile/domain/core"
)

// StatisticalType defines variable types for analysis
type StatisticalType string

const (
	TypeNumeric     StatisticalType = "numeric"
	TypeCategorical StatisticalType = "categorical"
	TypeText        StatisticalType = "text"
)

// Column is one named variable of a frame. Values are aligned with frame
// rows; missing cells carry NaN regardless of the column's numeric domain.
type Column struct {
	Name   string
	Type   StatisticalType
	Values []float64
}

// Frame is the canonical data object for all missingness computation:
// an ordered sequence of named columns of equal length. It is the single
// input to every engine and is never mutated after construction.
type Frame struct {
	Columns []Column
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// AddColumn appends a column to the frame.
func (f *Frame) AddColumn(name string, typ StatisticalType, values []float64) {
	f.Columns = append(f.Columns, Column{Name: name, Type: typ, Values: values})
}

// RowCount returns the number of observations (rows).
func (f *Frame) RowCount() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return len(f.Columns[0].Values)
}

// ColumnCount returns the number of variables (columns).
func (f *Frame) ColumnCount() int {
	return len(f.Columns)
}

// VariableNames returns the column names in frame order.
func (f *Frame) VariableNames() []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the named column, if present.
func (f *Frame) Column(name string) (*Column, bool) {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i], true
		}
	}
	return nil, false
}

// Validate ensures the frame is internally consistent and fully numeric.
// Runs before any engine; a SchemaError names every non-numeric column,
// not just the first offender.
func (f *Frame) Validate() error {
	if f.RowCount() == 0 {
		return core.ErrEmptyFrame
	}

	rows := f.RowCount()
	for _, col := range f.Columns {
		if len(col.Values) != rows {
			return core.NewValidationError(col.Name, "length mismatch with frame rows")
		}
	}

	var offending []string
	for _, col := range f.Columns {
		if col.Type != TypeNumeric {
			offending = append(offending, col.Name)
		}
	}
	if len(offending) > 0 {
		return core.NewSchemaError(offending)
	}

	return nil
}

// Matrix returns a row-major copy of the frame values. Callers own the copy.
func (f *Frame) Matrix() [][]float64 {
	rows, cols := f.RowCount(), f.ColumnCount()
	data := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		data[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			data[i][j] = f.Columns[j].Values[i]
		}
	}
	return data
}

// ObservedPair collects the rows where both columns are observed.
func (f *Frame) ObservedPair(i, j int) (x, y []float64) {
	xi, xj := f.Columns[i].Values, f.Columns[j].Values
	for r := range xi {
		if !math.IsNaN(xi[r]) && !math.IsNaN(xj[r]) {
			x = append(x, xi[r])
			y = append(y, xj[r])
		}
	}
	return x, y
}
