package excel

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naprofile/domain/core"
	"naprofile/domain/dataset"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFrame_NumericWithMissingTokens(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\nNA,3\n4,\nNaN,null\n")

	frame, err := NewDataReader(path).ReadFrame()
	require.NoError(t, err)
	require.Equal(t, 2, frame.ColumnCount())
	require.Equal(t, 4, frame.RowCount())

	a, ok := frame.Column("a")
	require.True(t, ok)
	assert.Equal(t, dataset.TypeNumeric, a.Type)
	assert.Equal(t, 1.0, a.Values[0])
	assert.True(t, math.IsNaN(a.Values[1]))
	assert.True(t, math.IsNaN(a.Values[3]))

	b, ok := frame.Column("b")
	require.True(t, ok)
	assert.True(t, math.IsNaN(b.Values[2]))
	assert.True(t, math.IsNaN(b.Values[3]))

	assert.NoError(t, frame.Validate())
}

func TestReadFrame_NonNumericColumnSurvivesForValidation(t *testing.T) {
	path := writeCSV(t, "id,city\n1,berlin\n2,paris\n")

	frame, err := NewDataReader(path).ReadFrame()
	require.NoError(t, err)

	city, ok := frame.Column("city")
	require.True(t, ok)
	assert.Equal(t, dataset.TypeText, city.Type)

	err = frame.Validate()
	require.Error(t, err)
	assert.True(t, core.IsSchemaError(err))
}

func TestReadFrame_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "a,b\n")

	_, err := NewDataReader(path).ReadFrame()
	assert.Error(t, err)
}

func TestReadFrame_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "absent.csv")).ReadFrame()
	assert.Error(t, err)
}

func TestReadFrame_RaggedRowsPadAsMissing(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n3\n")

	frame, err := NewDataReader(path).ReadFrame()
	require.NoError(t, err)

	b, ok := frame.Column("b")
	require.True(t, ok)
	assert.True(t, math.IsNaN(b.Values[1]))
}
