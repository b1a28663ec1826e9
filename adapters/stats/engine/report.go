package engine

import (
	"strconv"
	"strings"

	"naprofile/domain/core"
	"naprofile/domain/missingness"
)

// fingerprint hashes every numeric artifact of a report so callers can
// assert that recomputation over the same frame is bit-identical. Report
// identity (ID, CreatedAt) is deliberately excluded.
func fingerprint(r *missingness.Report) core.Hash {
	var b strings.Builder

	writeInt := func(v int) {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte('|')
	}
	writeFloat := func(v float64) {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte('|')
	}

	writeInt(r.Rows)
	writeInt(r.Columns)
	writeInt(r.CompleteCases)
	writeInt(r.TotalMissing)
	writeFloat(r.FractionMissing)
	for _, name := range r.Variables {
		b.WriteString(name)
		b.WriteByte('|')
	}
	for _, n := range r.MissingByVariable {
		writeInt(n)
	}
	for _, v := range r.FractionByVar {
		writeFloat(v)
	}
	for _, name := range r.VarsAboveHalf {
		b.WriteString(name)
		b.WriteByte('|')
	}

	for _, m := range []*missingness.Matrix{r.Correlation, r.NACorrelation} {
		for _, row := range m.Cells {
			for _, v := range row {
				writeFloat(v)
			}
		}
	}

	for _, p := range r.Patterns.Patterns {
		for _, miss := range p.Missing {
			if miss {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		writeInt(p.Occurrences)
	}
	for _, n := range r.Patterns.Margin {
		writeInt(n)
	}

	for _, row := range r.Thresholds {
		writeInt(row.Cutoff)
		writeFloat(row.RetainedPct)
	}

	if r.Dendrogram != nil {
		for _, m := range r.Dendrogram.Merges {
			writeInt(m.A)
			writeInt(m.B)
			writeFloat(m.Height)
		}
	}

	if r.View != nil {
		for _, i := range r.View.RowOrder {
			writeInt(i)
		}
		for _, row := range r.View.Data {
			for _, v := range row {
				writeFloat(v)
			}
		}
	}

	return core.NewHash([]byte(b.String()))
}
