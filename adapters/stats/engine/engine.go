package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"naprofile/domain/core"
	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// Options controls the artifacts handed to plotting collaborators. The
// numeric artifacts (correlation, patterns, thresholds, clustering) are
// always computed on untransformed data and ignore these flags.
type Options struct {
	// MatrixplotSort orders matrix-view rows by missing count descending
	// instead of original order.
	MatrixplotSort bool
	// PlotTransform standardizes each variable (zero mean, unit variance
	// over observed cells) in the matrix view.
	PlotTransform bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{MatrixplotSort: true, PlotTransform: true}
}

// Engine computes missingness-structure reports over validated frames.
// It is stateless; the only knob is the width of the pair fan-out used by
// the two O(C²·R) correlation engines.
type Engine struct {
	workers int64
}

// New creates an engine sized to the available compute units.
func New() *Engine {
	return &Engine{workers: int64(runtime.GOMAXPROCS(0))}
}

// Profile derives the full missingness fingerprint of a frame. The frame is
// validated first; on SchemaError no partial artifacts are produced. A
// degenerate clustering input does not abort the report - the dendrogram is
// omitted and the reason recorded.
func (e *Engine) Profile(ctx context.Context, frame *dataset.Frame, opts Options) (*missingness.Report, error) {
	if err := frame.Validate(); err != nil {
		return nil, err
	}

	report := e.basicStats(frame)

	corr, err := e.pearsonMatrix(ctx, frame)
	if err != nil {
		return nil, err
	}
	report.Correlation = corr

	nacorr, err := e.naCorrelationMatrix(ctx, frame)
	if err != nil {
		return nil, err
	}
	report.NACorrelation = nacorr

	report.Patterns = minePatterns(frame)
	report.Thresholds = thresholdTable(report.Patterns)

	dendro, err := clusterComissingness(frame)
	if err != nil {
		report.ClusteringError = err.Error()
	} else {
		report.Dendrogram = dendro
	}

	report.View = buildMatrixView(frame, opts)

	report.Fingerprint = fingerprint(report)
	report.ID = core.ReportID(core.NewID())
	report.CreatedAt = core.Now()
	return report, nil
}

// forEachPair fans fn out over the index pairs of a C×C computation,
// bounded by the engine's worker budget. Each invocation is independent and
// read-only over shared input, so no ordering is imposed.
func (e *Engine) forEachPair(ctx context.Context, c int, upperOnly bool, fn func(i, j int)) error {
	sem := semaphore.NewWeighted(e.workers)
	for i := 0; i < c; i++ {
		start := 0
		if upperOnly {
			start = i
		}
		for j := start; j < c; j++ {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			go func(i, j int) {
				defer sem.Release(1)
				fn(i, j)
			}(i, j)
		}
	}

	// Drain the semaphore so every in-flight pair has finished.
	if err := sem.Acquire(ctx, e.workers); err != nil {
		return err
	}
	sem.Release(e.workers)
	return nil
}
