package engine

import (
	"math"

	"naprofile/domain/core"
	"naprofile/domain/dataset"
	"naprofile/domain/missingness"
)

// clusterComissingness builds the co-missingness dendrogram: variables with
// at least one missing value are clustered agglomeratively under Ward
// linkage over their pairwise asymmetric binary distance. Variables with no
// missingness contribute nothing to co-missingness and are excluded before
// any distance is computed. Fewer than two eligible variables makes the
// clustering undefined.
func clusterComissingness(f *dataset.Frame) (*missingness.Dendrogram, error) {
	missingByVar := f.MissingByVariable()

	var labels []string
	var indicators [][]bool
	rows := f.RowCount()
	for j, col := range f.Columns {
		if missingByVar[j] == 0 {
			continue
		}
		ind := make([]bool, rows)
		for i, v := range col.Values {
			ind[i] = math.IsNaN(v)
		}
		labels = append(labels, col.Name)
		indicators = append(indicators, ind)
	}

	if len(labels) < 2 {
		return nil, core.ErrDegenerateInput
	}

	n := len(labels)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := binaryDistance(indicators[i], indicators[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	root, merges := wardLinkage(labels, dist)
	return &missingness.Dendrogram{Labels: labels, Root: root, Merges: merges}, nil
}

// binaryDistance is the asymmetric binary (Jaccard) dissimilarity between
// two indicator columns: disagreements / (agreements-on-1 + disagreements).
// Joint absence carries no information about co-missingness and is ignored.
func binaryDistance(a, b []bool) float64 {
	ones, disagree := 0, 0
	for i := range a {
		switch {
		case a[i] && b[i]:
			ones++
		case a[i] != b[i]:
			disagree++
		}
	}
	if ones+disagree == 0 {
		return 0
	}
	return float64(disagree) / float64(ones+disagree)
}

// cluster is one active agglomeration unit during linkage.
type cluster struct {
	node *missingness.DendrogramNode
	// hclust-style reference: -(leaf+1) for leaves, 1-based merge step
	// for earlier merges.
	ref  int
	size int
}

// wardLinkage agglomerates under minimum-variance linkage using the
// Lance-Williams update on squared dissimilarities. Heights are the square
// roots of the Ward criterion at each merge, so they grow monotonically.
func wardLinkage(labels []string, dist [][]float64) (*missingness.DendrogramNode, []missingness.Merge) {
	n := len(labels)

	active := make([]cluster, n)
	for i, name := range labels {
		active[i] = cluster{
			node: &missingness.DendrogramNode{Variable: name, Size: 1},
			ref:  -(i + 1),
			size: 1,
		}
	}

	// Working matrix of squared dissimilarities between active clusters.
	d2 := make([][]float64, n)
	for i := range d2 {
		d2[i] = make([]float64, n)
		for j := range d2[i] {
			d2[i][j] = dist[i][j] * dist[i][j]
		}
	}

	merges := make([]missingness.Merge, 0, n-1)
	for step := 1; len(active) > 1; step++ {
		// Closest active pair (bi < bj).
		bi, bj := 0, 1
		best := d2[0][1]
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				if d2[i][j] < best {
					best, bi, bj = d2[i][j], i, j
				}
			}
		}

		height := math.Sqrt(best)
		a, b := active[bi], active[bj]
		merged := cluster{
			node: &missingness.DendrogramNode{
				Left:   a.node,
				Right:  b.node,
				Height: height,
				Size:   a.size + b.size,
			},
			ref:  step,
			size: a.size + b.size,
		}
		merges = append(merges, missingness.Merge{A: a.ref, B: b.ref, Height: height})

		// Lance-Williams Ward update against every other active cluster,
		// written into slot bi before slot bj is dropped.
		for k := 0; k < len(active); k++ {
			if k == bi || k == bj {
				continue
			}
			nk := float64(active[k].size)
			ni, nj := float64(a.size), float64(b.size)
			upd := ((ni+nk)*d2[bi][k] + (nj+nk)*d2[bj][k] - nk*d2[bi][bj]) / (ni + nj + nk)
			d2[bi][k] = upd
			d2[k][bi] = upd
		}

		active[bi] = merged
		active = append(active[:bj], active[bj+1:]...)
		for k := range d2 {
			d2[k] = append(d2[k][:bj], d2[k][bj+1:]...)
		}
		d2 = append(d2[:bj], d2[bj+1:]...)
	}

	return active[0].node, merges
}
