package msbmst

import (
	"github.com/katalvlaran/thorsp/unionfind"
	"github.com/katalvlaran/thorsp/wgraph"
)

// Kruskal builds an msb-MST by bucket-sorting edges on msb(weight) and
// sweeping them with a union-find, exactly as prim_kruskal.Kruskal
// sweeps weight-sorted edges — generalized here from "sort by weight"
// to "bucket by msb(weight), concatenate ascending".
//
// Steps:
//  1. Validate graph.
//  2. Collect one directed copy per undirected pair, choosing the copy
//     with From < To (the spec's tie-breaking rule), in g.Edges() order.
//  3. Bucket by msb(weight) into arrays indexed 0..31; concatenate
//     buckets ascending. This is a stable, non-decreasing-msb sequence.
//  4. Sweep with a fresh unionfind.DSU; accept an edge iff its endpoints
//     are in different sets. Stop at n-1 accepted edges.
//  5. Emit the accepted edges into a fresh wgraph.Graph via
//     AddUndirectedEdge, which mirrors each accepted edge into two
//     directed arcs — yielding exactly 2*(n-1) arcs when the sweep
//     reaches a spanning tree.
//
// Complexity: O(E) for the bucket sort (msb is bounded by 32), O(E α(n))
// for the union-find sweep.
type Kruskal struct{}

// BuildMsbMST implements MSTAlgorithm.
func (Kruskal) BuildMsbMST(g *wgraph.Graph) (*wgraph.Graph, error) {
	return kruskalBuild(g)
}

func kruskalBuild(g *wgraph.Graph) (*wgraph.Graph, error) {
	if g == nil || g.N() < 1 {
		return nil, ErrInvalidGraph
	}

	n := g.N()
	out, err := wgraph.New(n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return out, nil
	}

	// Bucket edges by msb(weight), one directed copy per pair (From<To).
	var buckets [32][]wgraph.WeightedArc
	for _, e := range g.Edges() {
		if e.From >= e.To {
			continue
		}
		b := MSB(e.Weight)
		buckets[b] = append(buckets[b], e)
	}

	dsu := unionfind.New(n)
	accepted := 0
	for _, bucket := range buckets {
		for _, e := range bucket {
			if accepted == n-1 {
				break
			}
			if dsu.Union(e.From, e.To) {
				_ = out.AddUndirectedEdge(e.From, e.To, e.Weight)
				accepted++
			}
		}
		if accepted == n-1 {
			break
		}
	}

	// Disconnected input: return whatever subgraph was built (see the
	// package-level note on ErrInvalidGraph/connectivity responsibility).
	return out, nil
}
