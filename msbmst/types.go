// Package msbmst computes a spanning subgraph of an undirected weighted
// wgraph.Graph that is minimum under the "msb-of-weight" order rather
// than the weight order a conventional MST uses: edges compare by the
// index of their weight's most significant set bit. Kruskal breaks ties
// by g.Edges() order; Prim and FredmanTarjan leave the order among
// equal-msb candidates to their heaps. The resulting msb-MST is not a shortest-paths
// artifact itself — it is the raw material comptree.BuildFromMST turns
// into the component tree that drives the thorup package's bucketed
// visit order.
//
// Three interchangeable algorithms build an msb-MST (Kruskal, Prim, and
// a Fibonacci-heap variant named for Fredman–Tarjan), all satisfying
// MSTAlgorithm so thorup.Engine.ConstructMsbMST can select one.
package msbmst

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/thorsp/wgraph"
)

// Sentinel errors for msb-MST construction.
//
// Disconnected input is deliberately NOT an error here: per the spec this
// package implements, a disconnected sweep simply stops short of
// 2*(n-1) directed arcs and whatever subgraph was built is returned as
// is — callers (thorup.Engine) are responsible for guaranteeing
// connectivity before calling ConstructMsbMST.
var (
	// ErrInvalidGraph indicates a nil graph or one with fewer than 1 vertex.
	ErrInvalidGraph = errors.New("msbmst: graph must be non-nil with at least one vertex")

	// ErrEmptyRoot indicates Prim was asked to grow from an out-of-range root.
	ErrEmptyRoot = errors.New("msbmst: root vertex out of range")
)

// MSTAlgorithm is the capability every msb-MST builder implements,
// matching the injection point named in the external interface:
// "mst_algorithm ... given a weighted undirected graph return a
// spanning subgraph with 2(n-1) directed edges, ordering acceptable
// under msb-weight".
type MSTAlgorithm interface {
	BuildMsbMST(g *wgraph.Graph) (*wgraph.Graph, error)
}

// MSB returns the index of w's most significant set bit. w must be > 0;
// callers (wgraph.AddUndirectedEdge) already reject non-positive weights.
// Exported because comptree.BuildFromMST buckets the msb-MST's own edges
// by the same function when deriving component-tree levels.
func MSB(w int32) int {
	return bits.Len32(uint32(w)) - 1
}
