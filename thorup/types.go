// Package thorup implements the driver that ties the component tree
// (comptree), the split-findmin super-distance structure (unvisited,
// findmin), and the msb-MST builders (msbmst) into a deterministic
// linear-time single-source shortest-paths engine over an undirected,
// non-negatively-weighted wgraph.Graph.
//
// An Engine is prepared in two steps — ConstructMsbMST then
// ConstructOtherDataStructures — after which FindShortestPaths can be
// called any number of times; CleanUpBetweenQueries resets the mutable
// state a query touches without rebuilding the tree or the MST.
package thorup

import (
	"errors"
	"math"

	"github.com/katalvlaran/thorsp/comptree"
	"github.com/katalvlaran/thorsp/findmin"
	"github.com/katalvlaran/thorsp/unvisited"
	"github.com/katalvlaran/thorsp/wgraph"
)

// Sentinel errors for Engine preparation and queries.
var (
	// ErrInvalidSourceVertex is returned by FindShortestPaths for a source
	// outside [0, n).
	ErrInvalidSourceVertex = errors.New("thorup: source vertex out of range")
	// ErrNotPrepared is returned when a method runs before the prerequisite
	// construction step has completed.
	ErrNotPrepared = errors.New("thorup: engine not prepared")
)

// FindminFactory builds a fresh, empty split-findmin universe sized for
// a cap of ackermannCap — the same role construct_other_data_structures'
// split_findmin_factory argument plays, and the same signature
// clean_up_between_queries' replacement instance needs.
type FindminFactory func(ackermannCap int64) *findmin.Structure

// DefaultFindminFactory is findmin.New used directly as a FindminFactory.
func DefaultFindminFactory(ackermannCap int64) *findmin.Structure {
	return findmin.New(ackermannCap)
}

// Engine holds one prepared graph's MST, component tree, and
// super-distance structure, plus the per-query visited set. An Engine
// is not safe for concurrent queries: every query mutates that state.
type Engine struct {
	g   *wgraph.Graph
	mst *wgraph.Graph

	tree *comptree.Tree
	uv   *unvisited.Structure

	mstReady   bool
	otherReady bool

	visited []bool
	source  int32
}

// NewEngine returns an unprepared Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// satAdd adds a and b, saturating at math.MaxInt64 instead of wrapping.
// D values use math.MaxInt64 as the structure's own infinity, so adding
// any positive edge weight to an unvisited vertex's current super-distance
// must never wrap around to a small positive number.
func satAdd(a, b int64) int64 {
	if a >= math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}
