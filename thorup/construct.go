package thorup

import (
	"github.com/katalvlaran/thorsp/comptree"
	"github.com/katalvlaran/thorsp/findmin"
	"github.com/katalvlaran/thorsp/msbmst"
	"github.com/katalvlaran/thorsp/unionfind"
	"github.com/katalvlaran/thorsp/unvisited"
	"github.com/katalvlaran/thorsp/wgraph"
)

// ConstructMsbMST builds the msb-MST of g using algo and records it as
// this engine's spanning subgraph. Must run before
// ConstructOtherDataStructures.
func (e *Engine) ConstructMsbMST(g *wgraph.Graph, algo msbmst.MSTAlgorithm) error {
	if g == nil || g.N() < 1 || algo == nil {
		return msbmst.ErrInvalidGraph
	}

	mst, err := algo.BuildMsbMST(g)
	if err != nil {
		return err
	}

	e.g = g
	e.mst = mst
	e.mstReady = true
	e.otherReady = false

	return nil
}

// ConstructOtherDataStructures builds the component tree (via ufFactory)
// and the initial split-findmin super-distance structure (via fmFactory),
// then binds them through unvisited.New. Must run after ConstructMsbMST
// and before the first FindShortestPaths.
func (e *Engine) ConstructOtherDataStructures(ufFactory comptree.DSUFactory, fmFactory FindminFactory) error {
	if !e.mstReady {
		return ErrNotPrepared
	}

	n := e.g.N()
	tree, err := comptree.BuildFromMSTUsing(e.mst, n, ufFactory)
	if err != nil {
		return err
	}

	fm, err := seedFindmin(tree, fmFactory, n)
	if err != nil {
		return err
	}

	uv, err := unvisited.New(tree, fm)
	if err != nil {
		return err
	}

	e.tree = tree
	e.uv = uv
	e.visited = make([]bool, n)
	e.otherReady = true

	return nil
}

// CleanUpBetweenQueries resets the tree's visited/num_unvisited state and
// replaces the split-findmin universe wholesale with a fresh one built by
// fmFactory, costs starting back at +infinity in the same DFS order.
// Buckets are not explicitly cleared here; they are already nil-cleared
// by Tree.Reset and recreated lazily on the next expand.
func (e *Engine) CleanUpBetweenQueries(fmFactory FindminFactory) error {
	if !e.otherReady {
		return ErrNotPrepared
	}

	e.tree.Reset()
	for i := range e.visited {
		e.visited[i] = false
	}

	fm, err := seedFindmin(e.tree, fmFactory, e.g.N())
	if err != nil {
		return err
	}

	uv, err := unvisited.New(e.tree, fm)
	if err != nil {
		return err
	}

	e.uv = uv

	return nil
}

// seedFindmin builds a fresh split-findmin universe, adds one element per
// leaf in tree.DFSOrder at cost findmin.Inf, and initializes it.
func seedFindmin(tree *comptree.Tree, fmFactory FindminFactory, n int) (*findmin.Structure, error) {
	fm := fmFactory(int64(n))
	for range tree.DFSOrder {
		if _, err := fm.Add(nil, findmin.Inf); err != nil {
			return nil, err
		}
	}
	if err := fm.Initialize(); err != nil {
		return nil, err
	}

	return fm, nil
}

// PrepareDefault runs both construction steps with the package's own
// unionfind.DSU and findmin.Structure, for callers that have no reason to
// inject alternatives (cmd/thorsp and cmd/thorsp-bench both use this).
func (e *Engine) PrepareDefault(g *wgraph.Graph, algo msbmst.MSTAlgorithm) error {
	if err := e.ConstructMsbMST(g, algo); err != nil {
		return err
	}

	return e.ConstructOtherDataStructures(unionfind.New, DefaultFindminFactory)
}
