package thorup

import "github.com/katalvlaran/thorsp/comptree"

// FindShortestPaths runs one Thorup query from source against this
// engine's prepared tree and super-distance structure, returning the
// shortest-path distance to every vertex. The engine's mutable state
// (visited set, tree buckets, split-findmin lists) is left touched by the
// query; call CleanUpBetweenQueries before reusing the engine for a
// different source.
func (e *Engine) FindShortestPaths(source int32) ([]int64, error) {
	if !e.otherReady {
		return nil, ErrNotPrepared
	}
	n := e.g.N()
	if source < 0 || int(source) >= n {
		return nil, ErrInvalidSourceVertex
	}

	for i := range e.visited {
		e.visited[i] = false
	}
	e.visited[source] = true
	e.source = source

	for _, a := range e.g.Neighbors(source) {
		if _, err := e.uv.DecreaseD(a.To, int64(a.Weight)); err != nil {
			return nil, err
		}
	}

	if err := e.visit(e.tree.Root); err != nil {
		return nil, err
	}

	d := make([]int64, n)
	for v := int32(0); v < int32(n); v++ {
		dv, err := e.uv.D(v)
		if err != nil {
			return nil, err
		}
		d[v] = dv
	}
	d[source] = 0

	return d, nil
}

// visit dispatches to the leaf or internal-node recursion by node shape.
func (e *Engine) visit(nodeIdx int32) error {
	node := &e.tree.Nodes[nodeIdx]
	if node.IsLeaf {
		return e.visitLeaf(nodeIdx)
	}

	return e.visitInternal(nodeIdx)
}

// expand performs node v's first-entry setup: deriving its bucket range
// from the minimum live super-distance among its descendants, splitting
// it away from its parent's split-findmin fragment, and sorting its
// still-live children into the bucket their own min_D_minus lands in.
func (e *Engine) expand(v int32) error {
	node := &e.tree.Nodes[v]

	if dm := e.uv.MinDMinus(node); dm >= 0 {
		node.Ix0 = dm >> uint(node.I-1)
	} else {
		node.Ix0 = 0
	}
	node.Ix8 = node.Ix0 + node.Delta
	node.Buckets = make([][]int32, node.Delta+1)

	if err := e.uv.DeleteRoot(v); err != nil {
		return err
	}

	for _, c := range node.Children {
		child := &e.tree.Nodes[c]

		isSourceLeaf := child.IsLeaf && child.Vertex == e.source
		if isSourceLeaf {
			e.decrementFrom(v)

			continue
		}

		dm := e.uv.MinDMinus(child)
		if dm < 0 {
			// Nothing has reached this subtree yet. It is not bucketed now;
			// a later decrease_D reaches it through move-to-bucket once some
			// relaxation actually lands inside it.
			continue
		}

		idx := (dm >> uint(node.I-1)) - node.Ix0
		if idx >= 0 && idx <= node.Delta {
			e.insertIntoBucket(v, c, idx)
		}
	}

	node.Visited = true

	return nil
}

// visitLeaf is the expand of a level-0 node: relax every edge out of the
// now-visited vertex, rebucketing whichever ancestor currently owns the
// other endpoint when the relaxation changes its shifted min_D_minus.
func (e *Engine) visitLeaf(leafIdx int32) error {
	leaf := &e.tree.Nodes[leafIdx]
	if leaf.Vertex == e.source {
		// expand already excluded the source leaf from its parent's
		// bucketing and decremented num_unvisited for it; nothing reaches
		// visit(leaf) for the source under normal traversal, but if it did,
		// repeating that bookkeeping here would double-count it.
		return nil
	}

	e.visited[leaf.Vertex] = true

	dLeaf, err := e.uv.D(leaf.Vertex)
	if err != nil {
		return err
	}

	for _, a := range e.g.Neighbors(leaf.Vertex) {
		newD := satAdd(dLeaf, int64(a.Weight))

		cur, err := e.uv.D(a.To)
		if err != nil {
			return err
		}
		if newD <= 0 || newD >= cur {
			continue
		}

		whIdx := e.uv.UnvisitedRootOf(a.To)
		wh := &e.tree.Nodes[whIdx]

		old := e.shiftedMinDMinus(wh)
		if _, err := e.uv.DecreaseD(a.To, newD); err != nil {
			return err
		}
		updated := e.shiftedMinDMinus(wh)

		if wh.Parent != -1 && (old < 0 || updated < old) {
			e.moveToBucket(whIdx, wh.Parent, updated)
		}
	}

	e.decrementFrom(leaf.Parent)
	e.removeFromBucket(leafIdx)

	return nil
}

// shiftedMinDMinus reports min_D_minus(node) >> (node.parent.i - 1), or -1
// if node is the root or its fragment is still entirely unreached.
func (e *Engine) shiftedMinDMinus(node *comptree.Node) int64 {
	if node.Parent == -1 {
		return -1
	}
	dm := e.uv.MinDMinus(node)
	if dm < 0 {
		return -1
	}

	return dm >> uint(e.tree.Nodes[node.Parent].I-1)
}
