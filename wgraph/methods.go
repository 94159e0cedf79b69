package wgraph

// AddUndirectedEdge adds an edge {u,v} with the given weight, storing one
// directed Arc in each endpoint's adjacency list. Both Arcs carry w.
//
// Steps:
//  1. Validate u, v are in range and u != v.
//  2. Validate w > 0.
//  3. Validate neither ordered pair (u,v) nor (v,u) already exists.
//  4. Append Arc{To: v} to adj[u] and Arc{To: u} to adj[v].
//
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(u, v int32, w int32) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if w <= 0 {
		return ErrNonPositiveWeight
	}
	if _, ok := g.seen[u][v]; ok {
		return ErrParallelEdge
	}
	if _, ok := g.seen[v][u]; ok {
		return ErrParallelEdge
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w})
	g.seen[u][v] = struct{}{}
	g.seen[v][u] = struct{}{}
	g.m += 2

	return nil
}

// AddDirectedArc appends a single directed arc u->v without mirroring it.
// The msb-MST builders in msbmst do not use it; they emit tree edges
// through AddUndirectedEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddDirectedArc(u, v int32, w int32) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if w <= 0 {
		return ErrNonPositiveWeight
	}
	if _, ok := g.seen[u][v]; ok {
		return ErrParallelEdge
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	g.seen[u][v] = struct{}{}
	g.m++

	return nil
}

// HasEdge reports whether the ordered pair (u,v) has a stored Arc.
func (g *Graph) HasEdge(u, v int32) bool {
	if !g.inRange(u) {
		return false
	}
	_, ok := g.seen[u][v]

	return ok
}

// Neighbors returns the Arcs outgoing from v, in insertion order. The
// returned slice shares storage with the Graph and must not be mutated;
// insertion order is part of the determinism contract (see design notes
// on tie-breaking for decrease_D and split).
func (g *Graph) Neighbors(v int32) []Arc {
	if !g.inRange(v) {
		return nil
	}

	return g.adj[v]
}

// Edges returns every directed Arc in the graph as (From, To, Weight)
// triples, in vertex-then-insertion order. Useful for bucket-sorting by
// msb(weight) in msbmst.
func (g *Graph) Edges() []WeightedArc {
	out := make([]WeightedArc, 0, g.m)
	for u := 0; u < g.n; u++ {
		for _, a := range g.adj[u] {
			out = append(out, WeightedArc{From: int32(u), To: a.To, Weight: a.Weight})
		}
	}

	return out
}

// WeightedArc is a fully-materialized directed edge, used when a
// consumer needs to sort or bucket edges independently of adjacency
// order (e.g. msbmst's bucket-sort-by-msb sweep).
type WeightedArc struct {
	From   int32
	To     int32
	Weight int32
}
