// Package unionfind implements a classical disjoint-set forest with
// union-by-size and full path compression.
//
// Generalized out of the inline DSU in prim_kruskal.Kruskal (parent/rank
// maps local to one function) into a reusable type, because the spec
// this module implements consumes the same primitive from two call
// sites: msbmst's bucket sweep and the component-tree construction's
// per-bucket merge (see comptree.BuildFromMST).
package unionfind

// DSU is a disjoint-set forest over the dense integer range 0..n-1.
type DSU struct {
	parent []int32
	size   []int32
}

// New allocates a DSU with n singleton sets {0}, {1}, ..., {n-1}.
// Complexity: O(n).
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int32, n),
		size:   make([]int32, n),
	}
	for i := range d.parent {
		d.parent[i] = int32(i)
		d.size[i] = 1
	}

	return d
}

// Find returns the canonical representative of x's set, compressing the
// path from x to the root along the way.
//
// Complexity: amortized O(α(n)).
func (d *DSU) Find(x int32) int32 {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: repoint every visited node directly at root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Union merges the sets containing a and b, attaching the smaller set's
// root under the larger set's root (ties broken toward a's root). It
// reports whether a merge actually happened (false if a and b were
// already in the same set).
//
// Complexity: amortized O(α(n)).
func (d *DSU) Union(a, b int32) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]

	return true
}

// Size returns the number of elements in x's set.
func (d *DSU) Size(x int32) int32 {
	return d.size[d.Find(x)]
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int32) bool {
	return d.Find(a) == d.Find(b)
}
