package comptree

import (
	"github.com/katalvlaran/thorsp/msbmst"
	"github.com/katalvlaran/thorsp/unionfind"
	"github.com/katalvlaran/thorsp/wgraph"
)

// DSUFactory builds the disjoint-set forest BuildFromMSTUsing sweeps
// with — injected so callers (thorup.Engine.ConstructOtherDataStructures)
// can supply their own union-find construction.
type DSUFactory func(n int) *unionfind.DSU

// BuildFromMST is BuildFromMSTUsing with the package's own unionfind.DSU.
func BuildFromMST(mst *wgraph.Graph, n int) (*Tree, error) {
	return BuildFromMSTUsing(mst, n, unionfind.New)
}

// BuildFromMSTUsing implements the bucket-sweep-with-union-find
// construction: bucket the msb-MST's edges by msb(weight) ascending,
// sweep them with a disjoint-set forest built by newDSU, and coalesce
// each maximal run of same-msb edges into one new internal tree node per
// surviving merged component.
func BuildFromMSTUsing(mst *wgraph.Graph, n int, newDSU DSUFactory) (*Tree, error) {
	if mst == nil || n < 1 {
		return nil, ErrInvalidInput
	}

	t := &Tree{N: n, Nodes: make([]Node, n)}
	for v := 0; v < n; v++ {
		t.Nodes[v] = Node{Index: int32(v), Parent: -1, IsLeaf: true, Vertex: int32(v), InBucketOf: -1, BucketIdx: -1}
	}
	if n == 1 {
		t.Root = 0

		return t, finishTree(t)
	}

	var buckets [32][]wgraph.WeightedArc
	for _, e := range mst.Edges() {
		if e.From >= e.To {
			continue // both directed copies exist; keep one per undirected pair
		}
		buckets[msbmst.MSB(e.Weight)] = append(buckets[msbmst.MSB(e.Weight)], e)
	}

	dsu := newDSU(n)
	c := make([]int32, n) // canonical tree-node id for each DSU root
	s := make([]int64, n) // accumulated msb-MST edge weight of each DSU root's component
	for v := 0; v < n; v++ {
		c[v] = int32(v)
	}

	var pending []int32
	pendingSeen := make(map[int32]bool)
	lastRoot := int32(-1)

	flush := func(msb int) {
		if len(pending) == 0 {
			return
		}

		var newX []int32
		seenNew := make(map[int32]bool)
		for _, x := range pending {
			r := dsu.Find(x)
			if !seenNew[r] {
				seenNew[r] = true
				newX = append(newX, r)
			}
		}

		for _, r := range newX {
			nodeIdx := int32(len(t.Nodes))
			t.Nodes = append(t.Nodes, Node{Index: nodeIdx, Parent: -1, I: msb + 1, InBucketOf: -1, BucketIdx: -1})
			t.Nodes[nodeIdx].Delta = ceilShiftDiv(s[r], uint(msb))

			for _, x := range pending {
				if dsu.Find(x) != r {
					continue
				}
				child := c[x]
				if t.Nodes[child].Parent != -1 {
					continue // already attached by an earlier r's pass over the same x
				}
				t.Nodes[child].Parent = nodeIdx
				t.Nodes[nodeIdx].Children = append(t.Nodes[nodeIdx].Children, child)
			}

			c[r] = nodeIdx
			lastRoot = r
		}

		pending = pending[:0]
		pendingSeen = make(map[int32]bool)
	}

	currentMSB := -1
	for msb := 0; msb < 32; msb++ {
		for _, e := range buckets[msb] {
			if currentMSB != -1 && currentMSB != msb {
				flush(currentMSB)
			}
			currentMSB = msb

			ru, rv := dsu.Find(e.From), dsu.Find(e.To)
			if !pendingSeen[ru] {
				pendingSeen[ru] = true
				pending = append(pending, ru)
			}
			if !pendingSeen[rv] {
				pendingSeen[rv] = true
				pending = append(pending, rv)
			}

			dsu.Union(ru, rv)
			merged := dsu.Find(ru)
			other := ru
			if merged == ru {
				other = rv
			}
			s[merged] += s[other] + int64(e.Weight)
		}
	}
	if currentMSB != -1 {
		flush(currentMSB)
	}

	if lastRoot < 0 || int(dsu.Size(lastRoot)) != n {
		return nil, ErrDisconnectedMST
	}
	t.Root = c[lastRoot]

	return t, finishTree(t)
}

// ceilShiftDiv computes ceil(s / 2^shift) without floating point.
func ceilShiftDiv(s int64, shift uint) int64 {
	if s <= 0 {
		return 0
	}
	denom := int64(1) << shift

	return (s + denom - 1) >> shift
}

// finishTree runs the left-to-right DFS that assigns leaf positions,
// LastU, and the initial unvisited counts every node needs before a
// query can run.
func finishTree(t *Tree) error {
	t.DFSOrder = make([]int32, 0, t.N)
	var walk func(idx int32) (count int, lastU int32)
	walk = func(idx int32) (int, int32) {
		n := &t.Nodes[idx]
		if n.IsLeaf {
			pos := int32(len(t.DFSOrder))
			t.DFSOrder = append(t.DFSOrder, n.Vertex)
			n.LastU = pos
			n.NumUnvisitedInitial = 1
			n.NumUnvisited = 1

			return 1, pos
		}
		total := 0
		var last int32
		for _, ch := range n.Children {
			cnt, lu := walk(ch)
			total += cnt
			last = lu
		}
		n.LastU = last
		n.NumUnvisitedInitial = total
		n.NumUnvisited = total

		return total, last
	}
	walk(t.Root)
	if len(t.DFSOrder) != t.N {
		return ErrDisconnectedMST
	}

	return nil
}
