package msbmst

import (
	"github.com/katalvlaran/thorsp/refpath"
	"github.com/katalvlaran/thorsp/wgraph"
)

// FredmanTarjan builds an msb-MST with the same grow-from-root shape as
// Prim, but replaces the binary heap with a refpath.FibHeap that
// supports true decrease-key — the data structure Fredman and Tarjan's
// analysis is named for, yielding the amortized improvement their MST
// variant is known for.
type FredmanTarjan struct {
	Root int32
}

// BuildMsbMST implements MSTAlgorithm.
func (f FredmanTarjan) BuildMsbMST(g *wgraph.Graph) (*wgraph.Graph, error) {
	if g == nil || g.N() < 1 {
		return nil, ErrInvalidGraph
	}
	n := g.N()
	if f.Root < 0 || int(f.Root) >= n {
		return nil, ErrEmptyRoot
	}

	out, err := wgraph.New(n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return out, nil
	}

	const inf = int64(1) << 40 // comfortably above any 32-bit msb value
	key := make([]int64, n)
	from := make([]int32, n)
	weight := make([]int32, n)
	inHeap := make([]bool, n)
	inTree := make([]bool, n)
	handles := make([]*refpath.FibNode, n)
	for v := 0; v < n; v++ {
		key[v] = inf
		from[v] = -1
	}
	key[f.Root] = -1 // force root out first

	h := refpath.NewFibHeap()
	for v := 0; v < n; v++ {
		handles[v] = h.Insert(key[v], int32(v))
		inHeap[v] = true
	}

	accepted := 0
	for h.Len() > 0 && accepted < n-1 {
		min := h.ExtractMin()
		u := min.Payload().(int32)
		inHeap[u] = false
		inTree[u] = true

		if from[u] >= 0 {
			_ = out.AddUndirectedEdge(from[u], u, weight[u])
			accepted++
		}

		for _, a := range g.Neighbors(u) {
			if inTree[a.To] || !inHeap[a.To] {
				continue
			}
			k := int64(MSB(a.Weight))
			if k < key[a.To] {
				key[a.To] = k
				from[a.To] = u
				weight[a.To] = a.Weight
				h.DecreaseKey(handles[a.To], k)
			}
		}
	}

	// Disconnected from Root: return whatever subgraph was built.
	return out, nil
}
