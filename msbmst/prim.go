package msbmst

import (
	"container/heap"

	"github.com/katalvlaran/thorsp/wgraph"
)

// Prim builds an msb-MST by growing a spanning subgraph from a fixed
// root vertex using a binary min-heap ordered by msb(weight), the same
// grow-from-root shape as prim_kruskal.Prim generalized from "compare by
// Weight" to "compare by msb(Weight)".
type Prim struct {
	// Root selects the starting vertex. Zero value (0) is a valid root;
	// a root outside [0,n) is rejected with ErrEmptyRoot.
	Root int32
}

// BuildMsbMST implements MSTAlgorithm.
func (p Prim) BuildMsbMST(g *wgraph.Graph) (*wgraph.Graph, error) {
	if g == nil || g.N() < 1 {
		return nil, ErrInvalidGraph
	}
	n := g.N()
	if p.Root < 0 || int(p.Root) >= n {
		return nil, ErrEmptyRoot
	}

	out, err := wgraph.New(n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return out, nil
	}

	visited := make([]bool, n)
	visited[p.Root] = true
	pq := &msbArcPQ{}
	heap.Init(pq)
	for _, a := range g.Neighbors(p.Root) {
		if !visited[a.To] {
			heap.Push(pq, msbArc{from: p.Root, to: a.To, weight: a.Weight})
		}
	}

	accepted := 0
	for pq.Len() > 0 && accepted < n-1 {
		item := heap.Pop(pq).(msbArc)
		if visited[item.to] {
			continue
		}
		visited[item.to] = true
		_ = out.AddUndirectedEdge(item.from, item.to, item.weight)
		accepted++

		for _, a := range g.Neighbors(item.to) {
			if !visited[a.To] {
				heap.Push(pq, msbArc{from: item.to, to: a.To, weight: a.Weight})
			}
		}
	}

	// Disconnected from Root: return whatever subgraph was built.
	return out, nil
}

// msbArc is one candidate tree edge in Prim's frontier, ordered for the
// heap by msb(weight) rather than raw weight.
type msbArc struct {
	from, to int32
	weight   int32
}

// msbArcPQ is a min-heap of msbArc ordered by msb(weight).
type msbArcPQ []msbArc

func (pq msbArcPQ) Len() int { return len(pq) }
func (pq msbArcPQ) Less(i, j int) bool {
	return MSB(pq[i].weight) < MSB(pq[j].weight)
}
func (pq msbArcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *msbArcPQ) Push(x interface{}) { *pq = append(*pq, x.(msbArc)) }

func (pq *msbArcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
