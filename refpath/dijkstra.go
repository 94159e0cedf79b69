// Package refpath holds the reference shortest-path implementations
// that the spec this module implements calls out as external
// collaborators — "Dijkstra and Fibonacci-heap reference
// implementations" — kept here so thorup's tests can assert its own
// Thorup-algorithm distances agree with a straightforward baseline.
//
// Dijkstra is the binary-heap "lazy decrease-key" implementation,
// generalized from dijkstra.Dijkstra (string-keyed core.Graph) to the
// dense integer vertices of wgraph.Graph. DijkstraFib is the same
// algorithm driven by a FibHeap with true decrease-key, included
// because the spec also names a Fibonacci-heap reference variant.
package refpath

import (
	"container/heap"
	"errors"
	"math"

	"github.com/katalvlaran/thorsp/wgraph"
)

// ErrInvalidSource indicates a source vertex outside [0, g.N()).
var ErrInvalidSource = errors.New("refpath: source vertex out of range")

// Inf is the sentinel distance for unreachable vertices, matching the
// spec's "+∞ sentinel" convention widened to a 64-bit integer.
const Inf = math.MaxInt64

// Dijkstra computes shortest distances from source to every vertex of
// g using a binary min-heap with lazy decrease-key (stale entries are
// dropped on pop via a visited check), mirroring dijkstra.Dijkstra's
// core loop.
//
// Complexity: O((V+E) log V).
func Dijkstra(g *wgraph.Graph, source int32) ([]int64, error) {
	if g == nil || source < 0 || int(source) >= g.N() {
		return nil, ErrInvalidSource
	}

	n := g.N()
	dist := make([]int64, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = Inf
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, a := range g.Neighbors(u) {
			nd := dist[u] + int64(a.Weight)
			if nd < dist[a.To] {
				dist[a.To] = nd
				heap.Push(&pq, &nodeItem{id: a.To, dist: nd})
			}
		}
	}

	return dist, nil
}

// DijkstraFib computes the same result as Dijkstra but drives the main
// loop with a FibHeap, exercising a true decrease-key instead of the
// lazy-push approach.
//
// Complexity: O(E + V log V) amortized.
func DijkstraFib(g *wgraph.Graph, source int32) ([]int64, error) {
	if g == nil || source < 0 || int(source) >= g.N() {
		return nil, ErrInvalidSource
	}

	n := g.N()
	dist := make([]int64, n)
	visited := make([]bool, n)
	handles := make([]*FibNode, n)
	for v := range dist {
		dist[v] = Inf
	}
	dist[source] = 0

	h := NewFibHeap()
	for v := 0; v < n; v++ {
		handles[v] = h.Insert(dist[v], int32(v))
	}

	for h.Len() > 0 {
		min := h.ExtractMin()
		u := min.Payload().(int32)
		if visited[u] {
			continue
		}
		visited[u] = true
		if dist[u] == Inf {
			continue // unreachable from source; relaxing would overflow
		}

		for _, a := range g.Neighbors(u) {
			nd := dist[u] + int64(a.Weight)
			if nd < dist[a.To] {
				dist[a.To] = nd
				h.DecreaseKey(handles[a.To], nd)
			}
		}
	}

	return dist, nil
}

// nodeItem is a (vertex, distance) pair stored in the binary heap.
type nodeItem struct {
	id   int32
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
