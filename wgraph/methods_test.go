package wgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/thorsp/wgraph"
)

func TestNew_RejectsNonPositiveN(t *testing.T) {
	if _, err := wgraph.New(0); !errors.Is(err, wgraph.ErrEmptyGraph) {
		t.Fatalf("expected ErrEmptyGraph, got %v", err)
	}
}

func TestAddUndirectedEdge_MirrorsBothDirections(t *testing.T) {
	g, err := wgraph.New(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddUndirectedEdge(0, 1, 5); err != nil {
		t.Fatal(err)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Fatalf("expected both directions present after AddUndirectedEdge")
	}
	if g.M() != 2 {
		t.Fatalf("expected M()==2, got %d", g.M())
	}
}

func TestAddUndirectedEdge_RejectsSelfLoop(t *testing.T) {
	g, _ := wgraph.New(2)
	if err := g.AddUndirectedEdge(0, 0, 1); !errors.Is(err, wgraph.ErrSelfLoop) {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestAddUndirectedEdge_RejectsParallel(t *testing.T) {
	g, _ := wgraph.New(2)
	if err := g.AddUndirectedEdge(0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddUndirectedEdge(0, 1, 2); !errors.Is(err, wgraph.ErrParallelEdge) {
		t.Fatalf("expected ErrParallelEdge, got %v", err)
	}
}

func TestAddUndirectedEdge_RejectsNonPositiveWeight(t *testing.T) {
	g, _ := wgraph.New(2)
	if err := g.AddUndirectedEdge(0, 1, 0); !errors.Is(err, wgraph.ErrNonPositiveWeight) {
		t.Fatalf("expected ErrNonPositiveWeight, got %v", err)
	}
}

func TestAddUndirectedEdge_RejectsOutOfRange(t *testing.T) {
	g, _ := wgraph.New(2)
	if err := g.AddUndirectedEdge(0, 5, 1); !errors.Is(err, wgraph.ErrVertexRange) {
		t.Fatalf("expected ErrVertexRange, got %v", err)
	}
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g, _ := wgraph.New(4)
	_ = g.AddUndirectedEdge(0, 3, 1)
	_ = g.AddUndirectedEdge(0, 1, 2)
	_ = g.AddUndirectedEdge(0, 2, 3)

	nbrs := g.Neighbors(0)
	if len(nbrs) != 3 {
		t.Fatalf("expected 3 neighbors, got %d", len(nbrs))
	}
	want := []int32{3, 1, 2}
	for i, a := range nbrs {
		if a.To != want[i] {
			t.Fatalf("neighbor %d: expected To=%d, got %d (order must match insertion)", i, want[i], a.To)
		}
	}
}

func TestAddDirectedArc_DoesNotMirror(t *testing.T) {
	g, _ := wgraph.New(2)
	if err := g.AddDirectedArc(0, 1, 7); err != nil {
		t.Fatal(err)
	}
	if !g.HasEdge(0, 1) {
		t.Fatalf("expected 0->1 present")
	}
	if g.HasEdge(1, 0) {
		t.Fatalf("expected 1->0 absent for a directed arc")
	}
	if g.M() != 1 {
		t.Fatalf("expected M()==1, got %d", g.M())
	}
}

func TestEdges_MaterializesAllArcs(t *testing.T) {
	g, _ := wgraph.New(3)
	_ = g.AddUndirectedEdge(0, 1, 4)
	_ = g.AddUndirectedEdge(1, 2, 9)

	edges := g.Edges()
	if len(edges) != 4 {
		t.Fatalf("expected 4 directed arcs, got %d", len(edges))
	}
}
