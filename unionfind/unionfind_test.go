package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/thorsp/unionfind"
)

func TestNew_AllSingletons(t *testing.T) {
	d := unionfind.New(5)
	for i := int32(0); i < 5; i++ {
		if d.Find(i) != i {
			t.Fatalf("vertex %d expected to be its own root", i)
		}
		if d.Size(i) != 1 {
			t.Fatalf("vertex %d expected size 1, got %d", i, d.Size(i))
		}
	}
}

func TestUnion_MergesAndReportsChange(t *testing.T) {
	d := unionfind.New(4)
	if !d.Union(0, 1) {
		t.Fatalf("expected first union of 0,1 to report a change")
	}
	if d.Union(0, 1) {
		t.Fatalf("expected second union of 0,1 to report no change")
	}
	if !d.Connected(0, 1) {
		t.Fatalf("expected 0 and 1 to be connected")
	}
	if d.Connected(0, 2) {
		t.Fatalf("expected 0 and 2 to be disconnected")
	}
}

func TestUnion_BiggerSetAbsorbsSmaller(t *testing.T) {
	d := unionfind.New(6)
	d.Union(0, 1)
	d.Union(1, 2) // {0,1,2} size 3
	d.Union(3, 4) // {3,4} size 2
	d.Union(0, 3) // {3,4} joins {0,1,2}: the size-3 set's root (0) must stay root

	root := d.Find(0)
	if root != 0 {
		t.Fatalf("expected the larger set's root 0 to absorb the smaller set, got root %d", root)
	}
	if d.Find(1) != root || d.Find(2) != root || d.Find(3) != root || d.Find(4) != root {
		t.Fatalf("expected all five vertices to share one root after unions")
	}
	if d.Size(0) != 5 {
		t.Fatalf("expected merged size 5, got %d", d.Size(0))
	}
}

func TestFind_PathCompression(t *testing.T) {
	d := unionfind.New(4)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)

	root := d.Find(3)
	// Every vertex on the chain resolves to the same root; parent pointers
	// are not visible from this package, so compression is not observed.
	for i := int32(0); i < 4; i++ {
		if d.Find(i) != root {
			t.Fatalf("vertex %d expected root %d, got %d", i, root, d.Find(i))
		}
	}
}
