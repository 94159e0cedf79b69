package ackermann_test

import (
	"testing"

	"github.com/katalvlaran/thorsp/ackermann"
)

func TestBuild_Row1Doubles(t *testing.T) {
	tbl := ackermann.Build(100)
	if got := tbl.Value(1, 1); got != 2 {
		t.Fatalf("A(1,1) expected 2, got %d", got)
	}
	if got := tbl.Value(1, 2); got != 4 {
		t.Fatalf("A(1,2) expected 4, got %d", got)
	}
	if got := tbl.Value(1, 3); got != 8 {
		t.Fatalf("A(1,3) expected 8, got %d", got)
	}
}

func TestValue_ZeroConventionAlwaysTwo(t *testing.T) {
	tbl := ackermann.Build(5)
	if got := tbl.Value(1, 0); got != 2 {
		t.Fatalf("A(i,0) convention expected 2, got %d", got)
	}
	if got := tbl.Value(7, 0); got != 2 {
		t.Fatalf("A(i,0) convention expected 2 for any row, got %d", got)
	}
}

func TestValue_MissingEntryIsNegativeOne(t *testing.T) {
	tbl := ackermann.Build(10)
	if got := tbl.Value(1, 100); got != -1 {
		t.Fatalf("expected -1 for an entry beyond the cap, got %d", got)
	}
}

func TestInverse_LargeNUsesGreatestJ(t *testing.T) {
	tbl := ackermann.Build(1000)
	// 2*A(1,1)=4, 2*A(1,2)=8, 2*A(1,3)=16, 2*A(1,4)=32, 2*A(1,5)=64 <= 100 < 2*A(1,6)=128
	got := tbl.Inverse(1, 100)
	if got != 5 {
		t.Fatalf("expected greatest j=5 with 2*A(1,j)<=100, got %d", got)
	}
}

func TestInverse_SmallNFallsBackToRowSearch(t *testing.T) {
	tbl := ackermann.Build(1000)
	// n < 4 and m >= n: least i with A(i, floor(m/n)) cached.
	got := tbl.Inverse(2, 2) // floor(2/2)=1 -> least i with A(i,1) cached is i=1
	if got != 1 {
		t.Fatalf("expected i=1, got %d", got)
	}
}

func TestInverse_BelowThreshold(t *testing.T) {
	tbl := ackermann.Build(1000)
	got := tbl.Inverse(1, 3) // n<4, m<n -> -1
	if got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
