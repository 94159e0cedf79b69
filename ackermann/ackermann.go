// Package ackermann precomputes a bounded Ackermann-style table A(i,j)
// and derives the inverse function α(m,n) consulted by findmin when it
// picks sublist recursion levels and superelement sizes.
//
// The table is defined by:
//
//	A(1,1) = 2
//	A(1,j) = 2 * A(1,j-1)          for j >= 2
//	A(i,j) = A(i-1, A(i,j-1))      for i >= 2, j >= 1, using the
//	         convention A(i,0) = 2 for every i (not stored, just seeded)
//
// Only entries with value <= the cap n are retained; growth beyond row
// 2 or 3 exceeds any realistic n almost immediately, so the table stays
// tiny in practice.
package ackermann

// Table holds the bounded A(i,j) entries for one cap n.
type Table struct {
	n    int64
	rows map[int]map[int]int64
	maxI int
}

// Build precomputes every A(i,j) <= n, row by row.
//
// Complexity: O(rows * cols); row 1 holds about log2 n entries and every
// later row holds far fewer.
func Build(n int64) *Table {
	t := &Table{n: n, rows: make(map[int]map[int]int64)}
	if n < 2 {
		return t
	}

	// Row 1: A(1,1)=2, A(1,j)=2*A(1,j-1).
	row1 := make(map[int]int64)
	v := int64(2)
	for j := 1; v <= n; j++ {
		row1[j] = v
		v *= 2
	}
	if len(row1) == 0 {
		return t
	}
	t.rows[1] = row1
	t.maxI = 1

	// Row i (i>=2): A(i,j) = A(i-1, A(i,j-1)), seeded with A(i,0)=2.
	for i := 2; ; i++ {
		prev := t.rows[i-1]
		row := make(map[int]int64)
		seed := int64(2) // A(i,0) convention
		for j := 1; ; j++ {
			inner, ok := prev[int(seed)]
			if !ok {
				break
			}
			if inner > n {
				break
			}
			row[j] = inner
			seed = inner
		}
		if len(row) == 0 {
			break
		}
		t.rows[i] = row
		t.maxI = i
	}

	return t
}

// MaxLevel returns the deepest row Build actually populated for this
// table's cap — the number of Ackermann levels it takes for doubling to
// saturate below the cap. findmin uses this as the starting recursion
// level for its head list, since Inverse itself expects a row index as
// its first argument rather than a raw element count.
func (t *Table) MaxLevel() int {
	if t.maxI < 1 {
		return 1
	}

	return t.maxI
}

// Value returns the cached A(i,j), or -1 if no such entry was retained.
// By convention Value(i,0) == 2 for every i >= 1 regardless of the cap.
func (t *Table) Value(i, j int) int64 {
	if j == 0 {
		return 2
	}
	row, ok := t.rows[i]
	if !ok {
		return -1
	}
	v, ok := row[j]
	if !ok {
		return -1
	}

	return v
}

// Inverse implements α(m,n):
//
//	if n >= 4: the greatest j such that 2*A(m,j) <= n (0 if none)
//	else if m >= n: the least i with A(i, floor(m/n)) cached (-1 if none)
//	else: -1
func (t *Table) Inverse(m, n int64) int64 {
	if n >= 4 {
		best := int64(0)
		for j := 1; ; j++ {
			v := t.Value(int(m), j)
			if v < 0 || 2*v > n {
				break
			}
			best = int64(j)
		}

		return best
	}

	if m >= n {
		k := int(m / n)
		for i := 1; i <= t.maxI+1; i++ {
			if t.Value(i, k) >= 0 {
				return int64(i)
			}
		}

		return -1
	}

	return -1
}
