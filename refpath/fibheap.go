package refpath

// FibHeap is a classical Fibonacci heap keyed by int64, supporting
// amortized O(1) Insert/DecreaseKey and amortized O(log n) ExtractMin.
// It exists for msbmst.FredmanTarjan (a Fibonacci-heap-driven msb-MST
// grow-from-root, named for the Fredman–Tarjan running-time bound their
// heap made possible) and for Dijkstra's Fibonacci-heap reference
// variant in this package, so both can share one decrease-key-capable
// priority queue instead of the binary-heap "lazy decrease-key" trick
// the teacher's dijkstra package uses.
//
// Handles: Insert returns a *FibNode the caller keeps to call
// DecreaseKey later. Nodes removed by ExtractMin must not be reused.
type FibHeap struct {
	min   *FibNode
	roots int // number of trees in the root list
	n     int
}

// FibNode is an opaque handle into a FibHeap.
type FibNode struct {
	key         int64
	payload     interface{}
	parent      *FibNode
	child       *FibNode
	left, right *FibNode // circular doubly-linked sibling list
	degree      int
	mark        bool
}

// Payload returns the value associated with this node at insertion time.
func (f *FibNode) Payload() interface{} { return f.payload }

// Key returns the node's current key.
func (f *FibNode) Key() int64 { return f.key }

// NewFibHeap returns an empty Fibonacci heap.
func NewFibHeap() *FibHeap { return &FibHeap{} }

// Len returns the number of nodes currently in the heap.
func (h *FibHeap) Len() int { return h.n }

// Insert adds a new node with the given key and payload, returning its
// handle. Complexity: O(1) amortized.
func (h *FibHeap) Insert(key int64, payload interface{}) *FibNode {
	node := &FibNode{key: key, payload: payload}
	node.left, node.right = node, node

	h.spliceIntoRootList(node)
	h.n++
	if h.min == nil || node.key < h.min.key {
		h.min = node
	}

	return node
}

// Min returns the current minimum-key node, or nil if the heap is empty.
func (h *FibHeap) Min() *FibNode { return h.min }

// spliceIntoRootList inserts node as a standalone singleton into the
// root list (to the left of h.min, arbitrary position otherwise).
func (h *FibHeap) spliceIntoRootList(node *FibNode) {
	if h.min == nil {
		h.min = node
		node.left, node.right = node, node
		h.roots = 1

		return
	}
	node.left = h.min.left
	node.right = h.min
	h.min.left.right = node
	h.min.left = node
	h.roots++
}

// removeFromSiblingList unlinks node from whatever circular list it is
// currently part of (root list or a child list), returning node with
// left/right now pointing to itself.
func removeFromSiblingList(node *FibNode) {
	node.left.right = node.right
	node.right.left = node.left
	node.left, node.right = node, node
}

// ExtractMin removes and returns the minimum node. Complexity:
// amortized O(log n).
func (h *FibHeap) ExtractMin() *FibNode {
	z := h.min
	if z == nil {
		return nil
	}

	// Promote every child of z to the root list.
	if z.child != nil {
		var kids []*FibNode
		for c := z.child; ; {
			kids = append(kids, c)
			c = c.right
			if c == z.child {
				break
			}
		}
		for _, c := range kids {
			removeFromSiblingList(c)
			c.parent = nil
			h.spliceIntoRootList(c)
		}
		z.child = nil
	}

	next := z.right
	removeFromSiblingList(z)
	h.roots--
	if next == z {
		h.min = nil
		h.roots = 0
	} else {
		h.min = next
		h.consolidate()
	}
	h.n--

	return z
}

// consolidate merges root-list trees of equal degree until every root
// has a distinct degree, then rescans to find the new minimum.
func (h *FibHeap) consolidate() {
	maxDegree := 2*h.n + 1 // generous bound, avoids a log-based allocation
	degreeTable := make([]*FibNode, maxDegree)

	roots := make([]*FibNode, 0, h.roots)
	cur := h.min
	for i := 0; i < h.roots; i++ {
		roots = append(roots, cur)
		cur = cur.right
	}

	for _, w := range roots {
		x := w
		d := x.degree
		for degreeTable[d] != nil {
			y := degreeTable[d]
			if x.key > y.key {
				x, y = y, x
			}
			h.link(y, x)
			degreeTable[d] = nil
			d++
		}
		degreeTable[d] = x
	}

	h.min = nil
	h.roots = 0
	for _, node := range degreeTable {
		if node == nil {
			continue
		}
		node.left, node.right = node, node
		h.spliceIntoRootList(node)
		if h.min == nil || node.key < h.min.key {
			h.min = node
		}
	}
}

// link makes y a child of x (y.key >= x.key), clearing y's mark.
func (h *FibHeap) link(y, x *FibNode) {
	removeFromSiblingList(y)
	h.roots--
	y.parent = x
	y.mark = false
	if x.child == nil {
		x.child = y
		y.left, y.right = y, y
	} else {
		y.left = x.child.left
		y.right = x.child
		x.child.left.right = y
		x.child.left = y
	}
	x.degree++
}

// DecreaseKey lowers node's key to newKey (must be <= current key) and
// restores heap order via cascading cuts. Complexity: O(1) amortized.
func (h *FibHeap) DecreaseKey(node *FibNode, newKey int64) {
	if newKey > node.key {
		return // not a decrease; no-op per the spec's decrease-cost semantics
	}
	node.key = newKey
	parent := node.parent
	if parent != nil && node.key < parent.key {
		h.cut(node, parent)
		h.cascadingCut(parent)
	}
	if node.key < h.min.key {
		h.min = node
	}
}

// cut detaches child from parent and adds it to the root list.
func (h *FibHeap) cut(child, parent *FibNode) {
	if child.right == child {
		parent.child = nil
	} else {
		if parent.child == child {
			parent.child = child.right
		}
		removeFromSiblingList(child)
	}
	parent.degree--

	child.parent = nil
	child.mark = false
	child.left, child.right = child, child
	h.spliceIntoRootList(child)
}

// cascadingCut implements the Fibonacci-heap marking discipline: a node
// that has already lost one child gets cut too when it loses another.
func (h *FibHeap) cascadingCut(node *FibNode) {
	parent := node.parent
	if parent == nil {
		return
	}
	if !node.mark {
		node.mark = true

		return
	}
	h.cut(node, parent)
	h.cascadingCut(parent)
}
