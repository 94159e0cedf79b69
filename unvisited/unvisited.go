// Package unvisited wraps a split-findmin universe with the component
// tree's DFS leaf ordering, realizing the super-distance operations
// thorup's driver needs: per-vertex decrease/read of D, the min live
// super-distance under a node's still-unvisited descendants, walking up
// to the current unvisited root of a leaf, and peeling a visited node's
// children into independent split-findmin roots.
package unvisited

import (
	"errors"

	"github.com/katalvlaran/thorsp/comptree"
	"github.com/katalvlaran/thorsp/findmin"
)

// ErrVertexRange is returned for a vertex outside the tree's leaf range.
var ErrVertexRange = errors.New("unvisited: vertex out of range")

// Structure is a split-findmin instance of size n plus the DFS-order
// map established when the owning component tree was built.
type Structure struct {
	tree *comptree.Tree
	fm   *findmin.Structure

	vertexToElement []int32           // vertex id -> DFS position / element index
	elements        []findmin.Element // cached handles, indexed by DFS position
}

// New binds a freshly Initialized split-findmin structure (one element
// per leaf, added in tree.DFSOrder, costs starting at +infinity) to tree.
func New(tree *comptree.Tree, fm *findmin.Structure) (*Structure, error) {
	n := tree.N
	vte := make([]int32, n)
	for pos, v := range tree.DFSOrder {
		vte[v] = int32(pos)
	}

	elements := make([]findmin.Element, n)
	for pos := 0; pos < n; pos++ {
		e, err := fm.At(pos)
		if err != nil {
			return nil, err
		}
		elements[pos] = e
	}

	return &Structure{tree: tree, fm: fm, vertexToElement: vte, elements: elements}, nil
}

func (u *Structure) elementOf(v int32) (findmin.Element, error) {
	if v < 0 || int(v) >= len(u.vertexToElement) {
		return findmin.Element{}, ErrVertexRange
	}

	return u.elements[u.vertexToElement[v]], nil
}

// DecreaseD lowers vertex v's super-distance to newD, per
// Element.DecreaseCost's clamp-and-propagate contract.
func (u *Structure) DecreaseD(v int32, newD int64) (*findmin.ListHandle, error) {
	e, err := u.elementOf(v)
	if err != nil {
		return nil, err
	}

	return e.DecreaseCost(newD)
}

// D reports vertex v's current super-distance.
func (u *Structure) D(v int32) (int64, error) {
	e, err := u.elementOf(v)
	if err != nil {
		return 0, err
	}

	return e.Cost(), nil
}

// MinDMinus reports the minimum live super-distance among node's
// still-unvisited descendants, found via the list currently containing
// the element at node's rightmost leaf position. Returns -1 where the
// split-findmin structure reports +infinity (nothing left unvisited).
func (u *Structure) MinDMinus(node *comptree.Node) int64 {
	c := u.elements[node.LastU].ListCost()
	if c == findmin.Inf {
		return -1
	}

	return c
}

// UnvisitedRootOf walks up from nodeIdx through parent pointers while the
// parent is still unvisited, stopping at (and returning) the topmost
// ancestor whose own parent has already been expanded — the node at
// which nodeIdx's split-findmin fragment currently has its independent
// root, or the tree root itself if nothing above it has been visited yet.
func (u *Structure) UnvisitedRootOf(nodeIdx int32) int32 {
	cur := nodeIdx
	for {
		parent := u.tree.Nodes[cur].Parent
		if parent == -1 || u.tree.Nodes[parent].Visited {
			return cur
		}
		cur = parent
	}
}

// DeleteRoot peels every child of nodeIdx except the last into its own
// independent split-findmin root, by splitting at each peeled child's
// LastU in left-to-right order. The last child is left as whatever
// fragment remains after the final split — it needs no split of its own.
func (u *Structure) DeleteRoot(nodeIdx int32) error {
	children := u.tree.Nodes[nodeIdx].Children
	for i := 0; i < len(children)-1; i++ {
		lastU := u.tree.Nodes[children[i]].LastU
		if _, err := u.elements[lastU].Split(); err != nil {
			return err
		}
	}

	return nil
}
