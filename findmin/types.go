// Package findmin implements Gabow's split-findmin structure: a universe
// of costed elements, recursively partitioned into superelements and
// sublists so that find-min, decrease-cost, and split all run fast enough
// to drive a linear-time shortest-path sweep.
//
// The structure is built once from a fixed set of elements (Add, then
// Initialize) and afterwards supports two mutations: DecreaseCost, which
// only ever lowers an element's cost and re-establishes the list-cost
// invariant on the path to the root, and Split, which partitions whatever
// list currently holds an element into a left remainder (kept in place)
// and a freshly returned right list.
package findmin

import (
	"errors"
	"math"
)

// Inf represents "no cost recorded" — the cost of an empty list, or of a
// list whose members all still have cost Inf.
const Inf int64 = math.MaxInt64

var (
	// ErrAlreadyInitialized is returned by Add once Initialize has run, and
	// by Initialize itself on a second call.
	ErrAlreadyInitialized = errors.New("findmin: structure already initialized")
	// ErrNegativeCost is returned when Add or DecreaseCost is given a cost
	// below zero; the structure's cost domain is non-negative by
	// construction, matching the non-negative edge weights it indexes.
	ErrNegativeCost = errors.New("findmin: cost must be non-negative")
	// ErrCostNotFinite is returned when DecreaseCost is asked to set a cost
	// of Inf — decreasing to "no cost" is a contradiction in terms.
	ErrCostNotFinite = errors.New("findmin: cost must be finite")
	// ErrOutOfRange is returned by At for an index outside [0, n).
	ErrOutOfRange = errors.New("findmin: element index out of range")
)

// elementRec is one arena slot. Indices 0..N-1 (N = the number of Add
// calls) are the caller-visible leaf elements, in insertion order. Indices
// N.. are internal proxy elements created during Initialize/Split to let a
// superelement participate in its parent's sublist as an ordinary member.
type elementRec struct {
	item interface{}
	cost int64

	isProxy    bool
	proxySuper int32 // valid iff isProxy

	ownerSuper int32 // index into s.supers, or -1 if this element is a direct list member
	ownerList  int32 // index into s.lists, or -1 if ownerSuper is set instead

	rootList  int32 // which top-level (post-split) list currently owns this element
	posInRoot int32 // this element's position within that root's flat sequence
}

// superRec groups a contiguous run of same-level members so their combined
// cost can be tracked and updated in one place.
type superRec struct {
	members   []int32 // element indices, in order
	cost      int64
	ownerList int32 // the list this superelement belongs to
	proxyElem int32 // the elementRec index that represents this superelement one level down, or -1 if it is a lone ("singleton") superelement attached directly to ownerList
}

// listRec is one level of the recursive partition. A root list (the
// original structure or a piece Split peeled off) holds its elements in
// flatSeq; a sublist holds the proxy elements of its parent's
// superelements there.
type listRec struct {
	level      int
	parentList int32 // -1 for a root list

	flatSeq []int32 // member element indices, in order

	singletonElements      []int32 // element indices not absorbed into any superelement
	singletonSuperelements []int32 // superelement indices not grouped into a sublist
	sublists               []int32 // child list indices, each level-1 lower

	cost int64
}

// Element is a stable handle to one item added to a Structure.
type Element struct {
	s   *Structure
	idx int32
}

// Cost reports the element's current cost.
func (e Element) Cost() int64 { return e.s.elements[e.idx].cost }

// Item reports the value originally passed to Add.
func (e Element) Item() interface{} { return e.s.elements[e.idx].item }

// ListCost reports the cost of whichever list currently contains the
// element, without mutating anything — the read-only counterpart to the
// handle DecreaseCost returns.
func (e Element) ListCost() int64 {
	return e.s.lists[e.s.elements[e.idx].rootList].cost
}

// ListHandle names one of the structure's current top-level lists — the
// original universe, or a fragment produced by a prior Split.
type ListHandle struct {
	s   *Structure
	idx int32
}

// Cost reports the minimum cost among the list's live members.
func (l *ListHandle) Cost() int64 { return l.s.lists[l.idx].cost }
