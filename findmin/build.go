package findmin

import "github.com/katalvlaran/thorsp/ackermann"

// Structure is Gabow's split-findmin universe: a fixed set of elements,
// partitioned on Initialize into a recursive hierarchy of superelements
// and sublists sized by the inverse-Ackermann function so that the
// resulting find-min/decrease-cost/split triple runs in the time the
// linear-time shortest-path sweep depends on.
type Structure struct {
	table *ackermann.Table

	elements []elementRec
	supers   []superRec
	lists    []listRec

	n           int // number of genuine (non-proxy) elements
	initialized bool
}

// New allocates an empty structure. ackermannCap bounds the inverse-
// Ackermann table, which New builds immediately; callers pass the element
// count they intend to Add (e.g. the graph's vertex count n).
func New(ackermannCap int64) *Structure {
	s := &Structure{table: ackermann.Build(ackermannCap)}
	s.lists = []listRec{{level: 0, parentList: -1}}
	return s
}

// Add registers one item with its initial cost. Add may only be called
// before Initialize.
func (s *Structure) Add(item interface{}, cost int64) (Element, error) {
	if s.initialized {
		return Element{}, ErrAlreadyInitialized
	}
	if cost < 0 {
		return Element{}, ErrNegativeCost
	}
	idx := int32(len(s.elements))
	s.elements = append(s.elements, elementRec{
		item:       item,
		cost:       cost,
		ownerSuper: -1,
		ownerList:  0,
		rootList:   0,
		posInRoot:  idx,
	})
	s.n++

	return Element{s: s, idx: idx}, nil
}

// At returns the handle for the i-th element added, in insertion order.
func (s *Structure) At(i int) (Element, error) {
	if i < 0 || i >= s.n {
		return Element{}, ErrOutOfRange
	}

	return Element{s: s, idx: int32(i)}, nil
}

// Initialize partitions the added elements into the recursive
// superelement/sublist hierarchy described in the package doc. It may be
// called exactly once, after every Add.
func (s *Structure) Initialize() error {
	if s.initialized {
		return ErrAlreadyInitialized
	}

	root := &s.lists[0]
	if s.n > 0 {
		root.level = s.table.MaxLevel()
	}
	root.flatSeq = make([]int32, s.n)
	for i := range root.flatSeq {
		root.flatSeq[i] = int32(i)
	}

	s.initializeList(0)
	s.initialized = true

	return nil
}

// initializeList greedily partitions list listIdx's flat sequence into
// superelements sized 2*A(i, alpha(i, r)) for the remaining length r, at
// most three trailing elements short of consuming the whole list; the
// rest stay singleton. Two or more superelements are grouped into one
// child sublist (recursively initialized); exactly one becomes a
// "singleton superelement" attached directly to this list instead, since
// a lone superelement has no siblings worth a sublist of its own.
//
// initializeList is used both by Initialize (for the whole universe) and
// by Split (to rebuild each half from its freshly cut flat sequence) — the
// two scans the package's design notes call initialize-head and
// initialize-tail collapse into this one routine, since both are run here
// against an already-fully-known sequence rather than grown incrementally.
func (s *Structure) initializeList(listIdx int32) {
	seq := s.lists[listIdx].flatSeq
	level := s.lists[listIdx].level

	var supers []int32
	pos := 0
	if level >= 1 {
		for {
			r := len(seq) - pos
			if r <= 3 {
				break
			}
			a := s.table.Inverse(int64(level), int64(r))
			if a < 0 {
				break
			}
			size := 2 * s.table.Value(level, int(a))
			if size <= 0 || int(size) > r {
				break
			}

			block := append([]int32(nil), seq[pos:pos+int(size)]...)
			cost := Inf
			for _, m := range block {
				if v := s.elements[m].cost; v < cost {
					cost = v
				}
			}
			supIdx := int32(len(s.supers))
			s.supers = append(s.supers, superRec{members: block, cost: cost, ownerList: listIdx, proxyElem: -1})
			for _, m := range block {
				s.elements[m].ownerSuper = supIdx
				s.elements[m].ownerList = -1
			}
			supers = append(supers, supIdx)
			pos += int(size)
		}
	}

	singles := append([]int32(nil), seq[pos:]...)
	for _, m := range singles {
		s.elements[m].ownerSuper = -1
		s.elements[m].ownerList = listIdx
	}
	s.lists[listIdx].singletonElements = singles
	s.lists[listIdx].singletonSuperelements = nil
	s.lists[listIdx].sublists = nil

	switch len(supers) {
	case 0:
		// Nothing formed; the list is singleton elements only.
	case 1:
		s.supers[supers[0]].proxyElem = -1
		s.lists[listIdx].singletonSuperelements = supers
	default:
		subIdx := int32(len(s.lists))
		subSeq := make([]int32, len(supers))
		for k, supIdx := range supers {
			proxyIdx := int32(len(s.elements))
			s.elements = append(s.elements, elementRec{
				cost:       s.supers[supIdx].cost,
				isProxy:    true,
				proxySuper: supIdx,
				ownerSuper: -1,
				ownerList:  subIdx,
			})
			s.supers[supIdx].proxyElem = proxyIdx
			subSeq[k] = proxyIdx
		}
		s.lists = append(s.lists, listRec{level: level - 1, parentList: listIdx, flatSeq: subSeq})
		s.lists[listIdx].sublists = []int32{subIdx}
		s.initializeList(subIdx)
	}

	s.recomputeCost(listIdx)
}

// recomputeCost recomputes listIdx's cost as the minimum over its three
// side-collections, per the list-cost invariant.
func (s *Structure) recomputeCost(listIdx int32) int64 {
	cost := Inf
	for _, m := range s.lists[listIdx].singletonElements {
		if v := s.elements[m].cost; v < cost {
			cost = v
		}
	}
	for _, sp := range s.lists[listIdx].singletonSuperelements {
		if v := s.supers[sp].cost; v < cost {
			cost = v
		}
	}
	for _, sb := range s.lists[listIdx].sublists {
		if v := s.lists[sb].cost; v < cost {
			cost = v
		}
	}
	s.lists[listIdx].cost = cost

	return cost
}
