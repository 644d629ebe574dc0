package subgraph

import (
	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/lazygraph"
)

// OptimalSubgraph accumulates the edges package idp's iterate loop has
// proven optimal across the coordinates processed so far, alongside the
// per-coordinate scratch edge sets (temp*) and boundary weights (*Weights)
// each coordinate's propagation pass builds before folding into it.
//
// Not safe for concurrent use.
type OptimalSubgraph struct {
	source    Source
	isInitial bool

	optimalEdges     []lazygraph.Edge
	optimalNextEdges map[int][]lazygraph.Edge
	optimalPrevEdges map[int][]lazygraph.Edge

	tempNextEdges map[int][]lazygraph.Edge
	tempPrevEdges map[int][]lazygraph.Edge

	nextWeights map[int]costvec.Handle
	prevWeights map[int]costvec.Handle
}

// New constructs an OptimalSubgraph over source, starting in its initial
// state: every query of "optimal" edges delegates straight to source,
// since no coordinate has restricted the edge set yet.
func New(source Source) *OptimalSubgraph {
	return &OptimalSubgraph{
		source:           source,
		isInitial:        true,
		optimalNextEdges: make(map[int][]lazygraph.Edge),
		optimalPrevEdges: make(map[int][]lazygraph.Edge),
		tempNextEdges:    make(map[int][]lazygraph.Edge),
		tempPrevEdges:    make(map[int][]lazygraph.Edge),
		nextWeights:      make(map[int]costvec.Handle),
		prevWeights:      make(map[int]costvec.Handle),
	}
}

// IsInitial reports whether no coordinate has restricted the edge set yet.
func (s *OptimalSubgraph) IsInitial() bool { return s.isInitial }

// NotInitial permanently switches the subgraph from delegating to source
// to serving its own accumulated optimalNextEdges/optimalPrevEdges. Package
// idp calls it after every coordinate's optimal edges have been folded in;
// only the first call changes anything.
func (s *OptimalSubgraph) NotInitial() { s.isInitial = false }

// OptimalEdges returns every edge folded in via AddOptimalEdge so far.
func (s *OptimalSubgraph) OptimalEdges() []lazygraph.Edge { return s.optimalEdges }

// HasOptimalGraph reports whether any edge has been folded in yet.
func (s *OptimalSubgraph) HasOptimalGraph() bool { return len(s.optimalNextEdges) > 0 }

// GetNextEdges returns idx's candidate outgoing edges for coordinate: the
// whole underlying graph while IsInitial, or the previously-accumulated
// optimal edges (with coordinate freshly computed on them) afterward.
func (s *OptimalSubgraph) GetNextEdges(idx, coordinate int) ([]lazygraph.Edge, error) {
	if s.isInitial {
		return s.source.GetNextEdges(idx, coordinate)
	}
	if err := s.source.ComputeEdgesAt(idx, coordinate); err != nil {
		return nil, err
	}
	return s.optimalNextEdges[idx], nil
}

// GetPrevEdges returns idx's candidate incoming edges for coordinate. When
// not initial, this assumes the forward pass already computed coordinate
// for every relevant edge (package idp's iterate ordering guarantees it).
func (s *OptimalSubgraph) GetPrevEdges(idx, coordinate int) ([]lazygraph.Edge, error) {
	if s.isInitial {
		return s.source.GetPrevEdges(idx, coordinate)
	}
	return s.optimalPrevEdges[idx], nil
}

// AddTempNextEdge records e as a forward-pass scratch edge of its From
// vertex, ahead of the BFS-recovery pass deciding which temp edges become
// optimal.
func (s *OptimalSubgraph) AddTempNextEdge(e lazygraph.Edge) {
	s.tempNextEdges[e.From] = append(s.tempNextEdges[e.From], e)
}

// AddTempPrevEdge records e as a backward-pass scratch edge of its To
// vertex.
func (s *OptimalSubgraph) AddTempPrevEdge(e lazygraph.Edge) {
	s.tempPrevEdges[e.To] = append(s.tempPrevEdges[e.To], e)
}

// TempNextEdges returns the forward-pass scratch edges accumulated so far,
// keyed by From vertex index.
func (s *OptimalSubgraph) TempNextEdges() map[int][]lazygraph.Edge { return s.tempNextEdges }

// TempPrevEdges returns the backward-pass scratch edges accumulated so
// far, keyed by To vertex index.
func (s *OptimalSubgraph) TempPrevEdges() map[int][]lazygraph.Edge { return s.tempPrevEdges }

// AddOptimalEdge folds e into the accumulated optimal subgraph, indexed by
// both endpoints.
func (s *OptimalSubgraph) AddOptimalEdge(e lazygraph.Edge) {
	s.optimalNextEdges[e.From] = append(s.optimalNextEdges[e.From], e)
	s.optimalPrevEdges[e.To] = append(s.optimalPrevEdges[e.To], e)
	s.optimalEdges = append(s.optimalEdges, e)
}

// SetNextWeight records idx's best-known forward boundary cost for the
// coordinate currently being processed.
func (s *OptimalSubgraph) SetNextWeight(idx int, cost costvec.Handle) {
	s.nextWeights[idx] = cost
}

// SetPrevWeight records idx's best-known backward boundary cost.
func (s *OptimalSubgraph) SetPrevWeight(idx int, cost costvec.Handle) {
	s.prevWeights[idx] = cost
}

// IsNextWeightInf reports whether idx has no forward boundary cost set
// (equivalent to the original's "weight is infinite").
func (s *OptimalSubgraph) IsNextWeightInf(idx int) bool {
	_, ok := s.nextWeights[idx]
	return !ok
}

// IsPrevWeightInf reports whether idx has no backward boundary cost set.
func (s *OptimalSubgraph) IsPrevWeightInf(idx int) bool {
	_, ok := s.prevWeights[idx]
	return !ok
}

// GetNextWeight returns idx's forward boundary cost, or ErrNotFound if
// IsNextWeightInf(idx).
func (s *OptimalSubgraph) GetNextWeight(idx int) (costvec.Handle, error) {
	h, ok := s.nextWeights[idx]
	if !ok {
		return costvec.Handle{}, ErrNotFound
	}
	return h, nil
}

// GetPrevWeight returns idx's backward boundary cost, or ErrNotFound if
// IsPrevWeightInf(idx).
func (s *OptimalSubgraph) GetPrevWeight(idx int) (costvec.Handle, error) {
	h, ok := s.prevWeights[idx]
	if !ok {
		return costvec.Handle{}, ErrNotFound
	}
	return h, nil
}

// NextWeights returns the forward boundary costs accumulated so far,
// keyed by vertex index, for a caller that needs to release their arena
// handles before ClearWeights discards the map.
func (s *OptimalSubgraph) NextWeights() map[int]costvec.Handle { return s.nextWeights }

// PrevWeights returns the backward boundary costs accumulated so far.
func (s *OptimalSubgraph) PrevWeights() map[int]costvec.Handle { return s.prevWeights }

// ClearOptimalEdges discards the accumulated optimal edge set, without
// touching temp edges or weights.
func (s *OptimalSubgraph) ClearOptimalEdges() {
	s.optimalNextEdges = make(map[int][]lazygraph.Edge)
	s.optimalPrevEdges = make(map[int][]lazygraph.Edge)
	s.optimalEdges = nil
}

// ClearPropagationEdges discards the forward/backward scratch edge sets,
// between one coordinate's processing and the next.
func (s *OptimalSubgraph) ClearPropagationEdges() {
	s.tempNextEdges = make(map[int][]lazygraph.Edge)
	s.tempPrevEdges = make(map[int][]lazygraph.Edge)
}

// ClearWeights discards the forward/backward boundary costs, between one
// coordinate's processing and the next.
func (s *OptimalSubgraph) ClearWeights() {
	s.nextWeights = make(map[int]costvec.Handle)
	s.prevWeights = make(map[int]costvec.Handle)
}
