package lazygraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/idp/costvec"
)

// Graph is a lazily-expanded directed graph of DomainState vertices,
// indexed by compact integer ids assigned in discovery order. Graph is not
// safe for concurrent use — package idp's Non-goals exclude concurrency,
// so callers serialize access per PathFinder instance.
type Graph struct {
	arena   *costvec.Arena
	compute CostComputeFunc

	states    []DomainState
	idIndex   map[string]int
	expanded  []bool // whether a vertex's successors have been materialized
	nextEdges [][]Edge
	prevEdges [][]Edge
}

// New constructs an empty Graph. arena provides the monoid properties edge
// costs are allocated under; compute fills one coordinate of an edge cost
// the first time that coordinate is asked for.
func New(arena *costvec.Arena, compute CostComputeFunc) *Graph {
	return &Graph{
		arena:   arena,
		compute: compute,
		idIndex: make(map[string]int),
	}
}

// Arena returns the cost arena backing this graph's edges.
func (g *Graph) Arena() *costvec.Arena { return g.arena }

// AddVertex registers s as a vertex if its UniqueID has not been seen
// before, returning its compact index either way. AddVertex is how a
// caller seeds the graph's start vertex; every other vertex is discovered
// as a successor during GetNextEdges.
func (g *Graph) AddVertex(s DomainState) (int, error) {
	if s == nil {
		return 0, ErrNilState
	}
	return g.intern(s), nil
}

func (g *Graph) intern(s DomainState) int {
	id := s.UniqueID()
	if idx, ok := g.idIndex[id]; ok {
		return idx
	}
	idx := len(g.states)
	g.states = append(g.states, s)
	g.expanded = append(g.expanded, false)
	g.nextEdges = append(g.nextEdges, nil)
	g.prevEdges = append(g.prevEdges, nil)
	g.idIndex[id] = idx
	return idx
}

// Index returns the compact vertex index for a UniqueID, if known.
func (g *Graph) Index(uniqueID string) (int, bool) {
	idx, ok := g.idIndex[uniqueID]
	return idx, ok
}

// State returns the DomainState stored at a compact vertex index.
func (g *Graph) State(idx int) DomainState { return g.states[idx] }

// NumVertices returns the number of vertices discovered so far.
func (g *Graph) NumVertices() int { return len(g.states) }

// GetNextEdges returns idx's outgoing edges, expanding its successors on
// first access. Coordinate is filled for every returned edge on this call
// (via ComputeEdgesAt); other coordinates may still be unfilled.
func (g *Graph) GetNextEdges(idx, coordinate int) ([]Edge, error) {
	if idx < 0 || idx >= len(g.states) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, idx)
	}
	if !g.expanded[idx] {
		if err := g.expand(idx); err != nil {
			return nil, err
		}
	}
	if err := g.ComputeEdgesAt(idx, coordinate); err != nil {
		return nil, err
	}
	return g.nextEdges[idx], nil
}

// GetPrevEdges returns idx's incoming edges as discovered so far. Unlike
// GetNextEdges this never triggers expansion of idx itself — prev-edges
// only exist for vertices some already-expanded vertex pointed at — and
// relies on the caller having already computed coordinate on the
// forward pass (package idp's forward Dijkstra always runs before the
// backward pass reads prev-edges, per SPEC_FULL.md's iterate ordering).
func (g *Graph) GetPrevEdges(idx, coordinate int) ([]Edge, error) {
	if idx < 0 || idx >= len(g.states) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, idx)
	}
	return g.prevEdges[idx], nil
}

// ComputeEdgesAt ensures coordinate is filled for every outgoing edge of
// idx already materialized, computing and caching it where still unset.
func (g *Graph) ComputeEdgesAt(idx, coordinate int) error {
	if coordinate < 0 || coordinate >= g.arena.Props().Arity() {
		return fmt.Errorf("%w: %d", ErrCoordinateOutOfRange, coordinate)
	}
	fr := g.states[idx]
	for i := range g.nextEdges[idx] {
		e := &g.nextEdges[idx][i]
		if e.mask.Test(uint(coordinate)) {
			continue
		}
		to := g.states[e.To]
		raw := g.compute(fr, to, coordinate)
		filler := g.arena.New(fillAt(g.arena.Props().Arity(), coordinate, raw))
		g.arena.OpIntoAt(e.Cost, filler, e.Cost, coordinate)
		g.arena.Release(filler)
		e.mask.Set(uint(coordinate))
	}
	return nil
}

// fillAt builds a k-length slice with v at position i and every other
// position left as the any zero value; OpIntoAt only ever reads position
// i of its right-hand operand, so the rest is never inspected.
func fillAt(k, i int, v any) []any {
	out := make([]any, k)
	out[i] = v
	return out
}

// expand materializes idx's successor states, allocating identity-cost
// edges for each and wiring the reverse prevEdges entries.
func (g *Graph) expand(idx int) error {
	g.expanded[idx] = true
	fr := g.states[idx]
	for _, succ := range fr.Successors() {
		toIdx := g.intern(succ)
		e := Edge{
			From: idx,
			To:   toIdx,
			Cost: g.arena.Identity(),
			mask: bitset.New(uint(g.arena.Props().Arity())),
		}
		g.nextEdges[idx] = append(g.nextEdges[idx], e)
		g.prevEdges[toIdx] = append(g.prevEdges[toIdx], e)
	}
	return nil
}

// Clear discards every discovered vertex, edge, and cached cost,
// returning the Graph to its initial empty state. Arena handles allocated
// for edge costs are released back to the arena.
func (g *Graph) Clear() {
	for _, edges := range g.nextEdges {
		for _, e := range edges {
			g.arena.Release(e.Cost)
		}
	}
	g.states = nil
	g.idIndex = make(map[string]int)
	g.expanded = nil
	g.nextEdges = nil
	g.prevEdges = nil
}
