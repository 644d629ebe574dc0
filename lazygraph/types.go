package lazygraph

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/idp/costvec"
)

// Sentinel errors returned by package lazygraph.
var (
	// ErrNilState indicates a nil DomainState was added to the graph.
	ErrNilState = errors.New("lazygraph: nil domain state")

	// ErrVertexNotFound indicates an operation referenced a vertex id the
	// graph has never seen (neither added directly nor discovered as a
	// successor of an expanded vertex).
	ErrVertexNotFound = errors.New("lazygraph: vertex not found")

	// ErrCoordinateOutOfRange indicates ComputeEdgesAt was called with a
	// coordinate index outside [0, Arena.Props().Arity()).
	ErrCoordinateOutOfRange = errors.New("lazygraph: coordinate index out of range")
)

// DomainState is the caller's description of one vertex of the state
// space: its identity, and how to enumerate its successors. Implementing
// DomainState over a problem's native states (grid cells, board positions,
// partial tours) is the only integration work required to run IDP over a
// new domain.
type DomainState interface {
	// UniqueID returns an identifier stable for the lifetime of the graph.
	// Two states with the same UniqueID are treated as the same vertex.
	UniqueID() string

	// Successors returns every state directly reachable from this one.
	// Called at most once per vertex per Graph (the result is cached).
	Successors() []DomainState
}

// CostComputeFunc computes coordinate i of the edge cost from the
// transition fr -> to, returning the raw value to store at that
// coordinate (the value costvec.Arena.OpIntoAt will combine into the
// edge's handle). Mirrors the original's IMulticostCompute::computeCost,
// generalized to fill one coordinate at a time rather than the whole
// vector in one call.
type CostComputeFunc func(fr, to DomainState, coordinate int) any

// Edge is one directed transition between two vertex ids, carrying an
// arena handle for its (possibly still partially-identity) cost vector.
// Edge is a value type safe to copy; Cost is the only field referencing
// shared state (the owning Graph's Arena).
type Edge struct {
	From int // compact vertex index assigned by Graph, not UniqueID()
	To   int
	Cost costvec.Handle

	// mask tracks which coordinates of Cost hold a real CostCompute result
	// versus still being the monoid identity placeholder allocated at
	// edge-creation time. Shared by pointer across an edge's appearance in
	// both the From vertex's next-edge list and the To vertex's prev-edge
	// list.
	mask *bitset.BitSet
}

// Computed reports whether coordinate i of e's cost has been filled by
// CostComputeFunc.
func (e Edge) Computed(i int) bool { return e.mask.Test(uint(i)) }
