package subgraph

import (
	"errors"

	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/lazygraph"
)

// ErrNotFound indicates GetNextWeight or GetPrevWeight was called for a
// vertex index with no weight set; callers should check
// IsNextWeightInf/IsPrevWeightInf first.
var ErrNotFound = errors.New("subgraph: no weight set for vertex")

// Source is the minimal view of a lazygraph.Graph that OptimalSubgraph
// delegates to: only the three methods it actually calls.
// Accepting an interface rather than *lazygraph.Graph keeps subgraph
// independently testable with a fake.
type Source interface {
	GetNextEdges(idx, coordinate int) ([]lazygraph.Edge, error)
	GetPrevEdges(idx, coordinate int) ([]lazygraph.Edge, error)
	ComputeEdgesAt(idx, coordinate int) error
}
