package gridexample

import (
	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/lazygraph"
	"github.com/katalvlaran/idp/pathfinder"
)

// GridPathFinder finds lexicographically optimal grid paths under a
// (distance, adjacent-obstacle-count) cost, tie-broken by obstacle count.
type GridPathFinder struct {
	pf *pathfinder.PathFinder
}

// NewGridPathFinder constructs a GridPathFinder over grid. Every edge
// costs 1 unit of distance; its obstacle-count coordinate is the sum of
// both endpoints' NearbyObstacles.
func NewGridPathFinder(grid *Grid) *GridPathFinder {
	props, err := costvec.NewProps(2,
		costvec.WithCoordinate(0, 0, intCompare, intCombine),
		costvec.WithCoordinate(1, 0, intCompare, intCombine),
	)
	if err != nil {
		// Both coordinates are registered unconditionally above; this
		// can only fail from a programming error in this constructor.
		panic(err)
	}

	compute := func(fr, to lazygraph.DomainState, coordinate int) any {
		if coordinate == 0 {
			return 1
		}
		f := fr.(GridState)
		t := to.(GridState)
		return f.grid.NearbyObstacles(f.x, f.y) + t.grid.NearbyObstacles(t.x, t.y)
	}

	return &GridPathFinder{pf: pathfinder.New(props, compute)}
}

// OptimalPath returns the sequence of cells from start to end along a
// lexicographically optimal path, or pathfinder.ErrNoPath if end is
// unreachable.
func (g *GridPathFinder) OptimalPath(start, end GridState) ([]GridState, error) {
	states, err := g.pf.OptimalPath(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]GridState, len(states))
	for i, s := range states {
		out[i] = s.(GridState)
	}
	return out, nil
}

// OptimalEdges returns every edge lying on some optimal path from start to
// end, as (from, to) cell pairs.
func (g *GridPathFinder) OptimalEdges(start, end GridState) ([][2]GridState, error) {
	edges, err := g.pf.OptimalEdges(start, end)
	if err != nil {
		return nil, err
	}
	out := make([][2]GridState, len(edges))
	for i, e := range edges {
		out[i] = [2]GridState{e[0].(GridState), e[1].(GridState)}
	}
	return out, nil
}

// Reset discards every cell, edge, and cached cost this GridPathFinder has
// accumulated — call after mutating the grid's obstacles so the next
// query re-expands from scratch.
func (g *GridPathFinder) Reset() {
	g.pf.Clear()
}

func intCompare(a, b any) int { return a.(int) - b.(int) }
func intCombine(a, b any) any { return a.(int) + b.(int) }
