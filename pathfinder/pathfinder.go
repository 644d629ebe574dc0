package pathfinder

import (
	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/idp"
	"github.com/katalvlaran/idp/lazygraph"
	"github.com/katalvlaran/idp/subgraph"
)

// PathFinder finds lexicographically optimal paths over a k-coordinate
// monoid cost between pairs of DomainState vertices, lazily expanding the
// underlying graph as each query demands.
type PathFinder struct {
	graph *lazygraph.Graph
}

// New constructs a PathFinder. props fixes the monoid's arity, identities,
// comparators, and combine operators; compute fills one coordinate of an
// edge's cost the first time that coordinate is asked for.
func New(props costvec.Props, compute lazygraph.CostComputeFunc) *PathFinder {
	arena := costvec.NewArena(props)
	return &PathFinder{graph: lazygraph.New(arena, compute)}
}

// OptimalPath returns the sequence of DomainStates from start to end, both
// inclusive, along a path that is optimal under the full lexicographic
// order. Returns ErrNoPath if end is unreachable from start.
func (p *PathFinder) OptimalPath(start, end lazygraph.DomainState) ([]lazygraph.DomainState, error) {
	sg, startIdx, endIdx, err := p.run(start, end)
	if err != nil {
		return nil, err
	}
	if startIdx == endIdx {
		return []lazygraph.DomainState{p.graph.State(startIdx)}, nil
	}
	if !sg.HasOptimalGraph() {
		return nil, ErrNoPath
	}

	indices, err := reconstructPath(sg, startIdx, endIdx)
	if err != nil {
		return nil, err
	}

	states := make([]lazygraph.DomainState, len(indices))
	for i, idx := range indices {
		states[i] = p.graph.State(idx)
	}

	return states, nil
}

// OptimalEdges returns every edge lying on some optimal path from start to
// end, as (from, to) DomainState pairs. Returns ErrNoPath if end is
// unreachable from start.
func (p *PathFinder) OptimalEdges(start, end lazygraph.DomainState) ([][2]lazygraph.DomainState, error) {
	sg, startIdx, endIdx, err := p.run(start, end)
	if err != nil {
		return nil, err
	}
	if startIdx == endIdx {
		return [][2]lazygraph.DomainState{}, nil
	}
	if !sg.HasOptimalGraph() {
		return nil, ErrNoPath
	}

	edges := sg.OptimalEdges()
	out := make([][2]lazygraph.DomainState, len(edges))
	for i, e := range edges {
		out[i] = [2]lazygraph.DomainState{p.graph.State(e.From), p.graph.State(e.To)}
	}

	return out, nil
}

// Clear discards every vertex, edge, and cached cost this PathFinder has
// accumulated, returning its graph to empty.
func (p *PathFinder) Clear() {
	p.graph.Clear()
}

// run seeds start and end as vertices, then hands their compact indices to
// package idp's driver.
func (p *PathFinder) run(start, end lazygraph.DomainState) (*subgraph.OptimalSubgraph, int, int, error) {
	if start == nil || end == nil {
		return nil, 0, 0, ErrNilState
	}

	startIdx, err := p.graph.AddVertex(start)
	if err != nil {
		return nil, 0, 0, err
	}
	endIdx, err := p.graph.AddVertex(end)
	if err != nil {
		return nil, 0, 0, err
	}

	sg, err := idp.Run(p.graph, startIdx, endIdx)
	if err != nil {
		return nil, 0, 0, err
	}

	return sg, startIdx, endIdx, nil
}

// reconstructPath walks breadth-first from end over sg's optimal incoming
// edges, recording the first (and therefore shortest-hop) discoverer of
// each vertex as its parent toward end, then unwinds start's parent chain
// forward into a path.
func reconstructPath(sg *subgraph.OptimalSubgraph, start, end int) ([]int, error) {
	if start == end {
		return []int{start}, nil
	}

	parent := map[int]int{end: end}
	visited := map[int]bool{end: true}
	queue := []int{end}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == start {
			return unwindPath(parent, start, end), nil
		}

		edges, err := sg.GetPrevEdges(node, 0)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if visited[e.From] {
				continue
			}
			visited[e.From] = true
			parent[e.From] = node
			queue = append(queue, e.From)
		}
	}

	return nil, ErrNoPath
}

// unwindPath follows parent from start forward to end, building the
// caller-facing path in traversal order.
func unwindPath(parent map[int]int, start, end int) []int {
	path := []int{start}
	cur := start
	for cur != end {
		cur = parent[cur]
		path = append(path, cur)
	}

	return path
}
