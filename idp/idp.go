package idp

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/idheap"
	"github.com/katalvlaran/idp/lazygraph"
	"github.com/katalvlaran/idp/subgraph"
)

// Run computes the optimal subgraph between start and end over graph's
// monoid cost, iterating one coordinate at a time. The returned
// OptimalSubgraph's edge set is empty (HasOptimalGraph false) if end is
// unreachable from start.
func Run(graph *lazygraph.Graph, start, end int) (*subgraph.OptimalSubgraph, error) {
	arena := graph.Arena()
	arity := arena.Props().Arity()

	sg := subgraph.New(graph)
	if err := iterate(sg, arena, start, end, 0); err != nil {
		return nil, err
	}
	if !sg.HasOptimalGraph() {
		return sg, nil
	}

	for coordinate := 1; coordinate < arity; coordinate++ {
		if err := iterate(sg, arena, start, end, coordinate); err != nil {
			return nil, err
		}
		if !sg.HasOptimalGraph() {
			return sg, nil
		}
	}

	return sg, nil
}

// iterate runs one coordinate's full forward/backward/recovery round,
// restricting subsequent rounds to the edges this round proves optimal.
func iterate(sg *subgraph.OptimalSubgraph, arena *costvec.Arena, start, end, coordinate int) error {
	releaseWeights(arena, sg)
	sg.ClearPropagationEdges()
	sg.ClearWeights()

	if err := forwardDijkstra(sg, arena, start, coordinate); err != nil {
		return err
	}
	if sg.IsNextWeightInf(end) {
		return nil // end unreachable under this coordinate's restricted edge set
	}

	if err := backwardDijkstra(sg, arena, end, coordinate); err != nil {
		return err
	}
	if sg.IsPrevWeightInf(start) {
		return nil
	}

	sg.ClearOptimalEdges()
	if err := bfsOptimalEdgeRetrieval(sg, arena, start, coordinate); err != nil {
		return err
	}
	sg.NotInitial()

	return nil
}

// releaseWeights returns every handle in sg's current boundary-cost maps
// to arena before iterate discards the maps on the next round.
func releaseWeights(arena *costvec.Arena, sg *subgraph.OptimalSubgraph) {
	for _, h := range sg.NextWeights() {
		arena.Release(h)
	}
	for _, h := range sg.PrevWeights() {
		arena.Release(h)
	}
}

// forwardDijkstra computes, for coordinate, the forward distance from
// source to every vertex reachable through sg's current candidate edges,
// recording each edge that lies on some shortest path as a temp next-edge.
func forwardDijkstra(sg *subgraph.OptimalSubgraph, arena *costvec.Arena, source, coordinate int) error {
	h := idheap.NewIndexedHeap(vertexLess(arena, coordinate))
	closed := make(map[int]bool)
	h.TryDecrease(vertexKey(source), arena.Identity())

	for h.Len() > 0 {
		key, costAny, err := h.PopMin()
		if err != nil {
			return err
		}
		id := parseVertexKey(key)
		cost := costAny.(costvec.Handle)
		closed[id] = true

		edges, err := sg.GetNextEdges(id, coordinate)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !closed[e.To] {
				weight := arena.OpAt(cost, e.Cost, coordinate).Materialize()
				accepted, previous := h.TryDecrease(vertexKey(e.To), weight)
				if accepted {
					sg.AddTempNextEdge(e)
					if previous != nil {
						arena.Release(previous.(costvec.Handle))
					}
				} else {
					arena.Release(weight)
				}
			} else if arena.IsIdentityAt(e.Cost, coordinate) {
				// Returning to an already-finalized vertex at no
				// additional cost still lies on a shortest path.
				sg.AddTempNextEdge(e)
			}
		}
		sg.SetNextWeight(id, cost)
	}

	return nil
}

// backwardDijkstra is forwardDijkstra run against incoming edges from
// target, populating temp prev-edges and prev-weights instead.
func backwardDijkstra(sg *subgraph.OptimalSubgraph, arena *costvec.Arena, target, coordinate int) error {
	h := idheap.NewIndexedHeap(vertexLess(arena, coordinate))
	closed := make(map[int]bool)
	h.TryDecrease(vertexKey(target), arena.Identity())

	for h.Len() > 0 {
		key, costAny, err := h.PopMin()
		if err != nil {
			return err
		}
		id := parseVertexKey(key)
		cost := costAny.(costvec.Handle)
		closed[id] = true

		edges, err := sg.GetPrevEdges(id, coordinate)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !closed[e.From] {
				weight := arena.OpAt(cost, e.Cost, coordinate).Materialize()
				accepted, previous := h.TryDecrease(vertexKey(e.From), weight)
				if accepted {
					sg.AddTempPrevEdge(e)
					if previous != nil {
						arena.Release(previous.(costvec.Handle))
					}
				} else {
					arena.Release(weight)
				}
			} else if arena.IsIdentityAt(e.Cost, coordinate) {
				sg.AddTempPrevEdge(e)
			}
		}
		sg.SetPrevWeight(id, cost)
	}

	return nil
}

// bfsOptimalEdgeRetrieval walks the temp edges breadth-first from start,
// keeping exactly those whose forward-distance + edge cost + backward-
// distance equals the coordinate's overall optimal cost (sg.GetPrevWeight
// of start) — i.e. the edges that lie on some coordinate-optimal path.
func bfsOptimalEdgeRetrieval(sg *subgraph.OptimalSubgraph, arena *costvec.Arena, start, coordinate int) error {
	optimalCost, err := sg.GetPrevWeight(start)
	if err != nil {
		return fmt.Errorf("%w: start vertex has no backward weight: %v", ErrWeightMissing, err)
	}

	queue := []int{start}
	closed := map[int]bool{start: true}
	totalCost := arena.Identity()
	defer arena.Release(totalCost)

	for len(queue) > 0 {
		nodeID := queue[0]
		queue = queue[1:]

		nextWeight, err := sg.GetNextWeight(nodeID)
		if err != nil {
			return fmt.Errorf("%w: vertex %d has no forward weight: %v", ErrWeightMissing, nodeID, err)
		}

		for _, edge := range sg.TempNextEdges()[nodeID] {
			if sg.IsPrevWeightInf(edge.To) {
				continue
			}
			prevWeight, err := sg.GetPrevWeight(edge.To)
			if err != nil {
				return fmt.Errorf("%w: vertex %d has no backward weight: %v", ErrWeightMissing, edge.To, err)
			}

			arena.OpIntoAt(prevWeight, nextWeight, totalCost, coordinate)
			arena.OpIntoAt(edge.Cost, totalCost, totalCost, coordinate)

			if arena.CompareAt(totalCost, optimalCost, coordinate) == 0 {
				sg.AddOptimalEdge(edge)
				if !closed[edge.To] {
					queue = append(queue, edge.To)
					closed[edge.To] = true
				}
			}
		}
	}

	return nil
}

func vertexLess(arena *costvec.Arena, coordinate int) idheap.Comparator {
	return func(a, b any) bool {
		return arena.CompareAt(a.(costvec.Handle), b.(costvec.Handle), coordinate) < 0
	}
}

func vertexKey(id int) string { return strconv.Itoa(id) }

func parseVertexKey(key string) int {
	id, _ := strconv.Atoi(key)
	return id
}
