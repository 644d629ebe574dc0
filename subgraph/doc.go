// Package subgraph implements OptimalSubgraph: the accumulating set of
// edges package idp's iterate loop has proven optimal for the coordinates
// processed so far, plus the scratch edge sets each coordinate's forward
// and backward Dijkstra passes build before the BFS-recovery pass folds
// them into it.
//
// Before any coordinate has been processed (IsInitial true), "the optimal
// next-edges of a vertex" is simply every edge lazygraph.Graph would
// return for it — nothing has been restricted yet. After the first
// coordinate, traversal must be confined to edges already proven optimal,
// so OptimalSubgraph switches to its own optimalNextEdges/optimalPrevEdges
// maps and stops delegating to the underlying graph.
package subgraph
