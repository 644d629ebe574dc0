// Package idp implements Iterated Dijkstra Propagation: the driver that
// finds the lexicographically optimal path between two vertices of a
// lazygraph.Graph under a k-coordinate monoid cost, one coordinate at a
// time.
//
// Run processes coordinates left to right. For coordinate i it runs a
// forward Dijkstra from start and a backward Dijkstra from end, both
// restricted to the edge set the previous coordinate (if any) already
// proved optimal; a BFS recovery pass then intersects the forward and
// backward distances against the coordinate's true shortest distance to
// pick out exactly the edges lying on some coordinate-i-optimal path.
// Coordinate i+1 then searches only among those surviving edges, so a
// later coordinate can only break ties the earlier coordinates left
// unresolved — never override an earlier coordinate's ordering. The
// result is the subgraph of every edge lying on some path that is optimal
// under the full lexicographic order.
//
// Each coordinate's pass discards the previous round's boundary costs and
// scratch edges (ClearWeights/ClearPropagationEdges) but keeps the
// accumulated optimal edge set until the BFS recovery pass is ready to
// replace it — so a coordinate that finds start and end disconnected
// leaves the last fully-computed subgraph in place rather than erasing it.
// Run returns early only when the subgraph holds no optimal edges, which
// is the case when the first coordinate already finds end unreachable.
package idp
