// Package lazygraph implements a graph whose vertices and edges are
// materialized on demand from a caller-supplied DomainState, rather than
// built up front the way core.Graph is.
//
// A state space reachable from a single start state — a grid, a game
// board, a search frontier — is typically far larger than any one run of
// IDP needs to visit. Graph generalizes core.Graph's explicit
// AddVertex/AddEdge API into a pull model: GetNextEdges(id) expands a
// vertex's successors the first time it is asked for them, caching the
// result so repeated asks never call Successors again.
//
// Per-coordinate edge costs are themselves lazy: a cost vector's
// coordinates are filled in only as package idp's iterate loop asks for
// them, one coordinate at a time, tracked by a per-edge bitset (Arena
// handle already allocated at edge-creation time with identity values, the
// bitset records which coordinates hold a real CostCompute result rather
// than still being identity placeholders).
package lazygraph
