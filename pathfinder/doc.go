// Package pathfinder is the façade over lazygraph and idp: given two
// DomainState endpoints it builds (or reuses) the lazy graph between them,
// runs package idp's iterated propagation, and translates the resulting
// optimal subgraph back into caller-facing DomainState paths and edges.
//
// Path reconstruction walks breadth-first from end back to start over the
// optimal subgraph's incoming edges, recording one parent per newly
// discovered vertex and stopping the moment start is dequeued. This is a
// deliberate departure from a LIFO-stack walk: a stack can wander down a
// dead branch of the optimal subgraph before backtracking, whereas a FIFO
// queue discovers start along a shortest hop-count route through the
// subgraph on its first visit, matching every equally-optimal path without
// favoring whichever branch happened to be pushed last.
package pathfinder
