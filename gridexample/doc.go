// Package gridexample illustrates pathfinder's DomainState and cost-compute
// contracts on a concrete 2D grid: a cell's successors are its in-bounds,
// obstacle-free orthogonal neighbors, and its edge cost is a (distance,
// adjacent-obstacle-count) pair, tie-broken lexicographically.
//
// This package is external to the core module on purpose: pathfinder,
// idp, lazygraph, subgraph, costvec, and idheap have no notion of grids
// or obstacles. Grid is a consumer of the DomainState/CostComputeFunc
// contracts, not part of what they specify.
package gridexample
