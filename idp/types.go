package idp

import "errors"

// ErrWeightMissing indicates the BFS recovery pass found a vertex with no
// recorded forward or backward weight — a vertex the forward/backward
// Dijkstra passes should always have visited before recovery runs. Surfacing
// this as an error rather than silently skipping the vertex turns a
// violated internal invariant into a diagnosable failure.
var ErrWeightMissing = errors.New("idp: expected boundary weight not found")
