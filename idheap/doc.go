// Package idheap implements an indexed binary min-heap: a priority queue
// keyed by a caller-supplied comparable ID, supporting true decrease-key in
// O(log n) rather than the push-duplicate-and-skip-stale approach package
// dijkstra uses for its nodePQ.
//
// IDP's forward and backward Dijkstra passes decrease-key a vertex's
// distance on every relaxing edge; a lazy heap would otherwise accumulate
// O(E) stale entries per pass per coordinate, across k coordinates and the
// iterate loop's repeated restarts — decrease-key keeps the heap at O(V).
//
// IndexedHeap wraps container/heap the same way dijkstra.nodePQ does (a
// slice type implementing heap.Interface), adding a bidirectional id↔slot
// index so PushOrUpdate and TryDecrease can locate and re-heapify an
// existing entry instead of pushing a new one.
package idheap
