package idheap

import "errors"

// Sentinel errors returned by IndexedHeap.
var (
	// ErrEmpty indicates that TopID, TopPriority, or PopMin was called on a
	// heap with zero entries.
	ErrEmpty = errors.New("idheap: heap is empty")

	// ErrNotFound indicates that PriorityOf was called with an ID not
	// currently present in the heap.
	ErrNotFound = errors.New("idheap: id not present in heap")
)

// Comparator reports whether a has strictly higher priority than b (is
// closer to the top of the heap). For a min-heap over int64 distances this
// is simply a < b; IndexedHeap is agnostic to the priority's concrete type
// so the same heap implementation serves both the forward and backward
// Dijkstra passes in package idp, which order by costvec.Handle coordinate
// comparisons rather than plain integers.
type Comparator func(a, b any) bool
