package idheap

import "container/heap"

// entry is one (id, priority) pairing stored in the heap's backing slice.
type entry struct {
	id       string
	priority any
}

// IndexedHeap is a binary min-heap over entries, indexed by id so a caller
// can decrease (or otherwise change) an existing entry's priority and have
// the heap re-establish its invariant in O(log n), via container/heap.Fix —
// the same pattern gonum's aStarPriorityQueue uses for A*'s open set.
//
// IndexedHeap is not safe for concurrent use.
type IndexedHeap struct {
	entries []*entry
	index   map[string]int // id -> slot in entries
	less    Comparator
}

// NewIndexedHeap constructs an empty heap ordered by less: less(a, b) true
// means a must come out before b.
func NewIndexedHeap(less Comparator) *IndexedHeap {
	return &IndexedHeap{
		index: make(map[string]int),
		less:  less,
	}
}

// Len implements sort.Interface (via heap.Interface).
func (h *IndexedHeap) Len() int { return len(h.entries) }

// Less implements sort.Interface.
func (h *IndexedHeap) Less(i, j int) bool {
	return h.less(h.entries[i].priority, h.entries[j].priority)
}

// Swap implements sort.Interface, keeping the id->slot index in sync.
func (h *IndexedHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].id] = i
	h.index[h.entries[j].id] = j
}

// Push implements heap.Interface; from outside this package insert through
// PushOrUpdate or TryDecrease instead.
func (h *IndexedHeap) Push(x any) {
	e := x.(*entry)
	h.index[e.id] = len(h.entries)
	h.entries = append(h.entries, e)
}

// Pop implements heap.Interface; from outside this package remove entries
// through PopMin instead.
func (h *IndexedHeap) Pop() any {
	n := len(h.entries)
	e := h.entries[n-1]
	h.entries = h.entries[:n-1]
	delete(h.index, e.id)

	return e
}

// Contains reports whether id currently has an entry in the heap.
func (h *IndexedHeap) Contains(id string) bool {
	_, ok := h.index[id]

	return ok
}

// PriorityOf returns id's current priority, or ErrNotFound if id is absent.
func (h *IndexedHeap) PriorityOf(id string) (any, error) {
	i, ok := h.index[id]
	if !ok {
		return nil, ErrNotFound
	}

	return h.entries[i].priority, nil
}

// PushOrUpdate inserts id with the given priority if absent, or updates its
// priority and re-heapifies if already present — the decrease-key
// operation the forward/backward Dijkstra passes call on every relaxed
// edge. Unlike dijkstra.nodePQ's lazy push-duplicate strategy, this never
// leaves stale entries behind.
func (h *IndexedHeap) PushOrUpdate(id string, priority any) {
	if i, ok := h.index[id]; ok {
		h.entries[i].priority = priority
		heap.Fix(h, i)
		return
	}
	heap.Push(h, &entry{id: id, priority: priority})
}

// TryDecrease inserts id with the given priority if absent (always
// succeeds, previous is nil), or updates it only if priority is not
// strictly worse than id's current priority, re-heapifying on success.
// Reports whether the update happened and, on a successful update of an
// existing entry, the priority it replaced — so a caller pooling
// priorities (package idp's arena handles) can release the superseded
// value instead of leaking it. This is the decrease-key entry point the
// forward/backward Dijkstra passes use to decide whether an edge just
// relaxed belongs in this round's scratch edge set.
func (h *IndexedHeap) TryDecrease(id string, priority any) (accepted bool, previous any) {
	i, ok := h.index[id]
	if !ok {
		heap.Push(h, &entry{id: id, priority: priority})
		return true, nil
	}
	if h.less(h.entries[i].priority, priority) {
		return false, nil // existing entry is strictly better; reject
	}
	previous = h.entries[i].priority
	h.entries[i].priority = priority
	heap.Fix(h, i)
	return true, previous
}

// TopID returns the id of the minimum-priority entry without removing it.
func (h *IndexedHeap) TopID() (string, error) {
	if len(h.entries) == 0 {
		return "", ErrEmpty
	}

	return h.entries[0].id, nil
}

// TopPriority returns the minimum priority without removing its entry.
func (h *IndexedHeap) TopPriority() (any, error) {
	if len(h.entries) == 0 {
		return nil, ErrEmpty
	}

	return h.entries[0].priority, nil
}

// PopMin removes and returns the minimum-priority id and its priority.
func (h *IndexedHeap) PopMin() (string, any, error) {
	if len(h.entries) == 0 {
		return "", nil, ErrEmpty
	}
	e := heap.Pop(h).(*entry)

	return e.id, e.priority, nil
}
