package costvec

// Handle is an opaque, exclusively-owned reference to one slot in an
// Arena's backing store. Two live handles may compare equal in value
// (same coordinates) while referencing different slots; Release returns a
// handle's slot to the arena's free-list. A Handle must not outlive the
// Arena that issued it.
type Handle struct {
	idx  int
	gen  uint32
	live bool
}

// PartialHandle is the result of a single-coordinate Arena.OpAt: only one
// coordinate of its backing slot is a real combine result, every other
// coordinate holds that coordinate's identity value. PartialHandle is
// deliberately not a Handle — Props.Compare (full lexicographic compare)
// does not accept it, so a caller cannot accidentally lex-compare a vector
// whose unfilled coordinates are placeholder identities rather than real
// costs (see SPEC_FULL.md §9, "partial-handle exposure"). Materialize
// promotes it to a full Handle once the caller is ready to treat every
// coordinate as meaningful (e.g. because it will only ever be compared at
// the one coordinate that is real).
type PartialHandle struct {
	h Handle
	i int
}

// Materialize returns the underlying Handle, asserting the coordinate the
// caller intends to rely on. Any coordinate other than At() still holds an
// identity placeholder, not a real value — callers must not widen the
// comparison beyond At() without first filling the remaining coordinates
// (e.g. via Arena.OpInto for each).
func (p PartialHandle) Materialize() Handle { return p.h }

// At returns the coordinate index that holds a real combine result.
func (p PartialHandle) At() int { return p.i }

// Arena is a pooled allocator of cost-vector slots. Allocation prefers a
// free-list entry (LIFO) before growing the backing slice; release pushes
// the slot index back onto the free-list without zeroing its contents —
// the next allocation from that slot overwrites it before use.
//
// Arena is not safe for concurrent use (package idp's Non-goals exclude
// concurrency; callers serialize access per PathFinder instance).
type Arena struct {
	props    Props
	slots    [][]any
	freeList []int
	gen      []uint32
	live     int
}

// NewArena constructs an empty Arena for the given Props.
func NewArena(props Props) *Arena {
	return &Arena{props: props}
}

// Props returns the arena's monoid properties.
func (a *Arena) Props() Props { return a.props }

// AllocatedSize returns the number of slots ever allocated (live + free).
func (a *Arena) AllocatedSize() int { return len(a.slots) }

// LiveHandles returns the number of currently-outstanding handles.
// Invariant (spec §8.1): LiveHandles() + len(freeList) == AllocatedSize().
func (a *Arena) LiveHandles() int { return a.live }

func (a *Arena) alloc(v []any) Handle {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.slots[idx] = v
		a.live++
		return Handle{idx: idx, gen: a.gen[idx], live: true}
	}
	a.slots = append(a.slots, v)
	a.gen = append(a.gen, 0)
	idx := len(a.slots) - 1
	a.live++
	return Handle{idx: idx, gen: a.gen[idx], live: true}
}

func (a *Arena) slot(h Handle) []any {
	if Debug && (!h.live || h.gen != a.gen[h.idx]) {
		panic(ErrHandleReleased)
	}
	return a.slots[h.idx]
}

// Identity allocates a handle whose slot equals the monoid identity vector.
func (a *Arena) Identity() Handle {
	return a.alloc(a.props.Identity())
}

// New allocates a handle from caller-supplied raw coordinate values — the
// entry point CostCompute uses to materialise a freshly computed edge
// cost (mirrors the original make_multicost). Panics with
// ErrArityMismatch if len(values) != Arity().
func (a *Arena) New(values []any) Handle {
	if len(values) != len(a.props.identities) {
		panic(ErrArityMismatch)
	}
	v := make([]any, len(values))
	copy(v, values)
	return a.alloc(v)
}

// Op allocates a handle holding a ⊕ b across every coordinate.
func (a *Arena) Op(x, y Handle) Handle {
	return a.alloc(a.props.Op(a.slot(x), a.slot(y)))
}

// OpAt combines only coordinate i of x and y; the rest of the returned
// value is a placeholder identity. See PartialHandle for why this is not a
// Handle.
func (a *Arena) OpAt(x, y Handle, i int) PartialHandle {
	h := a.alloc(a.props.OpAt(a.slot(x), a.slot(y), i))
	return PartialHandle{h: h, i: i}
}

// OpInto writes x ⊕ y (every coordinate) into dst's existing slot; no new
// slot is allocated.
func (a *Arena) OpInto(x, y, dst Handle) {
	d := a.slot(dst)
	xs, ys := a.slot(x), a.slot(y)
	for i := range d {
		d[i] = a.props.combines[i](xs[i], ys[i])
	}
}

// OpIntoAt writes only coordinate i of x ⊕ y into dst's existing slot.
// This is the in-place fill LazyGraph uses when a later IDP iteration
// needs a coordinate of an edge cost that an earlier iteration left
// unset (spec §4.4, computed-mask bit i transitioning to set).
func (a *Arena) OpIntoAt(x, y, dst Handle, i int) {
	d := a.slot(dst)
	xs, ys := a.slot(x), a.slot(y)
	d[i] = a.props.combines[i](xs[i], ys[i])
}

// Copy deep-copies x's slot into a freshly allocated handle.
func (a *Arena) Copy(x Handle) Handle {
	src := a.slot(x)
	dst := make([]any, len(src))
	copy(dst, src)
	return a.alloc(dst)
}

// Compare performs a full lexicographic comparison of x against y.
func (a *Arena) Compare(x, y Handle) int {
	return a.props.Compare(a.slot(x), a.slot(y))
}

// CompareAt compares only coordinate i of x and y.
func (a *Arena) CompareAt(x, y Handle, i int) int {
	return a.props.CompareAt(a.slot(x), a.slot(y), i)
}

// IsIdentity reports whether x equals the monoid identity across every
// coordinate.
func (a *Arena) IsIdentity(x Handle) bool {
	return a.props.Compare(a.slot(x), a.props.Identity()) == 0
}

// IsIdentityAt reports whether coordinate i of x equals that coordinate's
// identity value.
func (a *Arena) IsIdentityAt(x Handle, i int) bool {
	return a.props.CompareAt(a.slot(x), a.props.Identity(), i) == 0
}

// Release returns x's slot to the free-list. x must not be used again;
// in Debug mode, further use panics with ErrHandleReleased.
func (a *Arena) Release(x Handle) {
	a.freeList = append(a.freeList, x.idx)
	a.gen[x.idx]++
	a.live--
}

// Values exposes the raw coordinate slice for x, for diagnostics and
// tests only — callers must not retain or mutate it past the handle's
// release.
func (a *Arena) Values(x Handle) []any {
	return a.slot(x)
}
