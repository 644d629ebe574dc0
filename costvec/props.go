package costvec

import "fmt"

// CompareFunc returns a signed ordering of a against b for one coordinate:
// negative if a < b, zero if a == b, positive if a > b.
type CompareFunc func(a, b any) int

// CombineFunc returns the monoid combine a ⊕ b for one coordinate. Must be
// associative; the result must satisfy combine(a, b) ≥ a under Compare
// (non-negative costs), which Dijkstra correctness in package idp relies on.
type CombineFunc func(a, b any) any

// Props configures the k-coordinate monoid vector: one identity value, one
// CompareFunc, and one CombineFunc per coordinate. Once built via NewProps
// it is immutable and safe to share across a PathFinder's lifetime.
//
// Props mirrors the teacher's functional-option construction style
// (core.NewGraph(opts ...GraphOption)), widened to register one coordinate
// at a time: arity k is passed to NewProps up front, and one WithCoordinate
// call per index in [0, k) fills it in.
type Props struct {
	identities []any
	compares   []CompareFunc
	combines   []CombineFunc
}

// PropOption registers one coordinate of a Props under construction.
type PropOption func(*propBuilder)

type propBuilder struct {
	k          int
	identities []any
	compares   []CompareFunc
	combines   []CombineFunc
	set        []bool
}

// WithCoordinate registers coordinate i's identity value, comparator, and
// combine operator. i must be in [0, k). Registering the same i twice
// overwrites the earlier registration (last write wins), matching the
// teacher's GraphOption left-to-right apply order.
func WithCoordinate(i int, identity any, compare CompareFunc, combine CombineFunc) PropOption {
	return func(b *propBuilder) {
		if i < 0 || i >= b.k {
			// Coordinate indices are caller-supplied constants; an
			// out-of-range index is a construction-time contract
			// violation, not a runtime condition to recover from.
			panic(fmt.Sprintf("%v: index %d, k=%d", ErrCoordinateOutOfRange, i, b.k))
		}
		b.identities[i] = identity
		b.compares[i] = compare
		b.combines[i] = combine
		b.set[i] = true
	}
}

// NewProps builds a Props with k coordinates, applying opts in order. Every
// coordinate in [0, k) must be registered at least once via WithCoordinate
// (a later registration of the same index overwrites an earlier one);
// NewProps returns ErrIncompleteProps otherwise.
func NewProps(k int, opts ...PropOption) (Props, error) {
	b := &propBuilder{
		k:          k,
		identities: make([]any, k),
		compares:   make([]CompareFunc, k),
		combines:   make([]CombineFunc, k),
		set:        make([]bool, k),
	}
	for _, opt := range opts {
		opt(b)
	}
	for i := 0; i < k; i++ {
		if !b.set[i] {
			return Props{}, fmt.Errorf("%w: coordinate %d", ErrIncompleteProps, i)
		}
	}

	return Props{identities: b.identities, compares: b.compares, combines: b.combines}, nil
}

// Arity returns k, the number of coordinates.
func (p Props) Arity() int { return len(p.identities) }

// Identity returns a fresh copy of the k-coordinate identity vector.
func (p Props) Identity() []any {
	out := make([]any, len(p.identities))
	copy(out, p.identities)
	return out
}

// Compare performs a full lexicographic comparison of a against b, both of
// arity k: the first coordinate with a non-zero Compare result decides the
// outcome. Returns 0 only if every coordinate compares equal.
func (p Props) Compare(a, b []any) int {
	for i := range p.compares {
		if c := p.compares[i](a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// CompareAt compares only coordinate i of a and b.
func (p Props) CompareAt(a, b []any, i int) int {
	return p.compares[i](a[i], b[i])
}

// Op returns a ⊕ b across every coordinate.
func (p Props) Op(a, b []any) []any {
	out := make([]any, len(p.combines))
	for i := range p.combines {
		out[i] = p.combines[i](a[i], b[i])
	}
	return out
}

// OpAt returns a result vector with only coordinate i set to a[i] ⊕ b[i];
// every other coordinate is filled with that coordinate's identity value so
// callers may reason about partial writes (spec invariant: untouched
// coordinates of a single-coordinate op are identity, never leftover data).
func (p Props) OpAt(a, b []any, i int) []any {
	out := p.Identity()
	out[i] = p.combines[i](a[i], b[i])
	return out
}
