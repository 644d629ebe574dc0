// Package costvec defines the multi-cost monoid abstraction used throughout
// idp: a fixed-arity tuple of independently-ordered monoid coordinates,
// plus a pooled arena that allocates, combines, and recycles cost-vector
// slots.
//
// What:
//
//   - Props holds, for each of k coordinates, an identity value, a
//     comparator returning a signed ordering, and an associative combine
//     operator. Global comparison of two cost vectors is lexicographic
//     left-to-right across coordinates.
//   - Arena stores cost-vector values in a dense backing slice and hands
//     out opaque Handle values that reference a slot. Handles are
//     exclusively owned: Release returns the slot to a free-list for
//     reuse by the next allocation.
//
// Why:
//
//   - Cost vectors are created, combined, and dropped on every relaxed
//     edge along a Dijkstra frontier. The arena recycles released slot
//     indices through its free-list. Op, OpAt, Copy, and New still build
//     a fresh value slice for the slot on every call; only OpInto and
//     OpIntoAt write into an existing slot without allocating.
//   - Every ⊕ᵢ must be associative with identity 0ᵢ as an absolute
//     minimum (x ⊕ᵢ y ≥ᵢ x) — this is what makes per-coordinate Dijkstra
//     correct; Props does not itself verify associativity (that is the
//     caller's contract), but DefaultOptions-style validation at
//     construction time rejects an incomplete coordinate registration.
//
// Errors:
//
//   - ErrArityMismatch: a cost vector of the wrong length was supplied.
//   - ErrCoordinateOutOfRange: a coordinate index ≥ k was requested.
//   - ErrIncompleteProps: NewProps was called without registering all k
//     coordinates.
//   - ErrHandleReleased: a released handle was used (debug-mode only).
//   - ErrArenaExhausted: the arena could not grow (allocation failure).
package costvec
