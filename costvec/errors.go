package costvec

import "errors"

// Sentinel errors for the costvec package.
var (
	// ErrArityMismatch indicates a cost vector's length does not equal
	// the configured number of coordinates k.
	ErrArityMismatch = errors.New("costvec: cost vector arity mismatch")

	// ErrCoordinateOutOfRange indicates a coordinate index i is not in [0, k).
	ErrCoordinateOutOfRange = errors.New("costvec: coordinate index out of range")

	// ErrIncompleteProps indicates NewProps was built without registering
	// all k coordinates via WithCoordinate.
	ErrIncompleteProps = errors.New("costvec: not all coordinates were registered")

	// ErrHandleReleased indicates a Handle was used after Release; only
	// raised when Debug is true (a caller-bug assertion, not a recoverable
	// runtime condition).
	ErrHandleReleased = errors.New("costvec: use of a released handle")

	// ErrArenaExhausted indicates the arena's backing slice could not grow.
	ErrArenaExhausted = errors.New("costvec: arena allocation failed")
)

// Debug gates the ErrHandleReleased assertion. Off by default; tests and
// debug builds may set it true to catch use-after-release bugs early.
var Debug = false
