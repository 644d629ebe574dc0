package pathfinder

import "errors"

// Sentinel errors returned by PathFinder.
var (
	// ErrNoPath indicates end is unreachable from start under the
	// configured monoid cost.
	ErrNoPath = errors.New("pathfinder: no path between start and end")

	// ErrNilState indicates a nil DomainState was passed as start or end.
	ErrNilState = errors.New("pathfinder: nil domain state")
)
