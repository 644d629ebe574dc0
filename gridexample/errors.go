package gridexample

import "errors"

var (
	// ErrOutOfBounds indicates a requested cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridexample: cell out of bounds")
)
