package gridexample

import (
	"fmt"

	"github.com/katalvlaran/idp/lazygraph"
)

// Grid is a rectangular obstacle map. Cells are addressed by 0-indexed
// (x, y), x across Width, y across Height.
type Grid struct {
	Width, Height int
	obstacles     map[[2]int]bool
}

// NewGrid constructs an obstacle-free grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:     width,
		Height:    height,
		obstacles: make(map[[2]int]bool),
	}
}

// SetObstacle marks (x, y) as impassable.
func (g *Grid) SetObstacle(x, y int) {
	g.obstacles[[2]int{x, y}] = true
}

// ClearObstacle marks (x, y) as passable.
func (g *Grid) ClearObstacle(x, y int) {
	delete(g.obstacles, [2]int{x, y})
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsObstacle reports whether (x, y) is marked impassable. Cells outside
// the grid are never obstacles; InBounds must be checked separately.
func (g *Grid) IsObstacle(x, y int) bool {
	return g.obstacles[[2]int{x, y}]
}

// NearbyObstacles counts (x, y)'s in-bounds orthogonal neighbors that are
// obstacles.
func (g *Grid) NearbyObstacles(x, y int) int {
	count := 0
	for _, d := range gridDirections {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.IsObstacle(nx, ny) {
			count++
		}
	}
	return count
}

// State returns the GridState at (x, y). Returns ErrOutOfBounds if (x, y)
// lies outside the grid.
func (g *Grid) State(x, y int) (GridState, error) {
	if !g.InBounds(x, y) {
		return GridState{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return GridState{x: x, y: y, grid: g}, nil
}

// gridDirections is top, bottom, left, right, matching the original
// grid-state implementation's traversal order.
var gridDirections = [4][2]int{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// GridState is a single grid cell, implementing lazygraph.DomainState.
type GridState struct {
	x, y int
	grid *Grid
}

// X returns the cell's column.
func (s GridState) X() int { return s.x }

// Y returns the cell's row.
func (s GridState) Y() int { return s.y }

// UniqueID identifies a cell by its coordinates.
func (s GridState) UniqueID() string {
	return fmt.Sprintf("%d,%d", s.x, s.y)
}

// Successors returns every in-bounds, obstacle-free orthogonal neighbor of
// s. An obstacle cell has no successors: it cannot be departed from.
func (s GridState) Successors() []lazygraph.DomainState {
	if s.grid.IsObstacle(s.x, s.y) {
		return nil
	}
	var out []lazygraph.DomainState
	for _, d := range gridDirections {
		nx, ny := s.x+d[0], s.y+d[1]
		if s.grid.InBounds(nx, ny) && !s.grid.IsObstacle(nx, ny) {
			out = append(out, GridState{x: nx, y: ny, grid: s.grid})
		}
	}
	return out
}
