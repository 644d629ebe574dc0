package gridexample_test

import (
	"testing"

	"github.com/katalvlaran/idp/gridexample"
	"github.com/katalvlaran/idp/pathfinder"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, g *gridexample.Grid, x, y int) gridexample.GridState {
	t.Helper()
	s, err := g.State(x, y)
	require.NoError(t, err)
	return s
}

// pathCost recomputes a path's (distance, obstacle) cost from its vertex
// sequence, independent of PathFinder, as a cross-check on the returned
// path's total cost.
func pathCost(grid *gridexample.Grid, path []gridexample.GridState) (distance, obstacles int) {
	for i := 0; i+1 < len(path); i++ {
		distance++
		obstacles += grid.NearbyObstacles(path[i].X(), path[i].Y())
		obstacles += grid.NearbyObstacles(path[i+1].X(), path[i+1].Y())
	}
	return distance, obstacles
}

// Scenario 1: 3x3 empty grid, (0,0)->(2,2). No obstacles anywhere, so the
// lexicographic tie-break never engages; every monotone path ties at
// distance 4 and obstacle-cost 0.
func TestGrid_EmptyGridFindsShortestManhattanPath(t *testing.T) {
	grid := gridexample.NewGrid(3, 3)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 2, 2)

	path, err := pf.OptimalPath(start, end)
	require.NoError(t, err)
	require.Len(t, path, 5)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])

	distance, obstacles := pathCost(grid, path)
	require.Equal(t, 4, distance)
	require.Equal(t, 0, obstacles)

	edges, err := pf.OptimalEdges(start, end)
	require.NoError(t, err)
	require.NotEmpty(t, edges)
}

// Scenario 2: obstacle at (1,1). Both detours around the blocked center
// still reach (2,2) in 4 steps and tie on obstacle-adjacency cost (each
// passes two cells beside the obstacle, for a cost of 4).
func TestGrid_CenterObstacleStillReachableAtSameDistance(t *testing.T) {
	grid := gridexample.NewGrid(3, 3)
	grid.SetObstacle(1, 1)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 2, 2)

	path, err := pf.OptimalPath(start, end)
	require.NoError(t, err)

	distance, _ := pathCost(grid, path)
	require.Equal(t, 4, distance)
	for _, cell := range path {
		require.False(t, grid.IsObstacle(cell.X(), cell.Y()))
	}
}

// Scenario 3: a 5x1 corridor has exactly one route from end to end.
func TestGrid_CorridorHasSingleOptimalPath(t *testing.T) {
	grid := gridexample.NewGrid(5, 1)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 4, 0)

	path, err := pf.OptimalPath(start, end)
	require.NoError(t, err)
	require.Len(t, path, 5)

	distance, obstacles := pathCost(grid, path)
	require.Equal(t, 4, distance)
	require.Equal(t, 0, obstacles)

	edges, err := pf.OptimalEdges(start, end)
	require.NoError(t, err)
	require.Len(t, edges, 4)
}

// Scenario 4: obstacles at (1,0) and (0,1) box the corner start (0,0) off
// from the rest of the grid entirely.
func TestGrid_BoxedStartHasNoPath(t *testing.T) {
	grid := gridexample.NewGrid(3, 3)
	grid.SetObstacle(1, 0)
	grid.SetObstacle(0, 1)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 2, 2)

	_, err := pf.OptimalPath(start, end)
	require.ErrorIs(t, err, pathfinder.ErrNoPath)
}

// Scenario 5: a 2x2 empty grid has exactly two length-2 routes between
// opposite corners, contributing 4 distinct edges to the optimal set.
func TestGrid_TwoByTwoHasTwoTiedRoutes(t *testing.T) {
	grid := gridexample.NewGrid(2, 2)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 1, 1)

	path, err := pf.OptimalPath(start, end)
	require.NoError(t, err)
	require.Len(t, path, 3)

	edges, err := pf.OptimalEdges(start, end)
	require.NoError(t, err)
	require.Len(t, edges, 4)
}

// Scenario 6: an obstacle at (2,0) raises the obstacle-adjacency cost of
// transits through its neighbor (1,0); the lexicographic tie-break must
// still find a distance-4 path while avoiding the costlier detour.
func TestGrid_ObstacleAdjacencyBreaksTie(t *testing.T) {
	grid := gridexample.NewGrid(3, 3)
	grid.SetObstacle(2, 0)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 2, 2)

	path, err := pf.OptimalPath(start, end)
	require.NoError(t, err)

	distance, _ := pathCost(grid, path)
	require.Equal(t, 4, distance)
	for _, cell := range path {
		require.False(t, grid.IsObstacle(cell.X(), cell.Y()))
	}
}

func TestGridPathFinder_ResetAllowsObstacleUpdate(t *testing.T) {
	grid := gridexample.NewGrid(3, 3)
	pf := gridexample.NewGridPathFinder(grid)

	start := mustState(t, grid, 0, 0)
	end := mustState(t, grid, 2, 2)

	_, err := pf.OptimalPath(start, end)
	require.NoError(t, err)

	grid.SetObstacle(1, 1)
	pf.Reset()

	path, err := pf.OptimalPath(start, end)
	require.NoError(t, err)
	for _, cell := range path {
		require.False(t, grid.IsObstacle(cell.X(), cell.Y()))
	}
}
