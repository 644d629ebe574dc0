package idp_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/idp"
	"github.com/katalvlaran/idp/lazygraph"
	"github.com/stretchr/testify/require"
)

// diamondState is a fixed four-vertex DomainState: 0 branches to 1 and 2,
// both of which converge on 3. Edge (distance, obstacle) costs are chosen
// so the two branches tie on total distance but differ on obstacles,
// exercising the lexicographic tie-break across coordinates.
type diamondState struct {
	id   int
	succ map[int][]int
}

func (d diamondState) UniqueID() string { return strconv.Itoa(d.id) }

func (d diamondState) Successors() []lazygraph.DomainState {
	var out []lazygraph.DomainState
	for _, to := range d.succ[d.id] {
		out = append(out, diamondState{id: to, succ: d.succ})
	}
	return out
}

var diamondAdjacency = map[int][]int{
	0: {1, 2},
	1: {3},
	2: {3},
	3: {},
}

var diamondEdgeCosts = map[[2]int][2]int{
	{0, 1}: {1, 0},
	{0, 2}: {1, 0},
	{1, 3}: {1, 0},
	{2, 3}: {1, 1}, // branch through 2 costs one extra obstacle
}

func buildDiamondGraph(t *testing.T) (*lazygraph.Graph, int, int) {
	t.Helper()
	return buildDiamondGraphWithAdjacency(t, diamondAdjacency)
}

// buildDiamondGraphWithAdjacency is buildDiamondGraph parameterized over the
// successor order each vertex reports, so callers can check that the
// optimal edge set doesn't depend on Successors() discovery order.
func buildDiamondGraphWithAdjacency(t *testing.T, adjacency map[int][]int) (*lazygraph.Graph, int, int) {
	t.Helper()
	props, err := costvec.NewProps(2,
		costvec.WithCoordinate(0, 0,
			func(a, b any) int { return a.(int) - b.(int) },
			func(a, b any) any { return a.(int) + b.(int) }),
		costvec.WithCoordinate(1, 0,
			func(a, b any) int { return a.(int) - b.(int) },
			func(a, b any) any { return a.(int) + b.(int) }),
	)
	require.NoError(t, err)
	arena := costvec.NewArena(props)

	compute := func(fr, to lazygraph.DomainState, coordinate int) any {
		f := fr.(diamondState).id
		toID := to.(diamondState).id
		return diamondEdgeCosts[[2]int{f, toID}][coordinate]
	}
	g := lazygraph.New(arena, compute)

	var indices [4]int
	for id := 0; id < 4; id++ {
		idx, err := g.AddVertex(diamondState{id: id, succ: adjacency})
		require.NoError(t, err)
		indices[id] = idx
	}

	return g, indices[0], indices[3]
}

func edgePairs(edges []lazygraph.Edge) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.From, e.To}
	}
	return out
}

func TestRun_BreaksDistanceTieByObstacleCount(t *testing.T) {
	g, start, end := buildDiamondGraph(t)

	sg, err := idp.Run(g, start, end)
	require.NoError(t, err)
	require.True(t, sg.HasOptimalGraph())

	got := edgePairs(sg.OptimalEdges())
	require.ElementsMatch(t, [][2]int{{0, 1}, {1, 3}}, got,
		"the zero-obstacle branch through vertex 1 must win the lexicographic tie-break")
}

// TestIDP_OrderInsensitiveUpToSetEquality checks that the recovered optimal
// edge set doesn't depend on the order Successors() reports a vertex's
// neighbors in: reversing vertex 0's successor list must not change which
// edges end up optimal, only the order forwardDijkstra happens to visit
// them in.
func TestIDP_OrderInsensitiveUpToSetEquality(t *testing.T) {
	shuffled := map[int][]int{
		0: {2, 1},
		1: {3},
		2: {3},
		3: {},
	}

	g1, start1, end1 := buildDiamondGraph(t)
	sg1, err := idp.Run(g1, start1, end1)
	require.NoError(t, err)

	g2, start2, end2 := buildDiamondGraphWithAdjacency(t, shuffled)
	sg2, err := idp.Run(g2, start2, end2)
	require.NoError(t, err)

	got1 := edgePairs(sg1.OptimalEdges())
	got2 := edgePairs(sg2.OptimalEdges())

	less := func(a, b [2]int) bool {
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	}
	if diff := cmp.Diff(got1, got2, cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("optimal edge set changed under successor reordering (-original +shuffled):\n%s", diff)
	}
}

func TestRun_UnreachableEndYieldsEmptySubgraph(t *testing.T) {
	props, err := costvec.NewProps(1, costvec.WithCoordinate(0, 0,
		func(a, b any) int { return a.(int) - b.(int) },
		func(a, b any) any { return a.(int) + b.(int) }))
	require.NoError(t, err)
	arena := costvec.NewArena(props)

	// A graph with no edges at all: two isolated vertices.
	g := lazygraph.New(arena, func(fr, to lazygraph.DomainState, coordinate int) any { return 0 })
	start, err := g.AddVertex(diamondState{id: 0, succ: map[int][]int{0: {}}})
	require.NoError(t, err)
	end, err := g.AddVertex(diamondState{id: 99, succ: map[int][]int{99: {}}})
	require.NoError(t, err)

	sg, err := idp.Run(g, start, end)
	require.NoError(t, err)
	require.False(t, sg.HasOptimalGraph())
}
