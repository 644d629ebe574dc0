package subgraph_test

import (
	"testing"

	"github.com/katalvlaran/idp/costvec"
	"github.com/katalvlaran/idp/lazygraph"
	"github.com/katalvlaran/idp/subgraph"
	"github.com/stretchr/testify/require"
)

// fakeSource is a minimal subgraph.Source double for tests, independent
// of any real lazygraph.Graph.
type fakeSource struct {
	next        map[int][]lazygraph.Edge
	prev        map[int][]lazygraph.Edge
	computeCall []int // records which idx ComputeEdgesAt was called with
}

func (f *fakeSource) GetNextEdges(idx, coordinate int) ([]lazygraph.Edge, error) {
	return f.next[idx], nil
}

func (f *fakeSource) GetPrevEdges(idx, coordinate int) ([]lazygraph.Edge, error) {
	return f.prev[idx], nil
}

func (f *fakeSource) ComputeEdgesAt(idx, coordinate int) error {
	f.computeCall = append(f.computeCall, idx)
	return nil
}

func TestOptimalSubgraph_InitialDelegatesToSource(t *testing.T) {
	src := &fakeSource{next: map[int][]lazygraph.Edge{0: {{From: 0, To: 1}}}}
	sg := subgraph.New(src)
	require.True(t, sg.IsInitial())

	edges, err := sg.GetNextEdges(0, 0)
	require.NoError(t, err)
	require.Equal(t, src.next[0], edges)
	require.Empty(t, src.computeCall, "initial dispatch must not call ComputeEdgesAt")
}

func TestOptimalSubgraph_NotInitialUsesAccumulatedEdges(t *testing.T) {
	src := &fakeSource{next: map[int][]lazygraph.Edge{0: {{From: 0, To: 1}}}}
	sg := subgraph.New(src)
	sg.AddOptimalEdge(lazygraph.Edge{From: 0, To: 2})
	sg.NotInitial()

	edges, err := sg.GetNextEdges(0, 1)
	require.NoError(t, err)
	require.Equal(t, []lazygraph.Edge{{From: 0, To: 2}}, edges)
	require.Equal(t, []int{0}, src.computeCall, "must ensure coordinate is computed on shared edges")
}

func TestOptimalSubgraph_WeightsTrackInfState(t *testing.T) {
	sg := subgraph.New(&fakeSource{})
	require.True(t, sg.IsNextWeightInf(7))

	props, err := costvec.NewProps(1, costvec.WithCoordinate(0, 0,
		func(a, b any) int { return a.(int) - b.(int) },
		func(a, b any) any { return a.(int) + b.(int) }))
	require.NoError(t, err)
	arena := costvec.NewArena(props)
	h := arena.Identity()
	sg.SetNextWeight(7, h)
	require.False(t, sg.IsNextWeightInf(7))

	got, err := sg.GetNextWeight(7)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestOptimalSubgraph_GetWeightNotFound(t *testing.T) {
	sg := subgraph.New(&fakeSource{})
	_, err := sg.GetPrevWeight(3)
	require.ErrorIs(t, err, subgraph.ErrNotFound)
}

func TestOptimalSubgraph_ClearMethodsAreIndependent(t *testing.T) {
	sg := subgraph.New(&fakeSource{})
	sg.AddTempNextEdge(lazygraph.Edge{From: 0, To: 1})
	sg.AddOptimalEdge(lazygraph.Edge{From: 0, To: 1})

	sg.ClearPropagationEdges()
	require.Empty(t, sg.TempNextEdges())
	require.Len(t, sg.OptimalEdges(), 1, "clearing propagation edges must not clear optimal edges")

	sg.ClearOptimalEdges()
	require.Empty(t, sg.OptimalEdges())
}
