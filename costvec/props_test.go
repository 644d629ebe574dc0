package costvec_test

import (
	"testing"

	"github.com/katalvlaran/idp/costvec"
	"github.com/stretchr/testify/require"
)

func intCompare(a, b any) int { return a.(int) - b.(int) }
func intCombine(a, b any) any { return a.(int) + b.(int) }

// twoCoordProps builds a (distance, obstacle) int-valued Props, matching
// the grid example of spec.md §8.
func twoCoordProps(t *testing.T) costvec.Props {
	t.Helper()
	props, err := costvec.NewProps(2,
		costvec.WithCoordinate(0, 0, intCompare, intCombine),
		costvec.WithCoordinate(1, 0, intCompare, intCombine),
	)
	require.NoError(t, err)
	return props
}

func TestNewProps_IncompleteRegistration(t *testing.T) {
	_, err := costvec.NewProps(2, costvec.WithCoordinate(0, 0, intCompare, intCombine))
	require.ErrorIs(t, err, costvec.ErrIncompleteProps)
}

func TestProps_IdentityIsFreshCopy(t *testing.T) {
	props := twoCoordProps(t)
	id1 := props.Identity()
	id2 := props.Identity()
	id1[0] = 99
	require.Equal(t, 0, id2[0], "mutating one identity copy must not affect another")
}

func TestProps_CompareLexicographic(t *testing.T) {
	props := twoCoordProps(t)

	// (3, 5) vs (3, 2): first coordinate ties, second decides.
	require.Greater(t, props.Compare([]any{3, 5}, []any{3, 2}), 0)
	require.Less(t, props.Compare([]any{2, 9}, []any{3, 0}), 0)
	require.Equal(t, 0, props.Compare([]any{1, 1}, []any{1, 1}))
}

func TestProps_OpAtFillsRestWithIdentity(t *testing.T) {
	props := twoCoordProps(t)
	out := props.OpAt([]any{4, 7}, []any{1, 1}, 0)
	require.Equal(t, 5, out[0])
	require.Equal(t, 0, out[1], "untouched coordinate must be identity, not leftover input")
}

func TestWithCoordinate_PanicsOnOutOfRange(t *testing.T) {
	require.Panics(t, func() {
		_, _ = costvec.NewProps(1, costvec.WithCoordinate(5, 0, intCompare, intCombine))
	})
}
