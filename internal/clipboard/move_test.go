package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveVerticalSingleKey(t *testing.T) {
	keys := keyList("a", "b", "c")

	out, moved, ok := MoveVertical(keys, selOf(1), 1)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c", "b"}, labels(out))
	assert.Equal(t, []int{2}, moved.Indices())

	out, moved, ok = MoveVertical(keys, selOf(1), -1)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a", "c"}, labels(out))
	assert.Equal(t, []int{0}, moved.Indices())
}

func TestMoveVerticalContiguousBlockKeepsOrder(t *testing.T) {
	keys := keyList("a", "b", "c", "d")

	out, moved, ok := MoveVertical(keys, selOf(1, 2), -1)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c", "a", "d"}, labels(out))
	assert.Equal(t, []int{0, 1}, moved.Indices())

	out, moved, ok = MoveVertical(keys, selOf(1, 2), 1)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "d", "b", "c"}, labels(out))
	assert.Equal(t, []int{2, 3}, moved.Indices())
}

func TestMoveVerticalRefusedAtBounds(t *testing.T) {
	keys := keyList("a", "b", "c")

	_, _, ok := MoveVertical(keys, selOf(0, 2), -1)
	assert.False(t, ok, "any member leaving bounds refuses the whole move")

	_, _, ok = MoveVertical(keys, selOf(2), 1)
	assert.False(t, ok)
}

func TestMoveVerticalRefusedOnStaleSelection(t *testing.T) {
	// A selection index already past the end must refuse, even when the
	// shifted index would land inside the list.
	keys := keyList("a", "b")

	out, moved, ok := MoveVertical(keys, selOf(2), -1)
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, labels(out))
	assert.Equal(t, []int{2}, moved.Indices())
}

func TestMoveHorizontalJumpsOneColumn(t *testing.T) {
	// rows=2: columns are [a b] [c d] [e f], column-major.
	keys := keyList("a", "b", "c", "d", "e", "f")

	out, moved, ok := MoveHorizontal(keys, selOf(0), 2, 1)
	require.True(t, ok)
	assert.Equal(t, []string{"c", "b", "a", "d", "e", "f"}, labels(out))
	assert.Equal(t, []int{2}, moved.Indices())

	out, moved, ok = MoveHorizontal(keys, selOf(4, 5), 2, -1)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "e", "f", "c", "d"}, labels(out))
	assert.Equal(t, []int{2, 3}, moved.Indices())
}

func TestMoveHorizontalRefusedAtBounds(t *testing.T) {
	keys := keyList("a", "b", "c", "d")

	_, _, ok := MoveHorizontal(keys, selOf(1, 3), 2, 1)
	assert.False(t, ok)

	_, _, ok = MoveHorizontal(keys, selOf(1), 2, -1)
	assert.False(t, ok)
}

func TestMoveHorizontalRefusedOnStaleSelection(t *testing.T) {
	keys := keyList("a", "b", "c")

	_, _, ok := MoveHorizontal(keys, selOf(4), 2, -1)
	assert.False(t, ok)
}

func TestSwapPairExchangesExactlyTwo(t *testing.T) {
	keys := keyList("a", "b", "c")

	out, ok := SwapPair(keys, selOf(0, 2))
	require.True(t, ok)
	assert.Equal(t, []string{"c", "b", "a"}, labels(out))
}

func TestSwapPairRefusesOtherSizes(t *testing.T) {
	keys := keyList("a", "b", "c")

	_, ok := SwapPair(keys, selOf(1))
	assert.False(t, ok)

	_, ok = SwapPair(keys, selOf(0, 1, 2))
	assert.False(t, ok)
}
