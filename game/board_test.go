package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMovesFromSlidesEast(t *testing.T) {
	// Stack of 3 on tile 0, empty tile next to it
	b := BoardFromPacked(2, []int{4, 1})

	require.Equal(t, []int{1}, b.MovesFrom(0))
}

func TestMovesFromOpenBoard(t *testing.T) {
	b := BoardFromPacked(3, []int{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	})

	dests := b.MovesFrom(4)
	require.ElementsMatch(t, []int{0, 1, 3, 5, 7, 8}, dests,
		"center tile slides to the edge in all six directions")
	require.NotContains(t, dests, 4, "a slide never ends on its source")
}

func TestMovesFromStopsBeforeBlockers(t *testing.T) {
	t.Run("occupied tile ends the run", func(t *testing.T) {
		b := BoardFromPacked(5, []int{1, 1, 4, 1, 1})
		require.Equal(t, []int{1}, b.MovesFrom(0))
	})

	t.Run("missing tile ends the run", func(t *testing.T) {
		b := BoardFromPacked(4, []int{4, 1, 0, 1})
		require.Equal(t, []int{1}, b.MovesFrom(0))
	})

	t.Run("immediately blocked direction contributes nothing", func(t *testing.T) {
		b := BoardFromPacked(2, []int{4, 20})
		require.Empty(t, b.MovesFrom(0))
	})
}

func TestMovesFromNeverWrapsRows(t *testing.T) {
	// Tile 2 sits on the east edge; tile 3 is the west edge of the next row
	// and must not be reachable by sliding east.
	b := BoardFromPacked(3, []int{
		1, 1, 4,
		1, 1, 1,
	})

	dests := b.MovesFrom(2)
	require.ElementsMatch(t, []int{0, 5}, dests)
	require.NotContains(t, dests, 3)
}

func TestAllMoves(t *testing.T) {
	b := BoardFromPacked(2, []int{4, 1})

	require.Equal(t, []StackMove{{From: 0, To: 1, Amount: 2, MaxAmount: 2}}, b.AllMoves(SideHuman))
	require.Empty(t, b.AllMoves(SideAI))
}

func TestAllMovesSingleSheepIsImmovable(t *testing.T) {
	// A stack of 1 has nothing to move without vacating the tile
	b := BoardFromPacked(2, []int{2, 1})

	require.Empty(t, b.AllMoves(SideHuman))
	require.False(t, b.HasMoves(SideHuman))
}

func TestHasMoves(t *testing.T) {
	b := BoardFromPacked(2, []int{4, 1})
	require.True(t, b.HasMoves(SideHuman))
	require.False(t, b.HasMoves(SideAI))

	full := BoardFromPacked(2, []int{4, 20})
	require.False(t, full.HasMoves(SideHuman))
	require.False(t, full.HasMoves(SideAI))
}

func TestTileCounts(t *testing.T) {
	b := BoardFromPacked(4, []int{2, 3, 1, 18})

	human, ai := b.TileCounts()
	require.Equal(t, 2, human, "control is per tile, not per sheep")
	require.Equal(t, 1, ai)
}

func TestPackedRoundTrip(t *testing.T) {
	packed := []int{0, 1, 4, 18, 33, 1}
	b := BoardFromPacked(3, packed)

	require.Equal(t, packed, b.Packed())
	require.Equal(t, 2, b.Height)
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := BoardFromPacked(2, []int{4, 1})
	c := b.Copy()
	c.Set(1, OccupiedTile(SideAI, 5))

	require.Equal(t, TileEmpty, b.At(1).Kind, "copy must not alias the original")
}

func TestBoardAtOutOfRange(t *testing.T) {
	b := BoardFromPacked(2, []int{1, 1})

	require.Equal(t, TileMissing, b.At(-1).Kind)
	require.Equal(t, TileMissing, b.At(2).Kind)
}
