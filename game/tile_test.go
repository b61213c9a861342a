package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, side := range []Side{SideHuman, SideAI} {
		for count := 1; count <= MaxStack; count++ {
			v, err := EncodeTile(count, side)
			require.NoError(t, err)

			got := DecodeTile(v)
			require.Equal(t, TileOccupied, got.Kind)
			require.Equal(t, side, got.Owner)
			require.Equal(t, count, got.Count)
		}
	}
}

func TestEncodeTileSeedStack(t *testing.T) {
	// A freshly claimed start tile packs to 16 + 0*16 + 1 = 17
	v, err := EncodeTile(StartStack, SideHuman)
	require.NoError(t, err)
	require.Equal(t, 17, v)

	require.Equal(t, Tile{Kind: TileOccupied, Owner: SideHuman, Count: 16}, DecodeTile(17))
}

func TestEncodeTileRejectsBadInput(t *testing.T) {
	_, err := EncodeTile(0, SideHuman)
	require.Error(t, err)

	_, err = EncodeTile(MaxStack+1, SideHuman)
	require.Error(t, err)

	_, err = EncodeTile(1, Side(2))
	require.Error(t, err)
}

func TestDecodeTileSpecialValues(t *testing.T) {
	require.Equal(t, TileMissing, DecodeTile(0).Kind)
	require.Equal(t, TileMissing, DecodeTile(-1).Kind, "alternate missing marker normalizes")
	require.Equal(t, TileEmpty, DecodeTile(1).Kind)

	require.Equal(t, Tile{Kind: TileOccupied, Owner: SideHuman, Count: 1}, DecodeTile(2))
	require.Equal(t, Tile{Kind: TileOccupied, Owner: SideAI, Count: 1}, DecodeTile(18))
	require.Equal(t, Tile{Kind: TileOccupied, Owner: SideAI, Count: 16}, DecodeTile(33))
}

func TestTilePacked(t *testing.T) {
	require.Equal(t, 0, Tile{Kind: TileMissing}.Packed())
	require.Equal(t, 1, Tile{Kind: TileEmpty}.Packed())
	require.Equal(t, 24, OccupiedTile(SideAI, 7).Packed())
	require.Equal(t, OccupiedTile(SideAI, 7), DecodeTile(24))
}
