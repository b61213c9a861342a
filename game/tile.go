package game

import "fmt"

// MaxStack is the largest number of sheep a single tile can hold. A start
// tile seeds exactly MaxStack and moves only ever split stacks, so counts
// never grow past it.
const MaxStack = 16

// StartStack is the stack size seeded onto a claimed start tile.
const StartStack = MaxStack

// TileKind tags the three possible states of a board cell.
type TileKind uint8

const (
	TileMissing TileKind = iota // outside the playable region, acts as a wall
	TileEmpty
	TileOccupied
)

// Tile is the decoded state of a single board cell. Owner and Count are only
// meaningful when Kind is TileOccupied.
type Tile struct {
	Kind  TileKind
	Owner Side
	Count int
}

var (
	missingTile = Tile{Kind: TileMissing}
	emptyTile   = Tile{Kind: TileEmpty}
)

// OccupiedTile builds an occupied tile without validating the count. Callers
// inside the package only construct counts already inside [1, MaxStack].
func OccupiedTile(owner Side, count int) Tile {
	return Tile{Kind: TileOccupied, Owner: owner, Count: count}
}

// EncodeTile packs a stack into the compact integer representation used by
// board snapshots: count + owner*16 + 1. Missing tiles pack to 0 and empty
// tiles to 1, so occupied values start at 2.
func EncodeTile(count int, owner Side) (int, error) {
	if count < 1 || count > MaxStack {
		return 0, fmt.Errorf("cannot encode tile: stack count %d outside [1,%d]", count, MaxStack)
	}
	if owner != SideHuman && owner != SideAI {
		return 0, fmt.Errorf("cannot encode tile: invalid owner %d", owner)
	}
	return count + int(owner)*MaxStack + 1, nil
}

// DecodeTile unpacks a compact tile value. Values below 1 decode to a missing
// tile, which also normalizes the -1 marker some level literals use.
func DecodeTile(v int) Tile {
	switch {
	case v <= 0:
		return missingTile
	case v == 1:
		return emptyTile
	default:
		return Tile{
			Kind:  TileOccupied,
			Owner: Side((v - 2) / MaxStack),
			Count: (v-2)%MaxStack + 1,
		}
	}
}

// Packed returns the compact integer form of the tile.
func (t Tile) Packed() int {
	switch t.Kind {
	case TileEmpty:
		return 1
	case TileOccupied:
		return t.Count + int(t.Owner)*MaxStack + 1
	default:
		return 0
	}
}
