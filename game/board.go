package game

// Board is the playable grid: a row-major slice of decoded tiles inside the
// level's bounding rectangle. Index i maps to (x, y) via x = i % Width,
// y = i / Width.
type Board struct {
	Width  int
	Height int
	tiles  []Tile
}

// slideDirections are the six hex neighbor offsets of the folded axial
// coordinate system: north, south, east, west, southeast, northwest.
var slideDirections = [6][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, -1},
}

// NewBoard creates a board of the given size with every tile missing.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// BoardFromPacked builds a board from a compact snapshot. The slice length
// must be a multiple of width.
func BoardFromPacked(width int, packed []int) *Board {
	b := NewBoard(width, len(packed)/width)
	for i, v := range packed {
		b.tiles[i] = DecodeTile(v)
	}
	return b
}

// Index converts a coordinate to a tile index.
func (b *Board) Index(x, y int) int {
	return y*b.Width + x
}

// Coord converts a tile index to its coordinate.
func (b *Board) Coord(i int) (x, y int) {
	return i % b.Width, i / b.Width
}

// Size returns the number of cells in the bounding rectangle.
func (b *Board) Size() int {
	return len(b.tiles)
}

// At returns the tile at index i. Out-of-range indices read as missing.
func (b *Board) At(i int) Tile {
	if i < 0 || i >= len(b.tiles) {
		return missingTile
	}
	return b.tiles[i]
}

// Set writes the tile at index i.
func (b *Board) Set(i int, t Tile) {
	b.tiles[i] = t
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	tilesCopy := make([]Tile, len(b.tiles))
	copy(tilesCopy, b.tiles)
	return &Board{
		Width:  b.Width,
		Height: b.Height,
		tiles:  tilesCopy,
	}
}

// Packed returns the compact snapshot form of the board.
func (b *Board) Packed() []int {
	packed := make([]int, len(b.tiles))
	for i, t := range b.tiles {
		packed[i] = t.Packed()
	}
	return packed
}

// MovesFrom returns the destinations reachable from src by sliding across
// empty tiles in each of the six directions. A run stops at the board edge,
// a missing tile, or an occupied tile; the last empty tile visited is the
// destination. Directions that are blocked immediately contribute nothing.
// Bounds are checked in coordinates so a run never wraps across rows.
func (b *Board) MovesFrom(src int) []int {
	var dests []int
	sx, sy := b.Coord(src)
	for _, d := range slideDirections {
		x, y := sx, sy
		last := -1
		for {
			x += d[0]
			y += d[1]
			if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
				break
			}
			i := b.Index(x, y)
			if b.tiles[i].Kind != TileEmpty {
				break
			}
			last = i
		}
		if last >= 0 {
			dests = append(dests, last)
		}
	}
	return dests
}

// AllMoves enumerates every slide available to side, in ascending source
// index then direction order. A stack of exactly 1 cannot move: at most
// Count-1 sheep leave a tile, so at least one always stays behind.
func (b *Board) AllMoves(side Side) []StackMove {
	var moves []StackMove
	for i, t := range b.tiles {
		if t.Kind != TileOccupied || t.Owner != side || t.Count <= 1 {
			continue
		}
		for _, to := range b.MovesFrom(i) {
			moves = append(moves, StackMove{
				From:      i,
				To:        to,
				Amount:    t.Count - 1,
				MaxAmount: t.Count - 1,
			})
		}
	}
	return moves
}

// HasMoves reports whether side has at least one legal slide. Cheaper than
// AllMoves when only mobility matters.
func (b *Board) HasMoves(side Side) bool {
	for i, t := range b.tiles {
		if t.Kind != TileOccupied || t.Owner != side || t.Count <= 1 {
			continue
		}
		if len(b.MovesFrom(i)) > 0 {
			return true
		}
	}
	return false
}

// TileCounts tallies the number of tiles each side controls. Stack sizes are
// irrelevant: control is per tile, not per sheep.
func (b *Board) TileCounts() (human, ai int) {
	for _, t := range b.tiles {
		if t.Kind != TileOccupied {
			continue
		}
		if t.Owner == SideHuman {
			human++
		} else {
			ai++
		}
	}
	return human, ai
}
