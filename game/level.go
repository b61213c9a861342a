package game

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Coord is a position inside the level's bounding rectangle, (0,0) top-left.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Level is a static board template: a name, ragged rows of packed tile
// values, and the coordinates where initial stacks may be placed. Rows may
// use -1 as an alternate "does not exist" marker and may be shorter than the
// widest row; both are normalized when the template is instantiated.
type Level struct {
	Name       string
	Rows       [][]int
	StartTiles []Coord
}

// Width returns the width of the bounding rectangle.
func (l *Level) Width() int {
	w := 0
	for _, row := range l.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the height of the bounding rectangle.
func (l *Level) Height() int {
	return len(l.Rows)
}

// NewBoard instantiates a fresh board from the template. Short rows are
// padded with missing tiles and -1 markers normalize to missing. The
// template itself is never mutated.
func (l *Level) NewBoard() *Board {
	b := NewBoard(l.Width(), l.Height())
	for y, row := range l.Rows {
		for x, v := range row {
			b.Set(b.Index(x, y), DecodeTile(v))
		}
	}
	return b
}

// StartIndexes returns the start-tile coordinates as board indices, in
// template order.
func (l *Level) StartIndexes() []int {
	width := l.Width()
	indexes := make([]int, len(l.StartTiles))
	for i, c := range l.StartTiles {
		indexes[i] = c.Y*width + c.X
	}
	return indexes
}

// copy returns an independent copy so callers can never corrupt the
// registered template.
func (l *Level) copy() *Level {
	rows := make([][]int, len(l.Rows))
	for i, row := range l.Rows {
		rows[i] = make([]int, len(row))
		copy(rows[i], row)
	}
	starts := make([]Coord, len(l.StartTiles))
	copy(starts, l.StartTiles)
	return &Level{Name: l.Name, Rows: rows, StartTiles: starts}
}

// Built-in level templates, keyed by identifier.
var levels = map[string]*Level{
	"meadow": {
		Name: "Meadow",
		Rows: [][]int{
			{0, 1, 1, 1, 0},
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
			{0, 1, 1, 1, 0},
		},
		StartTiles: []Coord{{X: 1, Y: 0}, {X: 3, Y: 4}},
	},
	"pasture": {
		Name: "Pasture",
		Rows: [][]int{
			{-1, -1, 1, 1, 1, -1, -1},
			{-1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1},
			{1, 1, 0, 1, 0, 1, 1},
			{1, 1, 1, 1, 1, 1, 1},
			{-1, 1, 1, 1, 1, 1, -1},
			{-1, -1, 1, 1, 1, -1, -1},
		},
		StartTiles: []Coord{{X: 2, Y: 0}, {X: 0, Y: 2}, {X: 6, Y: 4}, {X: 4, Y: 6}},
	},
	"ridge": {
		Name: "Ridge",
		Rows: [][]int{
			{1, 1, 1, 1, 0, 1, 1, 1},
			{1, 0, 1, 1, 1, 1, 0, 1},
			{1, 1, 1, 0, 1, 1, 1, 1},
		},
		StartTiles: []Coord{{X: 0, Y: 0}, {X: 7, Y: 2}},
	},
}

// LoadLevel returns a fresh copy of the level registered under id. An
// unrecognized id is the one fatal initialization error: there is no game
// without a board.
func LoadLevel(id string) (*Level, error) {
	l, ok := levels[id]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", id)
	}
	return l.copy(), nil
}

// LevelIDs returns the registered level identifiers in sorted order.
func LevelIDs() []string {
	ids := maps.Keys(levels)
	slices.Sort(ids)
	return ids
}
