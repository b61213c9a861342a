// Package tui is a terminal frontend for playing against the built-in AI.
// It only consumes the engine's boundary operations: snapshots, status
// records, move queries and commits.
package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"flock/game"
)

// BoardView renders the packed board snapshot into a TextView. Rows are
// indented one cell per line so the folded southeast/northwest diagonal
// reads as a straight line on screen.
type BoardView struct {
	box    *tview.TextView
	prefs  *Prefs
	width  int
	height int

	board   []int
	cursor  int
	source  int
	targets []int
	starts  map[int]bool
}

func NewBoardView(prefs *Prefs, width, height int) *BoardView {
	v := &BoardView{
		box:    tview.NewTextView(),
		prefs:  prefs,
		width:  width,
		height: height,
		cursor: 0,
		source: -1,
	}
	v.box.SetDynamicColors(true)
	v.box.SetBorder(true)
	v.box.SetTitle(" flock ")
	return v
}

// Box returns the underlying tview component.
func (v *BoardView) Box() *tview.TextView {
	return v.box
}

// Update redraws the board with the given snapshot and selection state.
func (v *BoardView) Update(board []int, cursor, source int, targets []int, starts []game.Coord) {
	v.board = board
	v.cursor = cursor
	v.source = source
	v.targets = targets
	v.starts = make(map[int]bool, len(starts))
	for _, c := range starts {
		v.starts[c.Y*v.width+c.X] = true
	}
	v.box.SetText(v.render())
}

func (v *BoardView) render() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for y := 0; y < v.height; y++ {
		sb.WriteString(strings.Repeat(" ", y+1))
		for x := 0; x < v.width; x++ {
			sb.WriteString(v.cell(y*v.width + x))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// cell formats one tile as a fixed-width colored token.
func (v *BoardView) cell(i int) string {
	t := game.DecodeTile(v.board[i])
	if t.Kind == game.TileMissing {
		return "    "
	}

	var body, color string
	switch {
	case t.Kind == game.TileEmpty && v.starts[i]:
		body, color = " ◎", "white"
	case t.Kind == game.TileEmpty:
		body, color = " ·", "grey"
	case t.Owner == game.SideHuman:
		body, color = fmt.Sprintf("%2d", t.Count), v.prefs.HumanColor
	default:
		body, color = fmt.Sprintf("%2d", t.Count), v.prefs.AIColor
	}
	if v.isTarget(i) {
		body, color = " ◦", v.prefs.TargetColor
	}

	switch i {
	case v.cursor:
		return fmt.Sprintf("[black:%s]<%s>[-:-]", v.prefs.CursorColor, body)
	case v.source:
		return fmt.Sprintf("[black:%s](%s)[-:-]", v.prefs.TargetColor, body)
	default:
		return fmt.Sprintf("[%s] %s [-]", color, body)
	}
}

func (v *BoardView) isTarget(i int) bool {
	for _, t := range v.targets {
		if t == i {
			return true
		}
	}
	return false
}
