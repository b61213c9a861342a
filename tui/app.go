package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"flock/engine"
	"flock/game"
)

// UI drives one game session through the engine boundary. All engine calls
// happen on the tview event loop, so the search blocks input until the AI
// has moved - which is the synchronous contract the engine expects.
type UI struct {
	app   *tview.Application
	eng   *engine.Engine
	board *BoardView
	info  *tview.TextView
	prefs *Prefs

	cursor  int
	source  int // selected source tile, -1 when none
	pending int // selected destination, -1 when none
	amount  int
	targets []int
}

// Run starts a game on the given level and hands the terminal to the UI
// until the user quits.
func Run(levelID string, depth int) error {
	prefs, err := InitPrefs()
	if err != nil {
		return fmt.Errorf("cannot load preferences: %w", err)
	}

	eng, err := engine.New(levelID, engine.WithSearchDepth(depth))
	if err != nil {
		return err
	}

	ui := &UI{
		app:     tview.NewApplication(),
		eng:     eng,
		board:   NewBoardView(prefs, eng.Width(), eng.Height()),
		info:    tview.NewTextView(),
		prefs:   prefs,
		source:  -1,
		pending: -1,
	}
	ui.info.SetDynamicColors(true)
	ui.cursor = ui.firstExistingTile()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.board.Box(), 0, 3, true).
		AddItem(ui.info, 0, 1, false)

	ui.app.SetInputCapture(ui.handleKey)
	ui.refresh()
	return ui.app.SetRoot(layout, true).Run()
}

func (ui *UI) firstExistingTile() int {
	snapshot := ui.eng.Snapshot()
	for i, v := range snapshot {
		if v != 0 {
			return i
		}
	}
	return 0
}

func (ui *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		ui.moveCursor(0, -1)
	case tcell.KeyDown:
		ui.moveCursor(0, 1)
	case tcell.KeyLeft:
		ui.moveCursor(-1, 0)
	case tcell.KeyRight:
		ui.moveCursor(1, 0)
	case tcell.KeyEnter:
		ui.confirm()
	case tcell.KeyEscape:
		ui.clearSelection()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			ui.app.Stop()
			return nil
		case '+', '=':
			ui.adjustAmount(1)
		case '-':
			ui.adjustAmount(-1)
		}
	default:
		return event
	}
	ui.refresh()
	return nil
}

func (ui *UI) moveCursor(dx, dy int) {
	width, height := ui.eng.Width(), ui.eng.Height()
	x, y := ui.cursor%width+dx, ui.cursor/width+dy
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	ui.cursor = y*width + x
}

// confirm advances the interaction state machine: claim a start tile, pick a
// source, pick a destination, or commit the pending move.
func (ui *UI) confirm() {
	status := ui.eng.Status()
	switch {
	case status.GameEnded:
		return
	case status.SelectingStart:
		if err := ui.eng.PlaceStartTile(ui.cursor); err != nil {
			return
		}
		ui.eng.AdvanceAI()
	case ui.pending >= 0 && ui.cursor == ui.pending:
		if err := ui.eng.CommitMove(ui.source, ui.pending, ui.amount); err != nil {
			return
		}
		ui.clearSelection()
		ui.eng.AdvanceAI()
	case ui.source >= 0 && ui.isTarget(ui.cursor):
		ui.pending = ui.cursor
		ui.amount = 1
	default:
		moves := ui.eng.MovesFrom(ui.cursor)
		if len(moves) == 0 {
			return
		}
		ui.source = ui.cursor
		ui.targets = moves
		ui.pending = -1
	}
}

func (ui *UI) clearSelection() {
	ui.source = -1
	ui.pending = -1
	ui.targets = nil
	ui.amount = 1
}

func (ui *UI) isTarget(i int) bool {
	for _, t := range ui.targets {
		if t == i {
			return true
		}
	}
	return false
}

func (ui *UI) adjustAmount(delta int) {
	if ui.pending < 0 {
		return
	}
	max := game.DecodeTile(ui.eng.Snapshot()[ui.source]).Count - 1
	ui.amount += delta
	if ui.amount < 1 {
		ui.amount = 1
	}
	if ui.amount > max {
		ui.amount = max
	}
}

func (ui *UI) refresh() {
	status := ui.eng.Status()
	ui.board.Update(ui.eng.Snapshot(), ui.cursor, ui.source, ui.targets, status.RemainingStartTiles)
	ui.info.SetText(ui.statusText(status))
}

func (ui *UI) statusText(status engine.Status) string {
	var text string
	text += fmt.Sprintf("[white::b]%s[-:-:-]\n", ui.eng.LevelName())
	switch {
	case status.GameEnded:
		text += fmt.Sprintf("Game over - winner: [::b]%s[-:-:-]\n", status.Winner)
		text += "Press q to quit\n"
	case status.SelectingStart:
		text += fmt.Sprintf("Claim a start tile (%d open) - arrows to move, Enter to claim\n",
			len(status.RemainingStartTiles))
	case ui.pending >= 0:
		text += fmt.Sprintf("Moving [::b]%d[-:-:-] sheep - +/- to adjust, Enter to commit, Esc to cancel\n", ui.amount)
	case ui.source >= 0:
		text += "Pick a destination - Enter to select, Esc to cancel\n"
	default:
		text += "Your turn - Enter on one of your stacks to move it\n"
	}
	return text
}
