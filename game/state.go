package game

import "fmt"

// Phase is the stage of the game state machine.
type Phase int

const (
	SelectingStart Phase = iota // start tiles are still being claimed
	Playing
	Ended
)

func (p Phase) String() string {
	switch p {
	case SelectingStart:
		return "selecting-start"
	case Playing:
		return "playing"
	default:
		return "ended"
	}
}

// GameState is the dynamic state of one game: the board plus phase metadata.
// The static level template stays untouched; the state owns its own board.
type GameState struct {
	Board         *Board
	Phase         Phase
	CurrentPlayer Side
	OpenStarts    []int // start-tile indices not yet claimed, in template order
	Won           Winner
}

// NewGameState instantiates a fresh state from a level template. The human
// claims the first start tile.
func NewGameState(level *Level) *GameState {
	return &GameState{
		Board:         level.NewBoard(),
		Phase:         SelectingStart,
		CurrentPlayer: SideHuman,
		OpenStarts:    level.StartIndexes(),
		Won:           WinnerNone,
	}
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	openCopy := make([]int, len(gs.OpenStarts))
	copy(openCopy, gs.OpenStarts)
	return &GameState{
		Board:         gs.Board.Copy(),
		Phase:         gs.Phase,
		CurrentPlayer: gs.CurrentPlayer,
		OpenStarts:    openCopy,
		Won:           gs.Won,
	}
}

// Player returns the side to move.
func (gs *GameState) Player() Side {
	return gs.CurrentPlayer
}

// Ended reports whether the game is over.
func (gs *GameState) Ended() bool {
	return gs.Phase == Ended
}

// Winner returns the outcome, WinnerNone while the game is in progress.
func (gs *GameState) Winner() Winner {
	return gs.Won
}

// candidateAmounts are the stack splits the move enumeration offers: one
// sheep, half the movable stack, or everything movable.
func candidateAmounts(max int) []int {
	amounts := []int{1}
	if half := max / 2; half > 1 {
		amounts = append(amounts, half)
	}
	if max > 1 {
		amounts = append(amounts, max)
	}
	return amounts
}

// LegalMoves returns all legal moves for the current player. During the
// start phase every open start tile is a placement; during play each
// from/to pair expands into the candidate split amounts. The order is
// deterministic: tiles ascending, directions in their fixed order, amounts
// ascending.
func (gs *GameState) LegalMoves() []Move {
	switch gs.Phase {
	case SelectingStart:
		moves := make([]Move, 0, len(gs.OpenStarts))
		for _, at := range gs.OpenStarts {
			moves = append(moves, PlaceMove{At: at})
		}
		return moves
	case Playing:
		var moves []Move
		for _, sm := range gs.Board.AllMoves(gs.CurrentPlayer) {
			for _, amount := range candidateAmounts(sm.MaxAmount) {
				moves = append(moves, StackMove{
					From:      sm.From,
					To:        sm.To,
					Amount:    amount,
					MaxAmount: sm.MaxAmount,
				})
			}
		}
		return moves
	default:
		return nil
	}
}

// PlaceStart claims the start tile at index at for side: the tile must be a
// still-open start tile. It seeds a full stack and removes the tile from the
// open set. Violations are rejected without touching the board.
func (gs *GameState) PlaceStart(at int, side Side) error {
	if gs.Phase != SelectingStart {
		return fmt.Errorf("cannot place start tile: phase is %s", gs.Phase)
	}
	open := -1
	for i, idx := range gs.OpenStarts {
		if idx == at {
			open = i
			break
		}
	}
	if open < 0 {
		return fmt.Errorf("cannot place start tile: tile %d is not an open start tile", at)
	}
	if gs.Board.At(at).Kind != TileEmpty {
		return fmt.Errorf("cannot place start tile: tile %d is not empty", at)
	}
	gs.Board.Set(at, OccupiedTile(side, StartStack))
	gs.OpenStarts = append(gs.OpenStarts[:open], gs.OpenStarts[open+1:]...)
	return nil
}

// MoveStack slides amount sheep from one tile to another for side. The
// source must be owned by side with amount in [1, count-1], and the
// destination must be empty. Violations are rejected without touching the
// board, so an inconsistent state can never be produced here.
func (gs *GameState) MoveStack(from, to, amount int, side Side) error {
	if gs.Phase != Playing {
		return fmt.Errorf("cannot move stack: phase is %s", gs.Phase)
	}
	src := gs.Board.At(from)
	if src.Kind != TileOccupied || src.Owner != side {
		return fmt.Errorf("cannot move stack: tile %d is not owned by %s", from, side)
	}
	if amount < 1 || amount >= src.Count {
		return fmt.Errorf("cannot move stack: amount %d outside [1,%d]", amount, src.Count-1)
	}
	if gs.Board.At(to).Kind != TileEmpty {
		return fmt.Errorf("cannot move stack: tile %d is not empty", to)
	}
	gs.Board.Set(from, OccupiedTile(side, src.Count-amount))
	gs.Board.Set(to, OccupiedTile(side, amount))
	return nil
}

// Play applies a legal move and returns the resulting state. The input state
// is never mutated. Callers are expected to pick moves from LegalMoves or to
// pre-validate; an illegal move here is a programmer error.
func (gs *GameState) Play(m Move) State {
	next := gs.Copy()
	mover := next.CurrentPlayer

	switch mv := m.(type) {
	case PlaceMove:
		if err := next.PlaceStart(mv.At, mover); err != nil {
			panic(err)
		}
		if len(next.OpenStarts) > 0 {
			next.CurrentPlayer = mover.Opponent()
			return next
		}
		next.Phase = Playing
	case StackMove:
		if err := next.MoveStack(mv.From, mv.To, mv.Amount, mover); err != nil {
			panic(err)
		}
	default:
		panic(fmt.Sprintf("unknown move type %T", m))
	}

	next.advanceTurn(mover)
	return next
}

// advanceTurn hands the turn to the opponent of the side that just moved. An
// immobile opponent is skipped (implicit pass); if both sides are immobile
// in the same evaluation pass the game ends and the winner is computed.
func (gs *GameState) advanceTurn(moved Side) {
	opponent := moved.Opponent()
	switch {
	case gs.Board.HasMoves(opponent):
		gs.CurrentPlayer = opponent
	case gs.Board.HasMoves(moved):
		gs.CurrentPlayer = moved
	default:
		gs.Phase = Ended
		gs.Won = gs.ComputeWinner()
	}
}

// ComputeWinner compares controlled tiles per side: strictly more wins,
// equal counts tie. Only meaningful once both sides are immobile.
func (gs *GameState) ComputeWinner() Winner {
	return WinnerOf(gs.Board)
}

// WinnerOf decides a finished board by tile count.
func WinnerOf(b *Board) Winner {
	human, ai := b.TileCounts()
	switch {
	case human > ai:
		return WinnerHuman
	case ai > human:
		return WinnerAI
	default:
		return WinnerTie
	}
}

// RemainingStartCoords returns the still-open start tiles as coordinates.
func (gs *GameState) RemainingStartCoords() []Coord {
	coords := make([]Coord, len(gs.OpenStarts))
	for i, idx := range gs.OpenStarts {
		x, y := gs.Board.Coord(idx)
		coords[i] = Coord{X: x, Y: y}
	}
	return coords
}
