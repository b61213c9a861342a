package game

// Side identifies one of the two competing players.
type Side int

const (
	SideHuman Side = 0
	SideAI    Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideAI
	}
	return SideHuman
}

func (s Side) String() string {
	if s == SideHuman {
		return "human"
	}
	return "ai"
}

// Winner is the outcome of a finished game.
type Winner int

const (
	WinnerNone  Winner = -1 // game still in progress
	WinnerHuman Winner = Winner(SideHuman)
	WinnerAI    Winner = Winner(SideAI)
	WinnerTie   Winner = 2
)

func (w Winner) String() string {
	switch w {
	case WinnerHuman:
		return "human"
	case WinnerAI:
		return "ai"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// State should be immutable - operations on State always return a new copy.
type State interface {
	Player() Side
	LegalMoves() []Move
	Play(Move) State
	Ended() bool
	Winner() Winner
}

// Evaluate scores a game state between -1 and 1 indicating how favorable the
// current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
