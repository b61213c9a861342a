package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flock/game"
)

func playingState(width int, packed []int, current game.Side) *game.GameState {
	return &game.GameState{
		Board:         game.BoardFromPacked(width, packed),
		Phase:         game.Playing,
		CurrentPlayer: current,
		Won:           game.WinnerNone,
	}
}

func TestFindMoveNoLegalMoves(t *testing.T) {
	// Two single sheep facing each other: nobody can move. An empty move
	// set is a normal outcome, not an error.
	gs := playingState(2, []int{2, 18}, game.SideHuman)

	move, ok := NewMinimax(WithDepth(3)).FindMove(gs)
	require.False(t, ok)
	require.Nil(t, move)
}

func TestFindMoveIsDeterministic(t *testing.T) {
	level, err := game.LoadLevel("meadow")
	require.NoError(t, err)
	gs := game.NewGameState(level)

	m := NewMinimax(WithDepth(3))
	first, ok := m.FindMove(gs)
	require.True(t, ok)
	second, ok := m.FindMove(gs)
	require.True(t, ok)

	require.Equal(t, first, second, "identical inputs must yield identical moves")

	again, ok := NewMinimax(WithDepth(3)).FindMove(gs)
	require.True(t, ok)
	require.Equal(t, first, again, "a fresh searcher must agree too")
}

func TestFindMoveClaimsOpenStartTile(t *testing.T) {
	level, err := game.LoadLevel("pasture")
	require.NoError(t, err)
	gs := game.NewGameState(level)

	move, ok := NewMinimax(WithDepth(2)).FindMove(gs)
	require.True(t, ok)

	place, isPlace := move.(game.PlaceMove)
	require.True(t, isPlace, "start phase searches must produce placements")
	require.Contains(t, level.StartIndexes(), place.At)
}

func TestFindMovePicksTheWinningLine(t *testing.T) {
	// Sliding east to tile 1 walls the AI stack in immediately and wins
	// 3-1; sliding southeast to tile 4 lets the AI out and only ties.
	gs := playingState(3, []int{
		4, 1, 20,
		0, 1, 0,
	}, game.SideHuman)

	move, ok := NewMinimax(WithDepth(6)).FindMove(gs)
	require.True(t, ok)

	stack, isStack := move.(game.StackMove)
	require.True(t, isStack)
	require.Equal(t, 0, stack.From)
	require.Equal(t, 1, stack.To)
}

func TestFindMoveRespectsEvaluationOption(t *testing.T) {
	calls := 0
	counting := func(s game.State) float64 {
		calls++
		return game.EvaluateTiles(s)
	}

	level, err := game.LoadLevel("meadow")
	require.NoError(t, err)
	gs := game.NewGameState(level)

	_, ok := NewMinimax(WithDepth(2), WithEvaluationFn(counting)).FindMove(gs)
	require.True(t, ok)
	require.Positive(t, calls, "the custom heuristic must be consulted at the leaves")
}

func TestSelfPlayTerminates(t *testing.T) {
	level, err := game.LoadLevel("meadow")
	require.NoError(t, err)

	var state game.State = game.NewGameState(level)
	m := NewMinimax(WithDepth(2))

	bound := level.Width() * level.Height()
	moves := 0
	for !state.Ended() {
		move, ok := m.FindMove(state)
		require.True(t, ok, "a non-terminal state always has a move")
		state = state.Play(move)
		moves++
		require.LessOrEqual(t, moves, bound, "every move fills an empty tile, so games are bounded")
	}

	require.NotEqual(t, game.WinnerNone, state.Winner())
}
