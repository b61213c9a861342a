// Package searcher picks moves by depth-limited adversarial search: every
// legal move of the searching side is expanded, positions are evaluated down
// to a fixed number of plies alternating maximize/minimize, and the move with
// the best worst-case outcome wins. The search is fully deterministic: moves
// are explored in enumeration order and ties keep the first candidate.
package searcher

import (
	"math"

	"github.com/rs/zerolog/log"

	"flock/game"
)

type Option func(m *Minimax)

// WithDepth overrides the search depth in plies.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn overrides the leaf evaluation heuristic.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// Minimax is a depth-limited alpha-beta searcher over game states. It only
// ever works on state copies produced by Play, so the caller's state is
// never touched.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateTiles,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for the side to play, or false when that
// side has no legal move at all - a normal outcome near the end of a game,
// not an error. During the start phase the legal moves are placements, so
// the same search also picks the start tile to claim.
func (m *Minimax) FindMove(state game.State) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, false
	}

	me := state.Player()
	best := moves[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)

	for _, move := range moves {
		score := m.search(state.Play(move), m.depth-1, alpha, beta, me)
		if score > bestScore {
			bestScore = score
			best = move
		}
		if score > alpha {
			alpha = score
		}
	}

	log.Debug().
		Stringer("side", me).
		Stringer("move", best).
		Float64("score", bestScore).
		Int("branching", len(moves)).
		Msg("search complete")
	return best, true
}

// search evaluates state to the given remaining depth from me's perspective.
// Turn alternation follows the state's current player rather than ply
// parity, because an immobile side is passed over during play.
func (m *Minimax) search(state game.State, depth int, alpha, beta float64, me game.Side) float64 {
	if state.Ended() {
		return terminalScore(state.Winner(), me, depth)
	}
	if depth <= 0 {
		return m.leafScore(state, me)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		// Play never hands the turn to an immobile side during play
		panic("non-terminal state with no legal moves")
	}

	if state.Player() == me {
		best := math.Inf(-1)
		for _, move := range moves {
			score := m.search(state.Play(move), depth-1, alpha, beta, me)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range moves {
		score := m.search(state.Play(move), depth-1, alpha, beta, me)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// leafScore applies the evaluation heuristic, flipping the sign when the
// leaf's side to move is not the searching side: Evaluate scores from the
// current player's perspective.
func (m *Minimax) leafScore(state game.State, me game.Side) float64 {
	score := m.evaluate(state)
	if state.Player() != me {
		return -score
	}
	return score
}

// terminalScore rewards decided positions beyond the heuristic range, with
// the remaining depth as a bonus so earlier wins (and later losses) are
// preferred.
func terminalScore(winner game.Winner, me game.Side, depth int) float64 {
	switch winner {
	case game.Winner(me):
		return Win * (winBase + float64(depth))
	case game.WinnerTie:
		return 0
	default:
		return Loss * (winBase + float64(depth))
	}
}
