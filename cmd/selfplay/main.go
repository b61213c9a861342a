// selfplay pits two search configurations against each other on every
// built-in level and prints the outcomes. The search is deterministic, so
// one game per level and pairing is enough.
package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"flock/game"
	"flock/searcher"
)

type config struct {
	name  string
	depth int
}

func main() {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	pairings := [][2]config{
		{{name: "shallow", depth: 2}, {name: "deep", depth: 6}},
		{{name: "deep", depth: 6}, {name: "shallow", depth: 2}},
		{{name: "deep", depth: 6}, {name: "deep", depth: 6}},
	}

	fmt.Printf("Running self-play across %d levels...\n", len(game.LevelIDs()))
	for _, levelID := range game.LevelIDs() {
		for _, pairing := range pairings {
			winner, moves := runGame(levelID, pairing)
			fmt.Printf("%-8s %s(%d) vs %s(%d): winner=%s after %d moves\n",
				levelID,
				pairing[0].name, pairing[0].depth,
				pairing[1].name, pairing[1].depth,
				winner, moves)
		}
	}
}

// runGame plays one full game on the level, pairing[0] moving as the human
// side and pairing[1] as the AI side.
func runGame(levelID string, pairing [2]config) (game.Winner, int) {
	level, err := game.LoadLevel(levelID)
	if err != nil {
		panic(err)
	}

	searchers := [2]*searcher.Minimax{
		searcher.NewMinimax(searcher.WithDepth(pairing[0].depth)),
		searcher.NewMinimax(searcher.WithDepth(pairing[1].depth)),
	}

	var state game.State = game.NewGameState(level)
	moves := 0
	for !state.Ended() {
		move, ok := searchers[state.Player()].FindMove(state)
		if !ok {
			break
		}
		state = state.Play(move)
		moves++
	}
	return state.Winner(), moves
}
