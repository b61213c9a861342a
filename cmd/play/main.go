// flock is a terminal application to play the sheep game against the
// built-in AI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"flock/game"
	"flock/searcher"
	"flock/tui"
)

var (
	flagLevel = flag.String("level", "meadow", "Level to play ("+strings.Join(game.LevelIDs(), ", ")+")")
	flagDepth = flag.Int("depth", searcher.DefaultDepth, "AI search depth in plies")
)

func main() {
	flag.Parse()

	// The terminal belongs to the UI; keep log output out of it
	zerolog.SetGlobalLevel(zerolog.Disabled)

	if err := tui.Run(*flagLevel, *flagDepth); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
