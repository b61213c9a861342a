package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"flock/server"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if os.Getenv("FLOCK_DEBUG") == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Load configuration
	cfg := server.LoadConfig()

	// Build app
	app := server.New(cfg).App()

	// Start server
	log.Info().Str("address", cfg.Address()).Msg("listening")
	if err := app.Listen(cfg.Address()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
