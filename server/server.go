// Package server is a thin HTTP adapter over the engine boundary so a
// browser or other frontend can drive a game. Sessions live in memory only;
// nothing survives a restart.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"

	"flock/engine"
	"flock/game"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultBodyLimit    = 64 * 1024
)

// Server holds the in-memory session registry. Each session is one engine,
// guarded by the registry lock because engines themselves are single-user.
type Server struct {
	cfg   *Config
	mu    sync.Mutex
	games map[string]*engine.Engine
}

func New(cfg *Config) *Server {
	return &Server{
		cfg:   cfg,
		games: make(map[string]*engine.Engine),
	}
}

// App builds the Fiber application with logging middleware and all routes.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} | ${path}\n",
	}))

	api := app.Group("/api")
	api.Get("/levels", s.listLevels)
	api.Post("/games", s.createGame)
	api.Get("/games/:id", s.getGame)
	api.Post("/games/:id/start-tile", s.placeStartTile)
	api.Get("/games/:id/moves/:tile", s.movesFrom)
	api.Post("/games/:id/move", s.commitMove)

	return app
}

func (s *Server) listLevels(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(LevelsResponse{Levels: game.LevelIDs()})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var payload CreateGamePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	e, err := engine.New(payload.LevelID, engine.WithSearchDepth(s.cfg.SearchDepth))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.games[id] = e
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(gameResponse(id, e))
}

func (s *Server) getGame(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[id]
	if !ok {
		return gameNotFound(c, id)
	}
	return c.Status(fiber.StatusOK).JSON(gameResponse(id, e))
}

func (s *Server) placeStartTile(c *fiber.Ctx) error {
	var payload PlaceStartPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[id]
	if !ok {
		return gameNotFound(c, id)
	}
	if err := e.PlaceStartTile(payload.Tile); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	e.AdvanceAI()
	return c.Status(fiber.StatusOK).JSON(gameResponse(id, e))
}

func (s *Server) movesFrom(c *fiber.Ctx) error {
	id := c.Params("id")
	tile, err := c.ParamsInt("tile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tile index",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[id]
	if !ok {
		return gameNotFound(c, id)
	}
	moves := e.MovesFrom(tile)
	if moves == nil {
		moves = []int{}
	}
	return c.Status(fiber.StatusOK).JSON(MovesResponse{Tile: tile, Moves: moves})
}

func (s *Server) commitMove(c *fiber.Ctx) error {
	var payload MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.games[id]
	if !ok {
		return gameNotFound(c, id)
	}
	if err := e.CommitMove(payload.From, payload.To, payload.Amount); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	e.AdvanceAI()
	return c.Status(fiber.StatusOK).JSON(gameResponse(id, e))
}

func gameNotFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fmt.Sprintf("unknown game %q", id),
	})
}
