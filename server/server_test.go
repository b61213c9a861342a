package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	cfg := &Config{Host: "127.0.0.1", Port: "0", SearchDepth: 2}
	return New(cfg).App()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func createGame(t *testing.T, app *fiber.App, levelID string) GameResponse {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/games", CreateGamePayload{LevelID: levelID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var g GameResponse
	require.NoError(t, json.Unmarshal(body, &g))
	return g
}

func TestListLevels(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/levels", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var levels LevelsResponse
	require.NoError(t, json.Unmarshal(body, &levels))
	require.Equal(t, []string{"meadow", "pasture", "ridge"}, levels.Levels)
}

func TestCreateGame(t *testing.T) {
	app := newTestApp()
	g := createGame(t, app, "meadow")

	require.NotEmpty(t, g.ID)
	require.Equal(t, "Meadow", g.LevelName)
	require.Equal(t, 5, g.Width)
	require.Equal(t, 5, g.Height)
	require.Len(t, g.Board, 25)
	require.True(t, g.Status.SelectingStart)
	require.False(t, g.Status.GameEnded)
	require.Nil(t, g.Status.Winner)
	require.Len(t, g.Status.RemainingStartTiles, 2)
}

func TestCreateGameUnknownLevel(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/games", CreateGamePayload{LevelID: "nope"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetGameNotFound(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/api/games/unknown", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStartTileFlow(t *testing.T) {
	app := newTestApp()
	g := createGame(t, app, "meadow")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/games/"+g.ID+"/start-tile", PlaceStartPayload{Tile: 2})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode, "tile 2 is not a start tile")

	resp, body := doJSON(t, app, http.MethodPost, "/api/games/"+g.ID+"/start-tile", PlaceStartPayload{Tile: 1})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated GameResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	require.False(t, updated.Status.SelectingStart, "the AI claims the remaining tile before replying")
	require.Empty(t, updated.Status.RemainingStartTiles)
	require.Equal(t, 17, updated.Board[1])
	require.Equal(t, 33, updated.Board[23])
}

func TestMoveFlow(t *testing.T) {
	app := newTestApp()
	g := createGame(t, app, "meadow")

	doJSON(t, app, http.MethodPost, "/api/games/"+g.ID+"/start-tile", PlaceStartPayload{Tile: 1})

	resp, body := doJSON(t, app, http.MethodGet, "/api/games/"+g.ID+"/moves/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var moves MovesResponse
	require.NoError(t, json.Unmarshal(body, &moves))
	require.NotEmpty(t, moves.Moves)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/games/"+g.ID+"/move",
		MovePayload{From: 1, To: moves.Moves[0], Amount: 16})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode, "a move must leave a sheep behind")

	resp, body = doJSON(t, app, http.MethodPost, "/api/games/"+g.ID+"/move",
		MovePayload{From: 1, To: moves.Moves[0], Amount: 8})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated GameResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Equal(t, 9, updated.Board[1], "8 of 16 sheep left the tile")
	require.Equal(t, 9, updated.Board[moves.Moves[0]])
}

func TestMovesForUnownedTile(t *testing.T) {
	app := newTestApp()
	g := createGame(t, app, "meadow")
	doJSON(t, app, http.MethodPost, "/api/games/"+g.ID+"/start-tile", PlaceStartPayload{Tile: 1})

	// Tile 23 belongs to the AI; the query succeeds with an empty set.
	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/games/%s/moves/%d", g.ID, 23), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var moves MovesResponse
	require.NoError(t, json.Unmarshal(body, &moves))
	require.Empty(t, moves.Moves)
}
