package server

import (
	"flock/engine"
	"flock/game"
)

// CreateGamePayload is the request body for creating a game session.
type CreateGamePayload struct {
	LevelID string `json:"level_id"`
}

// PlaceStartPayload is the request body for claiming a start tile.
type PlaceStartPayload struct {
	Tile int `json:"tile"`
}

// MovePayload is the request body for committing a stack move.
type MovePayload struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Amount int `json:"amount"`
}

// StatusResponse mirrors engine.Status in JSON form. Winner is null while
// the game is in progress.
type StatusResponse struct {
	SelectingStart      bool         `json:"selecting_start"`
	GameEnded           bool         `json:"game_ended"`
	Winner              *string      `json:"winner"`
	RemainingStartTiles []game.Coord `json:"remaining_start_tiles"`
}

// GameResponse is the full view of a session: static level info plus the
// board snapshot and status record.
type GameResponse struct {
	ID        string         `json:"id"`
	LevelName string         `json:"level_name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Board     []int          `json:"board"`
	Status    StatusResponse `json:"status"`
}

// MovesResponse lists the legal destination indices for one tile.
type MovesResponse struct {
	Tile  int   `json:"tile"`
	Moves []int `json:"moves"`
}

// LevelsResponse lists the available level identifiers.
type LevelsResponse struct {
	Levels []string `json:"levels"`
}

func statusResponse(s engine.Status) StatusResponse {
	resp := StatusResponse{
		SelectingStart:      s.SelectingStart,
		GameEnded:           s.GameEnded,
		RemainingStartTiles: s.RemainingStartTiles,
	}
	if resp.RemainingStartTiles == nil {
		resp.RemainingStartTiles = []game.Coord{}
	}
	if s.GameEnded {
		winner := s.Winner.String()
		resp.Winner = &winner
	}
	return resp
}

func gameResponse(id string, e *engine.Engine) GameResponse {
	return GameResponse{
		ID:        id,
		LevelName: e.LevelName(),
		Width:     e.Width(),
		Height:    e.Height(),
		Board:     e.Snapshot(),
		Status:    statusResponse(e.Status()),
	}
}
