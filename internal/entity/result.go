package entity

import "time"

// Result is the recorded outcome of a finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Size       int       `json:"size"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewResult - builds the outcome of a finished game.
func NewResult(game *Game, finishedAt time.Time) *Result {
	winner := PlayerTie
	if mark := game.Winner(); mark != Empty {
		winner = mark.String()
	}

	return &Result{
		GameID:     game.ID,
		Size:       game.Size,
		Winner:     winner,
		Moves:      game.Size*game.Size - game.Remaining,
		FinishedAt: finishedAt,
	}
}

// Tally counts finished games on one board size.
type Tally struct {
	Size int `json:"size"`
	X    int `json:"x"`
	O    int `json:"o"`
	Ties int `json:"ties"`
}
