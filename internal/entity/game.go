package entity

import (
	"fmt"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/apperror"
)

const (
	MinSize = 2
	// MaxSize keeps the board allocation and its rendering bounded.
	MaxSize = 1000
)

// Game is the state of one N×N game: the board, whose turn it is and how many moves are left.
type Game struct {
	ID        string `json:"id"`
	Size      int    `json:"size"`
	Cells     []Mark `json:"cells"`
	Turn      Mark   `json:"turn"`
	Remaining int    `json:"remaining"`
}

// NewGame - creates an empty size×size game with X to move.
func NewGame(id string, size int) (*Game, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: board size %d is outside %d..%d",
			apperror.ErrInvalidConfiguration, size, MinSize, MaxSize)
	}

	return &Game{
		ID:        id,
		Size:      size,
		Cells:     make([]Mark, size*size),
		Turn:      MarkX,
		Remaining: size * size,
	}, nil
}

// Cell returns the mark at a zero-based position, or Empty when it is off the board.
func (that *Game) Cell(row, col int) Mark {
	if !that.inBounds(row, col) {
		return Empty
	}

	return that.Cells[row*that.Size+col]
}

// PlaceMark - puts the current player's mark at a zero-based position and passes the turn.
func (that *Game) PlaceMark(row, col int) error {
	if that.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(row, col); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	that.Cells[row*that.Size+col] = that.Turn
	that.Turn = that.Turn.Opponent()
	that.Remaining--

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(row, col int) error {
	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOutOfRange, row+1, col+1)
	}

	if that.Cells[row*that.Size+col] != Empty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row+1, col+1)
	}

	return nil
}

func (that *Game) inBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

// IsWinningLineFor reports whether any full row, column or diagonal holds only mark.
func (that *Game) IsWinningLineFor(mark Mark) bool {
	if mark == Empty {
		return false
	}

	n := that.Size
	win := n * int(mark)

	var diag, antiDiag int
	for i := 0; i < n; i++ {
		var row, col int
		for j := 0; j < n; j++ {
			row += int(that.Cells[i*n+j])
			col += int(that.Cells[j*n+i])
		}

		if row == win || col == win {
			return true
		}

		diag += int(that.Cells[i*n+i])
		antiDiag += int(that.Cells[(n-1-i)*n+i])
	}

	return diag == win || antiDiag == win
}

// Winner returns the mark owning a full line, or Empty.
// X is checked first; both marks winning at once is unreachable under alternating play.
func (that *Game) Winner() Mark {
	switch {
	case that.IsWinningLineFor(MarkX):
		return MarkX
	case that.IsWinningLineFor(MarkO):
		return MarkO
	default:
		return Empty
	}
}

func (that *Game) IsTerminal() bool {
	return that.Remaining == 0 || that.Winner() != Empty
}

// IsTie reports a full board with no winning line.
func (that *Game) IsTie() bool {
	return that.Remaining == 0 && that.Winner() == Empty
}
