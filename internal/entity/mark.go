package entity

// Mark is the content of a board cell.
//
// The values are signed on purpose: X is +1, O is -1 and an empty cell is 0,
// so a line belongs entirely to a mark exactly when its cells sum to size*mark.
// Any other encoding must replace the sums in Game.IsWinningLineFor with an
// "all cells equal" check.
type Mark int8

const (
	Empty Mark = 0
	MarkX Mark = 1
	MarkO Mark = -1
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "Tie"
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return " "
	}
}

// Opponent returns the mark that plays after this one.
func (that Mark) Opponent() Mark {
	return -that
}
