package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/entity"
)

// RenderBoard draws the board with 1-based column and row numbers:
//
//	  1 2 3
//	1 X|O|
//	  -+-+-
//	2  |X|
//
// Row labels are right-aligned to the widest number so boards above 9x9 stay square.
func RenderBoard(game *entity.Game) string {
	n := game.Size
	labelWidth := len(strconv.Itoa(n))
	margin := strings.Repeat(" ", labelWidth+1)

	var builder strings.Builder
	builder.Grow((n + 1) * 2 * (2*n + labelWidth + 2))

	builder.WriteString("\n")
	builder.WriteString(margin)
	for col := 1; col <= n; col++ {
		builder.WriteString(strconv.Itoa(col))
		builder.WriteString(" ")
	}
	builder.WriteString("\n")

	for row := 0; row < n; row++ {
		label := strconv.Itoa(row + 1)
		builder.WriteString(strings.Repeat(" ", labelWidth-len(label)))
		builder.WriteString(label)
		builder.WriteString(" ")

		for col := 0; col < n; col++ {
			builder.WriteString(game.Cell(row, col).String())
			if col < n-1 {
				builder.WriteString("|")
			}
		}
		builder.WriteString("\n")

		if row < n-1 {
			builder.WriteString(margin)
			builder.WriteString(strings.Repeat("-+", n-1))
			builder.WriteString("-\n")
		}
	}

	return builder.String()
}
