package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/entity"
)

const (
	ruleWidth     = 48
	menuFrameTop  = "||--------------------------------"
	menuFrameBase = "||________________________________"
)

func (that *Console) Menu(defaultSize int) {
	fmt.Fprintf(that.out, "%29s\n\n", "Welcome to TIC TAC TOE!")
	fmt.Fprintln(that.out, menuFrameTop+"||")
	fmt.Fprintln(that.out, menuFrameTop)
	fmt.Fprintf(that.out, "%15s%10s\n", "Menu Options:", "1. START")
	fmt.Fprintf(that.out, "%43s\n", fmt.Sprintf("2. CHANGE BOARD (def. %dx%d)", defaultSize, defaultSize))
	fmt.Fprintln(that.out, menuFrameBase)
	fmt.Fprintln(that.out, menuFrameBase+"||")
	fmt.Fprintf(that.out, "%12s", "select -> ")
}

func (that *Console) MenuError() {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, `"Please select 1 or 2."`)
	fmt.Fprintf(that.out, "%12s", "select -> ")
}

// Divider prints the banner shown between the menu and the game.
func (that *Console) Divider() {
	fmt.Fprintln(that.out)
	for i := 0; i < 9; i++ {
		fill := "X"
		if i%2 == 1 {
			fill = "O"
		}

		line := strings.Repeat(fill, ruleWidth)
		if i == 4 {
			line = strings.Repeat(fill, ruleWidth/2-5) + "HELLO" + strings.Repeat(fill, ruleWidth/2)
		}
		fmt.Fprintln(that.out, line)
	}
	fmt.Fprintln(that.out)
}

func (that *Console) BoardSettings() {
	fmt.Fprintln(that.out, "BOARD SETTINGS")
	fmt.Fprintln(that.out, strings.Repeat("-", ruleWidth))
	fmt.Fprintln(that.out, "(Directions)")
	fmt.Fprintf(that.out, "choose a board with size %d or greater\n", entity.MinSize)
	fmt.Fprintf(that.out, "%d represents a %dx%d playing field\n", entity.MinSize, entity.MinSize, entity.MinSize)
	fmt.Fprintf(that.out, "the largest board is %dx%d\n\n", entity.MaxSize, entity.MaxSize)
	fmt.Fprint(that.out, "Board Size: ")
}

func (that *Console) SizeError() {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, `"Your input was incorrect."`)
	fmt.Fprintln(that.out, `"Please review the instructions carefully."`)
	fmt.Fprintln(that.out)
	fmt.Fprint(that.out, "Board Size: ")
}

func (that *Console) Heading(size int) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(that.out, "%dx%d Tic Tac Toe\n", size, size)
}

func (that *Console) TurnHeader(mark entity.Mark) {
	fmt.Fprintln(that.out)
	fmt.Fprintf(that.out, "PLAYER %s's TURN\n", mark)
	fmt.Fprintln(that.out, `"remember to separate row and column"`)
	fmt.Fprintln(that.out, `"numbers by space"`)
	fmt.Fprintln(that.out)
	that.movePrompt(mark)
}

func (that *Console) movePrompt(mark entity.Mark) {
	fmt.Fprintf(that.out, "Place %s at Position: ", mark)
}

func (that *Console) MoveError(mark entity.Mark) {
	fmt.Fprintln(that.out, `"That position is out of bounds"`)
	fmt.Fprintln(that.out, `"Please refer to the numbers on the playing board"`)
	fmt.Fprintln(that.out)
	that.movePrompt(mark)
}

func (that *Console) Board(game *entity.Game) {
	fmt.Fprint(that.out, RenderBoard(game))
}

// Result prints "<mark> wins" or "Tie".
func (that *Console) Result(winner entity.Mark) {
	fmt.Fprintln(that.out)
	if winner == entity.Empty {
		fmt.Fprintln(that.out, entity.PlayerTie)
		return
	}
	fmt.Fprintf(that.out, "%s wins\n", winner)
}

func (that *Console) Tally(tally *entity.Tally) {
	fmt.Fprintf(that.out, "Results on %dx%d: X %d, O %d, Tie %d\n",
		tally.Size, tally.Size, tally.X, tally.O, tally.Ties)
}
