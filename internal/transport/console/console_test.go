package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadInt(t *testing.T) {
	t.Run("Skips blank lines", func(t *testing.T) {
		// Given: input with leading blank lines
		c := New(strings.NewReader("\n   \n 4 \n"), &bytes.Buffer{})

		// When: an integer is read
		value, err := c.ReadInt()

		// Then: the first non-blank line is parsed
		require.NoError(t, err)
		assert.Equal(t, 4, value)
	})

	t.Run("Not a number", func(t *testing.T) {
		// Given: a word instead of a number
		c := New(strings.NewReader("three\n"), &bytes.Buffer{})

		// When: an integer is read
		_, err := c.ReadInt()

		// Then: the error is one the operator can correct
		require.ErrorIs(t, err, ErrNotANumber)
		assert.True(t, IsBadInput(err))
	})

	t.Run("Too long line is rejected and skipped", func(t *testing.T) {
		// Given: a line far beyond the limit followed by a short one
		long := strings.Repeat("9", 16*MaxLineLength)
		c := New(strings.NewReader(long+"\n7\n"), &bytes.Buffer{})

		// When: two integers are read
		_, err := c.ReadInt()
		require.ErrorIs(t, err, ErrLineTooLong)
		assert.True(t, IsBadInput(err))
		value, err := c.ReadInt()

		// Then: reading continues on the next line
		require.NoError(t, err)
		assert.Equal(t, 7, value)
	})

	t.Run("Input closed", func(t *testing.T) {
		// Given: no input at all
		c := New(strings.NewReader(""), &bytes.Buffer{})

		// When: an integer is read
		_, err := c.ReadInt()

		// Then: ErrInputClosed is returned and is not a correctable error
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.False(t, IsBadInput(err))
	})
}

func TestConsole_ReadCoordinates(t *testing.T) {
	t.Run("Two numbers", func(t *testing.T) {
		c := New(strings.NewReader("2 3\n"), &bytes.Buffer{})

		row, col, err := c.ReadCoordinates()

		require.NoError(t, err)
		assert.Equal(t, 2, row)
		assert.Equal(t, 3, col)
	})

	t.Run("Row and column on separate lines", func(t *testing.T) {
		// Given: the row and the column typed on their own lines
		c := New(strings.NewReader("2\n\n3\n"), &bytes.Buffer{})

		// When: coordinates are read
		row, col, err := c.ReadCoordinates()

		// Then: both values are joined across the lines
		require.NoError(t, err)
		assert.Equal(t, 2, row)
		assert.Equal(t, 3, col)
	})

	t.Run("Extra values carry over to the next read", func(t *testing.T) {
		// Given: three numbers on one line
		c := New(strings.NewReader("1 2 3\n4\n"), &bytes.Buffer{})

		// When: two pairs of coordinates are read
		row, col, err := c.ReadCoordinates()
		require.NoError(t, err)
		nextRow, nextCol, err := c.ReadCoordinates()
		require.NoError(t, err)

		// Then: the third number starts the second pair
		assert.Equal(t, []int{1, 2, 3, 4}, []int{row, col, nextRow, nextCol})
	})

	t.Run("Input closed after the row", func(t *testing.T) {
		// Given: only a row before the input ends
		c := New(strings.NewReader("2\n"), &bytes.Buffer{})

		// When: coordinates are read
		_, _, err := c.ReadCoordinates()

		// Then: ErrInputClosed is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Not a number", func(t *testing.T) {
		c := New(strings.NewReader("a 1\n"), &bytes.Buffer{})

		_, _, err := c.ReadCoordinates()

		require.ErrorIs(t, err, ErrNotANumber)
	})

	t.Run("Bad value drops the rest of its line", func(t *testing.T) {
		// Given: a bad row followed by a column on the same line, then a valid move
		c := New(strings.NewReader("a 1\n3 2\n"), &bytes.Buffer{})

		// When: coordinates are read twice
		_, _, err := c.ReadCoordinates()
		require.ErrorIs(t, err, ErrNotANumber)
		row, col, err := c.ReadCoordinates()

		// Then: the leftover "1" was not taken as the next row
		require.NoError(t, err)
		assert.Equal(t, 3, row)
		assert.Equal(t, 2, col)
	})
}

func TestRenderBoard(t *testing.T) {
	t.Run("Empty 2x2", func(t *testing.T) {
		// Given: a new 2x2 game
		game, err := entity.NewGame("123", 2)
		require.NoError(t, err)

		// When: the board is rendered
		out := RenderBoard(game)

		// Then: headers, blank cells and separators are drawn
		expected := "\n" +
			"  1 2 \n" +
			"1  | \n" +
			"  -+-\n" +
			"2  | \n"
		assert.Equal(t, expected, out)
	})

	t.Run("3x3 with marks", func(t *testing.T) {
		// Given: a 3x3 game after two moves
		game, err := entity.NewGame("123", 3)
		require.NoError(t, err)
		require.NoError(t, game.PlaceMark(0, 0))
		require.NoError(t, game.PlaceMark(1, 2))

		// When: the board is rendered
		out := RenderBoard(game)

		// Then: X and O appear in their cells
		expected := "\n" +
			"  1 2 3 \n" +
			"1 X| | \n" +
			"  -+-+-\n" +
			"2  | |O\n" +
			"  -+-+-\n" +
			"3  | | \n"
		assert.Equal(t, expected, out)
	})

	t.Run("Row labels aligned above nine", func(t *testing.T) {
		// Given: a 10x10 game
		game, err := entity.NewGame("123", 10)
		require.NoError(t, err)

		// When: the board is rendered
		lines := strings.Split(RenderBoard(game), "\n")

		// Then: single digit rows are padded to the width of "10"
		assert.True(t, strings.HasPrefix(lines[2], " 1 "))
		assert.True(t, strings.HasPrefix(lines[len(lines)-2], "10 "))
	})
}

func TestConsole_Result(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		out := &bytes.Buffer{}

		New(strings.NewReader(""), out).Result(entity.MarkO)

		assert.Equal(t, "\nO wins\n", out.String())
	})

	t.Run("Tie", func(t *testing.T) {
		out := &bytes.Buffer{}

		New(strings.NewReader(""), out).Result(entity.Empty)

		assert.Equal(t, "\nTie\n", out.String())
	})
}

func TestConsole_Divider(t *testing.T) {
	out := &bytes.Buffer{}

	New(strings.NewReader(""), out).Divider()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	for _, line := range lines {
		assert.Len(t, line, ruleWidth)
	}
	assert.Contains(t, lines[4], "HELLO")
}
