package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/apperror"
)

// MaxLineLength bounds a single input line; longer lines are discarded whole.
const MaxLineLength = 4096

var (
	ErrNotANumber  = errors.New("input is not a number")
	ErrLineTooLong = errors.New("input line is too long")
)

// Console reads whitespace separated values and writes prompts and boards.
// Values may be spread over several lines, a move can be typed as "1 2" or as "1" and "2".
type Console struct {
	reader  *bufio.Reader
	out     io.Writer
	pending []string
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// readLine - returns the next line, draining it to the end when it exceeds MaxLineLength.
func (that *Console) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, isPrefix, err := that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", apperror.ErrInputClosed
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLength {
				tooLong = true
				line = nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, MaxLineLength)
	}

	return string(line), nil
}

// nextToken - returns the next whitespace separated value, reading more lines as needed.
func (that *Console) nextToken() (string, error) {
	for len(that.pending) == 0 {
		line, err := that.readLine()
		if err != nil {
			return "", err
		}
		that.pending = strings.Fields(line)
	}

	token := that.pending[0]
	that.pending = that.pending[1:]

	return token, nil
}

// readInts - reads count integers; a bad value drops the rest of its line.
func (that *Console) readInts(count int) ([]int, error) {
	values := make([]int, 0, count)
	for len(values) < count {
		token, err := that.nextToken()
		if err != nil {
			return nil, err
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			that.pending = nil
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, token)
		}
		values = append(values, value)
	}

	return values, nil
}

// ReadInt - reads a single integer.
func (that *Console) ReadInt() (int, error) {
	values, err := that.readInts(1)
	if err != nil {
		return 0, err
	}

	return values[0], nil
}

// ReadCoordinates - reads "row column" as typed (1-based).
func (that *Console) ReadCoordinates() (int, int, error) {
	values, err := that.readInts(2)
	if err != nil {
		return 0, 0, err
	}

	return values[0], values[1], nil
}

// IsBadInput reports errors the operator can fix by typing again.
func IsBadInput(err error) bool {
	return errors.Is(err, ErrNotANumber) || errors.Is(err, ErrLineTooLong)
}
