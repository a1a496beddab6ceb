package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/entity"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/transport/console"
)

const (
	menuStart       = 1
	menuChangeBoard = 2
)

// State is a step of the turn loop.
type State int

const (
	SelectingBoardSize State = iota
	AwaitingMove
	GameOver
)

func (that State) String() string {
	switch that {
	case SelectingBoardSize:
		return "selecting_board_size"
	case AwaitingMove:
		return "awaiting_move"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

type terminal interface {
	ReadInt() (int, error)
	ReadCoordinates() (int, int, error)

	Menu(defaultSize int)
	MenuError()
	Divider()
	BoardSettings()
	SizeError()
	Heading(size int)
	TurnHeader(mark entity.Mark)
	MoveError(mark entity.Mark)
	Board(game *entity.Game)
	Result(winner entity.Mark)
	Tally(tally *entity.Tally)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	GetTally(ctx context.Context, size int) (*entity.Tally, error)
}

// GameController drives one game from board size selection to the final result.
type GameController struct {
	logger      *slog.Logger
	term        terminal
	results     resultRepo
	defaultSize int

	newID func() string
	now   func() time.Time

	state State
	game  *entity.Game
}

// NewGameController - results may be nil, then finished games are not recorded.
func NewGameController(logger *slog.Logger, term terminal, results resultRepo, defaultSize int) *GameController {
	return &GameController{
		logger:      logger.With("component", "game_controller"),
		term:        term,
		results:     results,
		defaultSize: defaultSize,
		newID:       uuid.NewString,
		now:         time.Now,
		state:       SelectingBoardSize,
	}
}

func (that *GameController) State() State {
	return that.state
}

// Run - plays the game to the end and returns its final state.
func (that *GameController) Run(ctx context.Context) (*entity.Game, error) {
	for that.state != GameOver {
		if err := ctx.Err(); err != nil {
			return that.game, fmt.Errorf("game interrupted: %w", err)
		}

		var err error
		switch that.state {
		case SelectingBoardSize:
			err = that.selectBoardSize()
		case AwaitingMove:
			err = that.awaitMove()
		default:
			err = fmt.Errorf("unexpected %s", that.state)
		}

		if err != nil {
			return that.game, err
		}
	}

	that.finish(ctx)

	return that.game, nil
}

func (that *GameController) selectBoardSize() error {
	selection, err := that.readMenuSelection()
	if err != nil {
		return err
	}

	that.term.Divider()

	size := that.defaultSize
	if selection == menuChangeBoard {
		that.term.BoardSettings()
	}

	for {
		if selection == menuChangeBoard {
			if size, err = that.term.ReadInt(); err != nil {
				if console.IsBadInput(err) {
					that.term.SizeError()
					continue
				}
				return fmt.Errorf("failed to read board size: %w", err)
			}
		}

		game, err := entity.NewGame(that.newID(), size)
		if errors.Is(err, apperror.ErrInvalidConfiguration) && selection == menuChangeBoard {
			that.logger.Debug("rejected board size", "size", size)
			that.term.SizeError()
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		that.game = game
		break
	}

	that.logger = that.logger.With("game_id", that.game.ID)
	that.logger.Info("game started", "size", that.game.Size)

	that.term.Heading(that.game.Size)
	that.term.Board(that.game)
	that.state = AwaitingMove

	return nil
}

func (that *GameController) readMenuSelection() (int, error) {
	that.term.Menu(that.defaultSize)

	for {
		selection, err := that.term.ReadInt()
		if err != nil && !console.IsBadInput(err) {
			return 0, fmt.Errorf("failed to read menu selection: %w", err)
		}

		if err == nil && (selection == menuStart || selection == menuChangeBoard) {
			return selection, nil
		}

		that.term.MenuError()
	}
}

func (that *GameController) awaitMove() error {
	mark := that.game.Turn
	that.term.TurnHeader(mark)

	for {
		row, col, err := that.term.ReadCoordinates()
		if err != nil {
			if console.IsBadInput(err) {
				that.term.MoveError(mark)
				continue
			}
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = that.game.PlaceMark(row-1, col-1)
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.logger.Debug("rejected move", "mark", mark.String(), "row", row, "col", col, "error", err)
			that.term.MoveError(mark)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to place mark: %w", err)
		}

		break
	}

	that.term.Board(that.game)

	if that.game.IsTerminal() {
		that.state = GameOver
	}

	return nil
}

// finish - reports the outcome and records it when a result store is configured.
func (that *GameController) finish(ctx context.Context) {
	winner := that.game.Winner()
	that.term.Result(winner)

	result := entity.NewResult(that.game, that.now())
	that.logger.Info("game finished", "winner", result.Winner, "moves", result.Moves)

	if that.results == nil {
		return
	}

	if err := that.results.Save(ctx, result); err != nil {
		that.logger.Error("could not save result", "error", err)
		return
	}

	tally, err := that.results.GetTally(ctx, that.game.Size)
	if err != nil {
		that.logger.Error("could not read results", "error", err)
		return
	}

	that.term.Tally(tally)
}
