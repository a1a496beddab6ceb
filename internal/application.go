package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/config"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/repository"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := openResultStorage(ctx, conf)
		if err != nil {
			// the game is playable without a ledger
			log.Warn("results will not be recorded", "error", err)
		} else {
			defer func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			results = repository.NewResultRepository(redisStorage.Connection)
		}
	}

	term := console.New(in, out)

	controller := tictactoe.NewGameController(logger, term, results, conf.Board.DefaultSize)

	if _, err := controller.Run(ctx); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func openResultStorage(ctx context.Context, conf *config.Config) (*storage.RedisStorage, error) {
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}
