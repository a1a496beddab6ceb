package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/dyn-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/dyn-tictactoe/internal/entity"
)

var ErrResultNotFound = fmt.Errorf("result %w", apperror.ErrNotFound)

const (
	fieldX   = "X"
	fieldO   = "O"
	fieldTie = "tie"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	GetTally(ctx context.Context, size int) (*entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func resultKey(id string) string {
	return "result:" + id
}

func tallyKey(size int) string {
	return fmt.Sprintf("results:%dx%d", size, size)
}

func tallyField(winner string) string {
	switch winner {
	case entity.PlayerX:
		return fieldX
	case entity.PlayerO:
		return fieldO
	default:
		return fieldTie
	}
}

// Save - stores the result and counts it in the tally of its board size.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.GameID), resultJSON, 0)
		pipe.HIncrBy(ctx, tallyKey(result.Size), tallyField(result.Winner), 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// GetTally - returns the number of wins and ties recorded for a board size.
func (that *dbResult) GetTally(ctx context.Context, size int) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, tallyKey(size)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{Size: size}
	for field, value := range fields {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("tally field %s has invalid count %q: %w", field, value, err)
		}

		switch field {
		case fieldX:
			tally.X = count
		case fieldO:
			tally.O = count
		case fieldTie:
			tally.Ties = count
		}
	}

	return tally, nil
}
