package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIllegalMove          = errors.New("illegal move")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrCellOutOfRange       = errors.New("cell is out of range")
	ErrGameFinished         = errors.New("game is already finished")
	ErrInputClosed          = errors.New("input is closed")
	ErrNotFound             = errors.New("not found")
)
