package apperror

import "errors"

var (
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrMatchFinished    = errors.New("match is already finished")
	ErrUnknownSession   = errors.New("unknown session")
	ErrAlreadyConnected = errors.New("connection is already in the pool or a match")
	ErrNotFound         = errors.New("not found")
)
