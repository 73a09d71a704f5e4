package errors

import "errors"

var (
	ErrRecordRejected  = errors.New("game record rejected: expected a 19x19 sgf header")
	ErrRecordNotFound  = errors.New("game record not found")
	ErrRecordCorrupted = errors.New("game record cannot be replayed")
	ErrInvalidPosition = errors.New("position is off the board")
	ErrInternal        = errors.New("internal error")
)
