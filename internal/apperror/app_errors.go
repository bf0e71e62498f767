package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrInvalidMove    = errors.New("invalid history move")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad command argument")
)
