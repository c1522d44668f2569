package apperror

import "errors"

var (
	ErrInvalidStep  = errors.New("invalid history step")
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidCell  = errors.New("invalid cell index")
)
