package apperror

import "errors"

var (
	ErrRoundFinished = errors.New("round is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrDuplicateMark = errors.New("mark is already taken")
	ErrDuplicateName = errors.New("name is already taken")
	ErrInvalidMark   = errors.New("mark must be a single symbol")
)
