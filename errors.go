package checkers

import "errors"

var (
	ErrInvalidCoordinate = errors.New("checkers: invalid coordinate")
	ErrInvalidFEN        = errors.New("checkers: invalid fen")
	ErrInvalidMoveText   = errors.New("checkers: invalid move text")
	ErrIllegalMove       = errors.New("checkers: illegal move")
	ErrMandatoryCapture  = errors.New("checkers: a capture is available and must be taken")
	ErrMustContinue      = errors.New("checkers: the jumping piece must continue capturing")
	ErrGameOver          = errors.New("checkers: game is over")
)
