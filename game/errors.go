package game

import "errors"

var (
	ErrInvalidBoardKind = errors.New("game: invalid board kind")
	ErrInvalidRemoval   = errors.New("game: ring cannot be removed")
	ErrInvalidPlacement = errors.New("game: marble cannot be placed")
	ErrInvalidRequest   = errors.New("game: request does not match game state")
	ErrGameEnded        = errors.New("game: game is over")
	ErrCaptureInvariant = errors.New("game: captured ring holds no marble")
	ErrMalformed        = errors.New("game: malformed data")
	ErrUnknownRules     = errors.New("game: unknown rules")
)
