package engine

import "errors"

var (
	ErrMalformedState    = errors.New("malformed state")
	ErrUnknownState      = errors.New("state is not registered")
	ErrDuplicateMove     = errors.New("rules returned a move twice")
	ErrInputCollision    = errors.New("input collision")
	ErrEncodingCollision = errors.New("encoding collision")
	ErrInvalidCode       = errors.New("state code is not a single word")
)
