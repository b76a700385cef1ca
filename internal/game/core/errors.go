package core

import "errors"

var (
	ErrInvalidSide   = errors.New("invalid side")
	ErrUnknownSymbol = errors.New("unknown board symbol")
)
