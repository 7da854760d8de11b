package orderbook

import "errors"

var (
	ErrNilOrder        = errors.New("order is nil")
	ErrInvalidQuantity = errors.New("order quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("order price must not be negative")
	ErrOverfill        = errors.New("fill exceeds remaining quantity")
)
