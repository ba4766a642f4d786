package cart

import "errors"

var (
	ErrQuantityInvalid = errors.New("quantity must be at least 1")
	ErrPriceInvalid    = errors.New("unit price must not be negative")
	ErrLineNotFound    = errors.New("no cart line with that item key")
	ErrItemUnavailable = errors.New("menu item does not exist or is not active")
	ErrConflict        = errors.New("cart was modified since it was read")
)
