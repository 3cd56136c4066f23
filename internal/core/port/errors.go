package port

import "errors"

var (
	// ErrNotFound is returned when a referenced client, ad space, order,
	// comment or news item does not resolve to an existing record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when an identifier string is malformed.
	ErrInvalidID = errors.New("invalid identifier")
)
