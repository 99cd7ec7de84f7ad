package spaces

import "errors"

var (
	// ErrUnexpectedOutput is an error that occurs when a query's serialized
	// output cannot be decoded into the expected record shape.
	ErrUnexpectedOutput = errors.New("unexpected query output")
)
