package template

import "errors"

var (
	// ErrInvalidTemplate reports an attempt to register a nil template function
	ErrInvalidTemplate = errors.New("invalid template function")

	// ErrUnknownResetKind reports an unrecognized reset kind name
	ErrUnknownResetKind = errors.New("unknown reset kind")
)
