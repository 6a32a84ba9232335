package calls

import "errors"

var (
	// ErrMalformedDescriptor reports a descriptor that breaks the invariants
	// of the symbol table, e.g. a constructor without a class.
	ErrMalformedDescriptor = errors.New("malformed descriptor")

	ErrInvalidCall = errors.New("invalid call")
)
