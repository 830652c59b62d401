package semigroup

import "errors"

var (
	// ErrLimitExceeded indicates that enumeration produced more elements than allowed.
	ErrLimitExceeded = errors.New("semigroup: element limit exceeded")
	// ErrPositionOutOfRange indicates an element position outside the enumerated semigroup.
	ErrPositionOutOfRange = errors.New("semigroup: position out of range")
	// ErrGeneratorOutOfRange indicates a word letter that is not a generator index.
	ErrGeneratorOutOfRange = errors.New("semigroup: generator index out of range")
	// ErrEmptyWord indicates a word of length zero, which denotes no semigroup element.
	ErrEmptyWord = errors.New("semigroup: empty word")
)
