package transformation

import "errors"

var (
	// ErrImageOutOfRange indicates an image value outside {0..n-1}.
	ErrImageOutOfRange = errors.New("transformation: image out of range")
	// ErrDegreeMismatch indicates two transformations of different degree.
	ErrDegreeMismatch = errors.New("transformation: degree mismatch")
	// ErrEmptyGenerators indicates an empty generating set.
	ErrEmptyGenerators = errors.New("transformation: generating set is empty")
	// ErrInvalidDegree indicates a non-positive degree for a standard generating set.
	ErrInvalidDegree = errors.New("transformation: degree must be positive")
	// ErrSyntax indicates unparsable transformation text.
	ErrSyntax = errors.New("transformation: syntax error")
)
