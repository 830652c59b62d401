package quotient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/centraliser/transformation"
)

var (
	// ErrDegreeMismatch indicates a transformation whose degree differs from
	// the partition's. It wraps transformation.ErrDegreeMismatch.
	ErrDegreeMismatch = fmt.Errorf("quotient: %w", transformation.ErrDegreeMismatch)
	// ErrLiftCount indicates generators and lifts of different lengths.
	ErrLiftCount = errors.New("quotient: generator and lift counts differ")
	// ErrBlockOutOfRange indicates a block index outside the partition.
	ErrBlockOutOfRange = errors.New("quotient: block index out of range")
	// ErrNotPartition indicates blocks that are empty, overlap, or do not cover the domain.
	ErrNotPartition = errors.New("quotient: blocks do not partition the domain")
)
