package picture

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the picture.
	ErrOutOfBounds = errors.New("coordinates outside picture bounds")

	// ErrDimensionMismatch is returned when a copied region does not fit the
	// requested destination placement.
	ErrDimensionMismatch = errors.New("region does not fit destination")

	// ErrUnknownOperation is returned by Lookup for unregistered or malformed
	// operation names.
	ErrUnknownOperation = errors.New("unknown operation")
)

func outOfBounds(row, col, height, width int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, row, col, height, width)
}
