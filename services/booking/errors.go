package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")

// InvalidReferenceError indicates a malformed entity reference in the input.
type InvalidReferenceError struct {
	Field string
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s is not a valid entity reference", e.Field)
}
