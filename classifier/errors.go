package classifier

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports malformed call parameters, e.g. k <= 0.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataFormat reports a feature vector whose dimensionality does not
	// match the query vector.
	ErrDataFormat = errors.New("invalid data format")

	// ErrUninitialized reports classification without training data.
	ErrUninitialized = errors.New("classifier not trained")
)

// DimensionError describes a training example whose feature vector length
// differs from the query vector length.
type DimensionError struct {
	// Index is the position of the offending example in the training set.
	Index    int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: example %d has %d features, query has %d", ErrDataFormat, e.Index, e.Actual, e.Expected)
}

// Unwrap allows errors.Is(err, ErrDataFormat).
func (e *DimensionError) Unwrap() error { return ErrDataFormat }
