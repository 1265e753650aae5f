package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation is returned for an operation name or value calc does not know.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingOperand is returned when a binary operation has no B grid.
	ErrMissingOperand = errors.New("operation needs a second matrix")

	// ErrNoProblems is returned by DecodeRequests for a document without problems.
	ErrNoProblems = errors.New("no problems in document")
)

func calcErrorf(op string, err error) error {
	return fmt.Errorf("calc: %s: %w", op, err)
}
