package dualsense

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument flags bad command arguments, detected before any
	// device I/O.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means no matching controller was present at open time.
	ErrNotFound = errors.New("no controller found")

	// ErrTimeout means a bounded read produced no data within the deadline.
	ErrTimeout = errors.New("timed out waiting for report")
)

func argErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
