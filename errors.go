package flatvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by Get for an index outside [0, Len()).
	// Out-of-range access is an expected caller condition, never a panic.
	ErrOutOfRange = errors.New("flatvec: index out of range")

	// ErrEmpty is returned by Pop on an empty container.
	ErrEmpty = errors.New("flatvec: container is empty")

	// ErrInvalidOffsets is returned by FromParts for an offset index that
	// violates the container invariant.
	ErrInvalidOffsets = errors.New("flatvec: invalid offset index")
)

// EncodeError wraps a failure reported by an Encoder during Push. The
// container is left unchanged when it is returned.
//
// The underlying error can be accessed via errors.Unwrap.
type EncodeError struct {
	cause error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("flatvec: encode failed: %v", e.cause)
}

func (e *EncodeError) Unwrap() error { return e.cause }

// DecodeError wraps a failure reported by a validated Decoder.
//
// The underlying error can be accessed via errors.Unwrap.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("flatvec: decode failed: %v", e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }
