package sparsevec

import (
	"fmt"
)

// ErrLengthMismatch indicates that the two operands of a dot product have
// different lengths.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.Left, e.Right)
}

// ErrInvalidArgumentType indicates that Dot was called with an operand that is
// not a vector of the same representation as the other operand.
//
// Got holds the runtime type of the offending operand.
type ErrInvalidArgumentType struct {
	Got string
}

func (e *ErrInvalidArgumentType) Error() string {
	return fmt.Sprintf("invalid argument type: %s", e.Got)
}

// ErrIndexOutOfRange indicates an index that does not fit the vector
// (or, for bitmap export, does not fit in uint32).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (length %d)", e.Index, e.Length)
}

// ErrInvalidLength indicates a negative vector length.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d", e.Length)
}

func lengthMismatch(left, right int) error {
	return &ErrLengthMismatch{Left: left, Right: right}
}

func invalidArgumentType(v any) error {
	return &ErrInvalidArgumentType{Got: fmt.Sprintf("%T", v)}
}
