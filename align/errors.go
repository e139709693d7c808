// SPDX-License-Identifier: MIT
// Package align: sentinel error set.
// Every message is prefixed with "align: ..." and callers match with
// errors.Is. ErrTracebackInvariant is the only failure the engine itself
// can produce on a well-formed call; the rest reject malformed arguments.

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrTracebackInvariant signals that, at some cursor with row>0 and col>0,
	// none of the four traceback rules matched. This cannot happen for a matrix
	// built by Build from the same Problem and indicates a programming defect.
	ErrTracebackInvariant = errors.New("align: traceback invariant violated")

	// ErrDimensionMismatch indicates the matrix shape is not (len(Row)+1)×(len(Col)+1).
	ErrDimensionMismatch = errors.New("align: matrix shape does not match sequences")

	// ErrEndpointOutOfRange indicates an endpoint column outside [0, len(Col)].
	ErrEndpointOutOfRange = errors.New("align: endpoint column out of range")

	// ErrSymbolClash indicates Options.Gap == Options.Blank; the two
	// padding classes must stay distinguishable.
	ErrSymbolClash = errors.New("align: gap and blank symbols must differ")

	// ErrNilMatrix indicates a nil *Matrix was passed to Traceback.
	ErrNilMatrix = errors.New("align: nil matrix")

	// ErrEmptyMatrix indicates FromRows received no rows or an empty first row.
	ErrEmptyMatrix = errors.New("align: matrix must have at least one row and one column")

	// ErrRoundTrip indicates an alignment whose residues do not reproduce
	// the input sequences. It wraps ErrTracebackInvariant.
	ErrRoundTrip = fmt.Errorf("%w: alignment does not reproduce the input", ErrTracebackInvariant)

	// ErrNonRectangular indicates FromRows received rows of differing lengths.
	ErrNonRectangular = errors.New("align: all matrix rows must have the same length")
)

// InvariantError carries the cursor at which traceback could not continue.
// It unwraps to ErrTracebackInvariant.
type InvariantError struct {
	Row   int // cursor row (1-based prefix length of the row sequence)
	Col   int // cursor column (1-based prefix length of the column sequence)
	Value int // matrix value at the cursor
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v at (%d,%d) value=%d", ErrTracebackInvariant, e.Row, e.Col, e.Value)
}

// Unwrap lets errors.Is(err, ErrTracebackInvariant) succeed.
func (e *InvariantError) Unwrap() error { return ErrTracebackInvariant }
