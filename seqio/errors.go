package seqio

import "errors"

var (
	// ErrMissingSequence indicates a FASTA input without any record.
	ErrMissingSequence = errors.New("seqio: no sequence records in input")

	// ErrBadParameter indicates the scoring parameters were not exactly three integers.
	ErrBadParameter = errors.New("seqio: scoring parameters must be three integers (match mismatch space)")
)
