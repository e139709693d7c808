// Package seqio reads the sequence pair and scoring parameters the aligner
// consumes and writes its result.
//
// Input formats:
//
//   - Plain: line 1 is the row sequence, line 2 the column sequence; any
//     further lines are ignored and a missing line means an empty sequence.
//   - FASTA: detected by a leading '>'; the first record is the row
//     sequence, the second (if any) the column sequence.
//
// Output is three lines: aligned row, aligned column, score.
package seqio
