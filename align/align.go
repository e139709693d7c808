package align

import "bytes"

// Align runs Build and then Traceback from the best endpoint.
//
// Example:
//
//	p := align.NewProblem("AC", "AG", scoring.DefaultPolicy())
//	res, err := align.Align(p, align.DefaultOptions())
//	// res.Row == "AC", res.Col == "AG", res.Score == 0
func Align(p Problem, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	m, end, score := Build(p)
	aln, err := Traceback(m, p, end, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Alignment: aln, Score: score, End: end, Matrix: m}, nil
}

// Strip removes every Gap and Blank byte from an aligned string.
// It works on raw bytes, so residues outside ASCII survive untouched. For
// sequences that do not themselves contain those symbols it recovers the
// original input.
func Strip(aligned string, opts Options) string {
	out := make([]byte, 0, len(aligned))
	for i := 0; i < len(aligned); i++ {
		if c := aligned[i]; c != opts.Gap && c != opts.Blank {
			out = append(out, c)
		}
	}
	return string(out)
}

// Residues rebuilds the two input sequences from the alignment using Moves,
// so it stays exact even when a sequence contains the Gap or Blank symbol.
func (a Alignment) Residues() (row, col []byte) {
	row = make([]byte, 0, len(a.Moves))
	col = make([]byte, 0, len(a.Moves))
	for i, mv := range a.Moves {
		switch mv {
		case MoveMatch, MoveMismatch:
			row = append(row, a.Row[i])
			col = append(col, a.Col[i])
		case MoveUp, MoveRowFlush:
			row = append(row, a.Row[i])
		case MoveLeft, MoveColFlush, MoveTail:
			col = append(col, a.Col[i])
		}
	}
	return row, col
}

// Verify checks that a reproduces both sequences of p in order.
// A failure wraps ErrTracebackInvariant.
func (a Alignment) Verify(p Problem) error {
	if len(a.Row) != len(a.Moves) || len(a.Col) != len(a.Moves) {
		return ErrRoundTrip
	}
	row, col := a.Residues()
	if !bytes.Equal(row, p.Row) || !bytes.Equal(col, p.Col) {
		return ErrRoundTrip
	}
	return nil
}
