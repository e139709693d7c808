package align

import "log/slog"

// rule is one traceback transition. The rules are tried in the fixed order
// of the rules table and the first whose test holds is taken; that order is
// the "highroad" tie-break.
type rule struct {
	move   Move
	dx, dy int
	test   func(m *Matrix, p Problem, x, y int) bool
}

var rules = [...]rule{
	// vertical gap: row residue opposite a gap in the column sequence
	{MoveUp, 1, 0, func(m *Matrix, p Problem, x, y int) bool {
		return m.At(x, y)-p.Policy.Gap() == m.At(x-1, y)
	}},
	// exact match on the diagonal
	{MoveMatch, 1, 1, func(m *Matrix, p Problem, x, y int) bool {
		return m.At(x, y)-p.Policy.Match == m.At(x-1, y-1) && p.Policy.IsMatch(p.Row[x-1], p.Col[y-1])
	}},
	// mismatch on the diagonal; residue inequality is not re-checked
	{MoveMismatch, 1, 1, func(m *Matrix, p Problem, x, y int) bool {
		return m.At(x, y)-p.Policy.Mismatch == m.At(x-1, y-1)
	}},
	// horizontal gap: gap in the row sequence opposite a column residue
	{MoveLeft, 0, 1, func(m *Matrix, p Problem, x, y int) bool {
		return m.At(x, y)-p.Policy.Gap() == m.At(x, y-1)
	}},
}

// frontBuffer is filled from the back so that the walk, which runs from the
// alignment's end toward its start, can push each column to the front.
type frontBuffer struct {
	buf  []byte
	head int
}

// newFrontBuffer reserves room for n pushes in front of tail.
func newFrontBuffer(n int, tail []byte) *frontBuffer {
	buf := make([]byte, n+len(tail))
	copy(buf[n:], tail)
	return &frontBuffer{buf: buf, head: n}
}

func (b *frontBuffer) push(c byte) {
	b.head--
	b.buf[b.head] = c
}

func (b *frontBuffer) String() string { return string(b.buf[b.head:]) }

// Traceback walks m from (R, end) back to the matrix edge and returns one
// optimal alignment of p.Row against p.Col.
//
// Walk:
//   - Columns of p.Col past end are not walked. They are appended verbatim to
//     Col, opposite Blank symbols in Row.
//   - While row>0 and col>0 the first matching rule is taken, in order:
//     up (row residue / Gap), match, mismatch, left (Gap / column residue).
//   - If col reaches 0 first, the remaining row residues are emitted opposite
//     Blank. If row reaches 0 first, the remaining column residues are emitted
//     opposite Gap.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrEndpointOutOfRange, ErrSymbolClash
//     for malformed arguments.
//   - *InvariantError (errors.Is ErrTracebackInvariant) when no rule matches.
//     That only happens if m was not built from p; it is logged at error level.
//
// Complexity: O(R + C) time and memory.
func Traceback(m *Matrix, p Problem, end int, opts Options) (Alignment, error) {
	if m == nil {
		return Alignment{}, ErrNilMatrix
	}
	if err := opts.Validate(); err != nil {
		return Alignment{}, err
	}
	r, c := len(p.Row), len(p.Col)
	if m.Rows() != r+1 || m.Cols() != c+1 {
		return Alignment{}, ErrDimensionMismatch
	}
	if end < 0 || end > c {
		return Alignment{}, ErrEndpointOutOfRange
	}

	extra := c - end
	blanks := make([]byte, extra)
	tailMoves := make([]Move, extra)
	for i := range blanks {
		blanks[i] = opts.Blank
		tailMoves[i] = MoveTail
	}

	// every step consumes at least one of row or col
	steps := r + end
	outRow := newFrontBuffer(steps, blanks)
	outCol := newFrontBuffer(steps, p.Col[end:])
	moves := make([]Move, steps+extra)
	copy(moves[steps:], tailMoves)
	head := steps

	emit := func(a, b byte, mv Move) {
		outRow.push(a)
		outCol.push(b)
		head--
		moves[head] = mv
	}

	x, y := r, end
	for x > 0 && y > 0 {
		taken := false
		for i := range rules {
			rl := &rules[i]
			if !rl.test(m, p, x, y) {
				continue
			}
			a, b := opts.Gap, opts.Gap
			if rl.dx == 1 {
				a = p.Row[x-1]
			}
			if rl.dy == 1 {
				b = p.Col[y-1]
			}
			emit(a, b, rl.move)
			x -= rl.dx
			y -= rl.dy
			taken = true
			break
		}
		if !taken {
			err := &InvariantError{Row: x, Col: y, Value: m.At(x, y)}
			slog.Default().Error("traceback invariant violated",
				slog.Int("row", x),
				slog.Int("col", y),
				slog.Int("value", err.Value),
				slog.String("policy", p.Policy.String()),
			)
			return Alignment{}, err
		}
	}

	for ; x > 0; x-- {
		emit(p.Row[x-1], opts.Blank, MoveRowFlush)
	}
	for ; y > 0; y-- {
		emit(opts.Gap, p.Col[y-1], MoveColFlush)
	}

	return Alignment{
		Row:   outRow.String(),
		Col:   outCol.String(),
		Moves: moves[head:],
	}, nil
}
