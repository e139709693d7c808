package align

import "github.com/katalvlaran/highroad/scoring"

// Default alignment symbols.
const (
	// DefaultGap marks a gap inside the aligned region.
	DefaultGap byte = '-'

	// DefaultBlank pads trailing material that lies outside the chosen
	// endpoint, or row residues left over once the column side is exhausted.
	DefaultBlank byte = ' '
)

// Problem is the immutable context of one run: the two sequences and the
// scoring policy. Build and Traceback must be given the same Problem.
//
// Row is the row sequence (matrix rows, length R); Col is the column
// sequence (matrix columns, length C). Either may be empty.
type Problem struct {
	Row    []byte
	Col    []byte
	Policy scoring.Policy
}

// NewProblem is a convenience constructor for string inputs.
func NewProblem(row, col string, policy scoring.Policy) Problem {
	return Problem{Row: []byte(row), Col: []byte(col), Policy: policy}
}

// Options configures the symbols written by Traceback.
//
// Fields:
//   - Gap:   symbol for a gap within the alignment (default '-').
//   - Blank: symbol for unaligned padding (default ' ').
//
// Gap and Blank must differ (see Validate).
type Options struct {
	Gap   byte
	Blank byte
}

// DefaultOptions returns Options{Gap: '-', Blank: ' '}.
func DefaultOptions() Options {
	return Options{Gap: DefaultGap, Blank: DefaultBlank}
}

// Validate returns ErrSymbolClash when Gap and Blank are the same symbol.
func (o Options) Validate() error {
	if o.Gap == o.Blank {
		return ErrSymbolClash
	}
	return nil
}

// Move is one column of the finished alignment, tagged by how it was produced.
type Move uint8

const (
	// MoveUp: row residue opposite a gap in the column sequence.
	MoveUp Move = iota
	// MoveMatch: diagonal step taken by the exact-match rule.
	MoveMatch
	// MoveMismatch: diagonal step taken by the mismatch rule.
	MoveMismatch
	// MoveLeft: gap in the row sequence opposite a column residue.
	MoveLeft
	// MoveRowFlush: leading row residue opposite Blank (column side exhausted).
	MoveRowFlush
	// MoveColFlush: Gap opposite a leading column residue (row side exhausted).
	MoveColFlush
	// MoveTail: Blank opposite a column residue beyond the endpoint.
	MoveTail
)

var moveNames = [...]string{
	MoveUp:       "up",
	MoveMatch:    "match",
	MoveMismatch: "mismatch",
	MoveLeft:     "left",
	MoveRowFlush: "row-flush",
	MoveColFlush: "col-flush",
	MoveTail:     "tail",
}

func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return "unknown"
}

// Alignment is the output of Traceback. Row and Col have equal length and
// read start-to-end; Moves[i] describes column i.
type Alignment struct {
	Row   string
	Col   string
	Moves []Move
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int { return len(a.Moves) }

// Result bundles everything Align produces.
type Result struct {
	Alignment

	Score  int     // value of the best cell on the last row
	End    int     // column index of that cell
	Matrix *Matrix // full table, kept for inspection
}

// Stats summarises the columns of an alignment.
type Stats struct {
	Length     int
	Matches    int // diagonal columns with identical residues
	Mismatches int // diagonal columns with different residues
	Gaps       int // columns holding a Gap symbol
	Blanks     int // columns holding a Blank symbol
}

// Identity returns Matches/Length, or 0 for an empty alignment.
func (s Stats) Identity() float64 {
	if s.Length == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Length)
}

// Stats classifies each column by its Move, comparing residues on the
// diagonal so that mismatch-rule steps over equal residues count as matches.
func (a Alignment) Stats() Stats {
	st := Stats{Length: len(a.Moves)}
	for i, mv := range a.Moves {
		switch mv {
		case MoveMatch, MoveMismatch:
			if a.Row[i] == a.Col[i] {
				st.Matches++
			} else {
				st.Mismatches++
			}
		case MoveUp, MoveLeft, MoveColFlush:
			st.Gaps++
		case MoveRowFlush, MoveTail:
			st.Blanks++
		}
	}
	return st
}
