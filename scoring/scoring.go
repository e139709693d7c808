package scoring

import "fmt"

// Default scores, matching the classic "1 -1 -1" DNA run.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultSpace    = -1
)

// Policy is an immutable linear scoring scheme.
//
// Fields:
//   - Match:    score added on the diagonal when both residues are equal.
//   - Mismatch: score added on the diagonal when residues differ.
//   - Space:    score added for every residue aligned opposite a gap.
type Policy struct {
	Match    int
	Mismatch int
	Space    int
}

// DefaultPolicy returns Policy{Match: 1, Mismatch: -1, Space: -1}.
func DefaultPolicy() Policy {
	return Policy{Match: DefaultMatch, Mismatch: DefaultMismatch, Space: DefaultSpace}
}

// New returns a Policy from the three scores in (match, mismatch, space) order.
func New(match, mismatch, space int) Policy {
	return Policy{Match: match, Mismatch: mismatch, Space: space}
}

// IsMatch reports whether a and b are the same residue.
func (p Policy) IsMatch(a, b byte) bool { return a == b }

// Substitute returns Match when a == b, Mismatch otherwise.
func (p Policy) Substitute(a, b byte) int {
	if a == b {
		return p.Match
	}
	return p.Mismatch
}

// Gap returns the score of one residue aligned opposite a gap.
func (p Policy) Gap() int { return p.Space }

// String renders the policy for logs and headers.
func (p Policy) String() string {
	return fmt.Sprintf("match=%d mismatch=%d space=%d", p.Match, p.Mismatch, p.Space)
}
