// Package render turns an align.Alignment into terminal text, optionally
// coloured with lipgloss and wrapped into fixed-width blocks.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/highroad/align"
)

// Ruler symbols.
const (
	RulerMatch    = '|'
	RulerMismatch = '.'
	RulerNone     = ' '
)

// class groups alignment columns for styling.
type class uint8

const (
	classMatch class = iota
	classMismatch
	classGap
	classBlank
)

// Renderer formats alignments. The zero value renders plain, unwrapped
// text; New installs the colour styles.
type Renderer struct {
	color bool
	ruler bool
	width int

	styles [4]lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor enables lipgloss styling of each column class.
func WithColor(on bool) Option { return func(r *Renderer) { r.color = on } }

// WithRuler adds a match ruler line between the two sequences.
func WithRuler(on bool) Option { return func(r *Renderer) { r.ruler = on } }

// WithWidth wraps output into blocks of at most n columns; n <= 0 disables wrapping.
func WithWidth(n int) Option { return func(r *Renderer) { r.width = max(n, 0) } }

// New returns a Renderer with plain, unwrapped output unless options say otherwise.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	r.styles[classMatch] = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")).Bold(true)
	r.styles[classMismatch] = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	r.styles[classGap] = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	r.styles[classBlank] = lipgloss.NewStyle().Background(lipgloss.Color("#303030"))
	for _, o := range opts {
		o(r)
	}
	return r
}

// Wrapped returns a copy of r with the given wrap width.
func (r *Renderer) Wrapped(width int) *Renderer {
	cp := *r
	cp.width = max(width, 0)
	return &cp
}

// Render formats aln as blocks of (row, [ruler], col) lines separated by
// blank lines. Without colour and wrapping it is exactly Row + "\n" + Col.
func (r *Renderer) Render(aln align.Alignment) string {
	n := aln.Len()
	step := r.width
	if step == 0 || step > n {
		step = max(n, 1)
	}
	classes := classify(aln)
	ruler := Ruler(aln)

	var blocks []string
	for lo := 0; ; {
		hi := min(lo+step, n)
		lines := []string{r.paint(aln.Row[lo:hi], classes[lo:hi])}
		if r.ruler {
			lines = append(lines, ruler[lo:hi])
		}
		lines = append(lines, r.paint(aln.Col[lo:hi], classes[lo:hi]))
		blocks = append(blocks, strings.Join(lines, "\n"))
		if lo = hi; lo >= n {
			break
		}
	}
	return strings.Join(blocks, "\n\n")
}

// paint styles runs of equal class together.
func (r *Renderer) paint(s string, classes []class) string {
	if !r.color {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && classes[j] == classes[i] {
			j++
		}
		sb.WriteString(r.styles[classes[i]].Render(s[i:j]))
		i = j
	}
	return sb.String()
}

func classify(aln align.Alignment) []class {
	out := make([]class, len(aln.Moves))
	for i, mv := range aln.Moves {
		switch mv {
		case align.MoveMatch, align.MoveMismatch:
			if aln.Row[i] == aln.Col[i] {
				out[i] = classMatch
			} else {
				out[i] = classMismatch
			}
		case align.MoveUp, align.MoveLeft, align.MoveColFlush:
			out[i] = classGap
		default:
			out[i] = classBlank
		}
	}
	return out
}

// Ruler returns one symbol per column: '|' for identical residues on the
// diagonal, '.' for differing ones, ' ' for gap and blank columns.
func Ruler(aln align.Alignment) string {
	b := make([]byte, len(aln.Moves))
	for i, c := range classify(aln) {
		switch c {
		case classMatch:
			b[i] = RulerMatch
		case classMismatch:
			b[i] = RulerMismatch
		default:
			b[i] = RulerNone
		}
	}
	return string(b)
}
