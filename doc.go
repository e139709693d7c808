// Package highroad is a small toolkit for pairwise sequence alignment with a
// deterministic, reproducible traceback.
//
// 🚀 What is highroad?
//
//	A Needleman–Wunsch style aligner for two symbol sequences (usually DNA)
//	under a linear match / mismatch / space scoring. Leading residues of the
//	row sequence and trailing residues of the column sequence are free, and
//	exactly one optimal alignment is produced, chosen by a fixed "highroad"
//	tie-break.
//
// ✨ Why highroad?
//
//   - Deterministic – same input, byte-identical output
//   - Three symbol classes – residues, gaps ('-') and blank padding (' ')
//   - Small API – Build, Traceback, Align
//   - Batteries – FASTA/plain input, YAML config, coloured output, TUI viewer
//
// Packages:
//
//	scoring/       — the linear scoring Policy (match, mismatch, space)
//	align/         — matrix builder, traceback, Align, sentinel errors
//	seqio/         — read the sequence pair / scores, write the result
//	config/        — YAML run configuration
//	render/        — lipgloss rendering, ruler and wrapping
//	tui/           — bubbletea viewer for long alignments
//	cmd/highroad/  — the command-line tool
//
// Quick example:
//
//	$ printf 'AC\nAG\n' > pair.txt
//	$ highroad pair.txt 1 -1 -1
//	AC
//	AG
//	0
//
//	go get github.com/katalvlaran/highroad
package highroad
