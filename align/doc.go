// Package align computes a global alignment with free leading row residues
// and a free column suffix between two byte sequences, and reconstructs one
// optimal alignment with a deterministic "highroad" traceback.
//
// 🚀 What is computed?
//
//	A Needleman–Wunsch table under a linear scoring.Policy, with one twist on
//	the borders: the top row is seeded with y·Space, the left column is all
//	zeros. The best endpoint is the rightmost maximum of the last row, so
//	trailing column residues past it cost nothing and are reported as padding.
//
// ✨ Key features:
//   - Build: the (R+1)×(C+1) table, best endpoint and score
//   - Traceback: ordered rules up → match → mismatch → left, first hit wins
//   - Align: both in one call, returning a Result with per-column Moves
//   - Three symbol classes in the output: residues, Gap ('-'), Blank (' ')
//
// ⚙️ Usage:
//
//	p := align.NewProblem("GATTACA", "GCATGCU", scoring.New(1, -1, -1))
//	res, err := align.Align(p, align.DefaultOptions())
//	if err != nil {
//	  // only ErrSymbolClash, or ErrTracebackInvariant on a defect
//	}
//	fmt.Println(res.Row)
//	fmt.Println(res.Col)
//	fmt.Println(res.Score)
//
// Performance:
//
//   - Build:     O(R·C) time & memory
//   - Traceback: O(R+C) time & memory
//
// Everything is synchronous and deterministic: identical inputs give
// byte-identical outputs.
package align
