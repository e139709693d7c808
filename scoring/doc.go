// Package scoring defines the linear scoring policy used by the aligner.
//
// What:
//
//   - Policy bundles three signed integers: Match, Mismatch and Space.
//   - Substitute scores a pair of residues (Match if equal, else Mismatch).
//   - Gap scores one residue aligned opposite a gap (Space).
//
// Notes:
//
//   - Equality is the only comparison performed: no case folding and no
//     ambiguity codes (IUPAC N, R, Y … are plain bytes here).
//   - No ordering is enforced between the three values. The usual shape is
//     Match > 0 > Mismatch, Space, but degenerate triples are legal.
//
// Example:
//
//	p := scoring.DefaultPolicy()   // match=1 mismatch=-1 space=-1
//	p.Substitute('A', 'A')         // 1
//	p.Substitute('A', 'C')         // -1
//	p.Gap()                        // -1
package scoring
