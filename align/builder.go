package align

// Build fills the dynamic-programming table for p and locates the best
// endpoint on the last row.
//
// Algorithm Outline:
//  1. Let R = len(p.Row), C = len(p.Col). Allocate an (R+1)×(C+1) table of zeros.
//  2. Seed the top edge: M[0][y] = y·Space for y = 1..C.
//     The left edge is NOT seeded: M[x][0] = 0 for every x, so leading
//     row residues are free.
//  3. For x = 1..R, y = 1..C:
//     diag = M[x-1][y-1] + Substitute(Row[x-1], Col[y-1])
//     up   = M[x-1][y]   + Space
//     left = M[x][y-1]   + Space
//     M[x][y] = max(diag, up, left)
//  4. end = BestEndpoint(M[R]); score = M[R][end].
//
// Empty sequences are fine: the table degenerates to 1×(C+1) or (R+1)×1.
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C)
func Build(p Problem) (m *Matrix, end, score int) {
	r, c := len(p.Row), len(p.Col)
	m = newMatrix(r+1, c+1)
	space := p.Policy.Gap()

	top := m.row(0)
	for y := 1; y <= c; y++ {
		top[y] = y * space
	}

	for x := 1; x <= r; x++ {
		prev, curr := m.row(x-1), m.row(x)
		a := p.Row[x-1]
		for y := 1; y <= c; y++ {
			diag := prev[y-1] + p.Policy.Substitute(a, p.Col[y-1])
			up := prev[y] + space
			left := curr[y-1] + space
			curr[y] = max(diag, up, left)
		}
	}

	last := m.row(r)
	end = BestEndpoint(last)
	return m, end, last[end]
}

// BestEndpoint scans row left to right and returns the index of its maximum.
// The comparison is non-strict (best <= current), so among equal maxima the
// rightmost index wins. An empty row yields 0.
func BestEndpoint(row []int) int {
	best := 0
	for i := range row {
		if row[best] <= row[i] {
			best = i
		}
	}
	return best
}
