package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/highroad/align"
	"github.com/katalvlaran/highroad/scoring"
)

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

// TestBuild_IdenticalSequences checks the full table for AAA vs AAA.
func TestBuild_IdenticalSequences(t *testing.T) {
	p := align.NewProblem("AAA", "AAA", scoring.New(1, -1, -1))
	m, end, score := align.Build(p)

	want := [][]int{
		{0, -1, -2, -3},
		{0, 1, 0, -1},
		{0, 1, 2, 1},
		{0, 1, 2, 3},
	}
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())
	for x, row := range want {
		assert.Equal(t, row, m.Row(x), "row %d", x)
	}
	assert.Equal(t, 3, end)
	assert.Equal(t, 3, score)
}

// TestBuild_EmptyRow covers a 1×(C+1) table.
func TestBuild_EmptyRow(t *testing.T) {
	p := align.NewProblem("", "AA", scoring.New(7, 3, -1))
	m, end, score := align.Build(p)

	require.Equal(t, 1, m.Rows())
	assert.Equal(t, []int{0, -1, -2}, m.Row(0))
	assert.Equal(t, 0, end)
	assert.Equal(t, 0, score)
}

// TestBuild_EmptyColumn covers an (R+1)×1 table: the left edge stays zero.
func TestBuild_EmptyColumn(t *testing.T) {
	p := align.NewProblem("ACGT", "", scoring.New(1, -1, -5))
	m, end, score := align.Build(p)

	require.Equal(t, 5, m.Rows())
	require.Equal(t, 1, m.Cols())
	for x := 0; x < m.Rows(); x++ {
		assert.Equal(t, 0, m.At(x, 0), "left edge row %d", x)
	}
	assert.Equal(t, 0, end)
	assert.Equal(t, 0, score)
}

// TestBuild_BothEmpty yields a single zero cell.
func TestBuild_BothEmpty(t *testing.T) {
	m, end, score := align.Build(align.NewProblem("", "", scoring.DefaultPolicy()))
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 1, m.Cols())
	assert.Equal(t, 0, m.At(0, 0))
	assert.Zero(t, end)
	assert.Zero(t, score)
}

// TestBuild_MismatchThenMatch is the AC/AG case: cell (2,2) is 0.
func TestBuild_MismatchThenMatch(t *testing.T) {
	p := align.NewProblem("AC", "AG", scoring.New(1, -1, -1))
	m, end, score := align.Build(p)

	assert.Equal(t, []int{0, -1, -2}, m.Row(0))
	assert.Equal(t, []int{0, 1, 0}, m.Row(1))
	assert.Equal(t, []int{0, 0, 0}, m.Row(2))
	assert.Equal(t, 0, m.At(2, 2))
	assert.Equal(t, 2, end, "all-equal last row resolves to the rightmost index")
	assert.Equal(t, 0, score)
}

// TestBuild_PositiveSpaceSeedsTop checks the top edge with a degenerate Space.
func TestBuild_PositiveSpaceSeedsTop(t *testing.T) {
	p := align.NewProblem("A", "CCCC", scoring.New(0, 0, 2))
	m, _, _ := align.Build(p)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, m.Row(0))
	assert.Equal(t, 0, m.At(1, 0))
}

//----------------------------------------------------------------------------//
// BestEndpoint
//----------------------------------------------------------------------------//

// TestBestEndpoint verifies the non-strict scan picks the rightmost maximum.
func TestBestEndpoint(t *testing.T) {
	cases := []struct {
		name string
		row  []int
		want int
	}{
		{"Empty", nil, 0},
		{"Single", []int{-4}, 0},
		{"LeftMax", []int{5, 1, 2}, 0},
		{"RightMax", []int{0, 1, 9}, 2},
		{"TieGoesRight", []int{3, 1, 3, 2}, 2},
		{"AllEqual", []int{0, 0, 0, 0}, 3},
		{"AllNegative", []int{0, -1, -2}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, align.BestEndpoint(tc.row))
		})
	}
}

//----------------------------------------------------------------------------//
// Matrix
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	_, err := align.FromRows(nil)
	assert.ErrorIs(t, err, align.ErrEmptyMatrix)

	_, err = align.FromRows([][]int{{}})
	assert.ErrorIs(t, err, align.ErrEmptyMatrix)

	_, err = align.FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, align.ErrNonRectangular)
}

// TestMatrix_RowIsCopy ensures callers cannot mutate the table through Row.
func TestMatrix_RowIsCopy(t *testing.T) {
	m, err := align.FromRows([][]int{{0, -1}, {0, 1}})
	require.NoError(t, err)

	r := m.Row(1)
	r[1] = 100
	assert.Equal(t, 1, m.At(1, 1))
}

// TestMatrix_AtPanicsOutOfRange documents the slice-like bounds behaviour.
func TestMatrix_AtPanicsOutOfRange(t *testing.T) {
	m, err := align.FromRows([][]int{{0}})
	require.NoError(t, err)
	assert.Panics(t, func() { m.At(1, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
}

// TestMatrix_String renders right-aligned columns.
func TestMatrix_String(t *testing.T) {
	m, err := align.FromRows([][]int{{0, -1, -2}, {0, 1, 10}})
	require.NoError(t, err)
	assert.Equal(t, " 0 -1 -2\n 0  1 10\n", m.String())
}
