package align

import (
	"strconv"
	"strings"
)

// Matrix is the dynamic-programming table: Rows() = len(Row)+1 rows and
// Cols() = len(Col)+1 columns of signed scores, stored row-major in one slice.
// It is written only by Build (or FromRows) and read-only afterwards.
type Matrix struct {
	rows, cols int
	cells      []int
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// FromRows copies a rectangular [][]int into a Matrix.
// Mostly useful for feeding hand-made tables to Traceback.
//
// Errors: ErrEmptyMatrix, ErrNonRectangular.
func FromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	m := newMatrix(len(rows), len(rows[0]))
	for x, r := range rows {
		if len(r) != m.cols {
			return nil, ErrNonRectangular
		}
		copy(m.row(x), r)
	}
	return m, nil
}

// Rows returns the number of rows (len(Row)+1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (len(Col)+1).
func (m *Matrix) Cols() int { return m.cols }

// At returns cell (x, y). It panics if the index is outside the table,
// like a slice access would.
func (m *Matrix) At(x, y int) int {
	if x < 0 || x >= m.rows || y < 0 || y >= m.cols {
		panic("align: matrix index out of range")
	}
	return m.cells[x*m.cols+y]
}

// Row returns a copy of row x.
func (m *Matrix) Row(x int) []int {
	out := make([]int, m.cols)
	copy(out, m.row(x))
	return out
}

// row returns the live backing slice of row x.
func (m *Matrix) row(x int) []int {
	return m.cells[x*m.cols : (x+1)*m.cols]
}

// String renders the table with right-aligned columns, one row per line.
func (m *Matrix) String() string {
	width := 1
	for _, v := range m.cells {
		if n := len(strconv.Itoa(v)); n > width {
			width = n
		}
	}
	var sb strings.Builder
	for x := 0; x < m.rows; x++ {
		for y, v := range m.row(x) {
			if y > 0 {
				sb.WriteByte(' ')
			}
			s := strconv.Itoa(v)
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
