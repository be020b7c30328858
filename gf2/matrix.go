/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gf2

// Matrix wraps a slice of row Vectors, row-major, mirroring the shape of
// data.Matrix ([]Vector) but with GF(2) bit-packed rows instead of big.Int
// coordinates.
//
// The entry at row i, column j is obtained as m[i].Get(j).
type Matrix []Vector

// NewMatrix returns the rows x cols zero matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewVector(cols)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i].Set(i, 1)
	}
	return m
}

// NewMatrixFromRows returns a new Matrix from the given rows.
// It returns ErrDimensionMismatch if the rows are not all the same length.
func NewMatrixFromRows(rows []Vector) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := rows[0].Len()
	for _, r := range rows {
		if r.Len() != cols {
			return nil, ErrDimensionMismatch
		}
	}
	m := make(Matrix, len(rows))
	copy(m, rows)
	return m, nil
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of m.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return m[0].Len()
}

// Get returns the entry at row i, column j.
func (m Matrix) Get(i, j int) int {
	return m[i].Get(j)
}

// Set sets the entry at row i, column j.
func (m Matrix) Set(i, j, bit int) {
	m[i].Set(j, bit)
}

// Copy returns an independent copy of m.
func (m Matrix) Copy() Matrix {
	c := make(Matrix, len(m))
	for i, r := range m {
		c[i] = r.Copy()
	}
	return c
}

// DimsMatch reports whether m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns the i-th column of m as a Vector.
// It returns ErrIndexOutOfRange if i is out of bounds.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return Vector{}, ErrIndexOutOfRange
	}
	col := NewVector(m.Rows())
	for r := 0; r < m.Rows(); r++ {
		col.Set(r, m[r].Get(i))
	}
	return col, nil
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	t := NewMatrix(m.Cols(), m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			t.Set(j, i, m.Get(i, j))
		}
	}
	return t
}

// Add returns the GF(2) sum (entrywise XOR) of m and other.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, ErrDimensionMismatch
	}
	r := make(Matrix, m.Rows())
	for i := range r {
		var err error
		r[i], err = m[i].Add(other[i])
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Mul multiplies m and other and returns the result.
// It returns ErrDimensionMismatch if m.Cols() != other.Rows().
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, ErrDimensionMismatch
	}
	ot := other.Transpose()
	r := NewMatrix(m.Rows(), other.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < other.Cols(); j++ {
			d, _ := m[i].Dot(ot[j])
			r.Set(i, j, d)
		}
	}
	return r, nil
}

// MulVec multiplies m by the column vector v and returns the resulting
// vector. It returns ErrDimensionMismatch if m.Cols() != v.Len().
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != v.Len() {
		return Vector{}, ErrDimensionMismatch
	}
	r := NewVector(m.Rows())
	for i := 0; i < m.Rows(); i++ {
		d, _ := m[i].Dot(v)
		r.Set(i, d)
	}
	return r, nil
}

// Submatrix returns the nrows x ncols submatrix of m starting at (row, col).
// It returns ErrIndexOutOfRange if the requested block falls outside m.
func (m Matrix) Submatrix(row, col, nrows, ncols int) (Matrix, error) {
	if row < 0 || col < 0 || row+nrows > m.Rows() || col+ncols > m.Cols() {
		return nil, ErrIndexOutOfRange
	}
	r := NewMatrix(nrows, ncols)
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			r.Set(i, j, m.Get(row+i, col+j))
		}
	}
	return r, nil
}

// Block builds a matrix from a grid of submatrices, concatenating
// horizontally within each row of blocks and vertically across rows.
// It returns ErrDimensionMismatch if the block dimensions do not align.
func Block(blocks [][]Matrix) (Matrix, error) {
	if len(blocks) == 0 || len(blocks[0]) == 0 {
		return Matrix{}, nil
	}
	blockRows := len(blocks)
	blockCols := len(blocks[0])
	for _, row := range blocks {
		if len(row) != blockCols {
			return nil, ErrDimensionMismatch
		}
	}

	rowHeights := make([]int, blockRows)
	for i, row := range blocks {
		rowHeights[i] = row[0].Rows()
	}
	colWidths := make([]int, blockCols)
	for j := 0; j < blockCols; j++ {
		colWidths[j] = blocks[0][j].Cols()
	}
	for i, row := range blocks {
		for j, b := range row {
			if b.Rows() != rowHeights[i] || b.Cols() != colWidths[j] {
				return nil, ErrDimensionMismatch
			}
		}
	}

	totalRows, totalCols := 0, 0
	for _, h := range rowHeights {
		totalRows += h
	}
	for _, w := range colWidths {
		totalCols += w
	}

	r := NewMatrix(totalRows, totalCols)
	rowOffset := 0
	for i, row := range blocks {
		colOffset := 0
		for j, b := range row {
			for bi := 0; bi < rowHeights[i]; bi++ {
				for bj := 0; bj < colWidths[j]; bj++ {
					r.Set(rowOffset+bi, colOffset+bj, b.Get(bi, bj))
				}
			}
			colOffset += colWidths[j]
		}
		rowOffset += rowHeights[i]
	}
	return r, nil
}

// NonzeroPositions returns the (row, col) coordinates of every 1-entry of m.
func (m Matrix) NonzeroPositions() [][2]int {
	var positions [][2]int
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.Get(i, j) != 0 {
				positions = append(positions, [2]int{i, j})
			}
		}
	}
	return positions
}

// rowReduce performs Gauss-Jordan elimination on a copy of m augmented with
// aug (or no augmentation if aug is nil), returning the reduced echelon form
// of m, the correspondingly-transformed augmentation, and the rank of m.
func rowReduce(m Matrix, aug Matrix) (Matrix, Matrix, int) {
	rows := m.Copy()
	var augRows Matrix
	if aug != nil {
		augRows = aug.Copy()
	}

	rank := 0
	cols := rows.Cols()
	for col := 0; col < cols && rank < rows.Rows(); col++ {
		pivot := -1
		for r := rank; r < rows.Rows(); r++ {
			if rows[r].Get(col) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		if augRows != nil {
			augRows[rank], augRows[pivot] = augRows[pivot], augRows[rank]
		}
		for r := 0; r < rows.Rows(); r++ {
			if r != rank && rows[r].Get(col) != 0 {
				rows[r], _ = rows[r].Add(rows[rank])
				if augRows != nil {
					augRows[r], _ = augRows[r].Add(augRows[rank])
				}
			}
		}
		rank++
	}
	return rows, augRows, rank
}

// Rank returns the rank of m over GF(2).
func (m Matrix) Rank() int {
	_, _, rank := rowReduce(m, nil)
	return rank
}

// IsInvertible reports whether m is square and of full rank, i.e. its
// determinant over GF(2) is nonzero.
func (m Matrix) IsInvertible() bool {
	return m.Rows() == m.Cols() && m.Rank() == m.Rows()
}

// Inverse returns the inverse of m over GF(2).
// It returns ErrDimensionMismatch if m is not square, and ErrSingular if m
// is not invertible.
func (m Matrix) Inverse() (Matrix, error) {
	if m.Rows() != m.Cols() {
		return nil, ErrDimensionMismatch
	}
	n := m.Rows()
	_, inv, rank := rowReduce(m, Identity(n))
	if rank != n {
		return nil, ErrSingular
	}
	return inv, nil
}

// Solve finds a vector x such that m*x = v, using Gaussian elimination over
// GF(2). It returns ErrSingular if no unique solution exists.
func Solve(m Matrix, v Vector) (Vector, error) {
	if m.Rows() != v.Len() {
		return Vector{}, ErrDimensionMismatch
	}
	aug := make(Matrix, m.Rows())
	for i := range aug {
		aug[i] = NewVector(1)
		aug[i].Set(0, v.Get(i))
	}
	reduced, reducedAug, rank := rowReduce(m, aug)
	if rank != m.Cols() || rank != m.Rows() {
		return Vector{}, ErrSingular
	}
	x := NewVector(m.Cols())
	for i := 0; i < rank; i++ {
		// Row i has its pivot in some column; since the matrix is square
		// and full rank, rowReduce leaves row i's pivot at column i.
		_ = reduced
		x.Set(i, reducedAug[i].Get(0))
	}
	return x, nil
}
