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

package boolpoly

import (
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/pkg/errors"
)

// ErrInconsistent is returned when a System has no satisfying assignment.
var ErrInconsistent = errors.New("inconsistent system of equations over GF(2)")

// ErrTooManyBranches is returned when Solve's free-variable count would
// make enumerating every solution impractical; this guards against a
// System built from a self-equivalence family with far less structure than
// the affine attack expects, rather than silently taking forever.
var ErrTooManyBranches = errors.New("too many free variables to enumerate")

// maxFreeVars bounds the number of free variables Solve will branch over.
// The affine attack's systems are expected to leave at most a handful of
// undetermined bits (see spec section 4.4.2); this is generous headroom
// above that.
const maxFreeVars = 24

// System is a set of affine equations p = 0 over a shared Ring.
type System struct {
	ring *Ring
	eqs  []Poly
}

// NewSystem returns an empty System over ring.
func NewSystem(ring *Ring) *System {
	return &System{ring: ring}
}

// Require adds the equation p = 0 to the system.
func (s *System) Require(p Poly) {
	s.eqs = append(s.eqs, p)
}

// Solve performs Gaussian elimination over GF(2) on the collected
// equations and returns every satisfying assignment (indexed like the
// ring's variables), branching over any free variables left undetermined
// by the system. It returns ErrInconsistent if no assignment satisfies
// every equation, and ErrTooManyBranches if there are too many free
// variables to enumerate.
func (s *System) Solve() ([][]int, error) {
	n := s.ring.NumVars()
	m := gf2.NewMatrix(len(s.eqs), n)
	rhs := make([]int, len(s.eqs))
	for i, eq := range s.eqs {
		for j := 0; j < n; j++ {
			m.Set(i, j, eq.coeffs.Get(j))
		}
		// eq is required to be 0: coeffs.x + constant = 0, i.e.
		// coeffs.x = constant over GF(2) (negation is the identity).
		rhs[i] = eq.constant
	}

	rows, aug, pivotCols, rank, consistent := rowReduceAffine(m, rhs)
	if !consistent {
		return nil, ErrInconsistent
	}

	pivotRowOf := make([]int, n)
	for i := range pivotRowOf {
		pivotRowOf[i] = -1
	}
	for r, c := range pivotCols {
		pivotRowOf[c] = r
	}

	var free []int
	for j := 0; j < n; j++ {
		if pivotRowOf[j] == -1 {
			free = append(free, j)
		}
	}
	if len(free) > maxFreeVars {
		return nil, ErrTooManyBranches
	}
	_ = rank

	total := 1 << uint(len(free))
	solutions := make([][]int, 0, total)
	for mask := 0; mask < total; mask++ {
		assignment := make([]int, n)
		for k, j := range free {
			assignment[j] = (mask >> uint(k)) & 1
		}
		for j, r := range pivotRowOf {
			if r == -1 {
				continue
			}
			bit := aug[r]
			for col := 0; col < n; col++ {
				if col != j && rows.Get(r, col) == 1 {
					bit ^= assignment[col]
				}
			}
			assignment[j] = bit
		}
		solutions = append(solutions, assignment)
	}
	return solutions, nil
}

// rowReduceAffine reduces m augmented with rhs to row echelon form over
// GF(2), returning the reduced rows, the transformed right-hand side, the
// pivot column of each reduced row, the rank, and whether the system is
// consistent (no row reduces to 0 = 1).
func rowReduceAffine(m gf2.Matrix, rhs []int) (gf2.Matrix, []int, []int, int, bool) {
	rows := m.Copy()
	aug := append([]int(nil), rhs...)

	numRows := rows.Rows()
	cols := rows.Cols()
	rank := 0
	var pivotCols []int
	for col := 0; col < cols && rank < numRows; col++ {
		pivot := -1
		for r := rank; r < numRows; r++ {
			if rows.Get(r, col) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		aug[rank], aug[pivot] = aug[pivot], aug[rank]
		for r := 0; r < numRows; r++ {
			if r != rank && rows.Get(r, col) != 0 {
				rows[r], _ = rows[r].Add(rows[rank])
				aug[r] ^= aug[rank]
			}
		}
		pivotCols = append(pivotCols, col)
		rank++
	}

	for r := rank; r < numRows; r++ {
		zero := true
		for c := 0; c < cols; c++ {
			if rows.Get(r, c) != 0 {
				zero = false
				break
			}
		}
		if zero && aug[r] != 0 {
			return nil, nil, nil, 0, false
		}
	}

	return rows, aug, pivotCols, rank, true
}
