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
	"fmt"

	"github.com/jvdsn/white-box-speck-go/gf2"
)

// MonomialIndex assigns a stable column position to every GF(2) monomial a
// bounded-degree model actually uses, over and above the Ring's own
// variables. Positions are handed out by Intern, so a model that only ever
// multiplies together a handful of coefficient bits gets a correspondingly
// small set of extra columns, regardless of how many degree-2-or-higher
// monomials exist in principle. Every Ring variable is interned up front as
// its own degree-1 monomial, so VarIndex(i) always equals i.
type MonomialIndex struct {
	ring      *Ring
	monomials [][]int
	lookup    map[string]int
}

// NewMonomialIndex returns a MonomialIndex over ring with a reserved column
// for each of its variables.
func NewMonomialIndex(ring *Ring) *MonomialIndex {
	mi := &MonomialIndex{ring: ring, lookup: make(map[string]int)}
	for i := 0; i < ring.NumVars(); i++ {
		mi.Intern([]int{i})
	}
	return mi
}

// Intern returns the column position of the monomial over vars (a set of
// distinct Ring variable indices, in any order), assigning it a new
// position the first time it's seen.
func (mi *MonomialIndex) Intern(vars []int) int {
	sorted := append([]int(nil), vars...)
	insertionSort(sorted)
	key := fmt.Sprint(sorted)
	if i, ok := mi.lookup[key]; ok {
		return i
	}
	i := len(mi.monomials)
	mi.monomials = append(mi.monomials, sorted)
	mi.lookup[key] = i
	return i
}

// Len returns the number of monomials interned so far.
func (mi *MonomialIndex) Len() int {
	return len(mi.monomials)
}

// VarIndex returns the column position of the degree-1 monomial for Ring
// variable i.
func (mi *MonomialIndex) VarIndex(i int) int {
	return i
}

// Monomial returns the sorted variable indices of the monomial interned at
// column i.
func (mi *MonomialIndex) Monomial(i int) []int {
	return mi.monomials[i]
}

func insertionSort(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// MultiPoly is a GF(2) polynomial not restricted to degree 1: a Ring's
// variables may be multiplied together, with every distinct product tracked
// as its own column in a shared MonomialIndex. It exists for self-
// equivalence providers whose (A, a, B, b) components are genuinely
// quadratic or cubic in their coefficients -- the type 1 and type 2 affine
// providers -- where Poly's pure-XOR model is not exact; see DESIGN.md.
type MultiPoly struct {
	idx      *MonomialIndex
	coeffs   gf2.Vector
	constant int
}

// ZeroMultiPoly returns the zero polynomial over idx.
func ZeroMultiPoly(idx *MonomialIndex) MultiPoly {
	return MultiPoly{idx: idx, coeffs: gf2.NewVector(idx.Len())}
}

// ConstMultiPoly returns the constant polynomial equal to bit, over idx.
func ConstMultiPoly(idx *MonomialIndex, bit int) MultiPoly {
	return MultiPoly{idx: idx, coeffs: gf2.NewVector(idx.Len()), constant: bit & 1}
}

// Term returns the monomial over vars (interned into idx if this is the
// first time it's used) as a MultiPoly of its own.
func Term(idx *MonomialIndex, vars ...int) MultiPoly {
	i := idx.Intern(vars)
	p := ZeroMultiPoly(idx)
	p.coeffs.Set(i, 1)
	return p
}

// Add returns p + q. p and q must share the same MonomialIndex.
func (p MultiPoly) Add(q MultiPoly) MultiPoly {
	c, _ := p.coeffs.Add(q.coeffs)
	return MultiPoly{idx: p.idx, coeffs: c, constant: p.constant ^ q.constant}
}

// Eval substitutes assignment, indexed like the underlying Ring's
// variables, into p.
func (p MultiPoly) Eval(assignment []int) int {
	bit := p.constant
	for i := 0; i < p.coeffs.Len(); i++ {
		if p.coeffs.Get(i) == 0 {
			continue
		}
		term := 1
		for _, v := range p.idx.Monomial(i) {
			term &= assignment[v]
		}
		bit ^= term
	}
	return bit
}

// IsZero reports whether p is the zero polynomial.
func (p MultiPoly) IsZero() bool {
	return p.constant == 0 && p.coeffs.IsZero()
}

// MultiMatrix is a dense matrix of MultiPoly entries sharing a
// MonomialIndex.
type MultiMatrix [][]MultiPoly

// ConstMultiMatrix lifts a constant gf2.Matrix into a MultiMatrix of
// constant entries over idx.
func ConstMultiMatrix(idx *MonomialIndex, m gf2.Matrix) MultiMatrix {
	out := make(MultiMatrix, m.Rows())
	for i := range out {
		out[i] = make([]MultiPoly, m.Cols())
		for j := range out[i] {
			out[i][j] = ConstMultiPoly(idx, m.Get(i, j))
		}
	}
	return out
}

// Rows returns the number of rows of p.
func (p MultiMatrix) Rows() int { return len(p) }

// Cols returns the number of columns of p.
func (p MultiMatrix) Cols() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Add returns p + q entrywise. p and q must have equal dimensions.
func (p MultiMatrix) Add(q MultiMatrix) MultiMatrix {
	out := make(MultiMatrix, len(p))
	for i := range p {
		out[i] = make([]MultiPoly, len(p[i]))
		for j := range p[i] {
			out[i][j] = p[i][j].Add(q[i][j])
		}
	}
	return out
}

// MulConstRight returns p*m, where m is a constant gf2.Matrix. The result
// cannot exceed p's degree, since every output entry is a GF(2)-linear
// combination of p's entries.
func (p MultiMatrix) MulConstRight(m gf2.Matrix) MultiMatrix {
	inner := p.Cols()
	idx := p[0][0].idx
	out := make(MultiMatrix, p.Rows())
	for i := 0; i < p.Rows(); i++ {
		out[i] = make([]MultiPoly, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			acc := ZeroMultiPoly(idx)
			for k := 0; k < inner; k++ {
				if m.Get(k, j) == 1 {
					acc = acc.Add(p[i][k])
				}
			}
			out[i][j] = acc
		}
	}
	return out
}

// Eval substitutes assignment into every entry of p, returning a constant
// gf2.Matrix.
func (p MultiMatrix) Eval(assignment []int) gf2.Matrix {
	out := gf2.NewMatrix(p.Rows(), p.Cols())
	for i := range p {
		for j := range p[i] {
			out.Set(i, j, p[i][j].Eval(assignment))
		}
	}
	return out
}

// MultiVec is a vector of MultiPoly entries sharing a MonomialIndex.
type MultiVec []MultiPoly

// ConstMultiVec lifts a constant gf2.Vector into a MultiVec of constant
// entries over idx.
func ConstMultiVec(idx *MonomialIndex, v gf2.Vector) MultiVec {
	out := make(MultiVec, v.Len())
	for i := range out {
		out[i] = ConstMultiPoly(idx, v.Get(i))
	}
	return out
}

// Add returns p + q entrywise.
func (p MultiVec) Add(q MultiVec) MultiVec {
	out := make(MultiVec, len(p))
	for i := range p {
		out[i] = p[i].Add(q[i])
	}
	return out
}

// Eval substitutes assignment into every entry of p, returning a constant
// gf2.Vector.
func (p MultiVec) Eval(assignment []int) gf2.Vector {
	out := gf2.NewVector(len(p))
	for i := range p {
		out.Set(i, p[i].Eval(assignment))
	}
	return out
}

// MultiSystem collects MultiPoly equations, each required to equal zero,
// sharing a MonomialIndex, and solves them by linearization: every
// monomial already interned in the index becomes its own independent
// variable in an ordinary affine System, solved exactly as System.Solve
// does. Every resulting assignment is then checked for consistency -- a
// degree-2-or-higher monomial's linearized value must equal the AND of its
// constituent variables' linearized values -- before being accepted, and
// only the underlying Ring's own variables are returned. This is a
// simplified stand-in for a full Gröbner basis reduction, which would
// enforce that consistency throughout the elimination instead of only at
// the end; see DESIGN.md.
type MultiSystem struct {
	idx *MonomialIndex
	lin *Ring
	sys *System
}

// NewMultiSystem returns an empty MultiSystem sharing idx's monomials.
func NewMultiSystem(idx *MonomialIndex) *MultiSystem {
	names := make([]string, idx.Len())
	for i := range names {
		names[i] = fmt.Sprintf("L%d", i)
	}
	lin := NewRing(names)
	return &MultiSystem{idx: idx, lin: lin, sys: NewSystem(lin)}
}

// Require adds the equation p = 0 to the system.
func (s *MultiSystem) Require(p MultiPoly) {
	s.sys.Require(Poly{ring: s.lin, coeffs: p.coeffs.Copy(), constant: p.constant})
}

// Solve returns every coefficient assignment, indexed like the underlying
// Ring's variables, consistent with every required equation and with the
// monomial structure of idx. It returns ErrInconsistent if the linearized
// system is inconsistent, or if every one of its solutions fails the
// monomial-consistency check, and ErrTooManyBranches if there are too many
// free linearized variables to enumerate.
func (s *MultiSystem) Solve() ([][]int, error) {
	sols, err := s.sys.Solve()
	if err != nil {
		return nil, err
	}

	n := s.idx.ring.NumVars()
	var out [][]int
	for _, sol := range sols {
		if !s.consistent(sol) {
			continue
		}
		vars := make([]int, n)
		for i := 0; i < n; i++ {
			vars[i] = sol[s.idx.VarIndex(i)]
		}
		out = append(out, vars)
	}
	if len(out) == 0 {
		return nil, ErrInconsistent
	}
	return out, nil
}

func (s *MultiSystem) consistent(sol []int) bool {
	for i := 0; i < s.idx.Len(); i++ {
		vars := s.idx.Monomial(i)
		if len(vars) < 2 {
			continue
		}
		want := 1
		for _, v := range vars {
			want &= sol[s.idx.VarIndex(v)]
		}
		if sol[i] != want {
			return false
		}
	}
	return true
}
