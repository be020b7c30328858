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

import "github.com/jvdsn/white-box-speck-go/gf2"

// Matrix is a dense matrix of affine polynomials over a shared Ring.
type Matrix [][]Poly

// ConstMatrix lifts a constant gf2.Matrix into a Matrix of constant Polys
// over ring.
func ConstMatrix(ring *Ring, m gf2.Matrix) Matrix {
	out := make(Matrix, m.Rows())
	for i := range out {
		out[i] = make([]Poly, m.Cols())
		for j := range out[i] {
			out[i][j] = ring.Const(m.Get(i, j))
		}
	}
	return out
}

// Rows returns the number of rows of p.
func (p Matrix) Rows() int { return len(p) }

// Cols returns the number of columns of p.
func (p Matrix) Cols() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Add returns p + q entrywise. p and q must have equal dimensions.
func (p Matrix) Add(q Matrix) Matrix {
	out := make(Matrix, len(p))
	for i := range p {
		out[i] = make([]Poly, len(p[i]))
		for j := range p[i] {
			out[i][j] = p[i][j].Add(q[i][j])
		}
	}
	return out
}

// MulConstLeft returns m*p, where m is a constant gf2.Matrix and p is a
// Matrix of affine polynomials. The result is affine since it is a GF(2)
// linear combination of p's entries.
func MulConstLeft(m gf2.Matrix, p Matrix) Matrix {
	inner := p.Rows()
	out := make(Matrix, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		out[i] = make([]Poly, p.Cols())
		for j := 0; j < p.Cols(); j++ {
			ring := p[0][j].ring
			acc := ring.Const(0)
			for k := 0; k < inner; k++ {
				if m.Get(i, k) == 1 {
					acc = acc.Add(p[k][j])
				}
			}
			out[i][j] = acc
		}
	}
	return out
}

// MulConstRight returns p*m, where m is a constant gf2.Matrix.
func (p Matrix) MulConstRight(m gf2.Matrix) Matrix {
	inner := p.Cols()
	out := make(Matrix, p.Rows())
	for i := 0; i < p.Rows(); i++ {
		out[i] = make([]Poly, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			ring := p[i][0].ring
			acc := ring.Const(0)
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
func (p Matrix) Eval(assignment []int) gf2.Matrix {
	out := gf2.NewMatrix(p.Rows(), p.Cols())
	for i := range p {
		for j := range p[i] {
			out.Set(i, j, p[i][j].Eval(assignment))
		}
	}
	return out
}

// Vec is a vector of affine polynomials over a shared Ring.
type Vec []Poly

// ConstVec lifts a constant gf2.Vector into a Vec of constant Polys.
func ConstVec(ring *Ring, v gf2.Vector) Vec {
	out := make(Vec, v.Len())
	for i := range out {
		out[i] = ring.Const(v.Get(i))
	}
	return out
}

// Add returns p + q entrywise.
func (p Vec) Add(q Vec) Vec {
	out := make(Vec, len(p))
	for i := range p {
		out[i] = p[i].Add(q[i])
	}
	return out
}

// MulConstLeft returns m*p, where m is a constant gf2.Matrix and p a Vec.
func (p Vec) MulConstLeft(m gf2.Matrix) Vec {
	ring := p[0].ring
	out := make(Vec, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		acc := ring.Const(0)
		for k := 0; k < m.Cols(); k++ {
			if m.Get(i, k) == 1 {
				acc = acc.Add(p[k])
			}
		}
		out[i] = acc
	}
	return out
}

// Eval substitutes assignment into every entry of p, returning a constant
// gf2.Vector.
func (p Vec) Eval(assignment []int) gf2.Vector {
	out := gf2.NewVector(len(p))
	for i := range p {
		out.Set(i, p[i].Eval(assignment))
	}
	return out
}
