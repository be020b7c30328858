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

// Package boolpoly provides a small boolean polynomial layer over a fixed
// set of named GF(2) variables, plus Gaussian-elimination solvers for
// systems of such polynomials set to zero. It stands in for the general-
// purpose boolean polynomial ring and Gröbner basis engine the affine
// attack is built on.
//
// Most of the quantities the attack needs to reason about symbolically --
// a self-equivalence provider's matrix and vector entries as functions of
// its coefficient bits -- are affine in those bits (Poly, Matrix, Vec,
// System), since the linear provider builds them purely by XORing
// coefficient bits together. The type 1 and type 2 affine providers
// instead multiply coefficient bits together directly, up to degree 3; for
// those, MultiPoly/MultiMatrix/MultiVec/MultiSystem track the extra
// monomials a bounded-degree model needs and solve by linearization plus a
// consistency check, rather than true Gröbner reduction. See DESIGN.md.
package boolpoly

import "github.com/jvdsn/white-box-speck-go/gf2"

// Ring is an ordered, named set of GF(2) unknowns shared by a group of
// affine polynomials.
type Ring struct {
	names []string
	index map[string]int
}

// NewRing returns a Ring with one variable per name, in the given order.
func NewRing(names []string) *Ring {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	return &Ring{names: append([]string(nil), names...), index: index}
}

// NumVars returns the number of variables in the ring.
func (r *Ring) NumVars() int {
	return len(r.names)
}

// Name returns the name of the i-th variable.
func (r *Ring) Name(i int) string {
	return r.names[i]
}

// Const returns the constant polynomial equal to bit.
func (r *Ring) Const(bit int) Poly {
	return Poly{ring: r, coeffs: gf2.NewVector(len(r.names)), constant: bit & 1}
}

// Var returns the degree-1 polynomial equal to the named variable.
// It panics if name is not one of the ring's variables, since that
// indicates a programming error rather than a runtime condition.
func (r *Ring) Var(name string) Poly {
	p := r.Const(0)
	i, ok := r.index[name]
	if !ok {
		panic("boolpoly: unknown variable " + name)
	}
	p.coeffs.Set(i, 1)
	return p
}
