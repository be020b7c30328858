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

// Poly is an affine GF(2) polynomial: a constant plus a linear combination
// of a Ring's variables.
type Poly struct {
	ring     *Ring
	coeffs   gf2.Vector
	constant int
}

// Add returns p + q. p and q must belong to the same Ring.
func (p Poly) Add(q Poly) Poly {
	c, _ := p.coeffs.Add(q.coeffs)
	return Poly{ring: p.ring, coeffs: c, constant: p.constant ^ q.constant}
}

// Eval substitutes assignment, indexed like the Ring's variables, into p.
func (p Poly) Eval(assignment []int) int {
	bit := p.constant
	for i := 0; i < p.coeffs.Len(); i++ {
		if p.coeffs.Get(i) == 1 {
			bit ^= assignment[i] & 1
		}
	}
	return bit
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.constant == 0 && p.coeffs.IsZero()
}
