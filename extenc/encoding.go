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

// Package extenc generates the secret affine bijections applied to a
// white-box implementation's input and output, so that the emitted program
// computes G ∘ E ∘ F⁻¹ rather than E directly.
package extenc

import (
	"math/rand"

	"github.com/jvdsn/white-box-speck-go/gf2"
)

// Encoding is an affine bijection x ↦ M·x + V of GF(2)^n.
type Encoding struct {
	M gf2.Matrix
	V gf2.Vector
}

// Apply evaluates the encoding at x.
func (e Encoding) Apply(x gf2.Vector) (gf2.Vector, error) {
	mx, err := e.M.MulVec(x)
	if err != nil {
		return gf2.Vector{}, err
	}
	return mx.Add(e.V)
}

// Invert returns the inverse encoding x ↦ M⁻¹·x + M⁻¹·V, i.e. the encoding
// e2 such that e2.Apply(e.Apply(x)) == x for all x.
// It returns gf2.ErrSingular if M is not invertible (which should not occur
// for a validly constructed Encoding).
func (e Encoding) Invert() (Encoding, error) {
	mInv, err := e.M.Inverse()
	if err != nil {
		return Encoding{}, err
	}
	v, err := mInv.MulVec(e.V)
	if err != nil {
		return Encoding{}, err
	}
	return Encoding{M: mInv, V: v}, nil
}

func randomInvertibleMatrix(r *rand.Rand, n int) gf2.Matrix {
	for {
		m := gf2.NewMatrix(n, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m.Set(i, j, r.Intn(2))
			}
		}
		if m.IsInvertible() {
			return m
		}
	}
}

func randomVector(r *rand.Rand, n int) gf2.Vector {
	v := gf2.NewVector(n)
	for i := 0; i < n; i++ {
		v.Set(i, r.Intn(2))
	}
	return v
}

// RandomAffineEncoding samples a uniformly random invertible affine
// encoding of GF(2)^(2*wordSize).
func RandomAffineEncoding(r *rand.Rand, wordSize int) Encoding {
	n := 2 * wordSize
	return Encoding{M: randomInvertibleMatrix(r, n), V: randomVector(r, n)}
}

// RandomLinearEncoding samples a uniformly random invertible linear
// encoding (zero offset) of GF(2)^(2*wordSize).
func RandomLinearEncoding(r *rand.Rand, wordSize int) Encoding {
	n := 2 * wordSize
	return Encoding{M: randomInvertibleMatrix(r, n), V: gf2.NewVector(n)}
}

// Identity returns the identity encoding of GF(2)^(2*wordSize).
func Identity(wordSize int) Encoding {
	n := 2 * wordSize
	return Encoding{M: gf2.Identity(n), V: gf2.NewVector(n)}
}
