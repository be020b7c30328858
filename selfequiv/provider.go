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

// Package selfequiv generates self-equivalences of the Speck modular
// addition step S(x, y) = (x + y mod 2^w, y): pairs of affine GF(2)
// bijections (a + A*, b + B*) such that S(v) = b + B*S(a + A*v) for every
// bit-vector v, i.e. S = (b o B) o S o (a o A) as function composition.
// Self-equivalences are what let a white-box builder fold round keys and
// linear structure into opaque encoded layers.
package selfequiv

import (
	"math/rand"

	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/pkg/errors"
)

// ErrInvalidCoefficients is returned when a coefficients slice passed to
// SelfEquivalence has the wrong length, or violates a provider-specific
// constraint (e.g. the type 2 affine provider's leading-pair constraint).
var ErrInvalidCoefficients = errors.New("invalid self-equivalence coefficients")

// ErrInvalidWordSize is returned when a provider is constructed with a word
// size it cannot support.
var ErrInvalidWordSize = errors.New("invalid word size")

// SelfEquivalence is a self-equivalence (A, a, B, b) of S(x, y) =
// (x + y mod 2^w, y): S(v) = b + B*S(a + A*v) for every bit-vector v of
// length 2w.
type SelfEquivalence struct {
	A gf2.Matrix
	a gf2.Vector
	B gf2.Matrix
	b gf2.Vector
}

// Components returns the four parts of a self-equivalence.
func (se SelfEquivalence) Components() (gf2.Matrix, gf2.Vector, gf2.Matrix, gf2.Vector) {
	return se.A, se.a, se.B, se.b
}

// Provider generates self-equivalences of S for a fixed word size.
type Provider interface {
	// WordSize returns the word size this provider generates
	// self-equivalences for.
	WordSize() int

	// RandomSelfEquivalence samples a uniformly random self-equivalence
	// using r as its source of randomness.
	RandomSelfEquivalence(r *rand.Rand) (SelfEquivalence, error)
}

// CoefficientsProvider is a Provider that derives self-equivalences
// deterministically from a fixed-size slice of GF(2) coefficients.
type CoefficientsProvider interface {
	Provider

	// CoefficientsSize returns the number of coefficients SelfEquivalence
	// expects.
	CoefficientsSize() int

	// SelfEquivalence generates the self-equivalence corresponding to the
	// given coefficients.
	// It returns ErrInvalidCoefficients if coefficients has the wrong
	// length or violates a provider-specific constraint.
	SelfEquivalence(coefficients []int) (SelfEquivalence, error)
}

// randomSelfEquivalence repeatedly samples a random coefficients slice of
// the given size and calls self_equivalence, resampling on
// ErrInvalidCoefficients exactly as CoefficientsSelfEquivalenceProvider's
// Python counterpart does.
func randomSelfEquivalence(r *rand.Rand, size int, selfEquivalence func([]int) (SelfEquivalence, error)) (SelfEquivalence, error) {
	coefficients := make([]int, size)
	for {
		for i := range coefficients {
			coefficients[i] = r.Intn(2)
		}
		se, err := selfEquivalence(coefficients)
		if err == nil {
			return se, nil
		}
		if !errors.Is(err, ErrInvalidCoefficients) {
			return SelfEquivalence{}, err
		}
	}
}
