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

package selfequiv

import (
	"math/rand"

	"github.com/jvdsn/white-box-speck-go/gf2"
)

// CombinedSelfEquivalenceProvider folds the random self-equivalences of
// several delegate providers into a single self-equivalence, by composing
// them in delegate order: (A, a, B, b) <- (A*A_, A*a_+a, B_*B, B_*b+b_).
type CombinedSelfEquivalenceProvider struct {
	wordSize  int
	delegates []Provider
}

// NewCombinedSelfEquivalenceProvider returns a CombinedSelfEquivalenceProvider
// that combines the given delegates. It returns ErrInvalidWordSize if any
// delegate's word size does not match wordSize.
func NewCombinedSelfEquivalenceProvider(wordSize int, delegates []Provider) (*CombinedSelfEquivalenceProvider, error) {
	for _, delegate := range delegates {
		if delegate.WordSize() != wordSize {
			return nil, ErrInvalidWordSize
		}
	}
	return &CombinedSelfEquivalenceProvider{wordSize: wordSize, delegates: delegates}, nil
}

// WordSize returns the word size this provider generates self-equivalences
// for.
func (p *CombinedSelfEquivalenceProvider) WordSize() int {
	return p.wordSize
}

// RandomSelfEquivalence samples a random self-equivalence from each
// delegate in turn and composes them into a single self-equivalence.
func (p *CombinedSelfEquivalenceProvider) RandomSelfEquivalence(r *rand.Rand) (SelfEquivalence, error) {
	ws := p.wordSize
	A := gf2.Identity(2 * ws)
	a := gf2.NewVector(2 * ws)
	B := gf2.Identity(2 * ws)
	b := gf2.NewVector(2 * ws)

	for _, delegate := range p.delegates {
		se, err := delegate.RandomSelfEquivalence(r)
		if err != nil {
			return SelfEquivalence{}, err
		}
		aD, aVecD, bD, bVecD := se.Components()

		newA, err := A.Mul(aD)
		if err != nil {
			return SelfEquivalence{}, err
		}
		aAVecD, err := A.MulVec(aVecD)
		if err != nil {
			return SelfEquivalence{}, err
		}
		newa, err := aAVecD.Add(a)
		if err != nil {
			return SelfEquivalence{}, err
		}
		newB, err := bD.Mul(B)
		if err != nil {
			return SelfEquivalence{}, err
		}
		bDBVec, err := bD.MulVec(b)
		if err != nil {
			return SelfEquivalence{}, err
		}
		newb, err := bDBVec.Add(bVecD)
		if err != nil {
			return SelfEquivalence{}, err
		}

		A, a, B, b = newA, newa, newB, newb
	}

	return SelfEquivalence{A: A, a: a, B: B, b: b}, nil
}
