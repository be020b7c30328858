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

// LinearSelfEquivalenceProvider generates linear self-equivalences of S
// from 2*wordSize GF(2) coefficients, via the fixed block-pattern
// construction and conjugation matrix L described in spec.md section 4.3.1.
// The returned a and b vectors are always zero.
type LinearSelfEquivalenceProvider struct {
	wordSize int
	zero     gf2.Matrix
	one      gf2.Matrix
	l        gf2.Matrix
	lInv     gf2.Matrix
}

// NewLinearSelfEquivalenceProvider returns a LinearSelfEquivalenceProvider
// for the given word size.
func NewLinearSelfEquivalenceProvider(wordSize int) (*LinearSelfEquivalenceProvider, error) {
	zero := gf2.NewMatrix(wordSize, wordSize)
	one := gf2.Identity(wordSize)

	l, err := gf2.Block([][]gf2.Matrix{
		{zero, one, one, zero},
		{one, one, one, zero},
		{zero, zero, one, zero},
		{one, zero, one, one},
	})
	if err != nil {
		return nil, err
	}
	lInv, err := l.Inverse()
	if err != nil {
		return nil, err
	}

	return &LinearSelfEquivalenceProvider{
		wordSize: wordSize,
		zero:     zero,
		one:      one,
		l:        l,
		lInv:     lInv,
	}, nil
}

// WordSize returns the word size this provider generates self-equivalences
// for.
func (p *LinearSelfEquivalenceProvider) WordSize() int {
	return p.wordSize
}

// CoefficientsSize returns 2*WordSize, the number of coefficients
// SelfEquivalence expects.
func (p *LinearSelfEquivalenceProvider) CoefficientsSize() int {
	return 2 * p.wordSize
}

func (p *LinearSelfEquivalenceProvider) selfEquivalenceImplicit(coefficients []int) (gf2.Matrix, error) {
	ws := p.wordSize
	cc := newCoeffCursor(coefficients)

	c0 := gf2.Identity(ws)
	for i := 0; i < ws-1; i++ {
		c0.Set(ws-1, i, cc.popBack())
	}

	c1 := gf2.Identity(ws)
	for i := 0; i < ws-1; i++ {
		c1.Set(ws-1, i, cc.popBack())
	}

	d0 := gf2.NewMatrix(ws, ws)
	d0.Set(ws-1, 0, cc.popBack())
	for i := 1; i < ws-1; i++ {
		d0.Set(ws-1, i, c0.Get(ws-1, i))
	}

	d1 := gf2.NewMatrix(ws, ws)
	d1.Set(ws-1, 0, cc.popBack())
	for i := 1; i < ws-1; i++ {
		d1.Set(ws-1, i, c0.Get(ws-1, i)^c1.Get(ws-1, i))
	}

	c0PlusC1, _ := c0.Add(c1)

	return gf2.Block([][]gf2.Matrix{
		{c0, d0, d0, p.zero},
		{d1, c1, c0PlusC1, d0},
		{d0, p.zero, c0, d0},
		{c0PlusC1, d0, d1, c1},
	})
}

// SelfEquivalence generates a linear self-equivalence from the given
// coefficients. a and b are always zero vectors.
// It returns ErrInvalidCoefficients if len(coefficients) != 2*WordSize.
func (p *LinearSelfEquivalenceProvider) SelfEquivalence(coefficients []int) (SelfEquivalence, error) {
	if len(coefficients) != p.CoefficientsSize() {
		return SelfEquivalence{}, ErrInvalidCoefficients
	}

	aPrime, err := p.selfEquivalenceImplicit(coefficients)
	if err != nil {
		return SelfEquivalence{}, err
	}

	lAPrime, err := p.l.Mul(aPrime)
	if err != nil {
		return SelfEquivalence{}, err
	}
	m, err := lAPrime.Mul(p.lInv)
	if err != nil {
		return SelfEquivalence{}, err
	}

	ws := p.wordSize
	a, err := m.Submatrix(0, 0, 2*ws, 2*ws)
	if err != nil {
		return SelfEquivalence{}, err
	}
	bInvBlock, err := m.Submatrix(2*ws, 2*ws, 2*ws, 2*ws)
	if err != nil {
		return SelfEquivalence{}, err
	}
	b, err := bInvBlock.Inverse()
	if err != nil {
		return SelfEquivalence{}, err
	}

	return SelfEquivalence{A: a, a: gf2.NewVector(2 * ws), B: b, b: gf2.NewVector(2 * ws)}, nil
}

// RandomSelfEquivalence samples a uniformly random linear self-equivalence.
func (p *LinearSelfEquivalenceProvider) RandomSelfEquivalence(r *rand.Rand) (SelfEquivalence, error) {
	return randomSelfEquivalence(r, p.CoefficientsSize(), p.SelfEquivalence)
}
