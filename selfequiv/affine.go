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

// affineSelfEquivalence conjugates the implicit self-equivalence (aPrime,
// aVec) of f_H by l, and splits the result back into the (A, a, B, b)
// self-equivalence of S(x, y) = (x + y, y).
func affineSelfEquivalence(wordSize int, aPrime gf2.Matrix, aVec gf2.Vector, l gf2.Matrix) (SelfEquivalence, error) {
	lInv, err := l.Inverse()
	if err != nil {
		return SelfEquivalence{}, err
	}
	lAPrime, err := l.Mul(aPrime)
	if err != nil {
		return SelfEquivalence{}, err
	}
	m, err := lAPrime.Mul(lInv)
	if err != nil {
		return SelfEquivalence{}, err
	}
	mVec, err := l.MulVec(aVec)
	if err != nil {
		return SelfEquivalence{}, err
	}

	ws := wordSize
	A, err := m.Submatrix(0, 0, 2*ws, 2*ws)
	if err != nil {
		return SelfEquivalence{}, err
	}
	a, err := mVec.Slice(0, 2*ws)
	if err != nil {
		return SelfEquivalence{}, err
	}
	bInvBlock, err := m.Submatrix(2*ws, 2*ws, 2*ws, 2*ws)
	if err != nil {
		return SelfEquivalence{}, err
	}
	B, err := bInvBlock.Inverse()
	if err != nil {
		return SelfEquivalence{}, err
	}
	bPart, err := mVec.Slice(2*ws, 4*ws)
	if err != nil {
		return SelfEquivalence{}, err
	}
	b, err := B.MulVec(bPart)
	if err != nil {
		return SelfEquivalence{}, err
	}

	return SelfEquivalence{A: A, a: a, B: B, b: b}, nil
}

// Type1AffineSelfEquivalenceProvider generates type 1 affine
// self-equivalences of S from 2*wordSize+7 GF(2) coefficients, via the
// fixed block-pattern construction described in spec.md section 4.3.2.
type Type1AffineSelfEquivalenceProvider struct {
	wordSize int
}

// NewType1AffineSelfEquivalenceProvider returns a
// Type1AffineSelfEquivalenceProvider for the given word size. It returns
// ErrInvalidWordSize if wordSize < 3.
func NewType1AffineSelfEquivalenceProvider(wordSize int) (*Type1AffineSelfEquivalenceProvider, error) {
	if wordSize < 3 {
		return nil, ErrInvalidWordSize
	}
	return &Type1AffineSelfEquivalenceProvider{wordSize: wordSize}, nil
}

// WordSize returns the word size this provider generates self-equivalences
// for.
func (p *Type1AffineSelfEquivalenceProvider) WordSize() int {
	return p.wordSize
}

// CoefficientsSize returns 2*WordSize+7, the number of coefficients
// SelfEquivalence expects.
func (p *Type1AffineSelfEquivalenceProvider) CoefficientsSize() int {
	return 2*p.wordSize + 7
}

func (p *Type1AffineSelfEquivalenceProvider) selfEquivalenceImplicit(coefficients []int) (gf2.Matrix, gf2.Vector, gf2.Matrix, error) {
	ws := p.wordSize
	cc := newCoeffCursor(coefficients)

	zero := gf2.NewMatrix(ws, ws)
	one := gf2.Identity(ws)

	c := gf2.Identity(ws)
	c.Set(ws-1, 0, cc.popBack())
	c.Set(ws-1, ws-2, cc.popBack())

	d := gf2.Identity(ws)
	for i := 1; i < ws; i++ {
		d.Set(ws-1, i, cc.popBack())
	}

	e := gf2.Identity(ws)
	e.Set(1, 0, cc.popBack())
	for i := 1; i < ws-1; i++ {
		e.Set(ws-1, i, cc.popBack())
	}

	f := gf2.Identity(ws)
	f.Set(1, 0, cc.popBack())
	f.Set(ws-1, 0, cc.popBack())
	f.Set(ws-1, ws-2, cc.popBack())

	g := gf2.NewMatrix(ws, ws)
	g.Set(ws-1, 0, cc.popBack())

	h := gf2.NewMatrix(ws, ws)
	h.Set(ws-1, 0, cc.popBack())

	d.Set(ws-1, 0, f.Get(1, 0)^f.Get(ws-1, 0)^g.Get(ws-1, 0))

	for i := 2; i < ws-1; i++ {
		e.Set(i, 0, e.Get(1, 0))
	}
	e.Set(ws-1, 0, c.Get(ws-1, 0)^e.Get(1, 0)^g.Get(ws-1, 0))
	e.Set(ws-1, ws-1, d.Get(ws-1, ws-1))

	for i := 2; i < ws-1; i++ {
		f.Set(i, 0, f.Get(1, 0))
	}
	for i := 1; i < ws-2; i++ {
		f.Set(ws-1, i, d.Get(ws-1, i)^e.Get(ws-1, i))
	}

	for i := 1; i < ws-1; i++ {
		g.Set(ws-1, i, e.Get(ws-1, i))
	}
	g.Set(ws-1, ws-1, d.Get(ws-1, ws-1)^1)

	for i := 1; i < ws-1; i++ {
		h.Set(i, 0, e.Get(1, 0)^f.Get(1, 0))
	}

	iVar := gf2.NewMatrix(ws, ws)
	iVar.Set(ws-1, 0, c.Get(ws-1, 0)^e.Get(1, 0)^f.Get(ws-1, 0)^g.Get(ws-1, 0)^h.Get(ws-1, 0))
	for i := 1; i < ws-2; i++ {
		iVar.Set(ws-1, i, d.Get(ws-1, i))
	}
	iVar.Set(ws-1, ws-2, e.Get(ws-1, ws-2)^f.Get(ws-1, ws-2))
	iVar.Set(ws-1, ws-1, d.Get(ws-1, ws-1)^1)

	j := gf2.NewMatrix(ws, ws)
	for i := 1; i < ws-1; i++ {
		j.Set(i, 0, f.Get(1, 0))
	}
	j.Set(ws-1, 0, f.Get(1, 0)^g.Get(ws-1, 0))
	for i := 1; i < ws-2; i++ {
		j.Set(ws-1, i, e.Get(ws-1, i))
	}
	j.Set(ws-1, ws-2, d.Get(ws-1, ws-2)^f.Get(ws-1, ws-2))
	j.Set(ws-1, ws-1, d.Get(ws-1, ws-1)^1)

	a := gf2.NewVector(4 * ws)
	a.Set(0, f.Get(1, 0))
	a.Set(ws-2, d.Get(ws-1, ws-2)^e.Get(ws-1, ws-2)^f.Get(ws-1, ws-2))
	a.Set(ws-1, cc.popBack())
	a.Set(ws, e.Get(1, 0))
	a.Set(2*ws-2, c.Get(ws-1, ws-2))
	a.Set(2*ws-1, cc.popBack())
	a.Set(2*ws, f.Get(1, 0))
	ef := e.Get(1, 0) & (f.Get(1, 0) ^ 1)
	for i := 2*ws + 1; i < 3*ws-2; i++ {
		a.Set(i, ef)
	}
	a.Set(3*ws-2, ef^d.Get(ws-1, ws-2)^e.Get(ws-1, ws-2)^f.Get(ws-1, ws-2))
	a.Set(3*ws-1, ef^(c.Get(ws-1, ws-2)&(d.Get(ws-1, ws-2)^e.Get(ws-1, ws-2)^f.Get(ws-1, ws-2)^1))^a.Get(ws-1))
	a.Set(3*ws, e.Get(1, 0))
	a.Set(4*ws-2, c.Get(ws-1, ws-2))
	a.Set(4*ws-1, a.Get(2*ws-1))

	aPrime, err := gf2.Block([][]gf2.Matrix{
		{c, zero, g, g},
		{zero, d, iVar, zero},
		{zero, j, e, zero},
		{h, j, zero, f},
	})
	if err != nil {
		return nil, gf2.Vector{}, nil, err
	}

	l, err := gf2.Block([][]gf2.Matrix{
		{one, zero, one, one},
		{zero, zero, one, one},
		{zero, zero, one, zero},
		{zero, one, one, zero},
	})
	if err != nil {
		return nil, gf2.Vector{}, nil, err
	}

	return aPrime, a, l, nil
}

// SelfEquivalence generates a type 1 affine self-equivalence from the
// given coefficients.
// It returns ErrInvalidCoefficients if len(coefficients) != CoefficientsSize().
func (p *Type1AffineSelfEquivalenceProvider) SelfEquivalence(coefficients []int) (SelfEquivalence, error) {
	if len(coefficients) != p.CoefficientsSize() {
		return SelfEquivalence{}, ErrInvalidCoefficients
	}
	aPrime, a, l, err := p.selfEquivalenceImplicit(coefficients)
	if err != nil {
		return SelfEquivalence{}, err
	}
	return affineSelfEquivalence(p.wordSize, aPrime, a, l)
}

// RandomSelfEquivalence samples a uniformly random type 1 affine
// self-equivalence.
func (p *Type1AffineSelfEquivalenceProvider) RandomSelfEquivalence(r *rand.Rand) (SelfEquivalence, error) {
	return randomSelfEquivalence(r, p.CoefficientsSize(), p.SelfEquivalence)
}

// Type2AffineSelfEquivalenceProvider generates type 2 affine
// self-equivalences of S from 2*wordSize+7 GF(2) coefficients, via the
// fixed block-pattern construction described in spec.md section 4.3.2.
// The leading two coefficients must not both be zero.
type Type2AffineSelfEquivalenceProvider struct {
	wordSize int
}

// NewType2AffineSelfEquivalenceProvider returns a
// Type2AffineSelfEquivalenceProvider for the given word size. It returns
// ErrInvalidWordSize if wordSize < 3.
func NewType2AffineSelfEquivalenceProvider(wordSize int) (*Type2AffineSelfEquivalenceProvider, error) {
	if wordSize < 3 {
		return nil, ErrInvalidWordSize
	}
	return &Type2AffineSelfEquivalenceProvider{wordSize: wordSize}, nil
}

// WordSize returns the word size this provider generates self-equivalences
// for.
func (p *Type2AffineSelfEquivalenceProvider) WordSize() int {
	return p.wordSize
}

// CoefficientsSize returns 2*WordSize+7, the number of coefficients
// SelfEquivalence expects.
func (p *Type2AffineSelfEquivalenceProvider) CoefficientsSize() int {
	return 2*p.wordSize + 7
}

func (p *Type2AffineSelfEquivalenceProvider) selfEquivalenceImplicit(coefficients []int) (gf2.Matrix, gf2.Vector, gf2.Matrix, error) {
	ws := p.wordSize
	cc := newCoeffCursor(coefficients)

	zero := gf2.NewMatrix(ws, ws)
	one := gf2.Identity(ws)

	c00 := cc.popFront()
	d00 := cc.popFront()
	if c00 == 0 && d00 == 0 {
		return nil, gf2.Vector{}, nil, ErrInvalidCoefficients
	}

	c := gf2.Identity(ws)
	c.Set(0, 0, c00)
	c.Set(ws-1, 0, cc.popBack())

	d := gf2.Identity(ws)
	d.Set(0, 0, d00)
	d.Set(ws-1, ws-2, cc.popBack())

	e := gf2.Identity(ws)
	for i := 1; i < ws-1; i++ {
		e.Set(ws-1, i, cc.popBack())
	}

	f := gf2.Identity(ws)
	f.Set(ws-1, 0, cc.popBack())

	g := gf2.Identity(ws)
	for i := 1; i < ws; i++ {
		g.Set(ws-1, i, cc.popBack())
	}

	h := gf2.Identity(ws)
	h.Set(ws-1, ws-2, cc.popBack())

	iVar := gf2.NewMatrix(ws, ws)
	iVar.Set(ws-1, 0, cc.popBack())

	j := gf2.NewMatrix(ws, ws)
	j.Set(ws-1, 0, cc.popBack())

	k := gf2.NewMatrix(ws, ws)
	k.Set(0, 0, d.Get(0, 0)^c.Get(0, 0))
	k.Set(ws-1, 0, (f.Get(ws-1, 0)&(c.Get(0, 0)^d.Get(0, 0)))^(d.Get(0, 0)&iVar.Get(ws-1, 0)))

	d.Set(ws-1, 0, (c.Get(0, 0)&j.Get(ws-1, 0))^(d.Get(0, 0)&(c.Get(ws-1, 0)^j.Get(ws-1, 0)))^(k.Get(ws-1, 0)&(g.Get(ws-1, ws-1)^1)))

	e.Set(0, 0, c.Get(0, 0))
	e.Set(ws-1, 0, (c.Get(0, 0)&f.Get(ws-1, 0))^(iVar.Get(ws-1, 0)&(c.Get(0, 0)^d.Get(0, 0))))

	f.Set(0, 0, d.Get(0, 0))
	for i := 1; i < ws-1; i++ {
		f.Set(ws-1, i, e.Get(ws-1, i))
	}

	iVar.Set(0, 0, d.Get(0, 0)^c.Get(0, 0))

	j.Set(0, 0, d.Get(0, 0)^c.Get(0, 0))
	for i := 1; i < ws-2; i++ {
		j.Set(ws-1, i, (e.Get(ws-1, i)&g.Get(ws-1, ws-1))^g.Get(ws-1, i))
	}
	j.Set(ws-1, ws-2, d.Get(ws-1, ws-2)^(e.Get(ws-1, ws-2)&(g.Get(ws-1, ws-1)^1))^h.Get(ws-1, ws-2))
	j.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	lVar := gf2.NewMatrix(ws, ws)
	lVar.Set(0, 0, d.Get(0, 0)^c.Get(0, 0))
	lVar.Set(ws-1, 0, (c.Get(0, 0)&c.Get(ws-1, 0))^(c.Get(0, 0)&j.Get(ws-1, 0))^(d.Get(0, 0)&c.Get(ws-1, 0))^(e.Get(ws-1, 0)&g.Get(ws-1, ws-1))^e.Get(ws-1, 0))
	for i := 1; i < ws-2; i++ {
		lVar.Set(ws-1, i, e.Get(ws-1, i)^g.Get(ws-1, i))
	}
	lVar.Set(ws-1, ws-2, d.Get(ws-1, ws-2)^e.Get(ws-1, ws-2)^g.Get(ws-1, ws-2))
	lVar.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	g.Set(0, 0, d.Get(0, 0))
	g.Set(ws-1, 0, e.Get(ws-1, 0)^lVar.Get(ws-1, 0))

	h.Set(0, 0, c.Get(0, 0))
	for i := 1; i < ws-2; i++ {
		h.Set(ws-1, i, e.Get(ws-1, i)^g.Get(ws-1, i))
	}
	h.Set(ws-1, ws-1, g.Get(ws-1, ws-1))
	h.Set(ws-1, 0, d.Get(ws-1, 0)^lVar.Get(ws-1, 0))

	m := gf2.NewMatrix(ws, ws)
	m.Set(0, 0, d.Get(0, 0)^c.Get(0, 0))
	m.Set(ws-1, 0, d.Get(ws-1, 0)^e.Get(ws-1, 0)^k.Get(ws-1, 0)^lVar.Get(ws-1, 0))
	for i := 1; i < ws-2; i++ {
		m.Set(ws-1, i, g.Get(ws-1, i))
	}
	m.Set(ws-1, ws-2, e.Get(ws-1, ws-2)^h.Get(ws-1, ws-2))
	m.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	n := gf2.NewMatrix(ws, ws)
	n.Set(0, 0, d.Get(0, 0)^c.Get(0, 0))
	n.Set(ws-1, 0, lVar.Get(ws-1, 0))
	for i := 1; i < ws-1; i++ {
		n.Set(ws-1, i, e.Get(ws-1, i)^g.Get(ws-1, i))
	}
	n.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	o := gf2.NewMatrix(ws, ws)
	o.Set(ws-1, 0, d.Get(ws-1, 0)^h.Get(ws-1, 0)^m.Get(ws-1, 0))
	for i := 1; i < ws-2; i++ {
		o.Set(ws-1, i, e.Get(ws-1, i))
	}
	o.Set(ws-1, ws-2, d.Get(ws-1, ws-2)^e.Get(ws-1, ws-2))

	pMat := gf2.NewMatrix(ws, ws)
	pMat.Set(ws-1, 0, d.Get(ws-1, 0)^g.Get(ws-1, 0))
	for i := 1; i < ws-1; i++ {
		pMat.Set(ws-1, i, g.Get(ws-1, i))
	}
	pMat.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	q := gf2.NewMatrix(ws, ws)
	q.Set(ws-1, 0, e.Get(ws-1, 0)^g.Get(ws-1, 0)^k.Get(ws-1, 0))
	for i := 1; i < ws-1; i++ {
		q.Set(ws-1, i, e.Get(ws-1, i)^g.Get(ws-1, i))
	}
	q.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	r := gf2.NewMatrix(ws, ws)
	r.Set(ws-1, 0, k.Get(ws-1, 0)^m.Get(ws-1, 0))
	for i := 1; i < ws-2; i++ {
		r.Set(ws-1, i, g.Get(ws-1, i))
	}
	r.Set(ws-1, ws-2, e.Get(ws-1, ws-2)^h.Get(ws-1, ws-2))
	r.Set(ws-1, ws-1, g.Get(ws-1, ws-1)^1)

	a := gf2.NewVector(4 * ws)
	a.Set(0, d.Get(0, 0)^c.Get(0, 0))
	a.Set(ws-2, e.Get(ws-1, ws-2)^g.Get(ws-1, ws-2)^h.Get(ws-1, ws-2))
	a.Set(ws-1, cc.popBack())
	a.Set(ws, c.Get(0, 0)^1)
	a.Set(2*ws-2, d.Get(ws-1, ws-2))
	a.Set(2*ws-1, cc.popBack())
	a.Set(2*ws, d.Get(0, 0)^c.Get(0, 0))
	a.Set(3*ws-2, e.Get(ws-1, ws-2)^g.Get(ws-1, ws-2)^h.Get(ws-1, ws-2))
	a.Set(3*ws-1, (c.Get(0, 0)&d.Get(0, 0))^c.Get(0, 0)^d.Get(0, 0)^(d.Get(ws-1, ws-2)&(e.Get(ws-1, ws-2)^g.Get(ws-1, ws-2)^h.Get(ws-1, ws-2)^1))^a.Get(ws-1)^1)
	a.Set(3*ws, c.Get(0, 0)^1)
	a.Set(4*ws-2, d.Get(ws-1, ws-2))
	a.Set(4*ws-1, a.Get(2*ws-1))

	aPrime, err := gf2.Block([][]gf2.Matrix{
		{d, lVar, pMat, o},
		{k, e, q, r},
		{zero, zero, g, m},
		{zero, zero, n, h},
	})
	if err != nil {
		return nil, gf2.Vector{}, nil, err
	}

	l, err := gf2.Block([][]gf2.Matrix{
		{one, zero, one, one},
		{zero, one, one, zero},
		{zero, zero, one, zero},
		{zero, zero, one, one},
	})
	if err != nil {
		return nil, gf2.Vector{}, nil, err
	}

	return aPrime, a, l, nil
}

// SelfEquivalence generates a type 2 affine self-equivalence from the
// given coefficients. The first two coefficients must not both be zero.
// It returns ErrInvalidCoefficients if len(coefficients) != CoefficientsSize()
// or if that constraint is violated.
func (p *Type2AffineSelfEquivalenceProvider) SelfEquivalence(coefficients []int) (SelfEquivalence, error) {
	if len(coefficients) != p.CoefficientsSize() {
		return SelfEquivalence{}, ErrInvalidCoefficients
	}
	aPrime, a, l, err := p.selfEquivalenceImplicit(coefficients)
	if err != nil {
		return SelfEquivalence{}, err
	}
	return affineSelfEquivalence(p.wordSize, aPrime, a, l)
}

// RandomSelfEquivalence samples a uniformly random type 2 affine
// self-equivalence.
func (p *Type2AffineSelfEquivalenceProvider) RandomSelfEquivalence(r *rand.Rand) (SelfEquivalence, error) {
	return randomSelfEquivalence(r, p.CoefficientsSize(), p.SelfEquivalence)
}
