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

package attack

import (
	"github.com/jvdsn/white-box-speck-go/extenc"
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/jvdsn/white-box-speck-go/selfequiv"
	"github.com/jvdsn/white-box-speck-go/speck"
)

// recoverLinearCoefficients1 extracts the 2*wordSize GF(2) coefficients of
// a linear self-equivalence from specific entries of an encoded matrix of
// the form m_mid*B (or m_last*B), possibly itself wrapped by an outer
// self-equivalence's A on the left. The rows word_size-1-alpha and
// word_size-1+beta of m_mid carry exactly one nonzero entry per self-
// equivalence coefficient regardless of any such outer wrap, which is what
// makes these positions readable straight off the encoded matrix.
func recoverLinearCoefficients1(wordSize, alpha, beta int, m gf2.Matrix) []int {
	ws := wordSize
	c := make([]int, 2*ws)
	for i := 1; i < ws-1; i++ {
		c[2*ws-1-i] = m.Get(ws-1-alpha, ws+i)
		c[ws-i] = m.Get(ws-1+beta, ws+i) ^ c[2*ws-1-i]
	}
	c[1] = m.Get(ws-1-alpha, ws)
	c[ws] = m.Get(ws-1+beta, ws) ^ c[1]
	c[2*ws-1] = m.Get(ws-1-alpha, 0) ^ c[1]
	c[0] = m.Get(ws-1+beta, 0) ^ c[ws] ^ c[2*ws-1]
	return c
}

// recoverLinearCoefficients2 extracts the coefficients of a second linear
// self-equivalence from a matrix of the form matrices[r]*B^-1, used as the
// second step of peeling the output external encoding off the final layer.
func recoverLinearCoefficients2(wordSize int, o gf2.Matrix) []int {
	ws := wordSize
	c := make([]int, 2*ws)
	for i := 1; i < ws-1; i++ {
		c[ws-i] = o.Get(ws-1, ws+i)
		c[2*ws-1-i] = o.Get(2*ws-1, ws+i) ^ c[ws-i]
	}
	c[ws] = o.Get(ws-1, 0) ^ o.Get(ws-1, ws)
	c[1] = o.Get(2*ws-1, 0) ^ o.Get(2*ws-1, ws) ^ c[ws]
	c[0] = o.Get(ws-1, ws) ^ c[1]
	c[2*ws-1] = o.Get(2*ws-1, ws) ^ o.Get(ws-1, ws)
	return c
}

// Linear recovers the master key and the linear external encodings from
// the encoded layers of a white-box Speck implementation built with a
// LinearSelfEquivalenceProvider (Build's provider argument).
//
// It exploits the fact that every self-equivalence drawn by that provider
// leaves its coefficients readable off fixed sparse positions of the
// encoded matrices (recoverLinearCoefficients1/2): round key r is pulled
// out of layers[r+1]'s vector by undoing the self-equivalence recovered
// from layers[r+2], the whole master key is then rebuilt from the round
// keys via the inverse key schedule, the output encoding is peeled off the
// last two layers the same way, and the input encoding drops straight out
// of layers[0] since Build never folds any self-equivalence into it.
//
// Linear only recovers a*linear* external encoding correctly (zero offset);
// it returns ErrAttackFailed if there are too few layers to cover every key
// word.
func Linear(p speck.Params, layers []speck.EncodedLayer) ([]uint64, extenc.Encoding, extenc.Encoding, error) {
	none := extenc.Encoding{}
	if len(layers) != p.Rounds+1 || p.Rounds < p.KeyWords+2 {
		return nil, none, none, ErrAttackFailed
	}

	ws := p.WordSize
	sep, err := selfequiv.NewLinearSelfEquivalenceProvider(ws)
	if err != nil {
		return nil, none, none, err
	}

	mMid, err := p.MMid()
	if err != nil {
		return nil, none, none, err
	}
	mLast, err := p.MLast()
	if err != nil {
		return nil, none, none, err
	}

	// Recovering the round keys.
	roundKeys := make([]uint64, p.KeyWords)
	for r := 0; r < p.KeyWords; r++ {
		c := recoverLinearCoefficients1(ws, p.Alpha, p.Beta, layers[r+2].M)
		se, err := sep.SelfEquivalence(c)
		if err != nil {
			return nil, none, none, err
		}
		a, _, _, _ := se.Components()
		aMid, err := a.Mul(mMid)
		if err != nil {
			return nil, none, none, err
		}
		aMidInv, err := aMid.Inverse()
		if err != nil {
			return nil, none, none, err
		}
		v, err := aMidInv.MulVec(layers[r+1].V)
		if err != nil {
			return nil, none, none, err
		}
		low, err := v.Slice(0, ws)
		if err != nil {
			return nil, none, none, err
		}
		roundKeys[r] = low.Uint64()
	}

	key, err := p.InverseKeyExpansion(roundKeys, 0)
	if err != nil {
		return nil, none, none, err
	}

	// Recovering the input external encoding: Build folds F^-1 directly
	// into layers[0] (M_0 = m_first*F^-1), with no self-equivalence wrap
	// touching it, so F = layers[0]^-1 * m_first by straight inversion.
	m0Inv, err := layers[0].M.Inverse()
	if err != nil {
		return nil, none, none, err
	}
	fM, err := m0Inv.Mul(p.MFirst())
	if err != nil {
		return nil, none, none, err
	}
	in := extenc.Encoding{M: fM, V: gf2.NewVector(p.BlockSize)}

	// Recovering the output external encoding: peel the self-equivalence
	// wrapping the second-to-last round off layers[rounds-1], then a second
	// one (extracted from the result via recoverLinearCoefficients2) off
	// the final layer.
	c := recoverLinearCoefficients1(ws, p.Alpha, p.Beta, layers[p.Rounds-1].M)
	se, err := sep.SelfEquivalence(c)
	if err != nil {
		return nil, none, none, err
	}
	_, _, bMat, _ := se.Components()
	mMidB, err := mMid.Mul(bMat)
	if err != nil {
		return nil, none, none, err
	}
	mMidBInv, err := mMidB.Inverse()
	if err != nil {
		return nil, none, none, err
	}
	o, err := layers[p.Rounds-1].M.Mul(mMidBInv)
	if err != nil {
		return nil, none, none, err
	}

	c2 := recoverLinearCoefficients2(ws, o)
	se2, err := sep.SelfEquivalence(c2)
	if err != nil {
		return nil, none, none, err
	}
	_, _, bMat2, _ := se2.Components()
	mLastB, err := mLast.Mul(bMat2)
	if err != nil {
		return nil, none, none, err
	}
	mLastBInv, err := mLastB.Inverse()
	if err != nil {
		return nil, none, none, err
	}
	gM, err := layers[p.Rounds].M.Mul(mLastBInv)
	if err != nil {
		return nil, none, none, err
	}
	out := extenc.Encoding{M: gM, V: gf2.NewVector(p.BlockSize)}

	return key, in, out, nil
}
