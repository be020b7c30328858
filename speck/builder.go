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

package speck

import (
	"math/rand"

	"github.com/jvdsn/white-box-speck-go/extenc"
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/jvdsn/white-box-speck-go/selfequiv"
)

// EncodedLayer is one affine layer x ↦ M*x + V of a white-box
// implementation, evaluated between two applications of the non-linear
// step S (or before the first/after the last).
type EncodedLayer struct {
	M gf2.Matrix
	V gf2.Vector
}

// WhiteBox is a generated white-box implementation of Speck: p.Rounds
// applications of S interleaved with p.Rounds+1 encoded affine layers, with
// the round keys folded into the layers so that no intermediate value
// reveals the key in cleartext. Evaluate expects its input already passed
// through the input external encoding In (Build folds In's inverse into the
// first layer, so Evaluate must not apply In itself); In is kept on WhiteBox
// so callers and attacks can still name the encoding in use. The output
// external encoding is folded directly into the final layer by Build.
type WhiteBox struct {
	Params Params
	In     extenc.Encoding
	Layers []EncodedLayer
}

// MFirst returns the affine layer applied before the very first round: a
// plain right rotation of x by alpha (y is untouched, matching the first
// half of the round function up to the point where S takes over).
func (p Params) MFirst() gf2.Matrix {
	return p.RotateRightMatrix(p.Alpha, 0)
}

// MMid returns the affine layer applied between two rounds, folding the
// previous round's y = y ^ x and the left rotation of y by beta feeding the
// next round's rotate-right-by-alpha into one matrix.
func (p Params) MMid() (gf2.Matrix, error) {
	rotLeft := p.RotateLeftMatrix(0, p.Beta)
	xorXY := p.XorXYMatrix()
	mid, err := xorXY.Mul(rotLeft)
	if err != nil {
		return nil, err
	}
	return p.MFirst().Mul(mid)
}

// MLast returns the affine layer applied after the final round, which omits
// the rotate-right-by-alpha of the following round since there is none.
func (p Params) MLast() (gf2.Matrix, error) {
	rotLeft := p.RotateLeftMatrix(0, p.Beta)
	return p.XorXYMatrix().Mul(rotLeft)
}

// Build assembles a white-box implementation of Speck under key, using
// provider to draw a fresh self-equivalence before every internal round
// boundary, and folding in and out the given external encodings.
//
// It follows the construction of Property 3: the resulting WhiteBox
// computes Gout ∘ Encrypt(key, ·) ∘ Gin⁻¹ when evaluated with Evaluate,
// where Gin, Gout are the external encodings' affine maps.
func Build(p Params, key []uint64, provider selfequiv.Provider, in, out extenc.Encoding, r *rand.Rand) (WhiteBox, error) {
	if provider.WordSize() != p.WordSize {
		return WhiteBox{}, ErrInvalidParams
	}

	roundKeys, err := p.KeyExpansion(key)
	if err != nil {
		return WhiteBox{}, err
	}

	mMid, err := p.MMid()
	if err != nil {
		return WhiteBox{}, err
	}
	mLast, err := p.MLast()
	if err != nil {
		return WhiteBox{}, err
	}

	inInv, err := in.Invert()
	if err != nil {
		return WhiteBox{}, err
	}

	layers := make([]EncodedLayer, p.Rounds+1)

	// Layer 0 absorbs the inverse of the input external encoding, so that
	// Evaluate can apply the encoding directly to its input (x0 = F(p))
	// rather than requiring a separate decoding pre-pass: M_first * F^-1 *
	// F(p) = M_first * p, the true first pre-round state.
	m0, err := p.MFirst().Mul(inInv.M)
	if err != nil {
		return WhiteBox{}, err
	}
	v0, err := p.MFirst().MulVec(inInv.V)
	if err != nil {
		return WhiteBox{}, err
	}
	layers[0] = EncodedLayer{M: m0, V: v0}

	// Layer 1: M_mid, offset by the first round key.
	v1, err := mMid.MulVec(p.XorRoundKeyVector(roundKeys[0]))
	if err != nil {
		return WhiteBox{}, err
	}
	layers[1] = EncodedLayer{M: mMid, V: v1}

	for round := 2; round <= p.Rounds; round++ {
		se, err := provider.RandomSelfEquivalence(r)
		if err != nil {
			return WhiteBox{}, err
		}
		a, aVec, b, bVec := se.Components()

		// Wrap the previous layer (which feeds into this round's S) with
		// the self-equivalence's input side (A, a).
		prev := layers[round-1]
		wrappedM, err := a.Mul(prev.M)
		if err != nil {
			return WhiteBox{}, err
		}
		wrappedV, err := a.MulVec(prev.V)
		if err != nil {
			return WhiteBox{}, err
		}
		wrappedV, err = wrappedV.Add(aVec)
		if err != nil {
			return WhiteBox{}, err
		}
		layers[round-1] = EncodedLayer{M: wrappedM, V: wrappedV}

		mCur := mMid
		if round == p.Rounds {
			mCur = mLast
		}

		// This layer folds in the self-equivalence's output side (B, b),
		// which together with the (A, a) wrap above reproduces S exactly
		// (S = (b,B) o S o (a,A)) while routing the round key and output
		// through an opaque affine map.
		curM, err := mCur.Mul(b)
		if err != nil {
			return WhiteBox{}, err
		}
		vkR := p.XorRoundKeyVector(roundKeys[round-1])
		curVIn, err := vkR.Add(bVec)
		if err != nil {
			return WhiteBox{}, err
		}
		curV, err := mCur.MulVec(curVIn)
		if err != nil {
			return WhiteBox{}, err
		}
		layers[round] = EncodedLayer{M: curM, V: curV}
	}

	// Finally wrap the output layer with the output external encoding.
	last := layers[p.Rounds]
	outM, err := out.M.Mul(last.M)
	if err != nil {
		return WhiteBox{}, err
	}
	outV, err := out.M.MulVec(last.V)
	if err != nil {
		return WhiteBox{}, err
	}
	outV, err = outV.Add(out.V)
	if err != nil {
		return WhiteBox{}, err
	}
	layers[p.Rounds] = EncodedLayer{M: outM, V: outV}

	return WhiteBox{Params: p, In: in, Layers: layers}, nil
}

// Evaluate runs the white-box implementation on input x (a bit-vector of
// length p.BlockSize), per Property 3: x is plaintext, already encoded by
// the caller through the input external encoding (Build folds F's inverse
// into layer 0, so this call must not decode it a second time); p.Rounds+1
// affine layers follow with the non-linear step S interleaved between
// consecutive layers, and the output external encoding is already folded
// into the final layer by Build.
func (wb WhiteBox) Evaluate(x gf2.Vector) (gf2.Vector, error) {
	cur := x
	for i, layer := range wb.Layers {
		mx, err := layer.M.MulVec(cur)
		if err != nil {
			return gf2.Vector{}, err
		}
		cur, err = mx.Add(layer.V)
		if err != nil {
			return gf2.Vector{}, err
		}
		if i < len(wb.Layers)-1 {
			cur = wb.Params.S(cur)
		}
	}
	return cur, nil
}
