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
	"encoding/json"
	"io"
	"math/rand"

	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/pkg/errors"
)

// ErrExpressionsUnavailable is returned by ANFSelfEquivalenceProvider when
// no precomputed self-equivalence expressions have been loaded for the
// requested word size.
var ErrExpressionsUnavailable = errors.New("self-equivalence expressions unavailable for this word size")

// anfEntry names a single free coefficient toggling (XORing into) one bit
// of the implicit self-equivalence's 4*WordSize x 4*WordSize matrix (Row,
// Col) or, when Col is negative, its constant term at Row.
type anfEntry struct {
	Row int `json:"row"`
	Col int `json:"col"` // -1 for the constant term at Row
}

// anfExpressionSet is the on-disk representation of a degree-1 (i.e.
// purely linear in the implicit input bits) family of self-equivalences of
// the implicit function f_H: a fixed base matrix (BaseOnes, the 1-entries
// when every coefficient is 0) plus a sparsity pattern of which entries are
// additionally toggled by a free coefficient. Producing this pattern for a
// given word size requires a computer-algebra search over the
// self-equivalence variety that is out of scope here; a provider is usable
// only once a pattern has been supplied out of band, e.g. loaded from a
// JSON file with this shape. Self-equivalence families of degree > 1 in the
// implicit input bits are not supported.
type anfExpressionSet struct {
	WordSize int        `json:"word_size"`
	BaseOnes [][2]int   `json:"base_ones"`
	Entries  []anfEntry `json:"entries"`
}

// ANFSelfEquivalenceProvider generates self-equivalences from a precomputed,
// degree-1 sparsity pattern of the implicit function f_H's defining matrix.
// Unlike the linear and affine providers, this pattern cannot be derived in
// closed form; it comes from an external search and must be loaded before
// use.
type ANFSelfEquivalenceProvider struct {
	wordSize int
	loaded   bool
	baseOnes [][2]int
	entries  []anfEntry
}

// NewANFSelfEquivalenceProvider constructs a provider for wordSize with no
// expressions loaded. Until LoadExpressions is called, SelfEquivalence and
// RandomSelfEquivalence return ErrExpressionsUnavailable and
// CoefficientsSize returns 0.
func NewANFSelfEquivalenceProvider(wordSize int) *ANFSelfEquivalenceProvider {
	return &ANFSelfEquivalenceProvider{wordSize: wordSize}
}

// LoadExpressions reads a JSON-encoded anfExpressionSet from r and installs
// it as this provider's sparsity pattern. It returns ErrInvalidWordSize if
// the set's word size does not match the provider's.
func (p *ANFSelfEquivalenceProvider) LoadExpressions(r io.Reader) error {
	var set anfExpressionSet
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return errors.Wrap(err, "decoding self-equivalence expressions")
	}
	if set.WordSize != p.wordSize {
		return ErrInvalidWordSize
	}
	p.baseOnes = set.BaseOnes
	p.entries = set.Entries
	p.loaded = true
	return nil
}

// WordSize returns the word size this provider generates self-equivalences
// for.
func (p *ANFSelfEquivalenceProvider) WordSize() int {
	return p.wordSize
}

// CoefficientsSize returns the number of free entries in the loaded
// sparsity pattern. It returns 0 if no expressions are loaded.
func (p *ANFSelfEquivalenceProvider) CoefficientsSize() int {
	return len(p.entries)
}

// SelfEquivalence assigns the given coefficients, in pattern order, to the
// free entries of the implicit matrix, conjugates the result by the same
// fixed L that LinearSelfEquivalenceProvider uses, and extracts the resulting
// self-equivalence. It returns ErrExpressionsUnavailable if no expressions
// have been loaded, or ErrInvalidCoefficients if len(coefficients) !=
// CoefficientsSize().
func (p *ANFSelfEquivalenceProvider) SelfEquivalence(coefficients []int) (SelfEquivalence, error) {
	if !p.loaded {
		return SelfEquivalence{}, ErrExpressionsUnavailable
	}
	if len(coefficients) != p.CoefficientsSize() {
		return SelfEquivalence{}, ErrInvalidCoefficients
	}

	ws := p.wordSize
	aPrime := gf2.NewMatrix(4*ws, 4*ws)
	aVec := gf2.NewVector(4 * ws)
	for _, pos := range p.baseOnes {
		aPrime.Set(pos[0], pos[1], 1)
	}
	for idx, e := range p.entries {
		if e.Col < 0 {
			aVec.Set(e.Row, aVec.Get(e.Row)^coefficients[idx])
		} else {
			aPrime.Set(e.Row, e.Col, aPrime.Get(e.Row, e.Col)^coefficients[idx])
		}
	}

	zero := gf2.NewMatrix(ws, ws)
	one := gf2.Identity(ws)
	l, err := gf2.Block([][]gf2.Matrix{
		{zero, one, one, zero},
		{one, one, one, zero},
		{zero, zero, one, zero},
		{one, zero, one, one},
	})
	if err != nil {
		return SelfEquivalence{}, err
	}

	return affineSelfEquivalence(ws, aPrime, aVec, l)
}

// RandomSelfEquivalence samples a uniformly random self-equivalence from
// the loaded sparsity pattern. It returns ErrExpressionsUnavailable if no
// expressions have been loaded.
func (p *ANFSelfEquivalenceProvider) RandomSelfEquivalence(r *rand.Rand) (SelfEquivalence, error) {
	if !p.loaded {
		return SelfEquivalence{}, ErrExpressionsUnavailable
	}
	return randomSelfEquivalence(r, p.CoefficientsSize(), p.SelfEquivalence)
}
