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
	"testing"

	"github.com/jvdsn/white-box-speck-go/extenc"
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/jvdsn/white-box-speck-go/selfequiv"
	"github.com/stretchr/testify/require"
)

func packBlock(p Params, x, y uint64) gf2.Vector {
	return gf2.Concat(gf2.VectorFromUint64(x, p.WordSize), gf2.VectorFromUint64(y, p.WordSize))
}

func unpackBlock(p Params, v gf2.Vector) (uint64, uint64) {
	xv, _ := v.Slice(0, p.WordSize)
	yv, _ := v.Slice(p.WordSize, p.BlockSize)
	return xv.Uint64(), yv.Uint64()
}

func TestScenario1(t *testing.T) {
	p, err := NewParams(32, 64)
	require.NoError(t, err)
	key := []uint64{0x1918, 0x1110, 0x0908, 0x0100}

	roundKeys, err := p.KeyExpansion(key)
	require.NoError(t, err)
	x, y := p.Encrypt(roundKeys, 0x6574, 0x694c)
	require.Equal(t, uint64(0xa868), x)
	require.Equal(t, uint64(0x42f2), y)

	wb, err := Build(p, key, mustLinearProvider(t, p.WordSize), extenc.Identity(p.WordSize), extenc.Identity(p.WordSize), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	out, err := wb.Evaluate(packBlock(p, 0x6574, 0x694c))
	require.NoError(t, err)
	ox, oy := unpackBlock(p, out)
	require.Equal(t, uint64(0xa868), ox)
	require.Equal(t, uint64(0x42f2), oy)
}

func TestScenario2(t *testing.T) {
	p, err := NewParams(64, 128)
	require.NoError(t, err)
	key := []uint64{0x1b1a1918, 0x13121110, 0x0b0a0908, 0x03020100}

	wb, err := Build(p, key, mustLinearProvider(t, p.WordSize), extenc.Identity(p.WordSize), extenc.Identity(p.WordSize), rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	out, err := wb.Evaluate(packBlock(p, 0x3b726574, 0x7475432d))
	require.NoError(t, err)
	ox, oy := unpackBlock(p, out)
	require.Equal(t, uint64(0x8c6fa548), ox)
	require.Equal(t, uint64(0x454e028b), oy)
}

func TestScenario3(t *testing.T) {
	p, err := NewParams(128, 256)
	require.NoError(t, err)
	key := []uint64{
		0x1f1e1d1c1b1a1918, 0x1716151413121110,
		0x0f0e0d0c0b0a0908, 0x0706050403020100,
	}

	wb, err := Build(p, key, mustLinearProvider(t, p.WordSize), extenc.Identity(p.WordSize), extenc.Identity(p.WordSize), rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	out, err := wb.Evaluate(packBlock(p, 0x65736f6874206e49, 0x202e72656e6f6f70))
	require.NoError(t, err)
	ox, oy := unpackBlock(p, out)
	require.Equal(t, uint64(0x4109010405c0f53e), ox)
	require.Equal(t, uint64(0x4eeeb48d9c188f43), oy)
}

func TestWhiteBoxSatisfiesProperty3(t *testing.T) {
	p, err := NewParams(32, 64)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(7))

	providers := []selfequiv.Provider{
		mustLinearProvider(t, p.WordSize),
		mustCombinedAffineProvider(t, p.WordSize),
	}

	for _, provider := range providers {
		for trial := 0; trial < 10; trial++ {
			key := make([]uint64, p.KeyWords)
			for i := range key {
				key[i] = uint64(r.Uint32()) & wordMask(p.WordSize)
			}
			roundKeys, err := p.KeyExpansion(key)
			require.NoError(t, err)

			in := extenc.RandomAffineEncoding(r, p.WordSize)
			out := extenc.RandomAffineEncoding(r, p.WordSize)

			wb, err := Build(p, key, provider, in, out, r)
			require.NoError(t, err)

			px := uint64(r.Uint32()) & wordMask(p.WordSize)
			py := uint64(r.Uint32()) & wordMask(p.WordSize)

			plaintext := packBlock(p, px, py)
			fp, err := in.Apply(plaintext)
			require.NoError(t, err)

			result, err := wb.Evaluate(fp)
			require.NoError(t, err)

			cx, cy := p.Encrypt(roundKeys, px, py)
			expected, err := out.Apply(packBlock(p, cx, cy))
			require.NoError(t, err)

			require.True(t, expected.Equal(result))
		}
	}
}

func mustLinearProvider(t *testing.T, wordSize int) selfequiv.Provider {
	provider, err := selfequiv.NewLinearSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	return provider
}

func mustCombinedAffineProvider(t *testing.T, wordSize int) selfequiv.Provider {
	t1, err := selfequiv.NewType1AffineSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	t2, err := selfequiv.NewType2AffineSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	combined, err := selfequiv.NewCombinedSelfEquivalenceProvider(wordSize, []selfequiv.Provider{t1, t2})
	require.NoError(t, err)
	return combined
}
