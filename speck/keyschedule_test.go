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

	"github.com/stretchr/testify/require"
)

var speckInstances = [][2]int{
	{32, 64}, {48, 72}, {48, 96}, {64, 96}, {64, 128},
	{96, 96}, {96, 144}, {128, 128}, {128, 192}, {128, 256},
}

func TestKeyExpansionRoundTripsThroughInverse(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for _, bk := range speckInstances {
		p, err := NewParams(bk[0], bk[1])
		require.NoError(t, err)

		for trial := 0; trial < 5; trial++ {
			key := make([]uint64, p.KeyWords)
			for i := range key {
				key[i] = uint64(r.Uint32()) & wordMask(p.WordSize)
			}

			roundKeys, err := p.KeyExpansion(key)
			require.NoError(t, err)
			require.Len(t, roundKeys, p.Rounds)

			recovered, err := p.InverseKeyExpansion(roundKeys, 0)
			require.NoError(t, err)
			require.Equal(t, key, recovered)
		}
	}
}

func TestKeyExpansionRejectsWrongLength(t *testing.T) {
	p, err := NewParams(32, 64)
	require.NoError(t, err)

	_, err = p.KeyExpansion([]uint64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestInverseKeyExpansionFromPartialRoundKeys(t *testing.T) {
	p, err := NewParams(48, 72)
	require.NoError(t, err)
	key := []uint64{0x030201, 0x0a0908, 0x121110}

	roundKeys, err := p.KeyExpansion(key)
	require.NoError(t, err)

	// Dropping the leading round key still leaves enough material once
	// skipped accounts for it.
	recovered, err := p.InverseKeyExpansion(roundKeys[1:], 1)
	require.NoError(t, err)
	require.Equal(t, key, recovered)
}
