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
	"math/rand"
	"testing"

	"github.com/jvdsn/white-box-speck-go/extenc"
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/jvdsn/white-box-speck-go/selfequiv"
	"github.com/jvdsn/white-box-speck-go/speck"
	"github.com/stretchr/testify/require"
)

func TestLinearRecoversKeyAndEncodings(t *testing.T) {
	p, err := speck.NewParams(64, 96)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(42))

	provider, err := selfequiv.NewLinearSelfEquivalenceProvider(p.WordSize)
	require.NoError(t, err)

	for trial := 0; trial < 10; trial++ {
		key := make([]uint64, p.KeyWords)
		for i := range key {
			key[i] = uint64(r.Uint32()) & ((uint64(1) << uint(p.WordSize)) - 1)
		}

		in := extenc.RandomLinearEncoding(r, p.WordSize)
		out := extenc.RandomLinearEncoding(r, p.WordSize)

		wb, err := speck.Build(p, key, provider, in, out, r)
		require.NoError(t, err)

		recoveredKey, recoveredIn, recoveredOut, err := Linear(p, wb.Layers)
		require.NoError(t, err)

		require.Equal(t, key, recoveredKey)
		require.True(t, matricesEqual(in.M, recoveredIn.M), "input encoding matrix mismatch on trial %d", trial)
		require.True(t, matricesEqual(out.M, recoveredOut.M), "output encoding matrix mismatch on trial %d", trial)
	}
}

func matricesEqual(a, b gf2.Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestLinearRejectsTooFewLayers(t *testing.T) {
	p, err := speck.NewParams(32, 64)
	require.NoError(t, err)

	_, _, _, err = Linear(p, nil)
	require.ErrorIs(t, err, ErrAttackFailed)
}
