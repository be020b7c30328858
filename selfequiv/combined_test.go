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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombinedSelfEquivalenceProviderSatisfiesInvariant(t *testing.T) {
	const wordSize = 4

	linear, err := NewLinearSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	type1, err := NewType1AffineSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	type2, err := NewType2AffineSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)

	combined, err := NewCombinedSelfEquivalenceProvider(wordSize, []Provider{linear, type1, type2})
	require.NoError(t, err)
	require.Equal(t, wordSize, combined.WordSize())

	vs := allVectors(wordSize)
	r := rand.New(rand.NewSource(4))
	for trial := 0; trial < 20; trial++ {
		se, err := combined.RandomSelfEquivalence(r)
		require.NoError(t, err)

		ok, err := checkSelfEquivalence(se, wordSize, vs)
		require.NoError(t, err)
		require.True(t, ok, "trial %d: self-equivalence invariant violated", trial)
	}
}

func TestCombinedSelfEquivalenceProviderRejectsMismatchedWordSize(t *testing.T) {
	linear4, err := NewLinearSelfEquivalenceProvider(4)
	require.NoError(t, err)
	linear5, err := NewLinearSelfEquivalenceProvider(5)
	require.NoError(t, err)

	_, err = NewCombinedSelfEquivalenceProvider(4, []Provider{linear4, linear5})
	require.ErrorIs(t, err, ErrInvalidWordSize)
}

func TestCombinedSelfEquivalenceProviderWithNoDelegatesIsIdentity(t *testing.T) {
	const wordSize = 4
	combined, err := NewCombinedSelfEquivalenceProvider(wordSize, nil)
	require.NoError(t, err)

	se, err := combined.RandomSelfEquivalence(rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	A, a, B, b := se.Components()
	require.True(t, a.IsZero())
	require.True(t, b.IsZero())
	for i := 0; i < 2*wordSize; i++ {
		for j := 0; j < 2*wordSize; j++ {
			want := 0
			if i == j {
				want = 1
			}
			require.Equal(t, want, A.Get(i, j))
			require.Equal(t, want, B.Get(i, j))
		}
	}
}
