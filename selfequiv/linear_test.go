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

func TestLinearSelfEquivalenceProviderSatisfiesInvariant(t *testing.T) {
	const wordSize = 4
	provider, err := NewLinearSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	require.Equal(t, wordSize, provider.WordSize())
	require.Equal(t, 2*wordSize, provider.CoefficientsSize())

	vs := allVectors(wordSize)
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		se, err := provider.RandomSelfEquivalence(r)
		require.NoError(t, err)

		ok, err := checkSelfEquivalence(se, wordSize, vs)
		require.NoError(t, err)
		require.True(t, ok, "trial %d: self-equivalence invariant violated", trial)
	}
}

func TestLinearSelfEquivalenceProviderRejectsWrongLength(t *testing.T) {
	provider, err := NewLinearSelfEquivalenceProvider(4)
	require.NoError(t, err)

	_, err = provider.SelfEquivalence([]int{0, 1, 1})
	require.ErrorIs(t, err, ErrInvalidCoefficients)
}

func TestLinearSelfEquivalenceProviderZeroCoefficientsIsIdentity(t *testing.T) {
	const wordSize = 4
	provider, err := NewLinearSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)

	se, err := provider.SelfEquivalence(make([]int, provider.CoefficientsSize()))
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
