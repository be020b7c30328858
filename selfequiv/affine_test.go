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

func TestType1AffineSelfEquivalenceProviderSatisfiesInvariant(t *testing.T) {
	const wordSize = 4
	provider, err := NewType1AffineSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	require.Equal(t, wordSize, provider.WordSize())
	require.Equal(t, 2*wordSize+7, provider.CoefficientsSize())

	vs := allVectors(wordSize)
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		se, err := provider.RandomSelfEquivalence(r)
		require.NoError(t, err)

		ok, err := checkSelfEquivalence(se, wordSize, vs)
		require.NoError(t, err)
		require.True(t, ok, "trial %d: self-equivalence invariant violated", trial)
	}
}

func TestType2AffineSelfEquivalenceProviderSatisfiesInvariant(t *testing.T) {
	const wordSize = 4
	provider, err := NewType2AffineSelfEquivalenceProvider(wordSize)
	require.NoError(t, err)
	require.Equal(t, wordSize, provider.WordSize())
	require.Equal(t, 2*wordSize+7, provider.CoefficientsSize())

	vs := allVectors(wordSize)
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		se, err := provider.RandomSelfEquivalence(r)
		require.NoError(t, err)

		ok, err := checkSelfEquivalence(se, wordSize, vs)
		require.NoError(t, err)
		require.True(t, ok, "trial %d: self-equivalence invariant violated", trial)
	}
}

func TestType2AffineSelfEquivalenceProviderRejectsZeroLeadingPair(t *testing.T) {
	provider, err := NewType2AffineSelfEquivalenceProvider(4)
	require.NoError(t, err)

	coefficients := make([]int, provider.CoefficientsSize())
	_, err = provider.SelfEquivalence(coefficients)
	require.ErrorIs(t, err, ErrInvalidCoefficients)
}

func TestAffineProvidersRejectSmallWordSize(t *testing.T) {
	_, err := NewType1AffineSelfEquivalenceProvider(2)
	require.ErrorIs(t, err, ErrInvalidWordSize)

	_, err = NewType2AffineSelfEquivalenceProvider(2)
	require.ErrorIs(t, err, ErrInvalidWordSize)
}

func TestAffineProvidersRejectWrongCoefficientsLength(t *testing.T) {
	p1, err := NewType1AffineSelfEquivalenceProvider(4)
	require.NoError(t, err)
	_, err = p1.SelfEquivalence([]int{0, 1})
	require.ErrorIs(t, err, ErrInvalidCoefficients)

	p2, err := NewType2AffineSelfEquivalenceProvider(4)
	require.NoError(t, err)
	_, err = p2.SelfEquivalence([]int{0, 1})
	require.ErrorIs(t, err, ErrInvalidCoefficients)
}
