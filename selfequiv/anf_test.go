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
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestANFSelfEquivalenceProviderUnavailableUntilLoaded(t *testing.T) {
	provider := NewANFSelfEquivalenceProvider(4)
	require.Equal(t, 4, provider.WordSize())
	require.Equal(t, 0, provider.CoefficientsSize())

	_, err := provider.SelfEquivalence(nil)
	require.ErrorIs(t, err, ErrExpressionsUnavailable)

	_, err = provider.RandomSelfEquivalence(rand.New(rand.NewSource(6)))
	require.ErrorIs(t, err, ErrExpressionsUnavailable)
}

func TestANFSelfEquivalenceProviderLoadsAndSatisfiesInvariant(t *testing.T) {
	const wordSize = 4
	provider := NewANFSelfEquivalenceProvider(wordSize)

	// An identity base with no free entries: the implicit matrix is always
	// the identity, which trivially satisfies the self-equivalence
	// invariant and exercises the load/extract path end to end.
	var baseOnes [][2]int
	for i := 0; i < 4*wordSize; i++ {
		baseOnes = append(baseOnes, [2]int{i, i})
	}
	set := anfExpressionSet{WordSize: wordSize, BaseOnes: baseOnes}
	encoded, err := json.Marshal(set)
	require.NoError(t, err)
	require.NoError(t, provider.LoadExpressions(strings.NewReader(string(encoded))))
	require.Equal(t, 0, provider.CoefficientsSize())

	vs := allVectors(wordSize)
	se, err := provider.SelfEquivalence(nil)
	require.NoError(t, err)

	ok, err := checkSelfEquivalence(se, wordSize, vs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestANFSelfEquivalenceProviderRejectsWrongWordSize(t *testing.T) {
	provider := NewANFSelfEquivalenceProvider(4)
	blob := `{"word_size":5,"entries":[]}`
	err := provider.LoadExpressions(strings.NewReader(blob))
	require.ErrorIs(t, err, ErrInvalidWordSize)
}
