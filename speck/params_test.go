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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParamsDerivesAlphaBeta(t *testing.T) {
	p, err := NewParams(32, 64)
	require.NoError(t, err)
	require.Equal(t, 16, p.WordSize)
	require.Equal(t, 7, p.Alpha)
	require.Equal(t, 2, p.Beta)
	require.Equal(t, 22, p.Rounds)
	require.Equal(t, 4, p.KeyWords)

	p, err = NewParams(128, 256)
	require.NoError(t, err)
	require.Equal(t, 64, p.WordSize)
	require.Equal(t, 8, p.Alpha)
	require.Equal(t, 3, p.Beta)
	require.Equal(t, 34, p.Rounds)
}

func TestNewParamsRejectsUnsupportedCombination(t *testing.T) {
	_, err := NewParams(32, 128)
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestRotateRightLeftAreInverses(t *testing.T) {
	require.Equal(t, uint64(0b1), rotateLeft(rotateRight(0b1, 3, 8), 3, 8))
	require.Equal(t, uint64(0xab), rotateLeft(rotateRight(0xab, 5, 8), 5, 8))
}
