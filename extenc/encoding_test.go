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

package extenc

import (
	"math/rand"
	"testing"

	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/stretchr/testify/require"
)

func TestRandomAffineEncodingInversionRoundTrips(t *testing.T) {
	const wordSize = 16
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 10; trial++ {
		e := RandomAffineEncoding(r, wordSize)
		require.True(t, e.M.IsInvertible())

		inv, err := e.Invert()
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			x := gf2.NewVector(2 * wordSize)
			for b := 0; b < 2*wordSize; b++ {
				x.Set(b, r.Intn(2))
			}

			y, err := e.Apply(x)
			require.NoError(t, err)
			back, err := inv.Apply(y)
			require.NoError(t, err)
			require.True(t, x.Equal(back))
		}
	}
}

func TestRandomLinearEncodingHasZeroOffset(t *testing.T) {
	r := rand.New(rand.NewSource(43))
	e := RandomLinearEncoding(r, 16)
	require.True(t, e.V.IsZero())
}

func TestIdentityEncodingIsNoOp(t *testing.T) {
	const wordSize = 8
	e := Identity(wordSize)
	x := gf2.VectorFromUint64(0xabcd, 2*wordSize)
	y, err := e.Apply(x)
	require.NoError(t, err)
	require.True(t, x.Equal(y))
}
