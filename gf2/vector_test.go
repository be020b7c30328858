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

package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAddIsXor(t *testing.T) {
	a := VectorFromBits([]int{1, 0, 1, 1})
	b := VectorFromBits([]int{1, 1, 0, 1})

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, VectorFromBits([]int{0, 1, 1, 0}), sum)
}

func TestVectorDot(t *testing.T) {
	a := VectorFromBits([]int{1, 1, 0, 1})
	b := VectorFromBits([]int{1, 0, 1, 1})

	d, err := a.Dot(b)
	assert.NoError(t, err)
	// Shared 1-positions: index 0 and index 3, parity of 2 is 0.
	assert.Equal(t, 0, d)
}

func TestVectorDimensionMismatch(t *testing.T) {
	a := NewVector(3)
	b := NewVector(4)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = a.Dot(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestVectorSliceAndConcat(t *testing.T) {
	v := VectorFromBits([]int{1, 0, 1, 1, 0, 0})

	low, err := v.Slice(0, 3)
	assert.NoError(t, err)
	assert.Equal(t, VectorFromBits([]int{1, 0, 1}), low)

	high, err := v.Slice(3, 6)
	assert.NoError(t, err)
	assert.Equal(t, VectorFromBits([]int{1, 0, 0}), high)

	assert.True(t, v.Equal(Concat(low, high)))
}

func TestVectorUint64RoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 0xdead, 0xffffffffffffffff} {
		n := 64
		v := VectorFromUint64(x, n)
		assert.Equal(t, x, v.Uint64())
	}
}

func TestVectorIsZero(t *testing.T) {
	assert.True(t, NewVector(10).IsZero())
	v := NewVector(10)
	v.Set(5, 1)
	assert.False(t, v.IsZero())
}
