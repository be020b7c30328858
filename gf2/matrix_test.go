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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomInvertibleMatrix(t *testing.T, n int, r *rand.Rand) Matrix {
	t.Helper()
	for {
		m := NewMatrix(n, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m.Set(i, j, r.Intn(2))
			}
		}
		if m.IsInvertible() {
			return m
		}
	}
}

func TestIdentityIsInvertible(t *testing.T) {
	id := Identity(5)
	inv, err := id.Inverse()
	assert.NoError(t, err)
	assert.Equal(t, id, inv)
}

func TestMulAndInverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		m := randomInvertibleMatrix(t, 8, r)
		inv, err := m.Inverse()
		assert.NoError(t, err)

		prod, err := m.Mul(inv)
		assert.NoError(t, err)
		assert.Equal(t, Identity(8), prod)
	}
}

func TestSingularMatrixInverseFails(t *testing.T) {
	m := NewMatrix(3, 3)
	m.Set(0, 0, 1)
	m.Set(1, 0, 1) // row 1 duplicates row 0: not full rank.

	_, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestMulVec(t *testing.T) {
	m := Identity(4)
	v := VectorFromBits([]int{1, 0, 1, 1})

	out, err := m.MulVec(v)
	assert.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestSubmatrixAndBlock(t *testing.T) {
	zero := NewMatrix(2, 2)
	one := Identity(2)

	block, err := Block([][]Matrix{
		{zero, one},
		{one, zero},
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, block.Rows())
	assert.Equal(t, 4, block.Cols())

	topRight, err := block.Submatrix(0, 2, 2, 2)
	assert.NoError(t, err)
	assert.Equal(t, one, topRight)

	bottomLeft, err := block.Submatrix(2, 0, 2, 2)
	assert.NoError(t, err)
	assert.Equal(t, one, bottomLeft)
}

func TestSolve(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	m := randomInvertibleMatrix(t, 6, r)
	x := VectorFromBits([]int{1, 0, 1, 1, 0, 1})

	v, err := m.MulVec(x)
	assert.NoError(t, err)

	solved, err := Solve(m, v)
	assert.NoError(t, err)
	assert.Equal(t, x, solved)
}

func TestTransposeAndRank(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(0, 0, 1)
	m.Set(1, 2, 1)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, 1, tr.Get(0, 0))
	assert.Equal(t, 1, tr.Get(2, 1))
	assert.Equal(t, 2, m.Rank())
}
