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

import "github.com/jvdsn/white-box-speck-go/gf2"

// RotateRightMatrix returns the 2*WordSize square matrix M such that M*v
// corresponds to rotating the x-half of v right by xPos bits and the
// y-half right by yPos bits, where v holds the little-endian bits of x and
// y concatenated.
func (p Params) RotateRightMatrix(xPos, yPos int) gf2.Matrix {
	m := gf2.NewMatrix(p.BlockSize, p.BlockSize)
	w := p.WordSize
	for i := 0; i < w; i++ {
		m.Set(i, (i+xPos)%w, 1)
		m.Set(w+i, w+(i+yPos)%w, 1)
	}
	return m
}

// RotateLeftMatrix returns the matrix corresponding to a left bit rotation
// of x and y; it is RotateRightMatrix evaluated at negative positions.
func (p Params) RotateLeftMatrix(xPos, yPos int) gf2.Matrix {
	return p.RotateRightMatrix(mod(-xPos, p.WordSize), mod(-yPos, p.WordSize))
}

func mod(x, m int) int {
	x %= m
	if x < 0 {
		x += m
	}
	return x
}

// XorXYMatrix returns the matrix corresponding to y = x ^ y.
func (p Params) XorXYMatrix() gf2.Matrix {
	m := gf2.NewMatrix(p.BlockSize, p.BlockSize)
	w := p.WordSize
	for i := 0; i < w; i++ {
		m.Set(i, i, 1)
		m.Set(w+i, i, 1)
		m.Set(w+i, w+i, 1)
	}
	return m
}

// XorRoundKeyVector returns the vector holding the little-endian bits of k
// in the x-half, and zero in the y-half, corresponding to x = x ^ k.
func (p Params) XorRoundKeyVector(k uint64) gf2.Vector {
	v := gf2.NewVector(p.BlockSize)
	for i := 0; i < p.WordSize; i++ {
		v.Set(i, int((k>>uint(i))&1))
	}
	return v
}
