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
	"github.com/jvdsn/white-box-speck-go/gf2"
)

// modularAdditionStep computes S(x, y) = (x + y mod 2^wordSize, y) on a
// 2*wordSize-bit vector holding the little-endian bits of x in the low
// half and y in the high half, matching the layout used throughout this
// package and the speck package.
func modularAdditionStep(v gf2.Vector, wordSize int) gf2.Vector {
	mask := uint64(1)<<uint(wordSize) - 1
	xv, _ := v.Slice(0, wordSize)
	yv, _ := v.Slice(wordSize, 2*wordSize)
	x := xv.Uint64()
	y := yv.Uint64()
	sum := (x + y) & mask
	return gf2.Concat(gf2.VectorFromUint64(sum, wordSize), gf2.VectorFromUint64(y, wordSize))
}

// checkSelfEquivalence verifies S(v) = b + B*S(a + A*v) for every v in vs.
func checkSelfEquivalence(se SelfEquivalence, wordSize int, vs []gf2.Vector) (bool, error) {
	A, a, B, b := se.Components()
	for _, v := range vs {
		lhs := modularAdditionStep(v, wordSize)

		av, err := A.MulVec(v)
		if err != nil {
			return false, err
		}
		wrapped, err := av.Add(a)
		if err != nil {
			return false, err
		}
		sWrapped := modularAdditionStep(wrapped, wordSize)
		bsv, err := B.MulVec(sWrapped)
		if err != nil {
			return false, err
		}
		rhs, err := bsv.Add(b)
		if err != nil {
			return false, err
		}

		if !lhs.Equal(rhs) {
			return false, nil
		}
	}
	return true, nil
}

// allVectors enumerates every 2*wordSize-bit vector. Only usable for small
// word sizes in tests.
func allVectors(wordSize int) []gf2.Vector {
	n := 2 * wordSize
	total := uint64(1) << uint(n)
	vs := make([]gf2.Vector, 0, total)
	for x := uint64(0); x < total; x++ {
		vs = append(vs, gf2.VectorFromUint64(x, n))
	}
	return vs
}
