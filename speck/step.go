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

// S is the single non-linear step of the Speck round function,
// S(x, y) = (x + y mod 2^w, y), acting on a bit-vector of length 2w that
// holds the little-endian bits of x in the low half and y in the high
// half. Every self-equivalence provider in this module generates affine
// bijections that commute with S in the sense required by a white-box
// construction.
func (p Params) S(v gf2.Vector) gf2.Vector {
	mask := wordMask(p.WordSize)
	xv, _ := v.Slice(0, p.WordSize)
	yv, _ := v.Slice(p.WordSize, p.BlockSize)
	sum := (xv.Uint64() + yv.Uint64()) & mask
	return gf2.Concat(gf2.VectorFromUint64(sum, p.WordSize), yv)
}
