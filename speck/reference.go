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

// Encrypt runs the plain (non white-box) Speck round function p.Rounds
// times over (x, y) using roundKeys, and is used as the ground truth a
// generated white-box implementation is checked against.
func (p Params) Encrypt(roundKeys []uint64, x, y uint64) (uint64, uint64) {
	mask := wordMask(p.WordSize)
	for i := 0; i < p.Rounds; i++ {
		x = rotateRight(x, p.Alpha, p.WordSize)
		x = (x + y) & mask
		x ^= roundKeys[i]
		y = rotateLeft(y, p.Beta, p.WordSize)
		y ^= x
	}
	return x, y
}

// Decrypt inverts Encrypt.
func (p Params) Decrypt(roundKeys []uint64, x, y uint64) (uint64, uint64) {
	mask := wordMask(p.WordSize)
	for i := p.Rounds - 1; i >= 0; i-- {
		y ^= x
		y = rotateRight(y, p.Beta, p.WordSize)
		x ^= roundKeys[i]
		x = (x - y) & mask
		x = rotateLeft(x, p.Alpha, p.WordSize)
	}
	return x, y
}
