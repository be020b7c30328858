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

// KeyExpansion performs the standard Speck key expansion and returns the
// p.Rounds round keys.
//
// key must hold exactly p.KeyWords words, each in [0, 2^p.WordSize). The
// initial state is k[0] = key[KeyWords-1], l = reverse(key[:KeyWords-1]).
func (p Params) KeyExpansion(key []uint64) ([]uint64, error) {
	if len(key) != p.KeyWords {
		return nil, ErrInvalidParams
	}

	k := make([]uint64, 0, p.Rounds)
	k = append(k, key[p.KeyWords-1])

	l := make([]uint64, 0, p.Rounds+p.KeyWords)
	for i := p.KeyWords - 2; i >= 0; i-- {
		l = append(l, key[i])
	}

	mask := wordMask(p.WordSize)
	for i := 0; i < p.Rounds-1; i++ {
		x := rotateRight(l[i], p.Alpha, p.WordSize)
		x = (x + k[i]) & mask
		x ^= uint64(i)

		y := rotateLeft(k[i], p.Beta, p.WordSize)
		y ^= x

		l = append(l, x)
		k = append(k, y)
	}

	return k, nil
}

// InverseKeyExpansion reconstructs the master key from a sequence of round
// keys k, optionally preceded by skipped missing leading round keys.
//
// It uses the first p.KeyWords entries of k, which is enough round-key
// material to rebuild every l-state back to the master key words, so it
// requires len(k) >= p.KeyWords; any further entries are ignored.
func (p Params) InverseKeyExpansion(k []uint64, skipped int) ([]uint64, error) {
	if len(k) < p.KeyWords {
		return nil, ErrInvalidParams
	}
	m := p.KeyWords

	mask := wordMask(p.WordSize)

	l := make([]uint64, skipped, skipped+m-1)

	for i := 0; i < m-1; i++ {
		x := rotateLeft(k[i], p.Beta, p.WordSize) ^ k[i+1]
		x ^= uint64(skipped + i)
		x = (x - k[i]) & mask
		x = rotateRight(x, -p.Alpha, p.WordSize)
		l = append(l, x)
	}

	// Work backwards from position skipped-1 down to 0, rebuilding both l
	// and the leading k value.
	kk := k[0]
	for i := skipped - 1; i >= 0; i-- {
		kk ^= l[i+m-1]
		kk = rotateRight(kk, p.Beta, p.WordSize)

		x := l[i+m-1] ^ uint64(i)
		x = (x - kk) & mask
		x = rotateRight(x, -p.Alpha, p.WordSize)
		l[i] = x
	}

	key := make([]uint64, 0, p.KeyWords)
	for i := m - 2; i >= 0; i-- {
		key = append(key, l[i])
	}
	key = append(key, kk)

	return key, nil
}
