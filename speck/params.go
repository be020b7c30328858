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

// Package speck implements the Speck block cipher's algebraic model: the
// key schedule, the bit-level GF(2) decomposition of its round function,
// and the white-box builder that assembles encoded affine layers from a
// self-equivalence provider.
package speck

import "github.com/pkg/errors"

// ErrInvalidParams is returned when an unsupported (blockSize, keySize)
// combination, or a key of the wrong length, is supplied.
var ErrInvalidParams = errors.New("invalid or unsupported speck parameters")

// roundCounts is the standard Speck round-count table, keyed by
// (blockSize, keySize).
var roundCounts = map[[2]int]int{
	{32, 64}:   22,
	{48, 72}:   22,
	{48, 96}:   23,
	{64, 96}:   26,
	{64, 128}:  27,
	{96, 96}:   28,
	{96, 144}:  29,
	{128, 128}: 32,
	{128, 192}: 33,
	{128, 256}: 34,
}

// Params holds the derived parameters of a particular Speck instance.
type Params struct {
	BlockSize int
	KeySize   int
	WordSize  int
	KeyWords  int
	Rounds    int
	Alpha     int
	Beta      int
}

// NewParams validates (blockSize, keySize) against the standard Speck
// parameter table and returns the derived Params.
// It returns ErrInvalidParams if the combination is not supported.
func NewParams(blockSize, keySize int) (Params, error) {
	rounds, ok := roundCounts[[2]int{blockSize, keySize}]
	if !ok {
		return Params{}, errors.Wrapf(ErrInvalidParams, "unsupported block size/key size combination: %d/%d", blockSize, keySize)
	}

	wordSize := blockSize / 2
	alpha, beta := 8, 3
	if wordSize == 16 {
		alpha, beta = 7, 2
	}

	return Params{
		BlockSize: blockSize,
		KeySize:   keySize,
		WordSize:  wordSize,
		KeyWords:  keySize / wordSize,
		Rounds:    rounds,
		Alpha:     alpha,
		Beta:      beta,
	}, nil
}

// wordMask returns the bitmask for a word of the given bit width.
func wordMask(wordSize int) uint64 {
	if wordSize == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(wordSize)) - 1
}

func rotateRight(x uint64, positions, wordSize int) uint64 {
	mask := wordMask(wordSize)
	positions %= wordSize
	if positions < 0 {
		positions += wordSize
	}
	x &= mask
	return ((x >> uint(positions)) | (x << uint(wordSize-positions))) & mask
}

func rotateLeft(x uint64, positions, wordSize int) uint64 {
	return rotateRight(x, wordSize-positions%wordSize, wordSize)
}
