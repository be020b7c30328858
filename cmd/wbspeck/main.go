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

// Command wbspeck generates a white-box implementation of Speck from a
// master key and writes its encoded affine layers and input external
// encoding to disk as JSON; the output external encoding is already folded
// into the last layer, so it is not written separately. It is the thin
// front-end around the speck, selfequiv, and extenc packages; it does not
// emit C, which is an external collaborator left as an extension point.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	mathrand "math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jvdsn/white-box-speck-go/extenc"
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/jvdsn/white-box-speck-go/selfequiv"
	"github.com/jvdsn/white-box-speck-go/speck"
)

func main() {
	blockSize := flag.Int("block-size", 128, "the block size in bits of the Speck implementation (32, 48, 64, 96, 128)")
	keySize := flag.Int("key-size", 256, "the key size in bits of the Speck implementation")
	outputDir := flag.String("output-dir", ".", "the directory to write whitebox.json to")
	selfEquivalences := flag.String("self-equivalences", "affine", "the type of self-equivalences to use (affine, linear)")
	debug := flag.Bool("debug", false, "log debug messages")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Println("usage: wbspeck <hex-key-word>... [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	debugf := func(format string, args ...interface{}) {
		if *debug {
			logger.Printf(format, args...)
		}
	}

	key, err := parseKeyWords(flag.Args())
	if err != nil {
		logger.Printf("invalid key: %v", err)
		os.Exit(1)
	}

	p, err := speck.NewParams(*blockSize, *keySize)
	if err != nil {
		logger.Printf("invalid parameters: %v", err)
		os.Exit(1)
	}
	if len(key) != p.KeyWords {
		logger.Printf("invalid key: expected %d words of %d bits, got %d", p.KeyWords, p.WordSize, len(key))
		os.Exit(1)
	}

	r, err := seededRand()
	if err != nil {
		logger.Printf("could not seed random number generator: %v", err)
		os.Exit(1)
	}

	debugf("generating random external encodings...")
	provider, in, out, err := buildProvider(p, *selfEquivalences, r)
	if err != nil {
		logger.Printf("invalid self-equivalences: %v", err)
		os.Exit(1)
	}

	debugf("generating matrices and vectors using %s self-equivalences...", *selfEquivalences)
	wb, err := speck.Build(p, key, provider, in, out, r)
	if err != nil {
		logger.Printf("could not build white-box implementation: %v", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		logger.Printf("could not create output directory: %v", err)
		os.Exit(1)
	}

	outPath := filepath.Join(*outputDir, "whitebox.json")
	debugf("writing %s...", outPath)
	if err := writeWhiteBox(outPath, wb, *selfEquivalences); err != nil {
		logger.Printf("could not write output: %v", err)
		os.Exit(1)
	}

	debugf("done!")
}

// parseKeyWords parses each argument as a hexadecimal word of the key, most
// significant word first, matching the original command-line convention.
func parseKeyWords(args []string) ([]uint64, error) {
	key := make([]uint64, len(args))
	for i, arg := range args {
		w, err := strconv.ParseUint(arg, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("key word %q: %w", arg, err)
		}
		key[i] = w
	}
	return key, nil
}

// buildProvider returns the self-equivalence provider and pair of random
// external encodings matching kind, mirroring the two modes the original
// front-end supports: "affine" combines both affine self-equivalence types
// with affine external encodings, "linear" uses the linear self-equivalence
// provider with linear (zero-offset) external encodings.
func buildProvider(p speck.Params, kind string, r *mathrand.Rand) (selfequiv.Provider, extenc.Encoding, extenc.Encoding, error) {
	switch kind {
	case "affine":
		type1, err := selfequiv.NewType1AffineSelfEquivalenceProvider(p.WordSize)
		if err != nil {
			return nil, extenc.Encoding{}, extenc.Encoding{}, err
		}
		type2, err := selfequiv.NewType2AffineSelfEquivalenceProvider(p.WordSize)
		if err != nil {
			return nil, extenc.Encoding{}, extenc.Encoding{}, err
		}
		provider, err := selfequiv.NewCombinedSelfEquivalenceProvider(p.WordSize, []selfequiv.Provider{type1, type2})
		if err != nil {
			return nil, extenc.Encoding{}, extenc.Encoding{}, err
		}
		return provider, extenc.RandomAffineEncoding(r, p.WordSize), extenc.RandomAffineEncoding(r, p.WordSize), nil
	case "linear":
		provider, err := selfequiv.NewLinearSelfEquivalenceProvider(p.WordSize)
		if err != nil {
			return nil, extenc.Encoding{}, extenc.Encoding{}, err
		}
		return provider, extenc.RandomLinearEncoding(r, p.WordSize), extenc.RandomLinearEncoding(r, p.WordSize), nil
	default:
		return nil, extenc.Encoding{}, extenc.Encoding{}, fmt.Errorf("unsupported self-equivalences kind %q", kind)
	}
}

// seededRand returns a math/rand.Rand seeded from the operating system's
// cryptographic RNG, so that repeated invocations of the command draw
// independent self-equivalences and external encodings without requiring
// every algebraic package in this module to depend on crypto/rand directly.
func seededRand() (*mathrand.Rand, error) {
	max := big.NewInt(0).SetUint64(^uint64(0))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, err
	}
	var seed int64
	b := n.Bytes()
	var padded [8]byte
	copy(padded[8-len(b):], b)
	seed = int64(binary.BigEndian.Uint64(padded[:]))
	return mathrand.New(mathrand.NewSource(seed)), nil
}

// whiteBoxFile is the on-disk JSON representation of a generated white-box
// implementation: the input external encoding plus the encoded affine layer
// sequence, in the bit-vector/bit-matrix shape a code generator (an external
// collaborator, see the package doc comment) would consume to emit C.
// Layers[len(Layers)-1] already has the output external encoding folded in
// by speck.Build, so there is no separate output encoding field to walk.
type whiteBoxFile struct {
	BlockSize        int         `json:"block_size"`
	KeySize          int         `json:"key_size"`
	WordSize         int         `json:"word_size"`
	Rounds           int         `json:"rounds"`
	SelfEquivalences string      `json:"self_equivalences"`
	InputEncoding    encodingDTO `json:"input_encoding"`
	Layers           []layerDTO  `json:"layers"`
}

type layerDTO struct {
	M [][]int `json:"m"`
	V []int   `json:"v"`
}

type encodingDTO struct {
	M [][]int `json:"m"`
	V []int   `json:"v"`
}

func matrixDTO(m gf2.Matrix) [][]int {
	rows := make([][]int, m.Rows())
	for i := range rows {
		row := make([]int, m.Cols())
		for j := range row {
			row[j] = m.Get(i, j)
		}
		rows[i] = row
	}
	return rows
}

func vectorDTO(v gf2.Vector) []int {
	bits := make([]int, v.Len())
	for i := range bits {
		bits[i] = v.Get(i)
	}
	return bits
}

func writeWhiteBox(path string, wb speck.WhiteBox, kind string) error {
	file := whiteBoxFile{
		BlockSize:        wb.Params.BlockSize,
		KeySize:          wb.Params.KeySize,
		WordSize:         wb.Params.WordSize,
		Rounds:           wb.Params.Rounds,
		SelfEquivalences: kind,
		InputEncoding:    encodingDTO{M: matrixDTO(wb.In.M), V: vectorDTO(wb.In.V)},
		Layers:           make([]layerDTO, len(wb.Layers)),
	}
	for i, layer := range wb.Layers {
		file.Layers[i] = layerDTO{M: matrixDTO(layer.M), V: vectorDTO(layer.V)}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
