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

package attack

import (
	"fmt"
	"math/rand"

	"github.com/jvdsn/white-box-speck-go/boolpoly"
	"github.com/jvdsn/white-box-speck-go/extenc"
	"github.com/jvdsn/white-box-speck-go/gf2"
	"github.com/jvdsn/white-box-speck-go/selfequiv"
	"github.com/jvdsn/white-box-speck-go/speck"
	"github.com/pkg/errors"
)

// Candidate is one guessed solution produced by Affine. Affine's system of
// equations can leave a handful of coefficient bits undetermined, so it
// returns every combination that is consistent with the encoded layers; the
// caller is expected to pick the right one by re-encrypting a known
// plaintext/ciphertext pair.
type Candidate struct {
	Key []uint64
	In  extenc.Encoding
	Out extenc.Encoding
}

// instance is a concretely evaluated self-equivalence (A, a, B, b).
type instance struct {
	A gf2.Matrix
	a gf2.Vector
	B gf2.Matrix
	b gf2.Vector
}

// chainState is a partial recovery: the most recently pinned-down
// self-equivalence instance in the round-by-round chain described in
// Affine's doc comment, together with the round keys recovered so far.
type chainState struct {
	se        instance
	roundKeys []uint64
}

// probeAffineModel builds a symbolic model of a CoefficientsProvider's four
// components as affine GF(2) polynomials in the ring's named variables. It
// does so by finite differences: it samples the provider at the all-zero
// coefficient vector and at each unit vector, and toggles a ring variable
// into an entry wherever flipping that coefficient bit flips the entry. This
// model is only correct if the provider's components really are affine in
// its coefficients; selfCheckAffine verifies that empirically before the
// model is relied upon.
func probeAffineModel(ring *boolpoly.Ring, names []string, provider selfequiv.CoefficientsProvider) (boolpoly.Matrix, boolpoly.Vec, boolpoly.Matrix, boolpoly.Vec, error) {
	n := len(names)
	base := make([]int, n)
	se0, err := provider.SelfEquivalence(base)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	A0, a0, B0, b0 := se0.Components()
	rows, cols := A0.Rows(), A0.Cols()

	Asym := boolpoly.ConstMatrix(ring, A0)
	Bsym := boolpoly.ConstMatrix(ring, B0)
	asym := boolpoly.ConstVec(ring, a0)
	bsym := boolpoly.ConstVec(ring, b0)

	for k, name := range names {
		c := make([]int, n)
		c[k] = 1
		se, err := provider.SelfEquivalence(c)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		Ak, ak, Bk, bk := se.Components()
		v := ring.Var(name)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if Ak.Get(i, j) != A0.Get(i, j) {
					Asym[i][j] = Asym[i][j].Add(v)
				}
				if Bk.Get(i, j) != B0.Get(i, j) {
					Bsym[i][j] = Bsym[i][j].Add(v)
				}
			}
		}
		for i := 0; i < a0.Len(); i++ {
			if ak.Get(i) != a0.Get(i) {
				asym[i] = asym[i].Add(v)
			}
			if bk.Get(i) != b0.Get(i) {
				bsym[i] = bsym[i].Add(v)
			}
		}
	}
	return Asym, asym, Bsym, bsym, nil
}

// selfCheckAffine samples the provider at random multi-bit coefficient
// vectors and compares it against the finite-difference model built by
// probeAffineModel, returning ErrNotAffine on any mismatch. Providers whose
// components are built from genuine products of coefficient bits (as
// opposed to pure XORs of them) will fail this check; see DESIGN.md.
func selfCheckAffine(r *rand.Rand, n int, Asym boolpoly.Matrix, asym boolpoly.Vec, Bsym boolpoly.Matrix, bsym boolpoly.Vec, provider selfequiv.CoefficientsProvider) error {
	for trial := 0; trial < 8; trial++ {
		c := make([]int, n)
		for i := range c {
			c[i] = r.Intn(2)
		}
		se, err := provider.SelfEquivalence(c)
		if err != nil {
			continue
		}
		A, a, B, b := se.Components()
		if !matrixEntriesEqual(A, Asym.Eval(c)) || !a.Equal(asym.Eval(c)) {
			return ErrNotAffine
		}
		if !matrixEntriesEqual(B, Bsym.Eval(c)) || !b.Equal(bsym.Eval(c)) {
			return ErrNotAffine
		}
	}
	return nil
}

func matrixEntriesEqual(a, b gf2.Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// solveForCoefficients solves the matrix equation target = Asym*rightConst
// for every consistent assignment of ring's variables, where target and
// rightConst are known and Asym is the symbolic model of a self-equivalence
// instance's A component. Because rightConst is a concrete matrix rather
// than a second symbolic unknown, this equation is affine in ring's
// variables alone, matching what boolpoly's System can solve directly.
func solveForCoefficients(ring *boolpoly.Ring, target, rightConst gf2.Matrix, Asym boolpoly.Matrix) ([][]int, error) {
	diff := boolpoly.ConstMatrix(ring, target).Add(Asym.MulConstRight(rightConst))

	sys := boolpoly.NewSystem(ring)
	for _, row := range diff {
		for _, p := range row {
			sys.Require(p)
		}
	}
	return sys.Solve()
}

// enumerateSubsets returns every subset of {0, ..., n-1} of size 0 up to
// maxDegree, each as a slice of distinct indices in ascending order.
func enumerateSubsets(n, maxDegree int) [][]int {
	out := [][]int{{}}
	for d := 1; d <= maxDegree; d++ {
		out = append(out, combinations(n, d)...)
	}
	return out
}

// combinations returns every d-element subset of {0, ..., n-1}, each in
// ascending order, in lexicographic order of index.
func combinations(n, d int) [][]int {
	if d == 0 {
		return [][]int{{}}
	}
	if d > n {
		return nil
	}
	var out [][]int
	idxs := make([]int, d)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		out = append(out, append([]int(nil), idxs...))
		k := d - 1
		for k >= 0 && idxs[k] == n-d+k {
			k--
		}
		if k < 0 {
			break
		}
		idxs[k]++
		for i := k + 1; i < d; i++ {
			idxs[i] = idxs[i-1] + 1
		}
	}
	return out
}

// subsetsOf returns every subset of t (including the empty set and t
// itself), each a slice of t's own elements in their original order.
func subsetsOf(t []int) [][]int {
	m := len(t)
	out := make([][]int, 0, 1<<uint(m))
	for mask := 0; mask < (1 << uint(m)); mask++ {
		var s []int
		for b := 0; b < m; b++ {
			if mask&(1<<uint(b)) != 0 {
				s = append(s, t[b])
			}
		}
		out = append(out, s)
	}
	return out
}

// scalarANF extracts the exact GF(2) ANF of a single scalar entry, up to
// degree len(subsets' largest element), from vals (the entry's value sampled
// at every coefficient vector described by subsets, with vals[k] the sample
// for subsets[k]). It applies the standard Möbius/finite-difference identity:
// the ANF coefficient of monomial T is the XOR, over every subset U of T, of
// the sampled value at the coefficient vector with exactly U's bits set. It
// returns only the monomials whose coefficient came out 1, keyed by a stable
// string so callers can dedupe before interning them.
func scalarANF(subsets [][]int, subsetIndex map[string]int, vals []int) map[string][]int {
	out := make(map[string][]int)
	for _, t := range subsets {
		coeff := 0
		for _, u := range subsetsOf(t) {
			coeff ^= vals[subsetIndex[fmt.Sprint(u)]]
		}
		if coeff == 1 {
			out[fmt.Sprint(t)] = t
		}
	}
	return out
}

// polyFromANF turns a scalarANF result into a MultiPoly over idx, interning
// every monomial named in anf (the empty monomial becomes the constant 1).
func polyFromANF(idx *boolpoly.MonomialIndex, anf map[string][]int) boolpoly.MultiPoly {
	p := boolpoly.ZeroMultiPoly(idx)
	for _, mono := range anf {
		if len(mono) == 0 {
			p = p.Add(boolpoly.ConstMultiPoly(idx, 1))
			continue
		}
		p = p.Add(boolpoly.Term(idx, mono...))
	}
	return p
}

// probeMultiModel builds a bounded-degree (up to degree 3) symbolic model of
// a CoefficientsProvider's four components, for providers whose components
// mix coefficient bits with genuine AND terms instead of pure XORs -- the
// type 1 and type 2 affine providers (see selfequiv/affine.go and
// DESIGN.md). It samples the provider at every coefficient vector with at
// most 3 bits set, recovers each scalar entry's exact ANF up to degree 3 via
// scalarANF, and interns into idx only the monomials that actually turn out
// nonzero somewhere, so the resulting model's column count tracks the
// provider's actual algebraic complexity rather than the full n-choose-3
// monomial count.
func probeMultiModel(ring *boolpoly.Ring, names []string, provider selfequiv.CoefficientsProvider) (*boolpoly.MonomialIndex, boolpoly.MultiMatrix, boolpoly.MultiVec, boolpoly.MultiMatrix, boolpoly.MultiVec, error) {
	n := len(names)
	subsets := enumerateSubsets(n, 3)
	subsetIndex := make(map[string]int, len(subsets))
	for i, s := range subsets {
		subsetIndex[fmt.Sprint(s)] = i
	}

	samples := make([]instance, len(subsets))
	for i, s := range subsets {
		c := make([]int, n)
		for _, v := range s {
			c[v] = 1
		}
		se, err := provider.SelfEquivalence(c)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}
		A, a, B, b := se.Components()
		samples[i] = instance{A, a, B, b}
	}

	rows, cols := samples[0].A.Rows(), samples[0].A.Cols()
	vlen := samples[0].a.Len()

	Aanf := make([][]map[string][]int, rows)
	Banf := make([][]map[string][]int, rows)
	for i := 0; i < rows; i++ {
		Aanf[i] = make([]map[string][]int, cols)
		Banf[i] = make([]map[string][]int, cols)
		for j := 0; j < cols; j++ {
			avals := make([]int, len(samples))
			bvals := make([]int, len(samples))
			for k, s := range samples {
				avals[k] = s.A.Get(i, j)
				bvals[k] = s.B.Get(i, j)
			}
			Aanf[i][j] = scalarANF(subsets, subsetIndex, avals)
			Banf[i][j] = scalarANF(subsets, subsetIndex, bvals)
		}
	}
	aanf := make([]map[string][]int, vlen)
	banf := make([]map[string][]int, vlen)
	for i := 0; i < vlen; i++ {
		avals := make([]int, len(samples))
		bvals := make([]int, len(samples))
		for k, s := range samples {
			avals[k] = s.a.Get(i)
			bvals[k] = s.b.Get(i)
		}
		aanf[i] = scalarANF(subsets, subsetIndex, avals)
		banf[i] = scalarANF(subsets, subsetIndex, bvals)
	}

	idx := boolpoly.NewMonomialIndex(ring)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for _, mono := range Aanf[i][j] {
				idx.Intern(mono)
			}
			for _, mono := range Banf[i][j] {
				idx.Intern(mono)
			}
		}
	}
	for i := 0; i < vlen; i++ {
		for _, mono := range aanf[i] {
			idx.Intern(mono)
		}
		for _, mono := range banf[i] {
			idx.Intern(mono)
		}
	}

	Asym := make(boolpoly.MultiMatrix, rows)
	Bsym := make(boolpoly.MultiMatrix, rows)
	for i := 0; i < rows; i++ {
		Asym[i] = make([]boolpoly.MultiPoly, cols)
		Bsym[i] = make([]boolpoly.MultiPoly, cols)
		for j := 0; j < cols; j++ {
			Asym[i][j] = polyFromANF(idx, Aanf[i][j])
			Bsym[i][j] = polyFromANF(idx, Banf[i][j])
		}
	}
	asym := make(boolpoly.MultiVec, vlen)
	bsym := make(boolpoly.MultiVec, vlen)
	for i := 0; i < vlen; i++ {
		asym[i] = polyFromANF(idx, aanf[i])
		bsym[i] = polyFromANF(idx, banf[i])
	}

	return idx, Asym, asym, Bsym, bsym, nil
}

// selfCheckMulti mirrors selfCheckAffine for the bounded-degree model: it
// samples the provider at random multi-bit coefficient vectors and compares
// against Asym/Bsym/asym/bsym, returning ErrNotBoundedDegree if even the
// degree-3 model can't reproduce the provider's actual behavior -- e.g.
// because some entry's true degree exceeds 3, or because the post-
// conjugation matrix inversion that produces B isn't degree-bounded at all
// for this word size; see DESIGN.md.
func selfCheckMulti(r *rand.Rand, n int, Asym boolpoly.MultiMatrix, asym boolpoly.MultiVec, Bsym boolpoly.MultiMatrix, bsym boolpoly.MultiVec, provider selfequiv.CoefficientsProvider) error {
	for trial := 0; trial < 8; trial++ {
		c := make([]int, n)
		for i := range c {
			c[i] = r.Intn(2)
		}
		se, err := provider.SelfEquivalence(c)
		if err != nil {
			continue
		}
		A, a, B, b := se.Components()
		if !matrixEntriesEqual(A, Asym.Eval(c)) || !a.Equal(asym.Eval(c)) {
			return ErrNotBoundedDegree
		}
		if !matrixEntriesEqual(B, Bsym.Eval(c)) || !b.Equal(bsym.Eval(c)) {
			return ErrNotBoundedDegree
		}
	}
	return nil
}

// solveForCoefficientsMulti mirrors solveForCoefficients for the
// bounded-degree model: target = Asym*rightConst is still affine in
// rightConst (a concrete matrix), so building it against a MultiMatrix only
// changes how each entry's polynomial is represented, not the shape of the
// equation. The underlying MultiSystem linearizes every interned monomial
// and filters its solutions for consistency; see boolpoly/multi.go.
func solveForCoefficientsMulti(idx *boolpoly.MonomialIndex, target, rightConst gf2.Matrix, Asym boolpoly.MultiMatrix) ([][]int, error) {
	diff := boolpoly.ConstMultiMatrix(idx, target).Add(Asym.MulConstRight(rightConst))

	sys := boolpoly.NewMultiSystem(idx)
	for _, row := range diff {
		for _, p := range row {
			sys.Require(p)
		}
	}
	return sys.Solve()
}

// recoverChain walks the per-round chain of self-equivalence instances
// described in Affine's doc comment, using solve to pin down each se_j's
// coefficients from a single affine equation in turn (layers[1].M =
// A(se_2)*M_mid, then layers[j].M = A(se_{j+1})*M_mid*B(se_j) for later j),
// and recovering that round's key word from each resulting instance. It is
// independent of whether solve resolves a purely affine model or the
// bounded-degree fallback -- both expose the same "equation in, branches
// out" shape.
func recoverChain(p speck.Params, layers []speck.EncodedLayer, provider selfequiv.CoefficientsProvider, ws int, mMid, mMidInv gf2.Matrix, solve func(target, rightConst gf2.Matrix) ([][]int, error)) ([]chainState, error) {
	sols, err := solve(layers[1].M, mMid)
	if errors.Is(err, boolpoly.ErrInconsistent) {
		return nil, ErrAttackFailed
	}
	if err != nil {
		return nil, err
	}
	var states []chainState
	for _, sol := range sols {
		se, err := provider.SelfEquivalence(sol)
		if err != nil {
			continue
		}
		A, a, B, b := se.Components()
		rk0, ok := recoverRoundKeyWord(ws, A, a, mMidInv, gf2.NewVector(A.Cols()), layers[1].V)
		if !ok {
			continue
		}
		states = append(states, chainState{se: instance{A, a, B, b}, roundKeys: []uint64{rk0}})
	}
	if len(states) == 0 {
		return nil, ErrAttackFailed
	}

	for j := 2; j <= p.Rounds-1; j++ {
		var next []chainState
		for _, st := range states {
			mCurB, err := mMid.Mul(st.se.B)
			if err != nil {
				continue
			}
			sols, err := solve(layers[j].M, mCurB)
			if errors.Is(err, boolpoly.ErrInconsistent) {
				continue
			}
			if err != nil {
				return nil, err
			}
			for _, sol := range sols {
				se, err := provider.SelfEquivalence(sol)
				if err != nil {
					continue
				}
				A, a, B, b := se.Components()
				roundKeys := st.roundKeys
				if len(roundKeys) < p.KeyWords {
					rk, ok := recoverRoundKeyWord(ws, A, a, mMidInv, st.se.b, layers[j].V)
					if !ok {
						continue
					}
					roundKeys = append(append([]uint64{}, st.roundKeys...), rk)
				}
				next = append(next, chainState{se: instance{A, a, B, b}, roundKeys: roundKeys})
			}
		}
		if len(next) == 0 {
			return nil, ErrAttackFailed
		}
		states = next
	}
	return states, nil
}

// Affine recovers the master key and the affine external encodings from the
// encoded layers of a white-box Speck implementation built with an affine
// self-equivalence provider (Build's provider argument).
//
// Build draws a fresh self-equivalence at every internal round boundary and
// folds it across the two layers it touches: the self-equivalence drawn for
// round j's boundary wraps layer j-1 with its (A, a) and folds its (B, b)
// into layer j alongside that round's key. So layers[1].M is exactly
// A(se_2)*M_mid (nothing has folded se_2's B side in yet), which pins down
// se_2's coefficients from a single, genuinely affine equation -- no other
// self-equivalence appears in it. From there recoverChain walks the chain
// forward one layer at a time: once se_j is known concretely (all four
// components, since a provider's coefficients determine them together),
// layers[j].M = A(se_{j+1}) * M_mid * B(se_j) has only se_{j+1}'s
// coefficients left unknown, because B(se_j) is now a constant matrix rather
// than a second symbolic family -- so this, too, is a plain affine equation.
// Each step may leave coefficient bits undetermined, so recoverChain carries
// forward every surviving branch.
//
// The provider's components are modeled symbolically two ways. First, as
// affine (degree-1) polynomials of its coefficient bits (probeAffineModel),
// which is exact for the linear self-equivalence provider. If selfCheckAffine
// finds that model doesn't hold, Affine falls back to a bounded-degree
// (up to degree 3) model (probeMultiModel), which is exact for the type 1
// and type 2 affine providers -- their components multiply coefficient bits
// together but never escalate past degree 3; see DESIGN.md. Only if neither
// model survives its empirical check does Affine give up, with
// ErrNotBoundedDegree.
//
// Affine returns ErrAttackFailed if there are too few layers to cover every
// key word or no consistent guess exists.
func Affine(p speck.Params, layers []speck.EncodedLayer, provider selfequiv.CoefficientsProvider, r *rand.Rand) ([]Candidate, error) {
	if len(layers) != p.Rounds+1 || p.Rounds < p.KeyWords+2 {
		return nil, ErrAttackFailed
	}

	ws := p.WordSize
	n := provider.CoefficientsSize()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("C%d", i)
	}
	ring := boolpoly.NewRing(names)

	Asym, asym, Bsym, bsym, err := probeAffineModel(ring, names, provider)
	if err != nil {
		return nil, err
	}

	mMid, err := p.MMid()
	if err != nil {
		return nil, err
	}
	mLast, err := p.MLast()
	if err != nil {
		return nil, err
	}
	mMidInv, err := mMid.Inverse()
	if err != nil {
		return nil, err
	}

	var states []chainState
	if affErr := selfCheckAffine(r, n, Asym, asym, Bsym, bsym, provider); affErr == nil {
		states, err = recoverChain(p, layers, provider, ws, mMid, mMidInv, func(target, rightConst gf2.Matrix) ([][]int, error) {
			return solveForCoefficients(ring, target, rightConst, Asym)
		})
		if err != nil {
			return nil, err
		}
	} else if errors.Is(affErr, ErrNotAffine) {
		idx, mAsym, masym, mBsym, mbsym, merr := probeMultiModel(ring, names, provider)
		if merr != nil {
			return nil, merr
		}
		if merr := selfCheckMulti(r, n, mAsym, masym, mBsym, mbsym, provider); merr != nil {
			return nil, merr
		}
		states, err = recoverChain(p, layers, provider, ws, mMid, mMidInv, func(target, rightConst gf2.Matrix) ([][]int, error) {
			return solveForCoefficientsMulti(idx, target, rightConst, mAsym)
		})
		if err != nil {
			return nil, err
		}
	} else {
		return nil, affErr
	}

	// Input external encoding drops straight out of layers[0]: Build folds
	// F^-1 into it directly, with no self-equivalence wrap (F(x) = M*x + V,
	// F^-1 = {M^-1, M^-1*V}; layers[0] = {m_first*M^-1, m_first*M^-1*V}), so
	// inverting layers[0].M and multiplying by m_first recovers F's own
	// matrix M, and applying the same inverse to layers[0].V recovers V:
	m0Inv, err := layers[0].M.Inverse()
	if err != nil {
		return nil, err
	}
	inM, err := m0Inv.Mul(p.MFirst())
	if err != nil {
		return nil, err
	}
	inV, err := m0Inv.MulVec(layers[0].V)
	if err != nil {
		return nil, err
	}
	in := extenc.Encoding{M: inM, V: inV}

	var candidates []Candidate
	for _, st := range states {
		if len(st.roundKeys) != p.KeyWords {
			continue
		}
		key, err := p.InverseKeyExpansion(st.roundKeys, 0)
		if err != nil {
			continue
		}
		fullRoundKeys, err := p.KeyExpansion(key)
		if err != nil {
			return nil, err
		}

		// layers[p.Rounds] was never wrapped by any further self-equivalence,
		// only by the output external encoding: layers[Rounds].M =
		// out.M * M_last * B(se_Rounds), where se_Rounds is the last
		// instance in the chain.
		mLastB, err := mLast.Mul(st.se.B)
		if err != nil {
			continue
		}
		mLastBInv, err := mLastB.Inverse()
		if err != nil {
			continue
		}
		outM, err := layers[p.Rounds].M.Mul(mLastBInv)
		if err != nil {
			return nil, err
		}
		lastKeyVec := p.XorRoundKeyVector(fullRoundKeys[p.Rounds-1])
		lastKeyTerm, err := lastKeyVec.Add(st.se.b)
		if err != nil {
			return nil, err
		}
		mLastTerm, err := mLast.MulVec(lastKeyTerm)
		if err != nil {
			return nil, err
		}
		offset, err := outM.MulVec(mLastTerm)
		if err != nil {
			return nil, err
		}
		outV, err := layers[p.Rounds].V.Add(offset)
		if err != nil {
			return nil, err
		}
		out := extenc.Encoding{M: outM, V: outV}

		candidates = append(candidates, Candidate{Key: key, In: in, Out: out})
	}
	if len(candidates) == 0 {
		return nil, ErrAttackFailed
	}
	return candidates, nil
}

// recoverRoundKeyWord inverts layerV = A*M_mid*(XorRoundKeyVector(rk)+bPrev) + a
// for the low WordSize bits of rk, given A, a (the self-equivalence wrapping
// this layer), mMidInv (M_mid's inverse), and bPrev (the b of the
// self-equivalence whose round key this layer carries). It reports ok=false
// if A is not invertible for this branch, which simply prunes it.
func recoverRoundKeyWord(wordSize int, A gf2.Matrix, a gf2.Vector, mMidInv gf2.Matrix, bPrev gf2.Vector, layerV gf2.Vector) (uint64, bool) {
	aInv, err := A.Inverse()
	if err != nil {
		return 0, false
	}
	sum, err := layerV.Add(a)
	if err != nil {
		return 0, false
	}
	step, err := aInv.MulVec(sum)
	if err != nil {
		return 0, false
	}
	step, err = mMidInv.MulVec(step)
	if err != nil {
		return 0, false
	}
	rkVec, err := step.Add(bPrev)
	if err != nil {
		return 0, false
	}
	low, err := rkVec.Slice(0, wordSize)
	if err != nil {
		return 0, false
	}
	return low.Uint64(), true
}
