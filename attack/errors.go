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

// Package attack implements key-recovery attacks on white-box Speck
// implementations built from self-equivalence providers that leave
// exploitable structure in the encoded affine layers: the layers produced by
// a linear or affine self-equivalence provider remain recognizable sparse or
// algebraic patterns even after encoding, which can be inverted to recover
// the round keys and external encodings.
package attack

import "github.com/pkg/errors"

// ErrAttackFailed is returned when an attack cannot recover a consistent
// key and external encodings from the given layers, e.g. because they were
// not produced by the self-equivalence family the attack targets, or
// because there are too few layers to cover every key word.
var ErrAttackFailed = errors.New("attack failed to recover a consistent key")

// ErrNotAffine is returned internally by Affine's degree-1 model check when
// the supplied provider's (A, a, B, b) components turn out not to be an
// affine function of its coefficient bits. Affine falls back to a
// bounded-degree model at that point rather than failing outright; see
// ErrNotBoundedDegree.
var ErrNotAffine = errors.New("self-equivalence provider is not affine in its coefficients")

// ErrNotBoundedDegree is returned by Affine when a provider's components
// aren't affine in its coefficients (ErrNotAffine) and also don't fit
// Affine's degree-3 fallback model -- e.g. because some entry's true degree
// in the raw coefficients exceeds 3 for this provider or word size, or
// because a later matrix inversion step escapes the bound. Affine does not
// attempt full polynomial (Groebner basis) solving beyond that bound.
var ErrNotBoundedDegree = errors.New("self-equivalence provider does not fit a bounded-degree model")
