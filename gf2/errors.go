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

import "errors"

// ErrSingular is returned when a matrix inversion is attempted on a
// matrix that is not of full rank over GF(2).
var ErrSingular = errors.New("matrix is singular over GF(2)")

// ErrDimensionMismatch is returned when an operation is attempted on
// vectors or matrices whose dimensions are incompatible.
var ErrDimensionMismatch = errors.New("dimensions do not match")

// ErrIndexOutOfRange is returned when a row, column, or bit index falls
// outside the bounds of the vector or matrix being addressed.
var ErrIndexOutOfRange = errors.New("index out of range")
