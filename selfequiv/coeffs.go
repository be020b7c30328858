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

// coeffCursor replays the Python reference implementation's habit of
// consuming a coefficients list with list.pop() (from the back) and, for
// the type 2 affine provider, list.pop(0) (from the front). Go slices have
// no equivalent primitive, so the cursor tracks both ends explicitly.
type coeffCursor struct {
	c          []int
	lo, hi     int // [lo, hi) is the remaining, unconsumed window
}

func newCoeffCursor(c []int) *coeffCursor {
	return &coeffCursor{c: c, lo: 0, hi: len(c)}
}

// popBack consumes and returns the last remaining coefficient.
func (cc *coeffCursor) popBack() int {
	cc.hi--
	return cc.c[cc.hi]
}

// popFront consumes and returns the first remaining coefficient.
func (cc *coeffCursor) popFront() int {
	v := cc.c[cc.lo]
	cc.lo++
	return v
}

// remaining reports how many coefficients have not yet been consumed.
func (cc *coeffCursor) remaining() int {
	return cc.hi - cc.lo
}
