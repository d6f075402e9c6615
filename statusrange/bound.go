/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package statusrange

import "strconv"

// Bound is one end of a Range: either a concrete status code or open.
// The zero value is open.
type Bound struct {
	v  int
	ok bool
}

// Open returns an unbounded end.
func Open() Bound { return Bound{} }

// At returns an end bounded at n.
func At(n int) Bound { return Bound{v: n, ok: true} }

// Value returns the bound value and whether the bound is present.
func (b Bound) Value() (int, bool) { return b.v, b.ok }

// IsOpen reports whether the bound is unbounded.
func (b Bound) IsOpen() bool { return !b.ok }

// String renders the bound value, or "*" when open.
func (b Bound) String() string {
	if !b.ok {
		return wildcard
	}
	return strconv.Itoa(b.v)
}
