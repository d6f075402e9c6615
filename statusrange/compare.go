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

import "cmp"

// Compare orders a and b by specificity. It returns -1 when a is more
// specific than b, +1 when it is less specific, and 0 when they are equally
// specific.
//
// Ranges are first tiered by WildcardCount; fewer open ends is more
// specific. Within a tier:
//
//   - fully bounded: the narrower span wins, a single code being narrowest;
//   - right-open: the larger lower bound wins;
//   - left-open: the smaller upper bound wins;
//   - one right-open and one left-open: equal, whatever their bounds;
//   - universal: equal.
//
// Conflicting pairs always compare equal.
func Compare(a, b Range) int {
	if a.ConflictsWith(b) {
		return 0
	}
	wa, wb := a.WildcardCount(), b.WildcardCount()
	if wa != wb {
		return cmp.Compare(wa, wb)
	}
	switch wa {
	case 0:
		return cmp.Compare(a.span(), b.span())
	case 1:
		switch {
		case a.to.IsOpen() && b.to.IsOpen():
			return cmp.Compare(b.from.v, a.from.v)
		case a.from.IsOpen() && b.from.IsOpen():
			return cmp.Compare(a.to.v, b.to.v)
		}
	}
	return 0
}

// MoreSpecific reports whether a ranks strictly before b under Compare.
func MoreSpecific(a, b Range) bool { return Compare(a, b) < 0 }

// span is to - from for a fully bounded range. Unsigned arithmetic keeps the
// difference exact for any from <= to.
func (r Range) span() uint64 {
	return uint64(r.to.v) - uint64(r.from.v)
}
