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

import (
	"math"
	"strings"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

const wildcard = "*"

// Range is an immutable, inclusive interval of status codes.
//
// Equality is structural on (from, to): ranges can be compared with == or
// Equal and used as map keys. The zero value is the universal range.
type Range struct {
	from Bound
	to   Bound
}

// New builds a range from two bounds. It fails when both bounds are present
// and from > to.
func New(from, to Bound) (Range, error) {
	r := Range{from: from, to: to}
	if r.lo() > r.hi() {
		return Range{}, statusmap.E(code.Invalid, "range lower bound exceeds upper bound",
			statusmap.WithReasonOption(reason.RangeBounds),
			statusmap.WithDetailOption("from", from.String()),
			statusmap.WithDetailOption("to", to.String()),
		)
	}
	return r, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(from, to Bound) Range {
	r, err := New(from, to)
	if err != nil {
		panic(err)
	}
	return r
}

// Single returns the closed range [n, n].
func Single(n int) Range { return Range{from: At(n), to: At(n)} }

// Between returns the closed range [from, to].
func Between(from, to int) (Range, error) { return New(At(from), At(to)) }

// MustBetween is the panic-on-error variant of Between.
func MustBetween(from, to int) Range { return MustNew(At(from), At(to)) }

// From returns the right-open range [n, *].
func From(n int) Range { return Range{from: At(n), to: Open()} }

// UpTo returns the left-open range [*, n].
func UpTo(n int) Range { return Range{from: Open(), to: At(n)} }

// All returns the universal range *.
func All() Range { return Range{} }

// From returns the lower bound.
func (r Range) From() Bound { return r.from }

// To returns the upper bound.
func (r Range) To() Bound { return r.to }

// Equal reports structural equality.
func (r Range) Equal(o Range) bool { return r == o }

// IsSingleCode reports whether the range is [n, n].
func (r Range) IsSingleCode() bool { return r.from.ok && r.to.ok && r.from.v == r.to.v }

// HasWildcardComponent reports whether either end is open.
func (r Range) HasWildcardComponent() bool { return !r.from.ok || !r.to.ok }

// IsUniversal reports whether both ends are open.
func (r Range) IsUniversal() bool { return !r.from.ok && !r.to.ok }

// WildcardCount returns the number of open ends: 0, 1 or 2.
func (r Range) WildcardCount() int {
	n := 0
	if !r.from.ok {
		n++
	}
	if !r.to.ok {
		n++
	}
	return n
}

// String renders a single code as that number, the universal range as "*",
// and anything else as "[from, to]" with "*" for open ends.
func (r Range) String() string {
	switch {
	case r.IsSingleCode():
		return r.from.String()
	case r.IsUniversal():
		return wildcard
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(r.from.String())
	b.WriteString(", ")
	b.WriteString(r.to.String())
	b.WriteByte(']')
	return b.String()
}

// lo is the lower bound with an open end widened to math.MinInt.
func (r Range) lo() int {
	if !r.from.ok {
		return math.MinInt
	}
	return r.from.v
}

// hi is the upper bound with an open end widened to math.MaxInt.
func (r Range) hi() int {
	if !r.to.ok {
		return math.MaxInt
	}
	return r.to.v
}

// Distinct returns rs without structural duplicates, keeping first-seen order.
func Distinct(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	seen := make(map[Range]struct{}, len(rs))
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
