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
	"encoding"
	"strconv"
	"strings"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

var (
	_ encoding.TextMarshaler   = Range{}
	_ encoding.TextUnmarshaler = (*Range)(nil)
)

// Parse reads a range literal. It accepts everything String produces plus
// a few declaration shorthands:
//
//	"404"            single code
//	"*"              universal
//	"[200, 299]"     bounded, "*" allowed on either side
//	"200-299"        bounded, "*" allowed on either side
//	"2xx", "2XX"     the class [200, 299]
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Range{}, syntaxError(s, "empty literal")
	case s == wildcard:
		return All(), nil
	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") {
			return Range{}, syntaxError(s, "missing closing bracket")
		}
		from, to, ok := strings.Cut(s[1:len(s)-1], ",")
		if !ok {
			return Range{}, syntaxError(s, "expected two comma-separated bounds")
		}
		return parsePair(s, from, to)
	case len(s) == 3 && strings.EqualFold(s[1:], "xx") && s[0] >= '1' && s[0] <= '9':
		base := int(s[0]-'0') * 100
		return Between(base, base+99)
	case strings.Contains(s, "-"):
		from, to, _ := strings.Cut(s, "-")
		return parsePair(s, from, to)
	}
	n, err := parseCode(s)
	if err != nil {
		return Range{}, syntaxError(s, err.Error())
	}
	return Single(n), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func parsePair(lit, from, to string) (Range, error) {
	lo, err := parseBound(from)
	if err != nil {
		return Range{}, syntaxError(lit, err.Error())
	}
	hi, err := parseBound(to)
	if err != nil {
		return Range{}, syntaxError(lit, err.Error())
	}
	return New(lo, hi)
}

func parseBound(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == wildcard {
		return Open(), nil
	}
	n, err := parseCode(s)
	if err != nil {
		return Bound{}, err
	}
	return At(n), nil
}

func parseCode(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

func syntaxError(lit, msg string) *statusmap.Error {
	return statusmap.E(code.Invalid, "cannot parse status range "+strconv.Quote(lit)+": "+msg,
		statusmap.WithReasonOption(reason.RangeSyntax),
		statusmap.WithDetailOption("literal", lit),
	)
}
