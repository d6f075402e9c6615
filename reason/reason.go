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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated refinement of an error code.
//
// Reasons are dot-separated identifiers of one to four segments naming the
// object and the rule that was violated, e.g. "range.bounds" or
// "collection.range_conflict".
type Reason string

// MinLength and MaxLength bound the length of a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// reasonFmt accepts 1 to 4 segments, each [a-z][a-z0-9_]*.
// The empty string is handled separately and never reaches the regexp.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match reasonFmt.
	ErrReasonInvalidFormat = errors.New("statusmap: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("statusmap: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason, meaning "not provided".
var Empty Reason = ""

// Normalize trims spaces, lowercases, converts "/" to "." and "-" to "_".
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty and no error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("statusmap: empty reason in MustParse")
	}
	return r
}

// Validate checks whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// Segments splits the reason on ".". Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if r == Empty {
		return []byte{}, nil
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
