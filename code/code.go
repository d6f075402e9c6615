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

package code

import (
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code classifies a statusmap error. The constants in codes.go are the
// values this module produces; Parse accepts codes reported by foreign
// errors that implement apis.CodedError.
type Code string

// MinLength and MaxLength bound the length of a code.
const (
	MinLength = 3
	MaxLength = 64
)

// One lower-case letter, then 2..63 of [a-z0-9_].
var codeRe = regexp.MustCompile(`^[a-z][a-z0-9_]{2,63}$`)

// ErrCodeInvalid is returned when a value is not a well-formed code.
var ErrCodeInvalid = errors.New("statusmap: invalid code")

var _ encoding.TextMarshaler = Code("")

// Empty is the zero-value code. It never appears on a constructed error.
var Empty Code = ""

// Parse normalizes s and checks the result.
func Parse(s string) (Code, error) {
	c := Code(Normalize(s))
	if err := Validate(c); err != nil {
		return Empty, err
	}
	return c, nil
}

// Normalize trims spaces, lowercases and turns '-' into '_', so
// "Not-Found" becomes "not_found".
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// Validate reports ErrCodeInvalid unless c is already normalized and well
// formed.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

func (c Code) String() string { return string(c) }

// MarshalText refuses malformed codes so rendered error views only ever
// carry canonical values.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}
