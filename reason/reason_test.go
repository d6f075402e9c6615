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
	"encoding"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  Collection.Range_Conflict  ", "collection.range_conflict"},
		{"slash to dot", "descriptor/payload_type", "descriptor.payload_type"},
		{"dash to underscore", "collection.nil-descriptor", "collection.nil_descriptor"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Reason
	}{
		{"range.bounds", RangeBounds},
		{"RANGE/SYNTAX", RangeSyntax},
		{"collection.nil-descriptor", CollectionNilDescriptor},
		{"", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"range..bounds", ErrReasonInvalidFormat},
		{"1range.bounds", ErrReasonInvalidFormat},
		{"range.bounds.", ErrReasonInvalidFormat},
		{"a.b.c.d.e", ErrReasonInvalidFormat},
		{"ab", ErrReasonInvalidLength},
		{"range." + strings.Repeat("x", MaxLength), ErrReasonInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != tt.want {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on empty reason")
		}
	}()
	_ = MustParse("")
}

func TestSegments(t *testing.T) {
	got := CollectionRangeConflict.Segments()
	if len(got) != 2 || got[0] != "collection" || got[1] != "range_conflict" {
		t.Fatalf("Segments() = %v", got)
	}
	if Empty.Segments() != nil {
		t.Fatalf("Empty.Segments() must be nil")
	}
}

func TestReason_TextRoundTrip(t *testing.T) {
	text, err := RangeBounds.MarshalText()
	if err != nil || string(text) != "range.bounds" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	text, err = Empty.MarshalText()
	if err != nil || len(text) != 0 {
		t.Fatalf("MarshalText on empty = %q, %v", text, err)
	}
	if _, err := Reason("Bad.Reason").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid reason must return error")
	}

	var r Reason
	if err := r.UnmarshalText([]byte("  COLLECTION/FROZEN ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if r != CollectionFrozen {
		t.Fatalf("UnmarshalText = %q, want %q", r, CollectionFrozen)
	}
	var bad Reason
	if err := bad.UnmarshalText([]byte("Bad/Reason/Too/Many/Segments")); err == nil {
		t.Fatalf("UnmarshalText expected error for invalid input")
	}
}

func TestReason_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Reason)(nil)
	var _ encoding.TextUnmarshaler = (*Reason)(nil)
}
