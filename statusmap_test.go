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

package statusmap

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

func TestError_Basics(t *testing.T) {
	e := E(code.Invalid, "from must not exceed to",
		WithReasonOption(reason.RangeBounds),
		WithDetailOption("from", 300),
	)

	if e.Code != code.Invalid {
		t.Fatal("code mismatch")
	}
	if e.Reason != reason.RangeBounds {
		t.Fatal("reason must be set")
	}
	if e.Details["from"] != 300 {
		t.Fatal("detail missing")
	}

	s := e.Error()
	for _, sub := range []string{"invalid", "range.bounds", "from must not exceed to"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_NoReasonFormat(t *testing.T) {
	e := E(code.OutOfRange, "index 3")
	if got, want := e.Error(), "out_of_range: index 3"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil receiver must render <nil>")
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(code.Invalid, "bad").WithDetail("k1", 1)
	e2 := e1.WithDetail("k2", 2)

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(code.Internal, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
	if e.WithCause(nil) != e {
		t.Fatal("nil cause must return receiver")
	}
}

func TestError_WithDetails_Merge(t *testing.T) {
	e := E(code.Invalid, "x").WithDetails(map[string]any{"a": 1})
	e2 := e.WithDetails(map[string]any{"b": 2, "a": 3})
	if e.Details["a"] != 1 {
		t.Fatal("original mutated")
	}
	if e2.Details["a"] != 3 || e2.Details["b"] != 2 {
		t.Fatal("merge failed")
	}
}

func TestHasCodeAndReason_Wrapped(t *testing.T) {
	e := Errorf(code.FailedPrecondition, reason.CollectionFrozen, "collection %q is frozen", "get_user")
	wrapped := fmt.Errorf("declare: %w", e)
	if !HasCode(wrapped, code.FailedPrecondition) {
		t.Fatal("HasCode must see through wrapping")
	}
	if !HasReason(wrapped, reason.CollectionFrozen) {
		t.Fatal("HasReason must see through wrapping")
	}
	if HasCode(errors.New("plain"), code.Invalid) {
		t.Fatal("plain error has no code")
	}
	if e.ErrorCode() != "failed_precondition" || e.ErrorReason() != "collection.frozen" {
		t.Fatalf("accessors mismatch: %q %q", e.ErrorCode(), e.ErrorReason())
	}
}
