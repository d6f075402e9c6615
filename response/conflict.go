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

package response

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
	"dirpx.dev/statusmap/statusrange"
)

// ErrConflict matches every *ConflictError under errors.Is.
var ErrConflict = errors.New("statusmap: conflicting status ranges")

// Conflict is one offending pair found by a collection mutation.
type Conflict struct {
	// Index is the position of the existing descriptor in the collection.
	Index         int
	ExistingType  string
	Existing      statusrange.Range
	CandidateType string
	Candidate     statusrange.Range
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s (%s at #%d) conflicts with %s (%s)",
		c.Existing, c.ExistingType, c.Index, c.Candidate, c.CandidateType)
}

// ConflictError is returned by Add, Insert and ReplaceAt when the candidate
// descriptor would make resolution ambiguous. Pairs lists every offending
// pair, in collection order and then range declaration order.
type ConflictError struct {
	Op    string
	Pairs []Conflict
}

var (
	_ apis.CodedError    = (*ConflictError)(nil)
	_ apis.ReasonedError = (*ConflictError)(nil)
	_ apis.DetailedError = (*ConflictError)(nil)
)

func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s:%s: %s: %d conflicting range pair(s): %s",
		code.Conflict, reason.CollectionRangeConflict, e.Op, len(e.Pairs), strings.Join(parts, "; "))
}

// Is reports whether target is ErrConflict.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ErrorCode implements apis.CodedError.
func (e *ConflictError) ErrorCode() string { return string(code.Conflict) }

// ErrorReason implements apis.ReasonedError.
func (e *ConflictError) ErrorReason() string { return string(reason.CollectionRangeConflict) }

// ErrorDetails implements apis.DetailedError with one Detail per pair.
func (e *ConflictError) ErrorDetails() []apis.Detail {
	out := make([]apis.Detail, len(e.Pairs))
	for i, p := range e.Pairs {
		out[i] = apis.Detail{
			Type:   "conflict",
			Field:  "descriptors[" + strconv.Itoa(p.Index) + "]",
			Reason: "ambiguous status range",
			Info: map[string]string{
				"existing":       p.Existing.String(),
				"existing_type":  p.ExistingType,
				"candidate":      p.Candidate.String(),
				"candidate_type": p.CandidateType,
			},
		}
	}
	return out
}
