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

package apis

// CodedError is an error classified by a machine-readable code, such as
// "invalid" or "conflict". Adapters switch on the code to decide how to
// surface the failure.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code. It MUST be non-empty
	// and already normalized by statusmap/code.
	ErrorCode() string
}

// ReasonedError refines a code with a dot-separated reason, e.g.
//
//	code:   "conflict"
//	reason: "collection.range_conflict"
type ReasonedError interface {
	error

	// ErrorReason returns the specific error reason. May be empty.
	ErrorReason() string
}

// DetailedError exposes structured details. A conflict error reports one
// Detail per offending range pair, so a developer can fix every ambiguity
// from a single failure.
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
