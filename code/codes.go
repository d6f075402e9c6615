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

// Codes produced by statusmap packages.
//
// The set is deliberately small: the library only rejects declarations and
// reports unmatched responses, it never classifies server-side failures.
const (
	// Internal indicates a failure that is not caused by the caller, e.g. a
	// deserializer factory that returned nil.
	Internal Code = "internal"

	// Invalid indicates malformed declaration input: a range with from > to,
	// a descriptor without ranges, an unparsable range literal.
	Invalid Code = "invalid"

	// OutOfRange indicates an index outside a collection's bounds.
	OutOfRange Code = "out_of_range"

	// Conflict indicates that a declaration would make resolution ambiguous.
	Conflict Code = "conflict"

	// FailedPrecondition indicates an operation on an object in the wrong
	// lifecycle state, e.g. mutating a frozen collection.
	FailedPrecondition Code = "failed_precondition"

	// NotFound indicates that a lookup found nothing: an unmatched status code,
	// an unknown endpoint or payload type.
	NotFound Code = "not_found"

	// Unsupported indicates an unknown codec or content type.
	Unsupported Code = "unsupported"
)

// All lists every code declared above, in declaration order.
var All = []Code{
	Internal,
	Invalid,
	OutOfRange,
	Conflict,
	FailedPrecondition,
	NotFound,
	Unsupported,
}
