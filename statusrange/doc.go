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

// Package statusrange models inclusive intervals of HTTP status codes.
//
// A Range has two ends, each either bounded or open ("wildcard"):
//
//	statusrange.Single(404)              // 404
//	statusrange.MustBetween(200, 299)    // [200, 299]
//	statusrange.From(500)                // [500, *]
//	statusrange.UpTo(399)                // [*, 399]
//	statusrange.All()                    // *
//
// # Relations
//
// Contains, IsNestedIn, Overlaps and ConflictsWith are pure functions over
// two ranges. Two ranges conflict when they are identical, or when they
// overlap without one being strictly nested inside the other. Strict nesting
// is how a more specific override is declared ([200, 299] plus 205).
//
// # Specificity
//
// Compare orders ranges by how narrowly they constrain matching codes. It is
// only meant to rank ranges that already contain the same code; conflicts
// are decided by ConflictsWith alone.
//
// # Open bounds
//
// Open ends are stored as an explicit Bound, never as a magic number.
// Sentinels are substituted only inside the comparison helpers, so no real
// status code can collide with them.
package statusrange
