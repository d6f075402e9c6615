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

// Package response binds status-code ranges to declared payload shapes and
// resolves an observed status code to exactly one of them.
//
// # Declaration
//
// A Descriptor is created once per "receive this type for these codes"
// statement:
//
//	ok := response.MustDeclare("UserDto", codec.JSONFactory[UserDto](),
//	    statusrange.MustBetween(200, 299))
//	problem := response.MustDeclare("ProblemDto", codec.JSONFactory[Problem](),
//	    statusrange.MustBetween(400, 599))
//
// Descriptors are collected into a Collection, which rejects every mutation
// that would introduce a conflicting pair of ranges across two descriptors
// (see statusrange.Range.ConflictsWith). The returned *ConflictError lists
// all offending pairs, and the collection is left exactly as it was.
//
//	c := response.NewCollection()
//	if err := c.Add(ok); err != nil { ... }
//	if err := c.Add(problem); err != nil { ... }
//	c.Freeze()
//
// # Resolution
//
// Resolve collects every (range, descriptor) pair whose range contains the
// code and returns the descriptor owning the most specific range
// (statusrange.Compare). Ties go to the earliest descriptor in collection
// order, then to the earliest range within it. Resolution never fails: an
// unmatched code yields (nil, false).
//
// # Concurrency
//
// Mutations are meant to run on the single goroutine assembling an endpoint
// contract. Once assembly is over (optionally marked with Freeze), Resolve,
// Lookup and Explain may be called from any number of goroutines.
//
// # Diagnostics
//
// Collection.Explain returns a human-readable trace of a resolution: every
// candidate range and the winner. It is meant for logs and tests, not for
// machine parsing.
package response
