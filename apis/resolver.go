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

// Deserializer turns a raw response body into a payload value.
//
// Implementations live in statusmap/codec; callers may supply their own.
type Deserializer interface {
	// ContentType is the media type the deserializer understands,
	// e.g. "application/json".
	ContentType() string

	// Decode parses data into a freshly allocated payload value.
	Decode(data []byte) (any, error)
}

// Shape is the resolved, read-only view of a declared response.
type Shape interface {
	// PayloadType is the tag naming the declared payload, e.g. "ErrorDto".
	PayloadType() string

	// Deserializer returns the shape's deserializer, building it on first use.
	Deserializer() (Deserializer, error)
}

// Resolver maps an observed status code to at most one declared Shape.
//
// Implementations must be safe for concurrent use once declaration has
// finished, and must never fail: an unmatched code yields (nil, false).
type Resolver interface {
	Lookup(status int) (Shape, bool)
}
