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

package codec

import "dirpx.dev/statusmap/apis"

type emptyDeserializer struct{}

// Empty returns a deserializer for responses declared without a body
// (204, 304, ...). Decode ignores its input and returns nil.
func Empty() apis.Deserializer { return emptyDeserializer{} }

// EmptyFactory wraps Empty for use as a response.Factory.
func EmptyFactory() func() apis.Deserializer {
	return func() apis.Deserializer { return emptyDeserializer{} }
}

func (emptyDeserializer) ContentType() string { return "" }

func (emptyDeserializer) Decode([]byte) (any, error) { return nil, nil }
