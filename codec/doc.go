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

// Package codec provides the deserializers that response descriptors build
// lazily once they are selected.
//
// Typed constructors are the usual entry point when declaring descriptors
// in Go code:
//
//	response.MustDeclare("UserDto", codec.JSONFactory[UserDto](), statusrange.MustParse("2xx"))
//	response.MustDeclare("Status", codec.ProtoFactory(&statuspb.Status{}), statusrange.MustParse("5xx"))
//
// The Registry resolves a codec by name and a prototype value at run time,
// which is what contract files use.
package codec
