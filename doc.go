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

// Package statusmap maps numeric HTTP status codes returned by a server onto
// statically declared response shapes.
//
// The work is split across subpackages:
//
//   - statusrange: the status-code range value, its relations (containment,
//     nesting, overlap, conflict) and the specificity ordering;
//   - response: descriptors binding ranges to a payload type and a lazy
//     deserializer, the conflict-checked collection, and the resolver;
//   - codec: deserializers used by descriptor factories;
//   - httpx / grpcx: thin adapters for callers holding an *http.Response or
//     a gRPC status error;
//   - contract: loading endpoint response contracts from YAML.
//
// This root package only holds the rich Error type shared by all of them.
package statusmap
