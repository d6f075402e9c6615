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

// Package reason defines an optional, structured refinement for statusmap
// codes.
//
// Where Code answers "what kind of error is this?" (invalid, conflict, ...),
// Reason answers "which rule of which object rejected it?", e.g.
// "range.bounds" or "collection.frozen". The zero value ("") is allowed and
// means no refinement is provided.
package reason
