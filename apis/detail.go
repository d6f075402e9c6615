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

// Detail is a single structured piece of information attached to an error.
// It is a view type: small, transport-friendly and safe to log.
type Detail struct {
	// Type is a short classifier, e.g. "conflict" or "bounds".
	Type string `json:"type,omitempty"`

	// Field names the offending declaration element, e.g. "ranges[1]".
	Field string `json:"field,omitempty"`

	// Reason is a short human-friendly explanation.
	Reason string `json:"reason,omitempty"`

	// Info carries extra string data, e.g. the rendered ranges of a pair.
	Info map[string]string `json:"info,omitempty"`
}
