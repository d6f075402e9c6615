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

package response

import (
	"fmt"
	"strings"
)

// Explain returns a textual trace of how status is resolved.
//
// Example output:
//
//	endpoint="get_user" status=205
//	candidate: #0 UserDto range=[200, 299]
//	candidate: #2 PartialDto range=205
//	winner: #2 PartialDto range=205
//
// When nothing matches, the last line is "winner: none".
func (c *Collection) Explain(status int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "endpoint=%q status=%d\n", c.name, status)
	for _, cand := range c.candidates(status) {
		_, _ = fmt.Fprintf(&b, "candidate: #%d %s range=%s\n", cand.index, cand.desc.payloadType, cand.rng)
	}
	if w, ok := c.match(status); ok {
		_, _ = fmt.Fprintf(&b, "winner: #%d %s range=%s", w.index, w.desc.payloadType, w.rng)
	} else {
		b.WriteString("winner: none")
	}
	return b.String()
}
