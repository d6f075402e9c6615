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

package statusrange

// Contains reports whether status lies inside r.
func (r Range) Contains(status int) bool {
	return r.lo() <= status && status <= r.hi()
}

// IsNestedIn reports whether r lies entirely inside outer. Every range is
// nested in itself.
func (r Range) IsNestedIn(outer Range) bool {
	return outer.lo() <= r.lo() && r.hi() <= outer.hi()
}

// Overlaps reports whether r and o share at least one code.
func (r Range) Overlaps(o Range) bool {
	return max(r.lo(), o.lo()) <= min(r.hi(), o.hi())
}

// ConflictsWith reports whether r and o cannot coexist in one collection.
//
// Identical ranges always conflict. A range strictly nested inside the other
// never conflicts with it. Any other overlap conflicts.
func (r Range) ConflictsWith(o Range) bool {
	if r == o {
		return true
	}
	if !r.Overlaps(o) {
		return false
	}
	return !r.IsNestedIn(o) && !o.IsNestedIn(r)
}
