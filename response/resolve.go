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
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/statusrange"
)

var _ apis.Resolver = (*Collection)(nil)

// Resolve returns the descriptor declared for status, or (nil, false).
//
// Among all ranges containing status, the most specific one under
// statusrange.Compare wins; on ties the earliest descriptor, then the
// earliest range within it, is kept.
func (c *Collection) Resolve(status int) (*Descriptor, bool) {
	m, ok := c.match(status)
	if !ok {
		return nil, false
	}
	return m.desc, true
}

// Lookup implements apis.Resolver.
func (c *Collection) Lookup(status int) (apis.Shape, bool) {
	d, ok := c.Resolve(status)
	if !ok {
		return nil, false
	}
	return d, true
}

// Resolve is the free-function form of (*Collection).Resolve.
func Resolve(c *Collection, status int) (*Descriptor, bool) {
	return c.Resolve(status)
}

type candidate struct {
	index int
	desc  *Descriptor
	rng   statusrange.Range
}

// candidates lists every (range, descriptor) pair containing status in
// collection order, then range declaration order.
func (c *Collection) candidates(status int) []candidate {
	var out []candidate
	for i, d := range c.items {
		for _, r := range d.ranges {
			if r.Contains(status) {
				out = append(out, candidate{index: i, desc: d, rng: r})
			}
		}
	}
	return out
}

func (c *Collection) match(status int) (candidate, bool) {
	var best candidate
	found := false
	for i, d := range c.items {
		for _, r := range d.ranges {
			if !r.Contains(status) {
				continue
			}
			// strict comparison keeps the earliest pair on ties
			if !found || statusrange.MoreSpecific(r, best.rng) {
				best = candidate{index: i, desc: d, rng: r}
				found = true
			}
		}
	}
	return best, found
}
