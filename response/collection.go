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
	"strconv"

	"go.uber.org/zap"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

// Collection is an ordered set of descriptors in which no two distinct
// descriptors own conflicting ranges.
//
// Mutations are not safe for concurrent use. Reads (Resolve, Lookup,
// Explain, Len, At, Descriptors) are safe for concurrent use once no
// mutation is in flight.
type Collection struct {
	name   string
	items  []*Descriptor
	frozen bool
	log    *zap.Logger
}

// NewCollection returns an empty, mutable collection.
func NewCollection(opts ...Option) *Collection {
	c := &Collection{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("endpoint", c.name))
	return c
}

// Name returns the name given with WithName.
func (c *Collection) Name() string { return c.name }

// Len returns the number of descriptors.
func (c *Collection) Len() int { return len(c.items) }

// At returns the descriptor at index i.
func (c *Collection) At(i int) (*Descriptor, bool) {
	if i < 0 || i >= len(c.items) {
		return nil, false
	}
	return c.items[i], true
}

// Descriptors returns a copy of the descriptors in collection order.
func (c *Collection) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(c.items))
	copy(out, c.items)
	return out
}

// Freeze ends the declaration phase. Every later mutation fails with a
// failed_precondition error.
func (c *Collection) Freeze() {
	if c.frozen {
		return
	}
	c.frozen = true
	c.log.Debug("response contract frozen", zap.Int("descriptors", len(c.items)))
}

// Frozen reports whether Freeze was called.
func (c *Collection) Frozen() bool { return c.frozen }

// Add appends d.
func (c *Collection) Add(d *Descriptor) error {
	if err := c.admit("add", d, -1); err != nil {
		return err
	}
	c.items = append(c.items, d)
	c.accepted("add", d, len(c.items)-1)
	return nil
}

// Insert places d at index i, shifting later descriptors. i may equal Len.
func (c *Collection) Insert(i int, d *Descriptor) error {
	if i < 0 || i > len(c.items) {
		return c.indexError("insert", i)
	}
	if err := c.admit("insert", d, -1); err != nil {
		return err
	}
	c.items = append(c.items, nil)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = d
	c.accepted("insert", d, i)
	return nil
}

// ReplaceAt swaps the descriptor at index i for d. The outgoing descriptor's
// ranges are not checked against d, since the two never coexist.
func (c *Collection) ReplaceAt(i int, d *Descriptor) error {
	if i < 0 || i >= len(c.items) {
		return c.indexError("replace", i)
	}
	if err := c.admit("replace", d, i); err != nil {
		return err
	}
	c.items[i] = d
	c.accepted("replace", d, i)
	return nil
}

// admit runs every check a mutation needs before touching c.items. skip is
// the index of a descriptor excluded from the conflict scan, or -1.
func (c *Collection) admit(op string, d *Descriptor, skip int) error {
	if c.frozen {
		return statusmap.E(code.FailedPrecondition, "cannot "+op+" on a frozen collection",
			statusmap.WithReasonOption(reason.CollectionFrozen),
			statusmap.WithDetailOption("endpoint", c.name))
	}
	if d == nil {
		return statusmap.E(code.Invalid, "cannot "+op+" a nil descriptor",
			statusmap.WithReasonOption(reason.CollectionNilDescriptor))
	}
	pairs := c.conflicts(d, skip)
	if len(pairs) == 0 {
		return nil
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = p.String()
	}
	c.log.Warn("rejected response declaration",
		zap.String("op", op),
		zap.String("payload_type", d.payloadType),
		zap.Int("conflicts", len(pairs)),
		zap.Strings("pairs", lines),
	)
	return &ConflictError{Op: op + " " + d.payloadType, Pairs: pairs}
}

// conflicts pairs every existing range with every candidate range.
func (c *Collection) conflicts(d *Descriptor, skip int) []Conflict {
	var out []Conflict
	for i, existing := range c.items {
		if i == skip {
			continue
		}
		for _, er := range existing.ranges {
			for _, nr := range d.ranges {
				if er.ConflictsWith(nr) {
					out = append(out, Conflict{
						Index:         i,
						ExistingType:  existing.payloadType,
						Existing:      er,
						CandidateType: d.payloadType,
						Candidate:     nr,
					})
				}
			}
		}
	}
	return out
}

func (c *Collection) accepted(op string, d *Descriptor, at int) {
	c.log.Debug("declared response",
		zap.String("op", op),
		zap.Int("index", at),
		zap.String("payload_type", d.payloadType),
		zap.Strings("ranges", d.rangeStrings()),
	)
}

func (c *Collection) indexError(op string, i int) error {
	return statusmap.E(code.OutOfRange, "cannot "+op+" at index "+strconv.Itoa(i),
		statusmap.WithReasonOption(reason.CollectionIndex),
		statusmap.WithDetailOption("index", i),
		statusmap.WithDetailOption("len", len(c.items)))
}
