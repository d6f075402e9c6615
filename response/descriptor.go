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
	"strings"
	"sync"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
	"dirpx.dev/statusmap/statusrange"
)

// Factory builds the deserializer of a descriptor. It is called at most
// once, and only when the descriptor is selected and its deserializer asked for.
type Factory func() apis.Deserializer

// Descriptor declares that responses whose status falls in one of its ranges
// carry a payload of the tagged type. It is immutable once declared.
type Descriptor struct {
	payloadType string
	ranges      []statusrange.Range
	factory     Factory

	once  sync.Once
	deser apis.Deserializer
}

var _ apis.Shape = (*Descriptor)(nil)

// Declare builds a descriptor. Ranges are deduplicated in first-seen order;
// an empty result, an empty payload type or a nil factory is rejected with
// an invalid-argument *statusmap.Error. The factory is stored, not invoked.
func Declare(payloadType string, factory Factory, ranges ...statusrange.Range) (*Descriptor, error) {
	if strings.TrimSpace(payloadType) == "" {
		return nil, statusmap.E(code.Invalid, "descriptor needs a payload type",
			statusmap.WithReasonOption(reason.DescriptorPayloadType))
	}
	if factory == nil {
		return nil, statusmap.E(code.Invalid, "descriptor needs a deserializer factory",
			statusmap.WithReasonOption(reason.DescriptorFactory),
			statusmap.WithDetailOption("payload_type", payloadType))
	}
	rs := statusrange.Distinct(ranges)
	if len(rs) == 0 {
		return nil, statusmap.E(code.Invalid, "descriptor needs at least one status range",
			statusmap.WithReasonOption(reason.DescriptorRanges),
			statusmap.WithDetailOption("payload_type", payloadType))
	}
	return &Descriptor{payloadType: payloadType, ranges: rs, factory: factory}, nil
}

// MustDeclare is the panic-on-error variant of Declare.
func MustDeclare(payloadType string, factory Factory, ranges ...statusrange.Range) *Descriptor {
	d, err := Declare(payloadType, factory, ranges...)
	if err != nil {
		panic(err)
	}
	return d
}

// PayloadType returns the payload type tag.
func (d *Descriptor) PayloadType() string { return d.payloadType }

// Ranges returns a copy of the declared ranges in declaration order.
func (d *Descriptor) Ranges() []statusrange.Range {
	out := make([]statusrange.Range, len(d.ranges))
	copy(out, d.ranges)
	return out
}

// Deserializer returns the descriptor's deserializer, invoking the factory on
// the first call only. Safe for concurrent use. A factory returning nil is
// reported as an internal error on every call.
func (d *Descriptor) Deserializer() (apis.Deserializer, error) {
	d.once.Do(func() { d.deser = d.factory() })
	if d.deser == nil {
		return nil, statusmap.E(code.Internal, "deserializer factory returned nil",
			statusmap.WithReasonOption(reason.DescriptorFactory),
			statusmap.WithDetailOption("payload_type", d.payloadType))
	}
	return d.deser, nil
}

// Decode decodes data with the descriptor's deserializer.
func (d *Descriptor) Decode(data []byte) (any, error) {
	ds, err := d.Deserializer()
	if err != nil {
		return nil, err
	}
	v, err := ds.Decode(data)
	if err != nil {
		return nil, statusmap.E(code.Invalid, "cannot decode "+d.payloadType+" payload",
			statusmap.WithReasonOption(reason.ResponseDecode),
			statusmap.WithDetailOption("content_type", ds.ContentType()),
			statusmap.WithCauseOption(err))
	}
	return v, nil
}

// String renders the descriptor as "Type{r1, r2}".
func (d *Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.payloadType)
	b.WriteByte('{')
	for i, r := range d.ranges {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (d *Descriptor) rangeStrings() []string {
	out := make([]string, len(d.ranges))
	for i, r := range d.ranges {
		out[i] = r.String()
	}
	return out
}
