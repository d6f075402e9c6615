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

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"google.golang.org/protobuf/proto"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

// Builder validates a prototype value and returns a lazy deserializer
// constructor for it. A nil prototype means "decode into a generic value"
// where the codec supports it.
type Builder func(prototype any) (func() apis.Deserializer, error)

// Registry maps codec names and content types to builders.
type Registry struct{ byName map[string]Builder }

// NewRegistry returns a registry preloaded with the built-in codecs:
//
//	json, application/json          encoding/json
//	cbor, application/cbor          fxamacker/cbor
//	proto, protobuf, application/x-protobuf
//	protojson
//	empty, none
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Builder)}
	r.Register(jsonBuilder, "json", contentTypeJSON)
	r.Register(cborBuilder, "cbor", contentTypeCBOR)
	r.Register(protoBuilder, "proto", "protobuf", contentTypeProto)
	r.Register(protoJSONBuilder, "protojson")
	r.Register(emptyBuilder, "empty", "none")
	return r
}

// Register binds b to every given name. Names are case-insensitive; a later
// registration replaces an earlier one.
func (r *Registry) Register(b Builder, names ...string) {
	for _, n := range names {
		r.byName[normalizeName(n)] = b
	}
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Factory returns a deserializer factory for the named codec and prototype.
// Unknown names fail with an unsupported error; a prototype the codec cannot
// handle fails with an invalid error. Nothing is decoded or allocated until
// the factory is called.
func (r *Registry) Factory(name string, prototype any) (func() apis.Deserializer, error) {
	b, ok := r.byName[normalizeName(name)]
	if !ok {
		return nil, statusmap.E(code.Unsupported, fmt.Sprintf("unknown codec %q", name),
			statusmap.WithReasonOption(reason.CodecUnknown),
			statusmap.WithDetailOption("codec", name))
	}
	return b(prototype)
}

func normalizeName(n string) string { return strings.ToLower(strings.TrimSpace(n)) }

// typeOf defaults a nil prototype to map[string]any.
func typeOf(prototype any) reflect.Type {
	if prototype == nil {
		return reflect.TypeFor[map[string]any]()
	}
	return reflect.TypeOf(prototype)
}

func jsonBuilder(prototype any) (func() apis.Deserializer, error) {
	rt := typeOf(prototype)
	return func() apis.Deserializer { return jsonDeserializer{rt: rt} }, nil
}

func cborBuilder(prototype any) (func() apis.Deserializer, error) {
	if cborDecModeErr != nil {
		return nil, cborDecModeErr
	}
	rt := typeOf(prototype)
	return func() apis.Deserializer { return cborDeserializer{rt: rt, dec: cborDecMode} }, nil
}

func protoMessage(prototype any) (proto.Message, error) {
	m, ok := prototype.(proto.Message)
	if !ok {
		return nil, statusmap.E(code.Invalid, fmt.Sprintf("prototype %T does not implement proto.Message", prototype),
			statusmap.WithReasonOption(reason.DescriptorFactory))
	}
	return m, nil
}

func protoBuilder(prototype any) (func() apis.Deserializer, error) {
	m, err := protoMessage(prototype)
	if err != nil {
		return nil, err
	}
	return ProtoFactory(m), nil
}

func protoJSONBuilder(prototype any) (func() apis.Deserializer, error) {
	m, err := protoMessage(prototype)
	if err != nil {
		return nil, err
	}
	return ProtoJSONFactory(m), nil
}

func emptyBuilder(any) (func() apis.Deserializer, error) {
	return EmptyFactory(), nil
}
