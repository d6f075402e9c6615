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
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"dirpx.dev/statusmap/apis"
)

const contentTypeProto = "application/x-protobuf"

type protoDeserializer struct {
	mt protoreflect.MessageType
	uo proto.UnmarshalOptions
}

// Proto returns a deserializer decoding binary protobuf into a new message of
// the same type as prototype. Decode returns a proto.Message.
func Proto(prototype proto.Message) apis.Deserializer {
	return protoDeserializer{mt: prototype.ProtoReflect().Type()}
}

// ProtoFactory wraps Proto for use as a response.Factory.
func ProtoFactory(prototype proto.Message) func() apis.Deserializer {
	return func() apis.Deserializer { return Proto(prototype) }
}

func (protoDeserializer) ContentType() string { return contentTypeProto }

func (d protoDeserializer) Decode(data []byte) (any, error) {
	m := d.mt.New().Interface()
	if err := d.uo.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "protobuf: decode %s", d.mt.Descriptor().FullName())
	}
	return m, nil
}

type protoJSONDeserializer struct {
	mt protoreflect.MessageType
	uo protojson.UnmarshalOptions
}

// ProtoJSON returns a deserializer decoding the canonical protobuf JSON
// mapping into a new message of prototype's type. Unknown fields are
// discarded, so servers may add fields without breaking clients.
func ProtoJSON(prototype proto.Message) apis.Deserializer {
	return protoJSONDeserializer{
		mt: prototype.ProtoReflect().Type(),
		uo: protojson.UnmarshalOptions{DiscardUnknown: true},
	}
}

// ProtoJSONFactory wraps ProtoJSON for use as a response.Factory.
func ProtoJSONFactory(prototype proto.Message) func() apis.Deserializer {
	return func() apis.Deserializer { return ProtoJSON(prototype) }
}

func (protoJSONDeserializer) ContentType() string { return contentTypeJSON }

func (d protoJSONDeserializer) Decode(data []byte) (any, error) {
	m := d.mt.New().Interface()
	if err := d.uo.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "protojson: decode %s", d.mt.Descriptor().FullName())
	}
	return m, nil
}
