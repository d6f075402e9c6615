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
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

type problem struct {
	Title  string `json:"title" cbor:"title"`
	Status int    `json:"status" cbor:"status"`
}

func TestJSON_Typed(t *testing.T) {
	d := JSON[problem]()
	assert.Equal(t, "application/json", d.ContentType())

	v, err := d.Decode([]byte(`{"title":"not found","status":404}`))
	require.NoError(t, err)
	assert.Equal(t, problem{Title: "not found", Status: 404}, v)

	_, err = d.Decode([]byte(`{`))
	assert.ErrorContains(t, err, "json: decode codec.problem")
}

func TestJSON_Generic(t *testing.T) {
	v, err := JSONFactory[any]()().Decode([]byte(`[1, "a"]`))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), "a"}, v)
}

func TestCBOR(t *testing.T) {
	b, err := cbor.Marshal(problem{Title: "gone", Status: 410})
	require.NoError(t, err)

	d := CBORFactory[problem]()()
	assert.Equal(t, "application/cbor", d.ContentType())
	v, err := d.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, problem{Title: "gone", Status: 410}, v)

	generic, err := CBOR[any]().Decode(b)
	require.NoError(t, err)
	m, ok := generic.(map[string]any)
	require.True(t, ok, "untyped CBOR maps decode as map[string]any, got %T", generic)
	assert.Equal(t, "gone", m["title"])

	_, err = d.Decode([]byte{0xff})
	assert.Error(t, err)
}

func TestProto(t *testing.T) {
	in, err := structpb.NewStruct(map[string]any{"k": "v"})
	require.NoError(t, err)
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	d := ProtoFactory(&structpb.Struct{})()
	assert.Equal(t, "application/x-protobuf", d.ContentType())
	v, err := d.Decode(b)
	require.NoError(t, err)
	out, ok := v.(*structpb.Struct)
	require.True(t, ok)
	assert.Equal(t, "v", out.Fields["k"].GetStringValue())
}

func TestProtoJSON_DiscardsUnknown(t *testing.T) {
	d := ProtoJSONFactory(&wrapperspb.StringValue{})()
	v, err := d.Decode([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, "hello", v.(*wrapperspb.StringValue).GetValue())

	s := ProtoJSON(&structpb.Struct{})
	v, err = s.Decode([]byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.(*structpb.Struct).Fields["a"].GetNumberValue())

	_, err = s.Decode([]byte(`nope`))
	assert.ErrorContains(t, err, "protojson: decode google.protobuf.Struct")
}

func TestEmpty(t *testing.T) {
	v, err := EmptyFactory()().Decode([]byte("ignored"))
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, "", Empty().ContentType())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Contains(t, r.Names(), "application/json")
	assert.Contains(t, r.Names(), "protojson")

	f, err := r.Factory(" JSON ", problem{})
	require.NoError(t, err)
	v, err := f().Decode([]byte(`{"title":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, problem{Title: "x"}, v)

	f, err = r.Factory("cbor", nil)
	require.NoError(t, err)
	b, _ := cbor.Marshal(map[string]any{"n": "1"})
	v, err = f().Decode(b)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": "1"}, v)

	f, err = r.Factory("application/x-protobuf", &structpb.Struct{})
	require.NoError(t, err)
	assert.Equal(t, "application/x-protobuf", f().ContentType())

	_, err = r.Factory("proto", problem{})
	assert.True(t, statusmap.HasCode(err, code.Invalid))

	_, err = r.Factory("xml", nil)
	assert.True(t, statusmap.HasCode(err, code.Unsupported))
	assert.True(t, statusmap.HasReason(err, reason.CodecUnknown))

	f, err = r.Factory("none", nil)
	require.NoError(t, err)
	assert.Equal(t, "", f().ContentType())
}
