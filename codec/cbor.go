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
	"reflect"

	cbor "github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"dirpx.dev/statusmap/apis"
)

const contentTypeCBOR = "application/cbor"

// cborDecMode decodes untyped maps as map[string]any so CBOR payloads look
// like their JSON counterparts.
var cborDecMode, cborDecModeErr = cbor.DecOptions{
	DefaultMapType: reflect.TypeOf(map[string]any(nil)),
}.DecMode()

type cborDeserializer struct {
	rt  reflect.Type
	dec cbor.DecMode
}

// CBOR returns a deserializer decoding CBOR (RFC 8949) into a fresh T.
// It panics if the package decoder configuration is invalid, which never
// happens with the built-in options.
func CBOR[T any]() apis.Deserializer {
	if cborDecModeErr != nil {
		panic(cborDecModeErr)
	}
	return cborDeserializer{rt: reflect.TypeFor[T](), dec: cborDecMode}
}

// CBORFactory wraps CBOR for use as a response.Factory.
func CBORFactory[T any]() func() apis.Deserializer {
	return func() apis.Deserializer { return CBOR[T]() }
}

func (cborDeserializer) ContentType() string { return contentTypeCBOR }

func (d cborDeserializer) Decode(data []byte) (any, error) {
	p := reflect.New(d.rt)
	if err := d.dec.Unmarshal(data, p.Interface()); err != nil {
		return nil, errors.Wrapf(err, "cbor: decode %s", d.rt)
	}
	return p.Elem().Interface(), nil
}
