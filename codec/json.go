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
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/statusmap/apis"
)

const contentTypeJSON = "application/json"

type jsonDeserializer struct{ rt reflect.Type }

// JSON returns a deserializer decoding into a fresh T. Decode returns a T.
func JSON[T any]() apis.Deserializer {
	return jsonDeserializer{rt: reflect.TypeFor[T]()}
}

// JSONFactory wraps JSON for use as a response.Factory.
func JSONFactory[T any]() func() apis.Deserializer {
	return func() apis.Deserializer { return JSON[T]() }
}

func (jsonDeserializer) ContentType() string { return contentTypeJSON }

func (d jsonDeserializer) Decode(data []byte) (any, error) {
	p := reflect.New(d.rt)
	if err := json.Unmarshal(data, p.Interface()); err != nil {
		return nil, errors.Wrapf(err, "json: decode %s", d.rt)
	}
	return p.Elem().Interface(), nil
}
