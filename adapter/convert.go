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

package adapter

import (
	"errors"
	"fmt"
	"sort"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

// ToView converts any error into a public ErrorView.
//
// Code, reason and details are taken from the first error in the chain that
// implements the matching apis interface. Codes and reasons reported by
// foreign errors are normalized; errors that carry no code, or a code that
// does not parse, are reported as "internal", and an unparsable reason is
// dropped. Details of a *statusmap.Error are flattened into a
// single Detail, keys sorted.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{Code: code.Internal, Message: err.Error()}

	var coded apis.CodedError
	if errors.As(err, &coded) {
		if c, perr := code.Parse(coded.ErrorCode()); perr == nil {
			v.Code = c
		}
	}
	var reasoned apis.ReasonedError
	if errors.As(err, &reasoned) {
		if r, perr := reason.Parse(reasoned.ErrorReason()); perr == nil {
			v.Reason = r
		}
	}

	var se *statusmap.Error
	if errors.As(err, &se) {
		v.Message = se.Message
		if d, ok := detailOf(se); ok {
			v.Details = []apis.Detail{d}
		}
	}

	var detailed apis.DetailedError
	if errors.As(err, &detailed) {
		if ds := detailed.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

func detailOf(e *statusmap.Error) (apis.Detail, bool) {
	if len(e.Details) == 0 {
		return apis.Detail{}, false
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	info := make(map[string]string, len(keys))
	for _, k := range keys {
		info[k] = fmt.Sprint(e.Details[k])
	}
	return apis.Detail{Type: "extra", Reason: string(e.Reason), Info: info}, true
}
