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

package httpx

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

// DefaultMaxBodyBytes caps how much of a response body Reader consumes when
// MaxBodyBytes is zero.
const DefaultMaxBodyBytes int64 = 10 << 20

// Result is a decoded response.
type Result struct {
	Status      int
	PayloadType string
	Payload     any
}

// Reader is a thin adapter that turns an already received *http.Response into
// a decoded payload, using the Resolver to pick the declared response shape.
//
// Reader performs no I/O of its own beyond draining and closing the body.
type Reader struct {
	Resolver apis.Resolver

	// MaxBodyBytes limits the body size; longer bodies are rejected with
	// reason response.too_large. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// Logger receives one debug entry per decoded response. Nil disables it.
	Logger *zap.Logger
}

// Read resolves resp.StatusCode and decodes the body with the selected
// shape's deserializer. The body is always closed; a nil body reads as empty.
//
// An unmatched status is an error here: a caller holding a body it cannot
// interpret has nothing sensible to return.
func (r Reader) Read(resp *http.Response) (Result, error) {
	if resp == nil {
		return Result{}, statusmap.E(code.Invalid, "nil response")
	}
	rc := resp.Body
	if rc == nil {
		rc = http.NoBody
	}
	defer rc.Close()

	shape, ok := r.Resolver.Lookup(resp.StatusCode)
	if !ok {
		_, _ = io.Copy(io.Discard, io.LimitReader(rc, r.limit()))
		return Result{Status: resp.StatusCode}, statusmap.E(code.NotFound,
			fmt.Sprintf("no response declared for status %d", resp.StatusCode),
			statusmap.WithReasonOption(reason.ResponseUnmatched),
			statusmap.WithDetailOption("status", resp.StatusCode))
	}

	limit := r.limit()
	body, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return Result{Status: resp.StatusCode}, fmt.Errorf("httpx: read body: %w", err)
	}
	if int64(len(body)) > limit {
		return Result{Status: resp.StatusCode}, statusmap.E(code.Invalid,
			fmt.Sprintf("%s payload for status %d exceeds %d bytes", shape.PayloadType(), resp.StatusCode, limit),
			statusmap.WithReasonOption(reason.ResponseTooLarge),
			statusmap.WithDetailOption("limit", limit))
	}

	ds, err := shape.Deserializer()
	if err != nil {
		return Result{Status: resp.StatusCode}, err
	}
	payload, err := ds.Decode(body)
	if err != nil {
		return Result{Status: resp.StatusCode}, statusmap.E(code.Invalid,
			fmt.Sprintf("cannot decode %s payload for status %d", shape.PayloadType(), resp.StatusCode),
			statusmap.WithReasonOption(reason.ResponseDecode),
			statusmap.WithDetailOption("content_type", ds.ContentType()),
			statusmap.WithCauseOption(err))
	}

	if r.Logger != nil {
		r.Logger.Debug("decoded response",
			zap.Int("status", resp.StatusCode),
			zap.String("payload_type", shape.PayloadType()),
			zap.Int("bytes", len(body)),
		)
	}
	return Result{Status: resp.StatusCode, PayloadType: shape.PayloadType(), Payload: payload}, nil
}

func (r Reader) limit() int64 {
	if r.MaxBodyBytes > 0 {
		return r.MaxBodyBytes
	}
	return DefaultMaxBodyBytes
}
