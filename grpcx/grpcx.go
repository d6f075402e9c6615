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

package grpcx

import (
	"fmt"
	"net/http"

	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/statusmap"
	"dirpx.dev/statusmap/apis"
	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

// httpByCode is the canonical gRPC to HTTP projection used by HTTP/JSON
// gateways. It lets one response contract serve both transports.
var httpByCode = map[gcodes.Code]int{
	gcodes.OK:                 http.StatusOK,
	gcodes.Canceled:           499, // nginx "client closed request"
	gcodes.Unknown:            http.StatusInternalServerError,
	gcodes.InvalidArgument:    http.StatusBadRequest,
	gcodes.DeadlineExceeded:   http.StatusGatewayTimeout,
	gcodes.NotFound:           http.StatusNotFound,
	gcodes.AlreadyExists:      http.StatusConflict,
	gcodes.PermissionDenied:   http.StatusForbidden,
	gcodes.ResourceExhausted:  http.StatusTooManyRequests,
	gcodes.FailedPrecondition: http.StatusBadRequest,
	gcodes.Aborted:            http.StatusConflict,
	gcodes.OutOfRange:         http.StatusBadRequest,
	gcodes.Unimplemented:      http.StatusNotImplemented,
	gcodes.Internal:           http.StatusInternalServerError,
	gcodes.Unavailable:        http.StatusServiceUnavailable,
	gcodes.DataLoss:           http.StatusInternalServerError,
	gcodes.Unauthenticated:    http.StatusUnauthorized,
}

// HTTPStatus projects a gRPC code onto an HTTP status. Codes outside the
// canonical set map to 500.
func HTTPStatus(c gcodes.Code) int {
	if s, ok := httpByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Resolve looks up the shape declared for a gRPC call outcome. A nil err is
// resolved as OK (200); an error that is not a gRPC status is resolved as
// Unknown (500). The projected HTTP status is returned alongside the shape.
func Resolve(r apis.Resolver, err error) (apis.Shape, int, bool) {
	st := gstatus.Convert(err)
	httpStatus := HTTPStatus(st.Code())
	shape, ok := r.Lookup(httpStatus)
	return shape, httpStatus, ok
}

// DecodeStatus resolves err and decodes its google.rpc.Status payload with the
// selected shape's deserializer. Shapes declared for gRPC failures therefore
// use a protobuf codec over *statuspb.Status, or a custom deserializer.
func DecodeStatus(r apis.Resolver, err error) (any, error) {
	shape, httpStatus, ok := Resolve(r, err)
	if !ok {
		return nil, statusmap.E(code.NotFound,
			fmt.Sprintf("no response declared for gRPC code %s (HTTP %d)", gstatus.Code(err), httpStatus),
			statusmap.WithReasonOption(reason.ResponseUnmatched),
			statusmap.WithDetailsOption(map[string]any{
				"grpc_code": gstatus.Code(err).String(),
				"status":    httpStatus,
			}))
	}
	raw, merr := proto.Marshal(gstatus.Convert(err).Proto())
	if merr != nil {
		return nil, fmt.Errorf("grpcx: marshal status: %w", merr)
	}
	ds, derr := shape.Deserializer()
	if derr != nil {
		return nil, derr
	}
	v, derr := ds.Decode(raw)
	if derr != nil {
		return nil, statusmap.E(code.Invalid, "cannot decode "+shape.PayloadType()+" from gRPC status",
			statusmap.WithReasonOption(reason.ResponseDecode),
			statusmap.WithCauseOption(derr))
	}
	return v, nil
}
