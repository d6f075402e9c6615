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

package statusmap

import (
	"errors"
	"fmt"

	"dirpx.dev/statusmap/code"
	"dirpx.dev/statusmap/reason"
)

// Error is the rich error type returned by statusmap packages whenever a
// declaration is rejected (bad range bounds, empty descriptor, index out of
// range, mutation of a frozen collection, ...).
//
// It carries:
//   - Code: high-level, normalized error code (required);
//   - Reason: optional, more specific machine-friendly cause;
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload (offending values, indexes);
//   - Cause: wrapped underlying error for unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error values can be
// shared between goroutines.
type Error struct {
	// Code is the primary classification of the error, e.g. "invalid" or
	// "out_of_range". Must be a normalized code from statusmap/code.
	Code code.Code

	// Reason refines the Code, e.g. "range.bounds" or "collection.frozen".
	// May be empty when the Code is descriptive enough.
	Reason reason.Reason

	// Message is a human-readable explanation.
	Message string

	// Details is an optional, shallow map of extra fields. The map is treated
	// as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return statusmap.E(code.Invalid, "from must not exceed to",
//	    statusmap.WithReasonOption(reason.RangeBounds),
//	    statusmap.WithDetailOption("from", 300),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Errorf is E with a formatted message and no options.
func Errorf(c code.Code, r reason.Reason, format string, args ...any) *Error {
	return &Error{Code: c, Reason: r, Message: fmt.Sprintf(format, args...)}
}

// Error implements the built-in error interface.
//
// The format is "<code>: <message>" or, when Reason is present,
// "<code>:<reason>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// WithReason returns a shallow copy of e with the given Reason set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// HasCode reports whether err (or anything it wraps) is a *Error with code c.
func HasCode(err error, c code.Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == c
}

// HasReason reports whether err (or anything it wraps) is a *Error with reason r.
func HasReason(err error, r reason.Reason) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Reason == r
}
