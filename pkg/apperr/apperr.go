// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package apperr defines the error kinds surfaced to API callers and their
// HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/raywall/trucks-service/dyndb"
)

// Kind identifies an error class. Its string value is what callers see in
// the "error" field of the response body.
type Kind string

const (
	KindNotFound         Kind = "NotFound"
	KindValidation       Kind = "ValidationError"
	KindStoreUnavailable Kind = "StoreUnavailable"
	KindUnmatchedRoute   Kind = "UnmatchedRoute"
	KindInternal         Kind = "InternalError"
)

// Status returns the HTTP status code for the kind
func (k Kind) Status() int {
	switch k {
	case KindNotFound, KindUnmatchedRoute:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error carrying a kind and a caller-facing message.
// Cause is kept for logs and never serialized.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Body is the JSON shape of every error response
type Body struct {
	Error   Kind   `json:"error"`
	Message string `json:"message"`
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func UnmatchedRoute(method, path string) *Error {
	return &Error{Kind: KindUnmatchedRoute, Message: fmt.Sprintf("no route for %s %s", method, path)}
}

// FromStore converts a dyndb error into an application error. notFoundMsg is
// used when the store reports a missing item.
func FromStore(err error, notFoundMsg string) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dyndb.ErrNotFound):
		return &Error{Kind: KindNotFound, Message: notFoundMsg, Cause: err}
	case errors.Is(err, dyndb.ErrUnavailable):
		return &Error{Kind: KindStoreUnavailable, Message: "the truck store is temporarily unavailable, try again later", Cause: err}
	default:
		return &Error{Kind: KindInternal, Message: "unexpected store failure", Cause: err}
	}
}

// As extracts an *Error from err. Anything else becomes an InternalError so
// no failure reaches the caller without a kind.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindInternal, Message: "internal server error", Cause: err}
}
