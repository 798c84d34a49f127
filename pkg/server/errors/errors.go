/*
Copyright 2026 Nscale.

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

package errors

import (
	"errors"
	"net/http"

	"github.com/nscaledev/discogs-conformance/pkg/discogs"
	"github.com/nscaledev/discogs-conformance/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// MustAuthenticateMessage is returned when no credentials are supplied.
	MustAuthenticateMessage = "You must authenticate to access this resource."

	// InvalidConsumerMessage is returned when credentials are malformed or
	// do not match a known consumer.
	InvalidConsumerMessage = "Invalid consumer key/secret combination."
)

// Error is an HTTP error that is reported to the client as a message.
type Error struct {
	// status is the HTTP status code.
	status int

	// message is the client visible description.
	message string

	// err is the underlying cause, it is logged and never returned
	// to the client.
	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}

	return e.message
}

// Unwrap allows the cause to be inspected.
func (e *Error) Unwrap() error {
	return e.err
}

// WithError attaches a cause.
func (e *Error) WithError(err error) *Error {
	e.err = err
	return e
}

// StatusCode returns the HTTP status.
func (e *Error) StatusCode() int {
	return e.status
}

func newError(status int, message string) *Error {
	return &Error{
		status:  status,
		message: message,
	}
}

// MustAuthenticate is raised when the Authorization header is missing.
func MustAuthenticate() *Error {
	return newError(http.StatusUnauthorized, MustAuthenticateMessage)
}

// InvalidConsumer is raised when the credential is malformed or unknown.
func InvalidConsumer() *Error {
	return newError(http.StatusUnauthorized, InvalidConsumerMessage)
}

// InvalidRequest is raised when a query parameter cannot be parsed.
func InvalidRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

// ServerError is raised on anything unexpected.
func ServerError(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}

// HandleError writes the error to the client, anything that isn't an Error
// is treated as an internal server error and its detail is hidden.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := log.FromContext(r.Context())

	var httpError *Error

	if !errors.As(err, &httpError) {
		httpError = ServerError("unhandled error").WithError(err)
	}

	if httpError.status >= http.StatusInternalServerError {
		log.Error(httpError, "request failed")
	} else {
		log.V(1).Info("request rejected", "status", httpError.status, "error", httpError.Error())
	}

	util.WriteJSONResponse(w, r, httpError.status, &discogs.ErrorResponse{
		Message: httpError.message,
	})
}
