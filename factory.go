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

package apperror

import (
	"strings"

	"dirpx.dev/apperror/status"
)

// passThroughMessage is the message of pass-through errors. Like their 500
// status, it is only used internally and never sent.
const passThroughMessage = "Pass-through"

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return New(int(status.BadRequest), message)
}

// Unauthorized creates a 401 Unauthorized error with a WWW-Authenticate
// challenge for a single scheme.
//
// When scheme is empty the error renders without a challenge. Otherwise the
// header value is the scheme followed by attrs (in order) and, when message
// is not empty, an error param:
//
//	Unauthorized("bad token", "Bearer", Attr{"realm", "api"})
//	// WWW-Authenticate: Bearer realm="api", error="bad token"
//
// An empty message marks the error with FieldIsMissing: the challenge is
// present but there is no error detail, as on the first request to a
// protected resource.
//
// The scheme and attribute names must be HTTP tokens; anything else panics
// with ErrInvalidToken.
func Unauthorized(message, scheme string, attrs ...Attr) *Error {
	e := New(int(status.Unauthorized), message)
	if scheme == "" {
		return e
	}
	value, missing := buildChallenge(scheme, message, attrs)
	if missing {
		e.fields = e.fields.With(FieldIsMissing, true)
	}
	e.renderer = challengeRenderer{value: value}
	return e
}

// UnauthorizedChallenges creates a 401 Unauthorized error whose
// WWW-Authenticate value is the given, already formatted challenges joined
// with ", ". No attribute formatting is applied. Without challenges the
// error renders without a header.
func UnauthorizedChallenges(message string, challenges ...string) *Error {
	e := New(int(status.Unauthorized), message)
	if len(challenges) == 0 {
		return e
	}
	e.renderer = challengeRenderer{value: strings.Join(challenges, ", ")}
	return e
}

// Forbidden creates a 403 Forbidden error.
func Forbidden(message string) *Error {
	return New(int(status.Forbidden), message)
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	return New(int(status.NotFound), message)
}

// MethodNotAllowed creates a 405 Method Not Allowed error.
func MethodNotAllowed(message string) *Error {
	return New(int(status.MethodNotAllowed), message)
}

// ClientTimeout creates a 408 Request Timeout error.
func ClientTimeout(message string) *Error {
	return New(int(status.ClientTimeout), message)
}

// Conflict creates a 409 Conflict error.
func Conflict(message string) *Error {
	return New(int(status.Conflict), message)
}

// Gone creates a 410 Gone error.
func Gone(message string) *Error {
	return New(int(status.Gone), message)
}

// UnprocessableEntity creates a 422 Unprocessable Entity error.
func UnprocessableEntity(message string) *Error {
	return New(int(status.UnprocessableEntity), message)
}

// TooManyRequests creates a 429 Too Many Requests error.
func TooManyRequests(message string) *Error {
	return New(int(status.TooManyRequests), message)
}

// Internal creates a 500 Internal Server Error that hides its details.
//
// The error keeps message, data and the caller's stack (Trace) for
// server-side logging, but its rendered payload always carries
// InternalMessage instead of message, and never data or the trace.
func Internal(message string, data any) *Error {
	e := New(int(status.Internal), message)
	e.Trace = CaptureStack(1)
	e.Data = data
	e.renderer = internalRenderer{}
	return e
}

// NotImplemented creates a 501 Not Implemented error.
func NotImplemented(message string) *Error {
	return New(int(status.NotImplemented), message)
}

// BadGateway creates a 502 Bad Gateway error.
func BadGateway(message string) *Error {
	return New(int(status.BadGateway), message)
}

// ServerTimeout creates a 503 Service Unavailable error.
func ServerTimeout(message string) *Error {
	return New(int(status.ServerTimeout), message)
}

// GatewayTimeout creates a 504 Gateway Timeout error.
func GatewayTimeout(message string) *Error {
	return New(int(status.GatewayTimeout), message)
}

// PassThrough creates an error that renders exactly the given descriptor.
//
// The error itself is a 500 with message "Pass-through", but neither is
// ever sent: Render returns {code, payload, contentType, headers} unmodified.
// The descriptor is also kept under FieldPassThrough for introspection.
func PassThrough(code int, payload any, contentType string, headers map[string]string) *Error {
	resp := Response{
		StatusCode:  code,
		Payload:     payload,
		ContentType: contentType,
		Headers:     headers,
	}
	e := New(int(status.Internal), passThroughMessage)
	e.fields = e.fields.With(FieldPassThrough, resp)
	e.renderer = passThroughRenderer{resp: resp}
	return e
}
