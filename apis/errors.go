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

package apis

// StatusCoder represents an error that knows the HTTP status it should be
// reported with.
//
// Implementations are expected to return an error status (>= 400). Callers
// that receive anything else treat the error as an internal failure (500).
type StatusCoder interface {
	error

	// StatusCode returns the HTTP status of the error.
	StatusCode() int
}

// NamedError represents an error that carries a classification label, e.g.
// "ValidationError" or "TokenExpired".
//
// The name is informational: it is exposed in payloads of wrapped errors and
// in gRPC error details, but it never changes the status.
type NamedError interface {
	error

	// ErrorName returns the classification label. May be empty.
	ErrorName() string
}

// FieldedError represents an error that exposes zero or more extension
// fields to be merged into the rendered payload.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no extra fields".
type FieldedError interface {
	error

	// ErrorFields returns the extension fields in render order. May return nil.
	ErrorFields() []Field
}
