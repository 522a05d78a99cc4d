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

// ErrorDescriptor is a flat, log-friendly description of an application
// error together with its resolved transport statuses.
//
// It is intended for structured logging and tracing at the boundaries. It
// carries the server-side view (real message, supplement info) and therefore
// MUST NOT be sent to clients.
type ErrorDescriptor struct {
	// HTTPStatus is the status the error carries.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the gRPC status code (as integer) resolved by a Mapper.
	GRPCCode int `json:"grpc_code"`

	// Name is the classification label of the error.
	Name string `json:"name"`

	// Kind is the rendering strategy, e.g. "default", "internal".
	Kind string `json:"kind"`

	// Message is the real message, unmasked.
	Message string `json:"message,omitempty"`

	// Info is the supplement message recorded when wrapping.
	Info string `json:"info,omitempty"`

	// Cause is the text of the wrapped error, if any.
	Cause string `json:"cause,omitempty"`
}
