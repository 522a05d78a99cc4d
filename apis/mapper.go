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

import (
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status mapping rules.
// It translates HTTP error statuses into gRPC status codes and back.
type Mapper interface {
	// GRPCCode returns the gRPC code for the given HTTP status.
	// If no exact rule exists, the mapper must fall back to the status class.
	GRPCCode(httpStatus int) codes.Code

	// HTTPStatus returns the HTTP status for the given gRPC code.
	HTTPStatus(c codes.Code) int

	// Status resolves the gRPC side for an HTTP status in a single call.
	Status(httpStatus int) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(httpStatus int) string
}

// Status represents a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
