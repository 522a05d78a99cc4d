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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// grpcDefaults holds per-status gRPC defaults that override library defaults.
	grpcDefaults map[int]codes.Code
	// grpcOverride holds exact per-status gRPC overrides (higher than defaults).
	grpcOverride map[int]codes.Code
	// httpOverride holds exact per-code HTTP overrides for the reverse direction.
	httpOverride map[codes.Code]int

	// class fallbacks used when a status has no rule at all.
	clientFallback codes.Code
	serverFallback codes.Code

	// global fallbacks used outside the 4xx/5xx classes and for unknown codes.
	fallbackGRPC codes.Code
	fallbackHTTP int
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the map roughly to the number of built-in defaults
		grpcDefaults: make(map[int]codes.Code, len(defaultGRPC)),

		// overrides are usually few
		grpcOverride: make(map[int]codes.Code),
		httpOverride: make(map[codes.Code]int),

		clientFallback: codes.FailedPrecondition,
		serverFallback: codes.Internal,

		// hard fallbacks if the status or code was never seen
		fallbackGRPC: codes.Unknown,
		fallbackHTTP: http.StatusInternalServerError,
	}
}
