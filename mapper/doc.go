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

// Package mapper provides deterministic, immutable mappings between the HTTP
// statuses carried by apperror values and gRPC status codes.
//
// # Overview
//
// Application errors are classified by an HTTP status. When the same error
// crosses a gRPC boundary (see package grpcx) it needs a gRPC code, and when
// a client rebuilds the error from a gRPC status it needs the HTTP status
// back. Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per status;
//   - class-aware: statuses without a rule fall back by 4xx / 5xx class;
//   - bidirectional: HTTP -> gRPC and gRPC -> HTTP.
//
// # Resolution model
//
// For HTTP -> gRPC a Mapper resolves codes in the following order:
//
//  1. exact override for the status;
//  2. per-status default (library or user-adjusted);
//  3. class fallback (4xx: FailedPrecondition, 5xx: Internal by default);
//  4. global fallback (codes.Unknown).
//
// For gRPC -> HTTP: exact override, library default, 500.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(http.StatusConflict, codes.AlreadyExists),
//	    mapper.WithClientFallback(codes.InvalidArgument),
//	)
//	if err != nil {
//	    // out-of-range status or code
//	}
//
//	st := m.Status(http.StatusServiceUnavailable)
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular status was resolved, including which tier matched.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps. This makes it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper
