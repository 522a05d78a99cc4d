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
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the library-level default gRPC code
// for the given HTTP status.
func WithGRPCDefault(httpStatus int, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[httpStatus] = c }
}

// WithGRPCOverride registers an exact gRPC code for the given HTTP status.
// Overrides take precedence over defaults and class fallbacks.
func WithGRPCOverride(httpStatus int, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[httpStatus] = c }
}

// WithHTTPOverride registers an exact HTTP status for the given gRPC code,
// used when rebuilding errors from gRPC statuses. The status must be an
// error status (400..599).
func WithHTTPOverride(c codes.Code, httpStatus int) Option {
	return func(b *builder) { b.httpOverride[c] = httpStatus }
}

// WithClientFallback sets the gRPC code used for 4xx statuses without a rule.
func WithClientFallback(c codes.Code) Option {
	return func(b *builder) { b.clientFallback = c }
}

// WithServerFallback sets the gRPC code used for 5xx statuses without a rule.
func WithServerFallback(c codes.Code) Option {
	return func(b *builder) { b.serverFallback = c }
}
