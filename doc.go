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

// Package apperror models HTTP-level application errors as values that know
// how to render themselves into a response.
//
// An Error carries a status, a message and ordered extension fields, plus a
// per-instance Renderer that turns it into a Response descriptor:
//
//	{StatusCode, Payload, ContentType?, Headers?}
//
// Request handlers build errors with New, Wrap or one of the factories
// (BadRequest, Unauthorized, NotFound, Internal, PassThrough, ...) and return
// them. A boundary (see the httpx and grpcx packages) calls Render and writes
// the descriptor to the wire.
//
// Usage:
//
//	if tok == "" {
//	    return apperror.Unauthorized("", "Bearer", apperror.Attr{Name: "realm", Value: "api"})
//	}
//	row, err := db.Get(ctx, id)
//	if err != nil {
//	    return apperror.Internal("loading row", map[string]any{"id": id})
//	}
//
// Four rendering strategies exist:
//
//   - default: {error, code, message, ...fields};
//   - challenge: default plus a WWW-Authenticate header;
//   - internal: default with the message replaced by InternalMessage;
//   - pass-through: a fully caller-specified descriptor.
//
// Constructors treat invalid arguments (a status below 400, a nil error to
// wrap) as programming mistakes and panic.
package apperror
