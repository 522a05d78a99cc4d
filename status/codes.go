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

package status

import "net/http"

// Client error statuses
//
// These describe failures caused by the request itself. Their messages are
// surfaced to clients verbatim.
const (
	// BadRequest indicates malformed input or a violated request contract.
	BadRequest Code = http.StatusBadRequest

	// Unauthorized indicates missing or invalid credentials. Usually paired
	// with a WWW-Authenticate challenge.
	Unauthorized Code = http.StatusUnauthorized

	// Forbidden indicates an authenticated caller that is not allowed to
	// perform the action.
	Forbidden Code = http.StatusForbidden

	// NotFound indicates the target resource does not exist (or is not
	// visible to the caller).
	NotFound Code = http.StatusNotFound

	MethodNotAllowed Code = http.StatusMethodNotAllowed

	// ClientTimeout indicates the client did not finish its request in time.
	ClientTimeout Code = http.StatusRequestTimeout

	Conflict Code = http.StatusConflict
	Gone     Code = http.StatusGone

	UnprocessableEntity Code = http.StatusUnprocessableEntity
	TooManyRequests     Code = http.StatusTooManyRequests
)

// Server error statuses
//
// These describe failures on the serving side. Only Internal masks its
// message; the others surface it verbatim.
const (
	// Internal indicates an unexpected server-side failure. Its real message
	// and diagnostics must never reach the client.
	Internal Code = http.StatusInternalServerError

	NotImplemented Code = http.StatusNotImplemented
	BadGateway     Code = http.StatusBadGateway

	// ServerTimeout indicates the service (or a dependency) could not answer
	// in time and the client may retry later.
	ServerTimeout Code = http.StatusServiceUnavailable

	GatewayTimeout Code = http.StatusGatewayTimeout
)
