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

// Field is a single extension attribute attached to an error, rendered into
// the response payload under Key.
//
// Fields are kept in ordered lists rather than maps so that payloads render
// deterministically, in the order callers attached them.
//
// Typical usages:
//   - mark a challenge without error detail ("isMissing");
//   - expose a resource id or limit to the client;
//   - keep the pass-through descriptor for introspection.
type Field struct {
	// Key is the payload key. The keys "error", "code", "statusCode" and
	// "message" are reserved and never rendered from fields.
	Key string `json:"key"`

	// Value is any JSON-serializable value. Function values are never
	// rendered.
	Value any `json:"value,omitempty"`
}
