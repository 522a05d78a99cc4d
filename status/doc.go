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

// Package status provides validation, reason phrase lookup and text
// marshaling for the HTTP statuses carried by apperror values.
//
// A status is the primary classification of an application error. Only
// error statuses are accepted:
//
//   - 4xx for client-side failures (bad input, missing auth, not found);
//   - 5xx for server-side failures (internal, timeouts, dependencies);
//   - any other number >= 400, even when it has no standard reason phrase.
//
// IMPORTANT: Statuses below 400 are NOT errors. Constructing an application
// error from one is a programming mistake and is reported loudly.
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package status
