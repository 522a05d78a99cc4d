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

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Code is the canonical, validated representation of an error status.
//
// It is defined as a separate type (not just int) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated values.
//
// IMPORTANT: Codes below MinError are NOT allowed. Every application error
// MUST carry an error status.
type Code int

// MinError is the smallest status accepted as an application error.
const MinError = 400

// Unknown is the reason phrase reported for statuses that have no standard
// phrase in the HTTP status table.
const Unknown = "Unknown"

var (
	// ErrInvalid is returned (or panicked with, by MustValidate) when a value
	// cannot be used as an application error status.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about the status argument" vs "this is some other error".
	ErrInvalid = errors.New("apperror: status must be a number (400+)")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	c := Code(n)
	if err := Validate(c); err != nil {
		return 0, err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether the provided Code is an error status.
func Validate(c Code) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalid, int(c))
	}
	return nil
}

// MustValidate panics when c is not an error status. Constructors use it as
// an assertion: an invalid status there is a bug in the caller.
func MustValidate(c Code) {
	if err := Validate(c); err != nil {
		panic(err)
	}
}

// Valid reports whether c is an error status (>= 400).
func (c Code) Valid() bool {
	return c >= MinError
}

// IsClient reports whether c is in the 4xx class.
func (c Code) IsClient() bool {
	return c >= 400 && c < 500
}

// IsServer reports whether c is in the 5xx class.
func (c Code) IsServer() bool {
	return c >= 500 && c < 600
}

// Text returns the standard reason phrase for c, or Unknown.
func (c Code) Text() string {
	if t := http.StatusText(int(c)); t != "" {
		return t
	}
	return Unknown
}

// String returns "<code> <phrase>", e.g. "404 Not Found".
func (c Code) String() string {
	return strconv.Itoa(int(c)) + " " + c.Text()
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the decimal representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
