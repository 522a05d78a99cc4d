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

package apperror

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ErrInvalidToken is panicked with when a challenge scheme or attribute name
// is not a valid HTTP token.
var ErrInvalidToken = errors.New("apperror: invalid challenge token")

// Attr is a single auth-param of a WWW-Authenticate challenge, rendered as
// name="value".
//
// A nil Value (or nil pointer) renders as an empty string; every other value, zero included,
// renders through its string form (0 becomes "0").
type Attr struct {
	Name  string
	Value any
}

// buildChallenge formats a single-scheme challenge:
//
//	<scheme> a1="v1", a2="v2", error="<errMsg>"
//
// missing reports that errMsg was empty and no error param was added.
func buildChallenge(scheme, errMsg string, attrs []Attr) (value string, missing bool) {
	mustToken(scheme)

	var b strings.Builder
	b.WriteString(scheme)
	for i, a := range attrs {
		mustToken(a.Name)
		if i > 0 {
			b.WriteByte(',')
		}
		writeParam(&b, a.Name, attrValue(a.Value))
	}

	if errMsg == "" {
		return b.String(), true
	}
	if len(attrs) > 0 {
		b.WriteByte(',')
	}
	writeParam(&b, "error", errMsg)
	return b.String(), false
}

func writeParam(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(escapeHeaderAttribute(value))
	b.WriteByte('"')
}

func attrValue(v any) string {
	if isNilValue(v) {
		return ""
	}
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// escapeHeaderAttribute makes s safe inside a quoted header parameter:
// double quotes and backslashes are backslash-escaped, control characters
// are dropped.
func escapeHeaderAttribute(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mustToken(s string) {
	if !httpguts.ValidHeaderFieldName(s) {
		panic(fmt.Errorf("%w: %q", ErrInvalidToken, s))
	}
}
