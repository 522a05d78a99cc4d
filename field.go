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
	"github.com/samber/lo"

	"dirpx.dev/apperror/apis"
)

// Well-known extension field keys set by the factories.
const (
	// FieldIsMissing marks a 401 challenge that carries no error detail,
	// typically the first request to a protected resource.
	FieldIsMissing = "isMissing"

	// FieldPassThrough holds the Response supplied to PassThrough.
	FieldPassThrough = "passThrough"
)

// Field is a single extension attribute, see apis.Field.
type Field = apis.Field

// Fields is an ordered list of extension fields. Keys are unique: With
// replaces an existing key in place.
type Fields []Field

// Get returns the value stored under key.
func (fs Fields) Get(key string) (any, bool) {
	f, ok := lo.Find(fs, func(f Field) bool { return f.Key == key })
	return f.Value, ok
}

// With returns a copy of fs with key set to value. An existing key keeps its
// position; a new key is appended. fs itself is not modified.
func (fs Fields) With(key string, value any) Fields {
	out := fs.Clone()
	if _, i, ok := lo.FindIndexOf(out, func(f Field) bool { return f.Key == key }); ok {
		out[i].Value = value
		return out
	}
	return append(out, Field{Key: key, Value: value})
}

// Clone returns a copy of fs with room for one more field.
// A nil list stays nil.
func (fs Fields) Clone() Fields {
	if fs == nil {
		return nil
	}
	return append(make(Fields, 0, len(fs)+1), fs...)
}
