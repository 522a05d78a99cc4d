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

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/apperror"
	"dirpx.dev/apperror/apis"
)

// ErrNotObject is returned by ToStruct when the payload does not encode to a
// JSON object (e.g. a pass-through string body).
var ErrNotObject = errors.New("adapter: payload is not a JSON object")

// ToDescriptor converts an application error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging and tracing. It carries
// the real message and supplement info, so it must stay server-side.
func ToDescriptor(e *apperror.Error, m apis.Mapper) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		HTTPStatus: e.Status,
		Name:       e.ErrorName(),
		Kind:       e.Kind().String(),
		Message:    e.Message,
		Info:       e.Info,
	}
	if m != nil {
		d.GRPCCode = int(m.GRPCCode(e.Status))
	}
	if e.Cause != nil {
		d.Cause = e.Cause.Error()
	}
	return d
}

// ToStruct converts a rendered payload into a protobuf Struct.
//
// The payload goes through its JSON encoding, so apperror.Object keeps the
// values it would send over HTTP. Payloads that are not JSON objects are
// rejected with ErrNotObject.
func ToStruct(payload any) (*structpb.Struct, error) {
	if payload == nil {
		return nil, ErrNotObject
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("adapter: encode payload: %w", err)
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, ErrNotObject
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("adapter: decode payload: %w", err)
	}
	return s, nil
}

// FromStruct converts a protobuf Struct back into an ordered Object.
//
// Struct fields carry no order, so keys are sorted. Numbers come back as
// float64, nested structs as map[string]any.
func FromStruct(s *structpb.Struct) apperror.Object {
	if s == nil || len(s.GetFields()) == 0 {
		return nil
	}
	keys := lo.Keys(s.GetFields())
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) apperror.Field {
		return apperror.Field{Key: k, Value: s.GetFields()[k].AsInterface()}
	})
}
