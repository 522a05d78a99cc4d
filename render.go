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
	"maps"
	"reflect"

	"dirpx.dev/apperror/status"
)

// InternalMessage replaces the message of internal errors in rendered
// payloads.
const InternalMessage = "An internal server error occurred"

// Response is the descriptor a boundary writes to the wire.
//
// An empty ContentType and nil Headers mean "use the boundary defaults".
type Response struct {
	// StatusCode is the status line to send.
	StatusCode int `json:"statusCode"`

	// Payload is the body, typically an Object to be encoded as JSON.
	Payload any `json:"payload,omitempty"`

	// ContentType overrides the boundary's default content type.
	ContentType string `json:"contentType,omitempty"`

	// Headers are applied to the response as-is.
	Headers map[string]string `json:"headers,omitempty"`
}

// Renderer turns an Error into a Response. Implementations must not modify
// the error.
type Renderer interface {
	Render(e *Error) Response
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(e *Error) Response

// Render calls f(e).
func (f RendererFunc) Render(e *Error) Response { return f(e) }

// Kind identifies a rendering strategy.
type Kind uint8

const (
	// KindDefault renders {error, code, message, ...fields}.
	KindDefault Kind = iota
	// KindChallenge adds a WWW-Authenticate header to the default rendering.
	KindChallenge
	// KindInternal masks the message of the default rendering.
	KindInternal
	// KindPassThrough renders a caller-specified descriptor verbatim.
	KindPassThrough
	// KindCustom is any renderer installed with WithRenderer.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindChallenge:
		return "challenge"
	case KindInternal:
		return "internal"
	case KindPassThrough:
		return "pass_through"
	default:
		return "custom"
	}
}

// DefaultRenderer renders the canonical payload:
//
//	{"error": <phrase>, "code": <status>, "message": <message>, ...}
//
// followed by "name" and "info" when set and by every extension field in
// insertion order. Reserved keys and function values are never copied from
// fields. No headers and no content type are set.
var DefaultRenderer Renderer = defaultRenderer{}

// reserved keys are owned by the canonical payload.
var reserved = map[string]struct{}{
	"error":      {},
	"code":       {},
	"statusCode": {},
	"message":    {},
}

type defaultRenderer struct{}

func (defaultRenderer) kind() Kind { return KindDefault }

func (defaultRenderer) Render(e *Error) Response {
	return Response{StatusCode: e.Status, Payload: payload(e)}
}

type challengeRenderer struct {
	value string
}

func (challengeRenderer) kind() Kind { return KindChallenge }

func (r challengeRenderer) Render(e *Error) Response {
	return Response{
		StatusCode: e.Status,
		Payload:    payload(e),
		Headers:    map[string]string{"WWW-Authenticate": r.value},
	}
}

type internalRenderer struct{}

func (internalRenderer) kind() Kind { return KindInternal }

func (internalRenderer) Render(e *Error) Response {
	return Response{
		StatusCode: e.Status,
		Payload:    payload(e).Set("message", InternalMessage),
	}
}

type passThroughRenderer struct {
	resp Response
}

func (passThroughRenderer) kind() Kind { return KindPassThrough }

// Render ignores e entirely.
func (r passThroughRenderer) Render(*Error) Response {
	resp := r.resp
	resp.Headers = maps.Clone(r.resp.Headers)
	return resp
}

func kindOf(r Renderer) Kind {
	if k, ok := r.(interface{ kind() Kind }); ok {
		return k.kind()
	}
	return KindCustom
}

// payload builds the canonical object for e.
func payload(e *Error) Object {
	obj := make(Object, 0, 5+len(e.fields))
	obj = append(obj,
		Field{Key: "error", Value: status.Code(e.Status).Text()},
		Field{Key: "code", Value: e.Status},
		Field{Key: "message", Value: e.Message},
	)
	if e.Name != "" {
		obj = obj.Set("name", e.Name)
	}
	if e.Info != "" {
		obj = obj.Set("info", e.Info)
	}
	for _, f := range e.fields {
		if _, ok := reserved[f.Key]; ok || !renderable(f.Value) {
			continue
		}
		obj = obj.Set(f.Key, f.Value)
	}
	return obj
}

// renderable reports whether v may appear in a payload: renderers and other
// function values never do.
func renderable(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(Renderer); ok {
		return false
	}
	return reflect.ValueOf(v).Kind() != reflect.Func
}
