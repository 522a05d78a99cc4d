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
	"reflect"

	"dirpx.dev/apperror/apis"
	"dirpx.dev/apperror/status"
)

// DefaultName is the classification reported by ErrorName when no name was
// set or inherited from a wrapped error.
const DefaultName = "ApplicationError"

// ErrNilError is panicked with by Wrap when it is given a nil error.
var ErrNilError = errors.New("apperror: wrapped error must not be nil")

// Error is the canonical application error.
//
// It carries:
//   - Status: HTTP status, always an error status (>= 400) once constructed;
//   - Message: human-oriented description (what went wrong);
//   - Name: optional classification label, inherited when wrapping;
//   - Info: supplement message recorded when wrapping an error that already
//     had a message of its own;
//   - Data, Trace: server-side diagnostics, never rendered;
//   - Cause: wrapped underlying error for errors.Is / errors.As;
//   - ordered extension fields and a Renderer (unexported, see WithField and
//     WithRenderer).
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and rendered concurrently.
type Error struct {
	// Status is the HTTP status of the error, e.g. 404.
	Status int

	// Message is a human-readable explanation. This is what ends up in the
	// "message" field of the default payload.
	Message string

	// Name is the classification label. Empty means "not set"; ErrorName
	// then reports DefaultName.
	Name string

	// Info is the message supplied to Wrap when the wrapped error already had
	// its own message.
	Info string

	// Data is an arbitrary diagnostic value attached by Internal. It is kept
	// for server-side logging and never reaches a payload.
	Data any

	// Trace is the call stack captured by Internal. Like Data, it is never
	// rendered.
	Trace Stack

	// Cause holds the wrapped underlying error (if any).
	Cause error

	fields   Fields
	renderer Renderer
}

// Ensure Error speaks the apis contracts, so that wrapping one Error into
// another goes through the same probes as foreign error types.
var (
	_ apis.StatusCoder  = (*Error)(nil)
	_ apis.NamedError   = (*Error)(nil)
	_ apis.FieldedError = (*Error)(nil)
)

// New builds an Error from a bare status and message.
//
// It panics with an error matching status.ErrInvalid when code is below 400:
// that is a bug in the caller, not a condition to recover from.
//
// Usage:
//
//	return apperror.New(http.StatusConflict, "version mismatch",
//	    apperror.WithFieldOption("expected", 3),
//	)
func New(code int, message string, opts ...Option) *Error {
	status.MustValidate(status.Code(code))
	e := &Error{Status: code, Message: message}
	return e.apply(opts)
}

// Wrap builds an Error from an existing error.
//
// The following attributes are transferred before normalization:
//   - from an *Error: Status, Name, Message, Info, Data, Trace, fields and
//     renderer;
//   - from any other error: the status (apis.StatusCoder), the name
//     (apis.NamedError) and the fields (apis.FieldedError), each taken from
//     the first error in the chain that provides it, and err.Error() as the
//     message.
//
// Normalization then applies: a missing or non-error status becomes 500; the
// wrapped message wins and message is stored as Info, unless the wrapped
// message is empty, in which case message is used. An adopted renderer is
// kept, so re-wrapping a challenge or pass-through error keeps its response.
//
// Wrap panics with ErrNilError when err is nil.
func Wrap(err error, message string, opts ...Option) *Error {
	if isNil(err) {
		panic(ErrNilError)
	}

	e := &Error{Cause: err}
	var wrapped string
	if ae, ok := err.(*Error); ok {
		e.Status = ae.Status
		e.Name = ae.Name
		e.Info = ae.Info
		e.Data = ae.Data
		e.Trace = ae.Trace
		e.fields = ae.fields.Clone()
		e.renderer = ae.renderer
		wrapped = ae.Message
	} else {
		var (
			sc apis.StatusCoder
			ne apis.NamedError
			fe apis.FieldedError
		)
		if errors.As(err, &sc) {
			e.Status = sc.StatusCode()
		}
		if errors.As(err, &ne) {
			e.Name = ne.ErrorName()
		}
		if errors.As(err, &fe) {
			e.fields = Fields(fe.ErrorFields()).Clone()
		}
		wrapped = err.Error()
	}

	if !status.Code(e.Status).Valid() {
		e.Status = int(status.Internal)
	}
	switch {
	case wrapped == "":
		e.Message = message
	case message != "":
		e.Message = wrapped
		e.Info = message
	default:
		e.Message = wrapped
	}

	return e.apply(opts)
}

// From returns the Error a boundary should render for err.
//
// A nil err, typed nil pointers included, yields nil. An *Error anywhere in
// the chain is returned as is. An error whose chain reports an error status
// (apis.StatusCoder, 400+) is wrapped. Any other error, including one that
// reports a non-error status, becomes a masked internal error, so its text
// never reaches a client.
func From(err error) *Error {
	if isNil(err) {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	e := Wrap(err, "")
	var sc apis.StatusCoder
	if !errors.As(err, &sc) || !status.Code(sc.StatusCode()).Valid() {
		e.Status = int(status.Internal)
		e.renderer = internalRenderer{}
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<status> <phrase>: <message> (<info>)
//
// with the message and info parts omitted when empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := status.Code(e.Status).String()
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Info != "" {
		s += " (" + e.Info + ")"
	}
	return s
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// StatusCode implements apis.StatusCoder.
func (e *Error) StatusCode() int { return e.Status }

// ErrorName implements apis.NamedError. It reports DefaultName when no name
// is set.
func (e *Error) ErrorName() string {
	if e.Name == "" {
		return DefaultName
	}
	return e.Name
}

// ErrorFields implements apis.FieldedError. The returned slice is a copy.
func (e *Error) ErrorFields() []apis.Field { return e.fields.Clone() }

// Fields returns a copy of the extension fields in insertion order.
func (e *Error) Fields() Fields { return e.fields.Clone() }

// Field returns the extension field stored under key.
func (e *Error) Field(key string) (any, bool) { return e.fields.Get(key) }

// IsMissing reports whether the error is an authentication challenge that
// carries no error detail (see Unauthorized).
func (e *Error) IsMissing() bool {
	v, _ := e.fields.Get(FieldIsMissing)
	missing, _ := v.(bool)
	return missing
}

// PassThrough returns the descriptor stored by the PassThrough factory.
func (e *Error) PassThrough() (Response, bool) {
	v, ok := e.fields.Get(FieldPassThrough)
	if !ok {
		return Response{}, false
	}
	r, ok := v.(Response)
	return r, ok
}

// Renderer returns the rendering strategy of e. It is never nil.
func (e *Error) Renderer() Renderer {
	if e == nil || e.renderer == nil {
		return DefaultRenderer
	}
	return e.renderer
}

// Kind reports which rendering strategy e uses.
func (e *Error) Kind() Kind {
	return kindOf(e.Renderer())
}

// Render turns e into a response descriptor using its renderer. Rendering
// does not modify e; calling it twice yields equal descriptors.
func (e *Error) Render() Response {
	if e == nil {
		return Response{}
	}
	return e.Renderer().Render(e)
}

// WithField returns a shallow copy of e with one extension field set.
// An existing key keeps its position; a new key is appended.
// The original error is not modified.
func (e *Error) WithField(key string, value any) *Error {
	cp := *e
	cp.fields = e.fields.With(key, value)
	return &cp
}

// WithFields returns a shallow copy of e with all fs set in order.
func (e *Error) WithFields(fs ...Field) *Error {
	if len(fs) == 0 {
		return e
	}
	cp := *e
	cp.fields = e.fields.Clone()
	for _, f := range fs {
		cp.fields = cp.fields.With(f.Key, f.Value)
	}
	return &cp
}

// WithRenderer returns a shallow copy of e rendered by r. A nil r restores
// the default renderer.
func (e *Error) WithRenderer(r Renderer) *Error {
	cp := *e
	cp.renderer = r
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithName returns a shallow copy of e with a replaced classification label.
func (e *Error) WithName(name string) *Error {
	cp := *e
	cp.Name = name
	return &cp
}

// WithData returns a shallow copy of e carrying the diagnostic value v.
func (e *Error) WithData(v any) *Error {
	cp := *e
	cp.Data = v
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

func (e *Error) apply(opts []Option) *Error {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// isNil reports whether err is nil, including typed nil pointers stored in
// the interface.
func isNil(err error) bool { return isNilValue(err) }

// isNilValue reports whether v is nil or a nil pointer.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
