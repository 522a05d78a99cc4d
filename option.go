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

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithFieldOption sets a single extension field on construction.
// Intended to be used with New(...) or Wrap(...).
func WithFieldOption(key string, value any) Option {
	return func(e *Error) *Error {
		return e.WithField(key, value)
	}
}

// WithFieldsOption sets multiple extension fields on construction, in order.
func WithFieldsOption(fs ...Field) Option {
	return func(e *Error) *Error {
		return e.WithFields(fs...)
	}
}

// WithRendererOption replaces the renderer on construction.
func WithRendererOption(r Renderer) Option {
	return func(e *Error) *Error {
		return e.WithRenderer(r)
	}
}

// WithNameOption sets the classification label on construction.
func WithNameOption(name string) Option {
	return func(e *Error) *Error {
		return e.WithName(name)
	}
}

// WithDataOption attaches a diagnostic value on construction.
func WithDataOption(v any) Option {
	return func(e *Error) *Error {
		return e.WithData(v)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with New(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
