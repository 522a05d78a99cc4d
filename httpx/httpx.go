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

package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"dirpx.dev/apperror"
	"dirpx.dev/apperror/adapter"
	"dirpx.dev/apperror/apis"
)

// DefaultContentType is used for payloads when neither the rendered Response
// nor the Writer names a content type.
const DefaultContentType = "application/json; charset=utf-8"

// HandlerFunc is an http.HandlerFunc that may fail with an error.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response through the error's renderer.
//
// The zero value is usable: it logs to slog.Default and resolves no gRPC code
// in log records. A Writer is safe for concurrent use.
type Writer struct {
	// Mapper, when set, adds the resolved gRPC code to log records.
	Mapper apis.Mapper

	// Logger receives server-side diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// ContentType is used when the rendered Response does not set one.
	ContentType string
}

// Write renders err and writes it to rw.
//
// err goes through apperror.From first, so errors that are not application
// errors are masked as internal. A nil err writes nothing.
//
// Body encoding follows the payload type: []byte and string are written
// raw, nil writes an empty body, anything else is JSON-encoded.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	e := apperror.From(err)
	if e == nil {
		return
	}
	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	resp := e.Render()
	w.log(ctx, e, resp.StatusCode)

	body, encErr := encode(resp.Payload)
	if encErr != nil {
		// The error's own payload cannot be sent; fall back to a bare
		// internal error, which always encodes.
		w.logger().ErrorContext(ctx, "cannot encode error payload", "status", resp.StatusCode, "error", encErr)
		resp = apperror.Internal(encErr.Error(), nil).Render()
		body, _ = encode(resp.Payload)
	}

	h := rw.Header()
	for k, v := range resp.Headers {
		h.Set(k, v)
	}
	if ct := w.contentType(resp); ct != "" && (len(body) > 0 || resp.ContentType != "") {
		h.Set("Content-Type", ct)
	}
	rw.WriteHeader(resp.StatusCode)
	if len(body) > 0 {
		_, _ = rw.Write(body)
	}
}

// Handle adapts h to an http.Handler that writes any returned error.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, r, err)
		}
	})
}

// Recoverer is a middleware that turns panics into internal errors.
//
// The panic value is kept as the error's data and the stack is captured at
// the panic site; neither reaches the client. http.ErrAbortHandler is
// re-panicked so net/http can abort the connection.
func (w Writer) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:errorlint // this must compare directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			e := apperror.Internal(fmt.Sprintf("panic: %v", rvr), rvr)
			if err, ok := rvr.(error); ok {
				e = e.WithCause(err)
			}
			if r.Header.Get("Connection") == "Upgrade" {
				w.log(r.Context(), e, e.Status)
				return
			}
			w.Write(rw, r, e)
		}()

		next.ServeHTTP(rw, r)
	})
}

// NotFound returns a handler that writes a 404 for the requested path. It is
// meant for router fallbacks, e.g. chi's Router.NotFound.
func (w Writer) NotFound() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, r, apperror.NotFound(fmt.Sprintf("no route for %s", r.URL.Path)))
	}
}

// MethodNotAllowed returns a handler that writes a 405 for the request.
func (w Writer) MethodNotAllowed() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, r, apperror.MethodNotAllowed(fmt.Sprintf("method %s is not allowed for %s", r.Method, r.URL.Path)))
	}
}

func (w Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

func (w Writer) contentType(resp apperror.Response) string {
	switch {
	case resp.ContentType != "":
		return resp.ContentType
	case w.ContentType != "":
		return w.ContentType
	default:
		return DefaultContentType
	}
}

// log records e server-side under the status actually sent: 5xx at error
// level with diagnostics, everything else at debug level. The sent status
// differs from e.Status only for pass-through errors.
func (w Writer) log(ctx context.Context, e *apperror.Error, sent int) {
	d := adapter.ToDescriptor(e, w.Mapper)
	args := []any{
		"status", sent,
		"name", d.Name,
		"kind", d.Kind,
		"message", d.Message,
	}
	if d.Info != "" {
		args = append(args, "info", d.Info)
	}
	if w.Mapper != nil {
		args = append(args, "grpc_code", int(w.Mapper.GRPCCode(sent)))
	}
	if d.Cause != "" {
		args = append(args, "cause", d.Cause)
	}
	if id := middleware.GetReqID(ctx); id != "" {
		args = append(args, "request_id", id)
	}

	if sent < http.StatusInternalServerError {
		w.logger().DebugContext(ctx, "request failed", args...)
		return
	}
	if e.Data != nil {
		args = append(args, "data", e.Data)
	}
	if len(e.Trace) > 0 {
		args = append(args, "trace", e.Trace.Strings())
	}
	w.logger().ErrorContext(ctx, "request failed", args...)
}

func encode(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpx: encode payload: %w", err)
	}
	return b, nil
}
