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

package grpcx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/apperror"
	"dirpx.dev/apperror/adapter"
	"dirpx.dev/apperror/apis"
	"dirpx.dev/apperror/mapper"
	"dirpx.dev/apperror/status"
)

// Domain is the errdetails.ErrorInfo domain of errors produced by ToStatus.
const Domain = "apperror.dirpx.dev"

// defaultMapper is used wherever a nil apis.Mapper is passed.
var defaultMapper = mapper.MustNew()

func mapperOrDefault(m apis.Mapper) apis.Mapper {
	if m == nil {
		return defaultMapper
	}
	return m
}

// ErrorInfo metadata keys.
const (
	MetaHTTPStatus      = "http_status"
	MetaKind            = "kind"
	MetaWWWAuthenticate = "www_authenticate"
)

// ToStatus converts an application error into a gRPC status.
//
// The error is rendered first, so the status carries exactly what an HTTP
// client would see: the gRPC code is resolved from the rendered status by m,
// the status message is the payload message (masked for internal errors),
// and the details are:
//   - errdetails.ErrorInfo{Reason: name, Domain: Domain, Metadata: {http_status, kind}};
//   - the payload as a structpb.Struct, when it is a JSON object.
//
// A WWW-Authenticate challenge is kept in the ErrorInfo metadata. A nil m
// means the library defaults (mapper.New with no options).
func ToStatus(e *apperror.Error, m apis.Mapper) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}
	m = mapperOrDefault(m)
	resp := e.Render()

	msg := status.Code(resp.StatusCode).Text()
	if obj, ok := resp.Payload.(apperror.Object); ok {
		if v, ok := obj.Get("message"); ok {
			if s, ok := v.(string); ok {
				msg = s
			}
		}
	}

	base := gstatus.New(m.GRPCCode(resp.StatusCode), msg)

	info := &errdetails.ErrorInfo{
		Reason: e.ErrorName(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaHTTPStatus: strconv.Itoa(resp.StatusCode),
			MetaKind:       e.Kind().String(),
		},
	}
	if v := resp.Headers["WWW-Authenticate"]; v != "" {
		info.Metadata[MetaWWWAuthenticate] = v
	}

	// Try to attach the details. If it fails, return base.
	if s, err := adapter.ToStruct(resp.Payload); err == nil {
		if with, err := base.WithDetails(info, s); err == nil {
			return with
		}
	}
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// FromError rebuilds an application error from a gRPC error, typically on the
// client side.
//
// The status comes from the ErrorInfo metadata when present, else from the
// reverse mapping of the gRPC code by m. Payload fields other than the
// canonical ones are restored in key order. A nil m means the library
// defaults. A nil err or an OK status yields
// nil; errors that carry no gRPC status go through apperror.From.
func FromError(err error, m apis.Mapper) *apperror.Error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apperror.From(err)
	}
	if st.Code() == gcodes.OK {
		return nil
	}
	m = mapperOrDefault(m)

	var (
		info    *errdetails.ErrorInfo
		payload apperror.Object
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() == Domain {
				info = v
			}
		case *structpb.Struct:
			payload = adapter.FromStruct(v)
		}
	}

	code := m.HTTPStatus(st.Code())
	if info != nil {
		if c, err := status.Parse(info.GetMetadata()[MetaHTTPStatus]); err == nil {
			code = int(c)
		}
	}

	var e *apperror.Error
	if ch := info.GetMetadata()[MetaWWWAuthenticate]; ch != "" && code == int(status.Unauthorized) {
		e = apperror.UnauthorizedChallenges(st.Message(), ch)
	} else {
		e = apperror.New(code, st.Message())
	}
	e.Cause = err

	if r := info.GetReason(); r != "" && r != apperror.DefaultName {
		e.Name = r
	}
	for _, f := range payload {
		switch f.Key {
		case "error", "code", "message", "name":
		case "info":
			if s, ok := f.Value.(string); ok {
				e.Info = s
			}
		default:
			e = e.WithField(f.Key, f.Value)
		}
	}
	return e
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// converts handler errors into gRPC statuses with ToStatus.
//
// Errors that already carry a gRPC status are returned as is; context
// cancellation and deadlines map to their canonical codes. Everything else
// goes through apperror.From, so unknown errors are masked. A nil m means
// the library defaults; a nil logger means slog.Default().
func UnaryServerInterceptor(m apis.Mapper, logger *slog.Logger) grpc.UnaryServerInterceptor {
	m = mapperOrDefault(m)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, info.FullMethod, err, m, logger)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, logger *slog.Logger) grpc.StreamServerInterceptor {
	m = mapperOrDefault(m)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(ss.Context(), info.FullMethod, err, m, logger)
	}
}

// UnaryClientInterceptor returns a client interceptor that rebuilds
// application errors from the statuses returned by the server.
func UnaryClientInterceptor(m apis.Mapper) grpc.UnaryClientInterceptor {
	m = mapperOrDefault(m)
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if e := FromError(err, m); e != nil {
			return e
		}
		return err
	}
}

func convert(ctx context.Context, method string, err error, m apis.Mapper, logger *slog.Logger) error {
	if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
		// Not ours, return as-is.
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return gstatus.FromContextError(err).Err()
	}

	e := apperror.From(err)
	sent := e.Render().StatusCode
	if logger == nil {
		logger = slog.Default()
	}
	d := adapter.ToDescriptor(e, m)
	args := []any{
		"grpc_method", method,
		"grpc_code", int(m.GRPCCode(sent)),
		"status", sent,
		"name", d.Name,
		"kind", d.Kind,
		"message", d.Message,
	}
	if d.Cause != "" {
		args = append(args, "cause", d.Cause)
	}
	if sent < http.StatusInternalServerError {
		logger.DebugContext(ctx, "rpc failed", args...)
	} else {
		if len(e.Trace) > 0 {
			args = append(args, "trace", e.Trace.Strings())
		}
		logger.ErrorContext(ctx, "rpc failed", args...)
	}

	return ToStatus(e, m).Err()
}
