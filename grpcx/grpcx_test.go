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
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/apperror"
	"dirpx.dev/apperror/mapper"
)

func details(t *testing.T, st *gstatus.Status) (*errdetails.ErrorInfo, *structpb.Struct) {
	t.Helper()
	var (
		info *errdetails.ErrorInfo
		s    *structpb.Struct
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			info = v
		case *structpb.Struct:
			s = v
		}
	}
	require.NotNil(t, info, "ErrorInfo detail must be attached")
	return info, s
}

func TestToStatus_Default(t *testing.T) {
	e := apperror.NotFound("no such user").WithName("UserNotFound").WithField("id", 7)

	st := ToStatus(e, mapper.MustNew())

	assert.Equal(t, gcodes.NotFound, st.Code())
	assert.Equal(t, "no such user", st.Message())

	info, s := details(t, st)
	assert.Equal(t, "UserNotFound", info.GetReason())
	assert.Equal(t, Domain, info.GetDomain())
	assert.Equal(t, "404", info.GetMetadata()[MetaHTTPStatus])
	assert.Equal(t, "default", info.GetMetadata()[MetaKind])

	require.NotNil(t, s)
	assert.Equal(t, float64(7), s.GetFields()["id"].GetNumberValue())
}

func TestToStatus_InternalIsMasked(t *testing.T) {
	st := ToStatus(apperror.Internal("db down", "dsn=secret"), mapper.MustNew())

	assert.Equal(t, gcodes.Internal, st.Code())
	assert.Equal(t, apperror.InternalMessage, st.Message())
	assert.NotContains(t, fmt.Sprint(st.Proto()), "db down")
	assert.NotContains(t, fmt.Sprint(st.Proto()), "secret")

	info, _ := details(t, st)
	assert.Equal(t, "internal", info.GetMetadata()[MetaKind])
}

func TestToStatus_PassThroughWithoutObject(t *testing.T) {
	e := apperror.PassThrough(http.StatusTeapot, "short and stout", "text/plain", nil)

	st := ToStatus(e, mapper.MustNew())

	assert.Equal(t, gcodes.FailedPrecondition, st.Code())
	assert.Equal(t, "I'm a teapot", st.Message())
	info, s := details(t, st)
	assert.Equal(t, "418", info.GetMetadata()[MetaHTTPStatus])
	assert.Nil(t, s)
}

func TestNilMapperUsesDefaults(t *testing.T) {
	st := ToStatus(apperror.NotFound("no such user"), nil)
	assert.Equal(t, gcodes.NotFound, st.Code())

	e := FromError(st.Err(), nil)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusNotFound, e.Status)

	e = FromError(gstatus.Error(gcodes.Unavailable, "try later"), nil)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusServiceUnavailable, e.Status)

	icpt := UnaryServerInterceptor(nil, slog.New(slog.DiscardHandler))
	_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, apperror.Forbidden("not yours")
	})
	assert.Equal(t, gcodes.PermissionDenied, gstatus.Code(err))
}

func TestUnaryServerInterceptor_WrappedStatusCoder(t *testing.T) {
	icpt := UnaryServerInterceptor(mapper.MustNew(), slog.New(slog.DiscardHandler))
	_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, fmt.Errorf("lookup: %w", apperror.NotFound("no such user"))
	})
	assert.Equal(t, gcodes.NotFound, gstatus.Code(err))
}

func TestToStatus_Nil(t *testing.T) {
	assert.NoError(t, ToStatus(nil, mapper.MustNew()).Err())
}

func TestFromError_RoundTrip(t *testing.T) {
	m := mapper.MustNew()
	orig := apperror.Wrap(apperror.Conflict("version mismatch"), "saving order").
		WithName("StaleWrite").
		WithField("expected", 3)

	e := FromError(ToStatus(orig, m).Err(), m)

	require.NotNil(t, e)
	assert.Equal(t, http.StatusConflict, e.Status)
	assert.Equal(t, "version mismatch", e.Message)
	assert.Equal(t, "saving order", e.Info)
	assert.Equal(t, "StaleWrite", e.Name)
	v, ok := e.Field("expected")
	assert.True(t, ok)
	assert.Equal(t, float64(3), v)
}

func TestFromError_Challenge(t *testing.T) {
	m := mapper.MustNew()
	orig := apperror.Unauthorized("bad token", "Bearer", apperror.Attr{Name: "realm", Value: "api"})

	e := FromError(ToStatus(orig, m).Err(), m)

	require.NotNil(t, e)
	assert.Equal(t, apperror.KindChallenge, e.Kind())
	assert.Equal(t, `Bearer realm="api", error="bad token"`, e.Render().Headers["WWW-Authenticate"])
}

func TestFromError_ForeignStatusUsesReverseMapping(t *testing.T) {
	m := mapper.MustNew()

	e := FromError(gstatus.Error(gcodes.Unavailable, "try later"), m)

	require.NotNil(t, e)
	assert.Equal(t, http.StatusServiceUnavailable, e.Status)
	assert.Equal(t, "try later", e.Message)
	assert.Equal(t, apperror.DefaultName, e.ErrorName())
}

func TestFromError_Edges(t *testing.T) {
	m := mapper.MustNew()

	assert.Nil(t, FromError(nil, m))
	assert.Nil(t, FromError(gstatus.Error(gcodes.OK, ""), m))

	e := FromError(errors.New("plain"), m)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, apperror.KindInternal, e.Kind())
}

func TestUnaryServerInterceptor(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	icpt := UnaryServerInterceptor(mapper.MustNew(), logger)
	info := &grpc.UnaryServerInfo{FullMethod: "/orders.v1.Orders/Get"}

	tests := []struct {
		name    string
		err     error
		want    gcodes.Code
		wantMsg string
	}{
		{"application error", apperror.Forbidden("not yours"), gcodes.PermissionDenied, "not yours"},
		{"foreign error is masked", errors.New("secret dsn"), gcodes.Internal, apperror.InternalMessage},
		{"grpc status passes through", gstatus.Error(gcodes.Aborted, "retry"), gcodes.Aborted, "retry"},
		{"context canceled", context.Canceled, gcodes.Canceled, context.Canceled.Error()},
		{"deadline", fmt.Errorf("calling store: %w", context.DeadlineExceeded), gcodes.DeadlineExceeded, "calling store: context deadline exceeded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
				return nil, tt.err
			})
			st, ok := gstatus.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}

	assert.Contains(t, logs.String(), "/orders.v1.Orders/Get")
	assert.Contains(t, logs.String(), "secret dsn")
}

func TestUnaryServerInterceptor_Success(t *testing.T) {
	icpt := UnaryServerInterceptor(mapper.MustNew(), nil)
	resp, err := icpt(context.Background(), "req", &grpc.UnaryServerInfo{}, func(_ context.Context, req any) (any, error) {
		return req, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req", resp)
}

type fakeStream struct {
	grpc.ServerStream
}

func (fakeStream) Context() context.Context { return context.Background() }

func TestStreamServerInterceptor(t *testing.T) {
	icpt := StreamServerInterceptor(mapper.MustNew(), slog.New(slog.DiscardHandler))
	info := &grpc.StreamServerInfo{FullMethod: "/orders.v1.Orders/Watch"}

	err := icpt(nil, fakeStream{}, info, func(any, grpc.ServerStream) error {
		return apperror.ServerTimeout("feed unavailable")
	})
	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, gcodes.Unavailable, st.Code())

	assert.NoError(t, icpt(nil, fakeStream{}, info, func(any, grpc.ServerStream) error { return nil }))
}

func TestUnaryClientInterceptor(t *testing.T) {
	m := mapper.MustNew()
	icpt := UnaryClientInterceptor(m)

	err := icpt(context.Background(), "/orders.v1.Orders/Get", nil, nil, nil,
		func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return ToStatus(apperror.Gone("archived"), m).Err()
		})

	var e *apperror.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusGone, e.Status)
	assert.Equal(t, "archived", e.Message)
}
