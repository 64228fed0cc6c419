/*
   Copyright 2025 The kcenon Authors

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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/mapper"
)

func TestStatus_CarriesErrorInfo(t *testing.T) {
	e := common.New(code.NotFound, "user 42 missing",
		common.WithModule("database.query"),
		common.WithDetails("table=users"))

	st := Status(e, nil)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "user 42 missing", st.Message())

	require.Len(t, st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", info.GetReason())
	assert.Equal(t, "database.query", info.GetDomain())
	assert.Equal(t, "-2", info.GetMetadata()[MetaCode])
	assert.Equal(t, "common", info.GetMetadata()[MetaCategory])
	assert.Equal(t, "table=users", info.GetMetadata()[MetaDetails])
}

func TestStatus_UsesMapper(t *testing.T) {
	m, err := mapper.New(mapper.WithGRPCPrefix(code.Timeout, "database", codes.Unavailable))
	require.NoError(t, err)

	st := Status(common.New(code.Timeout, "slow", common.WithModule("database.pool")), m)
	assert.Equal(t, codes.Unavailable, st.Code())
}

func TestStatus_Success(t *testing.T) {
	st := Status(common.ErrorInfo{}, nil)
	assert.Equal(t, codes.OK, st.Code())
	assert.Empty(t, st.Details())
	assert.NoError(t, st.Err())
}

func TestRoundTrip(t *testing.T) {
	tests := []common.ErrorInfo{
		common.New(code.InvalidArgument, "bad", common.WithModule("network.tcp"), common.WithDetails("")),
		common.New(code.Timeout, "slow"),
		common.New(-1500, "future system failure", common.WithModule("gpu.driver")),
	}
	for _, want := range tests {
		got, ok := FromError(Status(want, nil).Err())
		require.True(t, ok)
		assert.True(t, want.Equal(got), "want %v, got %v", want, got)
	}
}

func TestStatus_UnknownReason(t *testing.T) {
	info := ErrorDetail(common.New(-1500, "x"))
	assert.Equal(t, UnknownReason, info.GetReason())
	assert.Equal(t, "reserved", info.GetMetadata()[MetaCategory])
}

func TestFromError_Foreign(t *testing.T) {
	_, ok := FromError(nil)
	assert.False(t, ok)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(status.Error(codes.Internal, "no details"))
	assert.False(t, ok)
}

func TestMarshalStatusJSON(t *testing.T) {
	st := Status(common.New(code.PermissionDenied, "nope", common.WithModule("common.auth")), nil)
	b, err := MarshalStatusJSON(st)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.EqualValues(t, codes.PermissionDenied, doc["code"])
	assert.Equal(t, "nope", doc["message"])
	assert.Contains(t, string(b), "PERMISSION_DENIED")
	assert.Contains(t, string(b), "google.rpc.ErrorInfo")
}

func TestUnaryServerInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	icpt := UnaryServerInterceptor(WithLogger(logger), WithModule("network.rpc"))
	info := &grpc.UnaryServerInfo{FullMethod: "/svc.Users/Get"}

	t.Run("error info", func(t *testing.T) {
		_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, common.New(code.AlreadyExists, "dup", common.WithModule("database.users"))
		})
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.AlreadyExists, st.Code())

		e, ok := FromError(err)
		require.True(t, ok)
		assert.Equal(t, "database.users", e.Module())
		assert.Contains(t, buf.String(), "/svc.Users/Get")
	})

	t.Run("plain error", func(t *testing.T) {
		_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, context.DeadlineExceeded
		})
		e, ok := FromError(err)
		require.True(t, ok)
		assert.Equal(t, code.Timeout, e.Code())
		assert.Equal(t, "network.rpc", e.Module())
		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	})

	t.Run("status passes through", func(t *testing.T) {
		in := status.Error(codes.Aborted, "retry")
		_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, in
		})
		assert.Same(t, in, err)
	})

	t.Run("wrapped status passes through", func(t *testing.T) {
		_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, fmt.Errorf("lookup: %w", status.Error(codes.NotFound, "no row"))
		})
		assert.Equal(t, codes.NotFound, status.Code(err))
		_, ok := FromError(err)
		assert.False(t, ok)
	})

	t.Run("error info wrapping a status", func(t *testing.T) {
		_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, common.New(code.PermissionDenied, "denied").WithCause(status.Error(codes.Unavailable, "upstream"))
		})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("success", func(t *testing.T) {
		resp, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f fakeStream) Context() context.Context { return f.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	icpt := StreamServerInterceptor(WithLogger(slog.New(slog.DiscardHandler)))
	info := &grpc.StreamServerInfo{FullMethod: "/svc.Logs/Tail"}

	err := icpt(nil, fakeStream{ctx: context.Background()}, info, func(any, grpc.ServerStream) error {
		return common.New(code.LoggerWriterFull, "buffer full")
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	e, ok := FromError(err)
	require.True(t, ok)
	assert.Equal(t, code.LoggerWriterFull, e.Code())
}

func TestUnaryClientInterceptor(t *testing.T) {
	want := common.New(code.NetworkSessionExpired, "expired", common.WithModule("network.session"))
	icpt := UnaryClientInterceptor()

	err := icpt(context.Background(), "/svc.Users/Get", nil, nil, nil,
		func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return Status(want, nil).Err()
		})

	var got common.ErrorInfo
	require.ErrorAs(t, err, &got)
	assert.True(t, want.Equal(got))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	plain := errors.New("dial failed")
	err = icpt(context.Background(), "/m", nil, nil, nil,
		func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return plain
		})
	assert.Same(t, plain, err)
}
