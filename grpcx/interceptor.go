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
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/apis"
	"github.com/kcenon/common-system/mapper"
)

// Option configures the interceptors.
type Option func(*config)

type config struct {
	mapper apis.Mapper
	logger *slog.Logger
	module string
}

// WithMapper sets the mapper used to pick gRPC codes.
func WithMapper(m apis.Mapper) Option {
	return func(c *config) {
		if m != nil {
			c.mapper = m
		}
	}
}

// WithLogger sets the logger failed calls are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithModule sets the module assigned to plain Go errors returned by
// handlers.
func WithModule(m string) Option {
	return func(c *config) { c.module = m }
}

func newConfig(opts []Option) *config {
	c := &config{mapper: mapper.Default(), logger: slog.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// serverError converts a handler error. An ErrorInfo anywhere in the chain
// wins; otherwise errors that already carry a gRPC status, wrapped or not,
// pass through.
func (c *config) serverError(ctx context.Context, method string, err error) error {
	var ei common.ErrorInfo
	if !errors.As(err, &ei) {
		var gs interface{ GRPCStatus() *status.Status }
		if errors.As(err, &gs) {
			return err
		}
	}
	e := common.FromError(err, c.module)
	st := Status(e, c.mapper)
	c.logger.LogAttrs(ctx, slog.LevelWarn, "grpc call failed",
		slog.String("method", method),
		slog.String("grpc_code", st.Code().String()),
		slog.Any("error", e),
	)
	return st.Err()
}

// UnaryServerInterceptor maps handler errors into gRPC statuses.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, cfg.serverError(ctx, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	cfg := newConfig(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return cfg.serverError(ss.Context(), info.FullMethod, err)
	}
}

// UnaryClientInterceptor turns statuses produced by Status back into
// common.ErrorInfo. The status error stays reachable as the cause, so
// status.FromError keeps working. Other errors are returned unchanged.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if e, ok := FromError(err); ok {
			return e.WithCause(err)
		}
		return err
	}
}
