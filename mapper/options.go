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

package mapper

import (
	"google.golang.org/grpc/codes"

	"github.com/kcenon/common-system/code"
)

// Option configures a Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets the per-code HTTP default.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault sets the per-code gRPC default.
func WithGRPCDefault(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = status }
}

// WithHTTPOverride pins the HTTP status of a code regardless of module
// rules.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.override[c] = status }
}

// WithGRPCOverride pins the gRPC status of a code regardless of module
// rules.
func WithGRPCOverride(c code.Code, status codes.Code) Option {
	return func(b *builder) { b.grpc.override[c] = status }
}

// WithHTTPPrefix adds a module prefix rule for code c. The most specific
// prefix wins; "*" matches one segment.
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix is WithHTTPPrefix for gRPC.
func WithGRPCPrefix(c code.Code, prefix string, status codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule[codes.Code]{prefix, status})
	}
}

// WithCategoryHTTP sets the HTTP status for codes of category cat that have
// no per-code rule.
func WithCategoryHTTP(cat code.Category, status int) Option {
	return func(b *builder) { b.http.categories[cat] = status }
}

// WithCategoryGRPC is WithCategoryHTTP for gRPC.
func WithCategoryGRPC(cat code.Category, status codes.Code) Option {
	return func(b *builder) { b.grpc.categories[cat] = status }
}

// WithFallback replaces the statuses used when nothing else matches.
func WithFallback(httpStatus int, grpcStatus codes.Code) Option {
	return func(b *builder) {
		b.http.fallback = httpStatus
		b.grpc.fallback = grpcStatus
	}
}
