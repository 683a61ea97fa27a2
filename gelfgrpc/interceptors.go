// Copyright 2025 Patrick J. Scruggs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gelfgrpc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	gelf "github.com/mdoviedor/gelf-formatter"
)

// Attribute keys of the RPC completion record.
const (
	serviceKey  = "grpc_service"
	methodKey   = "grpc_method"
	codeKey     = "grpc_code"
	peerKey     = "grpc_peer"
	durationKey = "grpc_duration_ms"
	errorKey    = "grpc_error"
)

// authorityMetadataKey is the pseudo-header carrying the host the client
// dialed, used for the formatter's `host_name` field.
const authorityMetadataKey = ":authority"

// UnaryServerInterceptor returns a [grpc.UnaryServerInterceptor] that logs
// each unary call on completion: gRPC service and method name, peer
// address, final status code, duration, and any handler error. Inbound
// trace context is extracted from the call metadata before the handler
// runs, so records the handler emits correlate with the caller's trace.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := processOptions(opts...)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if !trace.SpanContextFromContext(ctx).IsValid() {
				ctx = cfg.propagator().Extract(ctx, metadataCarrier{md: md})
			}
			if vals := md.Get(authorityMetadataKey); len(vals) > 0 {
				ctx = gelf.ContextWithServiceHost(ctx, vals[0])
			}
		}

		if !cfg.shouldLogFunc(ctx, info.FullMethod) {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		logFinish(ctx, cfg, info.FullMethod, peerAddr(ctx), time.Since(start), err)
		return resp, err
	}
}

// UnaryClientInterceptor returns a [grpc.UnaryClientInterceptor] that logs
// each outbound unary call on completion with the same attributes as the
// server interceptor.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	cfg := processOptions(opts...)

	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		callOpts ...grpc.CallOption,
	) error {
		if !cfg.shouldLogFunc(ctx, method) {
			return invoker(ctx, method, req, reply, cc, callOpts...)
		}

		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		logFinish(ctx, cfg, method, cc.Target(), time.Since(start), err)
		return err
	}
}

// logFinish emits the completion record for one call.
func logFinish(ctx context.Context, cfg *options, fullMethod, peer string, elapsed time.Duration, err error) {
	st := status.Convert(err)
	service, method := splitMethodName(fullMethod)

	attrs := []slog.Attr{
		slog.String(serviceKey, service),
		slog.String(methodKey, method),
		slog.String(codeKey, st.Code().String()),
		slog.String(peerKey, peer),
		slog.Int64(durationKey, elapsed.Milliseconds()),
	}
	if err != nil {
		attrs = append(attrs, slog.String(errorKey, err.Error()))
	}

	cfg.resolveLogger().LogAttrs(ctx, cfg.levelFunc(st.Code()), "finished grpc call", attrs...)
}

// propagator returns the configured propagator or the global one.
func (o *options) propagator() propagation.TextMapPropagator {
	if o.propagators != nil {
		return o.propagators
	}
	return otel.GetTextMapPropagator()
}

// peerAddr extracts the remote address from ctx, or "unknown".
func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown"
}

// splitMethodName splits a full method name like "/package.Service/Method"
// into its service and method parts.
func splitMethodName(fullMethodName string) (service, method string) {
	name := strings.TrimPrefix(fullMethodName, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "unknown", name
}

// metadataCarrier adapts gRPC metadata to the OTel TextMapCarrier interface
// for trace extraction.
type metadataCarrier struct {
	md metadata.MD
}

// Get returns the first value for key, case-insensitively.
func (c metadataCarrier) Get(key string) string {
	if vals := c.md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Set stores a key/value pair in the metadata.
func (c metadataCarrier) Set(key, value string) {
	c.md.Set(key, value)
}

// Keys lists the metadata keys.
func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c.md))
	for k := range c.md {
		keys = append(keys, k)
	}
	return keys
}
