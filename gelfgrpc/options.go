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

	"go.opentelemetry.io/otel/propagation"
	"google.golang.org/grpc/codes"
)

// Option configures the interceptors created by this package. It follows
// the functional options pattern.
type Option func(*options)

// CodeToLevel maps a gRPC status code to the slog level of the completion
// record. A default mapping is used when [WithLevels] is not provided.
type CodeToLevel func(code codes.Code) slog.Level

// ShouldLogFunc decides whether a call should be logged, given its context
// and full method name (for example "/package.Service/Method"). Returning
// false skips logging for that call; useful for health checks and other
// high-volume, low-interest RPCs.
type ShouldLogFunc func(ctx context.Context, fullMethodName string) bool

// options holds the interceptor configuration.
type options struct {
	logger        *slog.Logger
	levelFunc     CodeToLevel
	shouldLogFunc ShouldLogFunc
	propagators   propagation.TextMapPropagator
}

// processOptions applies opts over the defaults.
func processOptions(opts ...Option) *options {
	o := &options{
		levelFunc:     defaultCodeToLevel,
		shouldLogFunc: defaultShouldLog,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger returns an Option that sets the logger used for completion
// records. When unset, [slog.Default] is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLevels returns an Option that sets the status-code to level mapping
// of the completion record. Passing nil restores the default mapping.
func WithLevels(f CodeToLevel) Option {
	return func(o *options) {
		if f != nil {
			o.levelFunc = f
		} else {
			o.levelFunc = defaultCodeToLevel
		}
	}
}

// WithShouldLog returns an Option that sets a filter deciding per call
// whether to log at all. Passing nil restores the log-everything default.
func WithShouldLog(f ShouldLogFunc) Option {
	return func(o *options) {
		if f != nil {
			o.shouldLogFunc = f
		} else {
			o.shouldLogFunc = defaultShouldLog
		}
	}
}

// WithPropagators returns an Option that sets the propagators used to
// extract inbound trace context from gRPC metadata. The global OTel
// propagator is used when unset.
func WithPropagators(p propagation.TextMapPropagator) Option {
	return func(o *options) {
		o.propagators = p
	}
}

// defaultCodeToLevel maps gRPC status codes to completion-record levels:
// successful and canceled calls are informational, client errors and
// transient server conditions are warnings, clear server failures are
// errors.
func defaultCodeToLevel(code codes.Code) slog.Level {
	switch code {
	case codes.OK, codes.Canceled:
		return slog.LevelInfo
	case codes.InvalidArgument, codes.NotFound, codes.AlreadyExists,
		codes.Unauthenticated, codes.PermissionDenied:
		return slog.LevelWarn
	case codes.DeadlineExceeded, codes.ResourceExhausted, codes.FailedPrecondition,
		codes.Aborted, codes.OutOfRange, codes.Unavailable:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// defaultShouldLog logs every call.
func defaultShouldLog(_ context.Context, _ string) bool {
	return true
}

// resolveLogger returns the configured logger or the process default.
func (o *options) resolveLogger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}
