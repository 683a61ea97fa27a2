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

package gelfhttp

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	gelf "github.com/mdoviedor/gelf-formatter"
)

const instrumentationName = "github.com/mdoviedor/gelf-formatter/gelfhttp"

// Attribute keys of the request completion record.
const (
	methodKey   = "http_method"
	pathKey     = "http_path"
	statusKey   = "http_status"
	bytesKey    = "http_response_bytes"
	durationKey = "http_duration_ms"
	remoteIPKey = "http_remote_ip"
)

// Middleware returns an http.Handler middleware that stores the request's
// Host header in the context for the formatter's `host_name` field, extracts
// inbound trace context, and logs request completion through the configured
// logger. Application handlers keep logging however they already do; records
// they emit with the request context inherit the host and trace fields.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := applyOptions(opts)

	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}

		logging := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := gelf.ContextWithServiceHost(r.Context(), r.Host)
			if !trace.SpanContextFromContext(ctx).IsValid() {
				ctx = cfg.propagator().Extract(ctx, propagation.HeaderCarrier(r.Header))
			}
			r = r.WithContext(ctx)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			logger := cfg.resolveLogger()
			defer func() {
				logger.LogAttrs(ctx, levelForStatus(rec.status), "finished http request",
					slog.String(methodKey, r.Method),
					slog.String(pathKey, r.URL.Path),
					slog.Int(statusKey, rec.status),
					slog.Int64(bytesKey, rec.bytes),
					slog.Int64(durationKey, time.Since(start).Milliseconds()),
					slog.String(remoteIPKey, remoteIP(r)),
				)
			}()

			next.ServeHTTP(rec, r)
		})

		if !cfg.enableOTel {
			return logging
		}
		return otelhttp.NewHandler(logging, instrumentationName, cfg.otelOptions()...)
	}
}

// propagator returns the configured propagator or the global one.
func (c *config) propagator() propagation.TextMapPropagator {
	if c.propagatorsSet && c.propagators != nil {
		return c.propagators
	}
	return otel.GetTextMapPropagator()
}

// otelOptions builds otelhttp options from configuration.
func (c *config) otelOptions() []otelhttp.Option {
	var opts []otelhttp.Option
	if c.tracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(c.tracerProvider))
	}
	if c.propagatorsSet && c.propagators != nil {
		opts = append(opts, otelhttp.WithPropagators(c.propagators))
	}
	return opts
}

// levelForStatus maps an HTTP status code to the completion record's level.
func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// remoteIP strips the port from the request's remote address when present.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// statusRecorder captures the status code and body size written by the
// wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

// WriteHeader records the first status code written.
func (sr *statusRecorder) WriteHeader(status int) {
	if !sr.wroteHeader {
		sr.status = status
		sr.wroteHeader = true
	}
	sr.ResponseWriter.WriteHeader(status)
}

// Write tracks the number of body bytes written.
func (sr *statusRecorder) Write(p []byte) (int, error) {
	if !sr.wroteHeader {
		sr.wroteHeader = true
	}
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
