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

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the [Middleware] and [Transport] constructors. It
// follows the functional options pattern.
type Option func(*config)

// config holds the resolved settings shared by middleware and transport.
type config struct {
	logger         *slog.Logger
	enableOTel     bool
	propagators    propagation.TextMapPropagator
	propagatorsSet bool
	tracerProvider trace.TracerProvider
}

// applyOptions builds a config from defaults and the supplied options.
func applyOptions(opts []Option) *config {
	cfg := &config{enableOTel: true}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger returns an Option that sets the logger used for request
// completion records. When unset, [slog.Default] is used, so wiring a
// gelf.Handler into slog.SetDefault is enough for most applications.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOTel returns an Option that enables or disables otelhttp
// instrumentation around the wrapped handler or transport. Enabled by
// default; disable it when another layer already creates spans.
func WithOTel(enabled bool) Option {
	return func(c *config) {
		c.enableOTel = enabled
	}
}

// WithPropagators returns an Option that sets the propagators used to
// extract inbound trace context. The global OTel propagator is used when
// unset.
func WithPropagators(p propagation.TextMapPropagator) Option {
	return func(c *config) {
		c.propagators = p
		c.propagatorsSet = true
	}
}

// WithTracerProvider returns an Option that sets the tracer provider handed
// to otelhttp. The global provider is used when unset.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// resolveLogger returns the configured logger or the process default.
func (c *config) resolveLogger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}
