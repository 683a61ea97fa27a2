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
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Attribute keys of the outbound request record.
const (
	clientMethodKey   = "http_client_method"
	clientURLKey      = "http_client_url"
	clientStatusKey   = "http_client_status"
	clientDurationKey = "http_client_duration_ms"
	clientErrorKey    = "http_client_error"
)

// Transport returns an http.RoundTripper that logs every outbound request on
// completion. With otelhttp enabled (the default) the base transport is
// instrumented first, so requests carry spans and the emitted records pick
// up the trace correlation fields from the request context.
func Transport(base http.RoundTripper, opts ...Option) http.RoundTripper {
	cfg := applyOptions(opts)
	if base == nil {
		base = http.DefaultTransport
	}
	if cfg.enableOTel {
		var otelOpts []otelhttp.Option
		if cfg.tracerProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithTracerProvider(cfg.tracerProvider))
		}
		if cfg.propagatorsSet && cfg.propagators != nil {
			otelOpts = append(otelOpts, otelhttp.WithPropagators(cfg.propagators))
		}
		base = otelhttp.NewTransport(base, otelOpts...)
	}
	return roundTripper{base: base, cfg: cfg}
}

type roundTripper struct {
	base http.RoundTripper
	cfg  *config
}

// RoundTrip forwards the request to the base transport and logs the outcome.
func (t roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	attrs := []slog.Attr{
		slog.String(clientMethodKey, req.Method),
		slog.String(clientURLKey, req.URL.Redacted()),
		slog.Int64(clientDurationKey, elapsed.Milliseconds()),
	}
	level := slog.LevelInfo
	switch {
	case err != nil:
		level = slog.LevelError
		attrs = append(attrs, slog.String(clientErrorKey, err.Error()))
	case resp != nil:
		level = levelForStatus(resp.StatusCode)
		attrs = append(attrs, slog.Int(clientStatusKey, resp.StatusCode))
	}

	t.cfg.resolveLogger().LogAttrs(req.Context(), level, "finished outbound http request", attrs...)
	return resp, err
}
