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

// Package gelfhttp connects net/http servers and clients to the GELF
// formatter.
//
// [Middleware] stores each inbound request's Host header in the request
// context, where the formatter's `host_name` field reads it back, extracts
// W3C trace context from the request headers so emitted records correlate
// with the active trace, and logs request completion through the configured
// [log/slog] logger. [Transport] does the outbound counterpart, optionally
// instrumented with otelhttp so requests carry spans.
//
// The package produces log records only; it ships nothing to a collector.
//
//	h := gelf.NewHandler(os.Stdout, gelf.WithChannel("web"))
//	logger := slog.New(h)
//	mux := http.NewServeMux()
//	srv := &http.Server{Handler: gelfhttp.Middleware(gelfhttp.WithLogger(logger))(mux)}
package gelfhttp
