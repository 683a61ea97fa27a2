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

// Package gelf formats structured log records into the GELF (Graylog
// Extended Log Format) wire representation: one flat JSON object per line
// with the standardized fields (`version`, `host`, `short_message`,
// `full_message`, `timestamp`, `level`, `facility`) plus arbitrary
// underscore-prefixed additional fields. The package performs no I/O of its
// own; it hands the caller a finished, length-bounded JSON line and leaves
// delivery to whatever transport the application already uses.
//
// The two central pieces are:
//   - [Message], a per-record builder holding one entry's fields and
//     rendering them into the ordered wire mapping, applying the
//     version-dependent field renaming (GELF 1.1 deprecated the top-level
//     `facility`, `file`, and `line` keys) and the empty-value filter
//     (booleans and integers always survive, empty strings and nils do not).
//   - [Formatter], which maps a loosely-typed [Record] (message, level,
//     datetime, channel, context and extra maps) onto a [Message], enforces
//     the configured maximum field length, and serializes the result.
//
// Severity conversion between numeric syslog levels (0=Emergency through
// 7=Debug) and their textual names is strict in both directions; an
// unmappable level surfaces as [InvalidSeverityError] and aborts that record.
// Every other malformed input degrades instead of failing: a record missing
// its message, level, or datetime is repaired with fixed fallbacks so a
// logging pipeline never crashes on bad upstream data.
//
// # Subpackages
//
//   - [github.com/mdoviedor/gelf-formatter/gelfhttp] offers net/http
//     middleware that captures the inbound Host header for the `host_name`
//     field, extracts trace context, and logs request completion, plus an
//     instrumented outbound transport.
//   - [github.com/mdoviedor/gelf-formatter/gelfgrpc] provides unary client
//     and server interceptors that log RPC completion with a status-code to
//     severity mapping.
//
// # Quick Start
//
// Most applications use the [Handler], which plugs the formatter into
// [log/slog]:
//
//	h := gelf.NewHandler(os.Stdout, gelf.WithSystemName("api-01"))
//	logger := slog.New(h)
//	logger.Error("fuse blown", slog.Int("zone", 7))
//
// Direct use of the formatter is a single call:
//
//	f := gelf.NewFormatter(gelf.WithVersion(gelf.Version1_1))
//	line, err := f.Format(ctx, gelf.Record{Message: "boom", Level: "error"})
//
// # Configuration
//
// Functional options such as [WithSystemName], [WithVersion], [WithMaxLength],
// [WithExtraPrefix], and [WithContextPrefix] adjust behaviour
// programmatically; the matching `GELF_*` environment variables provide the
// defaults so the same binary can run locally and in production without code
// changes.
package gelf
