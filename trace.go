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

package gelf

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Additional field keys used for trace correlation. They reach the wire
// underscore-prefixed, for example `_trace_id`, where Graylog stream rules
// and searches can match on them.
const (
	// TraceIDKey carries the 32-char lowercase hex trace ID.
	TraceIDKey = "trace_id"
	// SpanIDKey carries the 16-char lowercase hex span ID.
	SpanIDKey = "span_id"
	// TraceSampledKey carries the boolean sampling decision.
	TraceSampledKey = "trace_sampled"
)

// TraceAdditionals extracts the active OpenTelemetry span context from ctx
// and returns it as additional fields ready for [Message.SetAdditional].
// The second return value is false when ctx carries no valid span context.
//
// This function is intentionally light-weight: it does not create spans,
// does not parse headers, and does not mutate context. Upstream middleware
// should populate the OTel span context (for example via OTel propagators)
// before records are formatted.
func TraceAdditionals(ctx context.Context) ([]Field, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil, false
	}
	return []Field{
		{Key: TraceIDKey, Value: sc.TraceID().String()},
		{Key: SpanIDKey, Value: sc.SpanID().String()},
		{Key: TraceSampledKey, Value: sc.IsSampled()},
	}, true
}

// ApplyTraceAdditionals copies the span context carried by ctx onto m as
// additional fields. It reports whether anything was applied.
func ApplyTraceAdditionals(ctx context.Context, m *Message) bool {
	fields, ok := TraceAdditionals(ctx)
	if !ok {
		return false
	}
	for _, f := range fields {
		m.SetAdditional(f.Key, f.Value)
	}
	return true
}
