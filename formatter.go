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
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Reserved context keys the formatter promotes onto the message instead of
// emitting as additional fields.
const (
	shortMessageKey = "short_message"
	lineKey         = "line"
)

// fallbackMessage replaces the message text of a record that arrives without
// a message or level. The substituted record logs at [SeverityWarning].
const fallbackMessage = "malformed log record received"

// lengthEstimatePadding is the fixed allowance for metadata and JSON
// overhead when deciding whether the full message must be truncated to stay
// under the configured maximum length.
const lengthEstimatePadding = 200

// shortMessageRunes is how much of the full message becomes the derived
// short message when the record's context does not override it.
const shortMessageRunes = 20

// Formatter maps a [Record] onto a [Message] and serializes it as a single
// GELF JSON line. All configuration is fixed at construction, so a Formatter
// is stateless across calls and safe for concurrent use.
type Formatter struct {
	cfg config
}

// NewFormatter returns a Formatter configured from GELF_* environment
// variables and the provided options, later options winning.
func NewFormatter(opts ...Option) *Formatter {
	return &Formatter{cfg: applyOptions(opts...)}
}

// Format converts rec into one newline-terminated GELF JSON line.
//
// Missing message, level, or datetime values are repaired with fixed
// fallbacks so a malformed upstream record degrades instead of failing; the
// only error Format returns is [InvalidSeverityError] for a level that maps
// to neither severity representation, in which case no partial output is
// produced.
//
// ctx supplies the `host_name` side field when the record is formatted
// inside a serving context (see [ContextWithServiceHost]) and, when it
// carries a valid OpenTelemetry span context, the `_trace_id`, `_span_id`,
// and `_trace_sampled` correlation fields. It is not used for cancellation.
func (f *Formatter) Format(ctx context.Context, rec Record) (string, error) {
	text := rec.Message
	level := rec.Level
	if text == "" || level == nil {
		text = fallbackMessage
		level = SeverityWarning
	}
	datetime := rec.Datetime
	if datetime == nil {
		datetime = time.Now()
	}

	msg := NewMessage()
	msg.SetVersion(f.cfg.version)
	msg.SetHost(f.cfg.systemName)
	msg.SetServiceHost(ServiceHost(ctx))
	msg.SetTimestamp(datetime)
	msg.SetFullMessage(text)
	if err := msg.SetLevel(level); err != nil {
		return "", err
	}

	ctxFields := maps.Clone(rec.Context)
	if short, ok := ctxFields[shortMessageKey]; ok {
		msg.SetShortMessage(fmt.Sprint(short))
		delete(ctxFields, shortMessageKey)
	} else {
		msg.SetShortMessage(headRunes(text, shortMessageRunes))
	}
	if line, ok := ctxFields[lineKey]; ok {
		msg.SetLine(line)
		delete(ctxFields, lineKey)
	}

	if lengthEstimatePadding+len(text)+len(f.cfg.systemName) > f.cfg.maxLength {
		msg.SetFullMessage(truncate(text, f.cfg.maxLength))
	}

	if rec.Channel != "" {
		msg.SetFacility(rec.Channel)
	}

	f.appendAdditionals(msg, f.cfg.extraPrefix, rec.Extra)
	f.appendAdditionals(msg, f.cfg.contextPrefix, ctxFields)
	ApplyTraceAdditionals(ctx, msg)

	var b strings.Builder
	if err := encodeJSON(&b, msg.Render()); err != nil {
		return "", fmt.Errorf("gelf: encode payload: %w", err)
	}
	return b.String(), nil
}

// appendAdditionals copies fields onto msg as prefixed additional fields.
// Keys are visited in sorted order so output is deterministic. Non-scalar
// values are serialized to JSON text first. When a field's prefixed key plus
// stringified value exceeds the configured maximum length, the value is
// truncated and the remainder of the group is skipped; one oversized field
// is taken as a sign the record is abusive and not worth growing further.
func (f *Formatter) appendAdditionals(msg *Message, prefix string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fields[key]
		if !isScalar(value) {
			value = jsonText(value)
		}
		str := stringifyScalar(value)
		if len(prefix)+len(key)+len(str) > f.cfg.maxLength {
			msg.SetAdditional(prefix+key, truncate(str, f.cfg.maxLength))
			break
		}
		msg.SetAdditional(prefix+key, value)
	}
}

// isScalar reports whether v passes through to the payload unchanged.
func isScalar(v any) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// jsonText renders a non-scalar value as compact JSON text, falling back to
// fmt formatting for values encoding/json rejects.
func jsonText(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// stringifyScalar yields the string form used for length accounting.
func stringifyScalar(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// headRunes returns the first n runes of s.
func headRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// truncate cuts s to at most limit bytes, backing off to the previous rune
// boundary so the result stays valid UTF-8.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
