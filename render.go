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
	"reflect"
	"time"
)

// timeLayout is the display format of the `time` side field. The protocol
// carries the precise value in `timestamp`; this string is a coarse
// convenience for human readers.
const timeLayout = "2006-01-02 15:04:05"

// versionRenderer maps a standard field key to its wire key for one protocol
// version.
type versionRenderer interface {
	fieldKey(key string) string
}

// gelf10Renderer keeps every standard key as-is.
type gelf10Renderer struct{}

func (gelf10Renderer) fieldKey(key string) string { return key }

// gelf11Renderer applies the 1.1 deprecation of top-level facility, file,
// and line, moving them into underscore-prefixed additional keys.
type gelf11Renderer struct{}

func (gelf11Renderer) fieldKey(key string) string {
	switch key {
	case "facility", "file", "line":
		return "_" + key
	}
	return key
}

// rendererForVersion selects the rendering strategy for a version tag.
// Unrecognized versions render like 1.0.
func rendererForVersion(version string) versionRenderer {
	if version == Version1_1 {
		return gelf11Renderer{}
	}
	return gelf10Renderer{}
}

// Render produces the ordered wire mapping for m: the standard fields in
// their canonical order (renamed per protocol version), then every
// additional field with its key prefixed by an underscore. Entries holding
// an empty value are dropped; see [keepValue] for the exact filter. Render
// does not mutate m, so rendering the same unmodified Message twice yields
// identical output.
func (m *Message) Render() Payload {
	r := rendererForVersion(m.version)

	fields := []Field{
		{Key: "version", Value: m.version},
		{Key: "host", Value: m.host},
		{Key: "host_name", Value: m.serviceHost},
		{Key: "short_message", Value: m.shortMessage},
		{Key: "full_message", Value: m.fullMessage},
		{Key: "level", Value: int(m.level)},
		{Key: "timestamp", Value: m.timestamp},
		{Key: "time", Value: formatEpoch(m.timestamp)},
		{Key: "facility", Value: m.facility},
		{Key: "file", Value: m.file},
		{Key: "line", Value: m.line},
	}

	out := make(Payload, 0, len(fields)+len(m.additionals))
	for _, f := range fields {
		if !keepValue(f.Value) {
			continue
		}
		out = append(out, Field{Key: r.fieldKey(f.Key), Value: f.Value})
	}
	for _, f := range m.additionals {
		if !keepValue(f.Value) {
			continue
		}
		out = append(out, Field{Key: "_" + f.Key, Value: f.Value})
	}
	return out
}

// formatEpoch renders fractional epoch seconds with the display layout in
// local time, second precision.
func formatEpoch(epoch float64) string {
	return time.Unix(int64(epoch), 0).Format(timeLayout)
}

// keepValue is the empty-value filter applied to every rendered entry.
//
// The contract is deliberately asymmetric: booleans and every integer kind
// survive regardless of value (`false` and `0` are meaningful in a log
// field), while empty strings, nils, zero floats, and empty containers are
// dropped.
func keepValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case Severity:
		return true
	case float64:
		return val != 0
	case float32:
		return val != 0
	case string:
		return val != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
