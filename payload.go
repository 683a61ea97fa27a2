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
	"bytes"
	"encoding/json"
)

// Field is one key/value pair of the rendered GELF wire mapping.
type Field struct {
	Key   string
	Value any
}

// Payload is the ordered, wire-ready mapping produced by [Message.Render].
// Unlike a Go map it preserves insertion order, so the standard fields come
// first and additional fields follow in the order they were set.
type Payload []Field

// Get returns the value stored under key and whether the key is present.
func (p Payload) Get(key string) (any, bool) {
	for _, f := range p {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON renders the payload as a flat JSON object whose keys appear in
// payload order. Values are serialized with HTML escaping disabled, matching
// the package's line encoder.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(f.Key); err != nil {
			return nil, err
		}
		trimTrailingNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(f.Value); err != nil {
			return nil, err
		}
		trimTrailingNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimTrailingNewline drops the newline json.Encoder appends after every
// Encode call.
func trimTrailingNewline(buf *bytes.Buffer) {
	b := buf.Bytes()
	if n := len(b); n > 0 && b[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
