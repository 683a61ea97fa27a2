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

// Record is the loosely-typed input one formatting call consumes. It mirrors
// the shape logging frameworks hand to their formatters: a message, a level
// in either numeric or textual form, and free-form context/extra maps.
//
// The formatter does not own a Record and never mutates it beyond local
// copies. Missing Message, Level, or Datetime values are repaired with fixed
// fallbacks rather than rejected.
type Record struct {
	// Message is the complete log text. Empty means missing.
	Message string

	// Level is the record severity in any form [ToNumeric] accepts.
	// Nil means missing.
	Level any

	// Datetime is the record time: a [time.Time] or a numeric epoch value.
	// Nil means missing and is replaced with the current time.
	Datetime any

	// Channel names the subsystem that produced the record and becomes the
	// GELF facility.
	Channel string

	// Context carries per-record metadata. The reserved keys
	// "short_message" and "line" are promoted onto the message itself;
	// every other entry becomes a context-prefixed additional field.
	Context map[string]any

	// Extra carries processor-attached metadata; each entry becomes an
	// extra-prefixed additional field.
	Extra map[string]any
}
