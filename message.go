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
	"os"
	"time"
)

// GELF protocol versions recognized by the renderer. Version1_1 moved the
// top-level `facility`, `file`, and `line` keys into underscore-prefixed
// additional fields.
const (
	Version1_0 = "1.0"
	Version1_1 = "1.1"
)

// Message holds the fields of one log entry and renders them into the
// wire-ready ordered mapping. A Message is built fresh per record, populated
// through its setters, consumed once by [Message.Render], and discarded; it
// must not be shared across concurrent callers.
type Message struct {
	version      string
	host         string
	serviceHost  string
	shortMessage string
	fullMessage  string
	timestamp    float64
	level        Severity
	facility     string
	file         string
	line         any

	additionals []Field
	addIndex    map[string]int
}

// NewMessage returns a Message with protocol version "1.0", the local
// hostname as host, the current time as timestamp, and level
// [SeverityAlert].
func NewMessage() *Message {
	host, _ := os.Hostname()
	return &Message{
		version:     Version1_0,
		host:        host,
		serviceHost: FallbackServiceHost,
		timestamp:   epochSeconds(time.Now()),
		level:       SeverityAlert,
	}
}

// SetVersion sets the GELF protocol version string. Values other than
// [Version1_0] and [Version1_1] render like 1.0.
func (m *Message) SetVersion(version string) { m.version = version }

// SetHost sets the GELF host field, the name of the system that produced
// the entry.
func (m *Message) SetHost(host string) { m.host = host }

// SetServiceHost sets the `host_name` side field, normally the Host header
// of the request being served. See [ContextWithServiceHost].
func (m *Message) SetServiceHost(host string) {
	if host == "" {
		host = FallbackServiceHost
	}
	m.serviceHost = host
}

// SetShortMessage sets the one-line human summary.
func (m *Message) SetShortMessage(short string) { m.shortMessage = short }

// SetFullMessage sets the complete message text.
func (m *Message) SetFullMessage(full string) { m.fullMessage = full }

// SetTimestamp stores the entry time as fractional Unix epoch seconds.
// It accepts a [time.Time] or any numeric kind carrying an epoch value;
// anything else leaves the timestamp unchanged.
func (m *Message) SetTimestamp(value any) {
	switch v := value.(type) {
	case time.Time:
		m.timestamp = epochSeconds(v)
	case float64:
		m.timestamp = v
	case float32:
		m.timestamp = float64(v)
	case int:
		m.timestamp = float64(v)
	case int64:
		m.timestamp = float64(v)
	case uint:
		m.timestamp = float64(v)
	case uint64:
		m.timestamp = float64(v)
	}
}

// SetLevel validates and stores the severity. It accepts every input form
// [ToNumeric] accepts and fails with [InvalidSeverityError] otherwise,
// in which case the stored level is unchanged; an invalid value is never
// stored.
func (m *Message) SetLevel(level any) error {
	n, err := ToNumeric(level)
	if err != nil {
		return err
	}
	m.level = n
	return nil
}

// SetFacility sets the subsystem or channel that produced the entry.
func (m *Message) SetFacility(facility string) { m.facility = facility }

// SetFile sets the source file the entry originated from.
func (m *Message) SetFile(file string) { m.file = file }

// SetLine sets the source line the entry originated from.
func (m *Message) SetLine(line any) { m.line = line }

// SetAdditional inserts or overwrites an additional field. Insertion order
// is preserved across overwrites. An empty key is silently ignored.
func (m *Message) SetAdditional(key string, value any) {
	if key == "" {
		return
	}
	if i, ok := m.addIndex[key]; ok {
		m.additionals[i].Value = value
		return
	}
	if m.addIndex == nil {
		m.addIndex = make(map[string]int, 4)
	}
	m.addIndex[key] = len(m.additionals)
	m.additionals = append(m.additionals, Field{Key: key, Value: value})
}

// Additional returns the value stored under key, or a
// [MissingAdditionalError] when the key was never set.
func (m *Message) Additional(key string) (any, error) {
	if i, ok := m.addIndex[key]; ok {
		return m.additionals[i].Value, nil
	}
	return nil, &MissingAdditionalError{Key: key}
}

// Additionals returns a copy of the additional fields in insertion order.
func (m *Message) Additionals() []Field {
	out := make([]Field, len(m.additionals))
	copy(out, m.additionals)
	return out
}

// Version returns the protocol version string.
func (m *Message) Version() string { return m.version }

// Host returns the GELF host field.
func (m *Message) Host() string { return m.host }

// ShortMessage returns the one-line summary.
func (m *Message) ShortMessage() string { return m.shortMessage }

// FullMessage returns the complete message text.
func (m *Message) FullMessage() string { return m.fullMessage }

// Timestamp returns the stored fractional epoch seconds.
func (m *Message) Timestamp() float64 { return m.timestamp }

// Level returns the stored severity ordinal.
func (m *Message) Level() Severity { return m.level }

// Facility returns the facility string.
func (m *Message) Facility() string { return m.facility }

// epochSeconds converts t to fractional Unix epoch seconds with microsecond
// precision.
func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond()/1e3)/1e6
}
