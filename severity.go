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
	"fmt"
	"strconv"
	"strings"
)

// Severity is a syslog severity ordinal as carried in the GELF `level`
// field. Lower values are more severe: 0 is Emergency, 7 is Debug.
type Severity int

// Syslog severity levels in GELF numeric form.
const (
	SeverityEmergency Severity = 0
	SeverityAlert     Severity = 1
	SeverityCritical  Severity = 2
	SeverityError     Severity = 3
	SeverityWarning   Severity = 4
	SeverityNotice    Severity = 5
	SeverityInfo      Severity = 6
	SeverityDebug     Severity = 7
)

// severityNames maps each ordinal to its canonical lowercase name. The
// mapping is fixed and total over [SeverityEmergency, SeverityDebug].
var severityNames = [...]string{
	SeverityEmergency: "emergency",
	SeverityAlert:     "alert",
	SeverityCritical:  "critical",
	SeverityError:     "error",
	SeverityWarning:   "warning",
	SeverityNotice:    "notice",
	SeverityInfo:      "info",
	SeverityDebug:     "debug",
}

// Valid reports whether s lies in the closed syslog range [0,7].
func (s Severity) Valid() bool {
	return s >= SeverityEmergency && s <= SeverityDebug
}

// String returns the canonical lowercase name of s, or a diagnostic
// placeholder for out-of-range values.
func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("invalid(%d)", int(s))
	}
	return severityNames[s]
}

// ToNumeric converts level to its numeric syslog form.
//
// Numeric input (any integer or float kind, or a numeric string) is
// truncated to an integer and accepted when it lies in [0,7]. Textual input
// is matched case-insensitively against the eight canonical names. Any other
// value fails with [InvalidSeverityError].
//
// ToNumeric and [ToTextual] are exact inverses over the eight-element
// domain.
func ToNumeric(level any) (Severity, error) {
	if n, ok := numericSeverity(level); ok {
		if !n.Valid() {
			return 0, &InvalidSeverityError{Level: level}
		}
		return n, nil
	}
	if name, ok := level.(string); ok {
		for i, canonical := range severityNames {
			if strings.EqualFold(name, canonical) {
				return Severity(i), nil
			}
		}
	}
	return 0, &InvalidSeverityError{Level: level}
}

// ToTextual converts level to its canonical lowercase name, applying the
// same acceptance rules as [ToNumeric].
func ToTextual(level any) (string, error) {
	n, err := ToNumeric(level)
	if err != nil {
		return "", err
	}
	return severityNames[n], nil
}

// numericSeverity extracts an integer severity candidate from the numeric
// kinds a loosely-typed record can carry, truncating fractional input.
// Numeric strings are accepted because upstream producers routinely send
// levels as quoted digits.
func numericSeverity(level any) (Severity, bool) {
	switch v := level.(type) {
	case Severity:
		return v, true
	case int:
		return Severity(v), true
	case int8:
		return Severity(v), true
	case int16:
		return Severity(v), true
	case int32:
		return Severity(v), true
	case int64:
		return Severity(v), true
	case uint:
		return Severity(v), true
	case uint8:
		return Severity(v), true
	case uint16:
		return Severity(v), true
	case uint32:
		return Severity(v), true
	case uint64:
		return Severity(v), true
	case float32:
		return Severity(v), true
	case float64:
		return Severity(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return Severity(f), true
		}
	}
	return 0, false
}
