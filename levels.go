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

import "log/slog"

// Level extends [slog.Level] with the syslog severities slog has no native
// constant for, so callers can log at Notice, Critical, Alert, or Emergency
// through the standard slog API. It maintains the underlying integer
// representation compatible with slog.Level.
type Level slog.Level

// Constants for the full syslog scale, mapped onto slog.Level integer
// values. The values keep slog's ordering and spacing so standard levels
// keep their meaning.
const (
	// LevelDebug maps to syslog Debug (7). Standard slog level.
	LevelDebug Level = Level(slog.LevelDebug) // -4

	// LevelInfo maps to syslog Informational (6). Standard slog level.
	LevelInfo Level = Level(slog.LevelInfo) // 0

	// LevelNotice maps to syslog Notice (5). Between Info and Warn.
	LevelNotice Level = 2

	// LevelWarn maps to syslog Warning (4). Standard slog level.
	LevelWarn Level = Level(slog.LevelWarn) // 4

	// LevelError maps to syslog Error (3). Standard slog level.
	LevelError Level = Level(slog.LevelError) // 8

	// LevelCritical maps to syslog Critical (2). Above Error.
	LevelCritical Level = 12

	// LevelAlert maps to syslog Alert (1). Above Critical.
	LevelAlert Level = 16

	// LevelEmergency maps to syslog Emergency (0). Highest severity.
	LevelEmergency Level = 20
)

// Severity converts the slog-space level to its syslog severity ordinal.
// Levels between two constants map to the severity of the next constant at
// or above them, so for example slog.LevelWarn+1 still reports as Error
// territory only once it reaches slog.LevelError.
func (l Level) Severity() Severity {
	level := slog.Level(l)
	switch {
	case level <= slog.LevelDebug:
		return SeverityDebug
	case level <= slog.LevelInfo:
		return SeverityInfo
	case level <= slog.Level(LevelNotice):
		return SeverityNotice
	case level <= slog.LevelWarn:
		return SeverityWarning
	case level <= slog.LevelError:
		return SeverityError
	case level <= slog.Level(LevelCritical):
		return SeverityCritical
	case level <= slog.Level(LevelAlert):
		return SeverityAlert
	default:
		return SeverityEmergency
	}
}

// String returns the canonical lowercase syslog name of the severity the
// level maps to.
func (l Level) String() string {
	return l.Severity().String()
}

// Level returns the underlying slog.Level value. This method allows
// gelf.Level to satisfy the [slog.Leveler] interface, enabling its use in
// [slog.HandlerOptions.Level] and the standard slog.Logger methods.
func (l Level) Level() slog.Level {
	return slog.Level(l)
}
