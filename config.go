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
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variable names used for configuration. Each one supplies the
// default for the matching functional option so the same binary can run in
// different environments without code changes.
const (
	envVersion       = "GELF_VERSION"        // GELF protocol version ("1.0" or "1.1")
	envSystemName    = "GELF_SYSTEM_NAME"    // Identifier for the GELF host field
	envMaxLength     = "GELF_MAX_LENGTH"     // Per-field byte budget
	envExtraPrefix   = "GELF_EXTRA_PREFIX"   // Prefix for extra-field additional keys
	envContextPrefix = "GELF_CONTEXT_PREFIX" // Prefix for context-field additional keys
	envLogLevel      = "LOG_LEVEL"           // Minimum level for the slog handler
)

// Default values used when environment variables are missing or invalid.
const (
	defaultVersion       = Version1_0
	defaultContextPrefix = "ctxt_"
	defaultExtraPrefix   = ""
	defaultMaxLength     = 32766
	defaultMinLevel      = slog.LevelInfo
)

// config holds the resolved construction-time settings of a [Formatter] or
// [Handler]. It is immutable after construction, which is what makes the
// formatter safe to share across goroutines.
type config struct {
	systemName    string
	extraPrefix   string
	contextPrefix string
	maxLength     int
	version       string
	channel       string
	leveler       slog.Leveler
}

// loadEnvConfig resolves configuration from the environment, falling back to
// package defaults. The system name falls back to the local hostname.
func loadEnvConfig() config {
	cfg := config{
		systemName:    os.Getenv(envSystemName),
		extraPrefix:   defaultExtraPrefix,
		contextPrefix: defaultContextPrefix,
		maxLength:     defaultMaxLength,
		version:       defaultVersion,
	}

	if cfg.systemName == "" {
		cfg.systemName, _ = os.Hostname()
	}
	if v, ok := os.LookupEnv(envExtraPrefix); ok {
		cfg.extraPrefix = v
	}
	if v, ok := os.LookupEnv(envContextPrefix); ok {
		cfg.contextPrefix = v
	}
	if v := os.Getenv(envVersion); v != "" {
		cfg.version = v
	}
	if v := os.Getenv(envMaxLength); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.maxLength = n
		}
	}
	cfg.leveler = defaultMinLevel
	if v := os.Getenv(envLogLevel); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.leveler = lvl
		}
	}
	return cfg
}

// parseLevel maps a level name from the environment onto the slog-space
// [Level] constants. Both slog spellings ("warn") and syslog spellings
// ("warning", "emergency") are accepted, case-insensitively.
func parseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "notice":
		return LevelNotice, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "critical":
		return LevelCritical, true
	case "alert":
		return LevelAlert, true
	case "emergency":
		return LevelEmergency, true
	}
	return LevelInfo, false
}
