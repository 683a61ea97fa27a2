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
	"testing"
)

// TestLoadEnvConfigDefaults checks the package defaults with a clean
// environment.
func TestLoadEnvConfigDefaults(t *testing.T) {
	for _, key := range []string{envVersion, envSystemName, envMaxLength, envExtraPrefix, envContextPrefix, envLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := loadEnvConfig()
	if cfg.version != Version1_0 {
		t.Errorf("version = %q, want %q", cfg.version, Version1_0)
	}
	if cfg.maxLength != defaultMaxLength {
		t.Errorf("maxLength = %d, want %d", cfg.maxLength, defaultMaxLength)
	}
	if cfg.contextPrefix != defaultContextPrefix {
		t.Errorf("contextPrefix = %q, want %q", cfg.contextPrefix, defaultContextPrefix)
	}
	if cfg.systemName == "" {
		t.Log("systemName empty; hostname not resolvable in this environment")
	}
}

// TestLoadEnvConfigOverrides checks each GELF_* variable is honored.
func TestLoadEnvConfigOverrides(t *testing.T) {
	t.Setenv(envVersion, "1.1")
	t.Setenv(envSystemName, "env-host")
	t.Setenv(envMaxLength, "1024")
	t.Setenv(envExtraPrefix, "e_")
	t.Setenv(envContextPrefix, "c_")
	t.Setenv(envLogLevel, "notice")

	cfg := loadEnvConfig()
	if cfg.version != Version1_1 {
		t.Errorf("version = %q, want %q", cfg.version, Version1_1)
	}
	if cfg.systemName != "env-host" {
		t.Errorf("systemName = %q, want %q", cfg.systemName, "env-host")
	}
	if cfg.maxLength != 1024 {
		t.Errorf("maxLength = %d, want 1024", cfg.maxLength)
	}
	if cfg.extraPrefix != "e_" {
		t.Errorf("extraPrefix = %q, want %q", cfg.extraPrefix, "e_")
	}
	if cfg.contextPrefix != "c_" {
		t.Errorf("contextPrefix = %q, want %q", cfg.contextPrefix, "c_")
	}
	if cfg.leveler.Level() != LevelNotice.Level() {
		t.Errorf("leveler = %v, want notice", cfg.leveler.Level())
	}
}

// TestLoadEnvConfigInvalidValues checks invalid numeric and level inputs
// fall back to defaults instead of failing.
func TestLoadEnvConfigInvalidValues(t *testing.T) {
	t.Setenv(envMaxLength, "not-a-number")
	t.Setenv(envLogLevel, "shouting")

	cfg := loadEnvConfig()
	if cfg.maxLength != defaultMaxLength {
		t.Errorf("maxLength = %d, want default %d", cfg.maxLength, defaultMaxLength)
	}
	if cfg.leveler.Level() != defaultMinLevel {
		t.Errorf("leveler = %v, want default %v", cfg.leveler.Level(), defaultMinLevel)
	}
}

// TestOptionsOverrideEnvironment checks functional options take precedence
// over environment variables, including explicit zero values.
func TestOptionsOverrideEnvironment(t *testing.T) {
	t.Setenv(envVersion, "1.0")
	t.Setenv(envContextPrefix, "env_")
	t.Setenv(envMaxLength, "100")

	cfg := applyOptions(
		WithVersion(Version1_1),
		WithContextPrefix(""),
		WithMaxLength(2048),
		WithSystemName("opt-host"),
		WithChannel("worker"),
		WithLevel(slog.LevelDebug),
	)
	if cfg.version != Version1_1 {
		t.Errorf("version = %q, want %q", cfg.version, Version1_1)
	}
	if cfg.contextPrefix != "" {
		t.Errorf("contextPrefix = %q, want explicit empty string", cfg.contextPrefix)
	}
	if cfg.maxLength != 2048 {
		t.Errorf("maxLength = %d, want 2048", cfg.maxLength)
	}
	if cfg.systemName != "opt-host" {
		t.Errorf("systemName = %q, want %q", cfg.systemName, "opt-host")
	}
	if cfg.channel != "worker" {
		t.Errorf("channel = %q, want %q", cfg.channel, "worker")
	}
	if cfg.leveler.Level() != slog.LevelDebug {
		t.Errorf("leveler = %v, want %v", cfg.leveler.Level(), slog.LevelDebug)
	}
}

// TestParseLevel covers both slog and syslog spellings.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"notice", LevelNotice, true},
		{"warn", LevelWarn, true},
		{"Warning", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"alert", LevelAlert, true},
		{"emergency", LevelEmergency, true},
		{" info ", LevelInfo, true},
		{"loud", LevelInfo, false},
	}
	for _, tc := range testCases {
		got, ok := parseLevel(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseLevel(%q) = (%v, %t), want (%v, %t)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
