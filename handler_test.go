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

package gelf_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	gelf "github.com/mdoviedor/gelf-formatter"
)

// decodeLogBuffer decodes each GELF line in buf into a map.
func decodeLogBuffer(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("Unmarshal(%q) returned %v, want nil", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

// TestHandlerLevelsMapToSyslog ensures native slog levels and the extended
// gelf levels serialize with the expected numeric severity.
func TestHandlerLevelsMapToSyslog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf, gelf.WithLevel(slog.LevelDebug), gelf.WithSystemName("t")))
	ctx := context.Background()

	testCases := []struct {
		log     func()
		wantMsg string
		wantLvl float64
	}{
		{log: func() { logger.Debug("native-debug") }, wantMsg: "native-debug", wantLvl: 7},
		{log: func() { logger.Info("native-info") }, wantMsg: "native-info", wantLvl: 6},
		{log: func() { logger.Log(ctx, gelf.LevelNotice.Level(), "notice") }, wantMsg: "notice", wantLvl: 5},
		{log: func() { logger.Warn("native-warn") }, wantMsg: "native-warn", wantLvl: 4},
		{log: func() { logger.Error("native-error") }, wantMsg: "native-error", wantLvl: 3},
		{log: func() { logger.Log(ctx, gelf.LevelCritical.Level(), "critical") }, wantMsg: "critical", wantLvl: 2},
		{log: func() { logger.Log(ctx, gelf.LevelAlert.Level(), "alert") }, wantMsg: "alert", wantLvl: 1},
		{log: func() { logger.Log(ctx, gelf.LevelEmergency.Level(), "emergency") }, wantMsg: "emergency", wantLvl: 0},
	}
	for _, tc := range testCases {
		tc.log()
	}

	entries := decodeLogBuffer(t, &buf)
	if len(entries) != len(testCases) {
		t.Fatalf("decodeLogBuffer() returned %d entries, want %d", len(entries), len(testCases))
	}
	for i, tc := range testCases {
		if got := entries[i]["full_message"]; got != tc.wantMsg {
			t.Errorf("entry %d full_message = %v, want %q", i, got, tc.wantMsg)
		}
		if got := entries[i]["level"]; got != tc.wantLvl {
			t.Errorf("entry %d level = %v, want %v", i, got, tc.wantLvl)
		}
	}
}

// TestHandlerEnabled checks the minimum-level threshold.
func TestHandlerEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf, gelf.WithLevel(slog.LevelWarn)))

	logger.Info("suppressed")
	logger.Warn("emitted")

	entries := decodeLogBuffer(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("decodeLogBuffer() returned %d entries, want 1", len(entries))
	}
	if got := entries[0]["full_message"]; got != "emitted" {
		t.Errorf("full_message = %v, want %q", got, "emitted")
	}
}

// TestHandlerAttrsBecomeContextFields verifies attribute conversion, group
// nesting, and the channel attribute routing to the facility.
func TestHandlerAttrsBecomeContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf, gelf.WithSystemName("t"), gelf.WithContextPrefix("ctxt_")))

	logger.With(slog.String("region", "eu")).WithGroup("db").Info("query done",
		slog.Int("rows", 0),
		slog.Bool("cached", false),
	)
	logger.Info("routed", slog.String("channel", "jobs"))

	entries := decodeLogBuffer(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("decodeLogBuffer() returned %d entries, want 2", len(entries))
	}

	first := entries[0]
	if got := first["_ctxt_region"]; got != "eu" {
		t.Errorf("_ctxt_region = %v, want %q", got, "eu")
	}
	if got := first["_ctxt_db.rows"]; got != float64(0) {
		t.Errorf("_ctxt_db.rows = %v, want 0 (zero integers survive the filter)", got)
	}
	if got := first["_ctxt_db.cached"]; got != false {
		t.Errorf("_ctxt_db.cached = %v, want false (booleans survive the filter)", got)
	}

	second := entries[1]
	if got := second["facility"]; got != "jobs" {
		t.Errorf("facility = %v, want %q (channel attribute routed)", got, "jobs")
	}
	if _, ok := second["_ctxt_channel"]; ok {
		t.Error("channel attribute also emitted as context field, want routed only")
	}
}

// TestHandlerConfiguredChannel checks WithChannel supplies the facility for
// every record until an attribute overrides it.
func TestHandlerConfiguredChannel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf, gelf.WithChannel("web")))

	logger.Info("default channel")
	logger.Info("explicit channel", slog.String("channel", "worker"))

	entries := decodeLogBuffer(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("decodeLogBuffer() returned %d entries, want 2", len(entries))
	}
	if got := entries[0]["facility"]; got != "web" {
		t.Errorf("facility = %v, want %q", got, "web")
	}
	if got := entries[1]["facility"]; got != "worker" {
		t.Errorf("facility = %v, want %q", got, "worker")
	}
}

// TestHandlerErrorAttr checks errors carried as attribute values surface as
// their message text.
func TestHandlerErrorAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf))

	logger.Error("failed", slog.Any("err", context.DeadlineExceeded))

	entries := decodeLogBuffer(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("decodeLogBuffer() returned %d entries, want 1", len(entries))
	}
	if got := entries[0]["_ctxt_err"]; got != context.DeadlineExceeded.Error() {
		t.Errorf("_ctxt_err = %v, want %q", got, context.DeadlineExceeded.Error())
	}
}
