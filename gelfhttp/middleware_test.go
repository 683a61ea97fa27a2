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

package gelfhttp_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gelf "github.com/mdoviedor/gelf-formatter"
	"github.com/mdoviedor/gelf-formatter/gelfhttp"
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

// TestMiddlewareLogsCompletion verifies the request completion record and
// the host_name injection from the request Host header.
func TestMiddlewareLogsCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf, gelf.WithSystemName("t"), gelf.WithChannel("web")))

	var handlerHost string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerHost = gelf.ServiceHost(r.Context())
		w.WriteHeader(http.StatusTeapot)
		if _, err := w.Write([]byte("short and stout")); err != nil {
			t.Errorf("Write() returned %v, want nil", err)
		}
	})

	h := gelfhttp.Middleware(gelfhttp.WithLogger(logger), gelfhttp.WithOTel(false))(next)

	req := httptest.NewRequest(http.MethodGet, "http://pot.example.com/brew", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if handlerHost != "pot.example.com" {
		t.Errorf("ServiceHost(ctx) in handler = %q, want %q", handlerHost, "pot.example.com")
	}

	entries := decodeLogBuffer(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("decodeLogBuffer() returned %d entries, want 1", len(entries))
	}
	entry := entries[0]

	if got := entry["host_name"]; got != "pot.example.com" {
		t.Errorf("host_name = %v, want %q", got, "pot.example.com")
	}
	if got := entry["_ctxt_http_method"]; got != http.MethodGet {
		t.Errorf("_ctxt_http_method = %v, want %q", got, http.MethodGet)
	}
	if got := entry["_ctxt_http_path"]; got != "/brew" {
		t.Errorf("_ctxt_http_path = %v, want %q", got, "/brew")
	}
	if got := entry["_ctxt_http_status"]; got != float64(http.StatusTeapot) {
		t.Errorf("_ctxt_http_status = %v, want %d", got, http.StatusTeapot)
	}
	if got := entry["_ctxt_http_response_bytes"]; got != float64(len("short and stout")) {
		t.Errorf("_ctxt_http_response_bytes = %v, want %d", got, len("short and stout"))
	}
	// 418 is a client error; the completion record logs at warning.
	if got := entry["level"]; got != float64(4) {
		t.Errorf("level = %v, want 4", got)
	}
	if got := entry["facility"]; got != "web" {
		t.Errorf("facility = %v, want %q", got, "web")
	}
}

// TestMiddlewareStatusLevels pins the status-to-level mapping.
func TestMiddlewareStatusLevels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
		want   float64
	}{
		{"OKIsInfo", http.StatusOK, 6},
		{"NotFoundIsWarning", http.StatusNotFound, 4},
		{"InternalIsError", http.StatusInternalServerError, 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(gelf.NewHandler(&buf))
			h := gelfhttp.Middleware(gelfhttp.WithLogger(logger), gelfhttp.WithOTel(false))(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
				}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			entries := decodeLogBuffer(t, &buf)
			if len(entries) != 1 {
				t.Fatalf("decodeLogBuffer() returned %d entries, want 1", len(entries))
			}
			if got := entries[0]["level"]; got != tc.want {
				t.Errorf("level = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestMiddlewareNilNext checks the middleware tolerates a nil next handler.
func TestMiddlewareNilNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(gelf.NewHandler(&buf))
	h := gelfhttp.Middleware(gelfhttp.WithLogger(logger), gelfhttp.WithOTel(false))(nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
