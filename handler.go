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
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// channelAttrKey is the record attribute the Handler routes to the GELF
// facility instead of emitting as a context field. Only a top-level
// (ungrouped) attribute qualifies.
const channelAttrKey = "channel"

// groupedAttr pairs an attribute with the group path that was open when it
// was attached.
type groupedAttr struct {
	groups []string
	attr   slog.Attr
}

// Handler is a [slog.Handler] that renders each record as one GELF JSON
// line on an [io.Writer]. Record attributes become context-prefixed
// additional fields, with group names dot-joined into the key. Writes are
// serialized with a mutex; the writer itself needs no locking of its own.
type Handler struct {
	mu *sync.Mutex

	w         io.Writer
	formatter *Formatter
	leveler   slog.Leveler
	channel   string

	attrs  []groupedAttr
	groups []string
}

// NewHandler returns a Handler writing GELF lines to w, configured from
// GELF_* environment variables and opts.
func NewHandler(w io.Writer, opts ...Option) *Handler {
	cfg := applyOptions(opts...)
	return &Handler{
		mu:        &sync.Mutex{},
		w:         w,
		formatter: &Formatter{cfg: cfg},
		leveler:   cfg.leveler,
		channel:   cfg.channel,
	}
}

// Enabled reports whether level is at or above the handler's minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := defaultMinLevel
	if h.leveler != nil {
		min = h.leveler.Level()
	}
	return level >= min
}

// Handle converts r into a formatter [Record] and writes the resulting GELF
// line. The slog level maps onto the syslog scale via [Level.Severity], so
// levels the mapper would reject can never reach the formatter.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	rec := Record{
		Message: r.Message,
		Level:   Level(r.Level).Severity(),
		Channel: h.channel,
		Context: make(map[string]any, r.NumAttrs()+len(h.attrs)),
	}
	if !r.Time.IsZero() {
		rec.Datetime = r.Time
	}

	for _, ga := range h.attrs {
		h.addAttr(&rec, ga.groups, ga.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.addAttr(&rec, h.groups, a)
		return true
	})

	line, err := h.formatter.Format(ctx, rec)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = io.WriteString(h.w, line)
	return err
}

// addAttr folds one attribute into the record's context map. A top-level
// "channel" string attribute overrides the configured channel; everything
// else becomes a context entry keyed by the dot-joined group path.
func (h *Handler) addAttr(rec *Record, groups []string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	v := a.Value.Resolve()
	if len(groups) == 0 && a.Key == channelAttrKey && v.Kind() == slog.KindString {
		rec.Channel = v.String()
		return
	}
	if v.Kind() == slog.KindGroup {
		inner := groups
		if a.Key != "" {
			inner = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range v.Group() {
			h.addAttr(rec, inner, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	rec.Context[key] = resolveAttrValue(v)
}

// WithAttrs returns a copy of the handler whose future records carry attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	groups := append([]string(nil), h.groups...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, groupedAttr{groups: groups, attr: a})
	}
	return clone
}

// WithGroup returns a copy of the handler that nests future attribute keys
// under name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(append([]string(nil), h.groups...), name)
	return clone
}

// clone copies the handler, sharing the writer, mutex, and formatter.
func (h *Handler) clone() *Handler {
	return &Handler{
		mu:        h.mu,
		w:         h.w,
		formatter: h.formatter,
		leveler:   h.leveler,
		channel:   h.channel,
		attrs:     append([]groupedAttr(nil), h.attrs...),
		groups:    append([]string(nil), h.groups...),
	}
}
