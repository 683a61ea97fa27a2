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

// Option configures a [Formatter] or [Handler] during construction. Options
// are applied sequentially, allowing later options to override earlier ones
// or settings derived from environment variables.
type Option func(*options)

// options holds the configurable settings. Fields are pointers so an
// explicitly set zero value can be told apart from an unset option, which
// falls back to environment variables and then package defaults.
type options struct {
	systemName    *string
	extraPrefix   *string
	contextPrefix *string
	maxLength     *int
	version       *string
	channel       *string
	leveler       slog.Leveler
}

// WithSystemName returns an Option that sets the identifier used as the
// GELF `host` field. This overrides the GELF_SYSTEM_NAME environment
// variable and the default local hostname.
func WithSystemName(name string) Option {
	return func(o *options) {
		n := name
		o.systemName = &n
	}
}

// WithExtraPrefix returns an Option that sets the string prepended to
// extra-field additional keys. This overrides the GELF_EXTRA_PREFIX
// environment variable. The default is no prefix.
func WithExtraPrefix(prefix string) Option {
	return func(o *options) {
		p := prefix
		o.extraPrefix = &p
	}
}

// WithContextPrefix returns an Option that sets the string prepended to
// context-field additional keys. This overrides the GELF_CONTEXT_PREFIX
// environment variable and the default "ctxt_".
func WithContextPrefix(prefix string) Option {
	return func(o *options) {
		p := prefix
		o.contextPrefix = &p
	}
}

// WithMaxLength returns an Option that sets the maximum byte length applied
// to the full message and to each additional field. This overrides the
// GELF_MAX_LENGTH environment variable and the default of 32766.
func WithMaxLength(n int) Option {
	return func(o *options) {
		l := n
		o.maxLength = &l
	}
}

// WithVersion returns an Option that sets the GELF protocol version
// ([Version1_0] or [Version1_1]). This overrides the GELF_VERSION
// environment variable and the default of [Version1_0].
func WithVersion(version string) Option {
	return func(o *options) {
		v := version
		o.version = &v
	}
}

// WithChannel returns an Option that sets a fixed channel for records the
// [Handler] produces, rendered as the GELF facility. Individual records can
// still override it with a "channel" attribute.
func WithChannel(channel string) Option {
	return func(o *options) {
		c := channel
		o.channel = &c
	}
}

// WithLevel returns an Option that sets the minimum level the [Handler]
// emits. This overrides the LOG_LEVEL environment variable. Accepts
// [slog.Level] constants or the extended [Level] constants such as
// [LevelNotice]. The [Formatter] ignores it; formatting has no threshold.
func WithLevel(leveler slog.Leveler) Option {
	return func(o *options) {
		o.leveler = leveler
	}
}

// applyOptions folds opts over the environment-derived configuration.
func applyOptions(opts ...Option) config {
	cfg := loadEnvConfig()
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.systemName != nil {
		cfg.systemName = *o.systemName
	}
	if o.extraPrefix != nil {
		cfg.extraPrefix = *o.extraPrefix
	}
	if o.contextPrefix != nil {
		cfg.contextPrefix = *o.contextPrefix
	}
	if o.maxLength != nil {
		cfg.maxLength = *o.maxLength
	}
	if o.version != nil {
		cfg.version = *o.version
	}
	if o.channel != nil {
		cfg.channel = *o.channel
	}
	if o.leveler != nil {
		cfg.leveler = o.leveler
	}
	return cfg
}
