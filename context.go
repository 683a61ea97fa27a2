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

import "context"

type contextKey int

const (
	serviceHostContextKey contextKey = iota
)

// ContextWithServiceHost returns a child context that stores host, normally
// the Host header of the request being served, so rendering can fill the
// `host_name` side field later in the call chain. The gelfhttp middleware
// calls this for every inbound request.
func ContextWithServiceHost(ctx context.Context, host string) context.Context {
	if ctx == nil || host == "" {
		return ctx
	}
	return context.WithValue(ctx, serviceHostContextKey, host)
}

// ServiceHost retrieves a host stored in ctx via [ContextWithServiceHost].
// It returns [FallbackServiceHost] when ctx carries none, so callers always
// receive a usable identifier.
func ServiceHost(ctx context.Context) string {
	if ctx == nil {
		return FallbackServiceHost
	}
	if host, ok := ctx.Value(serviceHostContextKey).(string); ok && host != "" {
		return host
	}
	return FallbackServiceHost
}

// FallbackServiceHost is the `host_name` value used when no serving context
// supplied one, for example in batch jobs and CLI tools.
const FallbackServiceHost = "unknown"
