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

// Package gelfgrpc provides unary gRPC interceptors that log RPC completion
// as GELF records through a [log/slog] logger backed by the gelf handler.
//
// [UnaryServerInterceptor] extracts inbound trace context from gRPC metadata
// so emitted records correlate with the active trace, stores the call's
// authority in the context for the formatter's `host_name` field, and logs
// the finished call with its service, method, peer address, status code, and
// duration. [UnaryClientInterceptor] logs outbound calls the same way. The
// severity of the completion record follows a status-code mapping that
// treats client-side misuse as warnings and server-side failures as errors;
// override it with [WithLevels].
//
// The package produces log records only; it ships nothing to a collector.
package gelfgrpc
