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

import "fmt"

// InvalidSeverityError reports a severity value that maps to neither a
// numeric syslog level in [0,7] nor one of the eight canonical textual names.
// It aborts formatting of the offending record; it is never substituted
// silently.
type InvalidSeverityError struct {
	// Level is the offending input exactly as it was supplied.
	Level any
}

// Error implements the error interface, naming the rejected input.
func (e *InvalidSeverityError) Error() string {
	return fmt.Sprintf("gelf: invalid severity level %v", e.Level)
}

// MissingAdditionalError reports a lookup of an additional field key that was
// never set on a [Message]. It is returned only by [Message.Additional]; the
// formatter's write path never produces it.
type MissingAdditionalError struct {
	// Key is the additional field key that was requested.
	Key string
}

// Error implements the error interface.
func (e *MissingAdditionalError) Error() string {
	return fmt.Sprintf("gelf: additional key %q is not set", e.Key)
}
