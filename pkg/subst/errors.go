// Copyright 2025 walteh LLC
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

package subst

import "fmt"

// ❌ ParseError is returned when the substituted text is no longer a valid
// JSON document. Offset is the byte offset in the substituted text where
// parsing failed.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing substituted template at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ❌ PatternError is returned by New when a rule's effective pattern does not
// compile.
type PatternError struct {
	Index   int    // position of the rule in the rule set
	Pattern string // delimiter + search + delimiter
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("rule %d: compiling pattern /%s/: %v", e.Index, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
