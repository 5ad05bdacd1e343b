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

package status

import (
	"fmt"
)

// 🎨 FileFormatter formats status messages
type FileFormatter interface {
	// FormatFileOperation formats the outcome of one template
	FormatFileOperation(path string, status FileStatus, replacements int, dryRun bool) string
	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a template status message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(path string, status FileStatus, replacements int, dryRun bool) string {
	switch status {
	case StatusModified:
		if dryRun {
			return fmt.Sprintf("🔍 Would modify %s (%s)", path, plural(replacements))
		}
		return fmt.Sprintf("📝 Modified %s (%s)", path, plural(replacements))
	case StatusRestored:
		return fmt.Sprintf("⏪ Restored %s", path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", path)
	}
}

// FormatProgress reports processed templates out of total. A run with no
// templates counts as done.
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	pct := 100
	if total > 0 && current < total {
		pct = current * 100 / total
	}

	symbol := "⏳"
	if current >= total {
		symbol = "✅"
	}
	return fmt.Sprintf("%s %d/%d templates (%d%%)", symbol, current, total, pct)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ %v", err)
}

func plural(n int) string {
	if n == 1 {
		return "1 replacement"
	}
	return fmt.Sprintf("%d replacements", n)
}
