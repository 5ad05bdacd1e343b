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
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestFileOperationFormatting tests template status messages
func TestFileOperationFormatting(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		status       FileStatus
		replacements int
		dryRun       bool
		want         string
	}{
		{
			name:         "modified_file",
			path:         "template.json",
			status:       StatusModified,
			replacements: 3,
			want:         "📝 Modified template.json (3 replacements)",
		},
		{
			name:         "modified_single",
			path:         "template.json",
			status:       StatusModified,
			replacements: 1,
			want:         "📝 Modified template.json (1 replacement)",
		},
		{
			name:         "dry_run",
			path:         "template.json",
			status:       StatusModified,
			replacements: 2,
			dryRun:       true,
			want:         "🔍 Would modify template.json (2 replacements)",
		},
		{
			name:   "unchanged_file",
			path:   "template.json",
			status: StatusUnchanged,
			want:   "👍 Unchanged template.json",
		},
		{
			name:   "failed_file",
			path:   "template.json",
			status: StatusFailed,
			want:   "❌ Failed template.json",
		},
		{
			name:   "restored_file",
			path:   "template.json",
			status: StatusRestored,
			want:   "⏪ Restored template.json",
		},
		{
			name:   "empty_path",
			status: StatusUnchanged,
			want:   "👍 Unchanged ",
		},
	}

	formatter := NewDefaultFileFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatFileOperation(tt.path, tt.status, tt.replacements, tt.dryRun)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 🧪 TestProgressFormatting tests progress message formatting
func TestProgressFormatting(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected string
	}{
		{name: "start", current: 0, total: 4, expected: "⏳ 0/4 templates (0%)"},
		{name: "halfway", current: 2, total: 4, expected: "⏳ 2/4 templates (50%)"},
		{name: "complete", current: 4, total: 4, expected: "✅ 4/4 templates (100%)"},
		{name: "zero_total", current: 0, total: 0, expected: "✅ 0/0 templates (100%)"},
		{name: "overflow", current: 1, total: 0, expected: "✅ 1/0 templates (100%)"},
	}

	formatter := NewDefaultFileFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.FormatProgress(tt.current, tt.total))
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	formatter := NewDefaultFileFormatter()
	assert.Equal(t, "", formatter.FormatError(nil))
	assert.Equal(t, "❌ boom", formatter.FormatError(errors.New("boom")))
}
