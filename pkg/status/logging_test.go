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

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColumnFileFormatter(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name         string
		status       FileStatus
		replacements int
		dryRun       bool
		want         string
	}{
		{
			name:         "modified",
			status:       StatusModified,
			replacements: 3,
			dryRun:       false,
			want:         "    ⟳ template.json                                      modified     3 replacements",
		},
		{
			name:         "dry_run",
			status:       StatusModified,
			replacements: 1,
			dryRun:       true,
			want:         "    ~ template.json                                      would modify 1 replacement",
		},
		{
			name:         "unchanged",
			status:       StatusUnchanged,
			replacements: 0,
			dryRun:       false,
			want:         "    - template.json                                      unchanged    0 replacements",
		},
		{
			name:         "failed",
			status:       StatusFailed,
			replacements: 0,
			dryRun:       false,
			want:         "    ✗ template.json                                      failed       0 replacements",
		},
		{
			name:         "restored",
			status:       StatusRestored,
			replacements: 0,
			dryRun:       false,
			want:         "    ⏪ template.json                                      restored     0 replacements",
		},
	}

	formatter := NewColumnFileFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatFileOperation("template.json", tt.status, tt.replacements, tt.dryRun)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnFileFormatter_InheritsProgress(t *testing.T) {
	var formatter FileFormatter = NewColumnFileFormatter()
	assert.Equal(t, "⏳ 1/2 templates (50%)", formatter.FormatProgress(1, 2))
}
