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
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 50 // Base width for template path
	statusWidth = 12 // Width for status text
)

// 🖍️ ColumnFileFormatter renders aligned, colored columns for terminals
type ColumnFileFormatter struct {
	DefaultFileFormatter
}

// NewColumnFileFormatter creates a new ColumnFileFormatter
func NewColumnFileFormatter() *ColumnFileFormatter {
	return &ColumnFileFormatter{}
}

// 🎯 FormatFileOperation formats a template status as one aligned row
func (f *ColumnFileFormatter) FormatFileOperation(path string, status FileStatus, replacements int, dryRun bool) string {
	var prefix string
	switch {
	case status == StatusModified && dryRun:
		prefix = color.YellowString("~")
	case status == StatusModified:
		prefix = color.BlueString("⟳")
	case status == StatusRestored:
		prefix = color.GreenString("⏪")
	case status == StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	statusText := status.String()
	if dryRun && status == StatusModified {
		statusText = "would modify"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, path),
		fmt.Sprintf("%-*s", statusWidth, statusText),
		plural(replacements),
	)
}
