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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultTemplateGlob matches the templates a serverless package step leaves
// behind.
const DefaultTemplateGlob = ".serverless/cloudformation-template-*.json"

// 🔍 Glob expands template patterns relative to the base directory.
//
// Patterns may use doublestar syntax ("**"). A pattern without glob
// metacharacters names one file, which must exist. Results are unique and
// sorted; backup files are skipped.
func (m *Manager) Glob(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultTemplateGlob}
	}

	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		full := m.resolve(pattern)

		if !hasMeta(pattern) {
			info, err := os.Stat(full)
			if err != nil {
				return nil, errors.Errorf("template %s: %w", pattern, err)
			}
			if info.IsDir() {
				return nil, errors.Errorf("template %s is a directory", pattern)
			}
			if _, ok := seen[full]; !ok {
				seen[full] = struct{}{}
				out = append(out, full)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", pattern, err)
		}

		for _, match := range matches {
			if strings.HasSuffix(match, ".bak") {
				continue
			}
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			out = append(out, match)
		}
	}

	sort.Strings(out)

	m.logger.Debug().
		Strs("patterns", patterns).
		Int("matches", len(out)).
		Msg("expanded template patterns")

	return out, nil
}

// Rel returns path relative to the base directory when possible
func (m *Manager) Rel(path string) string {
	rel, err := filepath.Rel(m.baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{\`)
}
