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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	files := []string{
		".serverless/cloudformation-template-create-stack.json",
		".serverless/cloudformation-template-update-stack.json",
		".serverless/cloudformation-template-update-stack.json.bak",
		".serverless/serverless-state.json",
		"stacks/api/template.json",
		"stacks/web/nested/template.json",
	}

	tests := []struct {
		name        string
		patterns    []string
		want        []string
		wantErr     bool
		errContains string
	}{
		{
			name: "default_pattern",
			want: []string{
				".serverless/cloudformation-template-create-stack.json",
				".serverless/cloudformation-template-update-stack.json",
			},
		},
		{
			name:     "doublestar",
			patterns: []string{"stacks/**/template.json"},
			want: []string{
				"stacks/api/template.json",
				"stacks/web/nested/template.json",
			},
		},
		{
			name:     "literal_and_duplicates",
			patterns: []string{"stacks/api/template.json", "stacks/*/template.json"},
			want:     []string{"stacks/api/template.json"},
		},
		{
			name:     "no_matches",
			patterns: []string{"*.yaml"},
			want:     nil,
		},
		{
			name:        "missing_literal",
			patterns:    []string{"stacks/missing.json"},
			wantErr:     true,
			errContains: "template stacks/missing.json",
		},
		{
			name:        "directory_literal",
			patterns:    []string{"stacks"},
			wantErr:     true,
			errContains: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, dir := newTestManager(t)
			for _, f := range files {
				path := filepath.Join(dir, filepath.FromSlash(f))
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
			}

			got, err := mgr.Glob(tt.patterns...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			var rel []string
			for _, g := range got {
				rel = append(rel, filepath.ToSlash(mgr.Rel(g)))
			}
			assert.Equal(t, tt.want, rel)
		})
	}
}

func TestRel(t *testing.T) {
	mgr, dir := newTestManager(t)
	assert.Equal(t, filepath.Join("a", "b.json"), mgr.Rel(filepath.Join(dir, "a", "b.json")))
	assert.Equal(t, "/elsewhere/b.json", mgr.Rel("/elsewhere/b.json"), "paths outside the base stay as given")
}
