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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests serverless.json style manifests
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name          string
		config        string
		wantErr       bool
		errContains   string
		wantPattern   string
		wantVariables []Variable
	}{
		{
			name:          "custom_null",
			config:        `{"service":"demo","custom":null}`,
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name:          "custom_empty",
			config:        `{"custom":{}}`,
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name:          "var_substitution_empty",
			config:        `{"custom":{"varSubstitution":{}}}`,
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name:          "pattern_configured",
			config:        `{"custom":{"varSubstitution":{"pattern":"some pattern"}}}`,
			wantPattern:   "some pattern",
			wantVariables: []Variable{},
		},
		{
			name:          "variables_not_a_list",
			config:        `{"custom":{"varSubstitution":{"variables":{"search":"a"}}}}`,
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name: "mixed_variables",
			config: `{
				"custom": {
					"varSubstitution": {
						"pattern": "##",
						"variables": [
							"hello",
							{"search": "world", "replace": "bar"},
							{"replace": "only"},
							{"search": "only", "replace": null},
							{"search": 404, "replace": false},
							null
						]
					}
				}
			}`,
			wantPattern: "##",
			wantVariables: []Variable{
				Named("hello"),
				Explicit(strPtr("world"), strPtr("bar")),
				Explicit(nil, strPtr("only")),
				Explicit(strPtr("only"), nil),
				Explicit(strPtr("404"), strPtr("false")),
				{},
			},
		},
		{
			name:        "invalid_json",
			config:      `{"custom":`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "nested_list_rejected",
			config:      `{"custom":{"varSubstitution":{"variables":[["a"]]}}}`,
			wantErr:     true,
			errContains: "variables[0]: value must be a scalar",
		},
		{
			name:        "object_pattern_rejected",
			config:      `{"custom":{"varSubstitution":{"pattern":{}}}}`,
			wantErr:     true,
			errContains: "pattern: value must be a scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := (&JSONParser{}).Parse(context.Background(), []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPattern, cfg.Pattern, "pattern should match")
			assert.Equal(t, tt.wantVariables, cfg.Variables, "variables should match")
		})
	}
}
