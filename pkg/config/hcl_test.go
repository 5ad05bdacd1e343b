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

func TestHCLParsing(t *testing.T) {
	tests := []struct {
		name          string
		config        string
		wantErr       bool
		errContains   string
		wantPattern   string
		wantVariables []Variable
	}{
		{
			name:          "no_custom_block",
			config:        `service = "demo"`,
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name:          "custom_without_var_substitution",
			config:        "custom {\n  other = true\n}\n",
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name:          "var_substitution_empty",
			config:        "custom {\n  var_substitution {}\n}\n",
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name:          "pattern_configured",
			config:        "custom {\n  var_substitution {\n    pattern = \"@@\"\n  }\n}\n",
			wantPattern:   "@@",
			wantVariables: []Variable{},
		},
		{
			name:          "variables_not_a_list",
			config:        "custom {\n  var_substitution {\n    variables = \"hello\"\n  }\n}\n",
			wantPattern:   "##",
			wantVariables: []Variable{},
		},
		{
			name: "mixed_variables",
			config: `
service = "demo"

provider {
  name = "aws"
}

custom {
  var_substitution {
    pattern = "##"
    variables = [
      "hello",
      { search = "world", replace = "bar" },
      { replace = "only" },
      { search = "only", replace = null },
      { search = 404, replace = true },
      null,
    ]
  }
}
`,
			wantPattern: "##",
			wantVariables: []Variable{
				Named("hello"),
				Explicit(strPtr("world"), strPtr("bar")),
				Explicit(nil, strPtr("only")),
				Explicit(strPtr("only"), nil),
				Explicit(strPtr("404"), strPtr("true")),
				{},
			},
		},
		{
			name:        "syntax_error",
			config:      "custom {",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "unknown_reference",
			config:      "custom {\n  var_substitution {\n    pattern = var.missing\n  }\n}\n",
			wantErr:     true,
			errContains: "evaluating HCL",
		},
		{
			name:        "list_search_rejected",
			config:      "custom {\n  var_substitution {\n    variables = [{ search = [\"a\"], replace = \"b\" }]\n  }\n}\n",
			wantErr:     true,
			errContains: "variables[0].search: value must be a scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := (&HCLParser{}).Parse(context.Background(), []byte(tt.config))
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
