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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want string
	}{
		{
			name: "nested",
			doc: map[string]any{
				"Resources": map[string]any{
					"Bucket": map[string]any{"Type": "AWS::S3::Bucket"},
				},
				"AWSTemplateFormatVersion": "2010-09-09",
			},
			want: "{\n  \"AWSTemplateFormatVersion\": \"2010-09-09\",\n  \"Resources\": {\n    \"Bucket\": {\n      \"Type\": \"AWS::S3::Bucket\"\n    }\n  }\n}\n",
		},
		{
			name: "html_not_escaped",
			doc:  map[string]any{"Condition": "a<b && c>d"},
			want: "{\n  \"Condition\": \"a<b && c>d\"\n}\n",
		},
		{
			name: "numbers_keep_text",
			doc:  map[string]any{"Timeout": json.Number("30"), "Ratio": json.Number("1.50")},
			want: "{\n  \"Ratio\": 1.50,\n  \"Timeout\": 30\n}\n",
		},
		{
			name: "empty_containers",
			doc:  map[string]any{"List": []any{}, "Map": map[string]any{}},
			want: "{\n  \"List\": [],\n  \"Map\": {}\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeDocument(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncodeDocument_Unsupported(t *testing.T) {
	_, err := EncodeDocument(map[string]any{"f": func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding template")
}
