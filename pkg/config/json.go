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
	"fmt"

	"github.com/tidwall/gjson"
	"gitlab.com/tozd/go/errors"
)

// 🔧 JSONParser reads custom.varSubstitution from a serverless.json style
// manifest.
type JSONParser struct{}

func init() {
	Register(&JSONParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *JSONParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".json")
}

// 📝 Parse parses the settings from JSON bytes
func (p *JSONParser) Parse(ctx context.Context, data []byte) (*Settings, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("parsing JSON: invalid document")
	}

	cfg := Default()

	section := gjson.GetBytes(data, "custom.varSubstitution")
	if !section.IsObject() {
		return cfg, nil
	}

	pattern, err := jsonScalar(section.Get("pattern"), "pattern")
	if err != nil {
		return nil, err
	}
	cfg.Pattern = resolvePattern(pattern)

	variables := section.Get("variables")
	if !variables.IsArray() {
		return cfg, nil
	}

	for i, item := range variables.Array() {
		v, err := jsonVariable(item, i)
		if err != nil {
			return nil, err
		}
		cfg.Variables = append(cfg.Variables, v)
	}

	return cfg, nil
}

func jsonVariable(item gjson.Result, index int) (Variable, error) {
	field := fmt.Sprintf("variables[%d]", index)

	switch {
	case item.IsObject():
		search, err := jsonScalar(item.Get("search"), field+".search")
		if err != nil {
			return Variable{}, err
		}
		replace, err := jsonScalar(item.Get("replace"), field+".replace")
		if err != nil {
			return Variable{}, err
		}
		return Explicit(search, replace), nil
	case item.IsArray():
		return Variable{}, invalidValue(field)
	case item.Type == gjson.Null:
		return Variable{}, nil
	default:
		return Named(item.String()), nil
	}
}

// jsonScalar returns the textual form of a scalar, nil for a missing or null
// value. Numbers use their shortest form, so 1.0 reads as "1".
func jsonScalar(value gjson.Result, field string) (*string, error) {
	if !value.Exists() || value.Type == gjson.Null {
		return nil, nil
	}
	if value.IsObject() || value.IsArray() {
		return nil, invalidValue(field)
	}
	s := value.String()
	return &s, nil
}
