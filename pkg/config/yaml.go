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
	"bytes"
	"context"
	"fmt"
	"io"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser reads custom.varSubstitution from a serverless.yml style
// manifest.
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".yaml", ".yml")
}

// 📝 Parse parses the settings from YAML
//
// The manifest is decoded into a node tree rather than a struct so unknown
// keys and CloudFormation short-form tags (!Ref, !Sub) elsewhere in the file
// do not get in the way.
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Settings, error) {
	var root yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	cfg := Default()

	section := yamlLookup(&root, "custom", "varSubstitution")
	if section == nil {
		return cfg, nil
	}

	pattern, err := yamlScalar(yamlLookup(section, "pattern"), "pattern")
	if err != nil {
		return nil, err
	}
	cfg.Pattern = resolvePattern(pattern)

	variables := yamlResolve(yamlLookup(section, "variables"))
	if variables == nil || variables.Kind != yaml.SequenceNode {
		return cfg, nil
	}

	for i, item := range variables.Content {
		v, err := yamlVariable(item, i)
		if err != nil {
			return nil, err
		}
		cfg.Variables = append(cfg.Variables, v)
	}

	return cfg, nil
}

func yamlVariable(node *yaml.Node, index int) (Variable, error) {
	node = yamlResolve(node)
	field := fmt.Sprintf("variables[%d]", index)

	switch node.Kind {
	case yaml.MappingNode:
		search, err := yamlScalar(yamlLookup(node, "search"), field+".search")
		if err != nil {
			return Variable{}, err
		}
		replace, err := yamlScalar(yamlLookup(node, "replace"), field+".replace")
		if err != nil {
			return Variable{}, err
		}
		return Explicit(search, replace), nil
	case yaml.ScalarNode:
		name, _ := yamlScalar(node, field)
		if name == nil {
			return Variable{}, nil
		}
		return Named(*name), nil
	default:
		return Variable{}, invalidValue(field)
	}
}

// yamlLookup walks mapping keys, returning nil when any step is missing or
// not a mapping.
func yamlLookup(node *yaml.Node, path ...string) *yaml.Node {
	node = yamlResolve(node)
	for _, key := range path {
		if node == nil || node.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
			}
		}
		node = yamlResolve(next)
	}
	return node
}

func yamlResolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// yamlScalar returns the textual form of a scalar, nil for a missing or
// null node.
func yamlScalar(node *yaml.Node, field string) (*string, error) {
	node = yamlResolve(node)
	if node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.ScalarNode {
		return nil, invalidValue(field)
	}
	value := node.Value
	return &value, nil
}
