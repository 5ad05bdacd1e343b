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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser reads custom.var_substitution from an HCL manifest
type HCLParser struct{}

// hclManifest only names the blocks it reads; everything else lands in Remain.
type hclManifest struct {
	Custom *hclCustom `hcl:"custom,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type hclCustom struct {
	VarSubstitution *hclVarSubstitution `hcl:"var_substitution,block"`
	Remain          hcl.Body            `hcl:",remain"`
}

type hclVarSubstitution struct {
	Pattern   hcl.Expression `hcl:"pattern,optional"`
	Variables hcl.Expression `hcl:"variables,optional"`
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".hcl")
}

// 📝 Parse parses the settings from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Settings, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "manifest.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var manifest hclManifest
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &manifest)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := Default()
	if manifest.Custom == nil || manifest.Custom.VarSubstitution == nil {
		return cfg, nil
	}
	section := manifest.Custom.VarSubstitution

	patternVal, err := hclValue(section.Pattern, evalCtx)
	if err != nil {
		return nil, err
	}
	pattern, err := ctyScalar(patternVal, "pattern")
	if err != nil {
		return nil, err
	}
	cfg.Pattern = resolvePattern(pattern)

	variables, err := hclValue(section.Variables, evalCtx)
	if err != nil {
		return nil, err
	}
	ty := variables.Type()
	if variables.IsNull() || !(ty.IsTupleType() || ty.IsListType()) {
		return cfg, nil
	}

	i := 0
	for it := variables.ElementIterator(); it.Next(); i++ {
		_, item := it.Element()
		v, err := ctyVariable(item, i)
		if err != nil {
			return nil, err
		}
		cfg.Variables = append(cfg.Variables, v)
	}

	return cfg, nil
}

func hclValue(expr hcl.Expression, evalCtx *hcl.EvalContext) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, errors.Errorf("evaluating HCL: %s", diags.Error())
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, errors.New("evaluating HCL: value is not known")
	}
	return val, nil
}

func ctyVariable(item cty.Value, index int) (Variable, error) {
	field := fmt.Sprintf("variables[%d]", index)
	if item.IsNull() {
		return Variable{}, nil
	}

	ty := item.Type()
	if ty.IsObjectType() || ty.IsMapType() {
		search, err := ctyScalar(ctyAttr(item, "search"), field+".search")
		if err != nil {
			return Variable{}, err
		}
		replace, err := ctyScalar(ctyAttr(item, "replace"), field+".replace")
		if err != nil {
			return Variable{}, err
		}
		return Explicit(search, replace), nil
	}

	name, err := ctyScalar(item, field)
	if err != nil {
		return Variable{}, err
	}
	if name == nil {
		return Variable{}, nil
	}
	return Named(*name), nil
}

// ctyAttr returns a null value when the object or map has no such key.
func ctyAttr(val cty.Value, name string) cty.Value {
	ty := val.Type()
	switch {
	case ty.IsObjectType():
		if ty.HasAttribute(name) {
			return val.GetAttr(name)
		}
	case ty.IsMapType():
		key := cty.StringVal(name)
		if val.HasIndex(key).True() {
			return val.Index(key)
		}
	}
	return cty.NullVal(cty.DynamicPseudoType)
}

// ctyScalar converts strings, numbers and bools to their textual form.
func ctyScalar(val cty.Value, field string) (*string, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsPrimitiveType() {
		return nil, invalidValue(field)
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, errors.Errorf("%s: %w", field, err)
	}
	s := str.AsString()
	return &s, nil
}
