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
	"github.com/walteh/varsubst/pkg/subst"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidValue is returned when a pattern, search or replace is a list or
// a map instead of a scalar.
var ErrInvalidValue = errors.New("value must be a scalar")

// 🔄 Variable is one entry of the variables list.
//
// It is either the shorthand form, a bare name (Name set), or the explicit
// form with optional Search and Replace.
type Variable struct {
	Name    *string
	Search  *string
	Replace *string
}

// Named returns the shorthand form of a variable.
func Named(name string) Variable {
	return Variable{Name: &name}
}

// Explicit returns the explicit form of a variable. Either side may be nil.
func Explicit(search, replace *string) Variable {
	return Variable{Search: search, Replace: replace}
}

// IsShorthand reports whether the variable is a bare name.
func (v Variable) IsShorthand() bool {
	return v.Name != nil
}

// Rule normalizes the variable into a substitution rule.
func (v Variable) Rule() subst.Rule {
	if v.Name != nil {
		return subst.Shorthand(*v.Name)
	}
	return subst.Rule{Search: v.Search, Replace: v.Replace}
}

func invalidValue(field string) error {
	return errors.Errorf("%s: %w", field, ErrInvalidValue)
}
