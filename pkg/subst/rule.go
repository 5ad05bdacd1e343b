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

package subst

import "fmt"

// DefaultDelimiter brackets every search token when no delimiter is configured.
const DefaultDelimiter = "##"

// 🔄 Rule is a single search/replace instruction.
//
// Search is pattern source and Replace is a replacement template. Either may
// be nil; a rule with a nil side is inactive and never changes the text.
type Rule struct {
	Search  *string
	Replace *string
}

// 🏷️ Shorthand expands a bare name into its explicit form:
// search is the name, replace is "${name}".
func Shorthand(name string) Rule {
	return Rule{
		Search:  &name,
		Replace: ptr("${" + name + "}"),
	}
}

// Pair builds an active rule from a search pattern and a replacement.
func Pair(search, replace string) Rule {
	return Rule{Search: &search, Replace: &replace}
}

// Active reports whether both sides of the rule are present.
func (r Rule) Active() bool {
	return r.Search != nil && r.Replace != nil
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", optString(r.Search), optString(r.Replace))
}

// RuleSet is an ordered list of rules. Order is application order.
type RuleSet []Rule

// Active returns the number of active rules in the set.
func (rs RuleSet) Active() int {
	n := 0
	for _, r := range rs {
		if r.Active() {
			n++
		}
	}
	return n
}

func ptr(s string) *string {
	return &s
}

func optString(s *string) string {
	if s == nil {
		return "<none>"
	}
	return fmt.Sprintf("%q", *s)
}
