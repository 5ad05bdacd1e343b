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

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_Expand(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		repl    string
		src     string
		want    string
	}{
		{name: "literal", pattern: `b`, repl: "X", src: "abc", want: "aXc"},
		{name: "dollar_dollar", pattern: `b`, repl: "$$", src: "abc", want: "a$c"},
		{name: "whole_match", pattern: `b+`, repl: "[$&]", src: "abbc", want: "a[bb]c"},
		{name: "prefix", pattern: `b`, repl: "$`", src: "abc", want: "aac"},
		{name: "suffix", pattern: `b`, repl: "$'", src: "abc", want: "acc"},
		{name: "group", pattern: `(b)(c)`, repl: "$2$1", src: "abcd", want: "acbd"},
		{name: "two_digit_group", pattern: `(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)(k)`, repl: "$11", src: "abcdefghijk", want: "k"},
		{name: "two_digits_fall_back_to_one", pattern: `(a)`, repl: "$12", src: "a", want: "a2"},
		{name: "missing_group_is_literal", pattern: `a`, repl: "$1", src: "a", want: "$1"},
		{name: "dollar_zero_is_literal", pattern: `(a)`, repl: "$0", src: "a", want: "$0"},
		{name: "unmatched_group_is_empty", pattern: `(x)?a`, repl: "[$1]", src: "a", want: "[]"},
		{name: "brace_is_literal", pattern: `b`, repl: "${b}", src: "abc", want: "a${b}c"},
		{name: "named_group", pattern: `(?P<word>b)`, repl: "<$<word>>", src: "abc", want: "a<b>c"},
		{name: "unknown_name_is_empty", pattern: `(?P<word>b)`, repl: "[$<nope>]", src: "abc", want: "a[]c"},
		{name: "unnamed_angle_is_literal", pattern: `b`, repl: "$<word>", src: "abc", want: "a$<word>c"},
		{name: "unclosed_angle_is_literal", pattern: `(?P<word>b)`, repl: "$<word", src: "abc", want: "a$<wordc"},
		{name: "trailing_dollar", pattern: `b`, repl: "x$", src: "abc", want: "ax$c"},
		{name: "other_dollar_is_literal", pattern: `b`, repl: "$x", src: "abc", want: "a$xc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			tmpl := compileTemplate(tt.repl, re)

			var b strings.Builder
			last := 0
			for _, m := range re.FindAllStringSubmatchIndex(tt.src, -1) {
				b.WriteString(tt.src[last:m[0]])
				tmpl.expand(&b, tt.src, m)
				last = m[1]
			}
			b.WriteString(tt.src[last:])

			assert.Equal(t, tt.want, b.String())
		})
	}
}
