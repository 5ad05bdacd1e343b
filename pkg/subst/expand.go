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
)

type partKind int

const (
	partLiteral partKind = iota
	partGroup            // $n, $nn, $<name>
	partMatch            // $&
	partPrefix           // $`
	partSuffix           // $'
)

type part struct {
	kind    partKind
	literal string
	group   int
}

// 🧩 template is a compiled replacement string.
//
// The syntax is the ECMAScript replacement syntax: $$, $&, $`, $', $n, $nn
// and $<name>. Everything else, ${name} included, is literal text. Go's
// regexp.Expand is not used because it would treat ${name} as a group
// reference and swallow the shorthand replacement.
type template struct {
	parts []part
}

func compileTemplate(src string, re *regexp.Regexp) template {
	var (
		parts   []part
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, part{kind: partLiteral, literal: literal.String()})
			literal.Reset()
		}
	}
	emit := func(p part) {
		flush()
		parts = append(parts, p)
	}

	groups := re.NumSubexp()
	named := hasNamedGroups(re)

	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '$' || i+1 >= len(src) {
			literal.WriteByte(c)
			continue
		}

		next := src[i+1]
		switch {
		case next == '$':
			literal.WriteByte('$')
			i++
		case next == '&':
			emit(part{kind: partMatch})
			i++
		case next == '`':
			emit(part{kind: partPrefix})
			i++
		case next == '\'':
			emit(part{kind: partSuffix})
			i++
		case isDigit(next):
			n, width := groupReference(src[i+1:], groups)
			if width == 0 {
				literal.WriteByte('$')
				continue
			}
			emit(part{kind: partGroup, group: n})
			i += width
		case next == '<' && named:
			end := strings.IndexByte(src[i+2:], '>')
			if end < 0 {
				literal.WriteByte('$')
				continue
			}
			// unknown names expand to nothing
			name := src[i+2 : i+2+end]
			if idx := re.SubexpIndex(name); idx > 0 {
				emit(part{kind: partGroup, group: idx})
			}
			i += 2 + end
		default:
			literal.WriteByte('$')
		}
	}
	flush()

	return template{parts: parts}
}

// groupReference resolves the digits after a '$'. Two digits win when they
// name an existing group, otherwise one digit is tried. Width is the number
// of bytes consumed, zero when the reference is not a group.
func groupReference(s string, groups int) (n int, width int) {
	if len(s) >= 2 && isDigit(s[1]) {
		nn := int(s[0]-'0')*10 + int(s[1]-'0')
		if nn >= 1 && nn <= groups {
			return nn, 2
		}
	}
	d := int(s[0] - '0')
	if d >= 1 && d <= groups {
		return d, 1
	}
	return 0, 0
}

// expand appends the replacement for one match. match holds the submatch
// index pairs of regexp.FindAllStringSubmatchIndex.
func (t template) expand(b *strings.Builder, src string, match []int) {
	for _, p := range t.parts {
		switch p.kind {
		case partLiteral:
			b.WriteString(p.literal)
		case partMatch:
			b.WriteString(src[match[0]:match[1]])
		case partPrefix:
			b.WriteString(src[:match[0]])
		case partSuffix:
			b.WriteString(src[match[1]:])
		case partGroup:
			start, end := match[2*p.group], match[2*p.group+1]
			if start >= 0 {
				b.WriteString(src[start:end])
			}
		}
	}
}

func hasNamedGroups(re *regexp.Regexp) bool {
	for _, name := range re.SubexpNames() {
		if name != "" {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
