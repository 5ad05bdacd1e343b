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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// neverMatches is the pattern reported for inactive rules.
const neverMatches = "$^"

// 📊 RuleResult reports what one rule did during a pass
type RuleResult struct {
	Index   int    // position in the rule set
	Pattern string // effective pattern source
	Active  bool   // false when search or replace was missing
	Matches int    // number of replaced occurrences
}

// 📊 Result contains the outcome of a text substitution pass
type Result struct {
	// Original is the text before substitution
	Original string

	// Modified is the text after all rules ran
	Modified string

	// WasModified indicates if the text changed
	WasModified bool

	// ReplacementCount is the total number of replaced occurrences
	ReplacementCount int

	// Rules holds one entry per rule, in application order
	Rules []RuleResult
}

type compiledRule struct {
	pattern string
	re      *regexp.Regexp // nil for inactive rules
	repl    template
}

func (cr *compiledRule) replaceAll(src string) (string, int) {
	matches := cr.re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, m := range matches {
		b.WriteString(src[last:m[0]])
		cr.repl.expand(&b, src, m)
		last = m[1]
	}
	b.WriteString(src[last:])

	return b.String(), len(matches)
}

// 🔧 Option configures an Engine
type Option func(*Engine)

// WithRecorder sets the sink that receives one message per rule attempt.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithLabel overrides the label passed to the Recorder.
func WithLabel(label string) Option {
	return func(e *Engine) {
		e.label = label
	}
}

// 🎯 Engine rewrites delimited placeholders in serialized documents.
//
// The delimiter and rules are fixed at construction. An Engine holds no
// mutable state, so one Engine may serve concurrent Apply calls.
type Engine struct {
	delimiter string
	rules     []compiledRule
	recorder  Recorder
	label     string
}

// 🏭 New compiles the rule set against the delimiter.
//
// An empty delimiter means DefaultDelimiter. Search and delimiter are pattern
// source, not literal text: metacharacters in either keep their meaning.
func New(delimiter string, rules []Rule, opts ...Option) (*Engine, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	e := &Engine{
		delimiter: delimiter,
		rules:     make([]compiledRule, 0, len(rules)),
		recorder:  NopRecorder{},
		label:     DefaultLabel,
	}
	for _, opt := range opts {
		opt(e)
	}

	for i, rule := range rules {
		if !rule.Active() {
			e.rules = append(e.rules, compiledRule{pattern: neverMatches})
			continue
		}

		pattern := delimiter + *rule.Search + delimiter
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.WithStack(&PatternError{Index: i, Pattern: pattern, Err: err})
		}

		e.rules = append(e.rules, compiledRule{
			pattern: pattern,
			re:      re,
			repl:    compileTemplate(*rule.Replace, re),
		})
	}

	return e, nil
}

// Delimiter returns the resolved delimiter.
func (e *Engine) Delimiter() string {
	return e.delimiter
}

// Len returns the number of rules, active or not.
func (e *Engine) Len() int {
	return len(e.rules)
}

// 🔄 Substitute applies every rule, in order, to already serialized text.
// Each rule sees the output of the rules before it.
func (e *Engine) Substitute(ctx context.Context, text string) *Result {
	logger := zerolog.Ctx(ctx)

	result := &Result{
		Original: text,
		Rules:    make([]RuleResult, 0, len(e.rules)),
	}

	current := text
	for i := range e.rules {
		cr := &e.rules[i]
		e.recorder.Record(fmt.Sprintf("Substituting /%s/g in CloudFormation template", cr.pattern), e.label)

		rr := RuleResult{Index: i, Pattern: cr.pattern, Active: cr.re != nil}
		if cr.re != nil {
			current, rr.Matches = cr.replaceAll(current)
			result.ReplacementCount += rr.Matches
		}

		logger.Trace().
			Int("rule", i).
			Str("pattern", cr.pattern).
			Bool("active", rr.Active).
			Int("matches", rr.Matches).
			Msg("applied rule")

		result.Rules = append(result.Rules, rr)
	}

	result.Modified = current
	result.WasModified = current != text
	return result
}

// 🎯 Apply serializes doc, substitutes every rule and parses the result into
// a fresh document. It fails with *ParseError when the substituted text is
// not valid JSON.
func (e *Engine) Apply(ctx context.Context, doc any) (any, error) {
	text, err := Encode(doc)
	if err != nil {
		return nil, errors.Errorf("serializing document: %w", err)
	}

	result := e.Substitute(ctx, text)

	out, err := Decode(result.Modified)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("rules", len(e.rules)).
		Int("replacements", result.ReplacementCount).
		Msg("substituted document")

	return out, nil
}

// ApplyJSON substitutes over raw JSON and returns the re-encoded, compact
// result. The input is validated first so that a broken input is not
// reported as a broken substitution.
func (e *Engine) ApplyJSON(ctx context.Context, data []byte) ([]byte, error) {
	doc, err := Decode(string(data))
	if err != nil {
		return nil, errors.Errorf("reading input document: %w", err)
	}

	out, err := e.Apply(ctx, doc)
	if err != nil {
		return nil, err
	}

	text, err := Encode(out)
	if err != nil {
		return nil, errors.Errorf("serializing document: %w", err)
	}
	return []byte(text), nil
}

// Encode serializes doc to compact JSON without HTML escaping.
func Encode(doc any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", errors.WithStack(err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a single JSON document. Numbers are kept as json.Number so
// their text survives a round trip.
func Decode(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WithStack(&ParseError{Offset: offsetOf(err, dec), Err: err})
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, errors.WithStack(&ParseError{Offset: dec.InputOffset(), Err: err})
	}

	return doc, nil
}

func offsetOf(err error, dec *json.Decoder) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	return dec.InputOffset()
}
