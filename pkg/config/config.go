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
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/varsubst/pkg/subst"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for manifest parsers
type Parser interface {
	// 📝 Parse extracts the substitution settings from a manifest
	Parse(ctx context.Context, data []byte) (*Settings, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Settings is the substitution configuration of a project
type Settings struct {
	Pattern   string     // delimiter bracketing every search token
	Variables []Variable // rules, in application order

	location string
}

// 🎯 Default returns the settings used when a manifest configures nothing.
func Default() *Settings {
	return &Settings{
		Pattern:   subst.DefaultDelimiter,
		Variables: []Variable{},
	}
}

// 🎯 Load reads the manifest at path and extracts its substitution settings.
// The format is chosen from the file extension.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("unsupported manifest extension %q", filepath.Ext(path))
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing manifest %s: %w", path, err)
	}
	cfg.location = path

	logger.Debug().
		Str("path", path).
		Str("pattern", cfg.Pattern).
		Int("variables", len(cfg.Variables)).
		Msg("loaded manifest")

	return cfg, nil
}

// Location returns the path the settings were loaded from, empty for
// defaults.
func (cfg *Settings) Location() string {
	return cfg.location
}

// Rules normalizes every variable into its explicit rule form.
func (cfg *Settings) Rules() []subst.Rule {
	rules := make([]subst.Rule, 0, len(cfg.Variables))
	for _, v := range cfg.Variables {
		rules = append(rules, v.Rule())
	}
	return rules
}

// 🏭 Engine builds a substitution engine from the settings.
func (cfg *Settings) Engine(opts ...subst.Option) (*subst.Engine, error) {
	engine, err := subst.New(cfg.Pattern, cfg.Rules(), opts...)
	if err != nil {
		return nil, errors.Errorf("building engine: %w", err)
	}
	return engine, nil
}

// 📝 String returns a string representation of the settings
func (cfg *Settings) String() string {
	return fmt.Sprintf("pattern %q, %d variables", cfg.Pattern, len(cfg.Variables))
}

// resolvePattern applies the default to a missing or empty pattern.
func resolvePattern(pattern *string) string {
	if pattern == nil || *pattern == "" {
		return subst.DefaultDelimiter
	}
	return *pattern
}

func hasSuffix(filename string, suffixes ...string) bool {
	name := strings.ToLower(strings.TrimSpace(filename))
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
