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

package operation

import (
	"context"

	"github.com/walteh/varsubst/pkg/log"
	"github.com/walteh/varsubst/pkg/status"
	"github.com/walteh/varsubst/pkg/subst"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Store is the template storage an operation reads from and writes to
type Store interface {
	status.FileManager
	status.StatusReporter
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Engine performs the substitution
	Engine *subst.Engine
	// Files reads, writes and tracks templates
	Files Store
	// Logger prints one line per template, optional
	Logger *log.Logger
	// Async processes templates concurrently
	Async bool
	// Limit caps concurrent templates in async mode, 0 for no cap
	Limit int
	// DryRun computes results without writing
	DryRun bool
	// Backup keeps a .bak copy of every template that gets rewritten
	Backup bool
}

// 🎮 Operation runs the substitution pipeline over template files
type Operation struct {
	engine *subst.Engine
	files  Store
	logger *log.Logger
	async  bool
	limit  int
	dryRun bool
	backup bool
}

// 🏭 New creates a new operation with the given options
func New(opts Options) (*Operation, error) {
	if opts.Engine == nil {
		return nil, errors.New("engine is required")
	}
	if opts.Files == nil {
		return nil, errors.New("file store is required")
	}
	return &Operation{
		engine: opts.Engine,
		files:  opts.Files,
		logger: opts.Logger,
		async:  opts.Async,
		limit:  opts.Limit,
		dryRun: opts.DryRun,
		backup: opts.Backup,
	}, nil
}

// DryRun reports whether the operation only computes results
func (o *Operation) DryRun() bool {
	return o.dryRun
}

// 📊 FileReport is the outcome of one template
type FileReport struct {
	Path         string
	Status       status.FileStatus
	Replacements int
	Rules        []subst.RuleResult
	Err          error
}

// 📊 Report is the outcome of one run, with one entry per template in input
// order. Entries for templates that never ran have StatusUnknown.
type Report struct {
	Files  []FileReport
	DryRun bool
}

// Replacements returns the total number of replacements across templates
func (r *Report) Replacements() int {
	n := 0
	for _, f := range r.Files {
		n += f.Replacements
	}
	return n
}

// Count returns the number of templates with the given status
func (r *Report) Count(s status.FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

func (o *Operation) logFile(ctx context.Context, fr FileReport) {
	if o.logger == nil {
		return
	}

	statusText := fr.Status.String()
	if o.dryRun && fr.Status == status.StatusModified {
		statusText = "would modify"
	}

	o.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         fr.Path,
		Status:       statusText,
		IsModified:   fr.Status == status.StatusModified,
		IsDryRun:     o.dryRun,
		IsFailed:     fr.Status == status.StatusFailed,
		Replacements: fr.Replacements,
	})
}
