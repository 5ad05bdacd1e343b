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

package commands

import (
	"context"
	"fmt"

	"github.com/walteh/varsubst/cmd/varsubst/opts"
	"github.com/walteh/varsubst/pkg/log"
	"github.com/walteh/varsubst/pkg/operation"
	"github.com/walteh/varsubst/pkg/status"
	"github.com/walteh/varsubst/pkg/subst"
	"gitlab.com/tozd/go/errors"
)

type runConfig struct {
	async  bool
	limit  int
	backup bool
	dryRun bool
}

// newOperation builds the engine and the operation for one run
func newOperation(o *opts.RootOpts, rc runConfig) (*operation.Operation, error) {
	engine, err := o.Settings.Engine(subst.WithRecorder(o.Console))
	if err != nil {
		return nil, err
	}

	op, err := operation.New(operation.Options{
		Engine: engine,
		Files:  o.Files,
		Logger: o.Console,
		Async:  rc.async,
		Limit:  rc.limit,
		DryRun: rc.dryRun,
		Backup: rc.backup,
	})
	if err != nil {
		return nil, errors.Errorf("creating operation: %w", err)
	}
	return op, nil
}

// templates expands the command arguments, falling back to the default glob
func templates(o *opts.RootOpts, args []string) ([]string, error) {
	paths, err := o.Files.Glob(args...)
	if err != nil {
		return nil, errors.Errorf("finding templates: %w", err)
	}
	if len(paths) == 0 {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{status.DefaultTemplateGlob}
		}
		return nil, errors.Errorf("no templates match %v", patterns)
	}
	return paths, nil
}

// execute runs the substitution over the templates named by args and prints
// the per-template summary.
func execute(ctx context.Context, o *opts.RootOpts, args []string, rc runConfig) (*operation.Report, error) {
	paths, err := templates(o, args)
	if err != nil {
		return nil, err
	}

	op, err := newOperation(o, rc)
	if err != nil {
		return nil, err
	}

	o.Console.StartRun(ctx, log.RunOperation{
		Manifest: o.Settings.Location(),
		Pattern:  o.Settings.Pattern,
		Rules:    len(o.Settings.Variables),
		Files:    len(paths),
	})
	report, err := op.Execute(ctx, paths)
	o.Console.EndRun(ctx)

	if report != nil {
		summarize(o, report)
	}
	if err != nil {
		return report, errors.Errorf("substituting templates: %w", err)
	}
	return report, nil
}

func summarize(o *opts.RootOpts, report *operation.Report) {
	for _, fr := range report.Files {
		change := log.FileChange{
			Path:        o.Files.Rel(fr.Path),
			Description: replacements(fr.Replacements),
			Error:       fr.Err,
		}
		switch {
		case fr.Err != nil || fr.Status == status.StatusFailed:
			change.Type = log.FileError
		case fr.Status == status.StatusUnknown:
			change.Type = log.FileSkipped
			change.Description = "not processed"
		case fr.Status == status.StatusModified && report.DryRun:
			change.Type = log.FileSkipped
			change.Description = "dry run, " + change.Description
		case fr.Status == status.StatusModified:
			change.Type = log.FileUpdated
		default:
			change.Type = log.FileUnchanged
		}
		o.UserLogger.LogFileChange(change)
	}

	o.UserLogger.LogSummary(fmt.Sprintf("%d templates, %d modified, %s",
		len(report.Files), report.Count(status.StatusModified), replacements(report.Replacements())))
}

func replacements(n int) string {
	if n == 1 {
		return "1 replacement"
	}
	return fmt.Sprintf("%d replacements", n)
}
