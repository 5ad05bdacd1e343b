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
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/walteh/varsubst/pkg/status"
	"github.com/walteh/varsubst/pkg/subst"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Execute substitutes every template in paths.
//
// Each template is read, serialized, substituted, re-parsed and, unless the
// operation is a dry run, written back atomically. A template the rules leave
// unchanged is not rewritten. The first failure stops the run; a template
// whose substituted text no longer parses is left untouched on disk and the
// returned error wraps the *subst.ParseError.
func (o *Operation) Execute(ctx context.Context, paths []string) (*Report, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Int("templates", len(paths)).
		Bool("async", o.async).
		Bool("dry_run", o.dryRun).
		Msg("executing substitution")

	report := &Report{
		Files:  make([]FileReport, len(paths)),
		DryRun: o.dryRun,
	}
	for i, path := range paths {
		report.Files[i].Path = path
	}

	o.files.StartOperation(ctx, len(paths))
	defer o.files.FinishOperation(ctx)

	var processed atomic.Int64
	runner := NewRunner(logger, o.async, o.limit)

	err := runner.Run(ctx, len(paths), func(ctx context.Context, i int) error {
		fr, err := o.processFile(ctx, paths[i])
		report.Files[i] = fr

		o.files.TrackFile(ctx, fr.Path, status.FileInfo{
			Status:       fr.Status,
			Replacements: fr.Replacements,
			DryRun:       o.dryRun,
			Error:        fr.Err,
		})
		o.logFile(ctx, fr)
		o.files.UpdateProgress(ctx, int(processed.Add(1)))

		return err
	})
	if err != nil {
		return report, err
	}

	logger.Debug().
		Int("templates", len(paths)).
		Int("modified", report.Count(status.StatusModified)).
		Int("replacements", report.Replacements()).
		Msg("substitution complete")

	return report, nil
}

// 📄 processFile runs the pipeline for one template
func (o *Operation) processFile(ctx context.Context, path string) (FileReport, error) {
	fr := FileReport{Path: path, Status: status.StatusFailed}

	fail := func(err error) (FileReport, error) {
		fr.Err = err
		return fr, err
	}

	content, err := o.files.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}

	doc, err := subst.Decode(string(content))
	if err != nil {
		return fail(errors.Errorf("template %s is not valid JSON: %w", path, err))
	}

	text, err := subst.Encode(doc)
	if err != nil {
		return fail(errors.Errorf("serializing template %s: %w", path, err))
	}

	result := o.engine.Substitute(ctx, text)
	fr.Rules = result.Rules
	fr.Replacements = result.ReplacementCount

	updated, err := subst.Decode(result.Modified)
	if err != nil {
		return fail(errors.Errorf("substituting %s: %w", path, err))
	}

	if !result.WasModified {
		fr.Status = status.StatusUnchanged
		return fr, nil
	}

	out, err := status.EncodeDocument(updated)
	if err != nil {
		return fail(errors.Errorf("encoding template %s: %w", path, err))
	}

	if o.dryRun {
		fr.Status = status.StatusModified
		return fr, nil
	}

	if o.backup {
		if err := o.files.BackupFile(ctx, path); err != nil {
			return fail(err)
		}
	}

	if err := o.files.WriteFileAtomic(ctx, path, out); err != nil {
		return fail(err)
	}

	fr.Status = status.StatusModified
	return fr, nil
}
