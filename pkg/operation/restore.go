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

	"github.com/rs/zerolog"
	"github.com/walteh/varsubst/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ⏪ Restore puts back the .bak copy of every template in paths, undoing an
// Execute that ran with backups enabled. It always runs sequentially.
func (o *Operation) Restore(ctx context.Context, paths []string) (*Report, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("templates", len(paths)).Msg("restoring templates")

	report := &Report{Files: make([]FileReport, 0, len(paths))}

	o.files.StartOperation(ctx, len(paths))
	defer o.files.FinishOperation(ctx)

	for i, path := range paths {
		fr := FileReport{Path: path, Status: status.StatusRestored}

		err := ctx.Err()
		if err == nil {
			err = o.files.RestoreFile(ctx, path)
		}
		if err != nil {
			fr.Status = status.StatusFailed
			fr.Err = err
		}

		report.Files = append(report.Files, fr)
		o.files.TrackFile(ctx, path, status.FileInfo{Status: fr.Status, Error: fr.Err})
		o.logFile(ctx, fr)
		o.files.UpdateProgress(ctx, i+1)

		if err != nil {
			return report, errors.Errorf("restoring %s: %w", path, err)
		}
	}

	return report, nil
}
