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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/varsubst/cmd/varsubst/opts"
	"github.com/walteh/varsubst/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [templates...]",
		Short: "Put back the templates saved by apply --backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "restore").Logger().WithContext(cmd.Context())

			paths, err := templates(o, args)
			if err != nil {
				return err
			}

			op, err := newOperation(o, runConfig{})
			if err != nil {
				return err
			}

			report, err := op.Restore(ctx, paths)
			o.UserLogger.LogSummary(fmt.Sprintf("%d of %d templates restored",
				report.Count(status.StatusRestored), len(paths)))
			if err != nil {
				return errors.Errorf("restoring templates: %w", err)
			}
			return nil
		},
	}

	return cmd
}
