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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/varsubst/cmd/varsubst/opts"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [templates...]",
		Short: "Substitute variables in CloudFormation templates",
		Long: `Apply rewrites CloudFormation templates in place.
It will:
1. Read the substitution settings from the manifest
2. Expand the template arguments (default .serverless/cloudformation-template-*.json)
3. Replace every delimited search with its replacement, rule by rule
4. Write each changed template back, leaving it untouched if the result is not valid JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())

			_, err := execute(ctx, o, args, runConfig{
				async:  o.Viper.GetBool(opts.KeyAsync),
				limit:  o.Viper.GetInt(opts.KeyLimit),
				backup: o.Viper.GetBool(opts.KeyBackup),
				dryRun: o.Viper.GetBool(opts.KeyDryRun),
			})
			if err != nil {
				return errors.Errorf("applying substitutions: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Bool(opts.KeyAsync, false, "process templates concurrently")
	cmd.Flags().Int(opts.KeyLimit, 0, "maximum templates processed at once with --async (0 for no limit)")
	cmd.Flags().Bool(opts.KeyBackup, false, "keep a .bak copy of every rewritten template")
	cmd.Flags().Bool(opts.KeyDryRun, false, "compute the result without writing")

	if o.Viper != nil {
		for _, key := range []string{opts.KeyAsync, opts.KeyLimit, opts.KeyBackup, opts.KeyDryRun} {
			_ = o.Viper.BindPFlag(key, cmd.Flags().Lookup(key))
		}
	}

	return cmd
}
