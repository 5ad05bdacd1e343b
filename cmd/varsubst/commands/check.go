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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/varsubst/cmd/varsubst/opts"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [templates...]",
		Short: "Report what apply would change without writing",
		Long: `Check runs the substitution as a dry run.
It will:
1. Run every rule over every template
2. Report how many times each rule matched
3. Fail if a template would no longer be valid JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			report, err := execute(ctx, o, args, runConfig{dryRun: true})
			if report != nil {
				for _, fr := range report.Files {
					name := filepath.Base(fr.Path)
					for _, rr := range fr.Rules {
						if !rr.Active {
							o.UserLogger.LogValidation(false, fmt.Sprintf("%s: rule %d is inactive", name, rr.Index), nil)
							continue
						}
						o.UserLogger.LogValidation(rr.Matches > 0,
							fmt.Sprintf("%s: rule %d /%s/g matched %s", name, rr.Index, rr.Pattern, times(rr.Matches)), nil)
					}
				}
			}
			if err != nil {
				return errors.Errorf("checking templates: %w", err)
			}
			return nil
		},
	}

	return cmd
}

func times(n int) string {
	switch n {
	case 0:
		return "nothing"
	case 1:
		return "once"
	default:
		return fmt.Sprintf("%d times", n)
	}
}
