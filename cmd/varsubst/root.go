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

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/walteh/varsubst/cmd/varsubst/commands"
	"github.com/walteh/varsubst/cmd/varsubst/opts"
	"github.com/walteh/varsubst/pkg/config"
	"github.com/walteh/varsubst/pkg/log"
	"github.com/walteh/varsubst/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const (
	defaultManifest = "serverless.yml"
	envPrefix       = "VARSUBST"
)

// newViper returns the viper instance flags and VARSUBST_* variables are
// read through. "dry-run" is read from VARSUBST_DRY_RUN.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// newRootCmd builds the command tree. Console output goes to out.
func newRootCmd(out io.Writer) *cobra.Command {
	o := &opts.RootOpts{Viper: newViper()}

	rootCmd := &cobra.Command{
		Use:   "varsubst",
		Short: "Substitute variables in CloudFormation templates",
		Long: `varsubst rewrites the CloudFormation templates a serverless package step
produces, replacing delimited tokens such as ##stage## according to the
custom.varSubstitution section of the project manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), o.Viper.GetBool(opts.KeyDebug))
			cmd.SetContext(ctx)

			if err := newRootOpts(ctx, o, out); err != nil {
				return err
			}
			return nil
		},
	}

	rootCmd.SetOut(out)
	addRootFlags(rootCmd, o.Viper)

	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewCheckCmd(o),
		commands.NewRestoreCmd(o),
		commands.NewVersionCmd(FormatVersion),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().StringP(opts.KeyConfig, "c", defaultManifest, "manifest file path (.yml, .yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolP(opts.KeyDebug, "d", false, "enable debug logging")
	cmd.PersistentFlags().String(opts.KeyPattern, "", "delimiter override, replaces the manifest pattern")

	for _, key := range []string{opts.KeyConfig, opts.KeyDebug, opts.KeyPattern} {
		_ = v.BindPFlag(key, cmd.PersistentFlags().Lookup(key))
	}
}

// newRootOpts loads the manifest and fills in the shared dependencies.
//
// A missing default manifest is not an error: the defaults apply and a
// warning is printed. A manifest named explicitly must exist.
func newRootOpts(ctx context.Context, o *opts.RootOpts, out io.Writer) error {
	logger := zerolog.Ctx(ctx)

	o.Console = log.NewWithZerolog(out, *logger)
	o.UserLogger = log.NewUserLoggerWithWriter(ctx, out)

	manifest := o.Viper.GetString(opts.KeyConfig)
	if manifest == "" {
		manifest = defaultManifest
	}

	settings, err := config.Load(ctx, manifest)
	switch {
	case err == nil:
	case manifest == defaultManifest && errors.Is(err, os.ErrNotExist):
		o.Console.Warningf("%s not found, using default settings", manifest)
		settings = config.Default()
	default:
		return errors.Errorf("loading manifest: %w", err)
	}

	if pattern := o.Viper.GetString(opts.KeyPattern); pattern != "" {
		settings.Pattern = pattern
	}
	o.Settings = settings

	logger.Debug().Str("manifest", manifest).Stringer("settings", settings).Msg("resolved settings")

	o.Files = status.New(filepath.Dir(manifest), logger)
	if o.Viper.GetBool(opts.KeyDebug) {
		// debug logs carry one aligned row per template
		o.Files.WithFormatter(status.NewColumnFileFormatter())
	}
	return nil
}

// setupLogging configures zerolog based on flags and returns a context
// carrying the logger. Without --debug only warnings and errors reach
// stderr; the console output already covers the rest.
func setupLogging(ctx context.Context, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	return logger.WithContext(ctx)
}
