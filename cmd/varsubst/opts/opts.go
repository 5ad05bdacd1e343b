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

package opts

import (
	"github.com/spf13/viper"
	"github.com/walteh/varsubst/pkg/config"
	"github.com/walteh/varsubst/pkg/log"
	"github.com/walteh/varsubst/pkg/status"
)

// Viper keys shared by the root command and its subcommands
const (
	KeyConfig  = "config"
	KeyDebug   = "debug"
	KeyPattern = "pattern"
	KeyAsync   = "async"
	KeyLimit   = "limit"
	KeyBackup  = "backup"
	KeyDryRun  = "dry-run"
)

// RootOpts contains shared options used by all commands.
//
// The root command fills it in before any subcommand runs, once flags and
// environment have been read.
type RootOpts struct {
	Settings   *config.Settings
	Files      *status.Manager
	Console    *log.Logger
	UserLogger *log.UserLogger
	Viper      *viper.Viper
}
