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
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// buildVersion is set with -ldflags "-X main.buildVersion=..." on release builds
var buildVersion = ""

// VersionInfo describes the running binary
type VersionInfo struct {
	Version   string `json:"version"`
	Module    string `json:"module,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Revision  string `json:"revision,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// GetVersionInfo reads the version from the linker flag first, then from
// the embedded build info.
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.time":
				info.Time = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if buildVersion != "" {
		info.Version = buildVersion
	}
	return info
}

// FormatVersion renders the version info as text or, with asJSON, as an
// indented JSON object.
func FormatVersion(asJSON bool) (string, error) {
	info := GetVersionInfo()
	if asJSON {
		b, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	}

	var sb strings.Builder
	sb.WriteString("🚀 varsubst version info:\n")
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&sb, "%-10s %s\n", k+":", v)
		}
	}
	row("Version", info.Version)
	revision := info.Revision
	if info.Modified {
		revision += " (modified)"
	}
	row("Revision", revision)
	row("Built", info.Time)
	row("Go", info.GoVersion)
	row("Platform", info.Platform)
	return sb.String(), nil
}
