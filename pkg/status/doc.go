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

/*
Package status manages template storage and status tracking for varsubst.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	| Templates |           |  Reports  |
	|  (Files)  |           |  (UI/UX)  |
	+-----------+           +-----------+

🎯 Purpose:
- Finds CloudFormation templates on disk (doublestar globs)
- Reads and writes them safely (temp file + rename)
- Keeps an optional .bak copy of the previous content
- Tracks the outcome of each template (modified, unchanged, failed, restored)

🔄 Flow:
1. Glob expands template patterns, defaulting to DefaultTemplateGlob
2. ReadFile hands the raw template to the operation package
3. EncodeDocument renders the substituted document for disk
4. WriteFileAtomic replaces the template, BackupFile first if asked
5. TrackFile records the outcome and logs it through the formatter

🤝 Interfaces:
- FileManager: template file operations
- StatusReporter: status tracking and progress
- FileFormatter: status messages (DefaultFileFormatter, ColumnFileFormatter)

🔍 Example:

	mgr := status.New(".", logger)

	paths, err := mgr.Glob()          // .serverless/cloudformation-template-*.json
	content, err := mgr.ReadFile(ctx, paths[0])

	err = mgr.BackupFile(ctx, paths[0])
	err = mgr.WriteFileAtomic(ctx, paths[0], updated)

	mgr.TrackFile(ctx, paths[0], status.FileInfo{Status: status.StatusModified, Replacements: 3})
*/
package status
