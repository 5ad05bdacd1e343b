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
Package operation runs the substitution pipeline over CloudFormation
templates.

	+-----------+      +-------------+      +-----------+
	|  status   | ---> |  operation  | ---> |  status   |
	|  (read)   |      |   (subst)   |      |  (write)  |
	+-----------+      +------+------+      +-----------+
	                          |
	                   +------+------+
	                   |     log     |
	                   +-------------+

🎯 Purpose:
- Applies a subst.Engine to every template a run names
- Delegates all file I/O and status tracking to the status package
- Reports one line per template through log.Logger

🔄 Flow (per template):
1. Read the template through the Store
2. Parse it and serialize it to compact JSON
3. Substitute every rule, in order, collecting match counts
4. Parse the substituted text; a failure stops here and the file is untouched
5. Unless nothing changed or the run is a dry run, back up and write atomically

⚡ Concurrency:
With Async set, templates run through an errgroup. The engine is read-only,
so every template shares it. The first failure cancels the templates that
have not started yet.

🔍 Example:

	op, err := operation.New(operation.Options{
		Engine: engine,
		Files:  status.New(".", &logger),
		Logger: console,
		Backup: true,
	})
	report, err := op.Execute(ctx, paths)
*/
package operation
