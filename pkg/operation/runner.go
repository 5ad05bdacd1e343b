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
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Task processes the item at index i
type Task func(ctx context.Context, i int) error

// 🏃 Runner executes one task per item, in order or concurrently
type Runner struct {
	logger *zerolog.Logger
	async  bool
	limit  int
}

// 🏗️ NewRunner creates a new runner. A limit <= 0 means no limit in async
// mode.
func NewRunner(logger *zerolog.Logger, async bool, limit int) *Runner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{
		logger: logger,
		async:  async,
		limit:  limit,
	}
}

// 🏃 Run executes task for every index in [0, n)
func (r *Runner) Run(ctx context.Context, n int, task Task) error {
	if r.async {
		return r.runAsync(ctx, n, task)
	}
	return r.runSync(ctx, n, task)
}

// 🔄 runSync stops at the first failure
func (r *Runner) runSync(ctx context.Context, n int, task Task) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		if err := task(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// ⚡ runAsync starts every task; the first failure cancels the context the
// others see.
func (r *Runner) runAsync(ctx context.Context, n int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	r.logger.Debug().Int("tasks", n).Int("limit", r.limit).Msg("running tasks concurrently")

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Errorf("operation cancelled: %w", err)
			}
			return task(gctx, i)
		})
	}

	return g.Wait()
}
