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
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestRunner(t *testing.T) {
	tests := []struct {
		name  string
		async bool
		limit int
	}{
		{name: "sync"},
		{name: "async", async: true},
		{name: "async_limited", async: true, limit: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(nil, tt.async, tt.limit)

			var mu sync.Mutex
			seen := make(map[int]bool)

			err := runner.Run(context.Background(), 10, func(ctx context.Context, i int) error {
				mu.Lock()
				defer mu.Unlock()
				seen[i] = true
				return nil
			})
			require.NoError(t, err)
			assert.Len(t, seen, 10, "every task should run once")
		})
	}
}

func TestRunner_SyncStopsAtFirstError(t *testing.T) {
	runner := NewRunner(nil, false, 0)
	boom := errors.New("boom")

	var ran []int
	err := runner.Run(context.Background(), 5, func(ctx context.Context, i int) error {
		ran = append(ran, i)
		if i == 2 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 1, 2}, ran, "tasks after the failure should not run")
}

func TestRunner_AsyncCancelsOthers(t *testing.T) {
	runner := NewRunner(nil, true, 1)
	boom := errors.New("boom")

	var ran atomic.Int32
	err := runner.Run(context.Background(), 5, func(ctx context.Context, i int) error {
		ran.Add(1)
		if i == 0 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Less(t, int(ran.Load()), 5, "tasks started after the failure should be skipped")
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, async := range []bool{false, true} {
		runner := NewRunner(nil, async, 0)
		calls := 0
		err := runner.Run(ctx, 3, func(ctx context.Context, i int) error {
			calls++
			return nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	}
}
