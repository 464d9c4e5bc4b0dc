// Copyright 2025 go-highway Authors
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

package batch

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Executor distributes n independent units of work, invoking fn(i) for
// every index in [0, n). Implementations decide how work is split across
// goroutines; callers decide how many pairs there are.
type Executor interface {
	Run(ctx context.Context, n int, fn func(i int) error) error
}

// InlineExecutor runs every unit of work on the calling goroutine, in
// order. Useful for small batches and for isolating bugs from concurrency.
type InlineExecutor struct{}

// Run implements Executor.
func (InlineExecutor) Run(ctx context.Context, n int, fn func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// PoolExecutor distributes work across a fixed number of goroutines using
// atomic work-stealing: each goroutine repeatedly claims the next unclaimed
// index until none remain. This gives better load balancing than static
// chunking when per-pair cost varies with sequence length.
type PoolExecutor struct {
	workers int
}

// NewPoolExecutor returns a PoolExecutor capped at workers goroutines. A
// non-positive workers uses runtime.GOMAXPROCS(0).
func NewPoolExecutor(workers int) *PoolExecutor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &PoolExecutor{workers: workers}
}

// Run implements Executor.
func (p *PoolExecutor) Run(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return InlineExecutor{}.Run(ctx, n, fn)
	}

	g, gctx := errgroup.WithContext(ctx)
	var next atomic.Int64

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				idx := int(next.Add(1)) - 1
				if idx >= n {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(idx); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}
