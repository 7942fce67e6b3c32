// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel provides the bounded worker pool used for per-file work.
package parallel

import (
	"context"
	"sync"

	"bidcheck/internal/observability"
)

// WorkerPool runs indexed jobs over a fixed number of goroutines. Results
// are written by the job function itself, typically into an index-addressed
// slice, which keeps output order independent of scheduling.
type WorkerPool struct {
	workers  int
	observer *observability.StandardObserver
}

// NewWorkerPool creates a pool with the given concurrency. Non-positive
// values mean one worker.
func NewWorkerPool(workers int, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{workers: workers, observer: observer}
}

// Run executes fn for every index in [0, jobs), at most `workers` at a
// time, and blocks until all have finished. Cancellation is cooperative:
// fn receives ctx and decides how to honor it.
func (p *WorkerPool) Run(ctx context.Context, jobs int, fn func(ctx context.Context, index int)) {
	if jobs <= 0 {
		return
	}

	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("worker_pool", "run_jobs", "")
	}

	workers := p.workers
	if workers > jobs {
		workers = jobs
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				fn(ctx, i)
			}
		}()
	}

	for i := 0; i < jobs; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"jobs": jobs, "workers": workers})
	}
}
