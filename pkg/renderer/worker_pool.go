package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs indexed tasks on a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls task once for every index in [0, numTasks) and blocks until all
// of them have returned. Tasks run in no particular order. The first error
// cancels the context handed to the remaining tasks and is returned.
func (wp *WorkerPool) Run(ctx context.Context, numTasks int, task func(ctx context.Context, index int) error) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(wp.numWorkers)

	for i := 0; i < numTasks; i++ {
		if egCtx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			return task(egCtx, i)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
