// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Job dispatches tasks to a bounded set of parallel workers
type Job struct {
	// MaxWorkers is the maximum number of workers processing tasks in parallel
	MaxWorkers int
	// Worker for processing tasks
	Worker Worker
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant applications
	// use false.
	FailFast bool
}

// Worker declares workers functional interface
type Worker interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task interface{}) error
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers.
type WorkerFunc func(ctx context.Context, task interface{}) error

// Work calls f(ctx, task).
func (f WorkerFunc) Work(ctx context.Context, task interface{}) error {
	return f(ctx, task)
}

// Dispatch spawns the workers and feeds them the tasks. With FailFast the
// first error cancels the remaining work and is returned. Otherwise all
// errors are collected into a *multierror.Error.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) error {
	if j.MaxWorkers < 1 {
		return fmt.Errorf("job needs at least one worker, got %d", j.MaxWorkers)
	}
	workersCount := len(tasks)
	if workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskCh := make(chan interface{})
	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		wg   sync.WaitGroup
		mux  sync.Mutex
		errs *multierror.Error
	)
	record := func(err error) {
		mux.Lock()
		defer mux.Unlock()
		if j.FailFast && errs.ErrorOrNil() != nil {
			return
		}
		errs = multierror.Append(errs, err)
		if j.FailFast {
			cancel()
		}
	}
	wg.Add(workersCount)
	for i := 0; i < workersCount; i++ {
		go func() {
			defer wg.Done()
			for task := range taskCh {
				if ctx.Err() != nil {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					record(err)
				}
			}
		}()
	}
	wg.Wait()

	if err := errs.ErrorOrNil(); err != nil {
		if j.FailFast {
			return errs.Errors[0]
		}
		return err
	}
	// parent context terminated before all tasks were handed out
	return ctx.Err()
}
