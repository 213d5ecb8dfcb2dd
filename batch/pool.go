package batch

import (
	"context"
	"sync"
)

// Pool runs jobs on a fixed number of workers
type Pool struct {
	workers int
	process func(ctx context.Context, job Job) Result
}

// NewPool creates a pool with the given number of workers. Fewer than one
// worker means one.
func NewPool(workers int, process func(ctx context.Context, job Job) Result) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, process: process}
}

// Workers returns the number of workers
func (p *Pool) Workers() int {
	return p.workers
}

// indexedJob carries a job's position so results keep submission order
type indexedJob struct {
	index int
	job   Job
}

// Run executes every job and returns their results in job order. Jobs not
// started before ctx is cancelled get a result carrying ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	started := make([]bool, len(jobs))

	queue := make(chan indexedJob, p.workers*2)
	var wg sync.WaitGroup

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range queue {
				if ctx.Err() != nil {
					continue
				}
				started[item.index] = true
				results[item.index] = p.process(ctx, item.job)
			}
		}()
	}

submit:
	for i, job := range jobs {
		select {
		case <-ctx.Done():
			break submit
		case queue <- indexedJob{index: i, job: job}:
		}
	}
	close(queue)
	wg.Wait()

	for i := range results {
		if !started[i] {
			results[i] = Result{Job: jobs[i], Err: ctx.Err()}
		}
	}
	return results
}
