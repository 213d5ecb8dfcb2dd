package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{5, 5},
		{0, 1},
		{-1, 1},
	}

	for _, tt := range tests {
		if got := NewPool(tt.in, nil).Workers(); got != tt.want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func makeJobs(n int) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{Input: fmt.Sprintf("in-%02d.pdf", i)}
	}
	return jobs
}

func TestPoolRunKeepsOrder(t *testing.T) {
	var executed int32
	pool := NewPool(4, func(ctx context.Context, job Job) Result {
		n := atomic.AddInt32(&executed, 1)
		// Early jobs finish last.
		time.Sleep(time.Duration(50-n) * 10 * time.Microsecond)
		return Result{Job: job, Title: job.Input}
	})

	// More jobs than the queue holds, so submission must not deadlock.
	jobs := makeJobs(50)
	results := pool.Run(context.Background(), jobs)

	if int(executed) != len(jobs) {
		t.Errorf("executed %d jobs, want %d", executed, len(jobs))
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Job != jobs[i] || r.Title != jobs[i].Input {
			t.Errorf("results[%d] = %+v, want job %+v", i, r, jobs[i])
		}
	}
}

func TestPoolRunErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(2, func(ctx context.Context, job Job) Result {
		if job.Input == "in-01.pdf" {
			return Result{Job: job, Err: boom}
		}
		return Result{Job: job}
	})

	results := pool.Run(context.Background(), makeJobs(3))
	for i, r := range results {
		wantErr := i == 1
		if (r.Err != nil) != wantErr {
			t.Errorf("results[%d].Err = %v, wantErr %v", i, r.Err, wantErr)
		}
	}
}

func TestPoolRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var executed int32
	pool := NewPool(1, func(ctx context.Context, job Job) Result {
		if atomic.AddInt32(&executed, 1) == 1 {
			cancel()
		}
		return Result{Job: job}
	})

	jobs := makeJobs(20)
	results := pool.Run(ctx, jobs)

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	if results[0].Err != nil {
		t.Errorf("first job should complete, got %v", results[0].Err)
	}

	cancelled := 0
	for i, r := range results {
		if r.Job != jobs[i] {
			t.Errorf("results[%d].Job = %+v, want %+v", i, r.Job, jobs[i])
		}
		if errors.Is(r.Err, context.Canceled) {
			cancelled++
		}
	}
	if cancelled == 0 {
		t.Error("expected cancelled jobs to be reported")
	}
	if int(executed)+cancelled != len(jobs) {
		t.Errorf("executed %d + cancelled %d != %d jobs", executed, cancelled, len(jobs))
	}
}

func TestPoolRunEmpty(t *testing.T) {
	pool := NewPool(3, func(ctx context.Context, job Job) Result {
		t.Error("process should not be called")
		return Result{}
	})
	if results := pool.Run(context.Background(), nil); len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
