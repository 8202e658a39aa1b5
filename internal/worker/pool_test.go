package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type stubResult struct {
	err error
}

func (r *stubResult) GetError() error {
	return r.err
}

type stubJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *stubJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &stubResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &stubResult{err: errors.New("job error")}
	}
	return &stubResult{}
}

func TestNewPool(t *testing.T) {
	if p := NewPool(5); p.workers != 5 {
		t.Errorf("workers = %d, want 5", p.workers)
	}
	if p := NewPool(0); p.workers != 1 {
		t.Errorf("workers = %d, want 1 for zero input", p.workers)
	}
	if p := NewPool(-3); p.workers != 1 {
		t.Errorf("workers = %d, want 1 for negative input", p.workers)
	}
}

func TestPoolExecution(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int32
	count := 10
	for i := 0; i < count; i++ {
		pool.Submit(&stubJob{executed: &executed})
	}

	results := pool.Wait()
	if len(results) != count {
		t.Errorf("results = %d, want %d", len(results), count)
	}
	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("executed = %d, want %d", executed, count)
	}
}

func TestPoolConcurrencyBound(t *testing.T) {
	workers := 4
	pool := NewPool(workers)
	pool.Start()

	var current, maxSeen int32
	var mu sync.Mutex

	for i := 0; i < 16; i++ {
		pool.Submit(&trackingJob{
			start: func() {
				curr := atomic.AddInt32(&current, 1)
				mu.Lock()
				if curr > maxSeen {
					maxSeen = curr
				}
				mu.Unlock()
			},
			end:      func() { atomic.AddInt32(&current, -1) },
			duration: 5 * time.Millisecond,
		})
	}
	pool.Wait()

	mu.Lock()
	defer mu.Unlock()
	if maxSeen > int32(workers) {
		t.Errorf("max concurrency %d exceeded %d workers", maxSeen, workers)
	}
}

type trackingJob struct {
	start    func()
	end      func()
	duration time.Duration
}

func (j *trackingJob) Execute(ctx context.Context) Result {
	if j.start != nil {
		j.start()
	}
	time.Sleep(j.duration)
	if j.end != nil {
		j.end()
	}
	return &stubResult{}
}

func TestPoolErrorResults(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Submit(&stubJob{shouldErr: true})
	pool.Submit(&stubJob{})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	done := make(chan struct{})
	go func() {
		pool.Submit(&stubJob{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit after shutdown blocked")
	}
}

func TestPoolShutdownClosesResults(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	started := make(chan struct{})
	pool.Submit(&trackingJob{
		start:    func() { close(started) },
		duration: 100 * time.Millisecond,
	})
	<-started
	pool.Shutdown()

	done := make(chan struct{})
	go func() {
		for range pool.results {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("results channel never closed")
	}
}
