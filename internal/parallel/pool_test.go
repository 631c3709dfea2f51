package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewWorkerPool_DefaultWorkers(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()

	if got, want := p.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers() = %d, want GOMAXPROCS (%d)", got, want)
	}
	if !p.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestExecuteAll_RunsEverything(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	const n = 100
	var counter atomic.Int64
	work := make([]func(), n)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	p.ExecuteAll(work)

	if got := counter.Load(); got != n {
		t.Errorf("executed %d tasks, want %d", got, n)
	}
}

func TestExecuteAll_MoreTasksThanWorkers(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()

	var counter atomic.Int64
	work := make([]func(), 64)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	// Multiple rounds on the same pool.
	for range 3 {
		p.ExecuteAll(work)
	}

	if got := counter.Load(); got != 3*64 {
		t.Errorf("executed %d tasks, want %d", got, 3*64)
	}
}

func TestExecuteAll_Empty(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()

	// Must not block or panic.
	p.ExecuteAll(nil)
	p.ExecuteAll([]func(){})
}

func TestClose_Idempotent(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close()

	if p.IsRunning() {
		t.Error("pool still running after Close")
	}
}

func TestExecuteAll_AfterClose(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()

	var counter atomic.Int64
	p.ExecuteAll([]func(){func() { counter.Add(1) }})

	if counter.Load() != 0 {
		t.Error("work executed after Close")
	}
}
