// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	mu       sync.Mutex
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runCount++
}

func (m *mockWorker) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.count() != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.count())
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_CancellationStopsBlockedWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	blocked := &blockingWorker{}
	ws := New(blocked)
	ws.Run(ctx)

	cancel()

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop on context cancellation")
	}
}

// blockingWorker blocks until its context is cancelled.
type blockingWorker struct{}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
}

// countingPinger fails every ping and counts them.
type countingPinger struct {
	pings atomic.Int64
}

func (p *countingPinger) PingContext(_ context.Context) error {
	p.pings.Add(1)
	return errors.New("no such host")
}

func TestDBPingWorker_PingsUntilCancelled(t *testing.T) {
	pinger := &countingPinger{}
	w := NewDBPingWorker(pinger, logger.Nop(), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for pinger.pings.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("worker never pinged")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancellation")
	}
}
