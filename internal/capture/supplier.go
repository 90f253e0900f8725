// SPDX-License-Identifier: Apache-2.0

package capture

import "sync"

// Supplier is a single-slot, latest-wins mailbox between the frame
// producer and the recognition stage. Publish never blocks and never
// queues: an unconsumed frame is overwritten and counted as dropped.
// The reader side blocks until a frame arrives or the supplier stops.
//
// This keeps the recognition stage working on at most one frame at a
// time while the producer runs at camera speed. Completeness is
// sacrificed for latency on purpose: only the newest frame matters for
// a live viewfinder.
type Supplier struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frame  *Frame
	closed bool

	drops    uint64
	consumed uint64
}

func NewSupplier() *Supplier {
	s := &Supplier{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Publish places a frame into the slot, overwriting any unconsumed
// predecessor. Non-blocking; a no-op after Stop.
func (s *Supplier) Publish(frame *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.frame != nil {
		s.drops++
	}
	s.frame = frame
	s.cond.Signal()
}

// Subscribe returns a blocking read function for the single consumer.
// Each call to the returned function waits for the next frame and
// returns nil once the supplier has been stopped, which is the
// consumer's signal to exit its loop.
//
// The read function must be called from one goroutine only.
func (s *Supplier) Subscribe() func() *Frame {
	return func() *Frame {
		s.mu.Lock()
		defer s.mu.Unlock()

		for s.frame == nil && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			return nil
		}

		frame := s.frame
		s.frame = nil
		s.consumed++
		return frame
	}
}

// Stop closes the mailbox and wakes a blocked reader. Idempotent.
func (s *Supplier) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.frame = nil
	s.cond.Broadcast()
}

// Drops reports how many published frames were overwritten before the
// consumer picked them up. A steadily climbing value means the
// recognition stage cannot keep up with the producer, which is the
// expected steady state rather than a fault.
func (s *Supplier) Drops() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drops
}

// Consumed reports how many frames the reader has taken out of the slot.
func (s *Supplier) Consumed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}
