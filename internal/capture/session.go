// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
)

// Phase is a capture session's position in its state machine.
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseAwaitingConfirmation
	PhaseAccepted
	PhaseRejected
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseScanning:
		return "Scanning"
	case PhaseAwaitingConfirmation:
		return "AwaitingConfirmation"
	case PhaseAccepted:
		return "Accepted"
	case PhaseRejected:
		return "Rejected"
	case PhaseClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Session is one camera-scan interaction. It owns the producer, the
// supplier and the pump goroutine for its lifetime; a new scan gets a
// new Session, so a stale session can never deliver a value into a
// field it was not opened from.
//
// While Scanning, every processed frame overwrites lastText, including
// with the empty "no text" result, so a late miss shadows an earlier
// hit. Capture freezes whatever is current; Confirm is the only way a
// value leaves the session.
type Session struct {
	producer FrameProducer
	supplier *Supplier
	stage    *Stage
	logger   *logger.Logger

	mu       sync.Mutex
	phase    Phase
	lastText string
	heldText string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSession(producer FrameProducer, stage *Stage, log *logger.Logger) *Session {
	return &Session{
		producer: producer,
		supplier: NewSupplier(),
		stage:    stage,
		logger:   log,
		phase:    PhaseScanning,
	}
}

// Start opens the frame source and launches the recognition pump. A
// producer that cannot start aborts the whole interaction with
// ErrCameraUnavailable; every other failure mode is handled inside the
// state machine.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.phase == PhaseClosed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)

	if err := s.producer.Start(ctx, s.supplier.Publish); err != nil {
		cancel()
		return fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go s.pump(ctx)

	return nil
}

// pump is the recognition loop: one frame in flight at a time, newer
// frames dropped by the supplier while a recognition is running.
func (s *Session) pump(ctx context.Context) {
	defer s.wg.Done()

	read := s.supplier.Subscribe()
	for {
		frame := read()
		if frame == nil {
			return
		}

		text, ok, err := s.stage.Process(ctx, frame)
		if err != nil {
			s.logger.Warn().Err(err).Uint64("seq", frame.Seq).Msg("frame recognition failed")
			text, ok = "", false
		}
		if !ok {
			text = ""
		}

		s.mu.Lock()
		if s.phase == PhaseScanning {
			s.lastText = text
		}
		s.mu.Unlock()
	}
}

// Phase returns the session's current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Capture freezes the most recent recognition result. With text in
// hand the session moves to AwaitingConfirmation and returns the text
// for display; with none it moves to Rejected and the caller offers a
// retry.
func (s *Session) Capture() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseClosed:
		return "", ErrSessionClosed
	case PhaseScanning:
	default:
		return "", fmt.Errorf("%w: capture in %s", ErrInvalidPhase, s.phase)
	}

	if s.lastText == "" {
		s.phase = PhaseRejected
		return "", ErrNoTextRecognized
	}

	s.heldText = s.lastText
	s.phase = PhaseAwaitingConfirmation
	return s.heldText, nil
}

// Confirm delivers the held text and ends the session's useful life.
// Only AwaitingConfirmation allows it: recognized text is never
// accepted without an explicit confirmation.
func (s *Session) Confirm() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseClosed:
		return "", ErrSessionClosed
	case PhaseAwaitingConfirmation:
	default:
		return "", fmt.Errorf("%w: confirm in %s", ErrInvalidPhase, s.phase)
	}

	s.phase = PhaseAccepted
	return s.heldText, nil
}

// Reject discards the held text and resumes scanning.
func (s *Session) Reject() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseClosed:
		return ErrSessionClosed
	case PhaseAwaitingConfirmation:
	default:
		return fmt.Errorf("%w: reject in %s", ErrInvalidPhase, s.phase)
	}

	s.heldText = ""
	s.lastText = ""
	s.phase = PhaseScanning
	return nil
}

// Retry leaves the Rejected state and resumes scanning. There is no
// retry limit.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseClosed:
		return ErrSessionClosed
	case PhaseRejected:
	default:
		return fmt.Errorf("%w: retry in %s", ErrInvalidPhase, s.phase)
	}

	s.lastText = ""
	s.phase = PhaseScanning
	return nil
}

// Close stops the producer and the pump and discards any held text.
// Safe in every phase and idempotent; after Close no transition can
// succeed and no value can be delivered.
func (s *Session) Close() {
	s.mu.Lock()
	if s.phase == PhaseClosed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseClosed
	s.heldText = ""
	s.lastText = ""
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	s.producer.Stop()
	s.supplier.Stop()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()

	s.logger.Debug().
		Uint64("frames_consumed", s.supplier.Consumed()).
		Uint64("frames_dropped", s.supplier.Drops()).
		Msg("capture session closed")
}
