package capture

import "errors"

// Sentinel errors returned by the capture pipeline. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCameraUnavailable is returned when the frame source cannot be
	// opened at all. This is the one condition that aborts the whole
	// capture interaction instead of driving a state transition.
	ErrCameraUnavailable = errors.New("camera unavailable")

	// ErrNoTextRecognized is returned by Capture when the most recent
	// frame produced no plate text. Expected and frequent; the caller
	// offers a retry.
	ErrNoTextRecognized = errors.New("no text recognized")

	// ErrInvalidPhase is returned when a transition is requested from a
	// phase that does not allow it.
	ErrInvalidPhase = errors.New("transition not allowed in current phase")

	// ErrSessionClosed is returned by any transition attempted after
	// Close. A closed session never delivers a value.
	ErrSessionClosed = errors.New("capture session is closed")

	// ErrNoFrames is returned by a directory producer whose source
	// directory holds no image files.
	ErrNoFrames = errors.New("no frames found in directory")
)
