package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCaptureConfigs indicates invalid frame-producer settings
	// (for example, a negative frame rate).
	ErrInvalidCaptureConfigs = errors.New("invalid capture configuration")
	// ErrInvalidRecognizerConfigs indicates invalid recognition-service
	// settings (for example, a confidence threshold outside 0..100).
	ErrInvalidRecognizerConfigs = errors.New("invalid recognizer configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown time zone name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
