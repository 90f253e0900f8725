package adapter

import "errors"

// Sentinel errors returned by the ALPR client. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRecognizerUnavailable is returned when the recognition service
	// cannot be reached or reports itself unhealthy.
	ErrRecognizerUnavailable = errors.New("recognizer service unavailable")

	// ErrBadRecognizerResponse is returned when the service answers with
	// a body the client cannot decode.
	ErrBadRecognizerResponse = errors.New("malformed recognizer response")
)
