package capture

import "time"

// Frame is a single captured image handed through the pipeline.
//
// Data is shared, never copied: once published the slice must not be
// modified by the producer. Seq is assigned by the publisher and grows
// monotonically, so consumers can detect gaps left by dropped frames.
type Frame struct {
	Data      []byte
	Width     int
	Height    int
	Seq       uint64
	Timestamp time.Time
}
