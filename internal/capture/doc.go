// SPDX-License-Identifier: Apache-2.0

// Package capture implements the plate-capture pipeline: a frame
// producer feeds a latest-wins supplier, a recognition stage turns
// frames into plate text, and a per-scan session state machine holds
// the result until the user confirms or rejects it.
package capture

//go:generate mockgen -destination=../mock/recognizer_mock.go -package=mock github.com/goatgarage/go-vehicle-logbook/internal/capture Recognizer
