// Package intent classifies a motion-sample window into one of five
// categorical intents and packs the result into a fixed 8-byte wire record.
package intent

import "errors"

// Sentinel errors for sample-window validation. Callers MUST use errors.Is.
var (
	// ErrEmptySamples indicates a zero-length sample window.
	ErrEmptySamples = errors.New("intent: empty sample window")

	// ErrNonMonotonicTimestamps indicates samples[i].TimestampMs decreased
	// from samples[i-1].TimestampMs.
	ErrNonMonotonicTimestamps = errors.New("intent: timestamps must be non-decreasing")

	// ErrInvalidSampleRate indicates sample_rate_hz <= 0.
	ErrInvalidSampleRate = errors.New("intent: sample_rate_hz must be positive")

	// ErrInvalidWireLength indicates a Decode input was not exactly 8 bytes.
	ErrInvalidWireLength = errors.New("intent: wire record must be exactly 8 bytes")

	// ErrInvalidClassTag indicates Decode found a class byte outside [0,4].
	ErrInvalidClassTag = errors.New("intent: invalid class tag")
)
