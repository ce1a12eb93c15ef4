package intent

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// bytesPerSample is the reference uncompressed size of one motion sample
// (8-byte millisecond timestamp + 24-byte 3-vector position), used only to
// report compression_ratio. Applying it across the whole window rather than
// a single sample is the "32 bytes/sample" formula documented in DESIGN.md's
// Open Question decision, so the reported ratio scales with window size.
const bytesPerSample = 32

// WireBytes is the fixed size of a packed intent record.
const WireBytes = 8

// Class is one of the five motion-intent categories.
type Class uint8

const (
	Idle Class = iota
	Grasp
	Release
	Traverse
	Reach
)

var classNames = [...]string{"idle", "grasp", "release", "traverse", "reach"}

// String renders the class name, or "unknown" for an out-of-range value.
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Sample is one point of a motion window: a timestamp, a position, and an
// optional instantaneous velocity.
type Sample struct {
	TimestampMs int64
	Position    vector3.Vec3
	Velocity    *vector3.Vec3
}

// Record is the decoded, human-facing result of compressing a sample window.
type Record struct {
	IntentID         string
	Class            Class
	Direction        vector3.Vec3
	Magnitude        float64
	CompressedBytes  int
	OriginalSamples  int
	CompressionRatio float64
}

// Compress classifies samples and packs the result into an 8-byte wire
// record.
func Compress(samples []Sample, sampleRateHz float64) (*Record, [WireBytes]byte, error) {
	var wire [WireBytes]byte
	if len(samples) == 0 {
		return nil, wire, ErrEmptySamples
	}
	if sampleRateHz <= 0 {
		return nil, wire, ErrInvalidSampleRate
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].TimestampMs < samples[i-1].TimestampMs {
			return nil, wire, fmt.Errorf("intent.Compress: sample %d: %w", i, ErrNonMonotonicTimestamps)
		}
	}

	class, direction, magnitude := classify(samples, sampleRateHz)

	wire = Pack(class, direction, magnitude)

	return &Record{
		IntentID:         uuid.NewString(),
		Class:            class,
		Direction:        direction,
		Magnitude:        magnitude,
		CompressedBytes:  WireBytes,
		OriginalSamples:  len(samples),
		CompressionRatio: float64(len(samples)*bytesPerSample) / float64(WireBytes),
	}, wire, nil
}
