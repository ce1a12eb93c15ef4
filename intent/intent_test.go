package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

func TestCompressRejectsEmpty(t *testing.T) {
	_, _, err := Compress(nil, 100)
	require.ErrorIs(t, err, ErrEmptySamples)
}

func TestCompressRejectsBadSampleRate(t *testing.T) {
	_, _, err := Compress([]Sample{{TimestampMs: 0}}, 0)
	require.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestCompressRejectsNonMonotonicTimestamps(t *testing.T) {
	_, _, err := Compress([]Sample{
		{TimestampMs: 10},
		{TimestampMs: 5},
	}, 100)
	require.ErrorIs(t, err, ErrNonMonotonicTimestamps)
}

// TestCompressIdle exercises a stationary window classifying as idle.
func TestCompressIdle(t *testing.T) {
	samples := make([]Sample, 100)
	for i := range samples {
		samples[i] = Sample{TimestampMs: int64(i * 10), Position: vector3.Zero}
	}
	rec, wire, err := Compress(samples, 100)
	require.NoError(t, err)
	assert.Equal(t, Idle, rec.Class)
	assert.Equal(t, 0.0, rec.Magnitude)
	assert.InDelta(t, 0, rec.Direction.Norm(), 1e-12)
	assert.Equal(t, 8, rec.CompressedBytes)
	assert.Equal(t, 8, len(wire))
	assert.NotEmpty(t, rec.IntentID)
}

// TestCompressReach exercises a straight-line, high-directness window
// classifying as reach.
func TestCompressReach(t *testing.T) {
	samples := make([]Sample, 100)
	for i := range samples {
		samples[i] = Sample{
			TimestampMs: int64(i * 10),
			Position:    vector3.Must(0.01*float64(i), 0, 0),
		}
	}
	rec, _, err := Compress(samples, 100)
	require.NoError(t, err)
	assert.Equal(t, Reach, rec.Class)
	assert.InDelta(t, 1.0, rec.Direction.X, 1.0/127)
	assert.InDelta(t, 0.99, rec.Magnitude, 0.02)
}

func TestPackDecodeRoundTrip(t *testing.T) {
	direction := vector3.Must(0.6, -0.8, 0)
	wire := Pack(Release, direction, 1.25)

	class, gotDir, mag, err := Decode(wire[:])
	require.NoError(t, err)
	assert.Equal(t, Release, class)
	assert.InDelta(t, direction.X, gotDir.X, 1.0/127)
	assert.InDelta(t, direction.Y, gotDir.Y, 1.0/127)
	assert.InDelta(t, direction.Z, gotDir.Z, 1.0/127)
	assert.InDelta(t, 1.25, mag, 1e-6)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, _, _, err := Decode([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidWireLength)
}

func TestDecodeRejectsInvalidClassTag(t *testing.T) {
	wire := [WireBytes]byte{9, 0, 0, 0, 0, 0, 0, 0}
	_, _, _, err := Decode(wire[:])
	require.ErrorIs(t, err, ErrInvalidClassTag)
}

func TestCompressionRatioScalesWithSampleCount(t *testing.T) {
	samples := []Sample{
		{TimestampMs: 0, Position: vector3.Zero},
		{TimestampMs: 10, Position: vector3.Must(0.01, 0, 0)},
	}
	rec, _, err := Compress(samples, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.OriginalSamples)
	assert.InDelta(t, 8.0, rec.CompressionRatio, 1e-9)
}
