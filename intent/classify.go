package intent

import (
	"math"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// classify computes the decision-table inputs over the window and returns
// the matched class plus the displacement direction/magnitude, evaluating
// the table top-down and stopping at the first match.
func classify(samples []Sample, sampleRateHz float64) (Class, vector3.Vec3, float64) {
	n := len(samples)
	first := samples[0].Position
	last := samples[n-1].Position

	displacement := last.Sub(first)
	dNorm := displacement.Norm()

	pathLength := 0.0
	for i := 1; i < n; i++ {
		pathLength += samples[i].Position.Distance(samples[i-1].Position)
	}

	speeds := perSampleSpeeds(samples, sampleRateHz)
	meanSpeed, stdDevSpeed := meanAndStdDev(speeds)
	peakSpeed := 0.0
	for _, s := range speeds {
		if s > peakSpeed {
			peakSpeed = s
		}
	}
	terminalSpeed := speeds[n-1]
	_ = stdDevSpeed // computed for completeness/future use; not part of the decision table itself

	ratio := 0.0
	if pathLength > 1e-12 {
		ratio = dNorm / pathLength
	}

	var class Class
	switch {
	case meanSpeed < 0.01 && pathLength < 0.005:
		class = Idle
	case ratio < 0.3 && terminalSpeed < 0.1*peakSpeed:
		class = Grasp
	case ratio < 0.3 && terminalSpeed >= 0.1*peakSpeed:
		class = Release
	case ratio >= 0.7:
		class = Reach
	default:
		class = Traverse
	}

	return class, displacement.NormalizedOrZero(), dNorm
}

// perSampleSpeeds returns one speed (m/s) per sample: the supplied velocity's
// norm when present, otherwise a finite-difference estimate against the next
// sample (the last sample reuses the previous estimate). sampleRateHz backs
// the per-step time delta when consecutive timestamps coincide.
func perSampleSpeeds(samples []Sample, sampleRateHz float64) []float64 {
	n := len(samples)
	speeds := make([]float64, n)
	dtFallbackSec := 1.0 / sampleRateHz

	for i := 0; i < n; i++ {
		if samples[i].Velocity != nil {
			speeds[i] = samples[i].Velocity.Norm()
			continue
		}
		if i == n-1 {
			continue // filled in below from speeds[i-1] if available
		}
		dtMs := float64(samples[i+1].TimestampMs - samples[i].TimestampMs)
		dtSec := dtMs / 1000.0
		if dtSec <= 0 {
			dtSec = dtFallbackSec
		}
		speeds[i] = samples[i+1].Position.Distance(samples[i].Position) / dtSec
	}
	if n > 1 && samples[n-1].Velocity == nil {
		speeds[n-1] = speeds[n-2]
	}
	return speeds
}

func meanAndStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
