// Package trajectory parameterizes a polyline of waypoints under a global
// velocity ceiling, assigning each segment a trapezoidal or triangular
// velocity profile.
package trajectory

import (
	"errors"
	"fmt"
	"math"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// Sentinel errors for waypoint validation. Callers MUST use errors.Is.
var (
	// ErrTooFewWaypoints indicates fewer than two waypoints were supplied.
	ErrTooFewWaypoints = errors.New("trajectory: at least two waypoints are required")

	// ErrInvalidMaxVelocity indicates max_velocity was not strictly
	// positive.
	ErrInvalidMaxVelocity = errors.New("trajectory: max_velocity must be positive")

	// ErrInvalidAcceleration indicates the acceleration ceiling was not
	// strictly positive.
	ErrInvalidAcceleration = errors.New("trajectory: acceleration must be positive")
)

// DefaultMaxVelocity and DefaultAcceleration apply when a caller leaves
// either ceiling unset (zero).
const (
	DefaultMaxVelocity  = 1.0
	DefaultAcceleration = 2.0
)

// Plan is the parameterized output of Optimize.
type Plan struct {
	TotalDistance      float64
	TotalTime          float64
	SegmentTimes       []float64
	MaxVelocityReached float64
}

// Optimize walks waypoints segment by segment, assigning each one a
// trapezoidal profile that reaches maxVelocity when the segment is long
// enough to accelerate up to and decelerate down from it, or a triangular
// profile peaking below maxVelocity otherwise.
//
// maxVelocity and acceleration fall back to DefaultMaxVelocity/
// DefaultAcceleration when zero; both must be positive if supplied.
func Optimize(waypoints []vector3.Vec3, maxVelocity, acceleration float64) (*Plan, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("trajectory.Optimize: got %d waypoints: %w", len(waypoints), ErrTooFewWaypoints)
	}
	if maxVelocity == 0 {
		maxVelocity = DefaultMaxVelocity
	}
	if maxVelocity < 0 {
		return nil, ErrInvalidMaxVelocity
	}
	if acceleration == 0 {
		acceleration = DefaultAcceleration
	}
	if acceleration < 0 {
		return nil, ErrInvalidAcceleration
	}
	for i, w := range waypoints {
		if !w.Finite() {
			return nil, fmt.Errorf("trajectory.Optimize: waypoint %d: %w", i, vector3.ErrNonFinite)
		}
	}

	// d_min is the distance required to accelerate to maxVelocity and
	// decelerate back to zero within the segment.
	dMin := maxVelocity * maxVelocity / acceleration

	plan := &Plan{
		SegmentTimes: make([]float64, len(waypoints)-1),
	}

	for i := 0; i < len(waypoints)-1; i++ {
		d := waypoints[i+1].Distance(waypoints[i])

		peak := maxVelocity
		if d < dMin {
			peak = math.Sqrt(acceleration * d)
		}

		var t float64
		if peak > 0 {
			t = d/peak + peak/acceleration
		}

		plan.SegmentTimes[i] = t
		plan.TotalDistance += d
		plan.TotalTime += t
		if peak > plan.MaxVelocityReached {
			plan.MaxVelocityReached = peak
		}
	}

	return plan, nil
}
