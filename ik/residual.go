package ik

import (
	"math"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// residualVector returns the 3-D (position-only) or 6-D (position +
// small-angle orientation) error vector for the current FK result against
// a target pose.
func residualVector(result *fk.Result, targetPos vector3.Vec3, targetOrient *vector3.Quat) []float64 {
	posErr := targetPos.Sub(result.EndEffectorPosition)
	if targetOrient == nil {
		return []float64{posErr.X, posErr.Y, posErr.Z}
	}

	// qErr rotates current orientation onto target orientation; for small
	// qErr, 2*vec(qErr) approximates the angular error vector. Flipping to
	// the W>=0 representative picks the shortest-path rotation.
	qErr := targetOrient.Mul(result.EndEffectorOrientation.Conj())
	if qErr.W < 0 {
		qErr = vector3.Quat{X: -qErr.X, Y: -qErr.Y, Z: -qErr.Z, W: -qErr.W}
	}
	return []float64{
		posErr.X, posErr.Y, posErr.Z,
		2 * qErr.X, 2 * qErr.Y, 2 * qErr.Z,
	}
}

func normVec(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
