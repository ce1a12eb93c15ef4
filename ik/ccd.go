package ik

import (
	"fmt"
	"math"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// ccdSweep performs one cyclic-coordinate-descent pass over chain, tip to
// base: for each joint, it picks the closed-form single-DOF adjustment that
// best closes the position residual, holding every other joint fixed.
//
// For a revolute joint at pivot p with world axis a, the optimal angle
// rotates the (axis-projected) vector from p to the current tip onto the
// (axis-projected) vector from p to the target, via atan2 of their
// cross/dot products about a. For a prismatic joint, the optimal
// displacement is the projection of the remaining position error onto the
// joint's axis. CCD addresses position only; orientation targets are left to
// the DLS phase that preceded the fallback.
func ccdSweep(chain *chainmodel.Chain, q []float64, targetPos vector3.Vec3) ([]float64, error) {
	next := append([]float64(nil), q...)

	for i := chain.DOF() - 1; i >= 0; i-- {
		result, frames, err := fk.EvaluateWithFrames(chain, next)
		if err != nil {
			return nil, fmt.Errorf("ik.ccdSweep: %w", err)
		}
		joint := chain.Joints[i]
		pivot := frames[i].Origin
		axis := frames[i].WorldAxis
		tip := result.EndEffectorPosition

		switch joint.Type {
		case chainmodel.Revolute:
			toTip := tip.Sub(pivot)
			toTarget := targetPos.Sub(pivot)
			tipPerp := toTip.Sub(axis.Scale(toTip.Dot(axis)))
			targetPerp := toTarget.Sub(axis.Scale(toTarget.Dot(axis)))
			if tipPerp.Norm() < 1e-9 || targetPerp.Norm() < 1e-9 {
				continue
			}
			cross := tipPerp.Cross(targetPerp)
			delta := math.Atan2(cross.Dot(axis), tipPerp.Dot(targetPerp))
			next[i] = joint.Clamp(next[i] + delta)
		case chainmodel.Prismatic:
			remaining := targetPos.Sub(tip)
			delta := remaining.Dot(axis)
			next[i] = joint.Clamp(next[i] + delta)
		default:
			return nil, fmt.Errorf("ik.ccdSweep: joint %d: unknown joint type %v", i, joint.Type)
		}
	}
	return next, nil
}
