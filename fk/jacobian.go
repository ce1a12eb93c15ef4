package fk

import (
	"fmt"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// JointFrame carries, for one joint in a chain walk, the world-frame axis
// the joint rotates/translates about and the world-frame position of the
// joint's origin (the frame before that joint's own link advances p) —
// exactly the two quantities the analytical Jacobian needs:
// J_i = a_i x (p_tip - p_i) for revolute, J_i = a_i for prismatic.
type JointFrame struct {
	WorldAxis vector3.Vec3
	Origin    vector3.Vec3
}

// EvaluateWithFrames is Evaluate, additionally returning the per-joint
// JointFrame needed to assemble an analytical Jacobian without re-walking
// the chain. Complexity: O(DOF).
func EvaluateWithFrames(chain *chainmodel.Chain, q []float64) (*Result, []JointFrame, error) {
	if err := chain.ValidateCoordinates(q); err != nil {
		return nil, nil, fmt.Errorf("fk.EvaluateWithFrames: %w", err)
	}

	f := frame{p: vector3.Zero, r: vector3.QuatIdentity}
	positions := make([]vector3.Vec3, len(chain.Joints)+1)
	frames := make([]JointFrame, len(chain.Joints))
	positions[0] = f.p

	for i, j := range chain.Joints {
		worldAxis := f.r.Rotate(j.Axis)
		frames[i] = JointFrame{WorldAxis: worldAxis, Origin: f.p}

		switch j.Type {
		case chainmodel.Revolute:
			step, err := vector3.FromAxisAngle(j.Axis, q[i])
			if err != nil {
				return nil, nil, fmt.Errorf("fk.EvaluateWithFrames: joint %d: %w", i, err)
			}
			f.r = f.r.Mul(step)
			f.p = f.p.Add(f.r.Rotate(localLinkAxis.Scale(j.LinkLength)))
		case chainmodel.Prismatic:
			displacement := j.LinkLength + q[i]
			f.p = f.p.Add(worldAxis.Scale(displacement))
		default:
			return nil, nil, fmt.Errorf("fk.EvaluateWithFrames: joint %d: unknown joint type %v", i, j.Type)
		}
		positions[i+1] = f.p
	}

	return &Result{
		EndEffectorPosition:    f.p,
		EndEffectorOrientation: f.r,
		JointPositions:         positions,
	}, frames, nil
}

// AnalyticalPositionColumn returns the i-th column of the 3xN position
// Jacobian: a_i x (p_tip - p_i) for revolute joints, a_i for prismatic.
func AnalyticalPositionColumn(jt chainmodel.JointType, jf JointFrame, tip vector3.Vec3) vector3.Vec3 {
	if jt == chainmodel.Prismatic {
		return jf.WorldAxis
	}
	return jf.WorldAxis.Cross(tip.Sub(jf.Origin))
}

// NumericalPositionColumn returns the i-th column of the 3xN position
// Jacobian via central differences with step h, for cross-checking the
// analytical Jacobian's consistency.
func NumericalPositionColumn(chain *chainmodel.Chain, q []float64, i int, h float64) (vector3.Vec3, error) {
	qPlus := append([]float64(nil), q...)
	qMinus := append([]float64(nil), q...)
	qPlus[i] += h
	qMinus[i] -= h

	plus, err := Evaluate(chain, qPlus)
	if err != nil {
		return vector3.Vec3{}, err
	}
	minus, err := Evaluate(chain, qMinus)
	if err != nil {
		return vector3.Vec3{}, err
	}
	return plus.EndEffectorPosition.Sub(minus.EndEffectorPosition).Scale(1 / (2 * h)), nil
}
