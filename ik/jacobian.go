package ik

import (
	"fmt"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// buildJacobian assembles the residual Jacobian (3xN, or 6xN when
// orientation is part of the residual) from the per-joint frames FK already
// computed during this iteration's pose evaluation. The orientation block of
// row 3-5 for joint i is the joint's world-frame axis for a revolute joint
// (angular-velocity sensitivity) and the zero vector for a prismatic joint
// (translation contributes no angular velocity).
func buildJacobian(chain *chainmodel.Chain, frames []fk.JointFrame, tip vector3.Vec3, useOrientation bool) (*vector3.Jacobian, error) {
	rows := 3
	if useOrientation {
		rows = 6
	}
	j, err := vector3.NewJacobian(rows, chain.DOF())
	if err != nil {
		return nil, fmt.Errorf("ik.buildJacobian: %w", err)
	}
	for i, joint := range chain.Joints {
		col := fk.AnalyticalPositionColumn(joint.Type, frames[i], tip)
		if err := j.SetColumn3(i, col); err != nil {
			return nil, fmt.Errorf("ik.buildJacobian: %w", err)
		}
		if !useOrientation {
			continue
		}
		orientCol := vector3.Zero
		if joint.Type == chainmodel.Revolute {
			orientCol = frames[i].WorldAxis
		}
		if err := j.SetColumnOrientation3(i, orientCol); err != nil {
			return nil, fmt.Errorf("ik.buildJacobian: %w", err)
		}
	}
	return j, nil
}

// jacobianAllZero reports whether every entry of j is exactly zero —
// the degenerate case where no joint can move the residual at all.
func jacobianAllZero(j *vector3.Jacobian) bool {
	for _, v := range j.Raw() {
		if v != 0 {
			return false
		}
	}
	return true
}
