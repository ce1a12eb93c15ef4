// Package fk implements the forward-kinematics evaluator: it walks a serial
// chain from base to tip, composing per-joint transforms into an
// end-effector pose and the position of every intermediate joint.
package fk

import (
	"errors"
	"fmt"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// ErrLengthMismatch indicates joint_angles and link_lengths had different
// lengths in implicit-chain mode.
var ErrLengthMismatch = errors.New("fk: joint_angles and link_lengths length mismatch")

// Result is the output of an FK evaluation.
type Result struct {
	EndEffectorPosition    vector3.Vec3
	EndEffectorOrientation vector3.Quat
	// JointPositions[0] is the base (world origin); JointPositions[N] is the
	// end effector, where N is the chain's DOF.
	JointPositions []vector3.Vec3
}

// frame is the accumulated transform carried along the chain walk.
type frame struct {
	p vector3.Vec3
	r vector3.Quat
}

// localLinkAxis is the link-direction convention: a link extends along
// local +X after its joint's rotation is applied.
var localLinkAxis = vector3.Must(1, 0, 0)

// Evaluate walks chain from base to tip under joint coordinates q, returning
// the end-effector pose and every intermediate joint position.
//
// Algorithm: maintain an accumulated transform (p, R). For a revolute joint
// i with axis a, rotate R by angle q[i] about a (expressed in the current
// frame), then advance p by R*(linkLength*localLinkAxis). For a prismatic
// joint, translate p by (linkLength+q[i])*(R*axis); rotation is unchanged.
// Complexity: O(DOF).
func Evaluate(chain *chainmodel.Chain, q []float64) (*Result, error) {
	if err := chain.ValidateCoordinates(q); err != nil {
		return nil, fmt.Errorf("fk.Evaluate: %w", err)
	}

	f := frame{p: vector3.Zero, r: vector3.QuatIdentity}
	positions := make([]vector3.Vec3, len(chain.Joints)+1)
	positions[0] = f.p

	for i, j := range chain.Joints {
		switch j.Type {
		case chainmodel.Revolute:
			step, err := vector3.FromAxisAngle(j.Axis, q[i])
			if err != nil {
				return nil, fmt.Errorf("fk.Evaluate: joint %d: %w", i, err)
			}
			f.r = f.r.Mul(step)
			f.p = f.p.Add(f.r.Rotate(localLinkAxis.Scale(j.LinkLength)))
		case chainmodel.Prismatic:
			displacement := j.LinkLength + q[i]
			f.p = f.p.Add(f.r.Rotate(j.Axis).Scale(displacement))
		default:
			return nil, fmt.Errorf("fk.Evaluate: joint %d: unknown joint type %v", i, j.Type)
		}
		positions[i+1] = f.p
	}

	return &Result{
		EndEffectorPosition:    f.p,
		EndEffectorOrientation: f.r,
		JointPositions:         positions,
	}, nil
}

// ImplicitChain builds a Chain of revolute joints with alternating Z/Y/Y/...
// axes from parallel jointAngles/linkLengths arrays — used when a client
// supplies angles and lengths but no explicit chain. The first joint's axis
// is Z; every joint after the first is Y.
func ImplicitChain(jointAngles, linkLengths []float64) (*chainmodel.Chain, []float64, error) {
	if len(jointAngles) != len(linkLengths) {
		return nil, nil, fmt.Errorf("fk.ImplicitChain: angles=%d lengths=%d: %w",
			len(jointAngles), len(linkLengths), ErrLengthMismatch)
	}
	joints := make([]chainmodel.Joint, len(linkLengths))
	for i, length := range linkLengths {
		axis := vector3.Must(0, 1, 0) // Y for every joint after the first
		if i == 0 {
			axis = vector3.Must(0, 0, 1) // Z for the first joint
		}
		j, err := chainmodel.NewJoint(chainmodel.Revolute, axis, length, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("fk.ImplicitChain: joint %d: %w", i, err)
		}
		joints[i] = j
	}
	chain, err := chainmodel.NewChain(joints)
	if err != nil {
		return nil, nil, fmt.Errorf("fk.ImplicitChain: %w", err)
	}
	return chain, jointAngles, nil
}
