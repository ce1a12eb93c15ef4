package httpapi

import (
	"errors"
	"fmt"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/presets"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// ErrNoChainSpecified indicates an IK request supplied none of chain_id,
// chain, or joint_count, or an FK request supplied none of chain_id, chain,
// or link_lengths.
var ErrNoChainSpecified = errors.New("httpapi: request must specify a chain")

// implicitJointLinkLength is the fixed per-joint link length assumed when a
// caller supplies only joint_count (no explicit chain or link lengths) to
// solve-ik.
const implicitJointLinkLength = 0.15

func chainFromDTO(dto *ChainDTO) (*chainmodel.Chain, error) {
	joints := make([]chainmodel.Joint, len(dto.Joints))
	for i, j := range dto.Joints {
		var kind chainmodel.JointType
		switch j.Type {
		case "revolute":
			kind = chainmodel.Revolute
		case "prismatic":
			kind = chainmodel.Prismatic
		default:
			return nil, fmt.Errorf("httpapi: joint %d: unknown type %q", i, j.Type)
		}
		var limits *chainmodel.Limits
		if j.Limits != nil {
			limits = &chainmodel.Limits{Lo: j.Limits[0], Hi: j.Limits[1]}
		}
		joint, err := chainmodel.NewJoint(kind, vecFromArray(j.Axis), j.LinkLength, limits)
		if err != nil {
			return nil, fmt.Errorf("httpapi: joint %d: %w", i, err)
		}
		joints[i] = joint
	}
	return chainmodel.NewChain(joints)
}

// resolveIKChain resolves the chain an IK request targets, in priority
// order: explicit chain, preset id, then joint_count against a fixed
// implicit link length.
func resolveIKChain(req SolveIKRequest, reg *presets.Registry) (*chainmodel.Chain, error) {
	switch {
	case req.Chain != nil:
		return chainFromDTO(req.Chain)
	case req.ChainID != "":
		p, err := reg.Get(req.ChainID)
		if err != nil {
			return nil, err
		}
		return p.Chain, nil
	case req.JointCount > 0:
		lengths := make([]float64, req.JointCount)
		for i := range lengths {
			lengths[i] = implicitJointLinkLength
		}
		chain, _, err := fk.ImplicitChain(make([]float64, req.JointCount), lengths)
		return chain, err
	default:
		return nil, ErrNoChainSpecified
	}
}

// resolveFKChainAndAngles resolves the chain and joint-coordinate vector an
// FK request targets: an explicit chain with its own joint_angles, a preset
// id with joint_angles, or implicit-chain mode (joint_angles + link_lengths,
// no chain).
func resolveFKChainAndAngles(req SolveFKRequest, reg *presets.Registry) (*chainmodel.Chain, []float64, error) {
	switch {
	case req.Chain != nil:
		chain, err := chainFromDTO(req.Chain)
		return chain, req.JointAngles, err
	case req.ChainID != "":
		p, err := reg.Get(req.ChainID)
		if err != nil {
			return nil, nil, err
		}
		return p.Chain, req.JointAngles, nil
	case len(req.LinkLengths) > 0:
		chain, angles, err := fk.ImplicitChain(req.JointAngles, req.LinkLengths)
		return chain, angles, err
	default:
		return nil, nil, ErrNoChainSpecified
	}
}

func quatFromArray(a [4]float64) vector3.Quat {
	return vector3.Quat{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}
