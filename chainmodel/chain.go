// Package chainmodel defines the serial kinematic chain data model shared by
// the FK evaluator and the IK solver: joints, chains, and their validation.
//
// A Joint is represented as a tagged variant (Type + Axis + LinkLength +
// optional Limits) rather than an open interface, per the engine's dynamic-
// dispatch convention: FK and Jacobian code switches on Type directly.
package chainmodel

import (
	"errors"
	"fmt"
	"math"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// JointType tags a Joint as revolute (angular coordinate) or prismatic
// (linear coordinate).
type JointType int

const (
	// Revolute joints rotate about Axis by an angle in radians.
	Revolute JointType = iota
	// Prismatic joints translate along Axis by a displacement in meters.
	Prismatic
)

// String renders the joint type for logs and error messages.
func (t JointType) String() string {
	switch t {
	case Revolute:
		return "revolute"
	case Prismatic:
		return "prismatic"
	default:
		return "unknown"
	}
}

// MaxDOF is the hard ceiling on chain length enforced at decode time.
const MaxDOF = 64

// Sentinel errors for chain/joint validation. Callers MUST use errors.Is to
// branch on semantics rather than matching error strings.
var (
	// ErrInvalidAxis indicates a joint's axis failed to normalize (zero
	// vector) or contained non-finite components.
	ErrInvalidAxis = errors.New("chainmodel: invalid joint axis")

	// ErrNegativeLinkLength indicates a negative link length was supplied.
	ErrNegativeLinkLength = errors.New("chainmodel: link length must be non-negative")

	// ErrEmptyChain indicates a chain with zero joints was supplied.
	ErrEmptyChain = errors.New("chainmodel: chain must have at least one joint")

	// ErrTooManyDOF indicates a chain's joint count exceeds MaxDOF.
	ErrTooManyDOF = errors.New("chainmodel: joint count exceeds maximum degrees of freedom")

	// ErrInvalidLimits indicates Limits.Lo > Limits.Hi.
	ErrInvalidLimits = errors.New("chainmodel: joint limits are inverted")

	// ErrLengthMismatch indicates a coordinate vector's length does not
	// match the chain's joint count.
	ErrLengthMismatch = errors.New("chainmodel: coordinate vector length mismatch")
)

// Limits bounds a joint's scalar coordinate (radians for revolute, meters
// for prismatic).
type Limits struct {
	Lo, Hi float64
}

// Joint is one degree of freedom of a serial chain.
type Joint struct {
	Type       JointType
	Axis       vector3.Vec3 // unit axis, validated at construction
	LinkLength float64      // non-negative
	Limits     *Limits      // optional; nil means unconstrained
}

// NewJoint validates and constructs a Joint. Axis need not be pre-normalized
// by the caller; NewJoint normalizes it.
func NewJoint(kind JointType, axis vector3.Vec3, linkLength float64, limits *Limits) (Joint, error) {
	if linkLength < 0 {
		return Joint{}, fmt.Errorf("NewJoint: length=%g: %w", linkLength, ErrNegativeLinkLength)
	}
	unitAxis, err := axis.Normalized()
	if err != nil || !axis.Finite() {
		return Joint{}, fmt.Errorf("NewJoint: axis=%v: %w", axis, ErrInvalidAxis)
	}
	if limits != nil && limits.Lo > limits.Hi {
		return Joint{}, fmt.Errorf("NewJoint: lo=%g hi=%g: %w", limits.Lo, limits.Hi, ErrInvalidLimits)
	}
	return Joint{Type: kind, Axis: unitAxis, LinkLength: linkLength, Limits: limits}, nil
}

// Clamp restricts q to the joint's limits, if any; otherwise returns q
// unchanged. The solver clamps every iteration's trial step before the
// final revolute-angle wrap applied for reporting.
func (j Joint) Clamp(q float64) float64 {
	if j.Limits == nil {
		return q
	}
	if q < j.Limits.Lo {
		return j.Limits.Lo
	}
	if q > j.Limits.Hi {
		return j.Limits.Hi
	}
	return q
}

// Chain is an ordered sequence of joints, base-to-tip. DOF = len(Joints).
type Chain struct {
	Joints []Joint
}

// NewChain validates joints is non-empty and within MaxDOF, returning a
// Chain. The joints slice is copied to prevent external mutation.
func NewChain(joints []Joint) (*Chain, error) {
	if len(joints) == 0 {
		return nil, ErrEmptyChain
	}
	if len(joints) > MaxDOF {
		return nil, fmt.Errorf("NewChain: dof=%d max=%d: %w", len(joints), MaxDOF, ErrTooManyDOF)
	}
	cp := make([]Joint, len(joints))
	copy(cp, joints)
	return &Chain{Joints: cp}, nil
}

// DOF returns the chain's degree-of-freedom count.
func (c *Chain) DOF() int {
	return len(c.Joints)
}

// ValidateCoordinates checks q has exactly DOF entries and every entry is
// finite.
func (c *Chain) ValidateCoordinates(q []float64) error {
	if len(q) != c.DOF() {
		return fmt.Errorf("ValidateCoordinates: got %d want %d: %w", len(q), c.DOF(), ErrLengthMismatch)
	}
	for i, v := range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateCoordinates: q[%d]=%v: %w", i, v, vector3.ErrNonFinite)
		}
	}
	return nil
}

// Clone returns a chain with a copy of c's joint slice, so a caller may
// change the result's joints (e.g. to build a seeded variant) without
// affecting c. Each joint's Limits pointer is shared with c, not copied.
func (c *Chain) Clone() *Chain {
	cp := make([]Joint, len(c.Joints))
	copy(cp, c.Joints)
	return &Chain{Joints: cp}
}
